package selector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

// Source supplies the operator's selection as an index into names.
type Source interface {
	Select(ctx context.Context, names []string) (int, error)
}

// FixedSource always selects the same index. It is used for
// non-interactive runs and tests.
type FixedSource struct {
	Index int
}

// Select returns the fixed index. Range checking is left to the dispatcher.
func (s FixedSource) Select(ctx context.Context, _ []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}
	return s.Index, nil
}

// PromptSource prints a numbered list and reads one line from a readline
// prompt. The line may be a 1-based number or a group name. A nil In or
// Out falls back to the process terminal.
type PromptSource struct {
	In     io.ReadCloser
	Out    io.Writer
	Prompt string
}

// Select reads one selection from the prompt.
func (s *PromptSource) Select(ctx context.Context, names []string) (int, error) {
	if err := ctx.Err(); err != nil {
		return -1, err
	}

	out := s.Out
	if out == nil {
		out = os.Stdout
	}
	for i, name := range names {
		_, _ = fmt.Fprintf(out, "  %d) %s\n", i+1, name)
	}

	prompt := s.Prompt
	if prompt == "" {
		prompt = "select> "
	}
	cfg := &readline.Config{
		Prompt:          prompt,
		Stdin:           s.In,
		Stdout:          s.Out,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	}
	if s.In != nil {
		// Piped input is read line by line without raw mode.
		cfg.FuncIsTerminal = func() bool { return false }
		cfg.FuncMakeRaw = func() error { return nil }
		cfg.FuncExitRaw = func() error { return nil }
	}
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return -1, fmt.Errorf("failed to initialize prompt: %w", err)
	}
	defer func() { _ = rl.Close() }()

	line, err := rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return -1, ErrAborted
	}
	if err != nil {
		return -1, fmt.Errorf("failed to read selection: %w", err)
	}
	return ParseSelection(line, names)
}

// ParseSelection interprets prompt input against the list of names. It
// resolves the same way as Table.Index; an empty line aborts.
func ParseSelection(input string, names []string) (int, error) {
	if strings.TrimSpace(input) == "" {
		return -1, ErrAborted
	}
	return resolve(input, names)
}
