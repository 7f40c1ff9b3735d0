package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/leapstack-labs/goexamples/internal/cli/config"
	"github.com/leapstack-labs/goexamples/internal/cli/output"
	"github.com/leapstack-labs/goexamples/internal/examples"
	"github.com/leapstack-labs/goexamples/internal/selector"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
	Table    *selector.Table
}

// NewCommandContext creates a CommandContext with a renderer and the
// example table bound to it.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := config.GetConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	mode, err := output.ParseMode(cfg.OutputFormat)
	if err != nil {
		return nil, err
	}
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	table, err := examples.NewTable(r)
	if err != nil {
		return nil, err
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
		Table:    table,
	}, nil
}

// NewProgress returns the configured progress indicator, or nil when it
// is disabled.
func (c *CommandContext) NewProgress() *selector.Progress {
	if !c.Cfg.Progress.Enabled {
		return nil
	}
	return selector.NewProgress(c.Renderer, selector.ProgressConfig{
		Steps: c.Cfg.Progress.Steps,
		Delay: c.Cfg.Progress.Delay,
	})
}

// NewSelector wires a selector over the context's table with source.
func (c *CommandContext) NewSelector(source selector.Source) (*selector.Selector, error) {
	return selector.New(selector.Config{
		Table:    c.Table,
		Source:   source,
		Renderer: c.Renderer,
		Progress: c.NewProgress(),
		Logger:   c.Logger,
	})
}

// interactiveSource picks the source for an interactive run from the
// configured menu style.
func (c *CommandContext) interactiveSource(cmd *cobra.Command) selector.Source {
	in, out := terminalIO(cmd)
	if c.Cfg.Menu.Style == config.MenuStylePrompt {
		var rc io.ReadCloser
		if in != nil {
			rc = readCloser(in)
		}
		return &selector.PromptSource{In: rc, Out: out}
	}
	return &selector.MenuSource{
		In:      in,
		Out:     out,
		Default: c.Cfg.Menu.Default,
		Styles:  c.Renderer.Styles(),
	}
}

// terminalIO returns the command's streams, or nil for the ones still
// attached to the process so the sources can drive the terminal directly.
func terminalIO(cmd *cobra.Command) (io.Reader, io.Writer) {
	var (
		in  io.Reader = cmd.InOrStdin()
		out io.Writer = cmd.OutOrStdout()
	)
	if in == os.Stdin {
		in = nil
	}
	if out == os.Stdout {
		out = nil
	}
	return in, out
}

func readCloser(r io.Reader) io.ReadCloser {
	if rc, ok := r.(io.ReadCloser); ok {
		return rc
	}
	return io.NopCloser(r)
}
