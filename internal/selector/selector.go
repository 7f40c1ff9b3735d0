package selector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/goexamples/internal/cli/output"
)

// DefaultTitle is shown above the menu.
const DefaultTitle = "Select an example group to run:"

// State is the position of a Selector in its one-shot lifecycle.
type State int

// Selector states. Transitions only move forward.
const (
	StateAwaitingSelection State = iota
	StateDispatching
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingSelection:
		return "awaiting-selection"
	case StateDispatching:
		return "dispatching"
	case StateTerminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Config holds the dependencies of a Selector.
type Config struct {
	Table    *Table
	Source   Source
	Renderer *output.Renderer
	// Progress is optional; nil skips the progress indicator.
	Progress *Progress
	Logger   *slog.Logger
	Title    string
}

// Selector renders the title, takes one selection, shows the progress
// indicator and dispatches the chosen group. It is single-use.
type Selector struct {
	table    *Table
	source   Source
	renderer *output.Renderer
	progress *Progress
	logger   *slog.Logger
	title    string
	state    State
	ran      bool
}

// New creates a Selector.
func New(cfg Config) (*Selector, error) {
	if cfg.Table == nil {
		return nil, ErrEmptyTable
	}
	if cfg.Source == nil {
		return nil, errors.New("selector requires a selection source")
	}
	if cfg.Renderer == nil {
		return nil, errors.New("selector requires a renderer")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Title == "" {
		cfg.Title = DefaultTitle
	}
	return &Selector{
		table:    cfg.Table,
		source:   cfg.Source,
		renderer: cfg.Renderer,
		progress: cfg.Progress,
		logger:   cfg.Logger,
		title:    cfg.Title,
		state:    StateAwaitingSelection,
	}, nil
}

// State returns the current lifecycle state.
func (s *Selector) State() State {
	return s.state
}

// Run performs the whole awaiting-selection -> dispatching -> terminated
// sequence. An invalid or aborted selection terminates without running
// any group.
func (s *Selector) Run(ctx context.Context) error {
	if s.ran {
		return errors.New("selector has already run")
	}
	s.ran = true
	defer func() { s.state = StateTerminated }()

	s.renderer.Println(s.renderer.Styles().Title.Render(s.title))

	idx, err := s.source.Select(ctx, s.table.Names())
	if err != nil {
		s.logger.Debug("selection failed", "error", err)
		return fmt.Errorf("no group selected: %w", err)
	}

	group, err := s.table.At(idx)
	if err != nil {
		s.logger.Debug("selection rejected", "index", idx, "error", err)
		return err
	}
	s.logger.Debug("group selected", "index", idx, "group", group.Name)

	s.state = StateDispatching
	if s.progress != nil {
		ticks, err := s.progress.Run(ctx, fmt.Sprintf("Starting %s!", group.Name))
		if err != nil {
			return fmt.Errorf("progress interrupted after %d/%d steps: %w", ticks, s.progress.Steps(), err)
		}
	}

	s.logger.Debug("dispatching group", "group", group.Name)
	return s.table.Dispatch(idx)
}
