package selector

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/leapstack-labs/goexamples/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errSource struct{ err error }

func (s errSource) Select(context.Context, []string) (int, error) {
	return -1, s.err
}

func newTestSelector(t *testing.T, table *Table, src Source, progress bool) (*Selector, *testutil.TestRenderer) {
	t.Helper()
	tr := testutil.NewTestRenderer()
	cfg := Config{
		Table:    table,
		Source:   src,
		Renderer: tr.Renderer,
		Logger:   testutil.NewTestLogger(t),
	}
	if progress {
		cfg.Progress = NewProgress(tr.Renderer, ProgressConfig{Steps: DefaultProgressSteps})
	}
	s, err := New(cfg)
	require.NoError(t, err)
	return s, tr
}

func TestSelectingFirstGroupRunsOnlyThatGroup(t *testing.T) {
	var calls []string
	table, err := NewTable(recordingGroups(&calls, "basics", "concurrency", "generics")...)
	require.NoError(t, err)

	s, tr := newTestSelector(t, table, FixedSource{Index: 0}, true)
	assert.Equal(t, StateAwaitingSelection, s.State())

	require.NoError(t, s.Run(context.Background()))
	assert.Equal(t, []string{"basics"}, calls)
	assert.Equal(t, StateTerminated, s.State())
	assert.Contains(t, tr.Output(), DefaultTitle)
	assert.Contains(t, tr.Output(), "Starting basics!")
}

func TestProgressCompletesBeforeDispatch(t *testing.T) {
	for idx, name := range []string{"basics", "concurrency", "generics"} {
		t.Run(name, func(t *testing.T) {
			tr := testutil.NewTestRenderer()
			var ticksAtDispatch int
			var stateAtDispatch State
			var s *Selector

			groups := make([]Group, 3)
			for i, n := range []string{"basics", "concurrency", "generics"} {
				groups[i] = Group{Name: n, Run: func() {
					ticksAtDispatch = strings.Count(tr.Output(), "\r")
					stateAtDispatch = s.State()
				}}
			}
			table, err := NewTable(groups...)
			require.NoError(t, err)

			s, err = New(Config{
				Table:    table,
				Source:   FixedSource{Index: idx},
				Renderer: tr.Renderer,
				Progress: NewProgress(tr.Renderer, ProgressConfig{Steps: DefaultProgressSteps}),
			})
			require.NoError(t, err)

			require.NoError(t, s.Run(context.Background()))
			assert.Equal(t, DefaultProgressSteps, ticksAtDispatch)
			assert.Equal(t, StateDispatching, stateAtDispatch)
		})
	}
}

func TestOutOfRangeSelectionIsFatal(t *testing.T) {
	for _, idx := range []int{-1, 3, 42} {
		var calls []string
		table, err := NewTable(recordingGroups(&calls, "basics", "concurrency", "generics")...)
		require.NoError(t, err)

		s, tr := newTestSelector(t, table, FixedSource{Index: idx}, true)
		err = s.Run(context.Background())
		require.ErrorIs(t, err, ErrOutOfRange)
		assert.Empty(t, calls)
		assert.Zero(t, strings.Count(tr.Output(), "\r"), "progress must not run for a rejected selection")
		assert.Equal(t, StateTerminated, s.State())
	}
}

func TestSelectionFailureIsFatal(t *testing.T) {
	var calls []string
	table, err := NewTable(recordingGroups(&calls, "basics")...)
	require.NoError(t, err)

	s, _ := newTestSelector(t, table, errSource{err: ErrAborted}, false)
	err = s.Run(context.Background())
	require.ErrorIs(t, err, ErrAborted)
	assert.Empty(t, calls)
	assert.Equal(t, StateTerminated, s.State())
}

func TestCancelledProgressDoesNotDispatch(t *testing.T) {
	var calls []string
	table, err := NewTable(recordingGroups(&calls, "basics")...)
	require.NoError(t, err)

	tr := testutil.NewTestRenderer()
	s, err := New(Config{
		Table:    table,
		Source:   sourceFunc(func(ctx context.Context) (int, error) { return 0, nil }),
		Renderer: tr.Renderer,
		Progress: NewProgress(tr.Renderer, ProgressConfig{Steps: 5, Delay: time.Hour}),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = s.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, calls)
}

func TestSelectorRunsOnce(t *testing.T) {
	var calls []string
	table, err := NewTable(recordingGroups(&calls, "basics")...)
	require.NoError(t, err)

	s, _ := newTestSelector(t, table, FixedSource{Index: 0}, false)
	require.NoError(t, s.Run(context.Background()))
	require.Error(t, s.Run(context.Background()))
	assert.Equal(t, []string{"basics"}, calls)
}

func TestNewValidatesConfig(t *testing.T) {
	table, err := NewTable(Group{Name: "basics", Run: func() {}})
	require.NoError(t, err)
	r := testutil.NewTestRenderer().Renderer

	_, err = New(Config{Source: FixedSource{}, Renderer: r})
	require.ErrorIs(t, err, ErrEmptyTable)

	_, err = New(Config{Table: table, Renderer: r})
	require.Error(t, err)

	_, err = New(Config{Table: table, Source: FixedSource{}})
	require.Error(t, err)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "awaiting-selection", StateAwaitingSelection.String())
	assert.Equal(t, "dispatching", StateDispatching.String())
	assert.Equal(t, "terminated", StateTerminated.String())
	assert.Equal(t, "State(7)", State(7).String())
}

type sourceFunc func(ctx context.Context) (int, error)

func (f sourceFunc) Select(ctx context.Context, _ []string) (int, error) {
	return f(ctx)
}
