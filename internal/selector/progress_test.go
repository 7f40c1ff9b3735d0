package selector

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/leapstack-labs/goexamples/internal/cli/output"
	"github.com/leapstack-labs/goexamples/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/clockz"
)

func TestProgressCompletesAllSteps(t *testing.T) {
	for _, steps := range []int{1, 5, DefaultProgressSteps} {
		tr := testutil.NewTestRenderer()
		p := NewProgress(tr.Renderer, ProgressConfig{Steps: steps})

		n, err := p.Run(context.Background(), "done")
		require.NoError(t, err)
		assert.Equal(t, steps, n)

		out := tr.Output()
		assert.Equal(t, steps, strings.Count(out, "\r"))
		for pos := 1; pos <= steps; pos++ {
			assert.Contains(t, out, " "+strconv.Itoa(pos)+"/"+strconv.Itoa(steps))
		}
		assert.True(t, strings.HasSuffix(out, "done\n"))
		testutil.AssertNoANSI(t, out)
	}
}

func TestProgressDefaults(t *testing.T) {
	p := NewProgress(testutil.NewTestRenderer().Renderer, ProgressConfig{Delay: -time.Second})
	assert.Equal(t, DefaultProgressSteps, p.Steps())
	assert.Equal(t, time.Duration(0), p.delay)
	assert.NotNil(t, p.clock)
}

func TestProgressStopsOnCancel(t *testing.T) {
	tr := testutil.NewTestRenderer()
	p := NewProgress(tr.Renderer, ProgressConfig{Steps: 20, Delay: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := p.Run(ctx, "never")
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, n)
	assert.NotContains(t, tr.Output(), "never")
}

func TestProgressTextModeUsesGradientBar(t *testing.T) {
	tr := testutil.NewTestRendererWithMode(output.ModeText, true)
	p := NewProgress(tr.Renderer, ProgressConfig{Steps: 2})

	_, err := p.Run(context.Background(), "")
	require.NoError(t, err)
	assert.NotContains(t, tr.Output(), "#")
	assert.Contains(t, tr.Output(), "2/2")
}

func TestASCIIBar(t *testing.T) {
	assert.Equal(t, ">---------", asciiBar(0, 10))
	assert.Equal(t, "#####>----", asciiBar(0.5, 10))
	assert.Equal(t, "##########", asciiBar(1, 10))
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00:00", formatElapsed(0))
	assert.Equal(t, "00:01:05", formatElapsed(65*time.Second))
	assert.Equal(t, "01:00:01", formatElapsed(time.Hour+time.Second))
}

// lockedBuffer is a bytes.Buffer safe to read while another goroutine writes.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestProgressWaitsDelayBetweenTicks(t *testing.T) {
	const (
		steps = 3
		delay = 30 * time.Millisecond
	)
	clock := clockz.NewFakeClock()
	out := &lockedBuffer{}
	r := output.NewRendererWithTTY(out, &bytes.Buffer{}, false, output.ModePlain)
	p := NewProgress(r, ProgressConfig{Steps: steps, Delay: delay, Clock: clock})

	done := make(chan struct{})
	var (
		n   int
		err error
	)
	go func() {
		defer close(done)
		n, err = p.Run(context.Background(), "finished")
	}()

	for pos := 1; pos <= steps; pos++ {
		// The loop has rendered tick pos and is now waiting on the clock.
		require.Eventually(t, clock.HasWaiters, time.Second, time.Millisecond)

		got := out.String()
		assert.Contains(t, got, " "+strconv.Itoa(pos)+"/3")
		assert.NotContains(t, got, " "+strconv.Itoa(pos+1)+"/3")
		assert.NotContains(t, got, "finished")

		clock.Advance(delay)
		clock.BlockUntilReady()
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("progress did not finish after the last tick")
	}
	require.NoError(t, err)
	assert.Equal(t, p.Steps(), n)
	assert.Equal(t, steps, strings.Count(out.String(), "\r"))
	assert.True(t, strings.HasSuffix(out.String(), "finished\n"))
}
