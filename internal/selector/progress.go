package selector

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/leapstack-labs/goexamples/internal/cli/output"
	"github.com/zoobzio/clockz"
)

// Progress defaults.
const (
	DefaultProgressSteps = 20
	DefaultProgressDelay = 30 * time.Millisecond
	progressWidth        = 40
)

// ProgressConfig configures the progress indicator.
type ProgressConfig struct {
	Steps int
	Delay time.Duration
	Clock clockz.Clock
}

// Progress is a cosmetic, fixed-length progress bar shown between the
// selection and the dispatch. It runs on the caller's goroutine.
type Progress struct {
	steps    int
	delay    time.Duration
	clock    clockz.Clock
	renderer *output.Renderer
	bar      progress.Model
	frames   []string
}

// NewProgress creates a progress indicator. A non-positive step count uses
// DefaultProgressSteps, a zero delay ticks without waiting and a nil clock
// uses the real clock.
func NewProgress(r *output.Renderer, cfg ProgressConfig) *Progress {
	if cfg.Steps <= 0 {
		cfg.Steps = DefaultProgressSteps
	}
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	if cfg.Clock == nil {
		cfg.Clock = clockz.RealClock
	}
	return &Progress{
		steps:    cfg.Steps,
		delay:    cfg.Delay,
		clock:    cfg.Clock,
		renderer: r,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(progressWidth),
			progress.WithoutPercentage(),
		),
		frames: spinner.Line.Frames,
	}
}

// Steps returns the fixed number of ticks.
func (p *Progress) Steps() int {
	return p.steps
}

// Run advances the bar one tick at a time, waiting the configured delay
// after each tick, then prints message. It returns the number of ticks
// completed, which equals Steps() unless ctx is cancelled.
func (p *Progress) Run(ctx context.Context, message string) (int, error) {
	start := p.clock.Now()
	for pos := 1; pos <= p.steps; pos++ {
		p.renderer.Printf("\r%s", p.line(pos, p.clock.Since(start)))
		if p.delay == 0 {
			continue
		}
		select {
		case <-ctx.Done():
			p.renderer.Println("")
			return pos, ctx.Err()
		case <-p.clock.After(p.delay):
		}
	}
	p.renderer.Println("")
	if message != "" {
		p.renderer.Println(p.renderer.Styles().Success.Render(message))
	}
	return p.steps, nil
}

func (p *Progress) line(pos int, elapsed time.Duration) string {
	frame := p.frames[pos%len(p.frames)]
	percent := float64(pos) / float64(p.steps)

	var bar string
	if p.renderer.EffectiveMode() == output.ModeText {
		bar = p.bar.ViewAs(percent)
	} else {
		bar = asciiBar(percent, progressWidth)
	}
	return fmt.Sprintf("%s [%s] %s %d/%d", frame, formatElapsed(elapsed), bar, pos, p.steps)
}

// asciiBar draws "#>-" style bars for plain output.
func asciiBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled >= width {
		return strings.Repeat("#", width)
	}
	return strings.Repeat("#", filled) + ">" + strings.Repeat("-", width-filled-1)
}

func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
