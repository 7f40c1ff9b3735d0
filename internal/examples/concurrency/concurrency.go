// Package concurrency demonstrates goroutines, channels, select, locks,
// errgroup and context cancellation. Every demonstration waits for the
// goroutines it starts before returning.
package concurrency

import (
	"github.com/leapstack-labs/goexamples/internal/cli/output"
	"github.com/leapstack-labs/goexamples/internal/examples/demo"
)

// Demo runs the concurrency examples against a renderer.
type Demo struct {
	r *output.Renderer
}

// New creates a concurrency Demo.
func New(r *output.Renderer) *Demo {
	return &Demo{r: r}
}

func (d *Demo) steps() []demo.Step {
	return []demo.Step{
		{Title: "Goroutines", Run: d.Goroutines},
		{Title: "Channels", Run: d.Channels},
		{Title: "Select", Run: d.Select},
		{Title: "Mutexes and atomics", Run: d.Mutexes},
		{Title: "Once", Run: d.Once},
		{Title: "Pipelines", Run: d.Pipeline},
		{Title: "Errgroup", Run: d.Errgroup},
		{Title: "Context cancellation", Run: d.Context},
	}
}

// Sections returns the section titles in run order.
func (d *Demo) Sections() []string {
	return demo.Titles(d.steps())
}

// RunAll runs every concurrency example in order.
func (d *Demo) RunAll() {
	demo.RunAll(d.r, "concurrency", d.steps())
}
