// Package generics demonstrates type parameters, constraints and
// interfaces used as behaviour contracts.
package generics

import (
	"github.com/leapstack-labs/goexamples/internal/cli/output"
	"github.com/leapstack-labs/goexamples/internal/examples/demo"
)

// Demo runs the generics examples against a renderer.
type Demo struct {
	r *output.Renderer
}

// New creates a generics Demo.
func New(r *output.Renderer) *Demo {
	return &Demo{r: r}
}

func (d *Demo) steps() []demo.Step {
	return []demo.Step{
		{Title: "Generic functions", Run: d.Functions},
		{Title: "Generic types", Run: d.Types},
		{Title: "Generic methods", Run: d.Methods},
		{Title: "Sized arrays", Run: d.SizedArrays},
		{Title: "Interfaces", Run: d.Interfaces},
		{Title: "Constraint interfaces", Run: d.Constraints},
		{Title: "Interface values", Run: d.InterfaceValues},
		{Title: "Operator methods", Run: d.OperatorMethods},
	}
}

// Sections returns the section titles in run order.
func (d *Demo) Sections() []string {
	return demo.Titles(d.steps())
}

// RunAll runs every generics example in order.
func (d *Demo) RunAll() {
	demo.RunAll(d.r, "generics", d.steps())
}
