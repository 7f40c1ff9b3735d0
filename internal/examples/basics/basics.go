// Package basics demonstrates the core of the language: bindings, types,
// control flow, methods, pointers, doc comments and the built-in collections.
package basics

import (
	"github.com/leapstack-labs/goexamples/internal/cli/output"
	"github.com/leapstack-labs/goexamples/internal/examples/demo"
)

// Demo runs the basics examples against a renderer.
type Demo struct {
	r *output.Renderer
}

// New creates a basics Demo.
func New(r *output.Renderer) *Demo {
	return &Demo{r: r}
}

func (d *Demo) steps() []demo.Step {
	return []demo.Step{
		{Title: "Variables", Run: d.Variables},
		{Title: "Naming rules", Run: d.NamingRules},
		{Title: "Multiple assignment", Run: d.MultipleAssignment},
		{Title: "Constants", Run: d.Constants},
		{Title: "Shadowing", Run: d.Shadowing},
		{Title: "Values and references", Run: d.ValuesAndReferences},
		{Title: "Runes", Run: d.Runes},
		{Title: "Booleans and zero values", Run: d.BooleansAndZeroValues},
		{Title: "Functions", Run: d.Functions},
		{Title: "Statements and expressions", Run: d.StatementsAndExpressions},
		{Title: "Arrays", Run: d.Arrays},
		{Title: "Enums", Run: d.Enums},
		{Title: "Strings", Run: d.Strings},
		{Title: "Structs", Run: d.Structs},
		{Title: "Multiple results", Run: d.MultipleResults},
		{Title: "Conditions", Run: d.Conditions},
		{Title: "Loops", Run: d.Loops},
		{Title: "Methods", Run: d.Methods},
		{Title: "Pointers", Run: d.Pointers},
		{Title: "Comments", Run: d.Comments},
		{Title: "Slices", Run: d.Slices},
		{Title: "Maps", Run: d.Maps},
		{Title: "Other containers", Run: d.Containers},
	}
}

// Sections returns the section titles in run order.
func (d *Demo) Sections() []string {
	return demo.Titles(d.steps())
}

// RunAll runs every basics example in order.
func (d *Demo) RunAll() {
	demo.RunAll(d.r, "basics", d.steps())
}
