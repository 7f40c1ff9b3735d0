// Package examples assembles the example groups into the selector's table.
package examples

import (
	"github.com/leapstack-labs/goexamples/internal/cli/output"
	"github.com/leapstack-labs/goexamples/internal/examples/basics"
	"github.com/leapstack-labs/goexamples/internal/examples/concurrency"
	"github.com/leapstack-labs/goexamples/internal/examples/generics"
	"github.com/leapstack-labs/goexamples/internal/selector"
)

// sectioned is implemented by every group's Demo.
type sectioned interface {
	RunAll()
	Sections() []string
}

type entry struct {
	name        string
	description string
	demo        func(r *output.Renderer) sectioned
}

// entries fixes the menu order.
var entries = []entry{
	{
		name:        "basics",
		description: "Variables, types, control flow, methods, pointers and collections",
		demo:        func(r *output.Renderer) sectioned { return basics.New(r) },
	},
	{
		name:        "concurrency",
		description: "Goroutines, channels, select, locks, errgroup and context",
		demo:        func(r *output.Renderer) sectioned { return concurrency.New(r) },
	},
	{
		name:        "generics",
		description: "Type parameters, constraints and interfaces",
		demo:        func(r *output.Renderer) sectioned { return generics.New(r) },
	},
}

// Groups returns every example group in menu order with its run-all
// procedure bound to r.
func Groups(r *output.Renderer) []selector.Group {
	groups := make([]selector.Group, len(entries))
	for i, e := range entries {
		groups[i] = selector.Group{
			Name:        e.name,
			Description: e.description,
			Run:         e.demo(r).RunAll,
		}
	}
	return groups
}

// Sections returns the section titles of the named group, or nil when no
// group has that name.
func Sections(name string) []string {
	for _, e := range entries {
		if e.name == name {
			return e.demo(nil).Sections()
		}
	}
	return nil
}

// NewTable builds the selector table for r.
func NewTable(r *output.Renderer) (*selector.Table, error) {
	return selector.NewTable(Groups(r)...)
}
