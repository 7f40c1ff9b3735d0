// Package demo holds the small amount of plumbing shared by the example
// groups: an ordered list of titled steps run under section banners.
package demo

import "github.com/leapstack-labs/goexamples/internal/cli/output"

// Step is one titled demonstration.
type Step struct {
	Title string
	Run   func()
}

// RunAll runs steps in order, each under its own section banner.
func RunAll(r *output.Renderer, group string, steps []Step) {
	r.Println(r.Styles().Title.Render("Running every " + group + " example:"))
	for _, s := range steps {
		r.Section(s.Title)
		s.Run()
	}
}

// Titles returns the step titles in run order.
func Titles(steps []Step) []string {
	titles := make([]string, len(steps))
	for i, s := range steps {
		titles[i] = s.Title
	}
	return titles
}
