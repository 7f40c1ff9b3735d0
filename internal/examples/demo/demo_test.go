package demo

import (
	"testing"

	"github.com/leapstack-labs/goexamples/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRunAllRunsStepsInOrder(t *testing.T) {
	tr := testutil.NewTestRenderer()
	var order []string
	steps := []Step{
		{Title: "first", Run: func() { order = append(order, "first") }},
		{Title: "second", Run: func() { order = append(order, "second") }},
	}

	RunAll(tr.Renderer, "sample", steps)

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Equal(t, []string{"first", "second"}, Titles(steps))
	testutil.AssertInOrder(t, tr.Output(), "Running every sample example:", "━━━ first ━━━", "━━━ second ━━━")
}
