// Package main provides tests for the goexamples CLI.
package main

import (
	"bytes"
	"testing"

	"github.com/leapstack-labs/goexamples/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	t.Chdir(t.TempDir())

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestVersionCommand(t *testing.T) {
	assert.Contains(t, execute(t, "version"), "goexamples v")
}

func TestHelpCommand(t *testing.T) {
	output := execute(t, "--help")

	for _, want := range []string{"goexamples", "list", "run", "--group", "--no-progress"} {
		assert.Contains(t, output, want)
	}
}

func TestListCommand(t *testing.T) {
	output := execute(t, "list", "-o", "plain")

	for _, want := range []string{"basics", "concurrency", "generics"} {
		assert.Contains(t, output, want)
	}
}

func TestRunCommand(t *testing.T) {
	output := execute(t, "run", "1", "--no-progress", "-o", "plain")

	assert.Contains(t, output, "Running every basics example:")
	assert.NotContains(t, output, "Running every concurrency example:")
}
