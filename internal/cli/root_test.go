package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/goexamples/internal/cli/config"
	"github.com/leapstack-labs/goexamples/internal/selector"
	"github.com/leapstack-labs/goexamples/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestNewRootCmd_Flags(t *testing.T) {
	cmd := NewRootCmd()

	flags := []string{"config", "verbose", "output", "group", "menu", "no-progress"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "flag %q should exist", flag)
	}

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"version", "list", "run", "completion"})
}

func TestRoot_GroupFlagSkipsMenu(t *testing.T) {
	out, err := runRoot(t, "--group", "generics", "--no-progress", "-o", "plain")
	require.NoError(t, err)

	testutil.AssertNoANSI(t, out)
	testutil.AssertInOrder(t, out, "Select an example group to run:", "Running every generics example:")
	assert.NotContains(t, out, "Starting generics!")
}

func TestRoot_ProgressFromEnv(t *testing.T) {
	t.Setenv("GOEXAMPLES_PROGRESS_DELAY", "0s")
	t.Setenv("GOEXAMPLES_PROGRESS_STEPS", "4")

	out, err := runRoot(t, "run", "basics", "-o", "plain")
	require.NoError(t, err)

	testutil.AssertInOrder(t, out, "4/4", "Starting basics!", "Running every basics example:")
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("group: concurrency\nprogress:\n  enabled: false\n"), 0600))

	out, err := runRoot(t, "--config", path, "-o", "plain")
	require.NoError(t, err)

	assert.Contains(t, out, "Running every concurrency example:")
}

func TestRoot_Errors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantErr   error
		errSubstr string
	}{
		{name: "out of range", args: []string{"run", "9", "--no-progress"}, wantErr: selector.ErrOutOfRange},
		{name: "unknown group flag", args: []string{"-g", "templates"}, wantErr: selector.ErrUnknownGroup},
		{name: "bad output", args: []string{"list", "-o", "json"}, errSubstr: "invalid output mode"},
		{name: "bad menu", args: []string{"--menu", "wizard"}, errSubstr: "invalid menu style"},
		{name: "stray argument", args: []string{"basics"}, errSubstr: "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runRoot(t, tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.errSubstr != "" {
				assert.Contains(t, err.Error(), tt.errSubstr)
			}
			assert.NotContains(t, out, "Running every")
		})
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := runRoot(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "goexamples")
}

func TestVersionFlag(t *testing.T) {
	out, err := runRoot(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "goexamples "+Version)
}
