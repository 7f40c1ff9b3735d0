package output

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "", want: ModeAuto},
		{in: "auto", want: ModeAuto},
		{in: "TEXT", want: ModeText},
		{in: " plain ", want: ModePlain},
		{in: "json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{name: "auto on tty", mode: ModeAuto, isTTY: true, want: ModeText},
		{name: "auto off tty", mode: ModeAuto, isTTY: false, want: ModePlain},
		{name: "forced text", mode: ModeText, isTTY: false, want: ModeText},
		{name: "forced plain", mode: ModePlain, isTTY: true, want: ModePlain},
		{name: "empty is auto", mode: "", isTTY: false, want: ModePlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRendererWithTTY(&bytes.Buffer{}, &bytes.Buffer{}, tt.isTTY, tt.mode)
			assert.Equal(t, tt.want, r.EffectiveMode())
		})
	}
}

func TestPlainModeHasNoEscapeCodes(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	r := NewRendererWithTTY(out, errOut, false, ModePlain)

	r.Section("Variables")
	r.Subsection("shadowing")
	r.Note("inner scope")
	r.Errorf("boom %d", 1)

	assert.False(t, ansiPattern.MatchString(out.String()), "unexpected ANSI in %q", out.String())
	assert.Contains(t, out.String(), "━━━ Variables ━━━")
	assert.Contains(t, out.String(), "── shadowing")
	assert.Contains(t, out.String(), "# inner scope")
	assert.Contains(t, errOut.String(), "boom 1")
}

func TestTextModeStylesOutput(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewRendererWithTTY(out, &bytes.Buffer{}, false, ModeText)

	r.Section("Loops")

	assert.True(t, ansiPattern.MatchString(out.String()), "expected ANSI in %q", out.String())
	assert.Contains(t, out.String(), "Loops")
}

func TestNewRendererDetectsNonTerminal(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.False(t, r.IsTTY())
	assert.Equal(t, ModePlain, r.EffectiveMode())
}
