// Package output renders CLI output with optional terminal styling.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode selects how output is styled.
type Mode string

// Output modes.
const (
	ModeAuto  Mode = "auto"  // TTY=text, non-TTY=plain
	ModeText  Mode = "text"  // styled text
	ModePlain Mode = "plain" // no escape codes
)

// ValidModes lists the accepted values for the output flag.
var ValidModes = []string{string(ModeAuto), string(ModeText), string(ModePlain)}

// ParseMode converts a string into a Mode. The empty string means auto.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeAuto:
		return ModeAuto, nil
	case ModeText:
		return ModeText, nil
	case ModePlain:
		return ModePlain, nil
	}
	return "", fmt.Errorf("invalid output mode %q (want one of %s)", s, strings.Join(ValidModes, ", "))
}

// Renderer writes styled or plain output to a pair of writers.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	isTTY  bool
	styles *Styles
}

// NewRenderer creates a renderer, detecting whether out is a terminal.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(out, errOut, isTerminal(out), mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	if mode == "" {
		mode = ModeAuto
	}
	r := &Renderer{
		out:    out,
		errOut: errOut,
		mode:   mode,
		isTTY:  isTTY,
	}

	lr := lipgloss.NewRenderer(out)
	switch r.EffectiveMode() {
	case ModePlain:
		lr.SetColorProfile(termenv.Ascii)
	case ModeText:
		if !isTTY {
			lr.SetColorProfile(termenv.ANSI256)
		}
	}
	r.styles = NewStyles(lr)
	return r
}

// EffectiveMode resolves auto into text or plain.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.isTTY {
		return ModeText
	}
	return ModePlain
}

// IsTTY reports whether the output writer is a terminal.
func (r *Renderer) IsTTY() bool {
	return r.isTTY
}

// Styles returns the style set for this renderer.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Writer returns the underlying output writer.
func (r *Renderer) Writer() io.Writer {
	return r.out
}

// ErrWriter returns the underlying error writer.
func (r *Renderer) ErrWriter() io.Writer {
	return r.errOut
}

// Println writes a line to the output writer.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted output to the output writer.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Section writes a section banner.
func (r *Renderer) Section(title string) {
	r.Println("")
	r.Println(r.styles.Header1.Render("━━━ " + title + " ━━━"))
}

// Subsection writes a smaller heading inside a section.
func (r *Renderer) Subsection(title string) {
	r.Println(r.styles.Header2.Render("── " + title))
}

// Note writes muted commentary.
func (r *Renderer) Note(text string) {
	r.Println(r.styles.Muted.Render("  # " + text))
}

// Errorf writes a styled message to the error writer.
func (r *Renderer) Errorf(format string, a ...any) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Error.Render(fmt.Sprintf(format, a...)))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
