package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used for terminal output.
type Styles struct {
	Title    lipgloss.Style
	Header1  lipgloss.Style
	Header2  lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
}

// NewStyles builds the style set on top of a lipgloss renderer so that the
// renderer's color profile decides whether escape codes are emitted.
func NewStyles(lr *lipgloss.Renderer) *Styles {
	return &Styles{
		Title:    lr.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Header1:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		Bold:     lr.NewStyle().Bold(true),
		Muted:    lr.NewStyle().Foreground(lipgloss.Color("8")),
		Success:  lr.NewStyle().Foreground(lipgloss.Color("10")),
		Error:    lr.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Warning:  lr.NewStyle().Foreground(lipgloss.Color("11")),
		Info:     lr.NewStyle().Foreground(lipgloss.Color("12")),
		Selected: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Cursor:   lr.NewStyle().Foreground(lipgloss.Color("10")),
	}
}
