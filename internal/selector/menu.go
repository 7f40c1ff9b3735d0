package selector

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leapstack-labs/goexamples/internal/cli/output"
)

type menuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Quit   key.Binding
}

var menuKeys = menuKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "run"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// menuModel is the bubbletea model behind MenuSource.
type menuModel struct {
	names   []string
	cursor  int
	chosen  int
	aborted bool
	styles  *output.Styles
}

func newMenuModel(names []string, initial int, styles *output.Styles) menuModel {
	if initial < 0 || initial >= len(names) {
		initial = 0
	}
	return menuModel{
		names:  names,
		cursor: initial,
		chosen: -1,
		styles: styles,
	}
}

func (m menuModel) Init() tea.Cmd {
	return nil
}

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, menuKeys.Quit):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(keyMsg, menuKeys.Up):
		m.cursor = (m.cursor - 1 + len(m.names)) % len(m.names)
	case key.Matches(keyMsg, menuKeys.Down):
		m.cursor = (m.cursor + 1) % len(m.names)
	case key.Matches(keyMsg, menuKeys.Choose):
		m.chosen = m.cursor
		return m, tea.Quit
	case keyMsg.Type == tea.KeyRunes && len(keyMsg.Runes) == 1:
		// Digits jump straight to a numbered entry.
		r := keyMsg.Runes[0]
		if r >= '1' && r <= '9' && int(r-'0') <= len(m.names) {
			m.cursor = int(r - '1')
			m.chosen = m.cursor
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m menuModel) View() string {
	var b strings.Builder
	if m.chosen >= 0 {
		b.WriteString(m.styles.Selected.Render("✔ " + m.names[m.chosen]))
		b.WriteString("\n")
		return b.String()
	}
	if m.aborted {
		return ""
	}

	for i, name := range m.names {
		line := fmt.Sprintf("%d. %s", i+1, name)
		if i == m.cursor {
			b.WriteString(m.styles.Cursor.Render("> "))
			b.WriteString(m.styles.Selected.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	help := []string{}
	for _, k := range []key.Binding{menuKeys.Up, menuKeys.Down, menuKeys.Choose, menuKeys.Quit} {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(m.styles.Muted.Render(strings.Join(help, " • ") + " • 1-9 jump"))
	b.WriteString("\n")
	return b.String()
}

// MenuSource reads the selection from an arrow-key/number menu rendered with
// bubbletea. A nil In or Out falls back to the process terminal.
type MenuSource struct {
	In      io.Reader
	Out     io.Writer
	Default int
	Styles  *output.Styles
}

// Select runs the menu until the operator chooses an entry or quits.
func (s *MenuSource) Select(ctx context.Context, names []string) (int, error) {
	if len(names) == 0 {
		return -1, ErrEmptyTable
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if s.In != nil {
		opts = append(opts, tea.WithInput(s.In))
	}
	if s.Out != nil {
		opts = append(opts, tea.WithOutput(s.Out))
	}

	styles := s.Styles
	if styles == nil {
		styles = output.NewStyles(lipgloss.DefaultRenderer())
	}

	final, err := tea.NewProgram(newMenuModel(names, s.Default, styles), opts...).Run()
	if err != nil {
		return -1, fmt.Errorf("menu failed: %w", err)
	}

	m, ok := final.(menuModel)
	if !ok || m.aborted || m.chosen < 0 {
		return -1, ErrAborted
	}
	return m.chosen, nil
}
