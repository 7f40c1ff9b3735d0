package generics

import (
	"fmt"
	"strings"
)

// Drawer is implemented by every UI component.
type Drawer interface {
	Draw() string
}

// Button is a clickable component.
type Button struct {
	Width, Height int
	Label         string
}

func (b Button) Draw() string {
	return fmt.Sprintf("button %dx%d %q", b.Width, b.Height, b.Label)
}

// SelectBox is a drop-down component.
type SelectBox struct {
	Width, Height int
	Options       []string
}

func (s SelectBox) Draw() string {
	return fmt.Sprintf("select %dx%d [%s]", s.Width, s.Height, strings.Join(s.Options, "|"))
}

// Label is a named non-struct type with a method.
type Label string

func (l Label) Draw() string { return "label " + string(l) }

// Screen holds components of different concrete types.
type Screen struct {
	Components []Drawer
}

// Render draws every component in order.
func (s Screen) Render() []string {
	out := make([]string, len(s.Components))
	for i, c := range s.Components {
		out[i] = c.Draw()
	}
	return out
}

// InterfaceValues shows heterogeneous values behind one interface.
func (d *Demo) InterfaceValues() {
	screen := Screen{Components: []Drawer{
		SelectBox{Width: 75, Height: 10, Options: []string{"Yes", "Maybe", "No"}},
		Button{Width: 50, Height: 10, Label: "OK"},
		Label("hello"),
	}}
	for _, line := range screen.Render() {
		d.r.Println(line)
	}

	for _, c := range screen.Components {
		switch v := c.(type) {
		case Button:
			d.r.Printf("type switch found a button labelled %s\n", v.Label)
		case Label:
			d.r.Printf("type switch found label %s\n", string(v))
		}
	}

	if _, ok := screen.Components[0].(Button); !ok {
		d.r.Println("first component is not a Button")
	}
}
