package basics

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Arrays shows fixed-length arrays and slicing them.
func (d *Demo) Arrays() {
	a := [5]int{1, 2, 3, 4, 5}
	b := [...]int{9, 8, 7, 6, 5} // length from the literal

	var repeated [5]int
	for i := range repeated {
		repeated[i] = 3
	}

	d.r.Printf("a = %v, len = %d\n", a, len(a))
	d.r.Printf("first = %d, second = %d\n", b[0], b[1])
	d.r.Printf("repeated = %v\n", repeated)

	// Arrays are values: assignment copies every element.
	c := a
	c[0] = 100
	d.r.Printf("after copy a[0] = %d, c[0] = %d\n", a[0], c[0])

	// The length is part of the type.
	d.r.Printf("%T and %T are different types\n", [2]int{}, [3]int{})

	// Elements that need construction are filled one by one.
	var greetings [3]string
	for i := range greetings {
		greetings[i] = fmt.Sprintf("go is good #%d", i+1)
	}
	d.r.Printf("%q\n", greetings)

	slice := a[1:3]
	d.r.Printf("a[1:3] = %v\n", slice)
}

// Suit is an enumeration built from a named type and iota.
type Suit int

// Card suits.
const (
	Clubs Suit = iota
	Spades
	Diamonds
	Hearts
)

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "Clubs"
	case Spades:
		return "Spades"
	case Diamonds:
		return "Diamonds"
	case Hearts:
		return "Hearts"
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

// Message is a closed set of variants that carry different data.
type Message interface {
	isMessage()
}

// Message variants.
type (
	Quit        struct{}
	Move        struct{ X, Y int }
	Write       struct{ Text string }
	ChangeColor struct{ R, G, B int }
)

func (Quit) isMessage()        {}
func (Move) isMessage()        {}
func (Write) isMessage()       {}
func (ChangeColor) isMessage() {}

func describe(m Message) string {
	switch m := m.(type) {
	case Quit:
		return "quit"
	case Move:
		return fmt.Sprintf("move to (%d, %d)", m.X, m.Y)
	case Write:
		return fmt.Sprintf("write %q", m.Text)
	case ChangeColor:
		return fmt.Sprintf("color #%02x%02x%02x", m.R, m.G, m.B)
	}
	return "unknown"
}

// plusOne models an optional value with a nil pointer.
func plusOne(x *int) *int {
	if x == nil {
		return nil
	}
	v := *x + 1
	return &v
}

// Enums shows iota enumerations, sum types via interfaces and optional values.
func (d *Demo) Enums() {
	heart := Hearts
	diamond := Diamonds
	d.r.Printf("%v = %d, %v = %d\n", heart, heart, diamond, diamond)

	for _, m := range []Message{Quit{}, Move{X: 1, Y: 2}, Write{Text: "hi"}, ChangeColor{R: 255, G: 128}} {
		d.r.Println(describe(m))
	}

	five := 5
	six := plusOne(&five)
	none := plusOne(nil)
	d.r.Printf("plusOne(5) = %d, plusOne(nil) = %v\n", *six, none)

	// The comma-ok idiom is the other way to say "maybe".
	ages := map[string]int{"al": 60}
	if age, ok := ages["zoe"]; !ok {
		d.r.Printf("zoe not found (zero value %d)\n", age)
	}
}

// MultipleResults shows the idioms Go uses instead of tuples.
func (d *Demo) MultipleResults() {
	tup := func() (int, float64, uint8) { return 500, 6.4, 1 }

	x, y, z := tup()
	d.r.Printf("The value of y is: %g\n", y)

	// An anonymous struct groups values when they must travel together.
	point := struct {
		X int
		Y float64
		Z uint8
	}{x, y, z}
	d.r.Printf("%+v\n", point)
}

// User is the struct used by the struct examples.
type User struct {
	Active      bool   `yaml:"active"`
	Username    string `yaml:"username"`
	Email       string `yaml:"email"`
	SignInCount uint64 `yaml:"sign_in_count"`
}

func buildUser(email, username string) User {
	return User{
		Email:       email,
		Username:    username,
		Active:      true,
		SignInCount: 1,
	}
}

// Structs shows struct literals, copies, embedding and printing.
func (d *Demo) Structs() {
	user1 := buildUser("someone@example.com", "someusername123")

	user2 := user1
	user2.Email = "another@example.com"
	d.r.Printf("user1.Email = %s, user2.Email = %s\n", user1.Email, user2.Email)

	// Tuple-like structs have no Go equivalent; a small named struct is used instead.
	type Color struct{ R, G, B int }
	type Point struct{ X, Y, Z int }
	black := Color{}
	origin := Point{}
	d.r.Printf("black = %v, origin = %v\n", black, origin)

	// An empty struct carries behavior only.
	type AlwaysEqual struct{}
	d.r.Printf("AlwaysEqual{} == AlwaysEqual{}: %t\n", AlwaysEqual{} == AlwaysEqual{})

	type Rectangle struct {
		Width, Height uint32
	}
	rect := Rectangle{Width: 30, Height: 50}
	d.r.Printf("%%v  %v\n", rect)
	d.r.Printf("%%+v %+v\n", rect)
	d.r.Printf("%%#v %#v\n", rect)

	// Struct tags drive encoders.
	out, err := yaml.Marshal(user1)
	if err != nil {
		d.r.Printf("yaml: %v\n", err)
		return
	}
	d.r.Printf("as YAML:\n%s", out)

	var decoded User
	if err := yaml.Unmarshal(out, &decoded); err == nil {
		d.r.Printf("round trip equal: %t\n", decoded == user1)
	}
}
