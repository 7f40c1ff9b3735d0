package basics

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/goexamples/internal/cli/output"
)

func add(i, j int32) int32 {
	return i + j
}

// Variables shows declaration forms and type inference.
func (d *Demo) Variables() {
	// var with an inferred type: a is an int.
	var a = 10
	// Explicit type.
	var b int32 = 20
	// Short declaration, only inside functions. The conversion fixes the type.
	c := int32(30)
	// Underscores make long literals readable.
	e := 30_000

	sum := add(add(int32(a), b), add(c, int32(e/1000)))
	d.r.Printf("(a + b) + (c + e/1000) = %d\n", sum)
	d.r.Printf("a is %T, b is %T, e is %T\n", a, b, e)
}

// NamingRules prints the naming conventions used in Go code.
func (d *Demo) NamingRules() {
	t := table.NewWriter()
	t.SetOutputMirror(d.r.Writer())
	if d.r.EffectiveMode() == output.ModePlain {
		t.SetStyle(table.StyleDefault)
	} else {
		t.SetStyle(table.StyleLight)
	}
	t.AppendHeader(table.Row{"Item", "Convention"})
	t.AppendRows([]table.Row{
		{"Packages", "short, lowercase, no underscores: `strconv`"},
		{"Exported identifiers", "MixedCaps: `ReadFile`"},
		{"Unexported identifiers", "mixedCaps: `readFile`"},
		{"Constants", "MixedCaps like any identifier: `MaxPoints`"},
		{"Acronyms", "consistent case: `ServeHTTP`, `userID`"},
		{"Getters", "no Get prefix: `Owner()`, setter `SetOwner()`"},
		{"One-method interfaces", "method name + er: `Reader`, `Stringer`"},
		{"Receivers", "one or two letters, never `this` or `self`"},
		{"Type parameters", "single capital letter: `T`, `K`, `V`"},
		{"Constructors", "`New` or `NewThing`"},
	})
	t.Render()

	d.r.Println("")
	d.r.Println("- Capitalisation, not a keyword, decides visibility outside the package")
	d.r.Println("- Use the blank identifier `_` for values you must accept but ignore")
	d.r.Println("- Error variables start with Err, error types end with Error")
	d.r.Println("- Package names are part of the call site: `bytes.Buffer`, not `bytes.BytesBuffer`")
}

// MultipleAssignment shows tuple-style assignment and the blank identifier.
func (d *Demo) MultipleAssignment() {
	type record struct {
		e int
	}

	var a, b, c, e int
	a, b = 1, 2

	// Pick elements out of an array, ignoring the rest.
	arr := [5]int{1, 2, 3, 4, 5}
	c, _ = arr[0], arr[4]
	dd := arr[3]

	// Fields come out one at a time; there is no struct destructuring.
	e = record{e: 5}.e

	d.r.Printf("[a b c d e] = %v\n", []int{a, b, c, dd, e})

	// The right-hand side is evaluated first, so swapping needs no temporary.
	a, b = b, a
	d.r.Printf("after swap: a=%d b=%d\n", a, b)
}

// Constants shows typed, untyped and iota constants.
func (d *Demo) Constants() {
	const MaxPoints uint32 = 100_000

	// Untyped constants keep arbitrary precision until used.
	const Huge = 1 << 100
	const Small = Huge >> 98

	const (
		KB = 1 << (10 * (iota + 1))
		MB
		GB
	)

	d.r.Printf("MaxPoints = %d (%T)\n", MaxPoints, MaxPoints)
	d.r.Printf("Huge >> 98 = %d\n", Small)
	d.r.Printf("KB=%d MB=%d GB=%d\n", KB, MB, GB)
}

// Shadowing shows how an inner declaration hides an outer one.
func (d *Demo) Shadowing() {
	x := 5
	x = x + 1

	{
		// := declares a new x in this block.
		x := x * 2
		d.r.Printf("The value of x in the inner scope is: %d\n", x)
	}

	d.r.Printf("The value of x is: %d\n", x)

	if x := "shadowed by if"; x != "" {
		d.r.Printf("Inside the if statement x is: %q\n", x)
	}
}

// ValuesAndReferences shows what is copied on assignment and what is shared.
func (d *Demo) ValuesAndReferences() {
	// Plain values are copied.
	x := 5
	y := x
	y++
	d.r.Printf("x = %d, y = %d\n", x, y)

	// Strings are immutable, so sharing the bytes is safe.
	s1 := "hello, world"
	s2 := s1
	d.r.Printf("%s,%s\n", s1, s2)

	// A slice header is copied but the backing array is shared.
	a := []int{1, 2, 3}
	b := a
	b[0] = 100
	d.r.Printf("shared backing array: a = %v, b = %v\n", a, b)

	// copy gives an independent duplicate.
	c := make([]int, len(a))
	copy(c, a)
	c[0] = 1
	d.r.Printf("after copy: a = %v, c = %v\n", a, c)

	takesValue := func(n int) { n *= 10 }
	takesPointer := func(n *int) { *n *= 10 }
	n := 5
	takesValue(n)
	d.r.Printf("after takesValue: %d\n", n)
	takesPointer(&n)
	d.r.Printf("after takesPointer: %d\n", n)

	calculateLength := func(s *string) int { return len(*s) }
	hello := "hello"
	d.r.Printf("The length of '%s' is %d.\n", hello, calculateLength(&hello))

	d.r.Println("")
	d.r.Println("Copied on assignment: numbers, bools, strings, arrays, structs")
	d.r.Println("Shared through a header: slices, maps, channels, functions, interfaces holding pointers")
}
