package basics

import (
	"errors"
	"unicode/utf8"
)

// Runes shows that a rune is a Unicode code point and a string is bytes.
func (d *Demo) Runes() {
	runes := []rune{'z', 'ℤ', '国', '😻'}
	for _, r := range runes {
		d.r.Printf("%c  %U  utf-8 bytes: %d\n", r, r, utf8.RuneLen(r))
	}

	s := "国😻"
	d.r.Printf("len(%q) = %d bytes, %d runes\n", s, len(s), utf8.RuneCountInString(s))
}

// BooleansAndZeroValues shows bool and the zero value of each kind.
func (d *Demo) BooleansAndZeroValues() {
	t := true
	var f bool // zero value is false
	d.r.Printf("t = %t, f = %t, t && !f = %t\n", t, f, t && !f)

	var (
		i   int
		fl  float64
		s   string
		p   *int
		sl  []int
		m   map[string]int
		err error
	)
	d.r.Printf("int=%d float64=%g string=%q pointer=%v slice=%v (nil: %t) map=%v (nil: %t) error=%v\n",
		i, fl, s, p, sl, sl == nil, m, m == nil, err)

	// struct{} has no fields and takes no memory: the closest thing to a unit type.
	set := map[string]struct{}{"go": {}}
	_, ok := set["go"]
	d.r.Printf("struct{} as a set value: contains go = %t\n", ok)
}

// Functions shows parameters, multiple and named results, variadics and closures.
func (d *Demo) Functions() {
	// Every parameter has a type; consecutive ones can share it.
	plus := func(a, b int) int { return a + b }

	divmod := func(a, b int) (q, r int) {
		q = a / b
		r = a % b
		return
	}

	sum := func(nums ...int) int {
		total := 0
		for _, n := range nums {
			total += n
		}
		return total
	}

	counter := func() func() int {
		n := 0
		return func() int {
			n++
			return n
		}
	}()

	q, r := divmod(17, 5)
	d.r.Printf("plus(2, 3) = %d\n", plus(2, 3))
	d.r.Printf("divmod(17, 5) = %d, %d\n", q, r)
	d.r.Printf("sum(1, 2, 3, 4) = %d, sum(nums...) = %d\n", sum(1, 2, 3, 4), sum([]int{5, 5}...))
	d.r.Printf("closure counter: %d %d %d\n", counter(), counter(), counter())

	// Functions that never return normally end in panic or os.Exit.
	mustPositive := func(n int) (int, error) {
		if n <= 0 {
			return 0, errors.New("not positive")
		}
		return n, nil
	}
	if _, err := mustPositive(-1); err != nil {
		d.r.Printf("errors are values: %v\n", err)
	}
}

// StatementsAndExpressions shows that Go blocks are statements, not expressions.
func (d *Demo) StatementsAndExpressions() {
	x := 1
	y := 1
	x = x + 1 // statement
	y = y + 5 // statement

	// An immediately invoked function literal stands in for a block expression.
	z := func() int {
		return x + y
	}()
	d.r.Printf("x + y = %d\n", z)
	d.r.Println("if, for and switch are statements; only function calls and operators produce values")
}
