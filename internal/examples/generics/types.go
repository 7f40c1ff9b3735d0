package generics

import (
	"cmp"
	"errors"
	"fmt"
	"math"
)

// Point holds two coordinates of the same type.
type Point[T any] struct {
	X, Y T
}

// GetX returns the X coordinate.
func (p Point[T]) GetX() T {
	return p.X
}

// DistanceFromOrigin is only defined for float64 points, so it is a function
// rather than a method on every Point[T].
func DistanceFromOrigin(p Point[float64]) float64 {
	return math.Hypot(p.X, p.Y)
}

// Pair mixes two coordinate types.
type Pair[T, U any] struct {
	X T
	Y U
}

// Mixup combines the X of p with the Y of other.
func Mixup[T, U, V, W any](p Pair[T, U], other Pair[V, W]) Pair[T, W] {
	return Pair[T, W]{X: p.X, Y: other.Y}
}

// Duo is a pair whose elements can be compared.
type Duo[T cmp.Ordered] struct {
	A, B T
}

// Larger reports the greater of the two elements.
func (o Duo[T]) Larger() string {
	if o.A >= o.B {
		return fmt.Sprintf("the largest member is a = %v", o.A)
	}
	return fmt.Sprintf("the largest member is b = %v", o.B)
}

// Result carries a value or an error.
type Result[T any] struct {
	Value T
	Err   error
}

// OK reports whether the result holds a value.
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Or returns the value, or fallback when the result is an error.
func (r Result[T]) Or(fallback T) T {
	if r.Err != nil {
		return fallback
	}
	return r.Value
}

// Stack is a LIFO of any element type.
type Stack[T any] struct {
	items []T
}

// Push adds an item.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes the top item. ok is false on an empty stack.
func (s *Stack[T]) Pop() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	v = s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

// Types shows generic structs.
func (d *Demo) Types() {
	integer := Point[int]{X: 5, Y: 10}
	float := Point[float64]{X: 3, Y: 4}
	d.r.Printf("integer = %+v, float = %+v\n", integer, float)
	d.r.Printf("distance of %+v from origin = %.1f\n", float, DistanceFromOrigin(float))

	p1 := Pair[int, float64]{X: 5, Y: 10.4}
	p2 := Pair[string, rune]{X: "Hello", Y: 'c'}
	p3 := Mixup(p1, p2)
	d.r.Printf("mixup: X = %d, Y = %c\n", p3.X, p3.Y)

	ok := Result[int]{Value: 42}
	failed := Result[int]{Err: errors.New("lookup failed")}
	d.r.Printf("ok.Or(0) = %d, failed.Or(0) = %d, failed.OK() = %t\n", ok.Or(0), failed.Or(0), failed.OK())
}

// Methods shows methods on generic types.
func (d *Demo) Methods() {
	p := Point[string]{X: "left", Y: "right"}
	d.r.Printf("p.GetX() = %s\n", p.GetX())

	d.r.Println(Duo[int]{A: 3, B: 9}.Larger())
	d.r.Println(Duo[string]{A: "b", B: "a"}.Larger())

	var s Stack[string]
	s.Push("first")
	s.Push("second")
	top, _ := s.Pop()
	next, _ := s.Pop()
	_, ok := s.Pop()
	d.r.Printf("popped %s then %s, empty pop ok = %t\n", top, next, ok)
}
