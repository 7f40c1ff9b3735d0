package generics

import (
	"cmp"
	"math"
	"strconv"
)

// Number is the set of types Add accepts.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Add sums two values of any Number type.
func Add[T Number](a, b T) T {
	return a + b
}

// Largest returns the biggest element of a non-empty slice.
func Largest[T cmp.Ordered](items []T) T {
	largest := items[0]
	for _, item := range items[1:] {
		if item > largest {
			largest = item
		}
	}
	return largest
}

// Map applies f to each element.
func Map[T, U any](items []T, f func(T) U) []U {
	out := make([]U, 0, len(items))
	for _, item := range items {
		out = append(out, f(item))
	}
	return out
}

// Celsius is a named type whose underlying type is float64.
type Celsius float64

// Functions shows type inference and explicit instantiation.
func (d *Demo) Functions() {
	d.r.Printf("Add(2, 3) = %d\n", Add(2, 3))
	d.r.Printf("Add(1.5, 2.25) = %.2f\n", Add(1.5, 2.25))
	// ~float64 in Number lets named types through.
	d.r.Printf("Add(Celsius(20), 1.5) = %.1f\n", Add(Celsius(20), 1.5))

	d.r.Printf("largest int = %d\n", Largest([]int{34, 50, 25, 100, 65}))
	d.r.Printf("largest rune = %c\n", Largest([]rune{'y', 'm', 'a', 'q'}))
	d.r.Printf("largest string = %s\n", Largest([]string{"pear", "apple", "zucchini"}))

	toString := Map[int, string]
	d.r.Printf("explicit instantiation: %q\n", toString([]int{1, 2, 3}, strconv.Itoa))

	roots := Map([]float64{4, 9, 16}, math.Sqrt)
	d.r.Printf("inferred: %v\n", roots)

	d.r.Printf("Add[int64] has type %T\n", Add[int64])
}
