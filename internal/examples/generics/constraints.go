package generics

import (
	"fmt"
	"sort"
	"strings"
)

// Integer is a type set without methods.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Stringish combines a type set with a method.
type Stringish interface {
	~string
	Len() int
}

// Name is a string type that satisfies Stringish.
type Name string

func (n Name) Len() int { return len(n) }

// Longest returns the longest value.
func Longest[T Stringish](items []T) T {
	var best T
	for _, item := range items {
		if item.Len() > best.Len() {
			best = item
		}
	}
	return best
}

// SumInts adds integers of any width.
func SumInts[T Integer](values ...T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// Keys returns the sorted keys of a map with comparable string-like keys.
func Keys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Equal works for any comparable type.
func Equal[T comparable](a, b T) bool {
	return a == b
}

// Constraints shows constraint interfaces and type sets.
func (d *Demo) Constraints() {
	d.r.Printf("SumInts[int8](1, 2, 3) = %d\n", SumInts[int8](1, 2, 3))
	d.r.Printf("longest name = %s\n", Longest([]Name{"Ada", "Grace", "Ken"}))

	ages := map[Name]int{"Rob": 68, "Ken": 81, "Robert": 60}
	d.r.Printf("keys = %v\n", Keys(ages))

	d.r.Printf("Equal(3, 3) = %t, Equal(\"a\", \"b\") = %t\n", Equal(3, 3), Equal("a", "b"))

	// any is a constraint that admits every type.
	show := func(values ...any) string {
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = fmt.Sprintf("%T", v)
		}
		return strings.Join(parts, ", ")
	}
	d.r.Printf("any holds: %s\n", show(1, "two", 3.0, Name("four")))
}
