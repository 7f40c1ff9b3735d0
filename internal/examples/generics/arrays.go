package generics

// BufferSize is a compile-time constant usable as an array length.
const BufferSize = 4

// Buffer is a fixed-size array type.
type Buffer [BufferSize]byte

// Sum works for any array of three elements of a Number type.
func Sum[T Number](values [3]T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// SizedArrays shows that an array's length is part of its type.
func (d *Demo) SizedArrays() {
	var buf Buffer
	copy(buf[:], "gopher")
	d.r.Printf("buffer holds %d bytes: %q\n", len(buf), string(buf[:]))

	d.r.Printf("Sum([3]int{1, 2, 3}) = %d\n", Sum([3]int{1, 2, 3}))
	d.r.Printf("Sum([3]float64{0.5, 0.25, 0.25}) = %.1f\n", Sum([3]float64{0.5, 0.25, 0.25}))

	// [3]int and [4]int are distinct types; Sum([4]int{...}) does not compile.
	a := [...]string{"x", "y"}
	d.r.Printf("[...] infers the length: %d\n", len(a))
}
