package generics

// Vec is a 2D vector with value-receiver arithmetic.
type Vec struct {
	X, Y int
}

// Add returns the component-wise sum.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Adder is satisfied by any type that adds to itself.
type Adder[T any] interface {
	Add(T) T
}

// Fold adds every value to zero using the Add method.
func Fold[T Adder[T]](zero T, values ...T) T {
	acc := zero
	for _, v := range values {
		acc = acc.Add(v)
	}
	return acc
}

// OperatorMethods shows that Go uses methods where other languages overload operators.
func (d *Demo) OperatorMethods() {
	sum := Vec{X: 1, Y: 0}.Add(Vec{X: 2, Y: 3})
	d.r.Printf("Vec{1 0} + Vec{2 3} = %+v\n", sum)
	d.r.Printf("Fold = %+v\n", Fold(Vec{}, Vec{X: 1, Y: 1}, Vec{X: 2, Y: 2}, Vec{X: 3, Y: 3}))
}
