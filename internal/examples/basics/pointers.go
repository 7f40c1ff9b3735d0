package basics

// newGreeting returns a pointer to a local; escape analysis moves it to the heap.
func newGreeting() *string {
	s := "hello, world"
	return &s
}

// Pointers shows address-of, dereference, new and escaping values.
func (d *Demo) Pointers() {
	a := new(int)
	*a = 3
	d.r.Printf("a = %d\n", *a)

	b := *a + 1
	d.r.Printf("b = %d\n", b)

	// Arrays are values: assigning copies all 1000 elements.
	var arr [1000]int
	arr1 := arr
	arr1[0] = 1
	d.r.Printf("arr[0] = %d, arr1[0] = %d\n", arr[0], arr1[0])

	// Passing a pointer copies only the address.
	p := &arr
	p[0] = 7
	d.r.Printf("through pointer arr[0] = %d, len = %d\n", arr[0], len(p))

	s := newGreeting()
	d.r.Println(*s)

	var nilPtr *int
	if nilPtr == nil {
		d.r.Println("nil pointers must be checked before dereferencing")
	}

	// Pointers to struct fields are auto-dereferenced with the dot.
	rect := &Rectangle{Width: 3, Height: 4}
	rect.Width = 5
	d.r.Printf("rect = %+v\n", *rect)
}
