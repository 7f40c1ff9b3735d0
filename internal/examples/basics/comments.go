package basics

// AddOne returns x plus one.
//
// A doc comment is the comment directly above a declaration. It starts
// with the declared name and is shown by go doc.
func AddOne(x int) int {
	return x + 1
}

// Divide returns a / b.
//
// Divide panics with "divide-by-zero error" if b is zero.
func Divide(a, b int) int {
	if b == 0 {
		panic("divide-by-zero error")
	}
	return a / b
}

// Comments shows line, block and doc comments.
func (d *Demo) Comments() {
	// This is a line comment.
	d.r.Println("line comments use //")

	/*
		Block comments span lines.
		They are mostly used for package docs
		or to disable code temporarily.
	*/
	d.r.Println("block comments use /* ... */")

	d.r.Println("doc comments sit directly above the declaration and start with its name")
	d.r.Println("Example functions in _test.go files are compiled, run and shown in docs")
	d.r.Printf("AddOne(5) = %d\n", AddOne(5))
	d.r.Printf("Divide(10, 2) = %d\n", Divide(10, 2))
	d.r.Println("Divide(10, 0) would panic and end the program")
}
