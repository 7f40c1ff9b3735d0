package basics

// Conditions shows if chains, if with an init statement and switch.
func (d *Demo) Conditions() {
	condition := true
	number := 6
	if !condition {
		number = 5
	}
	d.r.Printf("number = %d\n", number)

	n := 6
	if n%4 == 0 {
		d.r.Println("number is divisible by 4")
	} else if n%3 == 0 {
		d.r.Println("number is divisible by 3")
	} else if n%2 == 0 {
		d.r.Println("number is divisible by 2")
	} else {
		d.r.Println("number is not divisible by 4, 3, or 2")
	}

	if half := n / 2; half > 2 {
		d.r.Printf("half of %d is %d\n", n, half)
	}

	// A tagless switch is a cleaner if/else chain; cases do not fall through.
	switch {
	case n < 0:
		d.r.Println("negative")
	case n == 0:
		d.r.Println("zero")
	default:
		d.r.Println("positive")
	}
}

// Loops shows every form of for, plus break and continue.
func (d *Demo) Loops() {
	for i := 1; i <= 5; i++ {
		d.r.Printf("%d ", i)
	}
	d.r.Println("")

	// range over an integer.
	for i := range 3 {
		d.r.Printf("range 3: %d\n", i)
	}

	a := [4]int{4, 3, 2, 1}
	for i, v := range a {
		d.r.Printf("element %d is %d\n", i+1, v)
	}

	// Indexing and ranging give the same values; range avoids the index arithmetic.
	collection := []int{1, 2, 3, 4, 5}
	total := 0
	for i := 0; i < len(collection); i++ {
		total += collection[i]
	}
	for _, item := range collection {
		total += item
	}
	d.r.Printf("total = %d\n", total)

	for i := 1; i < 4; i++ {
		if i == 2 {
			continue
		}
		d.r.Printf("continue demo: %d\n", i)
	}

	for i := 1; i < 4; i++ {
		if i == 2 {
			break
		}
		d.r.Printf("break demo: %d\n", i)
	}

	// for with only a condition is a while loop.
	n := 0
	for n <= 5 {
		d.r.Printf("%d! ", n)
		n++
	}
	d.r.Println("")

	// Infinite loop; the result is carried out in a variable.
	counter := 0
	var result int
	for {
		counter++
		if counter == 10 {
			result = counter * 2
			break
		}
	}
	d.r.Printf("loop result = %d\n", result)

	// Labels break out of nested loops.
outer:
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i*j == 2 {
				d.r.Printf("breaking outer at i=%d j=%d\n", i, j)
				break outer
			}
		}
	}
}
