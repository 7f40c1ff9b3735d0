package basics

import (
	"cmp"
	"container/heap"
	"container/list"
	"fmt"
	"maps"
	"slices"
)

// Slices shows the dynamic array type and the slices package.
func (d *Demo) Slices() {
	var empty []int
	v := []int{1, 2, 3}
	v = append(v, 4)
	d.r.Printf("empty = %v (nil: %t), v = %v\n", empty, empty == nil, v)

	third := v[2]
	d.r.Printf("The third element is %d\n", third)

	// Indexing past the end panics, so check the length for optional access.
	if idx := 10; idx < len(v) {
		d.r.Printf("element %d is %d\n", idx, v[idx])
	} else {
		d.r.Printf("there is no element %d\n", idx)
	}

	// Heterogeneous values go through an interface.
	addrs := []fmt.Stringer{ipv4("127.0.0.1"), ipv6("::1")}
	for _, a := range addrs {
		d.r.Println(a.String())
	}

	zeros := make([]int, 3)
	d.r.Printf("make([]int, 3) = %v, equal to literal: %t\n", zeros, slices.Equal(zeros, []int{0, 0, 0}))

	c := make([]int, 0, 10)
	c = append(c, 1, 2, 3)
	d.r.Printf("len = %d, cap = %d\n", len(c), cap(c))
	c = slices.Grow(c, 100)
	d.r.Printf("after Grow(100): len = %d, cap >= 103: %t\n", len(c), cap(c) >= 103)
	c = slices.Clip(c)
	d.r.Printf("after Clip: len = %d, cap = %d\n", len(c), cap(c))

	s := []int{1, 2}
	s = slices.Insert(s, 2, 3) // [1 2 3]
	removed := s[1]
	s = slices.Delete(s, 1, 2) // [1 3]
	last := s[len(s)-1]
	s = s[:len(s)-1] // pop
	d.r.Printf("removed %d, popped %d, left %v\n", removed, last, s)

	s = append(s[:0], 11, 22)
	s = s[:1] // truncate
	s = slices.DeleteFunc(s, func(x int) bool { return x <= 10 })
	d.r.Printf("after truncate and retain: %v\n", s)

	w := []int{11, 22, 33, 44, 55}
	drained := slices.Clone(w[1:4])
	w = slices.Delete(w, 1, 4)
	head, tail := drained[:1], drained[1:]
	d.r.Printf("w = %v, drained = %v, split = %v %v\n", w, drained, head, tail)

	nums := []int{1, 5, 10, 2, 15}
	slices.Sort(nums)
	d.r.Printf("sorted ints = %v\n", nums)

	floats := []float64{1.0, 5.6, 10.3, 2.0, 15}
	slices.Sort(floats)
	d.r.Printf("sorted floats = %v\n", floats)

	type person struct {
		Name string
		Age  int
	}
	people := []person{{"Zoe", 25}, {"Al", 60}, {"John", 1}}
	slices.SortFunc(people, func(a, b person) int { return cmp.Compare(b.Age, a.Age) })
	d.r.Printf("by age descending = %+v\n", people)

	clear(nums)
	d.r.Printf("after clear = %v\n", nums)
}

type ipv4 string

func (a ipv4) String() string { return "ipv4: " + string(a) }

type ipv6 string

func (a ipv6) String() string { return "ipv6: " + string(a) }

// Maps shows map creation, lookup and update idioms.
func (d *Demo) Maps() {
	gems := make(map[string]int)
	gems["ruby"] = 1
	gems["sapphire"] = 2
	gems["river pebble"] = 18

	teamsList := []struct {
		Name  string
		Score int
	}{{"China", 100}, {"USA", 10}, {"Japan", 50}}
	teams := make(map[string]int, len(teamsList))
	for _, t := range teamsList {
		teams[t.Name] = t.Score
	}

	// Iteration order is random; sort the keys for stable output.
	for _, k := range slices.Sorted(maps.Keys(teams)) {
		d.r.Printf("%s: %d\n", k, teams[k])
	}

	scores := map[string]int{"Blue": 10, "Yellow": 50}
	score, ok := scores["Blue"]
	d.r.Printf("Blue = %d (found %t)\n", score, ok)
	d.r.Printf("Red = %d (missing keys read as the zero value)\n", scores["Red"])

	scores = map[string]int{"Blue": 10}
	old := scores["Blue"]
	scores["Blue"] = 20
	d.r.Printf("overwrote %d with %d\n", old, scores["Blue"])

	// Insert only if absent.
	for _, v := range []int{5, 50} {
		if _, ok := scores["Yellow"]; !ok {
			scores["Yellow"] = v
		}
	}
	d.r.Printf("Yellow = %d\n", scores["Yellow"])

	delete(scores, "Blue")
	d.r.Printf("after delete len = %d\n", len(scores))

	copied := maps.Clone(scores)
	copied["Green"] = 1
	d.r.Printf("clone is independent: %d vs %d\n", len(scores), len(copied))
}

// intHeap implements heap.Interface as a min-heap.
type intHeap []int

func (h intHeap) Len() int           { return len(h) }
func (h intHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h intHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *intHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *intHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Containers shows queues, linked lists, sets, sorted maps and heaps.
func (d *Demo) Containers() {
	// A slice works as a double-ended queue.
	deque := []int{2, 3}
	deque = append([]int{1}, deque...)
	deque = append(deque, 4)
	front, deque := deque[0], deque[1:]
	back, deque := deque[len(deque)-1], deque[:len(deque)-1]
	d.r.Printf("deque: popped front %d and back %d, left %v\n", front, back, deque)

	l := list.New()
	l.PushBack("b")
	l.PushFront("a")
	l.PushBack("c")
	var items []string
	for e := l.Front(); e != nil; e = e.Next() {
		items = append(items, e.Value.(string))
	}
	d.r.Printf("linked list: %v\n", items)

	set := map[string]struct{}{}
	for _, w := range []string{"go", "rust", "go", "zig"} {
		set[w] = struct{}{}
	}
	d.r.Printf("set: %v\n", slices.Sorted(maps.Keys(set)))

	ordered := map[int]string{3: "c", 1: "a", 2: "b"}
	for _, k := range slices.Sorted(maps.Keys(ordered)) {
		d.r.Printf("%d=%s ", k, ordered[k])
	}
	d.r.Println("")

	h := &intHeap{5, 2, 8}
	heap.Init(h)
	heap.Push(h, 1)
	var popped []int
	for h.Len() > 0 {
		popped = append(popped, heap.Pop(h).(int))
	}
	d.r.Printf("heap pops in order: %v\n", popped)
}
