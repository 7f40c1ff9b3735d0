package concurrency

import (
	"sync"
	"sync/atomic"
	"time"
)

// Goroutines starts workers and joins them with a WaitGroup.
func (d *Demo) Goroutines() {
	results := make([]int, 5)

	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each goroutine owns one slot, so no lock is needed.
			results[i] = i * i
		}()
	}
	wg.Wait()

	d.r.Printf("squares computed concurrently: %v\n", results)
	d.r.Println("go starts a goroutine; WaitGroup waits for all of them")
}

// Channels shows unbuffered hand-off, buffering and close/range.
func (d *Demo) Channels() {
	// Unbuffered: send blocks until the receiver is ready.
	ping := make(chan string)
	go func() { ping <- "ping" }()
	d.r.Printf("received %q\n", <-ping)

	// Buffered: sends succeed until the buffer is full.
	buf := make(chan int, 3)
	buf <- 1
	buf <- 2
	d.r.Printf("buffered len = %d, cap = %d\n", len(buf), cap(buf))
	close(buf)

	// Receiving from a closed channel drains the buffer, then yields zero values.
	for v := range buf {
		d.r.Printf("drained %d\n", v)
	}
	v, ok := <-buf
	d.r.Printf("after close: v = %d, ok = %t\n", v, ok)

	// Direction-restricted channel types document who sends and who receives.
	produce := func(out chan<- int) {
		defer close(out)
		for i := 1; i <= 3; i++ {
			out <- i
		}
	}
	ch := make(chan int)
	go produce(ch)
	sum := 0
	for n := range ch {
		sum += n
	}
	d.r.Printf("sum from producer = %d\n", sum)
}

// Select waits on several channel operations at once.
func (d *Demo) Select() {
	fast := make(chan string, 1)
	fast <- "fast"

	select {
	case msg := <-fast:
		d.r.Printf("first ready: %s\n", msg)
	case <-time.After(time.Second):
		d.r.Println("timed out")
	}

	never := make(chan string)
	select {
	case msg := <-never:
		d.r.Printf("unexpected %s\n", msg)
	case <-time.After(10 * time.Millisecond):
		d.r.Println("timed out waiting on an idle channel")
	}

	// default makes select non-blocking.
	select {
	case msg := <-never:
		d.r.Printf("unexpected %s\n", msg)
	default:
		d.r.Println("nothing ready, default taken")
	}
}

// Mutexes protects shared state with a lock and with atomics.
func (d *Demo) Mutexes() {
	const workers, increments = 8, 1000

	var (
		mu      sync.Mutex
		counter int
		atomicN atomic.Int64
		wg      sync.WaitGroup
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range increments {
				mu.Lock()
				counter++
				mu.Unlock()
				atomicN.Add(1)
			}
		}()
	}
	wg.Wait()

	d.r.Printf("mutex counter = %d\n", counter)
	d.r.Printf("atomic counter = %d\n", atomicN.Load())
}

// Once runs initialisation exactly one time.
func (d *Demo) Once() {
	var (
		once  sync.Once
		inits atomic.Int32
		wg    sync.WaitGroup
	)
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			once.Do(func() { inits.Add(1) })
		}()
	}
	wg.Wait()
	d.r.Printf("initialised %d time(s)\n", inits.Load())

	config := sync.OnceValue(func() string { return "loaded" })
	d.r.Printf("OnceValue: %s %s\n", config(), config())
}
