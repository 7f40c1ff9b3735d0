package concurrency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

func generate(ctx context.Context, nums ...int) <-chan int {
	out := make(chan int)
	go func() {
		defer close(out)
		for _, n := range nums {
			select {
			case out <- n:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func square(ctx context.Context, in <-chan int) <-chan int {
	out := make(chan int)
	go func() {
		defer close(out)
		for n := range in {
			select {
			case out <- n * n:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Pipeline chains stages connected by channels.
func (d *Demo) Pipeline() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sum := 0
	for v := range square(ctx, generate(ctx, 1, 2, 3, 4)) {
		sum += v
	}
	d.r.Printf("sum of squares 1..4 = %d\n", sum)
}

// Errgroup fans work out and collects the first error.
func (d *Demo) Errgroup() {
	urls := []string{"a.example", "b.example", "c.example", "d.example"}
	sizes := make([]int, len(urls))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(2)
	for i, u := range urls {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sizes[i] = len(u)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		d.r.Printf("unexpected error: %v\n", err)
	}
	d.r.Printf("fetched sizes = %v\n", sizes)

	errBroken := errors.New("broken mirror")
	g, _ = errgroup.WithContext(context.Background())
	for i := range 3 {
		g.Go(func() error {
			if i == 1 {
				return fmt.Errorf("worker %d: %w", i, errBroken)
			}
			return nil
		})
	}
	err := g.Wait()
	d.r.Printf("first error: %v (is errBroken: %t)\n", err, errors.Is(err, errBroken))
}

// Context cancels a slow worker with a deadline.
func (d *Demo) Context() {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		select {
		case <-time.After(time.Second):
			done <- nil
		case <-ctx.Done():
			done <- ctx.Err()
		}
	}()

	err := <-done
	d.r.Printf("slow worker stopped: %v (deadline exceeded: %t)\n", err, errors.Is(err, context.DeadlineExceeded))

	type key string
	valCtx := context.WithValue(context.Background(), key("request-id"), "42")
	d.r.Printf("request-id from context: %v\n", valCtx.Value(key("request-id")))
}
