// Package workpool runs independent jobs on a bounded number of goroutines
// and joins them. Each job writes its result into a slot owned by its index,
// so the outcome never depends on scheduling.
package workpool

import (
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers caps concurrent jobs when the caller does not choose.
const DefaultWorkers = 8

// Range calls fn for every i in [0, n) using at most workers goroutines and
// waits for all of them. Errors from every job are combined in index order.
// A panic in a job is re-raised, with its original value, on the calling
// goroutine after the join.
func Range(n, workers int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}

	errs := make([]error, n)
	panics := make([]interface{}, n)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			panics[i], errs[i] = run(fn, i)
			return nil
		})
	}
	_ = g.Wait()

	for _, p := range panics {
		if p != nil {
			panic(p)
		}
	}
	return multierr.Combine(errs...)
}

func run(fn func(i int) error, i int) (recovered interface{}, err error) {
	defer func() {
		recovered = recover()
	}()
	return nil, fn(i)
}

// Tiles calls fn for every cell of a rows×cols grid, row-major.
func Tiles(rows, cols, workers int, fn func(row, col int) error) error {
	if cols <= 0 {
		return nil
	}
	return Range(rows*cols, workers, func(i int) error {
		return fn(i/cols, i%cols)
	})
}
