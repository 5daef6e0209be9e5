package workpool

import (
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func TestRangeVisitsEveryIndexOnce(t *testing.T) {
	const n = 1000
	counts := make([]int32, n)
	err := Range(n, 8, func(i int) error {
		atomic.AddInt32(&counts[i], 1)
		return nil
	})
	assert.NoError(t, err)
	for i, c := range counts {
		assert.Equal(t, int32(1), c, "index %d", i)
	}
}

func TestRangeBoundsConcurrency(t *testing.T) {
	var running, peak int32
	err := Range(64, 3, func(i int) error {
		cur := atomic.AddInt32(&running, 1)
		for {
			old := atomic.LoadInt32(&peak)
			if cur <= old || atomic.CompareAndSwapInt32(&peak, old, cur) {
				break
			}
		}
		atomic.AddInt32(&running, -1)
		return nil
	})
	assert.NoError(t, err)
	assert.LessOrEqual(t, peak, int32(3))
}

func TestRangeCombinesErrorsInIndexOrder(t *testing.T) {
	err := Range(10, 4, func(i int) error {
		if i%4 == 1 {
			return errors.Errorf("job %d", i)
		}
		return nil
	})
	errs := multierr.Errors(err)
	if assert.Len(t, errs, 3) {
		assert.EqualError(t, errs[0], "job 1")
		assert.EqualError(t, errs[1], "job 5")
		assert.EqualError(t, errs[2], "job 9")
	}
}

func TestRangeRepanics(t *testing.T) {
	type marker struct{}
	assert.PanicsWithValue(t, marker{}, func() {
		Range(5, 2, func(i int) error {
			if i == 3 {
				panic(marker{})
			}
			return nil
		})
	})
}

func TestRangeEmpty(t *testing.T) {
	called := false
	assert.NoError(t, Range(0, 4, func(int) error { called = true; return nil }))
	assert.False(t, called)
}

func TestTiles(t *testing.T) {
	const rows, cols = 3, 4
	var slots [rows][cols]int
	err := Tiles(rows, cols, 0, func(row, col int) error {
		slots[row][col] = row*10 + col
		return nil
	})
	assert.NoError(t, err)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			assert.Equal(t, row*10+col, slots[row][col])
		}
	}
}

func TestRangeMoreWorkersThanJobs(t *testing.T) {
	results := make([]int, 3)
	err := Range(3, 16, func(i int) error {
		results[i] = i * i
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4}, results)
}
