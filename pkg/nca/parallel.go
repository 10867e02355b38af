package nca

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the minimum cell count worth splitting across
// goroutines. Smaller grids run each pass on the calling goroutine.
const parallelThreshold = 16 * 1024

// passPanic carries a panic out of a worker goroutine.
type passPanic struct {
	value any
}

func (p *passPanic) Error() string { return "nca: pass panicked" }

// chunks returns how many contiguous row ranges a pass is split into.
func (e *Engine) chunks() int {
	if e.rows*e.cols < parallelThreshold {
		return 1
	}
	n := e.workers
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return min(n, e.rows)
}

// run executes pass over every row, split into contiguous ranges, and
// returns once all ranges are done. A panic in any range is re-raised on the
// calling goroutine after the others finish.
func (e *Engine) run(pass func(lo, hi int)) {
	n := e.chunks()
	if n <= 1 {
		pass(0, e.rows)
		return
	}

	size := (e.rows + n - 1) / n
	var g errgroup.Group
	for lo := 0; lo < e.rows; lo += size {
		hi := min(lo+size, e.rows)
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &passPanic{value: r}
				}
			}()
			pass(lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		panic(err.(*passPanic).value)
	}
}
