package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool bounds how many jobs run at the same time.
// A zero Pool uses GOMAXPROCS workers. Pool holds no goroutines between
// calls and is safe for concurrent use.
type Pool struct {
	workers int
}

// NewPool creates a pool with the given worker limit.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	return &Pool{workers: workers}
}

// Workers returns the effective worker limit.
func (p *Pool) Workers() int {
	if p == nil || p.workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return p.workers
}

// For calls fn(i) for every i in [0, n) and waits for all calls to return.
// With one worker, or a single job, fn runs on the calling goroutine in
// index order.
func (p *Pool) For(n int, fn func(i int)) {
	if n <= 0 || fn == nil {
		return
	}
	workers := min(p.Workers(), n)
	if workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	// Workers pull the next index from a shared counter so that slow jobs
	// do not hold back a fixed share of the range.
	var (
		next atomic.Int64
		wg   sync.WaitGroup
	)
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1) - 1)
				if i >= n {
					return
				}
				fn(i)
			}
		}()
	}
	wg.Wait()
}
