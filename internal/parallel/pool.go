// Package parallel runs independent work items across a bounded set of
// goroutines. It exists so the tracing pipeline can simplify many contours
// concurrently without each call site repeating worker bookkeeping.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// ForEach calls fn(i) for every i in [0, n), distributing calls across up to
// GOMAXPROCS goroutines. Indices are claimed from a shared atomic counter,
// which balances load when some items are slower than others. ForEach
// returns once every call has completed.
//
// fn must be safe to call concurrently for distinct indices. Calls for the
// same index never overlap or repeat, so writing fn's result to slot i of a
// preallocated slice needs no locking and keeps output order deterministic.
func ForEach(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= n {
					return
				}
				fn(i)
			}
		}()
	}
	wg.Wait()
}
