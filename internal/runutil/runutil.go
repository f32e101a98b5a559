// Package runutil resolves run-time defaults at the entry point.
package runutil

import "runtime"

// EffectiveWorkers resolves a requested worker count. n <= 0 means one
// worker per CPU; 1 runs the search sequentially.
func EffectiveWorkers(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// WriterBuffer sizes the writer channel for the given worker count.
func WriterBuffer(workers int) int {
	if workers <= 0 {
		workers = 1
	}
	return workers * 4
}
