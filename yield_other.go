//go:build !unix

package shmq

import "runtime"

// yieldProcessor falls back to the Go scheduler's cooperative yield on
// platforms without sched_yield (e.g. windows).
func yieldProcessor() {
	runtime.Gosched()
}
