//go:build unix

package shmq

import "golang.org/x/sys/unix"

// yieldProcessor hands the CPU to another runnable thread via sched_yield.
// Used by spinlock's backoff path once pure spinning has run long enough
// that the holder is plausibly descheduled rather than merely slow.
func yieldProcessor() {
	_, _, _ = unix.Syscall(unix.SYS_SCHED_YIELD, 0, 0, 0)
}
