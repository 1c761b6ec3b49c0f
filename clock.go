package shmq

import "time"

// Clock returns a monotonic millisecond timestamp. It is an injected
// capability: the core never reads the wall clock directly. Zero is
// reserved to mean "unusable clock" and causes Init to fail with
// ErrClockFailure.
type Clock func() uint64

// SessionRand returns a fresh 32-bit value used to pick a session
// identifier. It is an injected capability so that tests (and callers with
// their own entropy policy) control session-id selection directly.
type SessionRand func() uint32

// SystemClock returns a Clock backed by the runtime's monotonic clock,
// anchored at the moment SystemClock is called so the returned values are
// small and stable for the lifetime of the process.
func SystemClock() Clock {
	start := time.Now()
	return func() uint64 {
		return uint64(time.Since(start).Milliseconds()) + 1
	}
}

// DefaultSessionRand returns a SessionRand backed by math/rand/v2.
func DefaultSessionRand() SessionRand {
	return func() uint32 {
		return randUint32()
	}
}
