package shmq

import (
	"sync/atomic"
)

// spinlock serialises updates to a single queue descriptor's Subs word. It
// is a thin view over a uint32 living inside the shared region, not a
// language-level synchronisation object: its memory representation is a
// plain aligned word so clients in other processes could, in principle,
// contend on the same address (the core itself is the sole producer-side
// locker; clients must hold lock only for short atomic sequences).
type spinlock struct {
	word *uint32
}

func newSpinlock(word *uint32) spinlock {
	return spinlock{word: word}
}

// spinPureIterations is the number of pure test-and-set attempts before the
// backoff path starts yielding the processor.
const spinPureIterations = 64

// Lock spins until it acquires the flag. Short bursts are pure
// compare-and-swap; beyond spinPureIterations it yields via the platform
// scheduler to avoid burning CPU against an adversarial or merely slow
// cross-process holder.
func (s spinlock) Lock() {
	for i := 0; ; i++ {
		if atomic.CompareAndSwapUint32(s.word, 0, 1) {
			return
		}
		if i >= spinPureIterations {
			yieldProcessor()
		}
	}
}

// Unlock releases the flag with a plain atomic store, which acts as the
// release fence pairing with the acquire implied by the next CompareAndSwap.
func (s spinlock) Unlock() {
	atomic.StoreUint32(s.word, 0)
}
