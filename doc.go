// Package shmq is the host side of a shared-memory multi-queue message
// protocol: a single publisher process manages a pre-mapped region of
// shared memory, registers fixed-capacity ring queues inside it, and
// publishes messages to subscriber processes that attach to the same
// region without any kernel-mediated coordination beyond atomic loads,
// stores, and a per-queue spinlock.
//
// The region itself is never mapped or unmapped by this package; callers
// hand Init an already-mapped byte slice (see cmd/shmqdemo for one way to
// obtain one) and remain responsible for its lifetime.
package shmq
