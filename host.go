package shmq

import "sync/atomic"

// Host owns a borrowed, already-mapped shared region and the host-private
// bookkeeping that mirrors it. It does not own mem: the caller (or an
// external region-mapping party) is responsible for mapping and
// unmapping the buffer around Host's lifetime.
type Host struct {
	mem   []byte
	hdr   *SharedHeader
	clock Clock
	bump  bumpAllocator

	// started is set on the first Post or Process call; AddQueue/MemAlloc
	// are rejected afterwards: layout is frozen once publication starts.
	started bool

	numQueues uint32
	queues    [MaxQueues]*Queue
}

// Init validates the clock, writes the shared header (magic, version,
// zeroed heartbeat/caps/numQueues), and rolls a session id guaranteed to
// differ from whatever was previously stored at that offset so clients can
// detect a host restart even over a preserved region.
func Init(mem []byte, clock Clock, rnd SessionRand) (*Host, error) {
	if clock == nil || clock() == 0 {
		return nil, ErrClockFailure
	}
	if uint64(len(mem)) < uint64(HeaderSize) {
		return nil, ErrInvalidSize
	}

	hdr := headerView(mem)
	prevSessionID := hdr.SessionIDField

	h := &Host{
		mem:   mem,
		hdr:   hdr,
		clock: clock,
		bump:  newBumpAllocator(uint32(len(mem))),
	}

	hdr.MagicField = Magic
	hdr.VersionField = Version
	hdr.CapsField = 0
	atomic.StoreUint32(&hdr.HeartbeatField, 0)
	hdr.NumQueuesField = 0

	sid := rollSessionID(rnd, prevSessionID)
	hdr.SessionIDField = sid

	return h, nil
}

// rollSessionID draws values from rnd until it gets one that differs from
// prev, guaranteeing that a fresh Init always changes
// SessionID even if rnd happens to repeat a value (exceedingly unlikely for
// a real 32-bit source, but the loop makes the guarantee unconditional).
func rollSessionID(rnd SessionRand, prev uint32) uint32 {
	for {
		v := rnd()
		if v != prev {
			return v
		}
	}
}

// Free releases host-private memory. It does not zero the shared region: a
// subsequent Init on the same region rerolls the session and overwrites the
// header.
func (h *Host) Free() {
	h.mem = nil
	h.hdr = nil
	for i := range h.queues {
		h.queues[i] = nil
	}
}

// SessionID returns the current session identifier.
func (h *Host) SessionID() uint32 {
	return h.hdr.SessionIDField
}

// Heartbeat returns the current heartbeat counter.
func (h *Host) Heartbeat() uint32 {
	return atomic.LoadUint32(&h.hdr.HeartbeatField)
}

// NumQueues returns the number of registered queues.
func (h *Host) NumQueues() uint32 {
	return h.numQueues
}

// Mem exposes the borrowed region, for callers (tests, the demo command)
// that need to dereference Payload handles.
func (h *Host) Mem() []byte {
	return h.mem
}
