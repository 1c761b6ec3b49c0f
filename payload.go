package shmq

import "unsafe"

// Payload is an owning reference to a byte range inside the shared region,
// allocated out of the same bump region as queue rings. A Payload is a
// plain value: the caller may pass one Payload to several Post calls, since
// nothing here tracks payload-to-message ownership.
type Payload struct {
	offset uint32
	size   uint32
}

// Size returns the payload's byte length.
func (p Payload) Size() uint32 { return p.size }

// Offset returns the payload's absolute offset inside the region.
func (p Payload) Offset() uint32 { return p.offset }

// Ptr returns a raw pointer to the payload's first byte inside mem, which
// must be the same backing slice the owning Host was initialized with.
func (p Payload) Ptr(mem []byte) unsafe.Pointer {
	return unsafe.Pointer(&mem[p.offset])
}

// Bytes returns a slice view of the payload's bytes inside mem, which must
// be the same backing slice the owning Host was initialized with.
func (p Payload) Bytes(mem []byte) []byte {
	return mem[p.offset : p.offset+p.size]
}

// MemAlloc reserves size bytes from the bump allocator and returns an
// owning Payload handle. Like AddQueue, this must happen before the first
// Post/Process call: layout is frozen after the first publication.
func (h *Host) MemAlloc(size uint32) (Payload, error) {
	if h.started {
		return Payload{}, ErrHostStarted
	}
	off, err := h.bump.allocPayload(size)
	if err != nil {
		return Payload{}, err
	}
	return Payload{offset: off, size: size}, nil
}

// Free is a documented no-op: the bump allocator never reclaims payload
// regions during the host's lifetime. It exists so callers can treat
// Payload symmetrically with other handles without special-casing teardown.
func (p *Payload) Free() {}
