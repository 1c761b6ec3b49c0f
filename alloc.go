package shmq

// bumpAllocator hands out strictly increasing, non-overlapping byte ranges
// inside the shared region. It never frees: ring and payload regions live
// for the lifetime of the host.
type bumpAllocator struct {
	size     uint32 // total region size
	nextFree uint32 // next offset to hand out
}

func newBumpAllocator(regionSize uint32) bumpAllocator {
	return bumpAllocator{
		size:     regionSize,
		nextFree: uint32(HeaderSize),
	}
}

// Used returns the number of bytes handed out so far to rings and
// payloads, excluding the fixed header, so that Used()+Avail() ==
// size-HeaderSize.
func (b *bumpAllocator) Used() uint32 {
	return b.nextFree - uint32(HeaderSize)
}

// Avail returns the number of bytes still available to hand out, the
// complement of Used such that Used()+Avail() == size-HeaderSize always
// holds.
func (b *bumpAllocator) Avail() uint32 {
	return b.size - b.nextFree
}

// reserve hands out n bytes aligned to align, or fails with
// ErrNoSharedMem if the region does not have enough remaining space.
func (b *bumpAllocator) reserve(n uint32, align uint32) (uint32, error) {
	offset := alignUp(b.nextFree, align)
	if uint64(offset)+uint64(n) > uint64(b.size) {
		return 0, ErrNoSharedMem
	}
	b.nextFree = offset + n
	return offset, nil
}

// reserveRing reserves space for a ring of numMessages slots of
// MessageRecord and returns the absolute offset of the first slot.
func (b *bumpAllocator) reserveRing(numMessages uint32) (uint64, error) {
	n := uint64(numMessages) * uint64(MessageRecordSize)
	if n > uint64(^uint32(0)) {
		return 0, ErrNoSharedMem
	}
	off, err := b.reserve(uint32(n), uint32(recordAlignment))
	if err != nil {
		return 0, err
	}
	return uint64(off), nil
}

// allocPayload reserves size bytes for a payload buffer and returns its
// absolute offset.
func (b *bumpAllocator) allocPayload(size uint32) (uint32, error) {
	return b.reserve(size, uint32(recordAlignment))
}

// recordAlignment is the natural alignment of MessageRecord: every field is
// a uint32, so 4-byte alignment keeps the layout stable across host and
// client regardless of platform word size.
const recordAlignment = 4

func alignUp(v, align uint32) uint32 {
	if align <= 1 {
		return v
	}
	return (v + align - 1) &^ (align - 1)
}
