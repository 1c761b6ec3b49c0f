package shmq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemAlloc_OffsetWithinRegion(t *testing.T) {
	h, _, _ := newTestHost(t, 1000)
	mem := h.Mem()

	p, err := h.MemAlloc(128)
	require.NoError(t, err)
	require.LessOrEqual(t, uint64(p.Offset())+uint64(p.Size()), uint64(len(mem)))

	p.Bytes(mem)[0] = 0xFF
	require.EqualValues(t, 0xFF, mem[p.Offset()])
}

func TestMemAlloc_DoesNotOverlapRings(t *testing.T) {
	h, _, _ := newTestHost(t, 1000)
	q, err := h.AddQueue(1, 4)
	require.NoError(t, err)

	p, err := h.MemAlloc(64)
	require.NoError(t, err)

	ringStart := q.desc.MessagesOffset
	ringEnd := ringStart + uint64(q.NumMessages())*uint64(MessageRecordSize)
	payloadStart := uint64(p.Offset())
	payloadEnd := payloadStart + uint64(p.Size())

	overlap := payloadStart < ringEnd && ringStart < payloadEnd
	require.False(t, overlap)
}
