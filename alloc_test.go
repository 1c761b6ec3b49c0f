package shmq

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBumpAllocatorUsedPlusAvailInvariant(t *testing.T) {
	const size = 8192
	b := newBumpAllocator(size)
	require.EqualValues(t, size-uint32(HeaderSize), b.Used()+b.Avail())

	_, err := b.reserveRing(16)
	require.NoError(t, err)
	require.EqualValues(t, size-uint32(HeaderSize), b.Used()+b.Avail())

	_, err = b.allocPayload(128)
	require.NoError(t, err)
	require.EqualValues(t, size-uint32(HeaderSize), b.Used()+b.Avail())
}

func TestBumpAllocatorExhaustion(t *testing.T) {
	b := newBumpAllocator(uint32(HeaderSize) + 32)
	_, err := b.allocPayload(32)
	require.NoError(t, err)

	_, err = b.allocPayload(1)
	require.ErrorIs(t, err, ErrNoSharedMem)
}

func TestBumpAllocatorLinearity(t *testing.T) {
	b := newBumpAllocator(8192)
	off1, err := b.allocPayload(10)
	require.NoError(t, err)
	off2, err := b.allocPayload(10)
	require.NoError(t, err)
	require.Greater(t, off2, off1)
	require.GreaterOrEqual(t, off2, off1+10)
}
