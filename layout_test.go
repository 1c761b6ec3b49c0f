package shmq

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestMessageRecordSize(t *testing.T) {
	require.EqualValues(t, 16, MessageRecordSize)
	require.EqualValues(t, 4, unsafe.Alignof(MessageRecord{}))
}

func TestSharedQueueDescriptorAlignment(t *testing.T) {
	var d SharedQueueDescriptor
	subsOffset := unsafe.Offsetof(d.Subs)
	require.Zero(t, subsOffset%8, "Subs must be 8-byte aligned for atomic 64-bit access")
}

func TestSubscriberBitfieldPacking(t *testing.T) {
	subs := pack(0b101, 0b001)
	require.EqualValues(t, 0b101, LIVE(subs))
	require.EqualValues(t, 0b001, BAD(subs))

	subs2 := ORBad(subs, 0b010)
	require.EqualValues(t, 0b101, LIVE(subs2))
	require.EqualValues(t, 0b011, BAD(subs2))

	subs3 := CLEAR(subs2, 0b001)
	require.EqualValues(t, 0b100, LIVE(subs3))
	require.EqualValues(t, 0b010, BAD(subs3))
}

func TestBadIsSubsetOfLiveInvariant(t *testing.T) {
	subs := setLive(0, 0b11)
	subs = ORBad(subs, 0b01)
	require.EqualValues(t, 0, BAD(subs)&^LIVE(subs), "BAD(subs) must be a subset of LIVE(subs)")
}
