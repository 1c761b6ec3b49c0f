package shmq

import "sync/atomic"

// casUint32 is the test-side stand-in for the client's atomic AND; real
// clients live in another process and are out of scope for this module
// so tests simulate the commit point directly on the record.
func casUint32(addr *uint32, old, new uint32) bool {
	return atomic.CompareAndSwapUint32(addr, old, new)
}

// fakeClock returns a Clock whose value is controlled by the returned
// setter, so timing tests can advance time to exact millisecond values
// without sleeping.
func fakeClock(start uint64) (Clock, func(uint64)) {
	now := start
	clock := func() uint64 { return now }
	set := func(v uint64) { now = v }
	return clock, set
}

// fixedRand returns a SessionRand that always yields v, used where a test
// wants a deterministic but distinct session id from whatever was
// previously stored.
func fixedRand(v uint32) SessionRand {
	return func() uint32 { return v }
}

// newTestHost builds a Host over a freshly zeroed region large enough for
// header + a handful of small queues/payloads, with a fake clock starting
// at startMS.
func newTestHost(t interface{ Fatalf(string, ...interface{}) }, startMS uint64) (*Host, Clock, func(uint64)) {
	mem := make([]byte, 64*1024)
	clock, set := fakeClock(startMS)
	h, err := Init(mem, clock, fixedRand(42))
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	return h, clock, set
}
