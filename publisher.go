package shmq

import "sync/atomic"

// Post publishes udata/payload to q. It snapshots the live subscriber set
// without taking the queue lock: Process may concurrently mutate Subs under
// the lock, but pend here only decides the recipient set for this one
// message, so a subscriber that appears after the snapshot simply misses
// it (still live for future posts), and a subscriber flagged bad in the
// same instant still receives it unless already reaped.
//
// Posting to a queue with no live, non-bad subscribers is a silent no-op:
// delivering to no one is not an error, and the success path always
// returns StatusOK, nil.
func (h *Host) Post(q *Queue, udata uint32, p Payload) (Status, error) {
	h.started = true

	subs := atomic.LoadUint64(&q.desc.Subs)
	pend := LIVE(subs) &^ BAD(subs)
	if pend == 0 {
		return StatusOK, nil
	}

	if q.count == q.numMessages-1 {
		return StatusQueueFull, nil
	}

	rec := q.record(q.position)
	rec.UData = udata
	rec.Size = p.size
	rec.Offset = p.offset
	// PendingSubs is the commit point visible to clients: write it last,
	// after size/offset/udata, so a client that observes a non-zero
	// PendingSubs also observes a fully written record.
	atomic.StoreUint32(&rec.PendingSubs, pend)

	if q.count == 0 {
		q.msgTimeout = h.clock() + MaxMessageAgeMS
	}
	q.count++

	q.position = (q.position + 1) % q.numMessages
	// Release store: clients must observe the fully-written record at the
	// old position before they see the advanced Position.
	atomic.StoreUint32(&q.desc.Position, q.position)

	return StatusOK, nil
}
