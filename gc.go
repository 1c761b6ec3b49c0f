package shmq

import "sync/atomic"

// Process runs one garbage-collection / liveness pass: it increments the
// heartbeat and, for every queue with outstanding messages, advances the
// ring head and flags stuck subscribers as bad; on every queue, empty or
// not, it reaps subscribers that have stayed bad past their grace period.
// It never publishes and never
// blocks on a client; remote failures (a stuck or crashed subscriber) are
// absorbed here and never surfaced as an error.
func (h *Host) Process() (Status, error) {
	h.started = true

	atomic.AddUint32(&h.hdr.HeartbeatField, 1)

	now := h.clock()
	for i := uint32(0); i < h.numQueues; i++ {
		h.queues[i].processLocked(now)
	}

	return StatusOK, nil
}

// processLocked runs the per-queue state machine under the
// queue's spinlock. Stuck-head detection and retirement (steps 1-3) only
// apply while the queue has outstanding messages; subscriber reaping (step
// 4) runs unconditionally, since a subscriber can sit in the bad set with
// nothing left to acknowledge.
func (q *Queue) processLocked(now uint64) {
	q.lock.Lock()
	defer q.lock.Unlock()

	subs := atomic.LoadUint64(&q.desc.Subs)

	if q.count > 0 {
		rec := q.record(q.start)
		pend := atomic.LoadUint32(&rec.PendingSubs)

		// Step 2: stuck-head detection.
		stillPending := pend &^ BAD(subs)
		if stillPending != 0 && now > q.msgTimeout {
			for b := uint32(0); b < MaxSubscribers; b++ {
				if stillPending&(1<<b) != 0 {
					q.timeout[b] = now + MaxQueueTimeoutMS
				}
			}
			subs = ORBad(subs, stillPending)
			atomic.StoreUint32(&rec.PendingSubs, 0)
			pend = 0
		}

		// Step 3: head retirement. Also covers the boundary case where
		// the head already had zero non-bad pending subscribers without
		// step 2 firing (all required recipients acked normally).
		if pend&^BAD(subs) == 0 {
			q.start = (q.start + 1) % q.numMessages
			q.count--
			if q.count > 0 {
				q.msgTimeout = now + MaxMessageAgeMS
			}
		}
	}

	// Step 4: subscriber reaping.
	var reap uint32
	bad := BAD(subs)
	for b := uint32(0); b < MaxSubscribers; b++ {
		if bad&(1<<b) != 0 && now > q.timeout[b] {
			reap |= 1 << b
		}
	}
	if reap != 0 {
		subs = CLEAR(subs, reap)
	}

	atomic.StoreUint64(&q.desc.Subs, subs)
}
