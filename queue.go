package shmq

import "sync/atomic"

// Queue bundles a pointer to the shared queue descriptor with the
// host-private bookkeeping that clients never see: the consumer
// cursor, outstanding count, and per-message/per-subscriber deadlines.
type Queue struct {
	host *Host
	desc *SharedQueueDescriptor
	lock spinlock

	// numMessages is the effective ring length including the one-slot
	// sentinel, so effective capacity is numMessages-1.
	numMessages uint32

	// position mirrors desc.Position; start is the consumer-side cursor.
	position uint32
	start    uint32
	count    uint32

	msgTimeout uint64
	timeout    [MaxSubscribers]uint64
}

// AddQueue registers a new queue with a fixed ring length. The effective
// ring length is numMessages+1 (one sentinel slot so start==position
// unambiguously means empty). Must be called before the first Post/Process
// call for any queue on this host.
func (h *Host) AddQueue(queueID uint32, numMessages uint32) (*Queue, error) {
	if h.started {
		return nil, ErrHostStarted
	}
	if h.numQueues >= MaxQueues {
		return nil, ErrNoQueues
	}

	effective := numMessages + 1
	messagesOffset, err := h.bump.reserveRing(effective)
	if err != nil {
		return nil, err
	}

	idx := h.numQueues
	desc := &h.hdr.Queues[idx]
	desc.QueueID = queueID
	desc.NumMessages = effective
	desc.MessagesOffset = messagesOffset
	atomic.StoreUint32(&desc.Position, 0)
	atomic.StoreUint64(&desc.Subs, 0)
	atomic.StoreUint32(&desc.Lock, 0)

	q := &Queue{
		host:        h,
		desc:        desc,
		lock:        newSpinlock(&desc.Lock),
		numMessages: effective,
		position:    0,
		start:       0,
		count:       0,
		msgTimeout:  h.clock() + uint64(MaxMessageAgeMS),
	}

	h.queues[idx] = q
	h.numQueues++
	atomic.StoreUint32(&h.hdr.NumQueuesField, h.numQueues)

	return q, nil
}

// QueueID returns the opaque tag this queue was registered with.
func (q *Queue) QueueID() uint32 {
	return q.desc.QueueID
}

// NumMessages returns the effective ring length, including the sentinel
// slot (i.e. numMessages passed to AddQueue, plus one).
func (q *Queue) NumMessages() uint32 {
	return q.numMessages
}

// Count returns the number of outstanding (unretired) messages.
func (q *Queue) Count() uint32 {
	return q.count
}

// record returns the MessageRecord at ring slot idx.
func (q *Queue) record(idx uint32) *MessageRecord {
	off := q.desc.MessagesOffset + uint64(idx)*uint64(MessageRecordSize)
	return recordView(q.host.mem, off)
}

// Subscribe marks subscriber bit b live, taking the queue lock for the
// duration of the read-modify-write so the update is ordered against
// Process's reaping.
func (q *Queue) Subscribe(b uint32) {
	q.lock.Lock()
	defer q.lock.Unlock()
	subs := atomic.LoadUint64(&q.desc.Subs)
	atomic.StoreUint64(&q.desc.Subs, setLive(subs, 1<<b))
}

// Unsubscribe clears subscriber bit b from both halves of the subs word.
func (q *Queue) Unsubscribe(b uint32) {
	q.lock.Lock()
	defer q.lock.Unlock()
	subs := atomic.LoadUint64(&q.desc.Subs)
	atomic.StoreUint64(&q.desc.Subs, CLEAR(subs, 1<<b))
}

// Subs returns the current packed subscriber word, for diagnostics and
// tests; ordinary callers should use LIVE/BAD on it.
func (q *Queue) Subs() uint64 {
	return atomic.LoadUint64(&q.desc.Subs)
}
