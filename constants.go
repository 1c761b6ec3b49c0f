package shmq

import "time"

// MaxMessageAge bounds end-to-end latency: the wall-clock duration a
// head-of-queue message may remain unacknowledged before stragglers are
// flagged bad.
const MaxMessageAge = 150 * time.Millisecond

// MaxQueueTimeout is the grace period a bad subscriber has to reattach
// before its bit is reused by a fresh subscriber.
const MaxQueueTimeout = 10 * time.Second

// MaxMessageAgeMS and MaxQueueTimeoutMS are the same constants expressed in
// the uint64-millisecond domain the injected Clock operates in.
const (
	MaxMessageAgeMS   = uint64(MaxMessageAge / time.Millisecond)
	MaxQueueTimeoutMS = uint64(MaxQueueTimeout / time.Millisecond)
)
