package shmq

import "math/rand/v2"

// randUint32 is the concrete entropy source behind DefaultSessionRand,
// split into its own file so it is the one place a caller with stricter
// randomness requirements (e.g. crypto/rand) needs to look at to swap it
// out via a custom SessionRand.
func randUint32() uint32 {
	return rand.Uint32()
}
