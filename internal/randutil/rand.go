package randutil

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by
// rand/v2 so that every call site gets the same reproducible sequence for a
// given seed.
func New(seed int64) *mrand.Rand {
	u := uint64(seed)
	return mrand.New(mrand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewNondeterministic returns a *rand.Rand seeded from the OS entropy pool.
// Used to re-arm a dealer after a forced deterministic shuffle so the seed
// cannot leak into later hands.
func NewNondeterministic() *mrand.Rand {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("randutil: reading entropy: " + err.Error())
	}
	return mrand.New(mrand.NewPCG(
		binary.LittleEndian.Uint64(buf[:8]),
		binary.LittleEndian.Uint64(buf[8:]),
	))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
