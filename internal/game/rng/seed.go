package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// SeedSource produces the single seed a Generator is built from.
type SeedSource interface {
	Seed() uint64
}

// SeedFunc adapts a plain function to SeedSource.
type SeedFunc func() uint64

func (f SeedFunc) Seed() uint64 { return f() }

// EntropySeed reads the seed from the operating system's CSPRNG.
// Runs seeded this way are not reproducible unless the seed is logged.
type EntropySeed struct{}

func (EntropySeed) Seed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand.Read only fails on broken platforms; fall back to the clock.
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// FixedSeed always returns the same value, for reproducible runs.
type FixedSeed uint64

func (s FixedSeed) Seed() uint64 { return uint64(s) }

// TimeSeed derives the seed from a clock. Now defaults to time.Now.
type TimeSeed struct {
	Now func() time.Time
}

func (s TimeSeed) Seed() uint64 {
	now := s.Now
	if now == nil {
		now = time.Now
	}
	return uint64(now().UnixNano())
}
