package testutil

import (
	"github.com/mitchelldurbincs/GridArena/internal/game/rng"
	"github.com/rs/zerolog"
)

// NewTestGenerator creates a deterministic MT19937 generator with modulo reduction
func NewTestGenerator(seed uint64) *rng.Generator {
	return rng.New(rng.FixedSeed(seed), rng.NewMT19937, rng.Modulo{})
}

// NewTestOptions returns generator options for a fixed seed
func NewTestOptions(seed uint64) rng.Options {
	opts := rng.DefaultOptions()
	opts.SeedSource = rng.SeedSourceFixed
	opts.Seed = seed
	return opts
}

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}
