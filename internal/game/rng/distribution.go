package rng

import "math/rand/v2"

// Distribution maps raw engine output onto the inclusive range [min, max].
// Implementations are stateless; all state lives in the engine.
type Distribution interface {
	Distribute(e BitEngine, min, max uint64) uint64
}

// Modulo reduces with raw % span. Branch-free and allocation-free, but
// biased toward low values when span does not divide 2^64.
type Modulo struct{}

func (Modulo) Distribute(e BitEngine, min, max uint64) uint64 {
	span := max - min + 1
	raw := e.Uint64()
	if span == 0 {
		// [0, MaxUint64]: every raw value is already in range.
		return raw
	}
	return raw%span + min
}

// Standard delegates to math/rand/v2's unbiased bounded draw, using the
// engine as the rand.Source. Called directly it wraps the engine in a new
// rand.Rand per draw; a Generator binds it once at construction instead.
type Standard struct{}

func (Standard) Distribute(e BitEngine, min, max uint64) uint64 {
	return boundedDraw(rand.New(e), min, max)
}

// Bind returns a Standard policy that reuses one rand.Rand over e.
func (Standard) Bind(e BitEngine) Distribution {
	return boundStandard{r: rand.New(e)}
}

type boundStandard struct {
	r *rand.Rand
}

// Distribute ignores e; it is the engine r was bound to.
func (b boundStandard) Distribute(_ BitEngine, min, max uint64) uint64 {
	return boundedDraw(b.r, min, max)
}

func boundedDraw(r *rand.Rand, min, max uint64) uint64 {
	span := max - min + 1
	if span == 0 {
		return r.Uint64()
	}
	return r.Uint64N(span) + min
}

// engineBinder is implemented by policies that keep state tied to one engine.
type engineBinder interface {
	Bind(e BitEngine) Distribution
}

// Distribution names accepted by ParseDistribution.
const (
	DistributionModulo   = "modulo"
	DistributionStandard = "standard"
)

var distributions = map[string]Distribution{
	DistributionModulo:   Modulo{},
	DistributionStandard: Standard{},
}
