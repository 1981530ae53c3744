// Package rng composes a seed source, a bit engine and a distribution policy
// into a uniform integer generator.
package rng

import (
	"fmt"
	"sort"
	"sync"
)

// Unsigned is the set of bound types accepted by Uniform.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Generator draws uniform integers. It is not safe for concurrent use; the
// engine state is owned exclusively by one Generator.
type Generator struct {
	seed   uint64
	engine BitEngine
	dist   Distribution
	draws  uint64
}

// New seeds an engine from src and pairs it with dist.
func New(src SeedSource, factory EngineFactory, dist Distribution) *Generator {
	seed := src.Seed()
	engine := factory(seed)
	if b, ok := dist.(engineBinder); ok {
		dist = b.Bind(engine)
	}
	return &Generator{
		seed:   seed,
		engine: engine,
		dist:   dist,
	}
}

// Seed returns the value the engine was initialised with.
func (g *Generator) Seed() uint64 { return g.seed }

// Draws returns how many values have been drawn since construction.
func (g *Generator) Draws() uint64 { return g.draws }

// NextUniform returns a value in [min, max]. min > max is a caller bug and panics.
func (g *Generator) NextUniform(min, max uint64) uint64 {
	if min > max {
		panic(fmt.Sprintf("rng: invalid range [%d, %d]", min, max))
	}
	g.draws++
	return g.dist.Distribute(g.engine, min, max)
}

// Uint64 returns the next raw engine output.
func (g *Generator) Uint64() uint64 {
	g.draws++
	return g.engine.Uint64()
}

// Index returns a uniform index into a collection of n elements. n must be positive.
func (g *Generator) Index(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("rng: index into empty collection (n=%d)", n))
	}
	return int(g.NextUniform(0, uint64(n-1)))
}

// Uniform is NextUniform for any unsigned bound type.
func Uniform[T Unsigned](g *Generator, min, max T) T {
	return T(g.NextUniform(uint64(min), uint64(max)))
}

var (
	defaultOnce sync.Once
	defaultGen  *Generator
)

// Default returns the process-wide generator: entropy-seeded MT19937 with
// modulo reduction. It is built on first use. Prefer constructing an explicit
// Generator and passing it down; tests must never rely on this instance.
func Default() *Generator {
	defaultOnce.Do(func() {
		defaultGen = New(EntropySeed{}, NewMT19937, Modulo{})
	})
	return defaultGen
}

// Seed source names accepted by ParseSeedSource.
const (
	SeedSourceEntropy = "entropy"
	SeedSourceFixed   = "fixed"
	SeedSourceTime    = "time"
)

// Options selects each stage by name, as read from configuration.
type Options struct {
	SeedSource   string
	Seed         uint64
	Engine       string
	Distribution string
}

// DefaultOptions mirrors Default().
func DefaultOptions() Options {
	return Options{
		SeedSource:   SeedSourceEntropy,
		Engine:       EngineMT19937,
		Distribution: DistributionModulo,
	}
}

// FromOptions builds an independent Generator from named stages.
func FromOptions(opts Options) (*Generator, error) {
	src, err := ParseSeedSource(opts.SeedSource, opts.Seed)
	if err != nil {
		return nil, err
	}
	factory, err := ParseEngine(opts.Engine)
	if err != nil {
		return nil, err
	}
	dist, err := ParseDistribution(opts.Distribution)
	if err != nil {
		return nil, err
	}
	return New(src, factory, dist), nil
}

// ParseSeedSource resolves a seed source name. seed is only used by "fixed".
func ParseSeedSource(name string, seed uint64) (SeedSource, error) {
	switch name {
	case SeedSourceEntropy, "":
		return EntropySeed{}, nil
	case SeedSourceFixed:
		return FixedSeed(seed), nil
	case SeedSourceTime:
		return TimeSeed{}, nil
	default:
		return nil, fmt.Errorf("unknown seed source %q", name)
	}
}

// ParseEngine resolves an engine name.
func ParseEngine(name string) (EngineFactory, error) {
	if name == "" {
		name = EngineMT19937
	}
	f, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("unknown rng engine %q (want one of %v)", name, EngineNames())
	}
	return f, nil
}

// ParseDistribution resolves a distribution name.
func ParseDistribution(name string) (Distribution, error) {
	if name == "" {
		name = DistributionModulo
	}
	d, ok := distributions[name]
	if !ok {
		return nil, fmt.Errorf("unknown rng distribution %q (want one of %v)", name, DistributionNames())
	}
	return d, nil
}

// EngineNames lists the registered engines, sorted.
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for n := range engines {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DistributionNames lists the registered distributions, sorted.
func DistributionNames() []string {
	names := make([]string, 0, len(distributions))
	for n := range distributions {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
