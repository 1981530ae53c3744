package rng

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/seehuhn/mt19937"
)

// BitEngine is a deterministic pseudo-random bit generator. Its state
// advances on every call. It satisfies math/rand/v2.Source so library
// distributions can drive it directly.
type BitEngine interface {
	Uint64() uint64
}

// EngineFactory builds a fresh engine from a seed.
type EngineFactory func(seed uint64) BitEngine

// NewMT19937 returns a 64-bit Mersenne Twister.
func NewMT19937(seed uint64) BitEngine {
	mt := mt19937.New()
	mt.Seed(int64(seed))
	return mt
}

// pcgStream is mixed into the second PCG seed word.
const pcgStream = 0xda3e39cb94b95bdb

// NewPCG returns a permuted congruential generator.
func NewPCG(seed uint64) BitEngine {
	return rand.NewPCG(seed, seed^pcgStream)
}

// NewChaCha8 returns a ChaCha8 stream generator keyed from seed.
func NewChaCha8(seed uint64) BitEngine {
	var key [32]byte
	s := seed
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(key[i*8:], splitmix64(&s))
	}
	return rand.NewChaCha8(key)
}

// splitmix64 expands one seed word into well-mixed key material.
func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Xorshift is a xorshift64 generator (shifts 13, 17, 5). Fast, small state,
// weak statistical quality.
type Xorshift struct {
	state uint64
}

// NewXorshift returns a xorshift64 engine. A zero seed is replaced by 1
// because zero is a fixed point.
func NewXorshift(seed uint64) BitEngine {
	if seed == 0 {
		seed = 1
	}
	return &Xorshift{state: seed}
}

func (x *Xorshift) Uint64() uint64 {
	x.state ^= x.state << 13
	x.state ^= x.state >> 17
	x.state ^= x.state << 5
	return x.state
}

// Engine names accepted by ParseEngine.
const (
	EngineMT19937  = "mt19937"
	EnginePCG      = "pcg"
	EngineChaCha8  = "chacha8"
	EngineXorshift = "xorshift"
)

var engines = map[string]EngineFactory{
	EngineMT19937:  NewMT19937,
	EnginePCG:      NewPCG,
	EngineChaCha8:  NewChaCha8,
	EngineXorshift: NewXorshift,
}
