package rng

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type combo struct {
	name    string
	factory EngineFactory
	dist    Distribution
}

func allCombos() []combo {
	var out []combo
	for _, en := range EngineNames() {
		for _, dn := range DistributionNames() {
			out = append(out, combo{en + "/" + dn, engines[en], distributions[dn]})
		}
	}
	return out
}

func TestGenerator_SameSeedSameSequence(t *testing.T) {
	bounds := [][2]uint64{{0, 7}, {3, 3}, {10, 1000}, {0, 1}, {5, 1 << 40}}

	for _, c := range allCombos() {
		t.Run(c.name, func(t *testing.T) {
			a := New(FixedSeed(42), c.factory, c.dist)
			b := New(FixedSeed(42), c.factory, c.dist)

			for i := 0; i < 500; i++ {
				bd := bounds[i%len(bounds)]
				require.Equal(t, a.NextUniform(bd[0], bd[1]), b.NextUniform(bd[0], bd[1]), "draw %d", i)
			}
			assert.Equal(t, uint64(500), a.Draws())
			assert.Equal(t, uint64(42), a.Seed())
		})
	}
}

func TestGenerator_DifferentSeedsDiverge(t *testing.T) {
	for _, c := range allCombos() {
		t.Run(c.name, func(t *testing.T) {
			a := New(FixedSeed(1), c.factory, c.dist)
			b := New(FixedSeed(2), c.factory, c.dist)

			same := 0
			for i := 0; i < 64; i++ {
				if a.NextUniform(0, 1<<32) == b.NextUniform(0, 1<<32) {
					same++
				}
			}
			assert.Less(t, same, 64)
		})
	}
}

func TestGenerator_RangeLaw(t *testing.T) {
	bounds := [][2]uint64{
		{0, 0},
		{7, 7},
		{0, 1},
		{0, 7},
		{1, 6},
		{100, 200},
		{0, 1<<63 + 5},
		{1 << 62, 1<<62 + 2},
	}

	for _, c := range allCombos() {
		t.Run(c.name, func(t *testing.T) {
			g := New(FixedSeed(20240601), c.factory, c.dist)
			for i := 0; i < 12000; i++ {
				bd := bounds[i%len(bounds)]
				v := g.NextUniform(bd[0], bd[1])
				require.GreaterOrEqual(t, v, bd[0])
				require.LessOrEqual(t, v, bd[1])
				if bd[0] == bd[1] {
					require.Equal(t, bd[0], v)
				}
			}
		})
	}
}

func TestGenerator_FullRange(t *testing.T) {
	for _, c := range allCombos() {
		g := New(FixedSeed(9), c.factory, c.dist)
		assert.NotPanics(t, func() { g.NextUniform(0, ^uint64(0)) }, c.name)
	}
}

func TestGenerator_CoversSmallRange(t *testing.T) {
	for _, c := range allCombos() {
		t.Run(c.name, func(t *testing.T) {
			g := New(FixedSeed(3), c.factory, c.dist)
			seen := make(map[uint64]int)
			for i := 0; i < 4000; i++ {
				seen[g.NextUniform(0, 7)]++
			}
			assert.Len(t, seen, 8)
		})
	}
}

func TestGenerator_InvalidRangePanics(t *testing.T) {
	g := New(FixedSeed(1), NewPCG, Modulo{})
	assert.Panics(t, func() { g.NextUniform(5, 4) })
	assert.Panics(t, func() { g.Index(0) })
	assert.Equal(t, uint64(0), g.Draws())
}

func TestGenerator_Index(t *testing.T) {
	g := New(FixedSeed(11), NewMT19937, Standard{})
	for i := 0; i < 1000; i++ {
		v := g.Index(8)
		require.True(t, v >= 0 && v < 8)
	}
	assert.Equal(t, 0, g.Index(1))
}

func TestStandard_BoundMatchesUnbound(t *testing.T) {
	g := New(FixedSeed(77), NewPCG, Standard{})
	raw := NewPCG(77)

	for i := 0; i < 500; i++ {
		want := Standard{}.Distribute(raw, 3, 3+uint64(i))
		require.Equal(t, want, g.NextUniform(3, 3+uint64(i)), "draw %d", i)
	}
	assert.Equal(t, Standard{}.Distribute(raw, 0, ^uint64(0)), g.NextUniform(0, ^uint64(0)))
}

func TestGenerator_DrawsDoNotAllocate(t *testing.T) {
	for _, dist := range []Distribution{Modulo{}, Standard{}} {
		g := New(FixedSeed(5), NewPCG, dist)
		allocs := testing.AllocsPerRun(200, func() {
			g.NextUniform(0, 9)
		})
		assert.Zero(t, allocs, "%T", dist)
	}
}

type slotID uint

func TestUniform_Generic(t *testing.T) {
	g := New(FixedSeed(5), NewXorshift, Modulo{})

	for i := 0; i < 1000; i++ {
		v8 := Uniform[uint8](g, 10, 20)
		require.True(t, v8 >= 10 && v8 <= 20)

		v32 := Uniform(g, uint32(0), uint32(3))
		require.LessOrEqual(t, v32, uint32(3))

		vs := Uniform(g, slotID(2), slotID(2))
		require.Equal(t, slotID(2), vs)
	}
}

func TestGenerator_Uint64AdvancesEngine(t *testing.T) {
	a := New(FixedSeed(77), NewChaCha8, Modulo{})
	b := New(FixedSeed(77), NewChaCha8, Modulo{})

	assert.Equal(t, a.Uint64(), b.Uint64())
	assert.Equal(t, uint64(1), a.Draws())
}

func TestModulo_ReducesRawValue(t *testing.T) {
	e := &scriptedEngine{values: []uint64{17, 8, 0}}

	assert.Equal(t, uint64(1+17%8), Modulo{}.Distribute(e, 1, 8))
	assert.Equal(t, uint64(0), Modulo{}.Distribute(e, 0, 7))
	assert.Equal(t, uint64(5), Modulo{}.Distribute(e, 5, 9))
}

func TestXorshift_KnownSequence(t *testing.T) {
	e := NewXorshift(1)
	assert.Equal(t, uint64(270369), e.Uint64())
	assert.Equal(t, uint64(68787111425), e.Uint64())
	assert.Equal(t, uint64(18597760640231621), e.Uint64())

	zero := NewXorshift(0)
	assert.NotEqual(t, uint64(0), zero.Uint64())
}

func TestSeedSources(t *testing.T) {
	assert.Equal(t, uint64(99), FixedSeed(99).Seed())
	assert.Equal(t, uint64(4), SeedFunc(func() uint64 { return 4 }).Seed())

	at := time.Unix(0, 123456789)
	assert.Equal(t, uint64(123456789), TimeSeed{Now: func() time.Time { return at }}.Seed())
	assert.NotZero(t, TimeSeed{}.Seed())

	// Entropy seeds are not reproducible; two reads colliding is vanishingly unlikely.
	assert.NotEqual(t, EntropySeed{}.Seed(), EntropySeed{}.Seed())
}

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{"defaults", DefaultOptions(), ""},
		{"empty names fall back", Options{}, ""},
		{"fixed pcg standard", Options{SeedSource: "fixed", Seed: 8, Engine: "pcg", Distribution: "standard"}, ""},
		{"time xorshift", Options{SeedSource: "time", Engine: "xorshift", Distribution: "modulo"}, ""},
		{"bad seed source", Options{SeedSource: "dice"}, "unknown seed source"},
		{"bad engine", Options{Engine: "lcg"}, "unknown rng engine"},
		{"bad distribution", Options{Distribution: "gauss"}, "unknown rng distribution"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := FromOptions(tt.opts)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, g)
		})
	}
}

func TestFromOptions_FixedSeedReproducible(t *testing.T) {
	opts := Options{SeedSource: SeedSourceFixed, Seed: 2024, Engine: EngineMT19937, Distribution: DistributionModulo}
	a, err := FromOptions(opts)
	require.NoError(t, err)
	b, err := FromOptions(opts)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Index(8), b.Index(8))
	}
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"chacha8", "mt19937", "pcg", "xorshift"}, EngineNames())
	assert.Equal(t, []string{"modulo", "standard"}, DistributionNames())
}

func TestDefault_IsSingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}

type scriptedEngine struct {
	values []uint64
	i      int
}

func (s *scriptedEngine) Uint64() uint64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

func BenchmarkDistributions(b *testing.B) {
	for _, c := range allCombos() {
		b.Run(c.name, func(b *testing.B) {
			g := New(FixedSeed(1), c.factory, c.dist)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = g.NextUniform(0, 7)
			}
		})
	}
}

func ExampleGenerator_Index() {
	g := New(FixedSeed(1), NewXorshift, Modulo{})
	fmt.Println(g.Index(1))
	// Output: 0
}
