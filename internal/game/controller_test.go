package game

import (
	"testing"

	"github.com/mitchelldurbincs/GridArena/internal/game/core"
	"github.com/mitchelldurbincs/GridArena/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_CenterOfEmpty5x5(t *testing.T) {
	grid, r := testutil.CreateTestLevel(t, 5, 5, 12)
	gen := testutil.NewTestGenerator(42)
	ref := testutil.NewTestGenerator(42)

	candidates := []int{11, 13, 7, 17, 6, 8, 16, 18}
	require.Equal(t, candidates, grid.Adjacency(0).Slice())
	expected := candidates[ref.NextUniform(0, 7)]

	res := NewController(grid, r, gen, testutil.NopLogger()).Step()

	require.Len(t, res.Steps, 1)
	step := res.Steps[0]
	assert.True(t, step.Moved)
	assert.True(t, step.Drew)
	assert.Equal(t, 8, step.Candidates)
	assert.Equal(t, 12, step.From)
	assert.Equal(t, expected, step.To)
	assert.Equal(t, uint64(1), res.Draws)

	assert.Equal(t, core.TileEmpty, grid.Tile(12))
	assert.Equal(t, core.TileOccupied, grid.Tile(expected))
	assert.Equal(t, expected, grid.Position(0))
}

func TestController_CornerOf3x3(t *testing.T) {
	grid, r := testutil.CreateTestLevel(t, 3, 3, 0)
	require.Equal(t, []int{1, 3, 4}, grid.Adjacency(0).Slice())

	res := NewController(grid, r, testutil.NewTestGenerator(7), testutil.NopLogger()).Step()

	require.Len(t, res.Steps, 1)
	assert.Contains(t, []int{1, 3, 4}, res.Steps[0].To)
	assert.Equal(t, 3, res.Steps[0].Candidates)
	assert.Equal(t, core.TileEmpty, grid.Tile(0))
}

func TestController_SingleCandidateSkipsDraw(t *testing.T) {
	// 2x2 with three units: every unit in turn sees exactly one free tile,
	// and each move opens the tile the next unit takes.
	grid, r := testutil.CreateTestLevel(t, 2, 2, 0, 1, 2)
	gen := testutil.NewTestGenerator(1)

	res := NewController(grid, r, gen, testutil.NopLogger()).Step()

	assert.Equal(t, 3, res.Moved)
	assert.Zero(t, res.Held)
	assert.Zero(t, res.Draws)
	assert.Zero(t, gen.Draws())
	for _, s := range res.Steps {
		assert.False(t, s.Drew, "slot %d", s.Slot)
		assert.Equal(t, 1, s.Candidates, "slot %d", s.Slot)
	}

	assert.Equal(t, 3, grid.Position(0))
	assert.Equal(t, 0, grid.Position(1))
	assert.Equal(t, 1, grid.Position(2))
	assert.Equal(t, core.BottomRight, res.Steps[0].Direction)
	assert.Equal(t, core.Left, res.Steps[1].Direction)
	assert.Equal(t, core.TopRight, res.Steps[2].Direction)
}

func TestController_EnclosedUnitsHold(t *testing.T) {
	grid, r := testutil.CreateTestLevel(t, 3, 3, 0, 1, 2, 3, 4, 5, 6, 7, 8)
	before := grid.Positions()

	res := NewController(grid, r, testutil.NewTestGenerator(3), testutil.NopLogger()).Step()

	assert.Zero(t, res.Moved)
	assert.Equal(t, 9, res.Held)
	assert.Zero(t, res.Draws)
	assert.Equal(t, before, grid.Positions())
	for _, s := range res.Steps {
		assert.False(t, s.Moved)
		assert.Equal(t, s.From, s.To)
	}
}

func TestController_DeadUnitsKeepTheirTile(t *testing.T) {
	grid, r := testutil.CreateTestLevel(t, 4, 4, 5, 10)
	r.Unit(0).TakeDamage(r.Unit(0).HP)
	require.False(t, r.Unit(0).Alive())

	res := NewController(grid, r, testutil.NewTestGenerator(5), testutil.NopLogger()).Step()

	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Steps, 1)
	assert.Equal(t, 1, res.Steps[0].Slot)
	assert.Equal(t, 5, grid.Position(0))
	assert.Equal(t, core.TileOccupied, grid.Tile(5))
}

func TestController_SequentialResolutionInvariants(t *testing.T) {
	positions := []int{0, 1, 2, 3, 4, 35, 34, 33, 32, 31}
	grid, r := testutil.CreateTestLevel(t, 6, 6, positions...)
	c := NewController(grid, r, testutil.NewTestGenerator(2024), testutil.NopLogger())

	for turn := 0; turn < 200; turn++ {
		res := c.Step()
		for _, s := range res.Steps {
			if s.Moved {
				assert.Equal(t, 1, grid.Coord(s.From).ChebyshevDistance(grid.Coord(s.To)), "turn %d slot %d", turn, s.Slot)
			}
		}

		snap := grid.Snapshot()
		require.Equal(t, len(positions), snap.OccupiedCount(), "turn %d", turn)
		seen := make(map[int]bool)
		for slot, pos := range snap.Positions {
			require.False(t, seen[pos], "turn %d: two units on %d", turn, pos)
			seen[pos] = true
			assert.Equal(t, slot, grid.SlotAt(pos))
		}
	}
}

func TestController_Deterministic(t *testing.T) {
	run := func() [][]int {
		grid, r := testutil.CreateTestLevel(t, 7, 5, 0, 1, 2, 34, 33, 32)
		c := NewController(grid, r, testutil.NewTestGenerator(99), testutil.NopLogger())
		var history [][]int
		for i := 0; i < 50; i++ {
			c.Step()
			history = append(history, grid.Positions())
		}
		return history
	}

	assert.Equal(t, run(), run())
}

func BenchmarkController_Step(b *testing.B) {
	grid, r := testutil.CreateTestLevel(b, 20, 20, 0, 1, 2, 3, 4, 5, 399, 398, 397, 396, 395, 394)
	c := NewController(grid, r, testutil.NewTestGenerator(1), testutil.NopLogger())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Step()
	}
}
