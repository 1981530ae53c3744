package renderer

import (
	"testing"

	"github.com/mitchelldurbincs/GridArena/internal/common"
	"github.com/mitchelldurbincs/GridArena/internal/game/core"
	"github.com/stretchr/testify/assert"
)

func testUnits() []core.Unit {
	a := core.NewUnit(core.KindMeleeAttacker, core.TeamA)
	b := core.NewUnit(core.KindMeleeAttacker, core.TeamB)
	dead := core.NewUnit(core.KindMeleeAttacker, core.TeamB)
	dead.TakeDamage(dead.HP)
	return []core.Unit{a, b, dead}
}

func TestTileColor(t *testing.T) {
	units := testUnits()

	assert.Equal(t, common.EmptyTileColor, TileColor(core.TileEmpty, core.NoUnit, units))
	assert.Equal(t, common.TeamColor(0), TileColor(core.TileOccupied, 0, units))
	assert.Equal(t, common.TeamColor(1), TileColor(core.TileOccupied, 1, units))
	assert.Equal(t, common.DeadUnitColor, TileColor(core.TileOccupied, 2, units))
	assert.Equal(t, common.TeamColor(-1), TileColor(core.TileOccupied, 9, units))
}

func TestTileLabel(t *testing.T) {
	units := testUnits()

	assert.Equal(t, "", TileLabel(core.TileEmpty, core.NoUnit, units))
	assert.Equal(t, "A", TileLabel(core.TileOccupied, 0, units))
	assert.Equal(t, "B", TileLabel(core.TileOccupied, 1, units))
	assert.Equal(t, "x", TileLabel(core.TileOccupied, 2, units))
	assert.Equal(t, "", TileLabel(core.TileOccupied, 7, units))
}

func TestOccupants(t *testing.T) {
	snap := core.Snapshot{
		Width:     3,
		Height:    2,
		Tiles:     []core.TileState{core.TileOccupied, core.TileEmpty, core.TileEmpty, core.TileEmpty, core.TileEmpty, core.TileOccupied},
		Positions: []int{5, 0},
	}
	assert.Equal(t, []int{1, core.NoUnit, core.NoUnit, core.NoUnit, core.NoUnit, 0}, occupants(snap))
}

func TestEnhancedBoardRenderer_Selection(t *testing.T) {
	g, err := core.NewGrid(3, 3)
	assert.NoError(t, err)
	g.Place(0)

	ebr := NewEnhancedBoardRenderer(16, nil)
	assert.Equal(t, 16, ebr.TileSize())
	assert.Empty(t, ebr.Candidates())

	assert.False(t, ebr.IsCandidate(0), "nothing highlighted before a selection")

	ebr.SetSelection(0, g.Adjacency(0))
	assert.Equal(t, []int{1, 3, 4}, ebr.Candidates())
	for idx := 0; idx < 9; idx++ {
		want := idx == 1 || idx == 3 || idx == 4
		assert.Equal(t, want, ebr.IsCandidate(idx), "tile %d", idx)
	}

	ebr.ClearSelection()
	assert.Empty(t, ebr.Candidates())
	assert.False(t, ebr.IsCandidate(1))
}
