package testutil

import (
	"testing"

	"github.com/mitchelldurbincs/GridArena/internal/game/core"
	"github.com/mitchelldurbincs/GridArena/internal/game/roster"
)

// CreateTestGrid creates an empty grid, failing the test on error
func CreateTestGrid(t testing.TB, width, height int) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(width, height)
	if err != nil {
		t.Fatalf("create %dx%d grid: %v", width, height, err)
	}
	return g
}

// CreateTestLevel places one melee unit per entry of positions, alternating
// teams A and B, and returns the grid with its roster. Slot i is positions[i].
func CreateTestLevel(t testing.TB, width, height int, positions ...int) (*core.Grid, *roster.Roster) {
	t.Helper()
	g := CreateTestGrid(t, width, height)
	r := roster.New()
	for i, pos := range positions {
		team := core.TeamA
		if i%2 == 1 {
			team = core.TeamB
		}
		r.Add(g, core.NewUnit(core.KindMeleeAttacker, team), pos)
	}
	return g, r
}
