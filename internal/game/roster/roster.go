package roster

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/GridArena/internal/game/core"
)

// Roster owns every unit in a level. A unit's index in the roster equals its
// grid slot, so the grid never needs a reference back to the unit.
type Roster struct {
	units  []core.Unit
	logger zerolog.Logger
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{units: make([]core.Unit, 0, 16), logger: zerolog.Nop()}
}

func (r *Roster) SetLogger(logger zerolog.Logger) {
	r.logger = logger.With().Str("component", "roster").Logger()
}

// Capacity is the largest team size a grid of the given dimensions accepts.
func Capacity(width, height int) int {
	return (width * height) / 2
}

// Spawn places two teams of teamSize units in opposite corners: team A fills
// indices 0,1,2,... and team B fills W*H-1, W*H-2, ... in scan order.
// The grid must be empty.
func (r *Roster) Spawn(g *core.Grid, teamSize int, kind core.UnitKind) error {
	if teamSize < 0 || teamSize > Capacity(g.W, g.H) {
		r.logger.Warn().
			Int("width", g.W).
			Int("height", g.H).
			Int("team_size", teamSize).
			Int("capacity", Capacity(g.W, g.H)).
			Msg("Team size rejected")
		return &core.SetupError{
			Op:       "spawn teams",
			Width:    g.W,
			Height:   g.H,
			TeamSize: teamSize,
			Err:      fmt.Errorf("%w: at most %d per team", core.ErrCapacityExceeded, Capacity(g.W, g.H)),
		}
	}
	if g.UnitCount() != 0 || len(r.units) != 0 {
		panic("roster: spawn into a populated grid")
	}

	for i := 0; i < teamSize; i++ {
		r.Add(g, core.NewUnit(kind, core.TeamA), i)
	}
	last := g.Size() - 1
	for i := 0; i < teamSize; i++ {
		r.Add(g, core.NewUnit(kind, core.TeamB), last-i)
	}
	r.logger.Debug().
		Int("team_size", teamSize).
		Stringer("kind", kind).
		Ints("positions", g.Positions()).
		Msg("Teams spawned")
	return nil
}

// Add places u on idx and takes ownership of it. Returns the assigned slot.
func (r *Roster) Add(g *core.Grid, u core.Unit, idx int) int {
	slot := g.Place(idx)
	if slot != len(r.units) {
		panic(fmt.Sprintf("roster: grid slot %d out of step with roster size %d", slot, len(r.units)))
	}
	u.Slot = slot
	r.units = append(r.units, u)
	return slot
}

// Len returns the number of units, alive or not.
func (r *Roster) Len() int { return len(r.units) }

// Unit returns the unit in slot for in-place mutation.
func (r *Roster) Unit(slot int) *core.Unit {
	return &r.units[slot]
}

// Units returns a copy of all units in slot order.
func (r *Roster) Units() []core.Unit {
	out := make([]core.Unit, len(r.units))
	copy(out, r.units)
	return out
}

// Alive counts living units per team.
func (r *Roster) Alive() map[core.Team]int {
	counts := make(map[core.Team]int, 2)
	for i := range r.units {
		if r.units[i].Alive() {
			counts[r.units[i].Team]++
		}
	}
	return counts
}
