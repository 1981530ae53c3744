package game

import (
	"time"

	"github.com/mitchelldurbincs/GridArena/internal/common"
	"github.com/mitchelldurbincs/GridArena/internal/game/core"
	"github.com/mitchelldurbincs/GridArena/internal/game/rng"
	"github.com/mitchelldurbincs/GridArena/internal/game/roster"
	"github.com/rs/zerolog"
)

// UnitStep records what one unit did during a controller pass
type UnitStep struct {
	Slot       int
	Team       core.Team
	From       int
	To         int // equals From when the unit held
	Candidates int
	Direction  core.Direction
	Moved      bool
	Drew       bool // an RNG draw picked the destination
}

// TurnResult summarizes one controller pass in roster order
type TurnResult struct {
	Turn    int
	Steps   []UnitStep
	Moved   int
	Held    int
	Skipped int // dead units
	Draws   uint64
	Elapsed time.Duration
}

// Controller moves every live unit one tile per pass. Moves are applied
// immediately, so a later unit's adjacency already reflects earlier moves.
type Controller struct {
	grid   *core.Grid
	roster *roster.Roster
	gen    *rng.Generator
	logger zerolog.Logger
}

// NewController creates a controller over a populated grid and its roster
func NewController(grid *core.Grid, r *roster.Roster, gen *rng.Generator, logger zerolog.Logger) *Controller {
	return &Controller{
		grid:   grid,
		roster: r,
		gen:    gen,
		logger: logger.With().Str("component", "Controller").Logger(),
	}
}

// Step runs one pass over the roster
func (c *Controller) Step() TurnResult {
	start := time.Now()
	drawsBefore := c.gen.Draws()

	res := TurnResult{Steps: make([]UnitStep, 0, c.roster.Len())}
	for slot := 0; slot < c.roster.Len(); slot++ {
		u := c.roster.Unit(slot)
		if !u.Alive() {
			res.Skipped++
			continue
		}

		step := c.stepUnit(slot, u.Team)
		if step.Moved {
			res.Moved++
		} else {
			res.Held++
		}
		res.Steps = append(res.Steps, step)
	}

	res.Draws = c.gen.Draws() - drawsBefore
	res.Elapsed = common.TimeTrack(start, "controller pass", c.logger)
	return res
}

func (c *Controller) stepUnit(slot int, team core.Team) UnitStep {
	from := c.grid.Position(slot)
	adj := c.grid.Adjacency(slot)
	step := UnitStep{
		Slot:       slot,
		Team:       team,
		From:       from,
		To:         from,
		Candidates: adj.Len(),
	}

	if adj.Empty() {
		c.logger.Trace().Int("slot", slot).Int("position", from).Msg("No legal move, holding")
		return step
	}

	// A single candidate is taken without a draw
	var choice int
	if adj.Len() > 1 {
		choice = c.gen.Index(adj.Len())
		step.Drew = true
	}

	step.To = adj.At(choice)
	step.Direction = adj.DirectionAt(choice)
	step.Moved = true
	c.grid.Move(slot, step.To)

	c.logger.Trace().
		Int("slot", slot).
		Int("from", from).
		Int("to", step.To).
		Str("direction", step.Direction.String()).
		Int("candidates", step.Candidates).
		Msg("Unit moved")
	return step
}
