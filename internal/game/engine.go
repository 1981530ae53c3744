package game

import (
	"context"
	"fmt"

	"github.com/mitchelldurbincs/GridArena/internal/game/core"
	"github.com/mitchelldurbincs/GridArena/internal/game/events"
	"github.com/mitchelldurbincs/GridArena/internal/game/rng"
	"github.com/mitchelldurbincs/GridArena/internal/game/roster"
	"github.com/mitchelldurbincs/GridArena/internal/game/rules"
	"github.com/mitchelldurbincs/GridArena/internal/game/states"
	"github.com/mitchelldurbincs/GridArena/internal/monitoring"
	"github.com/rs/zerolog"
)

// GameConfig describes one level
type GameConfig struct {
	Width    int
	Height   int
	TeamSize int
	// MaxTurns ends the level after this many turns; 0 means unlimited
	MaxTurns int
	Kind     core.UnitKind

	// RNG names the generator stages. Ignored when Generator is set.
	RNG       rng.Options
	Generator *rng.Generator

	Logger  zerolog.Logger
	LevelID string
	// EventBus is created when nil
	EventBus *events.EventBus
}

// Engine owns one level: its grid, roster, generator and lifecycle.
// It is not safe for concurrent use.
type Engine struct {
	grid       *core.Grid
	roster     *roster.Roster
	gen        *rng.Generator
	controller *Controller
	turn       int

	logger        zerolog.Logger
	eventBus      *events.EventBus
	levelID       string
	stateMachine  *states.StateMachine
	turnProcessor *TurnProcessor
	monitor       *monitoring.TurnMonitor
	winCondition  *rules.WinConditionChecker
}

// NewEngine builds a level and moves it to the Running phase
func NewEngine(ctx context.Context, cfg GameConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

// Step advances the level by one turn
func (e *Engine) Step(ctx context.Context) (TurnResult, error) {
	return e.turnProcessor.ProcessTurn(ctx)
}

// Pause stops turn processing until Resume
func (e *Engine) Pause() error {
	return e.stateMachine.TransitionTo(states.PhasePaused, "pause requested")
}

// Resume continues a paused level
func (e *Engine) Resume() error {
	return e.stateMachine.TransitionTo(states.PhaseRunning, "resume requested")
}

// Hit applies attacker's damage to target and reports whether the hit
// killed it. Dead units stay on their tile and are skipped by the controller.
func (e *Engine) Hit(attacker, target int) bool {
	a, t := e.roster.Unit(attacker), e.roster.Unit(target)
	wasAlive := t.Alive()
	a.Hit(t)
	return wasAlive && !t.Alive()
}

// Stop ends the level early
func (e *Engine) Stop(reason string) error {
	return e.end(reason)
}

func (e *Engine) end(reason string) error {
	if err := e.stateMachine.End(reason); err != nil {
		return fmt.Errorf("end level: %w", err)
	}
	lctx := e.stateMachine.GetContext()
	e.eventBus.Publish(events.NewLevelEndedEvent(e.levelID, e.turn, reason, lctx.GetElapsedTime()))
	e.logger.Info().
		Int("final_turn", e.turn).
		Object("metrics", e.monitor.GetMetrics()).
		Msg("Level finished")
	return nil
}

// Public accessors
func (e *Engine) ID() string                        { return e.levelID }
func (e *Engine) Turn() int                         { return e.turn }
func (e *Engine) Phase() states.LevelPhase          { return e.stateMachine.CurrentPhase() }
func (e *Engine) IsOver() bool                      { return e.Phase().IsTerminal() }
func (e *Engine) Snapshot() core.Snapshot           { return e.grid.Snapshot() }
func (e *Engine) Units() []core.Unit                { return e.roster.Units() }
func (e *Engine) Seed() uint64                      { return e.gen.Seed() }
func (e *Engine) EventBus() *events.EventBus        { return e.eventBus }
func (e *Engine) Metrics() monitoring.TurnMetrics   { return e.monitor.GetMetrics() }
func (e *Engine) History() []states.Transition      { return e.stateMachine.GetHistory() }
func (e *Engine) MaxTurns() int                     { return e.stateMachine.GetContext().MaxTurns }
func (e *Engine) AliveByTeam() map[core.Team]int    { return e.roster.Alive() }
func (e *Engine) Adjacency(slot int) core.Adjacency { return e.grid.Adjacency(slot) }

// SlotAt returns the unit slot on tile (x, y), or core.NoUnit when the tile
// is empty or off the grid.
func (e *Engine) SlotAt(x, y int) int {
	if !e.grid.InBounds(x, y) {
		return core.NoUnit
	}
	return e.grid.SlotAt(e.grid.Idx(x, y))
}
