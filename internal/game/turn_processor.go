package game

import (
	"context"
	"fmt"

	"github.com/mitchelldurbincs/GridArena/internal/game/core"
	"github.com/mitchelldurbincs/GridArena/internal/game/events"
	"github.com/mitchelldurbincs/GridArena/internal/game/states"
	"github.com/rs/zerolog"
)

// TurnProcessor handles the orchestration of a single turn
type TurnProcessor struct {
	engine *Engine
	logger zerolog.Logger
}

// NewTurnProcessor creates a new turn processor
func NewTurnProcessor(engine *Engine) *TurnProcessor {
	return &TurnProcessor{
		engine: engine,
		logger: engine.logger,
	}
}

// ProcessTurn runs one controller pass and publishes its events. When the
// turn limit is reached the level ends after this turn.
func (tp *TurnProcessor) ProcessTurn(ctx context.Context) (TurnResult, error) {
	if err := tp.checkContext(ctx); err != nil {
		return TurnResult{}, err
	}
	if err := tp.validateLevelState(); err != nil {
		return TurnResult{}, err
	}

	e := tp.engine
	e.turn++
	lctx := e.stateMachine.GetContext()
	lctx.Turn = e.turn

	turnLogger := tp.logger.With().Int("turn", e.turn).Logger()
	turnLogger.Debug().Msg("Starting turn")
	e.eventBus.Publish(events.NewTurnStartedEvent(e.levelID, e.turn))

	res := e.controller.Step()
	res.Turn = e.turn
	tp.publishUnitEvents(res)

	e.monitor.Record(e.turn, res.Moved, res.Held, res.Draws, res.Elapsed)
	e.eventBus.Publish(events.NewTurnEndedEvent(e.levelID, e.turn, res.Moved, res.Held, int(res.Draws), res.Elapsed))

	turnLogger.Debug().
		Int("moved", res.Moved).
		Int("held", res.Held).
		Int("skipped", res.Skipped).
		Uint64("draws", res.Draws).
		Msg("Turn finished")

	if reason := tp.endReason(); reason != "" {
		if err := e.end(reason); err != nil {
			return res, core.WrapTurnError(e.turn, err)
		}
	}
	return res, nil
}

// endReason reports why the level should end after this turn, or ""
func (tp *TurnProcessor) endReason() string {
	e := tp.engine
	outcome := e.winCondition.Check(e.roster.Alive())
	switch {
	case outcome.Over && outcome.Draw:
		return "all teams eliminated"
	case outcome.Over:
		return fmt.Sprintf("team %s wins", outcome.Winner)
	case e.stateMachine.GetContext().TurnLimitReached():
		return "turn limit reached"
	default:
		return ""
	}
}

// checkContext checks if the context is cancelled
func (tp *TurnProcessor) checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		tp.logger.Warn().
			Err(ctx.Err()).
			Int("turn", tp.engine.turn).
			Msg("Turn cancelled or timed out")
		return ctx.Err()
	default:
		return nil
	}
}

// validateLevelState ensures the level accepts a turn trigger
func (tp *TurnProcessor) validateLevelState() error {
	phase := tp.engine.stateMachine.CurrentPhase()
	if phase.CanStep() {
		return nil
	}

	tp.logger.Debug().
		Str("current_phase", phase.String()).
		Int("turn", tp.engine.turn).
		Msg("Turn trigger ignored")

	switch phase {
	case states.PhasePaused:
		return core.WrapTurnError(tp.engine.turn, core.ErrLevelPaused)
	case states.PhaseEnded, states.PhaseError:
		return core.WrapTurnError(tp.engine.turn, core.ErrLevelEnded)
	default:
		return core.WrapTurnError(tp.engine.turn, fmt.Errorf("%w: level is %s", core.ErrInvalidTransition, phase))
	}
}

func (tp *TurnProcessor) publishUnitEvents(res TurnResult) {
	e := tp.engine
	for _, s := range res.Steps {
		if s.Moved {
			e.eventBus.Publish(events.NewUnitMovedEvent(e.levelID, res.Turn, s.Slot, s.Team, s.From, s.To, s.Direction, s.Candidates))
		} else {
			e.eventBus.Publish(events.NewUnitHeldEvent(e.levelID, res.Turn, s.Slot, s.Team, s.From))
		}
	}
}
