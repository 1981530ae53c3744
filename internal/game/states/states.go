package states

import (
	"errors"
	"time"
)

// InitializingState covers grid construction and unit placement
type InitializingState struct{}

func NewInitializingState() State { return &InitializingState{} }

func (s *InitializingState) Phase() LevelPhase { return PhaseInitializing }

func (s *InitializingState) Enter(ctx *LevelContext) error {
	ctx.Logger.Debug().Msg("Entering Initializing state")
	return nil
}

func (s *InitializingState) Exit(ctx *LevelContext) error {
	ctx.Logger.Debug().Int("units", ctx.UnitCount).Msg("Level setup complete")
	return nil
}

func (s *InitializingState) Validate(ctx *LevelContext) error { return nil }

// RunningState accepts turn triggers
type RunningState struct{}

func NewRunningState() State { return &RunningState{} }

func (s *RunningState) Phase() LevelPhase { return PhaseRunning }

func (s *RunningState) Enter(ctx *LevelContext) error {
	if ctx.StartTime.IsZero() {
		ctx.StartTime = time.Now()
		ctx.Logger.Info().
			Time("start_time", ctx.StartTime).
			Int("units", ctx.UnitCount).
			Msg("Level running")
	}
	return nil
}

func (s *RunningState) Exit(ctx *LevelContext) error {
	ctx.Logger.Debug().
		Int("turn", ctx.Turn).
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Leaving Running state")
	return nil
}

func (s *RunningState) Validate(ctx *LevelContext) error {
	if ctx.TurnLimitReached() {
		return errors.New("turn limit already reached")
	}
	return nil
}

// PausedState ignores turn triggers until resumed
type PausedState struct{}

func NewPausedState() State { return &PausedState{} }

func (s *PausedState) Phase() LevelPhase { return PhasePaused }

func (s *PausedState) Enter(ctx *LevelContext) error {
	ctx.PauseTime = time.Now()
	ctx.Logger.Info().Int("turn", ctx.Turn).Msg("Level paused")
	return nil
}

func (s *PausedState) Exit(ctx *LevelContext) error {
	if !ctx.PauseTime.IsZero() {
		ctx.TotalPauseDuration += time.Since(ctx.PauseTime)
		ctx.PauseTime = time.Time{}
		ctx.Logger.Info().
			Dur("total_pause_duration", ctx.TotalPauseDuration).
			Msg("Level resumed")
	}
	return nil
}

func (s *PausedState) Validate(ctx *LevelContext) error {
	if ctx.StartTime.IsZero() {
		return errors.New("cannot pause a level that has not started")
	}
	return nil
}

// EndedState is final
type EndedState struct{}

func NewEndedState() State { return &EndedState{} }

func (s *EndedState) Phase() LevelPhase { return PhaseEnded }

func (s *EndedState) Enter(ctx *LevelContext) error {
	ctx.Logger.Info().
		Int("final_turn", ctx.Turn).
		Str("reason", ctx.EndReason).
		Dur("elapsed", ctx.GetElapsedTime()).
		Msg("Level ended")
	return nil
}

func (s *EndedState) Exit(ctx *LevelContext) error { return nil }

func (s *EndedState) Validate(ctx *LevelContext) error {
	if ctx.EndReason == "" {
		return errors.New("level cannot end without a reason")
	}
	return nil
}

// ErrorState records the failure that stopped the level
type ErrorState struct{}

func NewErrorState() State { return &ErrorState{} }

func (s *ErrorState) Phase() LevelPhase { return PhaseError }

func (s *ErrorState) Enter(ctx *LevelContext) error {
	ctx.Logger.Error().Err(ctx.Error).Int("turn", ctx.Turn).Msg("Level entered error state")
	return nil
}

func (s *ErrorState) Exit(ctx *LevelContext) error { return nil }

func (s *ErrorState) Validate(ctx *LevelContext) error {
	if ctx.Error == nil {
		return errors.New("error state requires an error")
	}
	return nil
}
