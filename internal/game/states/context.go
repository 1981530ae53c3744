package states

import (
	"time"

	"github.com/rs/zerolog"
)

// LevelContext is the data states inspect and update on transitions
type LevelContext struct {
	LevelID string
	Logger  zerolog.Logger

	UnitCount int
	// MaxTurns ends the level after this many turns; 0 means unlimited
	MaxTurns int
	Turn     int

	StartTime          time.Time
	PauseTime          time.Time
	TotalPauseDuration time.Duration

	EndReason string
	Error     error
}

// NewLevelContext creates a new level context
func NewLevelContext(levelID string, logger zerolog.Logger) *LevelContext {
	return &LevelContext{
		LevelID: levelID,
		Logger:  logger.With().Str("level_id", levelID).Logger(),
	}
}

// GetElapsedTime returns the time elapsed since the level started, excluding pauses
func (lc *LevelContext) GetElapsedTime() time.Duration {
	if lc.StartTime.IsZero() {
		return 0
	}
	return time.Since(lc.StartTime) - lc.TotalPauseDuration
}

// TurnLimitReached reports whether MaxTurns turns have been played
func (lc *LevelContext) TurnLimitReached() bool {
	return lc.MaxTurns > 0 && lc.Turn >= lc.MaxTurns
}
