package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimension  = errors.New("invalid grid dimension")
	ErrCapacityExceeded  = errors.New("team size exceeds grid capacity")
	ErrLevelEnded        = errors.New("level has ended")
	ErrLevelPaused       = errors.New("level is paused")
	ErrInvalidTransition = errors.New("invalid level phase transition")
)

// SetupError describes a failure while constructing a level. It unwraps to
// one of the sentinel errors above so callers can use errors.Is.
type SetupError struct {
	Op       string
	Width    int
	Height   int
	TeamSize int
	Err      error
}

func (e *SetupError) Error() string {
	if e.TeamSize > 0 {
		return fmt.Sprintf("%s (%dx%d, team size %d): %v", e.Op, e.Width, e.Height, e.TeamSize, e.Err)
	}
	return fmt.Sprintf("%s (%dx%d): %v", e.Op, e.Width, e.Height, e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }

// WrapSetupError attaches grid dimensions to a setup failure.
// Returns nil if err is nil.
func WrapSetupError(op string, width, height int, err error) error {
	if err == nil {
		return nil
	}
	return &SetupError{Op: op, Width: width, Height: height, Err: err}
}

// WrapTurnError adds turn context to an error raised while advancing a level.
func WrapTurnError(turn int, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("turn %d: %w", turn, err)
}
