package states

import "fmt"

// LevelPhase is the lifecycle phase of a level
type LevelPhase int

const (
	// PhaseInitializing - grid construction and unit placement
	PhaseInitializing LevelPhase = iota

	// PhaseRunning - turns are being advanced
	PhaseRunning

	// PhasePaused - turn trigger ignored until resumed
	PhasePaused

	// PhaseEnded - final state, no further turns
	PhaseEnded

	// PhaseError - setup or turn processing failed
	PhaseError
)

var phaseNames = map[LevelPhase]string{
	PhaseInitializing: "Initializing",
	PhaseRunning:      "Running",
	PhasePaused:       "Paused",
	PhaseEnded:        "Ended",
	PhaseError:        "Error",
}

func (p LevelPhase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", int(p))
}

// IsTerminal returns true if the phase represents a terminal state
func (p LevelPhase) IsTerminal() bool {
	return p == PhaseEnded || p == PhaseError
}

// CanStep returns true if a turn may be advanced in this phase
func (p LevelPhase) CanStep() bool {
	return p == PhaseRunning
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p LevelPhase) AllowedTransitions() []LevelPhase {
	switch p {
	case PhaseInitializing:
		return []LevelPhase{PhaseRunning, PhaseError}
	case PhaseRunning:
		return []LevelPhase{PhasePaused, PhaseEnded, PhaseError}
	case PhasePaused:
		return []LevelPhase{PhaseRunning, PhaseEnded, PhaseError}
	default:
		return nil
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p LevelPhase) CanTransitionTo(target LevelPhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}
