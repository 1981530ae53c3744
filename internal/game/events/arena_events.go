package events

import (
	"time"

	"github.com/mitchelldurbincs/GridArena/internal/game/core"
)

// Event type constants
const (
	TypeLevelCreated    = "level.created"
	TypeLevelEnded      = "level.ended"
	TypeTurnStarted     = "turn.started"
	TypeTurnEnded       = "turn.ended"
	TypeUnitMoved       = "unit.moved"
	TypeUnitHeld        = "unit.held"
	TypeStateTransition = "state.transition"
)

// LevelCreatedEvent is published once the grid is built and teams are placed
type LevelCreatedEvent struct {
	BaseEvent
	Width    int
	Height   int
	TeamSize int
	Seed     uint64
	Engine   string
	Policy   string
}

func NewLevelCreatedEvent(levelID string, width, height, teamSize int, seed uint64, engine, policy string) *LevelCreatedEvent {
	return &LevelCreatedEvent{
		BaseEvent: newBase(TypeLevelCreated, levelID),
		Width:     width,
		Height:    height,
		TeamSize:  teamSize,
		Seed:      seed,
		Engine:    engine,
		Policy:    policy,
	}
}

// LevelEndedEvent is published when the level stops accepting turns
type LevelEndedEvent struct {
	BaseEvent
	FinalTurn int
	Reason    string
	Duration  time.Duration
}

func NewLevelEndedEvent(levelID string, finalTurn int, reason string, duration time.Duration) *LevelEndedEvent {
	return &LevelEndedEvent{
		BaseEvent: newBase(TypeLevelEnded, levelID),
		FinalTurn: finalTurn,
		Reason:    reason,
		Duration:  duration,
	}
}

// TurnStartedEvent is published at the beginning of each turn
type TurnStartedEvent struct {
	BaseEvent
	TurnNumber int
}

func NewTurnStartedEvent(levelID string, turn int) *TurnStartedEvent {
	return &TurnStartedEvent{
		BaseEvent:  newBase(TypeTurnStarted, levelID),
		TurnNumber: turn,
	}
}

// TurnEndedEvent summarises a controller pass
type TurnEndedEvent struct {
	BaseEvent
	TurnNumber    int
	Moved         int
	Held          int
	Draws         int
	ProcessedTime time.Duration
}

func NewTurnEndedEvent(levelID string, turn, moved, held, draws int, processedTime time.Duration) *TurnEndedEvent {
	return &TurnEndedEvent{
		BaseEvent:     newBase(TypeTurnEnded, levelID),
		TurnNumber:    turn,
		Moved:         moved,
		Held:          held,
		Draws:         draws,
		ProcessedTime: processedTime,
	}
}

// UnitMovedEvent records one unit relocation
type UnitMovedEvent struct {
	BaseEvent
	TurnNumber int
	Slot       int
	Team       core.Team
	From       int
	To         int
	Direction  core.Direction
	Candidates int
}

func NewUnitMovedEvent(levelID string, turn, slot int, team core.Team, from, to int, dir core.Direction, candidates int) *UnitMovedEvent {
	return &UnitMovedEvent{
		BaseEvent:  newBase(TypeUnitMoved, levelID),
		TurnNumber: turn,
		Slot:       slot,
		Team:       team,
		From:       from,
		To:         to,
		Direction:  dir,
		Candidates: candidates,
	}
}

// UnitHeldEvent records a unit that had no legal move this turn
type UnitHeldEvent struct {
	BaseEvent
	TurnNumber int
	Slot       int
	Team       core.Team
	Position   int
}

func NewUnitHeldEvent(levelID string, turn, slot int, team core.Team, pos int) *UnitHeldEvent {
	return &UnitHeldEvent{
		BaseEvent:  newBase(TypeUnitHeld, levelID),
		TurnNumber: turn,
		Slot:       slot,
		Team:       team,
		Position:   pos,
	}
}

// StateTransitionEvent is published by the level state machine
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

func NewStateTransitionEvent(levelID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: newBase(TypeStateTransition, levelID),
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
