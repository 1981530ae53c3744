package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/GridArena/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	logEvent := ls.logger.WithLevel(ls.level()).
		Str("event_type", event.Type()).
		Str("level_id", event.LevelID()).
		Time("timestamp", event.Timestamp())

	switch e := event.(type) {
	case *events.LevelCreatedEvent:
		logEvent.
			Int("width", e.Width).
			Int("height", e.Height).
			Int("team_size", e.TeamSize).
			Uint64("seed", e.Seed).
			Str("engine", e.Engine).
			Str("policy", e.Policy)

	case *events.LevelEndedEvent:
		logEvent.
			Int("final_turn", e.FinalTurn).
			Str("reason", e.Reason).
			Dur("duration", e.Duration)

	case *events.TurnStartedEvent:
		logEvent.Int("turn", e.TurnNumber)

	case *events.TurnEndedEvent:
		logEvent.
			Int("turn", e.TurnNumber).
			Int("moved", e.Moved).
			Int("held", e.Held).
			Int("draws", e.Draws).
			Dur("process_time", e.ProcessedTime)

	case *events.UnitMovedEvent:
		logEvent.
			Int("turn", e.TurnNumber).
			Int("slot", e.Slot).
			Stringer("team", e.Team).
			Int("from", e.From).
			Int("to", e.To).
			Stringer("direction", e.Direction).
			Int("candidates", e.Candidates)

	case *events.UnitHeldEvent:
		logEvent.
			Int("turn", e.TurnNumber).
			Int("slot", e.Slot).
			Stringer("team", e.Team).
			Int("position", e.Position)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_phase", e.FromPhase).
			Str("to_phase", e.ToPhase).
			Str("reason", e.Reason)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Arena event")
}

func (ls *LoggerSubscriber) level() zerolog.Level {
	switch ls.logLevel {
	case zerolog.TraceLevel, zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel, zerolog.ErrorLevel:
		return ls.logLevel
	default:
		return zerolog.InfoLevel
	}
}
