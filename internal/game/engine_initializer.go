package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mitchelldurbincs/GridArena/internal/game/core"
	"github.com/mitchelldurbincs/GridArena/internal/game/events"
	"github.com/mitchelldurbincs/GridArena/internal/game/rng"
	"github.com/mitchelldurbincs/GridArena/internal/game/roster"
	"github.com/mitchelldurbincs/GridArena/internal/game/rules"
	"github.com/mitchelldurbincs/GridArena/internal/game/states"
	"github.com/mitchelldurbincs/GridArena/internal/monitoring"
	"github.com/rs/zerolog"
)

// EngineInitializer handles level construction
type EngineInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg GameConfig) *EngineInitializer {
	return &EngineInitializer{
		config: cfg,
		logger: cfg.Logger.With().Str("component", "GameEngine").Logger(),
	}
}

// Initialize builds the grid, spawns both teams and starts the level.
// Setup failures move the level to the Error phase and are returned.
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	select {
	case <-ctx.Done():
		ei.logger.Error().Err(ctx.Err()).Msg("Engine creation cancelled before setup")
		return nil, ctx.Err()
	default:
	}

	ei.setupDefaults()
	engine := ei.createEngine()

	if err := ei.buildLevel(engine); err != nil {
		if failErr := engine.stateMachine.Fail(err); failErr != nil {
			ei.logger.Error().Err(failErr).Msg("Failed to record setup error")
		}
		return nil, err
	}

	engine.eventBus.Publish(events.NewLevelCreatedEvent(
		engine.levelID,
		ei.config.Width,
		ei.config.Height,
		ei.config.TeamSize,
		engine.gen.Seed(),
		ei.config.RNG.Engine,
		ei.config.RNG.Distribution,
	))

	if err := engine.stateMachine.TransitionTo(states.PhaseRunning, "level setup complete"); err != nil {
		ei.logger.Error().Err(err).Msg("Failed to transition to Running state")
		return nil, fmt.Errorf("state machine initialization failed: %w", err)
	}

	ei.logger.Info().
		Str("level_id", engine.levelID).
		Int("width", ei.config.Width).
		Int("height", ei.config.Height).
		Int("team_size", ei.config.TeamSize).
		Uint64("seed", engine.gen.Seed()).
		Msg("Engine created successfully")

	return engine, nil
}

// setupDefaults fills in missing configuration
func (ei *EngineInitializer) setupDefaults() {
	if ei.config.LevelID == "" {
		ei.config.LevelID = uuid.NewString()
	}
	if ei.config.Generator != nil {
		ei.config.RNG.Engine = "custom"
		ei.config.RNG.Distribution = "custom"
		return
	}
	defaults := rng.DefaultOptions()
	if ei.config.RNG.SeedSource == "" {
		ei.config.RNG.SeedSource = defaults.SeedSource
	}
	if ei.config.RNG.Engine == "" {
		ei.config.RNG.Engine = defaults.Engine
	}
	if ei.config.RNG.Distribution == "" {
		ei.config.RNG.Distribution = defaults.Distribution
	}
}

// createEngine wires the event bus and state machine around an empty level
func (ei *EngineInitializer) createEngine() *Engine {
	eventBus := ei.config.EventBus
	if eventBus == nil {
		eventBus = events.NewEventBus(ei.logger)
	}

	levelContext := states.NewLevelContext(ei.config.LevelID, ei.logger)
	levelContext.MaxTurns = ei.config.MaxTurns

	engine := &Engine{
		logger:       ei.logger,
		eventBus:     eventBus,
		levelID:      ei.config.LevelID,
		stateMachine: states.NewStateMachine(levelContext, eventBus),
		monitor:      monitoring.NewTurnMonitor(ei.logger),
	}
	engine.turnProcessor = NewTurnProcessor(engine)
	return engine
}

// buildLevel creates the grid, roster, generator and controller
func (ei *EngineInitializer) buildLevel(engine *Engine) error {
	gen := ei.config.Generator
	if gen == nil {
		var err error
		gen, err = rng.FromOptions(ei.config.RNG)
		if err != nil {
			return fmt.Errorf("rng setup failed: %w", err)
		}
	}

	grid, err := core.NewGrid(ei.config.Width, ei.config.Height)
	if err != nil {
		return err
	}
	grid.SetLogger(ei.logger)

	r := roster.New()
	r.SetLogger(ei.logger)
	if err := r.Spawn(grid, ei.config.TeamSize, ei.config.Kind); err != nil {
		return err
	}

	engine.grid = grid
	engine.roster = r
	engine.gen = gen
	engine.controller = NewController(grid, r, gen, ei.logger)
	engine.winCondition = rules.NewWinConditionChecker(ei.logger, len(r.Alive()))
	engine.stateMachine.GetContext().UnitCount = r.Len()
	return nil
}
