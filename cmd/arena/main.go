package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/GridArena/internal/common"
	"github.com/mitchelldurbincs/GridArena/internal/config"
	"github.com/mitchelldurbincs/GridArena/internal/game"
	"github.com/mitchelldurbincs/GridArena/internal/game/core"
	"github.com/mitchelldurbincs/GridArena/internal/game/events"
	"github.com/mitchelldurbincs/GridArena/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/GridArena/internal/game/rng"
	"github.com/mitchelldurbincs/GridArena/internal/game/states"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay (merges config.<env>.yaml)")
	seed := flag.Uint64("seed", 0, "Fixed seed (0 to use config)")
	turns := flag.Int("turns", -1, "Turn limit (-1 to use config, 0 for unlimited)")
	auto := flag.Bool("auto", false, "Run to completion without prompting")
	noColor := flag.Bool("no-color", false, "Disable ANSI colors in the board")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
	}
	cfg := config.Get()

	logger := common.NewLogger(os.Stderr, cfg.LogLevel(), cfg.Logging.Format)
	log.Logger = logger

	if config.ConfigFilePath() != "" {
		config.WatchConfig(func(*config.Config) {
			logger.Info().Str("file", config.ConfigFilePath()).Msg("Config reloaded; applies to the next level")
		}, func(err error) {
			logger.Warn().Err(err).Msg("Config reload rejected")
		})
	}

	gc, err := game.ConfigFromSettings(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid arena settings")
	}
	if *seed != 0 {
		gc.RNG.SeedSource = rng.SeedSourceFixed
		gc.RNG.Seed = *seed
	}
	if *turns >= 0 {
		gc.MaxTurns = *turns
	}
	if *auto && gc.MaxTurns == 0 {
		gc.MaxTurns = 100
	}

	gc.EventBus = events.NewEventBus(logger)
	gc.EventBus.Subscribe(subscribers.NewLoggerSubscriber("arena_cli", logger, zerolog.DebugLevel))

	ctx := context.Background()
	engine, err := game.NewEngine(ctx, gc)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build level")
	}

	logger.Info().
		Str("level_id", engine.ID()).
		Uint64("seed", engine.Seed()).
		Int("width", gc.Width).
		Int("height", gc.Height).
		Int("team_size", gc.TeamSize).
		Msg("Level started")

	fmt.Printf("Initial board (seed %d):\n%s\n", engine.Seed(), render(engine, !*noColor))

	if *auto {
		runAuto(ctx, engine, !*noColor)
	} else {
		runInteractive(ctx, engine, !*noColor)
	}

	m := engine.Metrics()
	fmt.Printf("Level %s after %d turns: %d moves, %d holds, %d draws\n",
		engine.Phase(), engine.Turn(), m.Moves, m.Holds, m.Draws)
}

func render(engine *game.Engine, color bool) string {
	return game.RenderBoard(engine.Snapshot(), engine.Units(), color)
}

func runAuto(ctx context.Context, engine *game.Engine, color bool) {
	for !engine.IsOver() {
		if _, err := engine.Step(ctx); err != nil {
			log.Error().Err(err).Msg("Turn failed")
			return
		}
	}
	fmt.Printf("Final board:\n%s", render(engine, color))
}

func runInteractive(ctx context.Context, engine *game.Engine, color bool) {
	scanner := bufio.NewScanner(os.Stdin)
	for !engine.IsOver() {
		fmt.Printf("turn %d [enter=step, p=pause, q=quit]> ", engine.Turn())
		if !scanner.Scan() {
			break
		}

		switch strings.TrimSpace(scanner.Text()) {
		case "q", "quit":
			if err := engine.Stop("stopped by user"); err != nil {
				log.Warn().Err(err).Msg("Stop failed")
			}
			return
		case "p", "pause":
			if engine.Phase() == states.PhasePaused {
				_ = engine.Resume()
			} else {
				_ = engine.Pause()
			}
			fmt.Println(engine.Phase())
		case "", "n", "step":
			res, err := engine.Step(ctx)
			if err != nil {
				if errors.Is(err, core.ErrLevelPaused) {
					fmt.Println("paused; press p to resume")
					continue
				}
				log.Error().Err(err).Msg("Turn failed")
				return
			}
			fmt.Printf("Turn %d: %d moved, %d held\n%s\n", res.Turn, res.Moved, res.Held, render(engine, color))
		default:
			fmt.Println("unknown command")
		}
	}
}
