package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/GridArena/internal/common"
	"github.com/mitchelldurbincs/GridArena/internal/config"
	"github.com/mitchelldurbincs/GridArena/internal/game"
	"github.com/mitchelldurbincs/GridArena/internal/game/rng"
	"github.com/mitchelldurbincs/GridArena/internal/ui/terminal"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	seed := flag.Uint64("seed", 0, "Fixed seed (0 to use config)")
	interval := flag.Duration("interval", 500*time.Millisecond, "Time between automatic turns")
	logFile := flag.String("log-file", "arena_tui.log", "Where to write logs while the screen is active")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()
	common.SetPalette(cfg.Colors.TeamA, cfg.Colors.TeamB, cfg.Colors.Empty, cfg.Colors.Background, cfg.Colors.GridLines)

	out, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()
	logger := common.NewLogger(out, cfg.LogLevel(), "json")
	log.Logger = logger

	gc, err := game.ConfigFromSettings(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid arena settings")
	}
	if *seed != 0 {
		gc.RNG.SeedSource = rng.SeedSourceFixed
		gc.RNG.Seed = *seed
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine, err := game.NewEngine(ctx, gc)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build level")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create screen")
	}
	if err := screen.Init(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize screen")
	}

	viewer := terminal.NewViewer(screen, engine, *interval, logger)
	runErr := viewer.Run(ctx)
	viewer.Close()
	screen.Fini()

	if runErr != nil && ctx.Err() == nil {
		logger.Error().Err(runErr).Msg("Viewer stopped")
	}
	fmt.Printf("Level %s at turn %d (seed %d)\n", engine.Phase(), engine.Turn(), engine.Seed())
}
