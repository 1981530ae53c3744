package main

import (
	"context"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/GridArena/internal/common"
	"github.com/mitchelldurbincs/GridArena/internal/config"
	"github.com/mitchelldurbincs/GridArena/internal/game"
	"github.com/mitchelldurbincs/GridArena/internal/game/events"
	"github.com/mitchelldurbincs/GridArena/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/GridArena/internal/game/rng"
	"github.com/mitchelldurbincs/GridArena/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	seed := flag.Uint64("seed", 0, "Fixed seed (0 to use config)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	cfg := config.Get()
	common.SetPalette(cfg.Colors.TeamA, cfg.Colors.TeamB, cfg.Colors.Empty, cfg.Colors.Background, cfg.Colors.GridLines)

	logger := common.NewLogger(os.Stdout, cfg.LogLevel(), cfg.Logging.Format)
	log.Logger = logger

	gc, err := game.ConfigFromSettings(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid arena settings")
	}
	if *seed != 0 {
		gc.RNG.SeedSource = rng.SeedSourceFixed
		gc.RNG.Seed = *seed
	}
	gc.EventBus = events.NewEventBus(logger)
	eventLogger := subscribers.NewLoggerSubscriber("ui_client", logger, zerolog.DebugLevel)
	eventLogger.SetEventFilter([]string{events.TypeLevelCreated, events.TypeLevelEnded, events.TypeStateTransition})
	gc.EventBus.Subscribe(eventLogger)

	gameEngine, err := game.NewEngine(context.Background(), gc)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build level")
	}

	uiGame, err := ui.NewUIGame(gameEngine, cfg.UI.TileSize, cfg.UI.TurnInterval, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create UI")
	}

	ebiten.SetWindowSize(ui.ScreenWidth(), ui.ScreenHeight())
	ebiten.SetWindowTitle(cfg.UI.Window.Title)

	if err := ebiten.RunGame(uiGame); err != nil {
		logger.Fatal().Err(err).Msg("UI exited")
	}
}
