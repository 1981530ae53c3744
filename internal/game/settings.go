package game

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/GridArena/internal/config"
	"github.com/mitchelldurbincs/GridArena/internal/game/core"
)

// ConfigFromSettings maps the loaded application settings onto a level
// description.
func ConfigFromSettings(c *config.Config, logger zerolog.Logger) (GameConfig, error) {
	kind, err := core.ParseUnitKind(c.Arena.UnitKind)
	if err != nil {
		return GameConfig{}, err
	}
	return GameConfig{
		Width:    c.Arena.Width,
		Height:   c.Arena.Height,
		TeamSize: c.Arena.TeamSize,
		MaxTurns: c.Arena.MaxTurns,
		Kind:     kind,
		RNG:      c.RNGOptions(),
		Logger:   logger,
	}, nil
}
