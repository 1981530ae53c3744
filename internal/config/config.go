package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchelldurbincs/GridArena/internal/game/core"
	"github.com/mitchelldurbincs/GridArena/internal/game/rng"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Arena   ArenaConfig   `mapstructure:"arena"`
	RNG     RNGConfig     `mapstructure:"rng"`
	Logging LoggingConfig `mapstructure:"logging"`
	UI      UIConfig      `mapstructure:"ui"`
	Colors  ColorsConfig  `mapstructure:"colors"`
}

// ArenaConfig holds level setup settings
type ArenaConfig struct {
	Width    int    `mapstructure:"width"`
	Height   int    `mapstructure:"height"`
	TeamSize int    `mapstructure:"team_size"`
	MaxTurns int    `mapstructure:"max_turns"`
	UnitKind string `mapstructure:"unit_kind"`
}

// RNGConfig names the three generator stages
type RNGConfig struct {
	SeedSource   string `mapstructure:"seed_source"`
	Seed         uint64 `mapstructure:"seed"`
	Engine       string `mapstructure:"engine"`
	Distribution string `mapstructure:"distribution"`
}

// LoggingConfig holds zerolog settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// UIConfig holds viewer settings
type UIConfig struct {
	Window       WindowConfig `mapstructure:"window"`
	TileSize     int          `mapstructure:"tile_size"`
	TurnInterval int          `mapstructure:"turn_interval"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// ColorsConfig holds the RGB palette shared by both viewers
type ColorsConfig struct {
	TeamA      [3]int `mapstructure:"team_a"`
	TeamB      [3]int `mapstructure:"team_b"`
	Empty      [3]int `mapstructure:"empty"`
	Background [3]int `mapstructure:"background"`
	GridLines  [3]int `mapstructure:"grid_lines"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("arena.width", 10)
	v.SetDefault("arena.height", 10)
	v.SetDefault("arena.team_size", 3)
	v.SetDefault("arena.max_turns", 0)
	v.SetDefault("arena.unit_kind", core.KindMeleeAttacker.String())

	v.SetDefault("rng.seed_source", rng.SeedSourceEntropy)
	v.SetDefault("rng.seed", 0)
	v.SetDefault("rng.engine", rng.EngineMT19937)
	v.SetDefault("rng.distribution", rng.DistributionModulo)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("ui.window.width", 640)
	v.SetDefault("ui.window.height", 640)
	v.SetDefault("ui.window.title", "Grid Arena")
	v.SetDefault("ui.tile_size", 32)
	v.SetDefault("ui.turn_interval", 30)

	v.SetDefault("colors.team_a", []int{200, 50, 50})
	v.SetDefault("colors.team_b", []int{50, 100, 200})
	v.SetDefault("colors.empty", []int{120, 120, 120})
	v.SetDefault("colors.background", []int{0, 0, 0})
	v.SetDefault("colors.grid_lines", []int{50, 50, 50})
}

// Init initializes the configuration. An explicit configPath that does not
// exist falls back to defaults.
func Init(configPath string) error {
	v = viper.New()
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/grid-arena")
	}

	v.SetEnvPrefix("ARENA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath == "" && !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance, initializing defaults on first use
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// LoadEnvironmentConfig merges config.<env>.yaml over the loaded config
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error merging environment config %s: %w", envFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}
	return nil
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. onChange receives the
// freshly decoded config; a reload that fails validation is reported to
// onError and the previous config is kept.
func WatchConfig(onChange func(*Config), onError func(error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		err := v.Unmarshal(next)
		if err == nil {
			err = Validate(next)
		}
		if err != nil {
			if onError != nil {
				onError(fmt.Errorf("reload %s: %w", e.Name, err))
			}
			return
		}
		cfg = next
		if onChange != nil {
			onChange(next)
		}
	})
	v.WatchConfig()
}

// RNGOptions converts the rng section into generator options
func (c *Config) RNGOptions() rng.Options {
	return rng.Options{
		SeedSource:   c.RNG.SeedSource,
		Seed:         c.RNG.Seed,
		Engine:       c.RNG.Engine,
		Distribution: c.RNG.Distribution,
	}
}

// LogLevel returns the parsed logging.level
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Logging.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// Validate validates the configuration values. Grid capacity and overflow
// are checked when the level is built.
func Validate(c *Config) error {
	if c.Arena.Width < core.MinDimension || c.Arena.Height < core.MinDimension {
		return fmt.Errorf("arena dimensions must be at least %d", core.MinDimension)
	}
	if c.Arena.TeamSize < 0 {
		return fmt.Errorf("arena.team_size must be non-negative")
	}
	if c.Arena.MaxTurns < 0 {
		return fmt.Errorf("arena.max_turns must be non-negative")
	}
	if _, err := core.ParseUnitKind(c.Arena.UnitKind); err != nil {
		return fmt.Errorf("arena.unit_kind: %w", err)
	}

	if _, err := rng.ParseSeedSource(c.RNG.SeedSource, c.RNG.Seed); err != nil {
		return fmt.Errorf("rng.seed_source: %w", err)
	}
	if _, err := rng.ParseEngine(c.RNG.Engine); err != nil {
		return fmt.Errorf("rng.engine: %w", err)
	}
	if _, err := rng.ParseDistribution(c.RNG.Distribution); err != nil {
		return fmt.Errorf("rng.distribution: %w", err)
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}

	if c.UI.Window.Width <= 0 || c.UI.Window.Height <= 0 {
		return fmt.Errorf("ui.window dimensions must be positive")
	}
	if c.UI.TileSize <= 0 {
		return fmt.Errorf("ui.tile_size must be positive")
	}
	if c.UI.TurnInterval <= 0 {
		return fmt.Errorf("ui.turn_interval must be positive")
	}

	validateRGB := func(rgb [3]int, name string) error {
		for i, v := range rgb {
			if v < 0 || v > 255 {
				return fmt.Errorf("%s[%d] must be between 0 and 255", name, i)
			}
		}
		return nil
	}
	for name, rgb := range map[string][3]int{
		"colors.team_a":     c.Colors.TeamA,
		"colors.team_b":     c.Colors.TeamB,
		"colors.empty":      c.Colors.Empty,
		"colors.background": c.Colors.Background,
		"colors.grid_lines": c.Colors.GridLines,
	} {
		if err := validateRGB(rgb, name); err != nil {
			return err
		}
	}

	return nil
}
