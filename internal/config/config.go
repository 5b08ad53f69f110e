// Package config loads the codex YAML configuration
package config

import (
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-codex/internal/engine"
	"github.com/KirkDiggler/rpg-codex/internal/engine/curve"
	"github.com/KirkDiggler/rpg-codex/internal/engine/placeholder"
	"github.com/KirkDiggler/rpg-codex/internal/errors"
	"github.com/KirkDiggler/rpg-codex/internal/icons"
)

// MaxWorkers caps curves.workers
const MaxWorkers = 64

// Config holds all configuration for the codex
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Render   RenderConfig   `yaml:"render"`
	Curves   CurvesConfig   `yaml:"curves"`
	LogLevel string         `yaml:"log_level"`
}

// DatabaseConfig locates the SQLite record database
type DatabaseConfig struct {
	Path         string `yaml:"path"`
	ReadOnly     bool   `yaml:"read_only"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

// RedisConfig configures the optional locale cache
type RedisConfig struct {
	Enabled bool `yaml:"enabled"`
	// More than one endpoint selects cluster mode
	Endpoints   []string      `yaml:"endpoints"`
	Password    string        `yaml:"password"`
	DB          int           `yaml:"db"`
	PoolSize    int           `yaml:"pool_size"`
	DialTimeout time.Duration `yaml:"dial_timeout"`
	TTL         time.Duration `yaml:"ttl"`
}

// RenderConfig configures description expansion
type RenderConfig struct {
	// IconsFile overlays icon tables onto the built-in defaults
	IconsFile    string                `yaml:"icons_file"`
	MissingGlyph string                `yaml:"missing_glyph"`
	Strict       bool                  `yaml:"strict"`
	MaxPasses    int                   `yaml:"max_passes"`
	Overrides    placeholder.Overrides `yaml:"overrides"`
}

// CurvesConfig configures stat curve evaluation
type CurvesConfig struct {
	RoundNearest []string `yaml:"round_nearest"`
	// Workers bounds concurrent level evaluations, up to MaxWorkers
	Workers int `yaml:"workers"`
}

// Default returns the configuration with sensible defaults
func Default() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:     "data/codex.db",
			ReadOnly: true,
		},
		Redis: RedisConfig{
			Endpoints:   []string{"localhost:6379"},
			PoolSize:    10,
			DialTimeout: 2 * time.Second,
			TTL:         24 * time.Hour,
		},
		Render: RenderConfig{
			MissingGlyph: placeholder.DefaultMissingGlyph,
			MaxPasses:    placeholder.DefaultMaxPasses,
			Overrides:    placeholder.DefaultOverrides(),
		},
		Curves: CurvesConfig{
			RoundNearest: curve.DefaultRoundNearest(),
			Workers:      4,
		},
		LogLevel: "info",
	}
}

// Load reads a YAML file and overlays it onto the defaults.
// If the file doesn't exist, returns defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config "+path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}

	return cfg, nil
}

// Validate checks the configuration is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("database.path", c.Database.Path, vb)
	if c.Database.MaxOpenConns < 0 {
		vb.Field("database.max_open_conns", "must not be negative")
	}

	if c.Redis.Enabled {
		if len(c.Redis.Endpoints) == 0 {
			vb.Field("redis.endpoints", "at least one endpoint is required when redis is enabled")
		}
		if c.Redis.TTL < 0 {
			vb.Field("redis.ttl", "must not be negative")
		}
	}

	if c.Render.MaxPasses <= 0 {
		vb.Field("render.max_passes", "must be positive")
	}
	if err := c.Render.Overrides.Validate(); err != nil {
		vb.Field("render.overrides", errors.GetMessage(err))
	}

	errors.ValidateRange("curves.workers", c.Curves.Workers, 1, MaxWorkers, vb)
	for _, stat := range c.Curves.RoundNearest {
		if stat == "" {
			vb.Field("curves.round_nearest", "stat names must not be empty")
			break
		}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		vb.Fieldf("log_level", "unknown level %q", c.LogLevel)
	}

	return vb.Build()
}

// SlogLevel returns the configured log level, or info when it does not parse
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// EngineConfig builds the engine configuration, loading the icon tables
func (c *Config) EngineConfig() (*engine.Config, error) {
	set, err := icons.Load(c.Render.IconsFile)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load icons")
	}

	return &engine.Config{
		Icons:        set,
		Overrides:    c.Render.Overrides,
		MissingGlyph: c.Render.MissingGlyph,
		Strict:       c.Render.Strict,
		MaxPasses:    c.Render.MaxPasses,
		RoundNearest: c.Curves.RoundNearest,
	}, nil
}
