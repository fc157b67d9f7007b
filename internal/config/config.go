// Package config loads the YAML run configuration of the tcg command:
// which operators the language sampler may choose from, optional domain
// restrictions, the random seed, the default scenario and logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tcg/grid"
	"github.com/katalvlaran/tcg/language"
	"github.com/katalvlaran/tcg/notation"
	"github.com/katalvlaran/tcg/operator"
)

// ErrInvalidConfig indicates a configuration value that cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment overrides.
const (
	EnvSeed     = "TCG_SEED"
	EnvLogLevel = "TCG_LOG_LEVEL"
)

// Config holds all tcg configuration.
type Config struct {
	// Seed makes language sampling reproducible; nil means time-seeded.
	Seed *int64 `yaml:"seed,omitempty"`
	// Order fixes the signal order ("loc-orient", "orient-loc"); empty samples it.
	Order string `yaml:"order,omitempty"`

	// Operator pools, by catalog name.
	LocationPool    []string `yaml:"location_pool"`
	OrientationPool []string `yaml:"orientation_pool"`
	// Restrict narrows operator domains: operator -> variable -> values.
	Restrict map[string]map[string][]int `yaml:"restrict,omitempty"`

	// Scenario defaults in position notation, e.g. "(0,0)@1".
	Scenario ScenarioConfig `yaml:"scenario"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ScenarioConfig holds the default start, finish and goal positions.
type ScenarioConfig struct {
	Start  string `yaml:"start"`
	Finish string `yaml:"finish"`
	Goal   string `yaml:"goal"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// Default returns the configuration used when no file is given: every
// builtin operator in both pools and the reference demo scenario.
func Default() *Config {
	names := operator.Builtins().Names()
	return &Config{
		LocationPool:    names,
		OrientationPool: append([]string(nil), names...),
		Scenario: ScenarioConfig{
			Start:  "(0,0)@1",
			Finish: "(2,2)@3",
			Goal:   "(1,1)@1",
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := cfg.ApplyEnv(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ApplyEnv applies the TCG_SEED and TCG_LOG_LEVEL overrides.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvSeed, v, ErrInvalidConfig)
		}
		c.Seed = &seed
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate checks everything that can be checked without a catalog.
func (c *Config) Validate() error {
	if len(c.LocationPool) == 0 || len(c.OrientationPool) == 0 {
		return fmt.Errorf("operator pools must not be empty: %w", ErrInvalidConfig)
	}
	if c.Order != "" {
		if _, err := language.ParseSignalOrder(c.Order); err != nil {
			return fmt.Errorf("order: %w: %w", ErrInvalidConfig, err)
		}
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level %q: %w", c.Logging.Level, ErrInvalidConfig)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format %q: %w", c.Logging.Format, ErrInvalidConfig)
	}
	for name, p := range map[string]string{
		"start": c.Scenario.Start, "finish": c.Scenario.Finish, "goal": c.Scenario.Goal,
	} {
		if p == "" {
			continue
		}
		if _, err := notation.ParsePosition(p); err != nil {
			return fmt.Errorf("scenario.%s: %w: %w", name, ErrInvalidConfig, err)
		}
	}
	return nil
}

// Catalog returns a copy of base with the configured restrictions applied.
func (c *Config) Catalog(base *operator.Catalog) (*operator.Catalog, error) {
	cat, err := operator.NewCatalog(base.All()...)
	if err != nil {
		return nil, err
	}
	for name, vars := range c.Restrict {
		op, err := cat.Get(name)
		if err != nil {
			return nil, fmt.Errorf("restrict: %w", err)
		}
		for v, vals := range vars {
			if op, err = op.Restrict(v, vals); err != nil {
				return nil, fmt.Errorf("restrict: %w", err)
			}
		}
		if err := cat.Replace(op); err != nil {
			return nil, fmt.Errorf("restrict: %w", err)
		}
	}
	return cat, nil
}

// Pools resolves the configured pool names against cat.
func (c *Config) Pools(cat *operator.Catalog) (loc, orient []*operator.Operator, err error) {
	if loc, err = cat.Select(c.LocationPool); err != nil {
		return nil, nil, fmt.Errorf("location_pool: %w", err)
	}
	if orient, err = cat.Select(c.OrientationPool); err != nil {
		return nil, nil, fmt.Errorf("orientation_pool: %w", err)
	}
	return loc, orient, nil
}

// LanguageOptions translates seed and order into language.New options.
func (c *Config) LanguageOptions() ([]language.Option, error) {
	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	opts := []language.Option{language.WithSeed(seed)}
	if c.Order != "" {
		o, err := language.ParseSignalOrder(c.Order)
		if err != nil {
			return nil, fmt.Errorf("order: %w: %w", ErrInvalidConfig, err)
		}
		opts = append(opts, language.WithOrder(o))
	}
	return opts, nil
}

// ScenarioPositions parses the configured positions.
func (c *Config) ScenarioPositions() (start, finish, goal grid.Position, err error) {
	if start, err = notation.ParsePosition(c.Scenario.Start); err != nil {
		return start, finish, goal, fmt.Errorf("scenario.start: %w", err)
	}
	if finish, err = notation.ParsePosition(c.Scenario.Finish); err != nil {
		return start, finish, goal, fmt.Errorf("scenario.finish: %w", err)
	}
	if goal, err = notation.ParsePosition(c.Scenario.Goal); err != nil {
		return start, finish, goal, fmt.Errorf("scenario.goal: %w", err)
	}
	return start, finish, goal, nil
}

// Logger builds a zap logger from the logging section. verbose forces
// debug level.
func (c *Config) Logger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Logging.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("logging.level %q: %w", c.Logging.Level, ErrInvalidConfig)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
