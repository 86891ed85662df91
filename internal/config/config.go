// Package config loads nxtctl settings from an optional YAML file and
// NXTCTL_* environment variables using Viper.
//
// Precedence, highest first: values set on the Viper instance (bound flags),
// environment variables (NXTCTL_LOG_LEVEL, NXTCTL_ALLOCATOR_BUDGET, ...),
// the config file, then the defaults below.
package config

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/braxtons12/C2nxt/internal/logger"
	"github.com/braxtons12/C2nxt/std/alloc"
	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "NXTCTL"

// DefaultFileName is the config file searched for in the working directory.
const DefaultFileName = "nxtctl"

// Allocator kinds accepted in allocator.kind.
const (
	KindHeap     = "heap"
	KindLimited  = "limited"
	KindTracking = "tracking"
	KindPages    = "pages"
	KindArena    = "arena"
)

// Output formats accepted in output.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var (
	kinds   = []string{KindHeap, KindLimited, KindTracking, KindPages, KindArena}
	outputs = []string{OutputText, OutputJSON, OutputYAML}
	levels  = []string{"debug", "info", "warn", "error"}
)

type Config struct {
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
	Output    string          `yaml:"output" mapstructure:"output"`
	Allocator AllocatorConfig `yaml:"allocator" mapstructure:"allocator"`
}

type LogConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Level   string `yaml:"level" mapstructure:"level"`
	Format  string `yaml:"format" mapstructure:"format"`
}

type AllocatorConfig struct {
	Kind string `yaml:"kind" mapstructure:"kind"`
	// Budget caps the bytes a limited allocator hands out.
	Budget int `yaml:"budget" mapstructure:"budget"`
	// ArenaChunk is the first chunk size of an arena allocator.
	ArenaChunk int `yaml:"arena_chunk" mapstructure:"arena_chunk"`
}

// SetDefaults registers every key with its default so that environment
// overrides are visible to Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.enabled", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("output", OutputText)
	v.SetDefault("allocator.kind", KindHeap)
	v.SetDefault("allocator.budget", 1<<20)
	v.SetDefault("allocator.arena_chunk", alloc.DefaultArenaChunk)
}

// Setup prepares v to read file, or nxtctl.yaml from the working directory
// when file is empty. A missing default file is not an error.
func Setup(v *viper.Viper, file string) error {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(DefaultFileName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "config: read")
	}
	logger.Debug("config file loaded", "path", v.ConfigFileUsed())
	return nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config: decode")
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	cfg.Output = strings.ToLower(cfg.Output)
	cfg.Allocator.Kind = strings.ToLower(cfg.Allocator.Kind)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Validate checks enumerated values and sizes.
func (c *Config) Validate() error {
	if !slices.Contains(levels, c.Log.Level) {
		return errors.Newf("log.level %q must be one of %v", c.Log.Level, levels)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.Newf("log.format %q must be text or json", c.Log.Format)
	}
	if !slices.Contains(outputs, c.Output) {
		return errors.Newf("output %q must be one of %v", c.Output, outputs)
	}
	if !slices.Contains(kinds, c.Allocator.Kind) {
		return errors.Newf("allocator.kind %q must be one of %v", c.Allocator.Kind, kinds)
	}
	if c.Allocator.Budget <= 0 {
		return errors.Newf("allocator.budget must be positive, got %d", c.Allocator.Budget)
	}
	if c.Allocator.ArenaChunk <= 0 {
		return errors.Newf("allocator.arena_chunk must be positive, got %d", c.Allocator.ArenaChunk)
	}
	return nil
}

// LoggerOptions maps the log section onto logger.Options. verbose forces
// logging on at debug level.
func (c *Config) LoggerOptions(verbose bool) logger.Options {
	opts := logger.Options{
		Enabled: c.Log.Enabled,
		Format:  c.Log.Format,
		Level:   logger.ParseLevel(c.Log.Level),
	}
	if verbose {
		opts.Enabled = true
		opts.Level = slog.LevelDebug
	}
	return opts
}

// NewAllocator builds the configured byte allocator. The returned release
// function must be called once the allocator's buffers are no longer used.
func (c *Config) NewAllocator() (alloc.Allocator[byte], func(), error) {
	switch c.Allocator.Kind {
	case KindHeap:
		return alloc.Default[byte](), func() {}, nil
	case KindLimited:
		return alloc.NewLimited[byte](nil, c.Allocator.Budget), func() {}, nil
	case KindTracking:
		t := alloc.NewTracking[byte](nil)
		return t, func() {
			if s := t.Stats(); s.Live() != 0 || s.Foreign != 0 {
				logger.Warn("allocator released with outstanding buffers",
					"live", s.Live(), "foreign", s.Foreign, "live_bytes", s.LiveBytes)
			}
		}, nil
	case KindPages:
		p := alloc.NewPages()
		return p, func() {
			if err := p.Close(); err != nil {
				logger.Error("unmap pages", "error", err)
			}
		}, nil
	case KindArena:
		return alloc.NewArena(c.Allocator.ArenaChunk), func() {}, nil
	}
	return nil, nil, errors.Newf("unknown allocator kind %q", c.Allocator.Kind)
}
