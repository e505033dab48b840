// Package config resolves runtime settings from defaults, a TOML file and
// MATHWORLDS_* environment variables, in that order.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds resolved settings.
type Config struct {
	// DBPath is the SQLite file. Empty means the store's default location.
	DBPath string

	// CatalogPath is a YAML shop catalog. Empty means the built-in catalog.
	CatalogPath string

	// SnapshotKeep is how many state snapshots to retain.
	SnapshotKeep int

	// AnswerXP and AnswerGoo are granted for every correct answer.
	AnswerXP  float64
	AnswerGoo int64

	// Timezone names the location used for daily date keys. Empty is local.
	Timezone string

	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		SnapshotKeep: 5,
		AnswerXP:     5,
		AnswerGoo:    1,
		LogLevel:     "warn",
	}
}

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Storage StorageConfig `toml:"storage"`
	Shop    ShopConfig    `toml:"shop"`
	Rewards RewardsConfig `toml:"rewards"`
	Clock   ClockConfig   `toml:"clock"`
	Log     LogConfig     `toml:"log"`
}

// StorageConfig maps storage settings.
type StorageConfig struct {
	DB        *string `toml:"db"`
	Snapshots *int    `toml:"snapshots"`
}

// ShopConfig maps shop settings.
type ShopConfig struct {
	Catalog *string `toml:"catalog"`
}

// RewardsConfig maps per-answer rewards.
type RewardsConfig struct {
	AnswerXP  *float64 `toml:"answer-xp"`
	AnswerGoo *int64   `toml:"answer-goo"`
}

// ClockConfig maps time settings.
type ClockConfig struct {
	Timezone *string `toml:"timezone"`
}

// LogConfig maps logging settings.
type LogConfig struct {
	Level *string `toml:"level"`
}

// LoadFile reads a TOML config from the given path. Missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var fc FileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return fc, nil
}

// Apply overlays the fields set in the file onto cfg.
func (fc FileConfig) Apply(cfg *Config) {
	if fc.Storage.DB != nil {
		cfg.DBPath = *fc.Storage.DB
	}
	if fc.Storage.Snapshots != nil {
		cfg.SnapshotKeep = *fc.Storage.Snapshots
	}
	if fc.Shop.Catalog != nil {
		cfg.CatalogPath = *fc.Shop.Catalog
	}
	if fc.Rewards.AnswerXP != nil {
		cfg.AnswerXP = *fc.Rewards.AnswerXP
	}
	if fc.Rewards.AnswerGoo != nil {
		cfg.AnswerGoo = *fc.Rewards.AnswerGoo
	}
	if fc.Clock.Timezone != nil {
		cfg.Timezone = *fc.Clock.Timezone
	}
	if fc.Log.Level != nil {
		cfg.LogLevel = *fc.Log.Level
	}
}

// ApplyEnv overlays MATHWORLDS_* environment variables onto cfg.
// Unparseable numbers are ignored.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("MATHWORLDS_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("MATHWORLDS_CATALOG"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("MATHWORLDS_SNAPSHOTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SnapshotKeep = n
		}
	}
	if v := os.Getenv("MATHWORLDS_ANSWER_XP"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.AnswerXP = f
		}
	}
	if v := os.Getenv("MATHWORLDS_ANSWER_GOO"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.AnswerGoo = n
		}
	}
	if v := os.Getenv("MATHWORLDS_TZ"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("MATHWORLDS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// ConfigFromEnv returns defaults overlaid with the environment.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	return cfg
}

// Load resolves defaults, then the file at path, then the environment.
// An empty path uses DefaultConfigPath.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	fc, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	fc.Apply(&cfg)
	ApplyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that settings are usable.
func (c Config) Validate() error {
	if c.SnapshotKeep < 0 {
		return fmt.Errorf("snapshots must be >= 0, got %d", c.SnapshotKeep)
	}
	if math.IsNaN(c.AnswerXP) || math.IsInf(c.AnswerXP, 0) {
		return fmt.Errorf("answer-xp must be a finite number, got %v", c.AnswerXP)
	}
	if c.AnswerXP < 0 || c.AnswerGoo < 0 {
		return fmt.Errorf("answer rewards must be >= 0")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := log.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Location returns the configured time zone, or time.Local.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Level returns the parsed log level, defaulting to warn.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return log.WarnLevel
	}
	return lvl
}
