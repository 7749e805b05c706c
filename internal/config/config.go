// Package config provides configuration management for ufccards.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ufccards/ufccards/internal/roster"
)

// SourceEnv overrides the configured data source when set.
const SourceEnv = "UFCCARDS_SOURCE"

// ErrNoConfig is returned by FindConfig when no file exists up the tree.
var ErrNoConfig = errors.New("no ufccards configuration found")

// Config represents the ufccards configuration.
type Config struct {
	UFCCards Settings `yaml:"ufccards" json:"ufccards"`
}

// Settings contains the main ufccards settings.
type Settings struct {
	// Source is a file path or http(s) URL of the fighter dataset.
	Source string `yaml:"source" json:"source"`

	// BatchSize is how many cards each pagination step reveals.
	BatchSize int `yaml:"batch_size" json:"batch_size"`

	// AdvanceDelay is how long a "more" request waits before revealing.
	AdvanceDelay time.Duration `yaml:"advance_delay" json:"advance_delay"`

	// DefaultClass is the weight class selected at startup.
	DefaultClass string `yaml:"default_class" json:"default_class"`

	// HTTPTimeout bounds remote dataset fetches.
	HTTPTimeout time.Duration `yaml:"http_timeout" json:"http_timeout"`

	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		UFCCards: Settings{
			Source:       "data/fighters.csv",
			BatchSize:    25,
			AdvanceDelay: 300 * time.Millisecond,
			DefaultClass: roster.AllWeightClasses,
			HTTPTimeout:  30 * time.Second,
			LogLevel:     "warn",
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

// Save saves the configuration to a file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// FindConfig searches for a configuration file starting from the given path.
func FindConfig(startPath string) (string, error) {
	candidates := []string{
		".ufccards/config.yaml",
		"ufccards.yaml",
		"ufccards.yml",
	}

	// Search from start path upward
	dir := startPath
	for {
		for _, candidate := range candidates {
			path := filepath.Join(dir, candidate)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrNoConfig
}

// LoadFromDir loads configuration from the given directory.
func LoadFromDir(dir string) (*Config, error) {
	path, err := FindConfig(dir)
	if err != nil {
		// Return default config if no config file found
		return DefaultConfig(), nil
	}

	return Load(path)
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	s := c.UFCCards
	if strings.TrimSpace(s.Source) == "" {
		return errors.New("source must not be empty")
	}
	if s.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be positive, got %d", s.BatchSize)
	}
	if s.AdvanceDelay < 0 {
		return fmt.Errorf("advance_delay must not be negative, got %s", s.AdvanceDelay)
	}
	if s.HTTPTimeout < 0 {
		return fmt.Errorf("http_timeout must not be negative, got %s", s.HTTPTimeout)
	}
	if _, err := roster.ParseWeightClass(s.DefaultClass); err != nil {
		return fmt.Errorf("default_class: %w", err)
	}
	if _, err := zapcore.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// ApplyEnv applies environment overrides using getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(SourceEnv)); v != "" {
		c.UFCCards.Source = v
	}
}

// IsRemote reports whether the source is an http(s) URL.
func (c *Config) IsRemote() bool {
	src := c.UFCCards.Source
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// SourcePath returns the resolved source location. URLs and absolute paths
// are returned unchanged.
func (c *Config) SourcePath(baseDir string) string {
	if c.IsRemote() || filepath.IsAbs(c.UFCCards.Source) {
		return c.UFCCards.Source
	}
	return filepath.Join(baseDir, c.UFCCards.Source)
}

// WeightClass returns the canonical spelling of the default weight class.
func (c *Config) WeightClass() string {
	wc, err := roster.ParseWeightClass(c.UFCCards.DefaultClass)
	if err != nil {
		return roster.AllWeightClasses
	}
	return wc
}

// Level returns the configured log level, falling back to warn.
func (c *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.UFCCards.LogLevel)
	if err != nil {
		return zapcore.WarnLevel
	}
	return lvl
}
