// Package config provides configuration management for skillrouter.
// It supports an optional YAML configuration file, environment variable
// overrides, and sensible defaults.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/klauern/skillrouter/internal/util"
)

// Config is the complete skillrouter configuration.
type Config struct {
	// Catalog is the path to the catalog YAML file.
	Catalog string `yaml:"catalog"`
	// SkillsRoot is the directory SKILL.md documentation is read from.
	SkillsRoot string `yaml:"skills_root"`

	Anthropic AnthropicConfig `yaml:"anthropic"`
	Matcher   MatcherConfig   `yaml:"matcher"`
	Cache     CacheConfig     `yaml:"cache"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// AnthropicConfig holds Tier 3 LLM provider settings. APIKey is never read
// from the config file itself — only from the ANTHROPIC_API_KEY
// environment variable — so a credential never accidentally lands in a
// checked-in YAML file.
type AnthropicConfig struct {
	APIKey    string `yaml:"-"`
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
}

// MatcherConfig tunes the deterministic Tier 1/2 matchers.
type MatcherConfig struct {
	// TriggerThreshold is the minimum coverage score for a Tier 2 match.
	TriggerThreshold float64 `yaml:"trigger_threshold"`
}

// CacheConfig tunes the skill content loader's in-memory cache.
type CacheConfig struct {
	// TTL is informational here — the content loader invalidates wholesale
	// on catalog reload rather than expiring entries individually, but a
	// deployment may use this to decide how often to poll for reloads.
	TTL time.Duration `yaml:"ttl"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `yaml:"level"`
	// JSON enables JSON log output instead of text.
	JSON bool `yaml:"json"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Catalog:    "catalog.yaml",
		SkillsRoot: util.DefaultSkillsRoot(),
		Anthropic: AnthropicConfig{
			Model:     "claude-3-5-haiku-20241022",
			MaxTokens: 300,
		},
		Matcher: MatcherConfig{
			TriggerThreshold: 0.60,
		},
		Cache: CacheConfig{
			TTL: time.Hour,
		},
		Logging: LoggingConfig{
			Level: "info",
			JSON:  false,
		},
	}
}

// Load loads configuration from util.DefaultConfigPath, merging with
// defaults, then applies environment variable overrides. A missing config
// file is not an error — defaults (plus environment) are used instead.
func Load() (*Config, error) {
	return LoadFromPath(util.DefaultConfigPath())
}

// LoadFromPath loads configuration from a specific path, merging with
// defaults, then applies environment variable overrides.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	// #nosec G304 - path is caller-provided configuration, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvironment()
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyEnvironment()
	return cfg, nil
}

// SaveToPath writes the configuration to a specific path. The Anthropic API
// key is never written to disk.
func (c *Config) SaveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// #nosec G306 - config file should be readable by user
	return os.WriteFile(path, data, 0o644)
}

// applyEnvironment applies SKILLROUTER_* and ANTHROPIC_API_KEY environment
// variable overrides. Environment variables always win over file and
// defaults.
func (c *Config) applyEnvironment() {
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		c.Anthropic.APIKey = v
	}
	if v := os.Getenv("SKILLROUTER_CATALOG"); v != "" {
		c.Catalog = v
	}
	if v := os.Getenv("SKILLROUTER_SKILLS_ROOT"); v != "" {
		c.SkillsRoot = v
	}
	if v := os.Getenv("SKILLROUTER_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SKILLROUTER_LOG_JSON"); v != "" {
		c.Logging.JSON = parseBool(v)
	}
}

// parseBool parses a boolean from common string representations.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// LevelValue converts Logging.Level into a slog.Level-compatible integer,
// returning false for an unrecognized name so the caller can fall back to
// info rather than silently misconfiguring verbosity.
func (c *Config) LevelValue() (int, bool) {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "debug":
		return -4, true
	case "info":
		return 0, true
	case "warn", "warning":
		return 4, true
	case "error":
		return 8, true
	default:
		return 0, false
	}
}
