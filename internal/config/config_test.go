package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/klauern/skillrouter/internal/util"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}
	if cfg.Catalog != "catalog.yaml" {
		t.Errorf("expected default catalog path 'catalog.yaml', got %q", cfg.Catalog)
	}
	if cfg.SkillsRoot != util.DefaultSkillsRoot() {
		t.Errorf("expected default skills root %q, got %q", util.DefaultSkillsRoot(), cfg.SkillsRoot)
	}
	if cfg.Anthropic.Model == "" {
		t.Error("expected a default Anthropic model")
	}
	if cfg.Matcher.TriggerThreshold != 0.60 {
		t.Errorf("expected default trigger threshold 0.60, got %v", cfg.Matcher.TriggerThreshold)
	}
	if cfg.Cache.TTL != time.Hour {
		t.Errorf("expected default cache TTL 1h, got %v", cfg.Cache.TTL)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level 'info', got %q", cfg.Logging.Level)
	}
	if cfg.Logging.JSON {
		t.Error("expected default JSON logging to be false")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	cfg := Default()
	cfg.Catalog = "/custom/catalog.yaml"
	cfg.Matcher.TriggerThreshold = 0.75
	cfg.Logging.JSON = true

	if err := cfg.SaveToPath(configPath); err != nil {
		t.Fatalf("SaveToPath failed: %v", err)
	}

	loaded, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if loaded.Catalog != "/custom/catalog.yaml" {
		t.Errorf("expected catalog %q, got %q", "/custom/catalog.yaml", loaded.Catalog)
	}
	if loaded.Matcher.TriggerThreshold != 0.75 {
		t.Errorf("expected threshold 0.75, got %v", loaded.Matcher.TriggerThreshold)
	}
	if !loaded.Logging.JSON {
		t.Error("expected JSON logging to round-trip as true")
	}
}

func TestLoadFromPath_MissingFile_ReturnsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	cfg, err := LoadFromPath(filepath.Join(tmpDir, "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadFromPath should not fail for a missing file: %v", err)
	}
	if cfg.Catalog != "catalog.yaml" {
		t.Errorf("expected default catalog path, got %q", cfg.Catalog)
	}
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	writeFile(t, configPath, "catalog: [unterminated")

	_, err := LoadFromPath(configPath)
	if err == nil {
		t.Error("LoadFromPath should fail for invalid YAML")
	}
}

func TestLoadFromPath_PartialConfigMerge(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	writeFile(t, configPath, "catalog: /partial/catalog.yaml\n")

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Catalog != "/partial/catalog.yaml" {
		t.Errorf("expected overridden catalog path, got %q", cfg.Catalog)
	}
	if cfg.Matcher.TriggerThreshold != 0.60 {
		t.Errorf("expected default threshold to survive partial merge, got %v", cfg.Matcher.TriggerThreshold)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envKey   string
		envValue string
		check    func(*Config) bool
	}{
		{
			name:     "anthropic api key",
			envKey:   "ANTHROPIC_API_KEY",
			envValue: "sk-ant-test",
			check:    func(c *Config) bool { return c.Anthropic.APIKey == "sk-ant-test" },
		},
		{
			name:     "catalog path",
			envKey:   "SKILLROUTER_CATALOG",
			envValue: "/env/catalog.yaml",
			check:    func(c *Config) bool { return c.Catalog == "/env/catalog.yaml" },
		},
		{
			name:     "skills root",
			envKey:   "SKILLROUTER_SKILLS_ROOT",
			envValue: "/env/skills",
			check:    func(c *Config) bool { return c.SkillsRoot == "/env/skills" },
		},
		{
			name:     "log level",
			envKey:   "SKILLROUTER_LOG_LEVEL",
			envValue: "debug",
			check:    func(c *Config) bool { return c.Logging.Level == "debug" },
		},
		{
			name:     "log json",
			envKey:   "SKILLROUTER_LOG_JSON",
			envValue: "true",
			check:    func(c *Config) bool { return c.Logging.JSON },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envKey, tt.envValue)

			cfg := Default()
			cfg.applyEnvironment()

			if !tt.check(cfg) {
				t.Errorf("environment override for %s did not apply correctly", tt.envKey)
			}
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"True", true},
		{"1", true},
		{"yes", true},
		{"on", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"off", false},
		{"", false},
		{"invalid", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseBool(tt.input); got != tt.expected {
				t.Errorf("parseBool(%q) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevelValue(t *testing.T) {
	tests := []struct {
		level   string
		want    int
		wantOK  bool
	}{
		{"debug", -4, true},
		{"info", 0, true},
		{"warn", 4, true},
		{"warning", 4, true},
		{"error", 8, true},
		{"nonsense", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := Default()
			cfg.Logging.Level = tt.level
			got, ok := cfg.LevelValue()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("LevelValue() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	util.WriteFile(t, path, content)
}
