package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Expand.MaxRounds != 64 {
		t.Errorf("Expand.MaxRounds = %d, want 64", cfg.Expand.MaxRounds)
	}
	if !cfg.Expand.IndexResults {
		t.Error("Expand.IndexResults should default to true")
	}
	if cfg.CLI.DefaultLang != "en" {
		t.Errorf("CLI.DefaultLang = %q, want \"en\"", cfg.CLI.DefaultLang)
	}
	if cfg.Server.MaxRules < 1 || cfg.Server.MaxRuleLen < 1 {
		t.Error("server limits must be positive")
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[expand]
max_rounds = 8

[cli]
default_lang = "de"

[languages]
sv = "[A-Za-z\\s]"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Expand.MaxRounds != 8 {
		t.Errorf("Expand.MaxRounds = %d, want 8", cfg.Expand.MaxRounds)
	}
	if cfg.CLI.DefaultLang != "de" {
		t.Errorf("CLI.DefaultLang = %q, want \"de\"", cfg.CLI.DefaultLang)
	}
	// untouched sections keep their defaults
	if !cfg.Expand.IndexResults {
		t.Error("Expand.IndexResults lost its default")
	}
	if cfg.Languages["sv"] == "" {
		t.Error("custom [languages] entry was not loaded")
	}
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// invalid value type for max_rounds; the expand section still parses as a map
	content := `
[expand]
max_rounds = "not a number"

[cli]
default_lang = "fr"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig should recover, got: %v", err)
	}
	if cfg.Expand.MaxRounds != 64 {
		t.Errorf("Expand.MaxRounds = %d, want default 64 after recovery", cfg.Expand.MaxRounds)
	}
	if cfg.CLI.DefaultLang != "fr" {
		t.Errorf("CLI.DefaultLang = %q, want \"fr\" from recovered section", cfg.CLI.DefaultLang)
	}
}

func TestInitConfigCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bnfgen", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Expand.MaxRounds != DefaultConfig().Expand.MaxRounds {
		t.Error("InitConfig did not return defaults for a fresh file")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("InitConfig did not create the config file: %v", err)
	}
}
