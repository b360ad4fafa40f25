package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Dict.WordLength != 5 {
		t.Errorf("WordLength = %d, want 5", cfg.Dict.WordLength)
	}
	if len(cfg.Suggest.Starters) == 0 {
		t.Error("default starters must not be empty")
	}
	if cfg.CLI.ValidationPolicy != "relaxed" {
		t.Errorf("ValidationPolicy = %q, want relaxed", cfg.CLI.ValidationPolicy)
	}
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	partial := "[dict]\npath = \"words.txt\"\n"
	if err := os.WriteFile(path, []byte(partial), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Dict.Path != "words.txt" {
		t.Errorf("Path = %q, want overridden value", cfg.Dict.Path)
	}
	if cfg.Dict.WordLength != 5 || !cfg.Filter.SortByFrequency {
		t.Error("missing keys should keep their defaults")
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if cfg.Dict.WordLength != 5 {
		t.Errorf("created config has WordLength %d", cfg.Dict.WordLength)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}

	// A second init reads the file back.
	again, err := InitConfig(path)
	if err != nil {
		t.Fatalf("re-init failed: %v", err)
	}
	if again.Dict.Path != cfg.Dict.Path {
		t.Error("re-initialized config differs from saved one")
	}
}
