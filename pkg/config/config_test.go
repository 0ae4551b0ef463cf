package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.MaxLimit != 64 || cfg.Server.MinQuery != 1 || cfg.Server.MaxQuery != 96 {
		t.Errorf("server defaults: %+v", cfg.Server)
	}
	if cfg.Search.MaxResults != 20 || cfg.Search.DefaultThreshold != 0.1 {
		t.Errorf("search defaults: %+v", cfg.Search)
	}
	if cfg.Synonyms.MaxPerWord != 12 || !cfg.Synonyms.EnableLexicon {
		t.Errorf("synonyms defaults: %+v", cfg.Synonyms)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Server.MaxLimit = 32
	cfg.Search.DefaultThreshold = 0.25
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Server.MaxLimit != 32 {
		t.Errorf("MaxLimit = %d, want 32", loaded.Server.MaxLimit)
	}
	if loaded.Search.DefaultThreshold != 0.25 {
		t.Errorf("DefaultThreshold = %v, want 0.25", loaded.Search.DefaultThreshold)
	}
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if cfg.Server.MaxLimit != 64 {
		t.Errorf("MaxLimit = %d", cfg.Server.MaxLimit)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file not created: %v", err)
	}
}

func TestPartialParseRecoversValidSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	// search section is valid, server section carries a bad value
	content := `
[server]
max_limit = "not a number"
min_query = 2

[search]
max_results = 10
default_threshold = 0.3
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig should recover, got: %v", err)
	}
	if cfg.Search.MaxResults != 10 {
		t.Errorf("MaxResults = %d, want recovered 10", cfg.Search.MaxResults)
	}
	if cfg.Search.DefaultThreshold != 0.3 {
		t.Errorf("DefaultThreshold = %v, want recovered 0.3", cfg.Search.DefaultThreshold)
	}
	// the unparseable key falls back to the default, siblings survive
	if cfg.Server.MaxLimit != 64 {
		t.Errorf("MaxLimit = %d, want default 64", cfg.Server.MaxLimit)
	}
	if cfg.Server.MinQuery != 2 {
		t.Errorf("MinQuery = %d, want recovered 2", cfg.Server.MinQuery)
	}
}

func TestUpdatePersistsMaxLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatal(err)
	}

	newLimit := 48
	if err := cfg.Update(path, &newLimit); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if cfg.Server.MaxLimit != 48 {
		t.Errorf("in-memory MaxLimit = %d", cfg.Server.MaxLimit)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Server.MaxLimit != 48 {
		t.Errorf("persisted MaxLimit = %d, want 48", loaded.Server.MaxLimit)
	}

	// nil leaves the value alone
	if err := cfg.Update(path, nil); err != nil {
		t.Fatalf("Update(nil): %v", err)
	}
	if cfg.Server.MaxLimit != 48 {
		t.Errorf("MaxLimit changed on nil update: %d", cfg.Server.MaxLimit)
	}
}
