package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Planets != DefaultPlanets {
		t.Errorf("expected %d planets, got %d", DefaultPlanets, cfg.Planets)
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative planets", func(c *Config) { c.Planets = -1 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative height", func(c *Config) { c.Window.Height = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planetoids.yaml")

	cfg := DefaultConfig()
	cfg.Planets = 12
	cfg.Seed = 99

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Planets != 12 || loaded.Seed != 99 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("planets: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Planets != 3 {
		t.Errorf("expected 3 planets, got %d", cfg.Planets)
	}
	if cfg.FPS != DefaultFPS {
		t.Errorf("expected default fps, got %d", cfg.FPS)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("planets: -4\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Planets != 8 {
		t.Errorf("expected 8 planets, got %d", cfg.Planets)
	}

	// Mutating the returned config must not touch the preset table.
	cfg.Planets = 1
	if Presets["classic"].Planets != 8 {
		t.Error("preset table mutated through GetPreset result")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(names))
	}
}
