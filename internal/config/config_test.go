package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	if cfg.Server.Address != DefaultAddress {
		t.Errorf("Address = %q, want %q", cfg.Server.Address, DefaultAddress)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want text", cfg.Log.Format)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Address != DefaultAddress {
		t.Errorf("Address = %q, want default", cfg.Server.Address)
	}
}

func TestLoadParsesAndFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	data := `{
  "name": "demo",
  "server": {"address": ":3000", "pageTitle": "Demo"},
  "log": {"level": "debug"}
}`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Name != "demo" {
		t.Errorf("Name = %q, want demo", cfg.Name)
	}
	if cfg.Server.Address != ":3000" {
		t.Errorf("Address = %q, want :3000", cfg.Server.Address)
	}
	if cfg.Server.PageTitle != "Demo" {
		t.Errorf("PageTitle = %q, want Demo", cfg.Server.PageTitle)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	// Unset sections keep their defaults.
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want text", cfg.Log.Format)
	}
}

func TestLoadRejectsInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("Load accepted invalid JSON")
	}
}

func TestValidateRejectsBadLevel(t *testing.T) {
	cfg := New()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted unknown log level")
	}
}

func TestValidateRejectsNegativeDepth(t *testing.T) {
	cfg := New()
	cfg.Reactive.MaxEffectDepth = -1

	if err := cfg.Validate(); err == nil {
		t.Error("Validate accepted negative maxEffectDepth")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := New()
	cfg.Name = "roundtrip"
	cfg.Server.Address = ":9000"

	if err := cfg.SaveTo(filepath.Join(dir, ConfigFileName)); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	if !Exists(dir) {
		t.Fatal("Exists() = false after save")
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Name != "roundtrip" || loaded.Server.Address != ":9000" {
		t.Errorf("loaded = %+v, want saved values", loaded)
	}
}
