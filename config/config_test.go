package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BlankPath != "blank.png" || cfg.FontSize != 42 || cfg.LogPath != "log.txt" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestSaveLoad_RoundTripAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig()
	cfg.OutputDir = "maps"
	cfg.PreviewHeight = 10 // clamped on save
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.OutputDir != "maps" {
		t.Fatalf("output dir not persisted: %q", got.OutputDir)
	}
	if got.PreviewHeight != DefaultConfig().PreviewHeight {
		t.Fatalf("expected clamped preview height, got %d", got.PreviewHeight)
	}
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg == nil || cfg.BlankPath != "blank.png" {
		t.Fatalf("expected defaults on error, got %+v", cfg)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("FIREMAP_BLANK_PATH", "assets/blank.png")
	t.Setenv("FIREMAP_DEBUG", "true")
	t.Setenv("FIREMAP_FONT_SIZE", "30")
	t.Setenv("FIREMAP_PREVIEW_HEIGHT", "-5")
	cfg := DefaultConfig()
	cfg.ApplyEnv()
	if cfg.BlankPath != "assets/blank.png" || !cfg.Debug || cfg.FontSize != 30 {
		t.Fatalf("env not applied: %+v", cfg)
	}
	if cfg.PreviewHeight != DefaultConfig().PreviewHeight {
		t.Fatalf("invalid preview height should be clamped, got %d", cfg.PreviewHeight)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("FIREMAP_TITLE=Test Map\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FIREMAP_TITLE", "")
	os.Unsetenv("FIREMAP_TITLE")
	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	cfg := DefaultConfig()
	cfg.ApplyEnv()
	if cfg.Title != "Test Map" {
		t.Fatalf("expected title from .env, got %q", cfg.Title)
	}
}

func TestWindowSettings_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "org", "app", "window.json")
	s, err := LoadWindowSettings(path)
	if err != nil || s.Geometry != "" {
		t.Fatalf("missing file should give zero settings: %+v %v", s, err)
	}
	if err := (WindowSettings{Geometry: "900x700+10+20"}).Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	s, err = LoadWindowSettings(path)
	if err != nil || s.Geometry != "900x700+10+20" {
		t.Fatalf("round trip failed: %+v %v", s, err)
	}
}

func TestWindowSettings_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "window.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadWindowSettings(path)
	if err == nil || s.Geometry != "" {
		t.Fatalf("expected error and zero settings, got %+v %v", s, err)
	}
}
