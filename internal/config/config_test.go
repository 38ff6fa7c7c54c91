package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/glabrego/newsdeck/internal/storage"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"NEWSDECK_DB_PATH", "NEWSDECK_LOG_PATH", "NEWSDECK_FEED_FILES", "NEWSDECK_SEED", "NEWSDECK_MOUSE"} {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnv_UsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}
	if cfg.DBPath != storage.MemoryDSN {
		t.Fatalf("unexpected DB path: %s", cfg.DBPath)
	}
	if cfg.LogPath != "" {
		t.Fatalf("expected no log path, got %s", cfg.LogPath)
	}
	if len(cfg.FeedFiles) != 0 {
		t.Fatalf("expected no feed files, got %v", cfg.FeedFiles)
	}
	if cfg.Seed != 0 || !cfg.Mouse {
		t.Fatalf("unexpected seed/mouse defaults: %+v", cfg)
	}
}

func TestLoadFromEnv_ReadsOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEWSDECK_DB_PATH", "/tmp/newsdeck.db")
	t.Setenv("NEWSDECK_LOG_PATH", "/tmp/newsdeck.log")
	t.Setenv("NEWSDECK_FEED_FILES", " a.xml, ,b.atom ")
	t.Setenv("NEWSDECK_SEED", "42")
	t.Setenv("NEWSDECK_MOUSE", "OFF")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv returned error: %v", err)
	}
	want := Config{
		DBPath:    "/tmp/newsdeck.db",
		LogPath:   "/tmp/newsdeck.log",
		FeedFiles: []string{"a.xml", "b.atom"},
		Seed:      42,
		Mouse:     false,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromEnv_InvalidSeed(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEWSDECK_SEED", "soon")

	if _, err := LoadFromEnv(); err == nil {
		t.Fatal("expected error for non-numeric seed")
	}
}

func TestLoadFromEnv_InvalidMouse(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEWSDECK_MOUSE", "maybe")

	if _, err := LoadFromEnv(); err == nil {
		t.Fatal("expected error for mouse mode")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	cfg.DBPath = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for empty DB path")
	}

	cfg = Default()
	cfg.FeedFiles = []string{"ok.xml", "  "}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for blank feed path")
	}
}
