package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Language != "auto" {
		t.Errorf("expected language auto, got %q", cfg.Language)
	}
	if cfg.RefreshSeconds != 10 {
		t.Errorf("expected refresh 10, got %d", cfg.RefreshSeconds)
	}
	if cfg.IdleTimeoutMinutes != 10 {
		t.Errorf("expected idle timeout 10, got %d", cfg.IdleTimeoutMinutes)
	}
	if cfg.Thresholds.TailWindowBytes != 32768 {
		t.Errorf("expected tail window 32768, got %d", cfg.Thresholds.TailWindowBytes)
	}
	if len(cfg.ExemptTools) == 0 {
		t.Error("expected a non-empty exempt tool list")
	}
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.RefreshSeconds != 10 || cfg.Language != "auto" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadEmptyPathKeepsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.RefreshSeconds != 10 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
language = "ja"
refresh_seconds = 5
max_agents = 8

[thresholds]
idle_seconds = 60
permission_seconds = 1.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Language != "ja" {
		t.Errorf("expected language ja, got %q", cfg.Language)
	}
	if cfg.RefreshSeconds != 5 {
		t.Errorf("expected refresh 5, got %d", cfg.RefreshSeconds)
	}
	if cfg.MaxAgents != 8 {
		t.Errorf("expected max agents 8, got %d", cfg.MaxAgents)
	}
	if cfg.Thresholds.IdleSeconds != 60 {
		t.Errorf("expected idle 60, got %d", cfg.Thresholds.IdleSeconds)
	}

	// Keys absent from the file keep their defaults.
	if cfg.IdleTimeoutMinutes != 10 {
		t.Errorf("expected default idle timeout, got %d", cfg.IdleTimeoutMinutes)
	}
	if cfg.Thresholds.BashCommandMaxChars != 30 {
		t.Errorf("expected default command cap, got %d", cfg.Thresholds.BashCommandMaxChars)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("refresh_seconds = = 5"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestStateThresholds(t *testing.T) {
	cfg := Default()
	cfg.Thresholds.PermissionSeconds = 1.5

	th := cfg.StateThresholds()

	if th.TailWindowBytes != 32768 {
		t.Errorf("expected tail window 32768, got %d", th.TailWindowBytes)
	}
	if th.IdleThreshold != 120*time.Second {
		t.Errorf("expected idle 120s, got %v", th.IdleThreshold)
	}
	if th.PermissionTimer != 1500*time.Millisecond {
		t.Errorf("expected permission 1.5s, got %v", th.PermissionTimer)
	}
	if th.InputWaitTimer != 5*time.Second {
		t.Errorf("expected input wait 5s, got %v", th.InputWaitTimer)
	}
	if th.BashCommandMax != 30 {
		t.Errorf("expected command cap 30, got %d", th.BashCommandMax)
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := Default()

	if cfg.ActiveThreshold() != 30*time.Second {
		t.Errorf("expected active 30s, got %v", cfg.ActiveThreshold())
	}
	if cfg.RecentThreshold() != 600*time.Second {
		t.Errorf("expected recent 600s, got %v", cfg.RecentThreshold())
	}
	if cfg.IdleTimeout() != 10*time.Minute {
		t.Errorf("expected idle timeout 10m, got %v", cfg.IdleTimeout())
	}
}
