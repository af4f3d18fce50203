// Package config loads dashboard settings from defaults and an optional
// TOML file. The file is overlay-only: absent keys keep their defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"agentdash/internal/state"
)

// Config holds every tunable of the dashboard.
type Config struct {
	SessionsDir        string `toml:"sessions_dir"`
	Language           string `toml:"language"`
	RefreshSeconds     int    `toml:"refresh_seconds"`
	IdleTimeoutMinutes int    `toml:"idle_timeout_minutes"`
	MaxAgents          int    `toml:"max_agents"`
	ShowAll            bool   `toml:"show_all"`

	// ExemptTools are never suspected of waiting for permission.
	ExemptTools []string `toml:"exempt_tools"`

	Thresholds Thresholds `toml:"thresholds"`
}

// Thresholds mirrors state.Thresholds plus the display-layer windows.
type Thresholds struct {
	TailWindowBytes     int64   `toml:"tail_window_bytes"`
	IdleSeconds         int     `toml:"idle_seconds"`
	ActiveSeconds       int     `toml:"active_seconds"`
	RecentSeconds       int     `toml:"recent_seconds"`
	PermissionSeconds   float64 `toml:"permission_seconds"`
	InputWaitSeconds    float64 `toml:"input_wait_seconds"`
	BashCommandMaxChars int     `toml:"bash_command_max_chars"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Language:           "auto",
		RefreshSeconds:     10,
		IdleTimeoutMinutes: 10,
		ExemptTools:        state.DefaultThresholds().ExemptTools,
		Thresholds: Thresholds{
			TailWindowBytes:     32768,
			IdleSeconds:         120,
			ActiveSeconds:       30,
			RecentSeconds:       600,
			PermissionSeconds:   7,
			InputWaitSeconds:    5,
			BashCommandMaxChars: 30,
		},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "agentdash", "config.toml")
}

// Load reads the TOML file at path over the defaults. A missing file is
// not an error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// StateThresholds converts the loaded settings into engine thresholds.
func (c Config) StateThresholds() state.Thresholds {
	return state.Thresholds{
		TailWindowBytes: c.Thresholds.TailWindowBytes,
		IdleThreshold:   time.Duration(c.Thresholds.IdleSeconds) * time.Second,
		PermissionTimer: time.Duration(c.Thresholds.PermissionSeconds * float64(time.Second)),
		InputWaitTimer:  time.Duration(c.Thresholds.InputWaitSeconds * float64(time.Second)),
		BashCommandMax:  c.Thresholds.BashCommandMaxChars,
		ExemptTools:     c.ExemptTools,
	}
}

// ActiveThreshold is the liveness window for the surrounding display.
func (c Config) ActiveThreshold() time.Duration {
	return time.Duration(c.Thresholds.ActiveSeconds) * time.Second
}

// RecentThreshold is the window after which a session card is forced to
// an idle presentation.
func (c Config) RecentThreshold() time.Duration {
	return time.Duration(c.Thresholds.RecentSeconds) * time.Second
}

// IdleTimeout is the discovery cutoff.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}
