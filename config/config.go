package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Config holds user-configurable defaults.
type Config struct {
	IntervalMs int    `json:"interval_ms"`
	DBPath     string `json:"db_path"`

	// Layout fractions; see engine.Config for their meaning.
	PaddingPct   float64 `json:"padding_pct"`
	TrackSpanPct float64 `json:"track_span_pct"`
	BoxPct       float64 `json:"box_pct"`
	StrokePct    float64 `json:"stroke_pct"`
	StrokeMin    float64 `json:"stroke_min"`
}

// Default returns a config with sensible defaults.
func Default() Config {
	return Config{
		IntervalMs:   250,
		PaddingPct:   0.20,
		TrackSpanPct: 0.95,
		BoxPct:       0.80,
		StrokePct:    0.10,
		StrokeMin:    1.0,
	}
}

// Path returns ~/.config/wavescope/config.json (or XDG_CONFIG_HOME).
// Returns empty string if home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "wavescope", "config.json")
}

// Load loads config from disk; returns defaults on error.
func Load() Config {
	cfg := Default()
	p := Path()
	if p == "" {
		return cfg
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("wavescope: warning: config parse error: %v", err)
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg Config) error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
