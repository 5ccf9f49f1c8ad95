package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromOptions_Defaults(t *testing.T) {
	cfg := FromOptions(map[string]any{})

	if cfg.ChannelID != "" {
		t.Errorf("Expected empty ChannelID, got %q", cfg.ChannelID)
	}
	if cfg.UpdateInterval != DefaultUpdateIntervalSec {
		t.Errorf("Expected default interval %d, got %d", DefaultUpdateIntervalSec, cfg.UpdateInterval)
	}
	if cfg.DisplayDuration != DefaultDisplayDurationSec {
		t.Errorf("Expected default duration %v, got %v", DefaultDisplayDurationSec, cfg.DisplayDuration)
	}
}

func TestFromOptions_Coercion(t *testing.T) {
	tests := []struct {
		name     string
		options  map[string]any
		expected int
	}{
		{"int", map[string]any{KeyUpdateInterval: 120}, 120},
		{"int64", map[string]any{KeyUpdateInterval: int64(90)}, 90},
		{"float64 from json", map[string]any{KeyUpdateInterval: 60.0}, 60},
		{"zero falls back", map[string]any{KeyUpdateInterval: 0}, DefaultUpdateIntervalSec},
		{"negative falls back", map[string]any{KeyUpdateInterval: -5}, DefaultUpdateIntervalSec},
		{"string falls back", map[string]any{KeyUpdateInterval: "120"}, DefaultUpdateIntervalSec},
	}

	for _, test := range tests {
		cfg := FromOptions(test.options)
		if cfg.UpdateInterval != test.expected {
			t.Errorf("%s: UpdateInterval = %d, expected %d", test.name, cfg.UpdateInterval, test.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Widget
		expected error
	}{
		{"valid", Widget{ChannelID: "UC123", APIKey: "key"}, nil},
		{"missing channel", Widget{APIKey: "key"}, ErrMissingChannelID},
		{"missing key", Widget{ChannelID: "UC123"}, ErrMissingAPIKey},
		{"missing both reports channel first", Widget{}, ErrMissingChannelID},
	}

	for _, test := range tests {
		if err := test.cfg.Validate(); !errors.Is(err, test.expected) {
			t.Errorf("%s: Validate() = %v, expected %v", test.name, err, test.expected)
		}
	}
}

func TestRefreshInterval(t *testing.T) {
	cfg := Widget{UpdateInterval: 300}
	if got := cfg.RefreshInterval(); got != 5*time.Minute {
		t.Errorf("RefreshInterval() = %v, expected 5m", got)
	}
}

func TestMergeSecrets(t *testing.T) {
	options := map[string]any{"channel_id": "UC123", "api_key": "stale"}
	secrets := map[string]any{"api_key": "real"}

	merged := MergeSecrets(options, secrets)

	if merged["channel_id"] != "UC123" {
		t.Errorf("channel_id lost in merge: %v", merged["channel_id"])
	}
	if merged["api_key"] != "real" {
		t.Errorf("secrets should override config, got %v", merged["api_key"])
	}
	if options["api_key"] != "stale" {
		t.Error("MergeSecrets must not mutate the input map")
	}
}

func TestLoadHost(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := `
panel_width: 64
widgets:
  - name: youtube_stats
    options:
      channel_id: UC123
      update_interval: 120
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadHost(path)
	if err != nil {
		t.Fatalf("LoadHost failed: %v", err)
	}

	if cfg.PanelWidth != 64 {
		t.Errorf("PanelWidth = %d, expected 64", cfg.PanelWidth)
	}
	if cfg.PanelHeight != DefaultPanelHeight {
		t.Errorf("PanelHeight = %d, expected default %d", cfg.PanelHeight, DefaultPanelHeight)
	}
	if len(cfg.Widgets) != 1 {
		t.Fatalf("Expected 1 widget entry, got %d", len(cfg.Widgets))
	}

	w := FromOptions(cfg.Widgets[0].Options)
	if w.ChannelID != "UC123" {
		t.Errorf("ChannelID = %q, expected UC123", w.ChannelID)
	}
	if w.UpdateInterval != 120 {
		t.Errorf("UpdateInterval = %d, expected 120", w.UpdateInterval)
	}
}

func TestLoadHost_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("panel_width: 64\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	t.Setenv("LEDMATRIX_PANEL_WIDTH", "256")

	cfg, err := LoadHost(path)
	if err != nil {
		t.Fatalf("LoadHost failed: %v", err)
	}
	if cfg.PanelWidth != 256 {
		t.Errorf("PanelWidth = %d, expected env override 256", cfg.PanelWidth)
	}
}

func TestLoadSecrets_Missing(t *testing.T) {
	secrets, err := LoadSecrets(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Missing secrets file should not error, got: %v", err)
	}
	if len(secrets) != 0 {
		t.Errorf("Expected empty secrets, got %v", secrets)
	}
}
