package config

import (
	"errors"
	"time"
)

// Option keys in the widget's host-supplied configuration map
const (
	KeyChannelID       = "channel_id"
	KeyAPIKey          = "api_key"
	KeyUpdateInterval  = "update_interval"
	KeyDisplayDuration = "display_duration"
)

// Default values
const (
	DefaultUpdateIntervalSec  = 300
	DefaultDisplayDurationSec = 15.0
)

// Validation errors
var (
	ErrMissingChannelID = errors.New("channel_id is required but not configured")
	ErrMissingAPIKey    = errors.New("api_key is required but not configured in secrets")
)

// Widget holds one widget instance's configuration. Immutable after
// construction.
type Widget struct {
	ChannelID       string
	APIKey          string
	UpdateInterval  int     // seconds between refreshes, also the cache TTL
	DisplayDuration float64 // seconds this widget stays on screen in rotation
}

// FromOptions builds a Widget config from the host's option map, applying
// defaults for anything absent or malformed. The api_key arrives through the
// host's secrets merge, never plain config files.
func FromOptions(options map[string]any) Widget {
	return Widget{
		ChannelID:       stringOption(options, KeyChannelID, ""),
		APIKey:          stringOption(options, KeyAPIKey, ""),
		UpdateInterval:  intOption(options, KeyUpdateInterval, DefaultUpdateIntervalSec),
		DisplayDuration: floatOption(options, KeyDisplayDuration, DefaultDisplayDurationSec),
	}
}

// Validate checks the required fields.
func (w Widget) Validate() error {
	if w.ChannelID == "" {
		return ErrMissingChannelID
	}
	if w.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// RefreshInterval returns the update interval as a duration.
func (w Widget) RefreshInterval() time.Duration {
	return time.Duration(w.UpdateInterval) * time.Second
}

func stringOption(options map[string]any, key, fallback string) string {
	if v, ok := options[key].(string); ok {
		return v
	}
	return fallback
}

// intOption accepts int and float64 so options survive both YAML and JSON
// decoding.
func intOption(options map[string]any, key string, fallback int) int {
	switch v := options[key].(type) {
	case int:
		if v > 0 {
			return v
		}
	case int64:
		if v > 0 {
			return int(v)
		}
	case float64:
		if v > 0 {
			return int(v)
		}
	}
	return fallback
}

func floatOption(options map[string]any, key string, fallback float64) float64 {
	switch v := options[key].(type) {
	case float64:
		if v > 0 {
			return v
		}
	case int:
		if v > 0 {
			return float64(v)
		}
	}
	return fallback
}
