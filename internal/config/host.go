package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Host defaults
const (
	DefaultPanelWidth  = 128
	DefaultPanelHeight = 32
	DefaultOutputPath  = "panel.png"
	DefaultCacheSize   = 64
	DefaultSecretsPath = "config/secrets.yml"
)

// Host is the demo host daemon configuration: panel geometry, output driver
// settings, and the widget roster. Environment variables override the YAML
// file.
type Host struct {
	PanelWidth  int    `yaml:"panel_width" env:"LEDMATRIX_PANEL_WIDTH"`
	PanelHeight int    `yaml:"panel_height" env:"LEDMATRIX_PANEL_HEIGHT"`
	OutputPath  string `yaml:"output_path" env:"LEDMATRIX_OUTPUT_PATH"`
	CacheSize   int    `yaml:"cache_size" env:"LEDMATRIX_CACHE_SIZE"`
	SecretsPath string `yaml:"secrets_path" env:"LEDMATRIX_SECRETS_PATH"`

	Widgets []WidgetEntry `yaml:"widgets"`
}

// WidgetEntry names one widget instance and carries its raw option map.
type WidgetEntry struct {
	Name    string         `yaml:"name"`
	Options map[string]any `yaml:"options"`
}

// LoadHost reads the host YAML config, applies env overrides, then defaults.
func LoadHost(path string) (*Host, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read host config: %w", err)
	}

	var cfg Host
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse host config: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env overrides: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (h *Host) applyDefaults() {
	if h.PanelWidth <= 0 {
		h.PanelWidth = DefaultPanelWidth
	}
	if h.PanelHeight <= 0 {
		h.PanelHeight = DefaultPanelHeight
	}
	if h.OutputPath == "" {
		h.OutputPath = DefaultOutputPath
	}
	if h.CacheSize <= 0 {
		h.CacheSize = DefaultCacheSize
	}
	if h.SecretsPath == "" {
		h.SecretsPath = DefaultSecretsPath
	}
}

// LoadSecrets reads a flat YAML map of secret option values. A missing file
// is not an error; widgets that need secrets will fail validation instead.
func LoadSecrets(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("read secrets: %w", err)
	}

	secrets := map[string]any{}
	if err := yaml.Unmarshal(data, &secrets); err != nil {
		return nil, fmt.Errorf("parse secrets: %w", err)
	}
	return secrets, nil
}

// MergeSecrets folds secret values into a widget option map. Secrets win
// over plain config so keys like api_key never have to live in the config
// file to begin with.
func MergeSecrets(options, secrets map[string]any) map[string]any {
	merged := make(map[string]any, len(options)+len(secrets))
	for k, v := range options {
		merged[k] = v
	}
	for k, v := range secrets {
		merged[k] = v
	}
	return merged
}
