package config

// Package config covers both sides of configuration: the per-widget option
// map handed over by the host (with secrets merged in), and the demo host's
// own YAML file with environment overrides.
