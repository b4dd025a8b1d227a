// Package config loads the optional YAML configuration file. Every
// field has a default so the viewer runs with no config at all.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Data   DataConfig   `yaml:"data"`
	State  StateConfig  `yaml:"state"`
	Export ExportConfig `yaml:"export"`
}

type DataConfig struct {
	// Location is a local file path or an http(s) URL for the events
	// payload.
	Location string `yaml:"location"`

	// Timeout bounds the fetch when Location is a URL.
	Timeout time.Duration `yaml:"timeout"`
}

type StateConfig struct {
	// Dir overrides the XDG state directory for persisted filters and
	// saved credentials.
	Dir string `yaml:"dir"`
}

type ExportConfig struct {
	// Path is where the ICS export of the visible events is written.
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Location: "events.json",
			Timeout:  10 * time.Second,
		},
		Export: ExportConfig{
			Path: "schoolcal.ics",
		},
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
