// Package config loads the optional YAML server configuration file for
// cmd/server: listen address, log level, and the default page geometry fed
// into layout.EngineOption. A config file is
// never required — an absent or empty path just yields Defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PaperSize names one of layout's named page sizes by string so it can be
// written in YAML without importing the layout package here (config stays a
// leaf dependency, mirroring wudi-pdfkit's own package layering).
type PaperSize string

const (
	A4 PaperSize = "a4"
	A3 PaperSize = "a3"
	Letter PaperSize = "letter"
)

// Margins is the page padding applied to a page node that declares none of
// its own (layout.WithMargins).
type Margins struct {
	Top float32 `yaml:"top"`
	Right float32 `yaml:"right"`
	Bottom float32 `yaml:"bottom"`
	Left float32 `yaml:"left"`
}

// Config is the server's YAML-decoded configuration.
type Config struct {
	Addr string `yaml:"addr"`
	LogLevel string `yaml:"logLevel"`
	PaperSize PaperSize `yaml:"paperSize"`
	Margins Margins `yaml:"margins"`
	DefaultFont string `yaml:"defaultFont"`
}

// Default returns the server's built-in configuration, used when no
// --config file is given.
func Default() Config {
	return Config{
		Addr: ":8080",
		LogLevel: "info",
		PaperSize: A4,
		DefaultFont: "Helvetica",
	}
}

// Load reads and decodes a YAML config file at path, starting from
// Default so a partial file only overrides what it specifies - the same
// "decode over a literal, don't require every field" shape as wudi-pdfkit's
// layout.NewEngine(opts...) defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
