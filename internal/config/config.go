// Package config loads the CLI's umlforge.yaml configuration, the
// same yaml.v3-based pattern the teacher's test suite already uses for
// fixture (de)serialization (analyzer/analyzer_test.go), here promoted
// to an actual on-disk config file for cmd/umlforge.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the umlforge CLI's on-disk configuration.
type Config struct {
	// DefaultLanguage is used when parse/diagram commands omit --language.
	DefaultLanguage string `yaml:"default_language"`
	// OutputDir is where rendered diagrams and debug JSON are written
	// when a command omits --out.
	OutputDir string `yaml:"output_dir"`
	// DiagramTypes lists the diagram types "umlforge diagram" renders
	// when invoked without an explicit --type.
	DiagramTypes []string `yaml:"diagram_types"`
}

// Default returns the built-in configuration used when no umlforge.yaml
// is present.
func Default() *Config {
	return &Config{
		OutputDir:    ".",
		DiagramTypes: []string{"class"},
	}
}

// Load reads and parses a umlforge.yaml config file at path. A missing
// file is not an error: Load returns Default() unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
