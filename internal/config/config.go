/*
PURPOSE:
  Defines the configuration structure and loading logic for the chart generator.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Default input file resultados_simulacao.csv, retried under build/.
  - Charts go to graficos/ at 150 DPI.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Figure size is kept in inches so DPI changes scale the image, not the layout.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - A missing default config file is not an error (falls back to defaults).

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults must reproduce the batch script exactly.

USAGE:
  cfg, err := config.Load("gerar_graficos.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig() and Validate().

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFiles are searched in the working directory when no --config is given.
var DefaultFiles = []string{"gerar_graficos.yaml", "graficos.yaml"}

// Config represents the full configuration for the chart generator.
type Config struct {
	InputFile   string `yaml:"input_file"`
	FallbackDir string `yaml:"fallback_dir"`
	OutputDir   string `yaml:"output_dir"`

	DPI      float64 `yaml:"dpi"`
	WidthIn  float64 `yaml:"width_in"`
	HeightIn float64 `yaml:"height_in"`

	// ExportData writes dados_graficos.json and grade_metricas.csv next to the charts.
	ExportData bool `yaml:"export_data"`
	// ArchivePath enables the SQLite archive when non-empty.
	ArchivePath string `yaml:"archive_path"`
	LogLevel    string `yaml:"log_level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		InputFile:   "resultados_simulacao.csv",
		FallbackDir: "build",
		OutputDir:   "graficos",
		DPI:         150,
		WidthIn:     10,
		HeightIn:    6,
		ExportData:  true,
		LogLevel:    "info",
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches DefaultFiles in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		found := false
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects settings no chart can be rendered with.
func (c *Config) Validate() error {
	var errs []error
	if c.InputFile == "" {
		errs = append(errs, errors.New("input_file must not be empty"))
	}
	if c.OutputDir == "" {
		errs = append(errs, errors.New("output_dir must not be empty"))
	}
	if c.DPI <= 0 {
		errs = append(errs, fmt.Errorf("dpi must be positive, got %v", c.DPI))
	}
	if c.WidthIn <= 0 || c.HeightIn <= 0 {
		errs = append(errs, fmt.Errorf("figure size must be positive, got %vx%v in", c.WidthIn, c.HeightIn))
	}
	return errors.Join(errs...)
}

// PixelSize returns the figure size in pixels before cropping.
func (c *Config) PixelSize() (int, int) {
	return int(c.WidthIn*c.DPI + 0.5), int(c.HeightIn*c.DPI + 0.5)
}
