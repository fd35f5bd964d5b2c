// Package config loads storymatrix settings from an optional YAML file and
// STORYMATRIX_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/ukaji3/storymatrix-go/pkg/storymatrix"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. STORYMATRIX_WORKBOOK_PATH.
const EnvPrefix = "STORYMATRIX"

// DefaultFile is read when no config path is given and the file exists.
const DefaultFile = "storymatrix.yaml"

// Config is the complete tool configuration. Environment keys are derived
// from field names (STORYMATRIX_FRONTEND_DIR); fields carry no envconfig
// tags so that bare names such as PATH are never consulted.
type Config struct {
	Frontend FrontendConfig `yaml:"frontend"`
	Workbook WorkbookConfig `yaml:"workbook"`
	// Catalog is an optional catalog YAML replacing the embedded one.
	Catalog string `yaml:"catalog"`
	// Stories is the BA user story document checked by verify-stories.
	Stories string        `yaml:"stories"`
	Logging LoggingConfig `yaml:"logging"`
}

// FrontendConfig locates the route tree.
type FrontendConfig struct {
	// Dir is the route root scanned for page files.
	Dir string `yaml:"dir" validate:"required"`
	// Base is the directory source paths are reported relative to.
	Base string `yaml:"base"`
	// Marker is the file name marking a page directory.
	Marker string `yaml:"marker" validate:"required"`
}

// WorkbookConfig locates the story matrix workbook.
type WorkbookConfig struct {
	Path string `yaml:"path" validate:"required"`
	// Output is where mutated workbooks are saved; empty overwrites Path.
	Output    string `yaml:"output"`
	Checklist string `yaml:"checklist" validate:"required"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Frontend: FrontendConfig{
			Dir:    "src/app/(frontend)",
			Base:   ".",
			Marker: storymatrix.DefaultPageFile,
		},
		Workbook: WorkbookConfig{
			Path:      "docs/UI_STORY_MATRIX.xlsx",
			Checklist: "docs/UI_CHECKLIST_TESTER.xlsx",
		},
		Stories: "docs/He_thong_quan_ly_cong_viec_full/1. Epic - user stories.md",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path (or
// DefaultFile when path is empty and that file exists), then environment
// overrides. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	file := path
	if file == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			file = DefaultFile
		}
	}
	if file != "" {
		if err := loadFromFile(file, cfg); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", storymatrix.ErrFileNotFound, path)
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks required fields and enumerations.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// OutputPath returns where a mutated workbook should be written.
func (c *Config) OutputPath() string {
	if c.Workbook.Output != "" {
		return c.Workbook.Output
	}
	return c.Workbook.Path
}
