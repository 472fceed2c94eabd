// Package config loads the application configuration from an optional YAML
// file with SALESCLEAN_* environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "SALESCLEAN"

// Config is the complete application configuration.
type Config struct {
	Input    InputConfig    `yaml:"input" envconfig:"INPUT"`
	Output   OutputConfig   `yaml:"output" envconfig:"OUTPUT"`
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Tracing  TracingConfig  `yaml:"tracing" envconfig:"TRACING"`
}

// InputConfig locates the raw sales data.
type InputConfig struct {
	Path string `yaml:"path" envconfig:"PATH" validate:"required"`
}

// OutputConfig locates the cleaned sales data.
type OutputConfig struct {
	Path string `yaml:"path" envconfig:"PATH" validate:"required"`
	// BOM prepends a UTF-8 byte order mark for Excel compatibility.
	BOM bool `yaml:"bom" envconfig:"BOM"`
}

// PipelineConfig tunes pipeline behavior.
type PipelineConfig struct {
	// CollisionPolicy decides what happens when two raw column labels
	// normalize to the same label: "last-wins" or "fail".
	CollisionPolicy string `yaml:"collision_policy" envconfig:"COLLISION_POLICY" validate:"oneof=last-wins fail"`
	// PreviewRows is how many cleaned rows to print on success.
	PreviewRows int `yaml:"preview_rows" envconfig:"PREVIEW_ROWS" validate:"min=0"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// TracingConfig contains OpenTelemetry tracing configuration.
type TracingConfig struct {
	Enabled bool `yaml:"enabled" envconfig:"ENABLED"`
}

// Default returns the built-in configuration: the standard raw and processed
// sales data locations and a quiet console logger.
func Default() Config {
	return Config{
		Input: InputConfig{
			Path: "data/raw/sales_data_raw.csv",
		},
		Output: OutputConfig{
			Path: "data/processed/sales_data_clean.csv",
			BOM:  false,
		},
		Pipeline: PipelineConfig{
			CollisionPolicy: "last-wins",
			PreviewRows:     5,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "console",
			FilePath: "logs/salesclean.log",
		},
		Tracing: TracingConfig{
			Enabled: false,
		},
	}
}

// Load builds the configuration: defaults, overlaid by the YAML file at
// filePath when it exists (empty path skips the file), overlaid by
// environment variables, then validated.
func Load(filePath string) (*Config, error) {
	cfg := Default()

	if filePath != "" {
		if _, err := os.Stat(filePath); err == nil {
			if err := loadFromFile(filePath, &cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat config file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration against its struct-tag rules.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
