package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type DatasetsConfig struct {
	Unreliable string `yaml:"unreliable"`
	Credible   string `yaml:"credible"`
	Validation string `yaml:"validation"`
	Leak       string `yaml:"leak"`

	// negative disables the limit
	CredibleLimit int `yaml:"credible_limit"`

	// empty keeps every unreliable article
	UnreliableCategory string `yaml:"unreliable_category"`
}

type SplitConfig struct {
	Weights []float64 `yaml:"weights"`
	Seed    int64     `yaml:"seed"`
}

type IdsConfig struct {
	Reproducible bool   `yaml:"reproducible"`
	Seed         uint64 `yaml:"seed"`
}

type OutputConfig struct {
	Partitions int `yaml:"partitions"`

	// empty skips writing
	Dir    string `yaml:"dir"`
	SQLite string `yaml:"sqlite"`
}

type StorageConfig struct {
	Path          string `yaml:"path"`
	CacheMaxBytes uint64 `yaml:"cache_max_bytes"`
	Threads       int    `yaml:"threads"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Datasets DatasetsConfig `yaml:"datasets"`
	Split    SplitConfig    `yaml:"split"`
	Ids      IdsConfig      `yaml:"ids"`
	Output   OutputConfig   `yaml:"output"`
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`
}

func DefaultConfig() *Config {
	return &Config{
		Datasets: DatasetsConfig{
			Unreliable: "data/unreliable.json",
			Credible:   "data/credible.json",
			Validation: "data/validation.json",
			Leak:       "data/leak.json",

			CredibleLimit: 6061,
		},
		Split: SplitConfig{
			Weights: []float64{0.8, 0.2},
			Seed:    11,
		},
		Ids: IdsConfig{
			Reproducible: true,
			Seed:         11,
		},
		Output: OutputConfig{
			Partitions: 10,
		},
		Storage: StorageConfig{
			Path: ".newsprep",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the yaml file at path over the defaults, a missing file keeps
// the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

var validLogLevels = []string{"debug", "info", "warn", "error"}

func (c *Config) Validate() error {

	paths := map[string]string{
		"datasets.unreliable": c.Datasets.Unreliable,
		"datasets.credible":   c.Datasets.Credible,
		"datasets.validation": c.Datasets.Validation,
		"datasets.leak":       c.Datasets.Leak,
	}
	for _, key := range []string{"datasets.unreliable", "datasets.credible", "datasets.validation", "datasets.leak"} {
		if paths[key] == "" {
			return fmt.Errorf("%w: %s is not set", ErrInvalidConfig, key)
		}
	}

	if len(c.Split.Weights) != 2 {
		return fmt.Errorf("%w: split.weights needs two values, got %v", ErrInvalidConfig, c.Split.Weights)
	}
	for _, w := range c.Split.Weights {
		if !(w > 0) {
			return fmt.Errorf("%w: split.weights must be positive, got %v", ErrInvalidConfig, c.Split.Weights)
		}
	}

	if c.Output.Partitions <= 0 {
		return fmt.Errorf("%w: output.partitions must be positive, got %d", ErrInvalidConfig, c.Output.Partitions)
	}

	validLevel := false
	for _, l := range validLogLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("%w: invalid logging.level %q (valid: %v)", ErrInvalidConfig, c.Logging.Level, validLogLevels)
	}

	return nil
}
