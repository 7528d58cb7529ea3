// Package config loads tool settings from defaults, an optional YAML config
// file, and INCIDENTVIZ_* environment variables, in increasing precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all tool settings.
type Config struct {
	// Input is the path to the GTD extract CSV.
	Input string `mapstructure:"input"`
	// OutDir receives all rendered artifacts.
	OutDir string `mapstructure:"out_dir"`
	// Region is a human-readable label shown in chart titles.
	Region string `mapstructure:"region"`

	// SampleLimit caps the number of records embedded in the HTML output;
	// zero disables sampling.
	SampleLimit int `mapstructure:"sample_limit"`
	// SampleSeed fixes the sampling RNG so repeated runs are identical.
	SampleSeed int64 `mapstructure:"sample_seed"`
	// MinYear is the exclusive floor on accepted years.
	MinYear int `mapstructure:"min_year"`
	// BatchSize is the CSV read batch size for the cleaning pipeline.
	BatchSize int `mapstructure:"batch_size"`

	// MetricsTextfile, when set, receives run metrics in Prometheus
	// exposition format for the node_exporter textfile collector.
	MetricsTextfile string `mapstructure:"metrics_textfile"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration, optionally from a YAML file at path. An empty
// path skips the file layer and uses defaults plus environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("INCIDENTVIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input", "region_05_clean.csv")
	v.SetDefault("out_dir", "out")
	v.SetDefault("region", "Region 05")
	v.SetDefault("sample_limit", 50000)
	v.SetDefault("sample_seed", 42)
	v.SetDefault("min_year", 1900)
	v.SetDefault("batch_size", 1000)
	v.SetDefault("metrics_textfile", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Validate rejects settings no run could succeed with, naming the key.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input: path to the dataset CSV is required")
	}
	if c.OutDir == "" {
		return fmt.Errorf("out_dir: output directory is required")
	}
	if c.SampleLimit < 0 {
		return fmt.Errorf("sample_limit: must be zero (disabled) or positive, got %d", c.SampleLimit)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size: must be positive, got %d", c.BatchSize)
	}
	if c.MinYear < 0 {
		return fmt.Errorf("min_year: must be non-negative, got %d", c.MinYear)
	}
	return nil
}
