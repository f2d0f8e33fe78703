// Package config loads and persists the frameshift tool configuration.
// Values come from a YAML file, FRAMESHIFT_* environment variables, and
// built-in defaults, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"frameshift/sieve"
)

// SieveConfig carries the generator tunables. Out-of-range values are not
// an error here: they pass through sieve.Params.With, which silently keeps
// the prior (default) value, matching the setter contract.
type SieveConfig struct {
	CurvatureK   float64 `json:"curvature_k" yaml:"curvature_k" mapstructure:"curvature_k"`
	FrameCount   uint32  `json:"frame_count" yaml:"frame_count" mapstructure:"frame_count"`
	DensityBoost float64 `json:"density_boost" yaml:"density_boost" mapstructure:"density_boost"`
}

// Params folds the configured tunables over the defaults.
func (s SieveConfig) Params() sieve.Params {
	return sieve.DefaultParams().With(s.CurvatureK, s.FrameCount, s.DensityBoost)
}

// RangeConfig is one benchmark range.
type RangeConfig struct {
	Start       uint64 `json:"start" yaml:"start" mapstructure:"start"`
	Stop        uint64 `json:"stop" yaml:"stop" mapstructure:"stop"`
	Description string `json:"description" yaml:"description" mapstructure:"description"`
}

// BenchConfig controls the comparative benchmark suite.
type BenchConfig struct {
	Runs        int           `json:"runs" yaml:"runs" mapstructure:"runs"`
	Parallelism int           `json:"parallelism" yaml:"parallelism" mapstructure:"parallelism"`
	Ranges      []RangeConfig `json:"ranges" yaml:"ranges" mapstructure:"ranges"`
}

// OutputConfig controls report files and logging.
type OutputConfig struct {
	Directory      string `json:"directory" yaml:"directory" mapstructure:"directory"`
	FilenamePrefix string `json:"filename_prefix" yaml:"filename_prefix" mapstructure:"filename_prefix"`
	SaveCSV        bool   `json:"save_csv" yaml:"save_csv" mapstructure:"save_csv"`
	SaveJSON       bool   `json:"save_json" yaml:"save_json" mapstructure:"save_json"`
	LogLevel       string `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
	Verbose        bool   `json:"verbose" yaml:"verbose" mapstructure:"verbose"`
}

// Config is the full tool configuration.
type Config struct {
	Sieve  SieveConfig  `json:"sieve" yaml:"sieve" mapstructure:"sieve"`
	Bench  BenchConfig  `json:"bench" yaml:"bench" mapstructure:"bench"`
	Output OutputConfig `json:"output" yaml:"output" mapstructure:"output"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Sieve: SieveConfig{
			CurvatureK:   sieve.DefaultCurvatureK,
			FrameCount:   0,
			DensityBoost: sieve.GoldenRatio,
		},
		Bench: BenchConfig{
			Runs:        5,
			Parallelism: 1,
			Ranges: []RangeConfig{
				{Start: 1, Stop: 1000, Description: "Small (1K)"},
				{Start: 1, Stop: 10000, Description: "Medium (10K)"},
				{Start: 1, Stop: 100000, Description: "Large (100K)"},
				{Start: 1, Stop: 1000000, Description: "XLarge (1M)"},
				{Start: 100000, Stop: 200000, Description: "Segment (100K-200K)"},
				{Start: 1000000, Stop: 1100000, Description: "Segment (1M-1.1M)"},
			},
		},
		Output: OutputConfig{
			Directory:      ".",
			FilenamePrefix: "frameshift",
			SaveCSV:        true,
			SaveJSON:       true,
			LogLevel:       "info",
			Verbose:        false,
		},
	}
}

// Load reads the configuration from path, applying defaults and
// FRAMESHIFT_* environment overrides. Missing files surface the underlying
// error so callers can fall back to Default and persist it.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	setDefaults(v)

	v.SetEnvPrefix("FRAMESHIFT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("sieve.curvature_k", def.Sieve.CurvatureK)
	v.SetDefault("sieve.frame_count", def.Sieve.FrameCount)
	v.SetDefault("sieve.density_boost", def.Sieve.DensityBoost)

	v.SetDefault("bench.runs", def.Bench.Runs)
	v.SetDefault("bench.parallelism", def.Bench.Parallelism)
	v.SetDefault("bench.ranges", def.Bench.Ranges)

	v.SetDefault("output.directory", def.Output.Directory)
	v.SetDefault("output.filename_prefix", def.Output.FilenamePrefix)
	v.SetDefault("output.save_csv", def.Output.SaveCSV)
	v.SetDefault("output.save_json", def.Output.SaveJSON)
	v.SetDefault("output.log_level", def.Output.LogLevel)
	v.SetDefault("output.verbose", def.Output.Verbose)
}

// Validate rejects tooling-level values the runner cannot work with.
// Sieve tunables are deliberately not validated here (see SieveConfig).
func Validate(cfg *Config) error {
	if cfg.Bench.Runs < 1 {
		return fmt.Errorf("bench.runs must be at least 1")
	}
	if cfg.Bench.Parallelism < 1 {
		return fmt.Errorf("bench.parallelism must be at least 1")
	}
	for i, r := range cfg.Bench.Ranges {
		if r.Start > r.Stop {
			return fmt.Errorf("bench.ranges[%d]: start %d exceeds stop %d", i, r.Start, r.Stop)
		}
	}

	switch cfg.Output.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("output.log_level must be one of debug, info, warn, error")
	}

	return nil
}

// Save writes cfg to path as commented YAML, creating the directory if
// needed.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := "# frameshift configuration\n# Generated on " +
		time.Now().Format("2006-01-02 15:04:05") + "\n\n"

	if err := os.WriteFile(path, []byte(header+string(data)), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
