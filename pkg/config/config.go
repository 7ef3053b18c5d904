// Package config holds the run configuration: built-in defaults, an optional
// HCL file, and validation.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"loanprep/pkg/data"
	"loanprep/pkg/stats"
)

const (
	DefaultInput  = "../loan_data.csv"
	DefaultOutput = "loan_data_cleaned_automated.csv"
	DefaultTarget = "loan_status"
)

var (
	ErrInvalid = errors.New("invalid configuration")

	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Config holds everything a run needs.
type Config struct {
	Input         string   `hcl:"input,optional"`
	Output        string   `hcl:"output,optional"`
	Target        string   `hcl:"target,optional"`
	IQRMultiplier float64  `hcl:"iqr_multiplier,optional"`
	NAValues      []string `hcl:"na_values,optional"`
	Preview       int      `hcl:"preview,optional"`

	Log    *LogConfig    `hcl:"log,block"`
	Report *ReportConfig `hcl:"report,block"`
}

type LogConfig struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// ReportConfig names optional diagnostic outputs. Empty paths disable them.
type ReportConfig struct {
	Plot    string `hcl:"plot,optional"`
	Metrics string `hcl:"metrics,optional"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input:         DefaultInput,
		Output:        DefaultOutput,
		Target:        DefaultTarget,
		IQRMultiplier: stats.DefaultIQRMultiplier,
		NAValues:      slices.Clone(data.DefaultNAValues),
		Preview:       5,
		Log:           &LogConfig{Level: "info", Format: "text"},
		Report:        &ReportConfig{},
	}
}

// LoadFile reads an HCL file over the defaults. Attributes missing from the
// file keep their default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	def := Default()
	if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Log == nil {
		cfg.Log = def.Log
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}
	if cfg.Report == nil {
		cfg.Report = def.Report
	}
	return cfg, nil
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Input == "":
		return fmt.Errorf("%w: input path is required", ErrInvalid)
	case c.Output == "":
		return fmt.Errorf("%w: output path is required", ErrInvalid)
	case c.Input == c.Output:
		return fmt.Errorf("%w: output would overwrite input %s", ErrInvalid, c.Input)
	case c.IQRMultiplier <= 0:
		return fmt.Errorf("%w: iqr_multiplier must be positive, got %v", ErrInvalid, c.IQRMultiplier)
	case c.Preview < 0:
		return fmt.Errorf("%w: preview must not be negative", ErrInvalid)
	case !slices.Contains(logLevels, c.Log.Level):
		return fmt.Errorf("%w: log level must be one of %v", ErrInvalid, logLevels)
	case !slices.Contains(logFormats, c.Log.Format):
		return fmt.Errorf("%w: log format must be 'text' or 'json'", ErrInvalid)
	}
	return nil
}
