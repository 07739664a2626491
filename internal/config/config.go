package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/dimcalc/internal/calc"
	"github.com/san-kum/dimcalc/internal/logger"
)

const (
	DefaultDataDir    = ".dimcalc"
	DefaultPrecision  = 6
	DefaultFormat     = "table"
	DefaultSweepSteps = 50
	DefaultPlotWidth  = 70
	DefaultPlotHeight = 12
	MaxPrecision      = 17
	MaxSweepSteps     = calc.MaxSweepSteps
)

var (
	ErrInvalidFormat = errors.New("config: invalid output format")
	ErrInvalidValue  = errors.New("config: invalid value")
)

var formats = map[string]bool{"table": true, "json": true, "csv": true}

type Config struct {
	DataDir   string        `yaml:"data_dir"`
	Precision int           `yaml:"precision"`
	Format    string        `yaml:"format"`
	Sweep     SweepConfig   `yaml:"sweep"`
	Log       logger.Config `yaml:"log"`
}

type SweepConfig struct {
	Steps  int `yaml:"steps"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:   DefaultDataDir,
		Precision: DefaultPrecision,
		Format:    DefaultFormat,
		Sweep: SweepConfig{
			Steps:  DefaultSweepSteps,
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
		},
		Log: logger.DefaultConfig(),
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if !formats[c.Format] {
		return fmt.Errorf("%q: %w", c.Format, ErrInvalidFormat)
	}
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("precision %d outside [0, %d]: %w", c.Precision, MaxPrecision, ErrInvalidValue)
	}
	if c.Sweep.Steps < 2 || c.Sweep.Steps > MaxSweepSteps {
		return fmt.Errorf("sweep steps %d outside [2, %d]: %w", c.Sweep.Steps, MaxSweepSteps, ErrInvalidValue)
	}
	if c.Sweep.Width <= 0 || c.Sweep.Height <= 0 {
		return fmt.Errorf("plot size %dx%d: %w", c.Sweep.Width, c.Sweep.Height, ErrInvalidValue)
	}
	if c.DataDir == "" {
		return fmt.Errorf("empty data_dir: %w", ErrInvalidValue)
	}
	return nil
}
