package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/tumorsim/internal/dynamo"
	"github.com/san-kum/tumorsim/internal/growth"
)

const (
	DefaultCapacity     = 1000.0
	DefaultInitial      = 10.0
	DefaultEnd          = 100.0
	DefaultStep         = 0.1
	DefaultBaselineRate = 0.2
	DefaultOutputDir    = "."
	DefaultLogLevel     = "info"
	DefaultPlotFormat   = "png"
)

// DefaultSweepRates is returned as a fresh slice by DefaultConfig.
var DefaultSweepRates = []float64{0.05, 0.1, 0.2, 0.4, 0.8}

type Config struct {
	Model        string       `yaml:"model"`
	Integrator   string       `yaml:"integrator"`
	Capacity     float64      `yaml:"capacity"`
	Initial      float64      `yaml:"initial"`
	BaselineRate float64      `yaml:"baseline_rate"`
	SweepRates   []float64    `yaml:"sweep_rates"`
	Time         TimeConfig   `yaml:"time"`
	Output       OutputConfig `yaml:"output"`
	Parallelism  int          `yaml:"parallelism"`
	Validate     bool         `yaml:"validate"`
	LogLevel     string       `yaml:"log_level"`
}

type TimeConfig struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Step  float64 `yaml:"step"`
}

type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Plots  bool   `yaml:"plots"`
	Format string `yaml:"format"`
	ASCII  bool   `yaml:"ascii"`
	CSV    string `yaml:"csv"`
	JSON   string `yaml:"json"`
}

func DefaultConfig() *Config {
	rates := make([]float64, len(DefaultSweepRates))
	copy(rates, DefaultSweepRates)

	return &Config{
		Model:        "logistic",
		Integrator:   "euler",
		Capacity:     DefaultCapacity,
		Initial:      DefaultInitial,
		BaselineRate: DefaultBaselineRate,
		SweepRates:   rates,
		Time: TimeConfig{
			Start: 0,
			End:   DefaultEnd,
			Step:  DefaultStep,
		},
		Output: OutputConfig{
			Dir:    DefaultOutputDir,
			Plots:  true,
			Format: DefaultPlotFormat,
		},
		Parallelism: 1,
		Validate:    true,
		LogLevel:    DefaultLogLevel,
	}
}

// Load reads a YAML file on top of base (DefaultConfig when nil). Keys
// missing from the file keep base's values.
func Load(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if base != nil {
		cfg = base.Clone()
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
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

func (c *Config) Clone() *Config {
	cp := *c
	cp.SweepRates = make([]float64, len(c.SweepRates))
	copy(cp.SweepRates, c.SweepRates)
	return &cp
}

func (c *Config) Params() growth.Params {
	return growth.Params{R: c.BaselineRate, K: c.Capacity, V0: c.Initial}
}

func (c *Config) Grid() (dynamo.TimeGrid, error) {
	return dynamo.UniformGrid(c.Time.Start, c.Time.End, c.Time.Step)
}
