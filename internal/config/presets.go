package config

import "sort"

// Presets only set the fields they name; Apply copies them over a base config.
var Presets = map[string]*Config{
	"reference": DefaultConfig(),
	"slow": {
		BaselineRate: 0.05,
		SweepRates:   []float64{0.01, 0.02, 0.05, 0.1},
		Time:         TimeConfig{End: 300, Step: 0.1},
	},
	"aggressive": {
		BaselineRate: 0.8,
		SweepRates:   []float64{0.4, 0.8, 1.2, 1.6},
		Time:         TimeConfig{End: 30, Step: 0.05},
	},
	"fine": {
		Time: TimeConfig{End: 100, Step: 0.01},
	},
	"unbounded": {
		Model:    "exponential",
		Capacity: 1e12,
		Time:     TimeConfig{End: 20, Step: 0.1},
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply returns a copy of base with the preset's non-zero fields applied.
func (c *Config) Apply(base *Config) *Config {
	cfg := base.Clone()
	if c.Model != "" {
		cfg.Model = c.Model
	}
	if c.Integrator != "" {
		cfg.Integrator = c.Integrator
	}
	if c.Capacity != 0 {
		cfg.Capacity = c.Capacity
	}
	if c.Initial != 0 {
		cfg.Initial = c.Initial
	}
	if c.BaselineRate != 0 {
		cfg.BaselineRate = c.BaselineRate
	}
	if len(c.SweepRates) > 0 {
		cfg.SweepRates = append([]float64(nil), c.SweepRates...)
	}
	if c.Time.End != 0 {
		cfg.Time.Start = c.Time.Start
		cfg.Time.End = c.Time.End
	}
	if c.Time.Step != 0 {
		cfg.Time.Step = c.Time.Step
	}
	return cfg
}
