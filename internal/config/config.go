package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt      = 0.01
	DefaultTMax    = 20.0
	DefaultDelta   = 0.05
	DefaultMaxDist = 0.5
)

type Config struct {
	Model       string            `yaml:"model"`
	Integrator  string            `yaml:"integrator"`
	Dt          float64           `yaml:"dt"`
	Basin       BasinConfig       `yaml:"basin"`
	Bifurcation BifurcationConfig `yaml:"bifurcation"`
	Poincare    PoincareConfig    `yaml:"poincare"`
}

type BasinConfig struct {
	XMin       float64     `yaml:"xmin"`
	XMax       float64     `yaml:"xmax"`
	YMin       float64     `yaml:"ymin"`
	YMax       float64     `yaml:"ymax"`
	Delta      float64     `yaml:"delta"`
	TMax       float64     `yaml:"tmax"`
	MaxDist    float64     `yaml:"maxdist"`
	Workers    int         `yaml:"workers"`
	Attractors [][]float64 `yaml:"attractors"`
	KeepCorner bool        `yaml:"keep_corner"`
}

type BifurcationConfig struct {
	Param      string  `yaml:"param"`
	Min        float64 `yaml:"min"`
	Max        float64 `yaml:"max"`
	Steps      int     `yaml:"steps"`
	StateIndex int     `yaml:"state_index"`
	Transient  float64 `yaml:"transient"`
	Record     float64 `yaml:"record"`
}

type PoincareConfig struct {
	CrossIndex int     `yaml:"cross_index"`
	Threshold  float64 `yaml:"threshold"`
	RecordX    int     `yaml:"record_x"`
	RecordY    int     `yaml:"record_y"`
	Duration   float64 `yaml:"duration"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:      "magpend",
		Integrator: "rk4",
		Dt:         DefaultDt,
		Basin: BasinConfig{
			XMin:    -2.0,
			XMax:    2.0,
			YMin:    -2.0,
			YMax:    2.0,
			Delta:   DefaultDelta,
			TMax:    DefaultTMax,
			MaxDist: DefaultMaxDist,
		},
		Bifurcation: BifurcationConfig{
			Param:     "gamma",
			Min:       0.2,
			Max:       0.65,
			Steps:     200,
			Transient: 100.0,
			Record:    50.0,
		},
		Poincare: PoincareConfig{
			CrossIndex: 2,
			RecordX:    0,
			RecordY:    1,
			Duration:   500.0,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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
