package config

var Presets = map[string]map[string]*Config{
	"magpend": {
		"classic": {
			Model: "magpend", Integrator: "rk4", Dt: 0.01,
			Basin: BasinConfig{
				XMin: -2.0, XMax: 2.0, YMin: -2.0, YMax: 2.0,
				Delta: 0.05, TMax: 30.0, MaxDist: 0.5,
				Attractors: [][]float64{{1.5, 0}, {-0.75, 1.299}, {-0.75, -1.299}},
			},
		},
		"coarse": {
			Model: "magpend", Integrator: "rk4", Dt: 0.02,
			Basin: BasinConfig{
				XMin: -2.0, XMax: 2.0, YMin: -2.0, YMax: 2.0,
				Delta: 0.2, TMax: 20.0, MaxDist: 0.6,
				Attractors: [][]float64{{1.5, 0}, {-0.75, 1.299}, {-0.75, -1.299}},
			},
		},
	},
	"duffing": {
		"wells": {
			Model: "duffing", Integrator: "rk4", Dt: 0.01,
			Basin: BasinConfig{
				XMin: -2.0, XMax: 2.0, YMin: -2.0, YMax: 2.0,
				Delta: 0.05, TMax: 50.0, MaxDist: 0.5,
				Attractors: [][]float64{{-1.0, 0}, {1.0, 0}},
			},
			Bifurcation: BifurcationConfig{
				Param: "gamma", Min: 0.2, Max: 0.65, Steps: 200,
				Transient: 100.0, Record: 50.0,
			},
		},
		"chaos": {
			Model: "duffing", Integrator: "rk45", Dt: 0.01,
			Bifurcation: BifurcationConfig{
				Param: "gamma", Min: 0.3, Max: 0.6, Steps: 300,
				Transient: 150.0, Record: 80.0,
			},
			Poincare: PoincareConfig{
				CrossIndex: 2, Threshold: 6.283, RecordX: 0, RecordY: 1,
				Duration: 2000.0,
			},
		},
	},
	"pendulum": {
		"rest": {
			Model: "pendulum", Integrator: "rk4", Dt: 0.01,
			Basin: BasinConfig{
				XMin: -8.0, XMax: 8.0, YMin: -6.0, YMax: 6.0,
				Delta: 0.1, TMax: 40.0, MaxDist: 0.5,
				Attractors: [][]float64{{0, 0}, {6.283, 0}, {-6.283, 0}},
			},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
