package config

var Presets = map[string]*Config{
	"ground": {
		Potential: "square_well",
		Well:      WellConfig{Left: -1, Right: 1, Depth: -1},
		Grid:      GridConfig{Min: -1.4, Max: 1.4, Steps: 280},
		Physics:   PhysicsConfig{Hbar: 1, Mass: 1},
		Shoot:     ShootConfig{States: []int{0}, MaxIter: 1000, Psi1: DefaultPsi1},
	},
	"spectrum": {
		Potential: "square_well",
		Well:      WellConfig{Left: -2, Right: 2, Depth: -10},
		Grid:      GridConfig{Min: -3, Max: 3, Steps: 600},
		Physics:   PhysicsConfig{Hbar: 1, Mass: 1},
		Shoot:     ShootConfig{States: []int{0, 1, 2, 3}, MaxIter: 2000, Psi1: DefaultPsi1},
	},
	"oscillator": {
		Potential: "harmonic",
		Well:      WellConfig{Stiffness: 1, Center: 0},
		Grid:      GridConfig{Min: -8, Max: 8, Steps: 800},
		Physics:   PhysicsConfig{Hbar: 1, Mass: 1},
		Shoot: ShootConfig{
			States: []int{0, 1, 2, 3}, MaxIter: 2000, Psi1: DefaultPsi1,
			// The sampled maximum sits far above the low-lying states;
			// a tighter cap speeds the bisection up considerably.
			Bracket: []float64{0, 10},
		},
	},
	"double_well": {
		Potential: "double_well",
		Well:      WellConfig{Quartic: 2, Spread: 1},
		Grid:      GridConfig{Min: -3, Max: 3, Steps: 600},
		Physics:   PhysicsConfig{Hbar: 1, Mass: 1},
		Shoot:     ShootConfig{States: []int{0, 1}, MaxIter: 2000, Psi1: DefaultPsi1},
	},
	"tunneling": {
		Potential: "barrier",
		Well:      WellConfig{Left: -0.5, Right: 0.5, Height: 5},
		Grid:      GridConfig{Min: -30, Max: 30, Steps: 1200},
		Physics:   PhysicsConfig{Hbar: 1, Mass: 1},
		Evolve: EvolveConfig{
			Dt: 0.002, Duration: 4, Every: 25,
			PacketX0: -10, Sigma: 1.5, K0: 3,
		},
	},
	"free_packet": {
		Potential: "free",
		Grid:      GridConfig{Min: -40, Max: 40, Steps: 1600},
		Physics:   PhysicsConfig{Hbar: 1, Mass: 1},
		Evolve: EvolveConfig{
			Dt: 0.002, Duration: 5, Every: 25,
			PacketX0: -15, Sigma: 2, K0: 2,
		},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
