package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"schrod/internal/potential"
	"schrod/internal/quantum"
)

const (
	DefaultSteps    = 280
	DefaultMaxIter  = 1000
	DefaultDt       = 0.001
	DefaultDuration = 1.0
	DefaultEvery    = 10
	DefaultPsi1     = 1e-4
)

type Config struct {
	Potential string        `yaml:"potential"`
	Well      WellConfig    `yaml:"well"`
	Grid      GridConfig    `yaml:"grid"`
	Physics   PhysicsConfig `yaml:"physics"`
	Shoot     ShootConfig   `yaml:"shoot"`
	Evolve    EvolveConfig  `yaml:"evolve"`
}

type WellConfig struct {
	Left      float64 `yaml:"left"`
	Right     float64 `yaml:"right"`
	Depth     float64 `yaml:"depth"`
	Height    float64 `yaml:"height"`
	Stiffness float64 `yaml:"stiffness"`
	Center    float64 `yaml:"center"`
	Quartic   float64 `yaml:"quartic"`
	Spread    float64 `yaml:"spread"`
	Slope     float64 `yaml:"slope"`
}

type GridConfig struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Steps int     `yaml:"steps"`
}

type PhysicsConfig struct {
	Hbar float64 `yaml:"hbar"`
	Mass float64 `yaml:"mass"`
}

type ShootConfig struct {
	States  []int   `yaml:"states"`
	MaxIter int     `yaml:"max_iter"`
	Psi0    float64 `yaml:"psi0"`
	Psi1    float64 `yaml:"psi1"`
	PsiN    float64 `yaml:"psi_n"`
	// Bracket overrides the [min V, max V] default when it holds exactly
	// two values [lo, hi]; needed for potentials unbounded below.
	Bracket []float64 `yaml:"bracket"`
}

type EvolveConfig struct {
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`
	Every    int     `yaml:"every"`
	PacketX0 float64 `yaml:"packet_x0"`
	Sigma    float64 `yaml:"packet_sigma"`
	K0       float64 `yaml:"packet_k"`
}

func DefaultConfig() *Config {
	return &Config{
		Potential: "square_well",
		Well: WellConfig{
			Left:      -1,
			Right:     1,
			Depth:     -1,
			Height:    1,
			Stiffness: 1,
			Quartic:   1,
			Spread:    1,
			Slope:     1,
		},
		Grid:    GridConfig{Min: -1.4, Max: 1.4, Steps: DefaultSteps},
		Physics: PhysicsConfig{Hbar: 1, Mass: 1},
		Shoot: ShootConfig{
			States:  []int{0},
			MaxIter: DefaultMaxIter,
			Psi1:    DefaultPsi1,
		},
		Evolve: EvolveConfig{
			Dt:       DefaultDt,
			Duration: DefaultDuration,
			Every:    DefaultEvery,
			PacketX0: 0,
			Sigma:    0.5,
			K0:       0,
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

// MakeGrid builds the configured spatial grid.
func (c *Config) MakeGrid() quantum.Grid {
	return quantum.NewGrid(c.Grid.Min, c.Grid.Max, c.Grid.Steps)
}

// Params returns the configured physical constants.
func (c *Config) Params() quantum.Params {
	return quantum.Params{Hbar: c.Physics.Hbar, Mass: c.Physics.Mass}
}

// PotentialFunc resolves the configured potential by name.
func (c *Config) PotentialFunc() (potential.Func, error) {
	w := c.Well
	switch c.Potential {
	case "free":
		return potential.Free(), nil
	case "square_well":
		return potential.SquareWell(w.Left, w.Right, w.Depth), nil
	case "barrier":
		return potential.Barrier(w.Left, w.Right, w.Height), nil
	case "harmonic":
		return potential.Harmonic(w.Stiffness, w.Center), nil
	case "double_well":
		return potential.DoubleWell(w.Quartic, w.Spread), nil
	case "ramp":
		return potential.Ramp(w.Slope), nil
	default:
		return nil, fmt.Errorf("unknown potential %q", c.Potential)
	}
}

// ShootBracket returns the configured bracket override, or ok=false when
// the default [min V, max V] bracket applies.
func (c *Config) ShootBracket() (quantum.Bracket, bool) {
	if len(c.Shoot.Bracket) == 2 {
		return quantum.Bracket{Lo: c.Shoot.Bracket[0], Hi: c.Shoot.Bracket[1]}, true
	}
	return quantum.Bracket{}, false
}
