// Package config loads, saves, and materializes scene descriptions:
// bodies, force bindings, interaction graphs, arena, and timestep.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 1.0
	DefaultSubsteps = 10
	DefaultSteps    = 30
	DefaultRadius   = 0.05
)

// Config is the on-disk description of a simulation scene.
type Config struct {
	Name     string  `yaml:"name"`
	Dt       float64 `yaml:"dt"`
	Substeps int     `yaml:"substeps"`
	Steps    int     `yaml:"steps"`
	Seed     int64   `yaml:"seed"`

	// Bodies are explicit initial states. When Scene is also set, the
	// generated bodies are appended after these, so explicit anchors
	// keep the low indices.
	Bodies []BodyConfig `yaml:"bodies"`
	Scene  *SceneConfig `yaml:"scene"`

	Arena     *ArenaConfig    `yaml:"arena"`
	Collision CollisionConfig `yaml:"collision"`
	Forces    []ForceConfig   `yaml:"forces"`
}

type BodyConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
	Mass   float64 `yaml:"mass"`
	Radius float64 `yaml:"radius"`
	Charge float64 `yaml:"charge"`
	Fixed  bool    `yaml:"fixed"`
}

// SceneConfig samples randomized bodies; see the scene package.
type SceneConfig struct {
	NumBodies int     `yaml:"num_bodies"`
	MassMin   float64 `yaml:"mass_min"`
	MassMax   float64 `yaml:"mass_max"`
	Radius    float64 `yaml:"radius"`
	MaxSpeed  float64 `yaml:"max_speed"`
	ChargeMin float64 `yaml:"charge_min"`
	ChargeMax float64 `yaml:"charge_max"`
}

type ArenaConfig struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

type CollisionConfig struct {
	// Mode is "none", "impulse", or "penalty". Empty means none.
	Mode        string  `yaml:"mode"`
	Restitution float64 `yaml:"restitution"`
}

// ForceConfig describes one force law and the graph it applies over.
type ForceConfig struct {
	// Type: spring, gravity, magnet, soft_collision, uniform_gravity,
	// drag, none.
	Type string `yaml:"type"`

	// Graph: full, star, nearest, manual, random. Ignored for unary
	// force types.
	Graph string `yaml:"graph"`

	K           float64 `yaml:"k"`
	RestLength  float64 `yaml:"rest_length"`
	G           float64 `yaml:"g"`
	Exponent    float64 `yaml:"exponent"`
	MinDistance float64 `yaml:"min_distance"`
	Stiffness   float64 `yaml:"stiffness"`
	Damping     float64 `yaml:"damping"`
	Coefficient float64 `yaml:"coefficient"`
	AX          float64 `yaml:"ax"`
	AY          float64 `yaml:"ay"`

	Center    int      `yaml:"center"`
	Neighbors int      `yaml:"neighbors"`
	EdgeProb  float64  `yaml:"edge_prob"`
	GraphSeed int64    `yaml:"graph_seed"`
	Pairs     [][2]int `yaml:"pairs"`
	Targets   []int    `yaml:"targets"`
}

// DefaultConfig returns a scene with the classic frame defaults and no
// bodies or forces.
func DefaultConfig() *Config {
	return &Config{
		Dt:       DefaultDt,
		Substeps: DefaultSubsteps,
		Steps:    DefaultSteps,
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
