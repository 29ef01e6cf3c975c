package config

// Presets are the classic sprite scenes. Each uses the unit frame with
// ten physics substeps per step, matching the fidelity the scenes were
// tuned for.
var Presets = map[string]*Config{
	"springs": {
		Name: "springs", Dt: 1.0, Substeps: 10, Steps: 30, Seed: 1,
		Scene:  &SceneConfig{NumBodies: 4, MassMin: 0.5, MassMax: 2.0, Radius: 0.05, MaxSpeed: 0.03},
		Forces: []ForceConfig{{Type: "spring", Graph: "full", K: 0.03, RestLength: 0.25}},
	},
	"magnets": {
		Name: "magnets", Dt: 1.0, Substeps: 10, Steps: 30, Seed: 1,
		Scene: &SceneConfig{NumBodies: 4, MassMin: 1, MassMax: 1, Radius: 0.1,
			MaxSpeed: 0.03, ChargeMin: 1, ChargeMax: 1},
		Arena:     &ArenaConfig{MaxX: 1, MaxY: 1},
		Collision: CollisionConfig{Restitution: 1},
		Forces:    []ForceConfig{{Type: "magnet", Graph: "full", G: 0.0003}},
	},
	"star-system": {
		Name: "star-system", Dt: 1.0, Substeps: 10, Steps: 30, Seed: 1,
		Bodies: []BodyConfig{
			{X: 0.5, Y: 0.5, Mass: 2, Radius: 0.15, Fixed: true},
		},
		Scene:     &SceneConfig{NumBodies: 4, MassMin: 1, MassMax: 1, Radius: 0.08, MaxSpeed: 0.03},
		Arena:     &ArenaConfig{MaxX: 1, MaxY: 1},
		Collision: CollisionConfig{Restitution: 1},
		Forces: []ForceConfig{
			{Type: "gravity", Graph: "star", Center: 0, G: 0.0001, MinDistance: 0.05},
		},
	},
	"collisions": {
		Name: "collisions", Dt: 1.0, Substeps: 10, Steps: 30, Seed: 1,
		Scene:     &SceneConfig{NumBodies: 6, MassMin: 0.5, MassMax: 2.0, Radius: 0.08, MaxSpeed: 0.03},
		Arena:     &ArenaConfig{MaxX: 1, MaxY: 1},
		Collision: CollisionConfig{Mode: "impulse", Restitution: 1},
	},
	"colliding-springs": {
		Name: "colliding-springs", Dt: 1.0, Substeps: 10, Steps: 30, Seed: 1,
		Scene:     &SceneConfig{NumBodies: 4, MassMin: 1, MassMax: 1, Radius: 0.08, MaxSpeed: 0.02},
		Arena:     &ArenaConfig{MaxX: 1, MaxY: 1},
		Collision: CollisionConfig{Mode: "impulse", Restitution: 1},
		Forces:    []ForceConfig{{Type: "spring", Graph: "full", K: 0.01, RestLength: 0.25}},
	},
	"drift": {
		Name: "drift", Dt: 1.0, Substeps: 10, Steps: 30, Seed: 1,
		Scene: &SceneConfig{NumBodies: 5, MassMin: 1, MassMax: 1, Radius: 0.05, MaxSpeed: 0.03},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
