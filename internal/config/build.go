package config

import (
	"fmt"

	"github.com/nwatters01/spriteworld-physics/internal/body"
	"github.com/nwatters01/spriteworld-physics/internal/engine"
	"github.com/nwatters01/spriteworld-physics/internal/force"
	"github.com/nwatters01/spriteworld-physics/internal/geom"
	"github.com/nwatters01/spriteworld-physics/internal/graph"
	"github.com/nwatters01/spriteworld-physics/internal/scene"
)

// Build materializes a config into an engine. The returned bindings
// are the pairwise force bindings the engine was built with, for
// wiring energy metrics.
func Build(cfg *Config) (*engine.Engine, []engine.Binding, error) {
	bodies := buildBodies(cfg)
	if len(bodies) == 0 {
		return nil, nil, fmt.Errorf("config: scene %q has no bodies", cfg.Name)
	}

	var bindings []engine.Binding
	var unary []engine.UnaryBinding

	for i, fc := range cfg.Forces {
		if u, ok := buildUnary(fc); ok {
			unary = append(unary, engine.UnaryBinding{Law: u, Bodies: fc.Targets})
			continue
		}

		law, err := buildLaw(fc)
		if err != nil {
			return nil, nil, fmt.Errorf("config: force %d: %w", i, err)
		}
		gen, err := buildGenerator(fc, cfg.Seed, bodies)
		if err != nil {
			return nil, nil, fmt.Errorf("config: force %d: %w", i, err)
		}
		edges, err := gen.Edges(len(bodies))
		if err != nil {
			return nil, nil, fmt.Errorf("config: force %d: %w", i, err)
		}
		bindings = append(bindings, engine.Binding{Law: law, Graph: edges})
	}

	engCfg := engine.Config{
		Dt:       cfg.Dt,
		Substeps: cfg.Substeps,
		Collision: engine.CollisionConfig{
			Mode:        collisionMode(cfg.Collision.Mode),
			Restitution: cfg.Collision.Restitution,
		},
	}
	if cfg.Arena != nil {
		engCfg.Arena = &engine.Arena{
			Min: geom.Vec2{X: cfg.Arena.MinX, Y: cfg.Arena.MinY},
			Max: geom.Vec2{X: cfg.Arena.MaxX, Y: cfg.Arena.MaxY},
		}
	}

	eng, err := engine.New(bodies, bindings, unary, engCfg)
	if err != nil {
		return nil, nil, err
	}
	return eng, bindings, nil
}

func buildBodies(cfg *Config) []body.Body {
	bodies := make([]body.Body, 0, len(cfg.Bodies))
	for _, bc := range cfg.Bodies {
		bodies = append(bodies, body.Body{
			Position: geom.Vec2{X: bc.X, Y: bc.Y},
			Velocity: geom.Vec2{X: bc.VX, Y: bc.VY},
			Mass:     bc.Mass,
			Radius:   bc.Radius,
			Charge:   bc.Charge,
			Fixed:    bc.Fixed,
		})
	}

	if sc := cfg.Scene; sc != nil && sc.NumBodies > 0 {
		p := scene.DefaultParams(sc.NumBodies, cfg.Seed)
		if sc.MassMin != 0 || sc.MassMax != 0 {
			p.MassMin, p.MassMax = sc.MassMin, sc.MassMax
		}
		if sc.Radius != 0 {
			p.Radius = sc.Radius
		}
		if sc.MaxSpeed != 0 {
			p.MaxSpeed = sc.MaxSpeed
		}
		p.ChargeMin, p.ChargeMax = sc.ChargeMin, sc.ChargeMax
		bodies = append(bodies, scene.Generate(p)...)
	}

	for i := range bodies {
		bodies[i].Index = i
	}
	return bodies
}

func buildLaw(fc ForceConfig) (force.Law, error) {
	switch fc.Type {
	case "spring":
		return force.NewSpring(fc.K, fc.RestLength), nil
	case "gravity":
		g := force.NewGravity(fc.G)
		if fc.Exponent != 0 {
			g.Exponent = fc.Exponent
		}
		if fc.MinDistance != 0 {
			g.MinDistance = fc.MinDistance
		}
		return g, nil
	case "magnet":
		m := force.NewMagnet(fc.G)
		if fc.Exponent != 0 {
			m.Exponent = fc.Exponent
		}
		if fc.MinDistance != 0 {
			m.MinDistance = fc.MinDistance
		}
		return m, nil
	case "soft_collision":
		c := force.NewSoftCollision(fc.Stiffness)
		c.Damping = fc.Damping
		return c, nil
	case "none":
		return force.None{}, nil
	default:
		return nil, fmt.Errorf("unknown force type %q", fc.Type)
	}
}

// buildUnary reports whether the force type is a single-body law and
// builds it if so.
func buildUnary(fc ForceConfig) (force.Unary, bool) {
	switch fc.Type {
	case "uniform_gravity":
		return force.NewUniformGravity(geom.Vec2{X: fc.AX, Y: fc.AY}), true
	case "drag":
		return force.NewDrag(fc.Coefficient), true
	}
	return nil, false
}

func buildGenerator(fc ForceConfig, seed int64, bodies []body.Body) (graph.Generator, error) {
	switch fc.Graph {
	case "", "full":
		return graph.FullyConnected{}, nil
	case "star":
		return graph.Star{Center: fc.Center}, nil
	case "nearest":
		positions := make([]geom.Vec2, len(bodies))
		for i := range bodies {
			positions[i] = bodies[i].Position
		}
		return graph.NearestNeighbor{K: fc.Neighbors, Positions: positions}, nil
	case "manual":
		pairs := make(graph.Graph, len(fc.Pairs))
		for i, p := range fc.Pairs {
			pairs[i] = graph.Edge{I: p[0], J: p[1]}
		}
		return graph.Manual{Pairs: pairs}, nil
	case "random":
		graphSeed := fc.GraphSeed
		if graphSeed == 0 {
			graphSeed = seed
		}
		return graph.Random{P: fc.EdgeProb, Seed: graphSeed}, nil
	default:
		return nil, fmt.Errorf("unknown graph generator %q", fc.Graph)
	}
}

func collisionMode(mode string) engine.CollisionMode {
	switch mode {
	case "impulse":
		return engine.CollideImpulse
	case "penalty":
		return engine.CollidePenalty
	default:
		return engine.CollideNone
	}
}
