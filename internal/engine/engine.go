package engine

import (
	"fmt"

	"github.com/nwatters01/spriteworld-physics/internal/body"
	"github.com/nwatters01/spriteworld-physics/internal/force"
	"github.com/nwatters01/spriteworld-physics/internal/geom"
	"github.com/nwatters01/spriteworld-physics/internal/graph"
)

// Binding pairs a force law with the interaction graph it applies over.
// Both are read-only configuration; the engine never mutates them.
type Binding struct {
	Law   force.Law
	Graph graph.Graph
}

// UnaryBinding applies a single-body law to a set of body indices.
// A nil Bodies slice means every body.
type UnaryBinding struct {
	Law    force.Unary
	Bodies []int
}

// CollisionMode selects which mechanism is authoritative for collision
// response.
type CollisionMode int

const (
	// CollideNone disables body-body collision handling entirely.
	CollideNone CollisionMode = iota

	// CollideImpulse resolves penetrations with the discrete impulse
	// resolver after integration.
	CollideImpulse

	// CollidePenalty delegates body-body response to a SoftCollision
	// force law wired through a binding; the resolver only handles the
	// arena walls.
	CollidePenalty
)

// CollisionConfig configures collision response. Pairs defaults to a
// fully connected graph when Mode is CollideImpulse and no graph is
// given.
type CollisionConfig struct {
	Mode        CollisionMode
	Restitution float64
	Pairs       graph.Graph
}

// Config holds the fixed parameters of a simulation run.
type Config struct {
	// Dt is the fixed timestep per Step call.
	Dt float64

	// Substeps splits each Step into that many physics substeps of
	// Dt/Substeps, reducing compounding error for stiff scenes without
	// changing per-step semantics. Zero means 1.
	Substeps int

	// Arena bounds, nil for an unbounded plane.
	Arena *Arena

	Collision CollisionConfig
}

// Engine advances a set of rigid bodies under the registered force
// bindings. It owns its bodies exclusively; a single engine must only
// be used from one goroutine, but independent engines are safe to run
// concurrently.
type Engine struct {
	bodies   []body.Body
	initial  []body.Body
	bindings []Binding
	unary    []UnaryBinding

	integrator Integrator
	resolver   Resolver
	mode       CollisionMode
	arena      *Arena

	dt       float64
	substeps int
	acc      []geom.Vec2
	steps    int
}

// New validates the full configuration and builds an engine. It fails
// if dt is non-positive, any body violates its invariants, any graph
// references an invalid index, or the collision configuration would
// double-count responses.
func New(bodies []body.Body, bindings []Binding, unary []UnaryBinding, cfg Config) (*Engine, error) {
	if cfg.Dt <= 0 {
		return nil, configErr("config", ErrBadTimestep)
	}
	substeps := cfg.Substeps
	if substeps == 0 {
		substeps = 1
	}
	if substeps < 0 {
		return nil, configErr("config", ErrBadSubsteps)
	}

	n := len(bodies)
	owned := body.Clone(bodies)
	for i := range owned {
		owned[i].Index = i
		if err := owned[i].Validate(); err != nil {
			return nil, configErr("bodies", fmt.Errorf("%w: %v", ErrBadBody, err))
		}
	}

	for k, b := range bindings {
		if b.Law == nil {
			return nil, configErr("bindings", fmt.Errorf("%w: binding %d has no law", ErrBadGraph, k))
		}
		if err := b.Graph.Validate(n); err != nil {
			return nil, configErr("bindings", fmt.Errorf("%w: binding %d (%s): %v", ErrBadGraph, k, b.Law.Name(), err))
		}
		if _, soft := b.Law.(*force.SoftCollision); soft && cfg.Collision.Mode == CollideImpulse {
			return nil, configErr("bindings", ErrCollisionConflict)
		}
	}
	for k, u := range unary {
		if u.Law == nil {
			return nil, configErr("bindings", fmt.Errorf("%w: unary binding %d has no law", ErrBadGraph, k))
		}
		for _, idx := range u.Bodies {
			if idx < 0 || idx >= n {
				return nil, configErr("bindings", fmt.Errorf("%w: unary binding %d targets body %d of %d", ErrBadGraph, k, idx, n))
			}
		}
	}

	if cfg.Arena != nil && !cfg.Arena.valid() {
		return nil, configErr("arena", ErrBadArena)
	}

	resolver := Resolver{
		Restitution: cfg.Collision.Restitution,
		Slop:        defaultSlop,
		Correction:  defaultCorrection,
		Pairs:       cfg.Collision.Pairs,
	}
	if cfg.Collision.Mode == CollideImpulse && resolver.Pairs == nil {
		pairs, err := (graph.FullyConnected{}).Edges(n)
		if err != nil {
			return nil, configErr("collision", err)
		}
		resolver.Pairs = pairs
	}
	if resolver.Pairs != nil {
		if err := resolver.Pairs.Validate(n); err != nil {
			return nil, configErr("collision", fmt.Errorf("%w: %v", ErrBadGraph, err))
		}
	}

	return &Engine{
		bodies:     owned,
		initial:    body.Clone(owned),
		bindings:   bindings,
		unary:      unary,
		integrator: NewSemiImplicitEuler(),
		resolver:   resolver,
		mode:       cfg.Collision.Mode,
		arena:      cfg.Arena,
		dt:         cfg.Dt,
		substeps:   substeps,
		acc:        make([]geom.Vec2, n),
	}, nil
}

// Dt returns the fixed timestep per Step.
func (e *Engine) Dt() float64 { return e.dt }

// Steps returns how many steps have been taken since construction or
// the last Reset.
func (e *Engine) Steps() int { return e.steps }

// Bodies returns a snapshot of the current body states. The returned
// slice is the caller's to keep; later steps never mutate it.
func (e *Engine) Bodies() []body.Body {
	return body.Clone(e.bodies)
}

// Step advances the simulation by one fixed timestep and returns the
// new state snapshot. The update order is: accumulate forces over
// every binding's edges, integrate, resolve collisions and walls.
// Iteration order is fixed (binding order, then edge order, then body
// index), so runs are bit-reproducible for identical configurations.
func (e *Engine) Step() []body.Body {
	sub := e.dt / float64(e.substeps)
	for s := 0; s < e.substeps; s++ {
		e.substep(sub)
	}
	e.steps++
	return e.Bodies()
}

func (e *Engine) substep(dt float64) {
	for i := range e.acc {
		e.acc[i] = geom.Vec2{}
	}

	for _, bind := range e.bindings {
		for _, edge := range bind.Graph {
			f := bind.Law.Force(&e.bodies[edge.I], &e.bodies[edge.J])
			e.acc[edge.I] = e.acc[edge.I].Add(f)
			if bind.Law.Symmetric() {
				e.acc[edge.J] = e.acc[edge.J].Sub(f)
			}
		}
	}

	for _, u := range e.unary {
		if u.Bodies == nil {
			for i := range e.bodies {
				e.acc[i] = e.acc[i].Add(u.Law.ForceOne(&e.bodies[i]))
			}
			continue
		}
		for _, i := range u.Bodies {
			e.acc[i] = e.acc[i].Add(u.Law.ForceOne(&e.bodies[i]))
		}
	}

	e.integrator.Integrate(e.bodies, e.acc, dt)

	if e.mode == CollideImpulse {
		for _, edge := range e.resolver.Pairs {
			e.resolver.resolvePair(&e.bodies[edge.I], &e.bodies[edge.J])
		}
	}
	if e.arena != nil {
		e.resolver.resolveWalls(e.bodies, *e.arena)
	}
}

// Reset reinitializes body state without rebuilding the force and
// graph configuration. Passing nil restores the initial bodies the
// engine was constructed with.
func (e *Engine) Reset(bodies []body.Body) error {
	if bodies == nil {
		bodies = e.initial
	}
	if len(bodies) != len(e.bodies) {
		return configErr("reset", ErrBodyCountChanged)
	}
	owned := body.Clone(bodies)
	for i := range owned {
		owned[i].Index = i
		if err := owned[i].Validate(); err != nil {
			return configErr("reset", fmt.Errorf("%w: %v", ErrBadBody, err))
		}
	}
	e.bodies = owned
	e.steps = 0
	return nil
}
