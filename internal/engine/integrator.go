package engine

import (
	"github.com/nwatters01/spriteworld-physics/internal/body"
	"github.com/nwatters01/spriteworld-physics/internal/geom"
)

// Integrator advances body state from the accumulated per-body forces
// over one fixed timestep. Fixed bodies must keep their position and
// hold zero velocity regardless of accumulated force.
type Integrator interface {
	Integrate(bodies []body.Body, forces []geom.Vec2, dt float64)
}

// SemiImplicitEuler is the symplectic Euler scheme: velocity is updated
// from force first, then position from the updated velocity. Compared
// with explicit Euler it keeps the energy of oscillatory systems
// (springs, orbits) bounded over long runs at the same cost.
type SemiImplicitEuler struct{}

func NewSemiImplicitEuler() *SemiImplicitEuler {
	return &SemiImplicitEuler{}
}

func (SemiImplicitEuler) Integrate(bodies []body.Body, forces []geom.Vec2, dt float64) {
	for i := range bodies {
		b := &bodies[i]
		if b.Fixed {
			b.Velocity = geom.Vec2{}
			continue
		}
		b.Velocity = b.Velocity.Add(forces[i].Scale(dt / b.Mass))
		b.Position = b.Position.Add(b.Velocity.Scale(dt))
	}
}
