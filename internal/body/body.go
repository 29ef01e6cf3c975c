// Package body defines the kinematic and material state of a simulated
// rigid body. Bodies are passive data holders; all motion is produced by
// the engine package.
package body

import (
	"fmt"

	"github.com/nwatters01/spriteworld-physics/internal/geom"
)

// Body is a disc-shaped physical object. The Index is stable for the
// lifetime of a simulation and is what interaction graphs refer to.
// Fixed bodies behave as infinite-mass anchors: forces may be applied
// to them but they never move.
type Body struct {
	Index    int
	Position geom.Vec2
	Velocity geom.Vec2
	Mass     float64
	Radius   float64
	Charge   float64
	Fixed    bool
}

// InvMass returns 1/Mass, or 0 for fixed bodies.
func (b *Body) InvMass() float64 {
	if b.Fixed {
		return 0
	}
	return 1.0 / b.Mass
}

// KineticEnergy returns 0.5*m*v². Fixed bodies carry no kinetic energy.
func (b *Body) KineticEnergy() float64 {
	if b.Fixed {
		return 0
	}
	return 0.5 * b.Mass * b.Velocity.NormSquared()
}

// Momentum returns m*v, zero for fixed bodies.
func (b *Body) Momentum() geom.Vec2 {
	if b.Fixed {
		return geom.Vec2{}
	}
	return b.Velocity.Scale(b.Mass)
}

// Validate checks the invariants a body must satisfy before simulation:
// positive mass unless fixed, and a non-negative radius.
func (b *Body) Validate() error {
	if !b.Fixed && b.Mass <= 0 {
		return fmt.Errorf("body %d: mass must be positive, got %g", b.Index, b.Mass)
	}
	if b.Radius < 0 {
		return fmt.Errorf("body %d: radius must be non-negative, got %g", b.Index, b.Radius)
	}
	return nil
}

// Clone returns deep copies of the given bodies. The engine uses this to
// hand out state snapshots that callers may keep without aliasing the
// simulation's own storage.
func Clone(bodies []Body) []Body {
	c := make([]Body, len(bodies))
	copy(c, bodies)
	return c
}
