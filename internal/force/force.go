package force

import (
	"github.com/nwatters01/spriteworld-physics/internal/body"
	"github.com/nwatters01/spriteworld-physics/internal/geom"
)

// Law computes the pairwise force between two bodies. Implementations
// must be pure with respect to the physics: same inputs, same force,
// no state carried across steps.
//
// Force returns the force applied to a. When Symmetric reports true the
// engine applies the Newton's-third-law reaction -F to b; asymmetric
// laws affect only a.
type Law interface {
	Name() string
	Force(a, b *body.Body) geom.Vec2
	Symmetric() bool
}

// Unary computes a force on a single body with no interaction partner,
// such as a uniform gravity field or viscous drag.
type Unary interface {
	Name() string
	ForceOne(b *body.Body) geom.Vec2
}

// Potential is implemented by laws with a well-defined pair potential
// energy, used by energy metrics.
type Potential interface {
	Potential(a, b *body.Body) float64
}

// degeneracyCounter tracks how often a distance-based law hit its
// zero-distance guard. The guard recovers locally (zero force, never
// NaN) but pathological configurations are worth being able to see.
type degeneracyCounter struct {
	n uint64
}

func (c *degeneracyCounter) noteDegenerate() {
	c.n++
}

// Degeneracies returns the number of zero-distance evaluations guarded
// so far.
func (c *degeneracyCounter) Degeneracies() uint64 {
	return c.n
}

// separation returns the offset a→b, its length, and the unit direction.
// ok is false when the bodies coincide and no direction exists.
func separation(a, b *body.Body) (diff geom.Vec2, dist float64, dir geom.Vec2, ok bool) {
	diff = b.Position.Sub(a.Position)
	dist = diff.Norm()
	if dist == 0 {
		return diff, 0, geom.Vec2{}, false
	}
	return diff, dist, diff.Scale(1.0 / dist), true
}
