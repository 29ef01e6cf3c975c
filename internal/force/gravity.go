package force

import (
	"math"

	"github.com/nwatters01/spriteworld-physics/internal/body"
	"github.com/nwatters01/spriteworld-physics/internal/geom"
)

const (
	// DefaultExponent is the inverse-square falloff.
	DefaultExponent = 2.0

	// DefaultMinDistance caps the force for near-coincident bodies.
	// Without it two close bodies pick up unbounded acceleration in a
	// single step.
	DefaultMinDistance = 0.01
)

// Gravity applies Newtonian attraction G*m1*m2/d^p between two bodies.
// A negative G turns it into a mass-based repulsion. Distances below
// MinDistance are evaluated as if at MinDistance.
type Gravity struct {
	G           float64
	Exponent    float64
	MinDistance float64
	degeneracyCounter
}

func NewGravity(g float64) *Gravity {
	return &Gravity{G: g, Exponent: DefaultExponent, MinDistance: DefaultMinDistance}
}

func (g *Gravity) Name() string    { return "gravity" }
func (g *Gravity) Symmetric() bool { return true }

func (g *Gravity) Force(a, b *body.Body) geom.Vec2 {
	_, dist, dir, ok := separation(a, b)
	if !ok {
		g.noteDegenerate()
		return geom.Vec2{}
	}
	dist = math.Max(dist, g.MinDistance)
	mag := g.G * a.Mass * b.Mass / math.Pow(dist, g.Exponent)
	return dir.Scale(mag)
}

// Potential returns the gravitational pair potential consistent with
// Force, evaluated at the clamped distance.
func (g *Gravity) Potential(a, b *body.Body) float64 {
	d := math.Max(a.Position.Distance(b.Position), g.MinDistance)
	return pairPotential(g.G*a.Mass*b.Mass, g.Exponent, d)
}

// Magnet applies Coulomb-style force G*q1*q2/d^p between two charged
// bodies. Like charges repel, opposite charges attract. Uncharged
// bodies feel nothing.
type Magnet struct {
	G           float64
	Exponent    float64
	MinDistance float64
	degeneracyCounter
}

func NewMagnet(g float64) *Magnet {
	return &Magnet{G: g, Exponent: DefaultExponent, MinDistance: DefaultMinDistance}
}

func (m *Magnet) Name() string    { return "magnet" }
func (m *Magnet) Symmetric() bool { return true }

func (m *Magnet) Force(a, b *body.Body) geom.Vec2 {
	_, dist, dir, ok := separation(a, b)
	if !ok {
		m.noteDegenerate()
		return geom.Vec2{}
	}
	dist = math.Max(dist, m.MinDistance)
	mag := m.G * a.Charge * b.Charge / math.Pow(dist, m.Exponent)
	// Positive charge product pushes a away from b.
	return dir.Scale(-mag)
}

func (m *Magnet) Potential(a, b *body.Body) float64 {
	d := math.Max(a.Position.Distance(b.Position), m.MinDistance)
	return -pairPotential(m.G*a.Charge*b.Charge, m.Exponent, d)
}

// pairPotential returns V(d) such that the attractive radial force
// -c/d^p equals -dV/dd.
func pairPotential(c, p, d float64) float64 {
	if p == 1 {
		return c * math.Log(d)
	}
	return -c / ((p - 1) * math.Pow(d, p-1))
}
