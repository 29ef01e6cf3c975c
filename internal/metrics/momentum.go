package metrics

import (
	"github.com/nwatters01/spriteworld-physics/internal/body"
	"github.com/nwatters01/spriteworld-physics/internal/geom"
)

// Momentum reports the magnitude of the current total linear momentum.
// Symmetric force laws conserve it; a drifting value usually means an
// asymmetric binding or an active wall/collision response.
type Momentum struct {
	current geom.Vec2
}

func NewMomentum() *Momentum {
	return &Momentum{}
}

func (m *Momentum) Name() string { return "momentum" }

func (m *Momentum) Observe(bodies []body.Body, t float64) {
	var p geom.Vec2
	for i := range bodies {
		p = p.Add(bodies[i].Momentum())
	}
	m.current = p
}

func (m *Momentum) Value() float64 {
	return m.current.Norm()
}

func (m *Momentum) Reset() {
	m.current = geom.Vec2{}
}

// AngularMomentum reports the total angular momentum about the origin.
type AngularMomentum struct {
	current float64
}

func NewAngularMomentum() *AngularMomentum {
	return &AngularMomentum{}
}

func (m *AngularMomentum) Name() string { return "angular_momentum" }

func (m *AngularMomentum) Observe(bodies []body.Body, t float64) {
	l := 0.0
	for i := range bodies {
		b := &bodies[i]
		if b.Fixed {
			continue
		}
		l += b.Mass * b.Position.Cross(b.Velocity)
	}
	m.current = l
}

func (m *AngularMomentum) Value() float64 {
	return m.current
}

func (m *AngularMomentum) Reset() {
	m.current = 0
}
