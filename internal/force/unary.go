package force

import (
	"github.com/nwatters01/spriteworld-physics/internal/body"
	"github.com/nwatters01/spriteworld-physics/internal/geom"
)

// UniformGravity applies a constant acceleration field to a body,
// typically a downward pull. The force scales with mass so all bodies
// fall at the same rate.
type UniformGravity struct {
	Accel geom.Vec2
}

func NewUniformGravity(accel geom.Vec2) *UniformGravity {
	return &UniformGravity{Accel: accel}
}

func (u *UniformGravity) Name() string { return "uniform_gravity" }

func (u *UniformGravity) ForceOne(b *body.Body) geom.Vec2 {
	return u.Accel.Scale(b.Mass)
}

// Drag applies viscous damping F = -c*v.
type Drag struct {
	Coefficient float64
}

func NewDrag(c float64) *Drag {
	return &Drag{Coefficient: c}
}

func (d *Drag) Name() string { return "drag" }

func (d *Drag) ForceOne(b *body.Body) geom.Vec2 {
	return b.Velocity.Scale(-d.Coefficient)
}

// None applies no force. It exists so interaction topologies can be
// declared without any dynamics, as in pure drift scenes.
type None struct{}

func (None) Name() string                      { return "none" }
func (None) Symmetric() bool                   { return true }
func (None) Force(a, b *body.Body) geom.Vec2   { return geom.Vec2{} }
func (None) Potential(a, b *body.Body) float64 { return 0 }
