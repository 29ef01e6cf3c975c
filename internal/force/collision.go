package force

import (
	"github.com/nwatters01/spriteworld-physics/internal/body"
	"github.com/nwatters01/spriteworld-physics/internal/geom"
)

// SoftCollision is a penalty-style collision force: it pushes two
// overlapping discs apart with a force proportional to the penetration
// depth, plus an optional damping term acting on the normal component
// of the relative velocity.
//
// This law is only authoritative when the engine runs in penalty
// collision mode; combining it with the discrete impulse resolver over
// the same pairs would double-count the response and is rejected at
// engine construction.
type SoftCollision struct {
	Stiffness float64
	Damping   float64
	degeneracyCounter
}

func NewSoftCollision(stiffness float64) *SoftCollision {
	return &SoftCollision{Stiffness: stiffness}
}

func (c *SoftCollision) Name() string    { return "soft_collision" }
func (c *SoftCollision) Symmetric() bool { return true }

func (c *SoftCollision) Force(a, b *body.Body) geom.Vec2 {
	_, dist, dir, ok := separation(a, b)
	if !ok {
		c.noteDegenerate()
		return geom.Vec2{}
	}
	overlap := a.Radius + b.Radius - dist
	if overlap <= 0 {
		return geom.Vec2{}
	}
	// dir points a→b; the penalty pushes a the other way.
	mag := c.Stiffness * overlap
	if c.Damping > 0 {
		approach := b.Velocity.Sub(a.Velocity).Dot(dir)
		if approach < 0 {
			mag -= c.Damping * approach
		}
	}
	return dir.Scale(-mag)
}
