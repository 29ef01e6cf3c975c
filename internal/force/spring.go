package force

import (
	"github.com/nwatters01/spriteworld-physics/internal/body"
	"github.com/nwatters01/spriteworld-physics/internal/geom"
)

// Spring applies Hooke's law along the line connecting two bodies:
// magnitude K*(distance - RestLength), attractive when stretched beyond
// the rest length and repulsive when compressed below it.
type Spring struct {
	K          float64
	RestLength float64
	degeneracyCounter
}

func NewSpring(k, restLength float64) *Spring {
	return &Spring{K: k, RestLength: restLength}
}

func (s *Spring) Name() string    { return "spring" }
func (s *Spring) Symmetric() bool { return true }

func (s *Spring) Force(a, b *body.Body) geom.Vec2 {
	_, dist, dir, ok := separation(a, b)
	if !ok {
		s.noteDegenerate()
		return geom.Vec2{}
	}
	// Positive magnitude pulls a toward b (stretched spring).
	return dir.Scale(s.K * (dist - s.RestLength))
}

// Potential returns the elastic energy 0.5*K*(d - rest)².
func (s *Spring) Potential(a, b *body.Body) float64 {
	d := a.Position.Distance(b.Position)
	stretch := d - s.RestLength
	return 0.5 * s.K * stretch * stretch
}
