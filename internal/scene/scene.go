// Package scene generates randomized initial body configurations for
// preset runs. The seed is an explicit parameter: the same parameters
// always produce the same bodies.
package scene

import (
	"math/rand"

	"github.com/nwatters01/spriteworld-physics/internal/body"
	"github.com/nwatters01/spriteworld-physics/internal/geom"
)

// Params describes the sampling ranges for a generated scene. Scalar
// Min/Max pairs with Min == Max pin the value.
type Params struct {
	N    int
	Seed int64

	PosMin, PosMax geom.Vec2
	MaxSpeed       float64

	MassMin, MassMax     float64
	Radius               float64
	ChargeMin, ChargeMax float64
}

// DefaultParams mirrors the ranges the classic sprite scenes use:
// positions within the inner [0.1, 0.9]² of the unit frame, speeds up
// to 0.03, unit mass.
func DefaultParams(n int, seed int64) Params {
	return Params{
		N:        n,
		Seed:     seed,
		PosMin:   geom.Vec2{X: 0.1, Y: 0.1},
		PosMax:   geom.Vec2{X: 0.9, Y: 0.9},
		MaxSpeed: 0.03,
		MassMin:  1,
		MassMax:  1,
		Radius:   0.05,
	}
}

// Generate samples N bodies from the parameter ranges.
func Generate(p Params) []body.Body {
	rng := rand.New(rand.NewSource(p.Seed))
	bodies := make([]body.Body, p.N)
	for i := range bodies {
		bodies[i] = body.Body{
			Index: i,
			Position: geom.Vec2{
				X: uniform(rng, p.PosMin.X, p.PosMax.X),
				Y: uniform(rng, p.PosMin.Y, p.PosMax.Y),
			},
			Velocity: geom.Vec2{
				X: uniform(rng, -p.MaxSpeed, p.MaxSpeed),
				Y: uniform(rng, -p.MaxSpeed, p.MaxSpeed),
			},
			Mass:   uniform(rng, p.MassMin, p.MassMax),
			Radius: p.Radius,
			Charge: uniform(rng, p.ChargeMin, p.ChargeMax),
		}
	}
	return bodies
}

func uniform(rng *rand.Rand, min, max float64) float64 {
	if min == max {
		return min
	}
	return min + rng.Float64()*(max-min)
}
