package engine

import (
	"github.com/nwatters01/spriteworld-physics/internal/body"
	"github.com/nwatters01/spriteworld-physics/internal/geom"
	"github.com/nwatters01/spriteworld-physics/internal/graph"
)

// Arena is an axis-aligned rectangular boundary. Bodies whose disc
// crosses an edge are clamped back inside with their normal velocity
// component reflected by the resolver's restitution.
type Arena struct {
	Min, Max geom.Vec2
}

// UnitArena is the [0,1]² frame the original sprite scenes live in.
func UnitArena() Arena {
	return Arena{Max: geom.Vec2{X: 1, Y: 1}}
}

func (a Arena) valid() bool {
	return a.Min.X < a.Max.X && a.Min.Y < a.Max.Y
}

// contactState classifies a body pair by their center distance relative
// to the sum of radii.
type contactState int

const (
	contactSeparated contactState = iota
	contactTouching
	contactPenetrating
)

// touchTolerance is the overlap band treated as touching rather than
// penetrating, so resting contacts don't jitter.
const touchTolerance = 1e-9

func classify(a, b *body.Body) (contactState, float64, geom.Vec2) {
	diff := b.Position.Sub(a.Position)
	dist := diff.Norm()
	overlap := a.Radius + b.Radius - dist

	switch {
	case overlap < -touchTolerance:
		return contactSeparated, overlap, geom.Vec2{}
	case overlap <= touchTolerance:
		return contactTouching, overlap, diff.Normalized()
	}

	normal := diff.Normalized()
	if normal.IsZero() {
		// Coincident centers leave the normal undefined; pick an axis
		// so the pair still separates deterministically.
		normal = geom.Vec2{X: 1}
	}
	return contactPenetrating, overlap, normal
}

// Resolver detects and corrects body-body penetrations and arena
// boundary violations after integration.
//
// Pairs are resolved independently in the order they are discovered;
// there is no global contact-solver iteration. That approximation is
// adequate at this fidelity but means stacked contacts settle over
// several steps rather than one. Bodies that tunnel entirely past each
// other within a single large dt are not detected retroactively.
type Resolver struct {
	// Restitution in [0, 1]: energy retained in the normal direction.
	Restitution float64

	// Slop is the penetration depth tolerated before positional
	// correction kicks in.
	Slop float64

	// Correction is the fraction of the remaining overlap removed per
	// step.
	Correction float64

	// Pairs are the body pairs checked for contact. The tangential
	// velocity component is never touched (no friction).
	Pairs graph.Graph
}

const (
	defaultSlop       = 1e-4
	defaultCorrection = 0.8
)

// resolvePair applies an impulse response and positional correction to
// a penetrating pair. Fixed bodies absorb no impulse and no correction;
// the moving body bears the full amount.
func (r *Resolver) resolvePair(a, b *body.Body) {
	state, overlap, normal := classify(a, b)
	if state != contactPenetrating {
		return
	}

	invA, invB := a.InvMass(), b.InvMass()
	invSum := invA + invB
	if invSum == 0 {
		return
	}

	// Impulse only when the bodies are still approaching. A pair that
	// has already bounced but not yet cleared the overlap would double
	// count otherwise.
	approach := b.Velocity.Sub(a.Velocity).Dot(normal)
	if approach < 0 {
		j := -(1 + r.Restitution) * approach / invSum
		impulse := normal.Scale(j)
		a.Velocity = a.Velocity.Sub(impulse.Scale(invA))
		b.Velocity = b.Velocity.Add(impulse.Scale(invB))
	}

	if overlap > r.Slop {
		correction := (overlap - r.Slop) / invSum * r.Correction
		shift := normal.Scale(correction)
		a.Position = a.Position.Sub(shift.Scale(invA))
		b.Position = b.Position.Add(shift.Scale(invB))
	}
}

// resolveWalls clamps each body inside the arena and reflects the
// velocity component normal to the violated wall.
func (r *Resolver) resolveWalls(bodies []body.Body, arena Arena) {
	for i := range bodies {
		b := &bodies[i]
		if b.Fixed {
			continue
		}

		if b.Position.X-b.Radius < arena.Min.X {
			b.Position.X = arena.Min.X + b.Radius
			if b.Velocity.X < 0 {
				b.Velocity.X = -r.Restitution * b.Velocity.X
			}
		} else if b.Position.X+b.Radius > arena.Max.X {
			b.Position.X = arena.Max.X - b.Radius
			if b.Velocity.X > 0 {
				b.Velocity.X = -r.Restitution * b.Velocity.X
			}
		}

		if b.Position.Y-b.Radius < arena.Min.Y {
			b.Position.Y = arena.Min.Y + b.Radius
			if b.Velocity.Y < 0 {
				b.Velocity.Y = -r.Restitution * b.Velocity.Y
			}
		} else if b.Position.Y+b.Radius > arena.Max.Y {
			b.Position.Y = arena.Max.Y - b.Radius
			if b.Velocity.Y > 0 {
				b.Velocity.Y = -r.Restitution * b.Velocity.Y
			}
		}
	}
}
