package force

import (
	"math"
	"math/rand"
	"testing"

	"github.com/nwatters01/spriteworld-physics/internal/body"
	"github.com/nwatters01/spriteworld-physics/internal/geom"
)

func pair(ax, ay, bx, by float64) (*body.Body, *body.Body) {
	a := &body.Body{Index: 0, Position: geom.Vec2{X: ax, Y: ay}, Mass: 1, Charge: 1}
	b := &body.Body{Index: 1, Position: geom.Vec2{X: bx, Y: by}, Mass: 1, Charge: 1}
	return a, b
}

func TestZeroDistanceGuard(t *testing.T) {
	laws := []Law{
		NewSpring(1.0, 0.5),
		NewGravity(1.0),
		NewMagnet(1.0),
		NewSoftCollision(1.0),
	}

	for _, law := range laws {
		a, b := pair(0.3, 0.7, 0.3, 0.7)
		f := law.Force(a, b)
		if !f.IsZero() {
			t.Errorf("%s: coincident bodies should yield zero force, got %v", law.Name(), f)
		}
		if !f.IsValid() {
			t.Errorf("%s: coincident bodies produced NaN/Inf", law.Name())
		}
	}
}

func TestNearZeroDistanceNeverNaN(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	laws := []Law{
		NewSpring(0.03, 0.25),
		NewGravity(0.0003),
		NewMagnet(0.0003),
		NewSoftCollision(5.0),
	}

	for i := 0; i < 1000; i++ {
		eps := rng.Float64() * 1e-12
		theta := rng.Float64() * 2 * math.Pi
		a, b := pair(0.5, 0.5, 0.5+eps*math.Cos(theta), 0.5+eps*math.Sin(theta))
		a.Radius, b.Radius = 0.05, 0.05
		for _, law := range laws {
			f := law.Force(a, b)
			if !f.IsValid() {
				t.Fatalf("%s: invalid force %v at distance %g", law.Name(), f, eps)
			}
		}
	}
}

func TestDegeneracyCounter(t *testing.T) {
	s := NewSpring(1.0, 0.5)
	a, b := pair(0.1, 0.1, 0.1, 0.1)

	for i := 0; i < 3; i++ {
		s.Force(a, b)
	}
	if got := s.Degeneracies(); got != 3 {
		t.Errorf("Degeneracies = %d, want 3", got)
	}

	// Non-degenerate evaluations must not count.
	b.Position.X = 0.5
	s.Force(a, b)
	if got := s.Degeneracies(); got != 3 {
		t.Errorf("Degeneracies = %d after valid evaluation, want 3", got)
	}
}

func TestSpringEquilibrium(t *testing.T) {
	s := NewSpring(10.0, 0.25)
	a, b := pair(0, 0, 0.25, 0)

	f := s.Force(a, b)
	if !f.IsZero() {
		t.Errorf("spring at rest length should be exactly zero, got %v", f)
	}
}

func TestSpringDirection(t *testing.T) {
	s := NewSpring(2.0, 1.0)

	// Stretched: force on a points toward b.
	a, b := pair(0, 0, 2, 0)
	f := s.Force(a, b)
	if f.X <= 0 || f.Y != 0 {
		t.Errorf("stretched spring should attract, got %v", f)
	}
	if math.Abs(f.X-2.0) > 1e-12 {
		t.Errorf("magnitude = %v, want k*(d-rest) = 2", f.X)
	}

	// Compressed: force on a points away from b.
	a, b = pair(0, 0, 0.5, 0)
	f = s.Force(a, b)
	if f.X >= 0 {
		t.Errorf("compressed spring should repel, got %v", f)
	}
}

func TestGravityThirdLaw(t *testing.T) {
	g := NewGravity(0.0003)
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 100; i++ {
		a, b := pair(rng.Float64(), rng.Float64(), rng.Float64(), rng.Float64())
		a.Mass = 0.5 + rng.Float64()
		b.Mass = 0.5 + rng.Float64()
		if a.Position == b.Position {
			continue
		}

		fab := g.Force(a, b)
		fba := g.Force(b, a)
		if math.Abs(fab.X+fba.X) > 1e-15 || math.Abs(fab.Y+fba.Y) > 1e-15 {
			t.Fatalf("third law violated: F(a,b)=%v F(b,a)=%v", fab, fba)
		}
	}
}

func TestGravityAttracts(t *testing.T) {
	g := NewGravity(1.0)
	a, b := pair(0, 0, 1, 0)
	f := g.Force(a, b)
	if f.X <= 0 {
		t.Errorf("positive G should attract a toward b, got %v", f)
	}
}

func TestGravityMinDistanceClamp(t *testing.T) {
	g := NewGravity(1.0)
	g.MinDistance = 0.05

	far, farB := pair(0, 0, 0.05, 0)
	near, nearB := pair(0, 0, 0.001, 0)

	fAtMin := g.Force(far, farB).Norm()
	fInside := g.Force(near, nearB).Norm()
	if math.Abs(fAtMin-fInside) > 1e-12 {
		t.Errorf("force inside min distance should equal force at min distance: %v vs %v", fInside, fAtMin)
	}
}

func TestGravityExponent(t *testing.T) {
	g := NewGravity(1.0)
	g.Exponent = 3
	g.MinDistance = 0

	a, b := pair(0, 0, 2, 0)
	f := g.Force(a, b)
	if math.Abs(f.X-1.0/8.0) > 1e-12 {
		t.Errorf("p=3 at d=2: got %v, want 1/8", f.X)
	}
}

func TestMagnetSigns(t *testing.T) {
	m := NewMagnet(1.0)

	a, b := pair(0, 0, 1, 0)
	a.Charge, b.Charge = 1, 1
	if f := m.Force(a, b); f.X >= 0 {
		t.Errorf("like charges should repel, got %v", f)
	}

	a.Charge, b.Charge = 1, -1
	if f := m.Force(a, b); f.X <= 0 {
		t.Errorf("opposite charges should attract, got %v", f)
	}

	a.Charge, b.Charge = 0, 1
	if f := m.Force(a, b); !f.IsZero() {
		t.Errorf("uncharged body should feel nothing, got %v", f)
	}
}

func TestSoftCollisionActivation(t *testing.T) {
	c := NewSoftCollision(10.0)

	a, b := pair(0, 0, 0.5, 0)
	a.Radius, b.Radius = 0.1, 0.1
	if f := c.Force(a, b); !f.IsZero() {
		t.Errorf("separated bodies should feel no penalty force, got %v", f)
	}

	// Overlap of 0.05: repulsive force on a away from b.
	b.Position.X = 0.15
	f := c.Force(a, b)
	if f.X >= 0 {
		t.Errorf("overlapping bodies should repel, got %v", f)
	}
	if math.Abs(f.X+10.0*0.05) > 1e-12 {
		t.Errorf("penalty magnitude = %v, want stiffness*overlap = 0.5", -f.X)
	}
}

func TestUniformGravityScalesWithMass(t *testing.T) {
	u := NewUniformGravity(geom.Vec2{X: 0, Y: -9.8})
	b := &body.Body{Mass: 2}
	f := u.ForceOne(b)
	if math.Abs(f.Y+19.6) > 1e-12 || f.X != 0 {
		t.Errorf("got %v, want (0, -19.6)", f)
	}
}

func TestDragOpposesVelocity(t *testing.T) {
	d := NewDrag(0.5)
	b := &body.Body{Mass: 1, Velocity: geom.Vec2{X: 2, Y: -4}}
	f := d.ForceOne(b)
	if f.X != -1 || f.Y != 2 {
		t.Errorf("got %v, want (-1, 2)", f)
	}
}

func TestSpringPotentialGradient(t *testing.T) {
	// The pair potential should reproduce the force by finite differences.
	s := NewSpring(3.0, 0.4)
	a, b := pair(0, 0, 0.9, 0)

	const h = 1e-6
	aPlus := *a
	aPlus.Position.X += h
	aMinus := *a
	aMinus.Position.X -= h

	grad := (s.Potential(&aPlus, b) - s.Potential(&aMinus, b)) / (2 * h)
	f := s.Force(a, b)
	if math.Abs(f.X+grad) > 1e-5 {
		t.Errorf("force %v inconsistent with potential gradient %v", f.X, -grad)
	}
}

func TestGravityPotentialGradient(t *testing.T) {
	g := NewGravity(0.5)
	g.MinDistance = 0
	a, b := pair(0, 0, 1.3, 0)

	const h = 1e-6
	aPlus := *a
	aPlus.Position.X += h
	aMinus := *a
	aMinus.Position.X -= h

	grad := (g.Potential(&aPlus, b) - g.Potential(&aMinus, b)) / (2 * h)
	f := g.Force(a, b)
	if math.Abs(f.X+grad) > 1e-5 {
		t.Errorf("force %v inconsistent with potential gradient %v", f.X, -grad)
	}
}
