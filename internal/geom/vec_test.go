package geom

import (
	"math"
	"testing"
)

func TestVecOps(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: -2}

	if got := a.Add(b); got != (Vec2{X: 4, Y: 2}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vec2{X: 2, Y: 6}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vec2{X: 6, Y: 8}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Dot(b); got != 3-8 {
		t.Errorf("Dot: got %v", got)
	}
	if got := a.Norm(); got != 5 {
		t.Errorf("Norm: got %v", got)
	}
	if got := a.Distance(Vec2{X: 0, Y: 0}); got != 5 {
		t.Errorf("Distance: got %v", got)
	}
}

func TestNormalized(t *testing.T) {
	u := Vec2{X: 3, Y: 4}.Normalized()
	if math.Abs(u.Norm()-1) > 1e-12 {
		t.Errorf("expected unit vector, got norm %v", u.Norm())
	}

	z := Vec2{}.Normalized()
	if !z.IsZero() {
		t.Errorf("normalizing zero vector should return zero, got %v", z)
	}
}

func TestIsValid(t *testing.T) {
	if !(Vec2{X: 1, Y: 2}).IsValid() {
		t.Error("finite vector should be valid")
	}
	if (Vec2{X: math.NaN(), Y: 0}).IsValid() {
		t.Error("NaN vector should be invalid")
	}
	if (Vec2{X: 0, Y: math.Inf(1)}).IsValid() {
		t.Error("Inf vector should be invalid")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}
