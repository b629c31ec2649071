package mat

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVec3(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if a.X() != 1 || a.Y() != 2 || a.Z() != 3 {
		t.Errorf("Unexpected components %v", a)
	}
	if v := b.Sub(a); !v.Equal(Vec3{3, 3, 3}) {
		t.Errorf("Sub expected [3 3 3], got %v", v)
	}
	if v := a.Add(b); !v.Equal(Vec3{5, 7, 9}) {
		t.Errorf("Add expected [5 7 9], got %v", v)
	}
	if v := a.Neg(); !v.Equal(Vec3{-1, -2, -3}) {
		t.Errorf("Neg expected [-1 -2 -3], got %v", v)
	}
	if d := a.Dot(b); d != 32 {
		t.Errorf("Dot expected 32, got %f", d)
	}
	if v := a.Cross(b); !v.Equal(Vec3{-3, 6, -3}) {
		t.Errorf("Cross expected [-3 6 -3], got %v", v)
	}
	if v := UnitX.Cross(UnitY); !v.Equal(UnitZ) {
		t.Errorf("X × Y expected Z, got %v", v)
	}

	n := NewVec3(3, 0, 4).Normalized()
	if diff := cmp.Diff(Vec3{0.6, 0, 0.8}, n, approx); diff != "" {
		t.Errorf("Normalized (-expected +got):\n%s", diff)
	}
	if l := n.Norm(); l < 0.9999 || 1.0001 < l {
		t.Errorf("Normalized vector must be unit length, got %f", l)
	}

	z := Vec3{}.Normalized()
	if !math.IsNaN(float64(z[0])) {
		t.Errorf("Normalizing zero vector expected NaN, got %v", z)
	}
}
