package mat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDet(t *testing.T) {
	if d := Identity().Det(); d != 1 {
		t.Errorf("det(I) expected to be 1, got %f", d)
	}
	if d := testMatrices["Dense"].Det(); d != 1 {
		t.Errorf("det(Dense) expected to be 1, got %f", d)
	}
	if d := Scale(2, 3, 4).Det(); d != 24 {
		t.Errorf("det(Scale) expected to be 24, got %f", d)
	}
	for name, m := range testMatrices {
		expected := m.Mgl32().Det()
		if d := m.Det(); d-expected < -1e-4 || 1e-4 < d-expected {
			t.Errorf("%s: det expected to be %f, got %f", name, expected, d)
		}
		mt := m.Clone()
		if d, dt := m.Det(), mt.Transpose().Det(); d-dt < -1e-4 || 1e-4 < d-dt {
			t.Errorf("%s: det(M^T) expected to be %f, got %f", name, d, dt)
		}
	}
}

func TestInv(t *testing.T) {
	for name, m := range testMatrices {
		m := m
		t.Run(name, func(t *testing.T) {
			mi := m.Clone()
			require.NoError(t, mi.Invert())

			diag := m.Clone()
			diag.Mul(mi)
			if diff := cmp.Diff(Identity(), diag, approxWithin(0, 1e-4)); diff != "" {
				t.Errorf("M × M^-1 must be identity (-expected +got):\n%s", diff)
			}

			expected := FromMgl32(m.Mgl32().Inv())
			if diff := cmp.Diff(expected, mi, approxWithin(1e-4, 1e-5)); diff != "" {
				t.Errorf("Inverse differs from mgl32 (-expected +got):\n%s", diff)
			}

			mi2, err := m.Inverse()
			require.NoError(t, err)
			require.True(t, mi2.Equal(mi), "Inverse and Invert must agree")
		})
	}
}

func TestInvAffine(t *testing.T) {
	m := Translate(0.1, 0.2, 0.3)
	m.Scale(1.1, 1.2, 1.3).RotX(0.5)
	mi, err := m.Inverse()
	require.NoError(t, err)

	p := NewVec3(1, 2, 3)
	back := mi.TransformPoint(m.TransformPoint(p))
	if diff := cmp.Diff(p, back, approx); diff != "" {
		t.Errorf("Point must round trip (-expected +got):\n%s", diff)
	}
}

func TestInvSingular(t *testing.T) {
	testCases := map[string]Mat4{
		"Zero": {},
		"DuplicatedRow": {
			1, 2, 3, 4,
			1, 2, 3, 4,
			0, 0, 1, 0,
			0, 0, 0, 1,
		},
		"Flattened": Scale(1, 1, 0),
	}
	for name, m := range testCases {
		m := m
		t.Run(name, func(t *testing.T) {
			require.Equal(t, float32(0), m.Det())

			r := m.Clone()
			err := r.Invert()
			require.ErrorIs(t, err, ErrNonInvertible)
			require.True(t, r.Equal(m), "failed Invert must keep the matrix")

			_, err = m.Inverse()
			require.ErrorIs(t, err, ErrNonInvertible)
		})
	}
}
