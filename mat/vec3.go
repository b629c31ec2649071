package mat

import (
	"math"
)

// Vec3 is a 3-element vector.
type Vec3 [3]float32

// Unit axes.
var (
	UnitX = Vec3{1, 0, 0}
	UnitY = Vec3{0, 1, 0}
	UnitZ = Vec3{0, 0, 1}
)

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) X() float32 { return v[0] }
func (v Vec3) Y() float32 { return v[1] }
func (v Vec3) Z() float32 { return v[2] }

func (v Vec3) NormSq() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func (v Vec3) Norm() float32 {
	return float32(math.Sqrt(float64(v.NormSq())))
}

// Normalized returns v scaled to unit length.
// Zero vector results in NaN components.
func (v Vec3) Normalized() Vec3 {
	return v.Mul(1.0 / v.Norm())
}

func (v Vec3) Mul(a float32) Vec3 {
	return Vec3{v[0] * a, v[1] * a, v[2] * a}
}

func (v Vec3) Sub(a Vec3) Vec3 {
	return Vec3{v[0] - a[0], v[1] - a[1], v[2] - a[2]}
}

func (v Vec3) Add(a Vec3) Vec3 {
	return Vec3{v[0] + a[0], v[1] + a[1], v[2] + a[2]}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (v Vec3) Dot(a Vec3) float32 {
	return v[0]*a[0] + v[1]*a[1] + v[2]*a[2]
}

func (v Vec3) Cross(a Vec3) Vec3 {
	return Vec3{
		v[1]*a[2] - v[2]*a[1],
		v[2]*a[0] - v[0]*a[2],
		v[0]*a[1] - v[1]*a[0],
	}
}

func (v Vec3) Equal(a Vec3) bool {
	return v[0] == a[0] && v[1] == a[1] && v[2] == a[2]
}

// FromBuffer reads x, y, z from the current position of b.
func (v *Vec3) FromBuffer(b *FloatBuffer) error {
	if b.Remaining() < len(v) {
		return ErrBufferUnderflow
	}
	for i := range v {
		v[i], _ = b.Get()
	}
	return nil
}

// IntoBuffer writes x, y, z to b and flips it for reading.
func (v *Vec3) IntoBuffer(b *FloatBuffer) error {
	b.Clear()
	if b.Cap() < len(v) {
		return ErrBufferOverflow
	}
	for _, f := range v {
		_ = b.Put(f)
	}
	b.Flip()
	return nil
}
