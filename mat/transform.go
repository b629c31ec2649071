package mat

import (
	"math"
)

func Translate(x, y, z float32) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

// Rotate returns the rotation of ang radians around the unit axis.
func Rotate(ang float32, axis Vec3) Mat4 {
	m := Identity()
	return *m.Rotate(ang, axis)
}

func Scale(x, y, z float32) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Translate moves the origin along the current basis rows.
func (m *Mat4) Translate(x, y, z float32) *Mat4 {
	for k := 0; k < 4; k++ {
		m[12+k] += m[k]*x + m[4+k]*y + m[8+k]*z
	}
	return m
}

func (m *Mat4) TranslateVec(v Vec3) *Mat4 {
	return m.Translate(v[0], v[1], v[2])
}

// Rotate applies the rotation of ang radians around the unit axis to
// rows 1 to 3. Row 4 is kept.
func (m *Mat4) Rotate(ang float32, axis Vec3) *Mat4 {
	s64, c64 := math.Sincos(float64(ang))
	s, c := float32(s64), float32(c64)
	ac := 1 - c
	x, y, z := axis[0], axis[1], axis[2]

	xy, yz, xz := x*y*ac, y*z*ac, x*z*ac
	xs, ys, zs := x*s, y*s, z*s

	f := [3][3]float32{
		{x*x*ac + c, xy + zs, xz - ys},
		{xy - zs, y*y*ac + c, yz + xs},
		{xz + ys, yz - xs, z*z*ac + c},
	}

	var in [12]float32
	copy(in[:], m[:12])
	for i := 0; i < 3; i++ {
		for k := 0; k < 4; k++ {
			m[4*i+k] = f[i][0]*in[k] + f[i][1]*in[4+k] + f[i][2]*in[8+k]
		}
	}
	return m
}

func (m *Mat4) RotX(ang float32) *Mat4 {
	return m.Rotate(ang, UnitX)
}

func (m *Mat4) RotY(ang float32) *Mat4 {
	return m.Rotate(ang, UnitY)
}

func (m *Mat4) RotZ(ang float32) *Mat4 {
	return m.Rotate(ang, UnitZ)
}

// Scale multiplies row 1 by x, row 2 by y and row 3 by z.
func (m *Mat4) Scale(x, y, z float32) *Mat4 {
	for k := 0; k < 4; k++ {
		m[k] *= x
		m[4+k] *= y
		m[8+k] *= z
	}
	return m
}

func (m *Mat4) ScaleVec(v Vec3) *Mat4 {
	return m.Scale(v[0], v[1], v[2])
}
