package mat

// Det returns the determinant by cofactor expansion.
func (m Mat4) Det() float32 {
	m11, m12, m13, m14 := m[0], m[1], m[2], m[3]
	m21, m22, m23, m24 := m[4], m[5], m[6], m[7]
	m31, m32, m33, m34 := m[8], m[9], m[10], m[11]
	m41, m42, m43, m44 := m[12], m[13], m[14], m[15]

	// 2x2 minors of the lower two rows
	s0 := m31*m42 - m32*m41
	s1 := m31*m43 - m33*m41
	s2 := m31*m44 - m34*m41
	s3 := m32*m43 - m33*m42
	s4 := m32*m44 - m34*m42
	s5 := m33*m44 - m34*m43

	return m11*(m22*s5-m23*s4+m24*s3) -
		m12*(m21*s5-m23*s2+m24*s1) +
		m13*(m21*s4-m22*s2+m24*s0) -
		m14*(m21*s3-m22*s1+m23*s0)
}

// Invert replaces m by its inverse.
// ErrNonInvertible is returned and m is kept if the determinant is exactly 0.
func (m *Mat4) Invert() error {
	m11, m12, m13, m14 := m[0], m[1], m[2], m[3]
	m21, m22, m23, m24 := m[4], m[5], m[6], m[7]
	m31, m32, m33, m34 := m[8], m[9], m[10], m[11]
	m41, m42, m43, m44 := m[12], m[13], m[14], m[15]

	// 2x2 minors of the upper and lower row pairs
	a0 := m11*m22 - m12*m21
	a1 := m11*m23 - m13*m21
	a2 := m11*m24 - m14*m21
	a3 := m12*m23 - m13*m22
	a4 := m12*m24 - m14*m22
	a5 := m13*m24 - m14*m23
	b0 := m31*m42 - m32*m41
	b1 := m31*m43 - m33*m41
	b2 := m31*m44 - m34*m41
	b3 := m32*m43 - m33*m42
	b4 := m32*m44 - m34*m42
	b5 := m33*m44 - m34*m43

	det := m.Det()
	if det == 0 {
		return ErrNonInvertible
	}
	inv := 1 / det

	// adjugate, i.e. transposed cofactors
	*m = Mat4{
		(m22*b5 - m23*b4 + m24*b3) * inv,
		(-m12*b5 + m13*b4 - m14*b3) * inv,
		(m42*a5 - m43*a4 + m44*a3) * inv,
		(-m32*a5 + m33*a4 - m34*a3) * inv,

		(-m21*b5 + m23*b2 - m24*b1) * inv,
		(m11*b5 - m13*b2 + m14*b1) * inv,
		(-m41*a5 + m43*a2 - m44*a1) * inv,
		(m31*a5 - m33*a2 + m34*a1) * inv,

		(m21*b4 - m22*b2 + m24*b0) * inv,
		(-m11*b4 + m12*b2 - m14*b0) * inv,
		(m41*a4 - m42*a2 + m44*a0) * inv,
		(-m31*a4 + m32*a2 - m34*a0) * inv,

		(-m21*b3 + m22*b1 - m23*b0) * inv,
		(m11*b3 - m12*b1 + m13*b0) * inv,
		(-m41*a3 + m42*a1 - m43*a0) * inv,
		(m31*a3 - m32*a1 + m33*a0) * inv,
	}
	return nil
}

// Inverse returns the inverse of m without modifying it.
func (m Mat4) Inverse() (Mat4, error) {
	if err := m.Invert(); err != nil {
		return Mat4{}, err
	}
	return m, nil
}
