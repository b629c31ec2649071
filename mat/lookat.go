package mat

// LookAt returns the rotation part of a camera looking from eye to center.
// Rows 1 to 3 hold side, up and backward directions.
// Translation by -eye is not applied.
func LookAt(eye, center, up Vec3) Mat4 {
	f := center.Sub(eye).Normalized()
	s := f.Cross(up).Normalized()
	u := s.Cross(f)

	return Mat4{
		s[0], s[1], s[2], 0,
		u[0], u[1], u[2], 0,
		-f[0], -f[1], -f[2], 0,
		0, 0, 0, 1,
	}
}
