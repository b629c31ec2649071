package mat

import (
	"math"
)

// Perspective returns a symmetric frustum projection.
// fov is the vertical field of view in degrees.
func Perspective(fov, aspect, near, far float32) Mat4 {
	yScale := 1 / float32(math.Tan(float64(fov)*math.Pi/360))
	xScale := yScale / aspect
	return Mat4{
		xScale, 0, 0, 0,
		0, yScale, 0, 0,
		0, 0, -(far + near) / (far - near), -1,
		0, 0, -2 * far * near / (far - near), 0,
	}
}
