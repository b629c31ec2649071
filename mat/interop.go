package mat

import (
	"github.com/go-gl/mathgl/mgl32"
	pcmat "github.com/seqsense/pcgol/mat"
)

// A row major matrix applied to row vectors has the same memory layout
// as a column major matrix applied to column vectors, so both conversions
// below are plain copies.

// Mgl32 returns m as a mathgl matrix.
func (m Mat4) Mgl32() mgl32.Mat4 {
	return mgl32.Mat4(m)
}

func FromMgl32(m mgl32.Mat4) Mat4 {
	return Mat4(m)
}

func (v Vec3) Mgl32() mgl32.Vec3 {
	return mgl32.Vec3(v)
}

// PCGol returns m as a pcgol matrix.
func (m Mat4) PCGol() pcmat.Mat4 {
	return pcmat.Mat4(m)
}

func FromPCGol(m pcmat.Mat4) Mat4 {
	return Mat4(m)
}

func (v Vec3) PCGol() pcmat.Vec3 {
	return pcmat.Vec3(v)
}

func FromPCGolVec3(v pcmat.Vec3) Vec3 {
	return Vec3(v)
}
