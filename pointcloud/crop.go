package pointcloud

import (
	"github.com/seqsense/pcgol/pc"

	"github.com/seqsense/vecmath/mat"
)

// CropFilter is a matrix mapping the region to keep onto the unit cube
// [0, 1]^3.
type CropFilter mat.Mat4

// NewCropFilter returns a filter keeping points inside b.
// b must have a positive size on every axis.
func NewCropFilter(b Box) (CropFilter, error) {
	size := b.Size()
	for _, s := range size {
		if !(s > 0) {
			return CropFilter{}, ErrEmptyBox
		}
	}
	m := mat.Scale(1/size[0], 1/size[1], 1/size[2])
	m.TranslateVec(b.Min.Neg())
	return CropFilter(m), nil
}

// Contains reports whether p is mapped into the unit cube.
func (f CropFilter) Contains(p mat.Vec3) bool {
	for _, c := range mat.Mat4(f).TransformPoint(p) {
		if c < 0 || 1 < c {
			return false
		}
	}
	return true
}

// Crop returns a view of the points of ra inside the region.
// RawIndexAt of the view refers to ra.
func (f CropFilter) Crop(ra pc.Vec3RandomAccessor) pc.Vec3RandomAccessor {
	var indice []int
	n := ra.Len()
	for i := 0; i < n; i++ {
		if f.Contains(mat.FromPCGolVec3(ra.Vec3At(i))) {
			indice = append(indice, i)
		}
	}
	return pc.NewIndiceVec3RandomAccessor(ra, indice)
}
