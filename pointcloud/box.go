package pointcloud

import (
	"errors"

	"github.com/seqsense/pcgol/pc"

	"github.com/seqsense/vecmath/mat"
)

var (
	ErrNoPoint  = errors.New("pointcloud: no point")
	ErrEmptyBox = errors.New("pointcloud: box has no volume")
)

// Box is an axis aligned box.
type Box struct {
	Min, Max mat.Vec3
}

// BoundingBox returns the smallest box containing all points of ra.
func BoundingBox(ra pc.Vec3RandomAccessor) (Box, error) {
	if ra.Len() == 0 {
		return Box{}, ErrNoPoint
	}
	min, max, err := pc.MinMaxVec3(ra)
	if err != nil {
		return Box{}, err
	}
	return Box{Min: mat.FromPCGolVec3(min), Max: mat.FromPCGolVec3(max)}, nil
}

func (b Box) Size() mat.Vec3 {
	return b.Max.Sub(b.Min)
}

func (b Box) Center() mat.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}
