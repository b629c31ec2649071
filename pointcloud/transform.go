package pointcloud

import (
	pcmat "github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"

	"github.com/seqsense/vecmath/mat"
)

// TransformedVec3RandomAccessor returns points of the underlying accessor
// transformed by Trans as row vectors.
type TransformedVec3RandomAccessor struct {
	pc.Vec3RandomAccessor
	Trans mat.Mat4
}

func (a *TransformedVec3RandomAccessor) Vec3At(i int) pcmat.Vec3 {
	v := mat.FromPCGolVec3(a.Vec3RandomAccessor.Vec3At(i))
	return a.Trans.TransformPoint(v).PCGol()
}

// Transform applies m to every point of pp in place.
func Transform(pp *pc.PointCloud, m mat.Mat4) error {
	it, err := pp.Vec3Iterator()
	if err != nil {
		return err
	}
	for ; it.IsValid(); it.Incr() {
		v := mat.FromPCGolVec3(it.Vec3())
		it.SetVec3(m.TransformPoint(v).PCGol())
	}
	return nil
}

// NewXYZ copies the points of ra into a new cloud with float32 x, y and
// z fields.
func NewXYZ(ra pc.Vec3RandomAccessor) (*pc.PointCloud, error) {
	n := ra.Len()
	if n == 0 {
		return nil, ErrNoPoint
	}
	pp := &pc.PointCloud{
		PointCloudHeader: pc.PointCloudHeader{
			Version: 0.7,
			Fields:  []string{"x", "y", "z"},
			Size:    []int{4, 4, 4},
			Type:    []string{"F", "F", "F"},
			Count:   []int{1, 1, 1},
			Width:   n,
			Height:  1,
		},
		Points: n,
	}
	pp.Data = make([]byte, n*pp.Stride())
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		it.SetVec3(ra.Vec3At(i))
		it.Incr()
	}
	return pp, nil
}
