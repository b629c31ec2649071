package mat

import (
	"hash/fnv"
	"math"
	"strconv"
	"strings"
)

// Mat4 is a 4x4 matrix in row major order.
//
// m[4*(r-1) + (c-1)] is the element m{r}{c}, r and c counted from 1.
// Points are row vectors multiplied from the left, so the fourth row
// holds the translation.
type Mat4 [16]float32

// Identity returns the multiplicative identity.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewMat4 returns a matrix with the given components, m11 first.
func NewMat4(
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 float32,
) Mat4 {
	return Mat4{
		m11, m12, m13, m14,
		m21, m22, m23, m24,
		m31, m32, m33, m34,
		m41, m42, m43, m44,
	}
}

// At returns m{row}{col}. Indices are 1 to 4.
func (m Mat4) At(row, col int) float32 {
	return m[4*(row-1)+(col-1)]
}

// Row returns the first three columns of the given 1-based row.
func (m Mat4) Row(row int) Vec3 {
	i := 4 * (row - 1)
	return Vec3{m[i], m[i+1], m[i+2]}
}

func (m *Mat4) SetIdentity() *Mat4 {
	*m = Identity()
	return m
}

func (m *Mat4) SetZero() *Mat4 {
	*m = Mat4{}
	return m
}

func (m *Mat4) Set(
	m11, m12, m13, m14,
	m21, m22, m23, m24,
	m31, m32, m33, m34,
	m41, m42, m43, m44 float32,
) *Mat4 {
	*m = NewMat4(
		m11, m12, m13, m14,
		m21, m22, m23, m24,
		m31, m32, m33, m34,
		m41, m42, m43, m44,
	)
	return m
}

// Copy overwrites m with a.
func (m *Mat4) Copy(a Mat4) *Mat4 {
	*m = a
	return m
}

// AddScalar adds s to the diagonal, i.e. m + s*I.
func (m *Mat4) AddScalar(s float32) *Mat4 {
	m[0] += s
	m[5] += s
	m[10] += s
	m[15] += s
	return m
}

func (m *Mat4) Add(a Mat4) *Mat4 {
	for i := range m {
		m[i] += a[i]
	}
	return m
}

func (m *Mat4) MulScalar(s float32) *Mat4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// Mul sets m to m × a.
func (m *Mat4) Mul(a Mat4) *Mat4 {
	in := *m
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += in[4*i+k] * a[4*k+j]
			}
			m[4*i+j] = sum
		}
	}
	return m
}

// MulVec3 multiplies m by the column vector (v, 1) and drops w.
func (m Mat4) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v[0] + m[1]*v[1] + m[2]*v[2] + m[3],
		m[4]*v[0] + m[5]*v[1] + m[6]*v[2] + m[7],
		m[8]*v[0] + m[9]*v[1] + m[10]*v[2] + m[11],
	}
}

// TransformPoint returns the row vector (p, 1) × m without w.
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		p[0]*m[0] + p[1]*m[4] + p[2]*m[8] + m[12],
		p[0]*m[1] + p[1]*m[5] + p[2]*m[9] + m[13],
		p[0]*m[2] + p[1]*m[6] + p[2]*m[10] + m[14],
	}
}

// LerpTowards blends every component towards a: m*(1-t) + a*t.
// t is not clamped. Components already equal to a, infinite ones
// included, are kept as is.
func (m *Mat4) LerpTowards(a Mat4, t float32) *Mat4 {
	for i := range m {
		if m[i] != a[i] {
			m[i] += (a[i] - m[i]) * t
		}
	}
	return m
}

func (m *Mat4) Negate() *Mat4 {
	return m.MulScalar(-1)
}

func (m *Mat4) Transpose() *Mat4 {
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			m[4*i+j], m[4*j+i] = m[4*j+i], m[4*i+j]
		}
	}
	return m
}

// Reciprocal replaces each component by its inverse.
// Zero components become signed infinities.
func (m *Mat4) Reciprocal() *Mat4 {
	for i := range m {
		m[i] = 1 / m[i]
	}
	return m
}

func (m Mat4) Clone() Mat4 {
	return m
}

// Equal reports whether all components compare equal.
func (m Mat4) Equal(a Mat4) bool {
	for i := range m {
		if m[i] != a[i] {
			return false
		}
	}
	return true
}

// Hash returns FNV-1a of the component bit patterns.
func (m Mat4) Hash() uint64 {
	h := fnv.New64a()
	var b [4]byte
	for _, v := range m {
		if v == 0 {
			v = 0 // -0 and +0 are Equal
		}
		u := math.Float32bits(v)
		b[0], b[1], b[2], b[3] = byte(u), byte(u>>8), byte(u>>16), byte(u>>24)
		h.Write(b[:])
	}
	return h.Sum64()
}

func (m Mat4) String() string {
	var sb strings.Builder
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(float64(m[4*i+j]), 'g', -1, 32))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FromBuffer reads m11..m44 from the current position of b.
// m is left untouched if less than 16 values remain.
func (m *Mat4) FromBuffer(b *FloatBuffer) error {
	if b.Remaining() < len(m) {
		return ErrBufferUnderflow
	}
	for i := range m {
		m[i], _ = b.Get()
	}
	return nil
}

// IntoBuffer writes m11..m44 from the start of b and flips it,
// so that the next read returns m11.
func (m *Mat4) IntoBuffer(b *FloatBuffer) error {
	b.Clear()
	if b.Cap() < len(m) {
		return ErrBufferOverflow
	}
	for _, v := range m {
		_ = b.Put(v)
	}
	b.Flip()
	return nil
}
