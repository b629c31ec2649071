package mat

import (
	"unsafe"
)

// BufferData is a blob which can be uploaded to a graphics API buffer.
type BufferData interface {
	Bytes() []byte
}

// BufferMarshaler reads and writes values in their flat buffer layout.
type BufferMarshaler interface {
	FromBuffer(b *FloatBuffer) error
	IntoBuffer(b *FloatBuffer) error
}

var (
	_ BufferMarshaler = (*Mat4)(nil)
	_ BufferMarshaler = (*Vec3)(nil)
	_ BufferData      = (*FloatBuffer)(nil)
)

// FloatBuffer is a fixed capacity float32 buffer with a read/write cursor.
//
// Writes advance position up to the capacity. Flip sets the limit to the
// current position and rewinds, so that written values can be read back.
type FloatBuffer struct {
	data  []float32
	pos   int
	limit int
}

func NewFloatBuffer(capacity int) *FloatBuffer {
	return WrapFloatBuffer(make([]float32, capacity))
}

// WrapFloatBuffer returns a buffer backed by f, ready to read all of it.
func WrapFloatBuffer(f []float32) *FloatBuffer {
	return &FloatBuffer{data: f, limit: len(f)}
}

func (b *FloatBuffer) Cap() int       { return len(b.data) }
func (b *FloatBuffer) Position() int  { return b.pos }
func (b *FloatBuffer) Limit() int     { return b.limit }
func (b *FloatBuffer) Remaining() int { return b.limit - b.pos }

// Clear prepares the buffer to be written from the start.
func (b *FloatBuffer) Clear() {
	b.pos = 0
	b.limit = len(b.data)
}

// Flip prepares the buffer to read what has been written.
func (b *FloatBuffer) Flip() {
	b.limit = b.pos
	b.pos = 0
}

func (b *FloatBuffer) Rewind() {
	b.pos = 0
}

func (b *FloatBuffer) Get() (float32, error) {
	if b.pos >= b.limit {
		return 0, ErrBufferUnderflow
	}
	v := b.data[b.pos]
	b.pos++
	return v, nil
}

func (b *FloatBuffer) Put(v float32) error {
	if b.pos >= b.limit {
		return ErrBufferOverflow
	}
	b.data[b.pos] = v
	b.pos++
	return nil
}

// Floats returns the values between position and limit.
// The returned slice shares memory with the buffer.
func (b *FloatBuffer) Floats() []float32 {
	return b.data[b.pos:b.limit]
}

// Bytes returns the values between position and limit in host byte order.
// The returned slice shares memory with the buffer.
func (b *FloatBuffer) Bytes() []byte {
	f := b.Floats()
	if len(f) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&f[0])), 4*len(f))
}
