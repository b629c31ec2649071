package mat

import "errors"

var (
	// ErrNonInvertible indicates a matrix with zero determinant.
	ErrNonInvertible = errors.New("mat: matrix is not invertible")
	// ErrBufferUnderflow indicates fewer values remain than a read requires.
	ErrBufferUnderflow = errors.New("mat: buffer underflow")
	// ErrBufferOverflow indicates the buffer capacity is too small for a write.
	ErrBufferOverflow = errors.New("mat: buffer overflow")
)
