package mat

import (
	"fmt"
)

// NormalMatrix returns the inverse transpose of modelView with its
// translation removed.
func NormalMatrix(modelView Mat4) (Mat4, error) {
	n := modelView
	n[12], n[13], n[14], n[15] = 0, 0, 0, 1
	if err := n.Invert(); err != nil {
		return Mat4{}, fmt.Errorf("normal matrix: %w", err)
	}
	return *n.Transpose(), nil
}
