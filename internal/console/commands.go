package console

import (
	"github.com/seqsense/vecmath/mat"
)

type commandFunc func(c *Console, args []float32) ([][]float32, error)

// set returns a command replacing the current matrix by fn(args).
func set(n int, fn func(args []float32) mat.Mat4) commandFunc {
	return func(c *Console, args []float32) ([][]float32, error) {
		if len(args) != n {
			return nil, errArgumentNumber
		}
		return c.apply(func(m *mat.Mat4) error {
			*m = fn(args)
			return nil
		})
	}
}

// modify returns a command applying fn to the current matrix.
func modify(n int, fn func(m *mat.Mat4, args []float32) error) commandFunc {
	return func(c *Console, args []float32) ([][]float32, error) {
		if len(args) != n {
			return nil, errArgumentNumber
		}
		return c.apply(func(m *mat.Mat4) error {
			return fn(m, args)
		})
	}
}

func rotAxis(axis mat.Vec3) commandFunc {
	return modify(1, func(m *mat.Mat4, args []float32) error {
		m.Rotate(args[0], axis)
		return nil
	})
}

var consoleCommands = map[string]commandFunc{
	"show": func(c *Console, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return rows(c.m), nil
	},
	"identity": set(0, func([]float32) mat.Mat4 { return mat.Identity() }),
	"zero":     set(0, func([]float32) mat.Mat4 { return mat.Mat4{} }),
	"set":      set(16, toMat4),
	"perspective": set(4, func(a []float32) mat.Mat4 {
		return mat.Perspective(a[0], a[1], a[2], a[3])
	}),
	"ortho": set(6, func(a []float32) mat.Mat4 {
		return mat.Orthographic(a[0], a[1], a[2], a[3], a[4], a[5])
	}),
	"lookat": set(9, func(a []float32) mat.Mat4 {
		return mat.LookAt(
			mat.NewVec3(a[0], a[1], a[2]),
			mat.NewVec3(a[3], a[4], a[5]),
			mat.NewVec3(a[6], a[7], a[8]),
		)
	}),
	"translate": modify(3, func(m *mat.Mat4, a []float32) error {
		m.Translate(a[0], a[1], a[2])
		return nil
	}),
	"rotate": modify(4, func(m *mat.Mat4, a []float32) error {
		m.Rotate(a[0], mat.NewVec3(a[1], a[2], a[3]).Normalized())
		return nil
	}),
	"rotx": rotAxis(mat.UnitX),
	"roty": rotAxis(mat.UnitY),
	"rotz": rotAxis(mat.UnitZ),
	"scale": func(c *Console, args []float32) ([][]float32, error) {
		switch len(args) {
		case 1:
			return c.apply(func(m *mat.Mat4) error {
				m.Scale(args[0], args[0], args[0])
				return nil
			})
		case 3:
			return c.apply(func(m *mat.Mat4) error {
				m.Scale(args[0], args[1], args[2])
				return nil
			})
		default:
			return nil, errArgumentNumber
		}
	},
	"add": func(c *Console, args []float32) ([][]float32, error) {
		switch len(args) {
		case 1:
			return c.apply(func(m *mat.Mat4) error {
				m.AddScalar(args[0])
				return nil
			})
		case 16:
			return c.apply(func(m *mat.Mat4) error {
				m.Add(toMat4(args))
				return nil
			})
		default:
			return nil, errArgumentNumber
		}
	},
	"mul": func(c *Console, args []float32) ([][]float32, error) {
		switch len(args) {
		case 1:
			return c.apply(func(m *mat.Mat4) error {
				m.MulScalar(args[0])
				return nil
			})
		case 16:
			return c.apply(func(m *mat.Mat4) error {
				m.Mul(toMat4(args))
				return nil
			})
		default:
			return nil, errArgumentNumber
		}
	},
	"lerp": modify(17, func(m *mat.Mat4, a []float32) error {
		m.LerpTowards(toMat4(a[1:]), a[0])
		return nil
	}),
	"negate": modify(0, func(m *mat.Mat4, _ []float32) error {
		m.Negate()
		return nil
	}),
	"transpose": modify(0, func(m *mat.Mat4, _ []float32) error {
		m.Transpose()
		return nil
	}),
	"reciprocal": modify(0, func(m *mat.Mat4, _ []float32) error {
		m.Reciprocal()
		return nil
	}),
	"invert": modify(0, func(m *mat.Mat4, _ []float32) error {
		return m.Invert()
	}),
	"normal": modify(0, func(m *mat.Mat4, _ []float32) error {
		n, err := mat.NormalMatrix(*m)
		if err != nil {
			return err
		}
		*m = n
		return nil
	}),
	"det": func(c *Console, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return [][]float32{{c.m.Det()}}, nil
	},
	"transform": func(c *Console, args []float32) ([][]float32, error) {
		if len(args) != 3 {
			return nil, errArgumentNumber
		}
		return vec(c.m.MulVec3(mat.NewVec3(args[0], args[1], args[2]))), nil
	},
	"point": func(c *Console, args []float32) ([][]float32, error) {
		if len(args) != 3 {
			return nil, errArgumentNumber
		}
		return vec(c.m.TransformPoint(mat.NewVec3(args[0], args[1], args[2]))), nil
	},
	"undo": func(c *Console, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		if !c.undo() {
			return nil, errNoHistory
		}
		return rows(c.m), nil
	},
}
