package console

import (
	"errors"
	"strconv"
	"strings"

	"github.com/seqsense/vecmath/mat"
)

var (
	errArgumentNumber = errors.New("invalid number of arguments")
	errInvalidCommand = errors.New("invalid command")
	errNoHistory      = errors.New("no history to undo")
)

const (
	DefaultMaxHistory = 16
	DefaultPrecision  = 3
)

// Console interprets matrix commands on a single current matrix.
type Console struct {
	m          mat.Mat4
	history    []mat.Mat4
	maxHistory int
	precision  int
}

// New returns a console holding the identity matrix.
func New() *Console {
	return &Console{
		m:          mat.Identity(),
		maxHistory: DefaultMaxHistory,
		precision:  DefaultPrecision,
	}
}

func (c *Console) Matrix() mat.Mat4 {
	return c.m
}

func (c *Console) MaxHistory() int {
	return c.maxHistory
}

func (c *Console) SetMaxHistory(n int) {
	if n < 0 {
		n = 0
	}
	c.maxHistory = n
	if len(c.history) > n {
		c.history = c.history[len(c.history)-n:]
	}
}

// Precision returns the number of digits printed after the decimal point.
func (c *Console) Precision() int {
	return c.precision
}

func (c *Console) SetPrecision(p int) {
	if p < 0 {
		p = DefaultPrecision
	}
	c.precision = p
}

func (c *Console) push() {
	if c.maxHistory == 0 {
		return
	}
	c.history = append(c.history, c.m)
	if len(c.history) > c.maxHistory {
		c.history = c.history[1:]
	}
}

func (c *Console) undo() bool {
	n := len(c.history)
	if n == 0 {
		return false
	}
	c.m = c.history[n-1]
	c.history = c.history[:n-1]
	return true
}

// apply runs fn on a copy of the current matrix and commits it on success.
func (c *Console) apply(fn func(m *mat.Mat4) error) ([][]float32, error) {
	next := c.m
	if err := fn(&next); err != nil {
		return nil, err
	}
	c.push()
	c.m = next
	return rows(c.m), nil
}

func rows(m mat.Mat4) [][]float32 {
	return [][]float32{m[0:4], m[4:8], m[8:12], m[12:16]}
}

func vec(v mat.Vec3) [][]float32 {
	return [][]float32{{v[0], v[1], v[2]}}
}

func toMat4(args []float32) mat.Mat4 {
	var m mat.Mat4
	copy(m[:], args)
	return m
}

// Run executes a command line and returns its formatted result.
func (c *Console) Run(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	fn, ok := consoleCommands[args[0]]
	if !ok {
		return "", errInvalidCommand
	}
	var argsFloat []float32
	for i := 1; i < len(args); i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return "", err
		}
		argsFloat = append(argsFloat, float32(f))
	}
	res, err := fn(c, argsFloat)
	if err != nil {
		return "", err
	}
	var resStr []string
	for _, vv := range res {
		var resLine []string
		for _, v := range vv {
			resLine = append(resLine, strconv.FormatFloat(float64(v), 'f', c.precision, 32))
		}
		resStr = append(resStr, strings.Join(resLine, " "))
	}
	return strings.Join(resStr, "\n"), nil
}
