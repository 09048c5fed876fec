package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/intcheck/internal/model"
)

// ErrUndefinedVariable is returned when a variable is read before its first assignment.
var ErrUndefinedVariable = errors.New("undefined variable")

// registers holds the variables of a single run. A variable is undefined until
// it is first assigned.
type registers struct {
	values map[m.Var]int32
}

func newRegisters() *registers {
	return &registers{values: make(map[m.Var]int32)}
}

func (r *registers) get(v m.Var) (int32, error) {
	value, ok := r.values[v]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUndefinedVariable, v)
	}

	return value, nil
}

func (r *registers) set(v m.Var, value int32) {
	r.values[v] = value
}

// eval evaluates expr against the current register values.
func (r *registers) eval(expr m.Expr) (int32, error) {
	switch e := expr.(type) {
	case m.Lit:
		return int32(e), nil
	case m.Ref:
		return r.get(m.Var(e))
	case m.Unary:
		x, err := r.eval(e.X)
		if err != nil {
			return 0, err
		}

		return Negate(e.Op, x)
	case m.Binary:
		x, err := r.eval(e.X)
		if err != nil {
			return 0, err
		}

		y, err := r.eval(e.Y)
		if err != nil {
			return 0, err
		}

		return Apply(e.Op, x, y)
	default:
		return 0, fmt.Errorf("unsupported expression %T", expr)
	}
}
