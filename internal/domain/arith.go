// Package domain implements the integer check sequence and the workflow around it.
package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/intcheck/internal/model"
)

var (
	// ErrDivisionByZero is returned when a division has a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnknownOperator is returned for an operator the kernel does not implement.
	ErrUnknownOperator = errors.New("unknown operator")
)

// Apply evaluates the binary operator op on x and y with 32-bit signed semantics.
// Addition and multiplication wrap on overflow.
func Apply(op m.Op, x, y int32) (int32, error) {
	switch op {
	case m.OpAdd:
		return x + y, nil
	case m.OpMul:
		return x * y, nil
	case m.OpQuo:
		if y == 0 {
			return 0, ErrDivisionByZero
		}

		return x / y, nil
	case m.OpFloorQuo:
		if y == 0 {
			return 0, ErrDivisionByZero
		}

		return floorQuo(x, y), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
	}
}

// Negate evaluates the unary operator op on x.
func Negate(op m.Op, x int32) (int32, error) {
	if op != m.OpNeg {
		return 0, fmt.Errorf("%w: unary %q", ErrUnknownOperator, op)
	}

	return -x, nil
}

func floorQuo(x, y int32) int32 {
	q := x / y
	if x%y != 0 && (x < 0) != (y < 0) {
		q--
	}

	return q
}
