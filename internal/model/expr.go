// Package model defines the data structures for the integer self-check.
package model

import "fmt"

// Var names one of the integer variables the sequence operates on.
type Var string

const (
	// VarI is the accumulator for the addition and multiplication checks.
	VarI Var = "i"
	// VarA is the accumulator for the negation, assignment and division checks.
	VarA Var = "a"
)

// Op represents an integer operator.
type Op string

const (
	// OpAdd is signed addition.
	OpAdd Op = "+"
	// OpMul is signed multiplication.
	OpMul Op = "*"
	// OpNeg is unary negation.
	OpNeg Op = "-"
	// OpQuo is integer division truncating toward zero.
	OpQuo Op = "/"
	// OpFloorQuo is integer division rounding toward negative infinity.
	OpFloorQuo Op = "floor/"
)

// Expr is an integer expression evaluated against the variables of a run.
type Expr interface {
	fmt.Stringer
	isExpr()
}

// Lit is an integer literal.
type Lit int32

// Ref reads a variable.
type Ref Var

// Unary applies a unary operator to X.
type Unary struct {
	Op Op
	X  Expr
}

// Binary applies a binary operator to X and Y.
type Binary struct {
	Op Op
	X  Expr
	Y  Expr
}

func (Lit) isExpr()    {}
func (Ref) isExpr()    {}
func (Unary) isExpr()  {}
func (Binary) isExpr() {}

func (l Lit) String() string {
	return fmt.Sprintf("%d", int32(l))
}

func (r Ref) String() string {
	return string(r)
}

func (u Unary) String() string {
	return string(u.Op) + u.X.String()
}

func (b Binary) String() string {
	return fmt.Sprintf("%s %s %s", operand(b.X), b.Op, operand(b.Y))
}

// operand parenthesizes negative literals so "a + -2" reads as "a + (-2)".
func operand(e Expr) string {
	if l, ok := e.(Lit); ok && l < 0 {
		return "(" + l.String() + ")"
	}

	return e.String()
}
