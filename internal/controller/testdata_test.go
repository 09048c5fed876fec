package controller

import m "github.com/mouse-blink/intcheck/internal/model"

func sampleSteps() []m.Step {
	i := m.Ref(m.VarI)

	return []m.Step{
		{Index: 1, Label: "init", Target: m.VarI, Expr: m.Lit(0), Check: true, Want: 0},
		{Index: 2, Label: "multiplication", Target: m.VarI, Expr: m.Binary{Op: m.OpMul, X: i, Y: i}, Check: true, Want: 4},
		{Index: 3, Label: "init", Target: m.VarA, Expr: m.Lit(-2)},
	}
}
