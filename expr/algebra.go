package expr

import (
	"github.com/oliverbestmann/xform/arith"
)

type operator struct {
	name  string
	infix string
	apply func(values []float64) float64
}

var eager arith.Float

var (
	opAdd      = &operator{name: "add", infix: "+", apply: func(v []float64) float64 { return eager.Add(v...) }}
	opMultiply = &operator{name: "multiply", infix: "*", apply: func(v []float64) float64 { return eager.Multiply(v...) }}
	opSubtract = &operator{name: "subtract", infix: "-", apply: func(v []float64) float64 { return eager.Subtract(v[0], v[1]) }}
	opDivide   = &operator{name: "divide", infix: "/", apply: func(v []float64) float64 { return eager.Divide(v[0], v[1]) }}
	opEqual    = &operator{name: "equal", infix: "==", apply: func(v []float64) float64 { return eager.Equal(v[0], v[1]) }}
	opPow      = &operator{name: "pow", apply: func(v []float64) float64 { return eager.Pow(v[0], v[1]) }}
	opSqrt     = &operator{name: "sqrt", apply: func(v []float64) float64 { return eager.Sqrt(v[0]) }}
	opSin      = &operator{name: "sin", apply: func(v []float64) float64 { return eager.Sin(v[0]) }}
	opCos      = &operator{name: "cos", apply: func(v []float64) float64 { return eager.Cos(v[0]) }}
	opTan      = &operator{name: "tan", apply: func(v []float64) float64 { return eager.Tan(v[0]) }}
	opAtan2    = &operator{name: "atan2", apply: func(v []float64) float64 { return eager.Atan2(v[0], v[1]) }}
)

// Algebra builds expression graph nodes. Operations on constants only
// are folded into a new constant, everything else becomes a new node.
//
// Terms like x*0 are not simplified, as they are not zero if x is NaN or infinite.
type Algebra struct{}

var _ arith.Arith[Node] = Algebra{}

func (Algebra) Const(v float64) Node {
	return Const(v)
}

func (Algebra) Add(xs ...Node) Node {
	return fold(opAdd, 0, xs)
}

func (Algebra) Multiply(xs ...Node) Node {
	return fold(opMultiply, 1, xs)
}

func (Algebra) Subtract(a, b Node) Node {
	return apply(opSubtract, a, b)
}

func (Algebra) Divide(a, b Node) Node {
	return apply(opDivide, a, b)
}

func (Algebra) Pow(base, exp Node) Node {
	return apply(opPow, base, exp)
}

func (Algebra) Sqrt(x Node) Node {
	return apply(opSqrt, x)
}

func (Algebra) Sin(x Node) Node {
	return apply(opSin, x)
}

func (Algebra) Cos(x Node) Node {
	return apply(opCos, x)
}

func (Algebra) Tan(x Node) Node {
	return apply(opTan, x)
}

func (Algebra) Atan2(y, x Node) Node {
	return apply(opAtan2, y, x)
}

func (Algebra) Equal(a, b Node) Node {
	return apply(opEqual, a, b)
}

func (Algebra) Cond(cond, ifTrue, ifFalse Node) Node {
	// a constant condition selects its branch right away
	if value, ok := ConstValue(cond); ok {
		if eager.Cond(value, 1, 0) != 0 {
			return ifTrue
		}

		return ifFalse
	}

	return &condNode{cond: cond, ifTrue: ifTrue, ifFalse: ifFalse}
}

func apply(op *operator, args ...Node) Node {
	values := make([]float64, len(args))

	for idx, arg := range args {
		value, ok := ConstValue(arg)
		if !ok {
			return &opNode{op: op, args: append([]Node(nil), args...)}
		}

		values[idx] = value
	}

	return Const(op.apply(values))
}

// fold combines the constant operands of an associative operator into a
// single constant, which is dropped if it equals the identity element.
func fold(op *operator, identity float64, xs []Node) Node {
	var constants []float64
	var nodes []Node

	for _, x := range xs {
		if value, ok := ConstValue(x); ok {
			constants = append(constants, value)
		} else {
			nodes = append(nodes, x)
		}
	}

	constant := op.apply(constants)
	if len(nodes) == 0 {
		return Const(constant)
	}

	if constant != identity {
		nodes = append([]Node{Const(constant)}, nodes...)
	}

	if len(nodes) == 1 {
		return nodes[0]
	}

	return &opNode{op: op, args: nodes}
}
