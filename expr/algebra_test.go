package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type countingEnv struct {
	values  Bindings
	lookups map[string]int
}

func (c *countingEnv) Lookup(name string) (float64, bool) {
	c.lookups[name]++
	return c.values.Lookup(name)
}

func TestAlgebra_FoldsConstants(t *testing.T) {
	var ar Algebra

	n := ar.Add(ar.Const(1), ar.Multiply(ar.Const(2), ar.Const(3)))
	value, ok := ConstValue(n)
	require.True(t, ok)
	require.Equal(t, 7.0, value)

	n = ar.Sin(ar.Const(0))
	value, ok = ConstValue(n)
	require.True(t, ok)
	require.Equal(t, 0.0, value)
}

func TestAlgebra_KeepsVariables(t *testing.T) {
	var ar Algebra

	x := Var("x")
	n := ar.Add(ar.Const(1), ar.Multiply(ar.Const(2), x))

	_, ok := ConstValue(n)
	require.False(t, ok)
	require.Equal(t, "(1 + (2 * x))", n.String())

	require.Equal(t, 7.0, Eval(n, Bindings{"x": 3}))
	require.Equal(t, 1.0, Eval(n, Bindings{"x": 0}))
}

func TestAlgebra_SingleOperand(t *testing.T) {
	var ar Algebra

	x := Var("x")
	require.Same(t, x, ar.Add(x))
	require.Same(t, x, ar.Multiply(x))
}

func TestAlgebra_DropsIdentityElements(t *testing.T) {
	var ar Algebra

	x, y := Var("x"), Var("y")
	require.Same(t, x, ar.Add(ar.Const(0), x, ar.Const(0)))
	require.Same(t, x, ar.Multiply(ar.Const(1), x))

	require.Equal(t, "(3 + x + y)", ar.Add(x, ar.Const(1), y, ar.Const(2)).String())
	require.Equal(t, "(6 * x)", ar.Multiply(ar.Const(2), x, ar.Const(3)).String())

	// a zero factor is kept, x might not be finite
	n := ar.Multiply(ar.Const(0), x)
	require.Equal(t, "(0 * x)", n.String())
	require.True(t, math.IsNaN(Eval(n, Bindings{"x": math.Inf(1)})))
}

func TestAlgebra_Empty(t *testing.T) {
	var ar Algebra

	value, ok := ConstValue(ar.Add())
	require.True(t, ok)
	require.Equal(t, 0.0, value)

	value, ok = ConstValue(ar.Multiply())
	require.True(t, ok)
	require.Equal(t, 1.0, value)
}

func TestAlgebra_Functions(t *testing.T) {
	var ar Algebra

	x := Var("x")
	y := Var("y")

	env := Bindings{"x": 0.3, "y": -1.2}

	cases := []struct {
		node     Node
		expected float64
	}{
		{ar.Subtract(x, y), 0.3 - -1.2},
		{ar.Divide(x, y), 0.3 / -1.2},
		{ar.Pow(x, ar.Const(2)), math.Pow(0.3, 2)},
		{ar.Sqrt(x), math.Sqrt(0.3)},
		{ar.Sin(x), math.Sin(0.3)},
		{ar.Cos(x), math.Cos(0.3)},
		{ar.Tan(x), math.Tan(0.3)},
		{ar.Atan2(y, x), math.Atan2(-1.2, 0.3)},
		{ar.Equal(x, x), 1},
		{ar.Equal(x, y), 0},
	}

	for _, tc := range cases {
		t.Run(tc.node.String(), func(t *testing.T) {
			require.InDelta(t, tc.expected, Eval(tc.node, env), 1e-12)
		})
	}
}

func TestAlgebra_DegenerateValuesPropagate(t *testing.T) {
	var ar Algebra

	n := ar.Divide(ar.Const(1), Var("x"))
	require.True(t, math.IsInf(Eval(n, Bindings{"x": 0}), 1))

	n = ar.Sqrt(Var("x"))
	require.True(t, math.IsNaN(Eval(n, Bindings{"x": -1})))

	// unbound variables evaluate to NaN
	require.True(t, math.IsNaN(Eval(Var("missing"), Bindings{})))
	require.True(t, math.IsNaN(Eval(Var("missing"), nil)))
}

func TestAlgebra_CondIsLazy(t *testing.T) {
	var ar Algebra

	n := ar.Cond(ar.Equal(Var("a"), Var("b")), Var("yes"), Var("no"))
	require.Equal(t, "cond((a == b), yes, no)", n.String())

	env := &countingEnv{
		values:  Bindings{"a": 1, "b": 1, "yes": 10, "no": 20},
		lookups: map[string]int{},
	}

	require.Equal(t, 10.0, Eval(n, env))
	require.Equal(t, 1, env.lookups["yes"])
	require.Zero(t, env.lookups["no"])

	env.values["b"] = 2
	require.Equal(t, 20.0, Eval(n, env))
	require.Equal(t, 1, env.lookups["no"])
}

func TestAlgebra_CondWithConstantCondition(t *testing.T) {
	var ar Algebra

	yes, no := Var("yes"), Var("no")
	require.Same(t, yes, ar.Cond(ar.Const(1), yes, no))
	require.Same(t, no, ar.Cond(ar.Const(0), yes, no))
}

func TestEval_SharedNodesEvaluatedOnce(t *testing.T) {
	var ar Algebra

	x := Var("x")
	shared := ar.Multiply(x, x)
	n := ar.Add(shared, shared, shared)

	env := &countingEnv{values: Bindings{"x": 2}, lookups: map[string]int{}}
	require.Equal(t, 12.0, Eval(n, env))
	require.Equal(t, 1, env.lookups["x"])
}

func TestVars(t *testing.T) {
	var ar Algebra

	n := ar.Add(Var("b"), ar.Sin(Var("a")), Var("b"), ar.Const(1))
	require.Equal(t, []string{"a", "b"}, Vars(n))
	require.Empty(t, Vars(ar.Const(1)))
}
