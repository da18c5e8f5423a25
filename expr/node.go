// Package expr implements a small deferred expression graph.
//
// Nodes are immutable and may be shared between several parents, so a graph
// is a DAG rather than a tree. Building a graph never evaluates anything apart
// from folding operations whose inputs are all constants. Evaluation happens
// in Eval, once per distinct node, against a set of variable bindings.
package expr

import (
	"math"
	"strconv"
	"strings"

	"github.com/oliverbestmann/xform/internal/set"
)

// Node is a single vertex in an expression graph.
type Node interface {
	String() string

	eval(ev *evaluator) float64
	children() []Node
}

// Env resolves variables during evaluation.
type Env interface {
	Lookup(name string) (float64, bool)
}

// Bindings is an Env backed by a map.
type Bindings map[string]float64

func (b Bindings) Lookup(name string) (float64, bool) {
	value, ok := b[name]
	return value, ok
}

// Const returns a constant node.
func Const(value float64) Node {
	return &constNode{value: value}
}

// Var returns a node that reads the variable with the given name at evaluation time.
func Var(name string) Node {
	return &varNode{name: name}
}

// ConstValue returns the value of n if n is a constant.
func ConstValue(n Node) (float64, bool) {
	if c, ok := n.(*constNode); ok {
		return c.value, true
	}

	return 0, false
}

// Eval evaluates the graph rooted at n. A variable that the Env can not
// resolve evaluates to NaN.
func Eval(n Node, env Env) float64 {
	ev := &evaluator{env: env, cache: map[Node]float64{}}
	return ev.eval(n)
}

// Vars returns the sorted names of all variables referenced by n.
func Vars(n Node) []string {
	var seen set.Set[Node]
	var names set.Set[string]

	var visit func(n Node)
	visit = func(n Node) {
		if !seen.Insert(n) {
			return
		}

		if v, ok := n.(*varNode); ok {
			names.Insert(v.name)
		}

		for _, child := range n.children() {
			visit(child)
		}
	}

	visit(n)

	return set.Sorted(&names)
}

type evaluator struct {
	env   Env
	cache map[Node]float64
}

func (ev *evaluator) eval(n Node) float64 {
	if value, ok := ev.cache[n]; ok {
		return value
	}

	value := n.eval(ev)
	ev.cache[n] = value
	return value
}

type constNode struct {
	value float64
}

func (c *constNode) eval(*evaluator) float64 { return c.value }
func (c *constNode) children() []Node        { return nil }

func (c *constNode) String() string {
	return formatFloat(c.value)
}

type varNode struct {
	name string
}

func (v *varNode) children() []Node { return nil }
func (v *varNode) String() string   { return v.name }

func (v *varNode) eval(ev *evaluator) float64 {
	if ev.env == nil {
		return math.NaN()
	}

	value, ok := ev.env.Lookup(v.name)
	if !ok {
		return math.NaN()
	}

	return value
}

// opNode applies an operator to a fixed list of arguments.
type opNode struct {
	op   *operator
	args []Node
}

func (o *opNode) children() []Node { return o.args }

func (o *opNode) eval(ev *evaluator) float64 {
	values := make([]float64, len(o.args))
	for idx, arg := range o.args {
		values[idx] = ev.eval(arg)
	}

	return o.op.apply(values)
}

func (o *opNode) String() string {
	parts := make([]string, len(o.args))
	for idx, arg := range o.args {
		parts[idx] = arg.String()
	}

	if o.op.infix != "" {
		return "(" + strings.Join(parts, " "+o.op.infix+" ") + ")"
	}

	return o.op.name + "(" + strings.Join(parts, ", ") + ")"
}

// condNode evaluates only the branch selected by cond.
type condNode struct {
	cond, ifTrue, ifFalse Node
}

func (c *condNode) children() []Node {
	return []Node{c.cond, c.ifTrue, c.ifFalse}
}

func (c *condNode) eval(ev *evaluator) float64 {
	if ev.eval(c.cond) != 0 {
		return ev.eval(c.ifTrue)
	}

	return ev.eval(c.ifFalse)
}

func (c *condNode) String() string {
	return "cond(" + c.cond.String() + ", " + c.ifTrue.String() + ", " + c.ifFalse.String() + ")"
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
