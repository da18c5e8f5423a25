package arith

import "math"

// Float evaluates all operations eagerly on float64 values.
// Undefined results follow IEEE-754 and are returned as Inf or NaN.
type Float struct{}

var _ Arith[float64] = Float{}

func (Float) Const(v float64) float64 {
	return v
}

func (Float) Add(xs ...float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum
}

func (Float) Multiply(xs ...float64) float64 {
	product := 1.0
	for _, x := range xs {
		product *= x
	}

	return product
}

func (Float) Subtract(a, b float64) float64 {
	return a - b
}

func (Float) Divide(a, b float64) float64 {
	return a / b
}

func (Float) Pow(base, exp float64) float64 {
	return math.Pow(base, exp)
}

func (Float) Sqrt(x float64) float64 {
	return math.Sqrt(x)
}

func (Float) Sin(x float64) float64 {
	return math.Sin(x)
}

func (Float) Cos(x float64) float64 {
	return math.Cos(x)
}

func (Float) Tan(x float64) float64 {
	return math.Tan(x)
}

func (Float) Atan2(y, x float64) float64 {
	return math.Atan2(y, x)
}

func (Float) Equal(a, b float64) float64 {
	if a == b {
		return 1
	}

	return 0
}

// Cond treats NaN as true, as NaN is not equal to zero.
func (Float) Cond(cond, ifTrue, ifFalse float64) float64 {
	if cond != 0 {
		return ifTrue
	}

	return ifFalse
}
