// Package arith defines the primitive operations every operand supports.
//
// Code that is written against Arith works for concrete numbers (see Float)
// as well as for nodes of a deferred computation graph (see package expr).
package arith

// Arith is the set of primitive operations over an operand type T.
// Implementations must be pure: inputs are never modified and every call
// returns a new operand.
type Arith[T any] interface {
	// Const lifts a concrete number into the operand domain.
	Const(v float64) T

	// Add returns the sum of all operands. The empty sum is zero.
	Add(xs ...T) T

	// Multiply returns the product of all operands. The empty product is one.
	Multiply(xs ...T) T

	Subtract(a, b T) T
	Divide(a, b T) T
	Pow(base, exp T) T
	Sqrt(x T) T
	Sin(x T) T
	Cos(x T) T
	Tan(x T) T
	Atan2(y, x T) T

	// Equal returns a boolean valued operand, one if a equals b, zero otherwise.
	Equal(a, b T) T

	// Cond selects ifTrue if cond is non-zero, ifFalse otherwise.
	Cond(cond, ifTrue, ifFalse T) T
}

// Neg returns -x.
func Neg[T any](ar Arith[T], x T) T {
	return ar.Multiply(ar.Const(-1), x)
}

// Half returns x / 2.
func Half[T any](ar Arith[T], x T) T {
	return ar.Divide(x, ar.Const(2))
}

// Square returns x².
func Square[T any](ar Arith[T], x T) T {
	return ar.Pow(x, ar.Const(2))
}
