package transform

import (
	"github.com/oliverbestmann/xform/arith"
	"github.com/oliverbestmann/xform/gm"
)

// Components are the values recovered from an affine matrix by Decompose.
type Components[T any] struct {
	TranslateX T
	TranslateY T
	RotateZ    T
	ScaleX     T
	ScaleY     T

	// Scale equals ScaleX if ScaleX and ScaleY are equal, one otherwise.
	Scale T

	// SkewX is the angle of the rotation that is applied after scaling.
	// There is no matching SkewY component.
	SkewX T
}

// Decompose splits the linear part of the affine matrix m into a rotation by
// RotateZ, a scale by ScaleX and ScaleY and a second rotation by SkewX, and
// copies the translation.
//
// Only the upper two rows of m are read. The bottom row is assumed to be
// [0, 0, 1]. Degenerate matrices are not special cased, the results follow
// whatever the operand arithmetic produces.
func Decompose[T any](ar arith.Arith[T], m gm.Mat3[T]) Components[T] {
	a, b := m[0][0], m[1][0]
	c, d := m[0][1], m[1][1]

	e := arith.Half(ar, ar.Add(a, d))
	f := arith.Half(ar, ar.Subtract(a, d))
	g := arith.Half(ar, ar.Add(c, b))
	h := arith.Half(ar, ar.Subtract(c, b))

	q := ar.Sqrt(ar.Add(arith.Square(ar, e), arith.Square(ar, h)))
	r := ar.Sqrt(ar.Add(arith.Square(ar, f), arith.Square(ar, g)))

	scaleX := ar.Add(q, r)
	scaleY := ar.Subtract(q, r)

	a1 := ar.Atan2(g, f)
	a2 := ar.Atan2(h, e)

	theta := arith.Half(ar, ar.Subtract(a2, a1))
	phi := arith.Half(ar, ar.Add(a2, a1))

	return Components[T]{
		TranslateX: m[0][2],
		TranslateY: m[1][2],
		RotateZ:    arith.Neg(ar, phi),
		ScaleX:     scaleX,
		ScaleY:     scaleY,
		Scale:      ar.Cond(ar.Equal(scaleX, scaleY), scaleX, ar.Const(1)),
		SkewX:      arith.Neg(ar, theta),
	}
}

// Transforms returns a transform list that composes to the matrix the
// components were decomposed from.
func (c Components[T]) Transforms() []Transform[T] {
	return []Transform[T]{
		TranslateX[T]{X: c.TranslateX},
		TranslateY[T]{Y: c.TranslateY},
		RotateZ[T]{Angle: c.SkewX},
		ScaleX[T]{Factor: c.ScaleX},
		ScaleY[T]{Factor: c.ScaleY},
		RotateZ[T]{Angle: c.RotateZ},
	}
}

// MapComponents applies fn to every component.
func MapComponents[T, U any](c Components[T], fn func(T) U) Components[U] {
	return Components[U]{
		TranslateX: fn(c.TranslateX),
		TranslateY: fn(c.TranslateY),
		RotateZ:    fn(c.RotateZ),
		ScaleX:     fn(c.ScaleX),
		ScaleY:     fn(c.ScaleY),
		Scale:      fn(c.Scale),
		SkewX:      fn(c.SkewX),
	}
}
