// Package transform composes lists of 2d transforms into a single affine
// matrix and decomposes affine matrices back into transform components.
//
// All functions are generic over the operand type and do their arithmetic
// through an arith.Arith. Use arith.Float to compute with float64 values
// directly, or expr.Algebra to build an expression graph that can be
// evaluated later, e.g. once per animation frame.
package transform

import (
	"fmt"

	"github.com/oliverbestmann/xform/arith"
	"github.com/oliverbestmann/xform/gm"
	"github.com/oliverbestmann/xform/internal/assert"
)

// Transform is one of TranslateX, TranslateY, Scale, ScaleX, ScaleY,
// SkewX, SkewY, RotateZ or Rotate.
type Transform[T any] interface {
	fmt.Stringer

	Kind() Kind

	// Param returns the single parameter of the transform.
	Param() T

	isTransform()
}

type TranslateX[T any] struct{ X T }
type TranslateY[T any] struct{ Y T }

// Scale scales uniformly along both axes.
type Scale[T any] struct{ Factor T }
type ScaleX[T any] struct{ Factor T }
type ScaleY[T any] struct{ Factor T }

// SkewX shears along the x axis by the given angle.
type SkewX[T any] struct{ Angle T }

// SkewY shears along the y axis by the given angle.
type SkewY[T any] struct{ Angle T }

type RotateZ[T any] struct{ Angle T }

// Rotate is an alias for RotateZ.
type Rotate[T any] struct{ Angle T }

func (TranslateX[T]) Kind() Kind { return KindTranslateX }
func (TranslateY[T]) Kind() Kind { return KindTranslateY }
func (Scale[T]) Kind() Kind      { return KindScale }
func (ScaleX[T]) Kind() Kind     { return KindScaleX }
func (ScaleY[T]) Kind() Kind     { return KindScaleY }
func (SkewX[T]) Kind() Kind      { return KindSkewX }
func (SkewY[T]) Kind() Kind      { return KindSkewY }
func (RotateZ[T]) Kind() Kind    { return KindRotateZ }
func (Rotate[T]) Kind() Kind     { return KindRotate }

func (t TranslateX[T]) Param() T { return t.X }
func (t TranslateY[T]) Param() T { return t.Y }
func (t Scale[T]) Param() T      { return t.Factor }
func (t ScaleX[T]) Param() T     { return t.Factor }
func (t ScaleY[T]) Param() T     { return t.Factor }
func (t SkewX[T]) Param() T      { return t.Angle }
func (t SkewY[T]) Param() T      { return t.Angle }
func (t RotateZ[T]) Param() T    { return t.Angle }
func (t Rotate[T]) Param() T     { return t.Angle }

func (t TranslateX[T]) String() string { return format[T](t) }
func (t TranslateY[T]) String() string { return format[T](t) }
func (t Scale[T]) String() string      { return format[T](t) }
func (t ScaleX[T]) String() string     { return format[T](t) }
func (t ScaleY[T]) String() string     { return format[T](t) }
func (t SkewX[T]) String() string      { return format[T](t) }
func (t SkewY[T]) String() string      { return format[T](t) }
func (t RotateZ[T]) String() string    { return format[T](t) }
func (t Rotate[T]) String() string     { return format[T](t) }

func (TranslateX[T]) isTransform() {}
func (TranslateY[T]) isTransform() {}
func (Scale[T]) isTransform()      {}
func (ScaleX[T]) isTransform()     {}
func (ScaleY[T]) isTransform()     {}
func (SkewX[T]) isTransform()      {}
func (SkewY[T]) isTransform()      {}
func (RotateZ[T]) isTransform()    {}
func (Rotate[T]) isTransform()     {}

func format[T any](t Transform[T]) string {
	return fmt.Sprintf("%s(%v)", t.Kind(), t.Param())
}

// New returns the transform of the given kind with its parameter set to value.
func New[T any](kind Kind, value T) Transform[T] {
	switch kind {
	case KindTranslateX:
		return TranslateX[T]{X: value}
	case KindTranslateY:
		return TranslateY[T]{Y: value}
	case KindScale:
		return Scale[T]{Factor: value}
	case KindScaleX:
		return ScaleX[T]{Factor: value}
	case KindScaleY:
		return ScaleY[T]{Factor: value}
	case KindSkewX:
		return SkewX[T]{Angle: value}
	case KindSkewY:
		return SkewY[T]{Angle: value}
	case KindRotateZ:
		return RotateZ[T]{Angle: value}
	case KindRotate:
		return Rotate[T]{Angle: value}
	default:
		assert.Unreachable("transform kind", kind)
		return nil
	}
}

// Matrix returns the affine matrix of a single transform.
func Matrix[T any](ar arith.Arith[T], t Transform[T]) gm.Mat3[T] {
	m := gm.Identity3(ar)

	switch t := t.(type) {
	case TranslateX[T]:
		m[0][2] = t.X

	case TranslateY[T]:
		m[1][2] = t.Y

	case Scale[T]:
		m[0][0] = t.Factor
		m[1][1] = t.Factor

	case ScaleX[T]:
		m[0][0] = t.Factor

	case ScaleY[T]:
		m[1][1] = t.Factor

	case SkewX[T]:
		m[0][1] = ar.Tan(t.Angle)

	case SkewY[T]:
		m[1][0] = ar.Tan(t.Angle)

	case RotateZ[T]:
		m = rotation(ar, t.Angle)

	case Rotate[T]:
		m = rotation(ar, t.Angle)

	default:
		assert.Unreachable("transform", t)
	}

	return m
}

func rotation[T any](ar arith.Arith[T], angle T) gm.Mat3[T] {
	zero, one := ar.Const(0), ar.Const(1)
	sin, cos := ar.Sin(angle), ar.Cos(angle)

	return gm.Mat3[T]{
		{cos, arith.Neg(ar, sin), zero},
		{sin, cos, zero},
		{zero, zero, one},
	}
}

// Compose multiplies the matrices of all transforms in list order,
// starting with the identity. Earlier transforms in the list are applied
// to the coordinate system first.
func Compose[T any](ar arith.Arith[T], transforms []Transform[T]) gm.Mat3[T] {
	acc := gm.Identity3(ar)

	for _, t := range transforms {
		acc = gm.Mul3(ar, acc, Matrix(ar, t))
	}

	return acc
}
