package gm

import (
	"github.com/oliverbestmann/xform/arith"
)

// Vec3 is a row or a column of a Mat3.
type Vec3[T any] [3]T

// Mat3 is a 3x3 matrix stored as three rows. The third column holds
// the translation of an affine transform.
type Mat3[T any] [3]Vec3[T]

// Identity3 returns the identity matrix.
func Identity3[T any](ar arith.Arith[T]) Mat3[T] {
	zero, one := ar.Const(0), ar.Const(1)

	return Mat3[T]{
		{one, zero, zero},
		{zero, one, zero},
		{zero, zero, one},
	}
}

// Dot3 calculates the dot product of a row and a column vector.
func Dot3[T any](ar arith.Arith[T], row, col Vec3[T]) T {
	return ar.Add(
		ar.Multiply(row[0], col[0]),
		ar.Multiply(row[1], col[1]),
		ar.Multiply(row[2], col[2]),
	)
}

// MulVec3 multiplies the matrix m with the column vector v.
func MulVec3[T any](ar arith.Arith[T], m Mat3[T], v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		Dot3(ar, m[0], v),
		Dot3(ar, m[1], v),
		Dot3(ar, m[2], v),
	}
}

// Columns returns the columns of m.
func Columns[T any](m Mat3[T]) [3]Vec3[T] {
	return [3]Vec3[T]{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Mul3 returns the matrix product a × b. Transforming a point by the
// result is the same as transforming it by b first and by a second.
func Mul3[T any](ar arith.Arith[T], a, b Mat3[T]) Mat3[T] {
	cols := Columns(b)

	var result Mat3[T]
	for row := range 3 {
		for col := range 3 {
			result[row][col] = Dot3(ar, a[row], cols[col])
		}
	}

	return result
}

// MapMat3 applies fn to every element of m.
func MapMat3[T, U any](m Mat3[T], fn func(T) U) Mat3[U] {
	var result Mat3[U]
	for row := range 3 {
		for col := range 3 {
			result[row][col] = fn(m[row][col])
		}
	}

	return result
}
