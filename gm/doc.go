// Package gm (stands for geometry math) provides the matrix algebra used to
// compose and decompose 2d transforms.
//
// Vec3 and Mat3 are generic over the operand type. All arithmetic on them goes
// through an arith.Arith, so the same functions work on float64 values as well
// as on nodes of an expression graph.
//
// For plain float64 values there are a few more helpers: a 2d point type Vec,
// an axis aligned Rect and a type named Rad to represent angle values in radian.
package gm
