// Package cpx converts between affine matrices and chipmunk transforms.
package cpx

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/xform/gm"
)

// ToTransform converts the affine matrix m into a chipmunk transform.
// The bottom row of m is ignored.
func ToTransform(m gm.Mat3[float64]) cp.Transform {
	return cp.NewTransformTranspose(
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
	)
}

// FromTransform converts a chipmunk transform into an affine matrix.
func FromTransform(t cp.Transform) gm.Mat3[float64] {
	xAxis := t.Vect(cp.Vector{X: 1})
	yAxis := t.Vect(cp.Vector{Y: 1})
	origin := t.Point(cp.Vector{})

	return gm.Mat3[float64]{
		{xAxis.X, yAxis.X, origin.X},
		{xAxis.Y, yAxis.Y, origin.Y},
		{0, 0, 1},
	}
}
