// Package imageaff converts between affine matrices and the f64.Aff3 matrices
// used by golang.org/x/image/draw.
package imageaff

import (
	"github.com/oliverbestmann/xform/gm"
	"golang.org/x/image/math/f64"
)

// ToAff3 returns the upper two rows of m. The bottom row of m is ignored.
func ToAff3(m gm.Mat3[float64]) f64.Aff3 {
	return f64.Aff3{
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
	}
}

func FromAff3(aff f64.Aff3) gm.Mat3[float64] {
	return gm.Mat3[float64]{
		{aff[0], aff[1], aff[2]},
		{aff[3], aff[4], aff[5]},
		{0, 0, 1},
	}
}
