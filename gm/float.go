package gm

import "math"

// TransformPoint applies the affine transform m to the point p.
func TransformPoint(m Mat3[float64], p Vec) Vec {
	return Vec{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

// TransformVec applies m to a direction. Unlike TransformPoint
// the translation of m is not applied.
func TransformVec(m Mat3[float64], v Vec) Vec {
	return Vec{
		X: m[0][0]*v.X + m[0][1]*v.Y,
		Y: m[1][0]*v.X + m[1][1]*v.Y,
	}
}

// TransformRect returns the bounding rectangle of the four transformed corners of r.
func TransformRect(m Mat3[float64], r Rect) Rect {
	corners := [4]Vec{r.TopLeft(), r.TopRight(), r.BottomLeft(), r.BottomRight()}

	bounds := RectWithPoints(TransformPoint(m, corners[0]), TransformPoint(m, corners[1]))
	for _, corner := range corners[2:] {
		bounds = bounds.Extend(TransformPoint(m, corner))
	}

	return bounds
}

// ApproxEqual reports whether all elements of a and b differ by at most epsilon.
func ApproxEqual(a, b Mat3[float64], epsilon float64) bool {
	for row := range 3 {
		for col := range 3 {
			if math.Abs(a[row][col]-b[row][col]) > epsilon {
				return false
			}
		}
	}

	return true
}
