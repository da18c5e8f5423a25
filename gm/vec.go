package gm

// Vec is a point or a direction in 2d space.
type Vec struct {
	X, Y float64
}

var VecZero = Vec{}

func (v Vec) Sub(other Vec) Vec {
	v.X -= other.X
	v.Y -= other.Y
	return v
}
