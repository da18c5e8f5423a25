package gm

// Lerp does a linear interpolation between lhs and rhs using
// the factor f. A value for f of 0 returns lhs, a value of 1 returns rhs.
func Lerp(f float64, lhs, rhs float64) float64 {
	return (rhs-lhs)*f + lhs
}
