package solar

import "math"

/*
Yield factor of a tilted array.

	Args:
		tilt: tilt angle, degree
		optimum: optimum tilt angle, degree

	Returns:
		cos(|tilt - optimum|), -

	Note:
		The range is not clamped: deviations beyond 90 degrees give a negative factor.
*/
func TiltFactor(tilt, optimum float64) float64 {
	const to_rad = math.Pi / 180
	return math.Cos(math.Abs(tilt-optimum) * to_rad)
}
