package quadrature

import "math"

// PrismRule returns a rule over the reference prism: the unit right
// triangle in-plane, extruded over [-1,1] through the thickness.
// Supported counts are {6, 8}, built as the product of a triangle rule
// (3 or 4 points in-plane) with the 2-point Gauss rule through the
// thickness. The 8-point rule inherits the negative centroid weight of
// the degree-3 triangle rule.
//
// The tables are computed with the through-thickness Gauss direction
// on the first axis (the Code Aster layout) and remapped afterwards;
// see remapPrismAxes.
func PrismRule(n int) (*Rule, error) {
	a := 1 / math.Sqrt(3)
	var tx, ty, tz, w []float64
	var degree int

	switch n {
	case 6:
		tx = []float64{-a, -a, -a, a, a, a}
		ty = []float64{0.5, 0, 0.5, 0.5, 0, 0.5}
		tz = []float64{0.5, 0.5, 0, 0.5, 0.5, 0}
		w = []float64{1.0 / 6, 1.0 / 6, 1.0 / 6, 1.0 / 6, 1.0 / 6, 1.0 / 6}
		degree = 2

	case 8:
		tx = []float64{-a, -a, -a, -a, a, a, a, a}
		ty = []float64{1.0 / 3, 0.6, 0.2, 0.2, 1.0 / 3, 0.6, 0.2, 0.2}
		tz = []float64{1.0 / 3, 0.2, 0.6, 0.2, 1.0 / 3, 0.2, 0.6, 0.2}
		w = []float64{
			-27.0 / 96, 25.0 / 96, 25.0 / 96, 25.0 / 96,
			-27.0 / 96, 25.0 / 96, 25.0 / 96, 25.0 / 96,
		}
		degree = 3

	default:
		return nil, errUnsupportedCount("prism", n)
	}

	x, y, z := remapPrismAxes(tx, ty, tz)
	return assemble(degree, w, x, y, z), nil
}

// remapPrismAxes reassigns the computed axis roles to the meshing
// convention consumed by assembly: the tables place the
// through-thickness direction on the first axis and the triangle on
// the last two, while assembly expects the triangle on (x, y) and the
// thickness on z. Skipping this remap silently transposes stiffness
// contributions, so it is kept as a separate, independently testable
// step.
func remapPrismAxes(tx, ty, tz []float64) (x, y, z []float64) {
	return ty, tz, tx
}
