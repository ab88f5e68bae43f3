package quadrature

import "math"

// TetrahedronRule returns a symmetric rule over the unit right
// tetrahedron {x, y, z ≥ 0, x+y+z ≤ 1}. Supported counts are
// {1, 4, 5, 15}, with degrees of exactness {1, 2, 3, 5}. The 5-point
// rule carries a negative centroid weight of -2/15; this is the
// correct optimal-order rule, not a sign error.
func TetrahedronRule(n int) (*Rule, error) {
	var x, y, z, w []float64
	var degree int

	switch n {
	case 1:
		x = []float64{1.0 / 4}
		y = []float64{1.0 / 4}
		z = []float64{1.0 / 4}
		w = []float64{1.0 / 6}
		degree = 1

	case 4:
		a := (5 - math.Sqrt(5)) / 20
		b := (5 + 3*math.Sqrt(5)) / 20
		x = []float64{a, a, a, b}
		y = []float64{a, a, b, a}
		z = []float64{a, b, a, a}
		w = []float64{1.0 / 24, 1.0 / 24, 1.0 / 24, 1.0 / 24}
		degree = 2

	case 5:
		const (
			a = 1.0 / 4
			b = 1.0 / 6
			c = 1.0 / 2
		)
		x = []float64{a, b, b, b, c}
		y = []float64{a, b, b, c, b}
		z = []float64{a, b, c, b, b}
		w = []float64{-2.0 / 15, 3.0 / 40, 3.0 / 40, 3.0 / 40, 3.0 / 40}
		degree = 3

	case 15:
		// Centroid, two √15-based quadruplets and one sextet.
		s15 := math.Sqrt(15)
		a := 1.0 / 4
		b1 := (7 + s15) / 34
		b2 := (7 - s15) / 34
		c1 := (13 - 3*s15) / 34
		c2 := (13 + 3*s15) / 34
		d := (5 - s15) / 20
		e := (5 + s15) / 20

		x = []float64{a, b1, b1, b1, c1, b2, b2, b2, c2, d, d, e, d, e, e}
		y = []float64{a, b1, b1, c1, b1, b2, b2, c2, b2, d, e, d, e, d, e}
		z = []float64{a, b1, c1, b1, b1, b2, c2, b2, b2, e, d, d, e, e, d}

		p1 := 8.0 / 405
		p2 := (2665 - 14*s15) / 226800
		p3 := (2665 + 14*s15) / 226800
		p4 := 5.0 / 567
		w = []float64{p1, p2, p2, p2, p2, p3, p3, p3, p3, p4, p4, p4, p4, p4, p4}
		degree = 5

	default:
		return nil, errUnsupportedCount("tetrahedron", n)
	}

	return assemble(degree, w, x, y, z), nil
}
