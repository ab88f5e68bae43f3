package quadrature

// TriangleRule returns a symmetric rule over the unit right triangle
// {ξ ≥ 0, η ≥ 0, ξ+η ≤ 1}. Supported counts are {1, 3, 6, 7, 12},
// with degrees of exactness {1, 2, 3, 4, 5}. The tables are the
// classical Hammer–Marlowe–Stroud / Dunavant point sets; the tabulated
// constants are normative and must not be re-derived.
func TriangleRule(n int) (*Rule, error) {
	var ksi, eta, w []float64
	var degree int

	switch n {
	case 1:
		ksi = []float64{1.0 / 3}
		eta = []float64{1.0 / 3}
		w = []float64{1.0 / 2}
		degree = 1

	case 3:
		ksi = []float64{1.0 / 6, 2.0 / 3, 1.0 / 6}
		eta = []float64{1.0 / 6, 1.0 / 6, 2.0 / 3}
		w = []float64{1.0 / 6, 1.0 / 6, 1.0 / 6}
		degree = 2

	case 6:
		const (
			a  = 0.445948490915965
			b  = 0.091576213509771
			p1 = 0.11169079483905
			p2 = 0.0549758718227661
		)
		ksi = []float64{b, 1 - 2*b, b, a, a, 1 - 2*a}
		eta = []float64{b, b, 1 - 2*b, 1 - 2*a, a, a}
		w = []float64{p2, p2, p2, p1, p1, p1}
		degree = 3

	case 7:
		// Centroid plus two symmetric triplets.
		const (
			a  = 0.470142064105115
			b  = 0.101286507323456
			p1 = 0.066197076394253
			p2 = 0.062969590272413
		)
		ksi = []float64{1.0 / 3, a, 1 - 2*a, a, b, 1 - 2*b, b}
		eta = []float64{1.0 / 3, a, a, 1 - 2*a, b, b, 1 - 2*b}
		w = []float64{9.0 / 80, p1, p1, p1, p2, p2, p2}
		degree = 4

	case 12:
		const (
			a  = 0.063089014491502
			b  = 0.249286745170910
			c  = 0.310352451033785
			d  = 0.053145049844816
			p1 = 0.025422453185103
			p2 = 0.058393137863189
			p3 = 0.041425537809187
		)
		ksi = []float64{a, 1 - 2*a, a, b, 1 - 2*b, b, c, d, 1 - c - d, 1 - c - d, c, d}
		eta = []float64{a, a, 1 - 2*a, b, b, 1 - 2*b, d, c, c, d, 1 - c - d, 1 - c - d}
		w = []float64{p1, p1, p1, p2, p2, p2, p3, p3, p3, p3, p3, p3}
		degree = 5

	default:
		return nil, errUnsupportedCount("triangle", n)
	}

	return assemble(degree, w, ksi, eta), nil
}
