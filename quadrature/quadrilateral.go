package quadrature

import "math"

// QuadrilateralRule returns a tensor-product Gauss rule on the
// reference square [-1,1]^2. Supported counts are {4, 9}: the 4-point
// rule uses the 2-point Gauss abscissae ±1/√3 on each axis and the
// 9-point rule the 3-point abscissae {-√(3/5), 0, √(3/5)} with axis
// weights {5/9, 8/9, 5/9}.
func QuadrilateralRule(n int) (*Rule, error) {
	var ksi, eta, w []float64
	var degree int

	switch n {
	case 4:
		a := 1 / math.Sqrt(3)
		ksi = []float64{-a, a, a, -a}
		eta = []float64{-a, -a, a, a}
		w = []float64{1, 1, 1, 1}
		degree = 3

	case 9:
		a := math.Sqrt(3.0 / 5)
		ksi = []float64{-a, a, a, -a, 0, a, 0, -a, 0}
		eta = []float64{-a, -a, a, a, -a, 0, a, 0, 0}
		w = []float64{
			25.0 / 81, 25.0 / 81, 25.0 / 81, 25.0 / 81,
			40.0 / 81, 40.0 / 81, 40.0 / 81, 40.0 / 81,
			64.0 / 81,
		}
		degree = 5

	default:
		return nil, errUnsupportedCount("quadrilateral", n)
	}

	return assemble(degree, w, ksi, eta), nil
}
