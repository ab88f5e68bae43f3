package quadrature

import "math"

// HexahedronRule returns a tensor-product Gauss rule on the reference
// cube [-1,1]^3. Supported counts are {8, 27}, built from the 1D
// 2-point (±1/√3, weight 1) and 3-point ({0, ±√(3/5)}, weights
// {5/9, 8/9, 5/9}) rules across the three axes.
func HexahedronRule(n int) (*Rule, error) {
	var abscissae, axisWeights []float64
	var degree int

	switch n {
	case 8:
		a := 1 / math.Sqrt(3)
		abscissae = []float64{-a, a}
		axisWeights = []float64{1, 1}
		degree = 3

	case 27:
		a := math.Sqrt(3.0 / 5)
		abscissae = []float64{-a, 0, a}
		axisWeights = []float64{5.0 / 9, 8.0 / 9, 5.0 / 9}
		degree = 5

	default:
		return nil, errUnsupportedCount("hexahedron", n)
	}

	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	w := make([]float64, n)
	m := len(abscissae)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			for k := 0; k < m; k++ {
				idx := (i*m+j)*m + k
				x[idx] = abscissae[i]
				y[idx] = abscissae[j]
				z[idx] = abscissae[k]
				w[idx] = axisWeights[i] * axisWeights[j] * axisWeights[k]
			}
		}
	}

	return assemble(degree, w, x, y, z), nil
}
