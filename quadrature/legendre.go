package quadrature

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// lineCounts is the registered set of Gauss–Legendre point counts used
// by the segment elements.
var lineCounts = map[int]bool{1: true, 2: true, 3: true, 4: true, 6: true}

// LineRule returns the n-point Gauss–Legendre rule on [-1,1].
// Supported counts are {1, 2, 3, 4, 6}; an n-point rule integrates
// polynomials up to degree 2n-1 exactly.
func LineRule(n int) (*Rule, error) {
	if !lineCounts[n] {
		return nil, errUnsupportedCount("line", n)
	}
	x, w := gaussLegendre(n)
	return assemble(2*n-1, w, x), nil
}

// gaussLegendre computes the points and weights of the n-point
// Gauss–Legendre rule via Golub–Welsch: the points are the eigenvalues
// of the symmetric tridiagonal recurrence matrix of the Legendre
// polynomials, and each weight is the squared first component of the
// corresponding normalized eigenvector scaled by the total mass of the
// weight function (2 on [-1,1]).
func gaussLegendre(n int) (x, w []float64) {
	if n < 1 {
		panic("quadrature: point count must be positive")
	}
	if n == 1 {
		return []float64{0}, []float64{2}
	}

	// Off-diagonal of the Legendre three-term recurrence:
	// b_k = k/sqrt(4k^2-1). The diagonal is zero.
	offDiag := make([]float64, n-1)
	for k := 1; k < n; k++ {
		fk := float64(k)
		offDiag[k-1] = fk / math.Sqrt(4*fk*fk-1)
	}

	J := newSymTriDiagonal(make([]float64, n), offDiag)
	var eig mat.EigenSym
	if !eig.Factorize(J, true) {
		panic("quadrature: eigenvalue decomposition failed")
	}
	x = eig.Values(nil)

	V := mat.NewDense(n, n, nil)
	eig.VectorsTo(V)
	w = make([]float64, n)
	for i := 0; i < n; i++ {
		v := V.At(0, i)
		w[i] = 2 * v * v
	}
	return x, w
}

// newSymTriDiagonal builds a symmetric tridiagonal matrix from its
// main diagonal d0 and first off-diagonal d1.
func newSymTriDiagonal(d0, d1 []float64) *mat.SymDense {
	n := len(d0)
	T := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		T.SetSym(i, i, d0[i])
		if i < n-1 {
			T.SetSym(i, i+1, d1[i])
		}
	}
	return T
}
