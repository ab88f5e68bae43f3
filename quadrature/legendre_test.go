package quadrature

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// The Golub–Welsch points and weights must reproduce the closed-form
// Legendre roots to machine precision.
func TestGaussLegendreClosedForms(t *testing.T) {
	cases := []struct {
		n int
		x []float64
		w []float64
	}{
		{
			n: 1,
			x: []float64{0},
			w: []float64{2},
		},
		{
			n: 2,
			x: []float64{-1 / math.Sqrt(3), 1 / math.Sqrt(3)},
			w: []float64{1, 1},
		},
		{
			n: 3,
			x: []float64{-math.Sqrt(3.0 / 5), 0, math.Sqrt(3.0 / 5)},
			w: []float64{5.0 / 9, 8.0 / 9, 5.0 / 9},
		},
		{
			n: 4,
			x: []float64{
				-math.Sqrt((3 + 2*math.Sqrt(6.0/5)) / 7),
				-math.Sqrt((3 - 2*math.Sqrt(6.0/5)) / 7),
				math.Sqrt((3 - 2*math.Sqrt(6.0/5)) / 7),
				math.Sqrt((3 + 2*math.Sqrt(6.0/5)) / 7),
			},
			w: []float64{
				(18 - math.Sqrt(30)) / 36,
				(18 + math.Sqrt(30)) / 36,
				(18 + math.Sqrt(30)) / 36,
				(18 - math.Sqrt(30)) / 36,
			},
		},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("n=%d", tc.n), func(t *testing.T) {
			x, w := gaussLegendre(tc.n)
			require.Len(t, x, tc.n)
			require.Len(t, w, tc.n)
			for i := range tc.x {
				assert.InDelta(t, tc.x[i], x[i], 1e-14)
				assert.InDelta(t, tc.w[i], w[i], 1e-14)
			}
		})
	}
}

func TestGaussLegendreStructure(t *testing.T) {
	for _, n := range []int{2, 3, 4, 6} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			x, w := gaussLegendre(n)

			assert.True(t, sort.Float64sAreSorted(x), "points ascending")
			assert.InDelta(t, 2, floats.Sum(w), 1e-14)

			// Symmetry about the origin.
			for i := 0; i < n; i++ {
				assert.InDelta(t, -x[n-1-i], x[i], 1e-14)
				assert.InDelta(t, w[n-1-i], w[i], 1e-14)
				assert.Greater(t, w[i], 0.0)
			}
		})
	}
}
