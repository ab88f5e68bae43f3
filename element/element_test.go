package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertiesConsistency(t *testing.T) {
	geometryDims := map[GeometryType]Dimensionality{
		Line:      D1,
		Tri:       D2,
		Rectangle: D2,
		Tet:       D3,
		Hex:       D3,
		Prism:     D3,
	}

	for _, e := range Types() {
		t.Run(e.String(), func(t *testing.T) {
			p := e.Properties()

			assert.NotEmpty(t, p.Name)
			assert.NotEmpty(t, p.ShortName)
			assert.GreaterOrEqual(t, p.Order, 1)
			assert.GreaterOrEqual(t, p.Np, p.NVp)
			assert.Positive(t, p.NVp)
			assert.Equal(t, geometryDims[p.Type], p.Dimensions)
		})
	}
}

func TestParseElemTypeRoundTrip(t *testing.T) {
	for _, e := range Types() {
		parsed, err := ParseElemType(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, parsed)
	}
}

func TestParseElemTypeUnknown(t *testing.T) {
	_, err := ParseElemType("PYRA5")
	assert.Error(t, err)
}

func TestTypesByDimensionPartitionsCatalogue(t *testing.T) {
	total := 0
	for _, d := range []Dimensionality{D1, D2, D3} {
		types := TypesByDimension(d)
		for _, e := range types {
			assert.Equal(t, d, e.Dimensions())
		}
		total += len(types)
	}
	assert.Equal(t, len(Types()), total)

	assert.Equal(t, []ElemType{Seg2, Seg3, Seg4}, TypesByDimension(D1))
}

func TestNodeCounts(t *testing.T) {
	want := map[ElemType]int{
		Seg2: 2, Seg3: 3, Seg4: 4,
		Tri3: 3, Tri6: 6, Tri10: 10,
		Quad4: 4, Quad8: 8,
		Tetra4: 4, Tetra10: 10,
		Hexa8: 8, Hexa20: 20,
		Prism6: 6, Prism15: 15,
	}
	for e, np := range want {
		assert.Equal(t, np, e.Properties().Np, e.String())
	}
}
