// Package element defines the closed catalogue of reference element
// types supported by the toolkit, together with their shape and node
// metadata. Mesh import, assembly and the quadrature engine all key off
// this catalogue.
package element

import "fmt"

// Dimensionality represents the spatial dimension of an element
type Dimensionality uint8

const (
	D1 Dimensionality = iota + 1 // 1D elements (segments)
	D2                           // 2D elements (triangles, quadrilaterals)
	D3                           // 3D elements (tetrahedra, hexahedra, prisms)
)

// GeometryType identifies the reference shape family of an element
type GeometryType uint8

const (
	Line      GeometryType = iota // Segment on [-1,1]
	Tri                           // Unit right triangle
	Rectangle                     // Quadrilateral on [-1,1]^2
	Tet                           // Unit right tetrahedron
	Hex                           // Hexahedron on [-1,1]^3
	Prism                         // Triangular prism (wedge)
)

func (g GeometryType) String() string {
	switch g {
	case Line:
		return "line"
	case Tri:
		return "triangle"
	case Rectangle:
		return "quadrilateral"
	case Tet:
		return "tetrahedron"
	case Hex:
		return "hexahedron"
	case Prism:
		return "prism"
	}
	return fmt.Sprintf("GeometryType(%d)", uint8(g))
}

// ElemType identifies a concrete element type: a shape family at a
// fixed interpolation order, hence a fixed node count.
type ElemType uint8

const (
	Seg2 ElemType = iota // 2-node linear segment
	Seg3                 // 3-node quadratic segment
	Seg4                 // 4-node cubic segment
	Tri3                 // 3-node linear triangle
	Tri6                 // 6-node quadratic triangle
	Tri10                // 10-node cubic triangle
	Quad4                // 4-node bilinear quadrilateral
	Quad8                // 8-node serendipity quadrilateral
	Tetra4               // 4-node linear tetrahedron
	Tetra10              // 10-node quadratic tetrahedron
	Hexa8                // 8-node trilinear hexahedron
	Hexa20               // 20-node serendipity hexahedron
	Prism6               // 6-node linear prism
	Prism15              // 15-node quadratic prism

	numElemTypes
)

// Properties contains metadata describing an element type
type Properties struct {
	Name       string         // Full descriptive name (e.g., "Quadratic Triangle")
	ShortName  string         // Abbreviated name (e.g., "TRI6")
	Type       GeometryType   // Element shape family
	Order      int            // Polynomial interpolation order
	Np         int            // Total number of nodes in the element
	NVp        int            // Number of vertex nodes (equals number of corners)
	NEdges     int            // Number of edges
	NFaces     int            // Number of faces
	Dimensions Dimensionality // Spatial dimension (1D, 2D, or 3D)
}

var properties = [numElemTypes]Properties{
	Seg2:    {"Linear Segment", "SEG2", Line, 1, 2, 2, 1, 0, D1},
	Seg3:    {"Quadratic Segment", "SEG3", Line, 2, 3, 2, 1, 0, D1},
	Seg4:    {"Cubic Segment", "SEG4", Line, 3, 4, 2, 1, 0, D1},
	Tri3:    {"Linear Triangle", "TRI3", Tri, 1, 3, 3, 3, 1, D2},
	Tri6:    {"Quadratic Triangle", "TRI6", Tri, 2, 6, 3, 3, 1, D2},
	Tri10:   {"Cubic Triangle", "TRI10", Tri, 3, 10, 3, 3, 1, D2},
	Quad4:   {"Bilinear Quadrilateral", "QUAD4", Rectangle, 1, 4, 4, 4, 1, D2},
	Quad8:   {"Serendipity Quadrilateral", "QUAD8", Rectangle, 2, 8, 4, 4, 1, D2},
	Tetra4:  {"Linear Tetrahedron", "TETRA4", Tet, 1, 4, 4, 6, 4, D3},
	Tetra10: {"Quadratic Tetrahedron", "TETRA10", Tet, 2, 10, 4, 6, 4, D3},
	Hexa8:   {"Trilinear Hexahedron", "HEXA8", Hex, 1, 8, 8, 12, 6, D3},
	Hexa20:  {"Serendipity Hexahedron", "HEXA20", Hex, 2, 20, 8, 12, 6, D3},
	Prism6:  {"Linear Prism", "PRISM6", Prism, 1, 6, 6, 9, 5, D3},
	Prism15: {"Quadratic Prism", "PRISM15", Prism, 2, 15, 6, 9, 5, D3},
}

// Properties returns the metadata for the element type.
func (e ElemType) Properties() Properties {
	if e >= numElemTypes {
		panic(fmt.Sprintf("element: unknown element type %d", uint8(e)))
	}
	return properties[e]
}

// Geometry returns the reference shape family of the element type.
func (e ElemType) Geometry() GeometryType { return e.Properties().Type }

// Dimensions returns the spatial dimension of the element type.
func (e ElemType) Dimensions() Dimensionality { return e.Properties().Dimensions }

func (e ElemType) String() string { return e.Properties().ShortName }

// ParseElemType resolves a short name such as "TRI6" to its ElemType.
func ParseElemType(name string) (ElemType, error) {
	for e := ElemType(0); e < numElemTypes; e++ {
		if properties[e].ShortName == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("element: unknown element type %q", name)
}

// Types returns every element type in the catalogue, in declaration
// order.
func Types() []ElemType {
	all := make([]ElemType, numElemTypes)
	for e := ElemType(0); e < numElemTypes; e++ {
		all[e] = e
	}
	return all
}

// TypesByDimension returns the element types of the given spatial
// dimension, in declaration order.
func TypesByDimension(d Dimensionality) []ElemType {
	var out []ElemType
	for e := ElemType(0); e < numElemTypes; e++ {
		if properties[e].Dimensions == d {
			out = append(out, e)
		}
	}
	return out
}
