// Package fixtures provides small, literal wireframes used to exercise
// the pipeline end to end: the scenarios named directly in spec.md §8
// (restored here from original_source/tests/test.rs, whose two small
// cases these reproduce exactly) and three Platonic-solid shells adapted
// from the teacher's builder.PlatonicSolid canonical edge sets, given
// concrete 3D coordinates since a Constructor in the teacher library
// builds an abstract string-keyed core.Graph, not a geometric one.
package fixtures

import "github.com/wireviz/polygonum/point"

// OpenBox is spec.md §8's S1: two adjoining bays sharing the edge
// (10,10,5)-(10,0,5), but only the first bay is closed. It
// contains exactly one closed face.
func OpenBox() []point.Segment {
	return []point.Segment{
		{U: point.Point{X: 0, Y: 0, Z: 0}, V: point.Point{X: 0, Y: 10, Z: 0}},
		{U: point.Point{X: 0, Y: 10, Z: 0}, V: point.Point{X: 10, Y: 10, Z: 5}},
		{U: point.Point{X: 10, Y: 10, Z: 5}, V: point.Point{X: 10, Y: 0, Z: 5}},
		{U: point.Point{X: 10, Y: 0, Z: 5}, V: point.Point{X: 0, Y: 0, Z: 0}},
		{U: point.Point{X: 10, Y: 10, Z: 5}, V: point.Point{X: 20, Y: 10, Z: 0}},
		{U: point.Point{X: 20, Y: 10, Z: 0}, V: point.Point{X: 20, Y: 0, Z: 0}},
	}
}

// TwoBays is spec.md §8's S2: OpenBox with its second bay closed by one
// additional segment. It contains exactly two closed faces.
func TwoBays() []point.Segment {
	return append(OpenBox(), point.Segment{
		U: point.Point{X: 20, Y: 0, Z: 0}, V: point.Point{X: 10, Y: 0, Z: 5},
	})
}

// DanglingLeaf is spec.md §8's S6: OpenBox with one extra segment to a
// new leaf vertex. Pruning removes the leaf, and the face count is
// unchanged from OpenBox (still exactly one).
func DanglingLeaf() []point.Segment {
	return append(OpenBox(), point.Segment{
		U: point.Point{X: 10, Y: 10, Z: 5}, V: point.Point{X: 100, Y: 100, Z: 100},
	})
}

// Tetrahedron returns the 4-vertex, 6-edge regular tetrahedron shell
// (K4), adapted from builder.PlatonicSolid(Tetrahedron, false)'s edge
// set with a regular tetrahedral embedding.
func Tetrahedron() []point.Segment {
	v := []point.Point{
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1},
		{X: -1, Y: 1, Z: -1},
		{X: -1, Y: -1, Z: 1},
	}
	pairs := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	return chordSegments(v, pairs)
}

// Cube returns the 8-vertex, 12-edge unit cube shell, adapted from
// builder.PlatonicSolid(Cube, false)'s bottom-cycle/verticals/top-cycle
// edge set.
func Cube() []point.Segment {
	v := []point.Point{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0}, // bottom face
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 0, Y: 1, Z: 1}, // top face
	}
	pairs := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // bottom cycle
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // verticals
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // top cycle
	}
	return chordSegments(v, pairs)
}

// Octahedron returns the 6-vertex, 12-edge regular octahedron shell,
// adapted from builder.PlatonicSolid(Octahedron, false)'s pole/equator
// edge set: two poles each connected to all four equatorial vertices,
// plus the equatorial 4-cycle.
func Octahedron() []point.Segment {
	v := []point.Point{
		{X: 0, Y: 0, Z: 1},  // 0: top pole
		{X: 0, Y: 0, Z: -1}, // 1: bottom pole
		{X: 1, Y: 0, Z: 0},  // 2: equator
		{X: -1, Y: 0, Z: 0}, // 3: equator
		{X: 0, Y: 1, Z: 0},  // 4: equator
		{X: 0, Y: -1, Z: 0}, // 5: equator
	}
	pairs := [][2]int{
		{0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 4}, {2, 5}, {3, 4}, {3, 5},
	}
	return chordSegments(v, pairs)
}

func chordSegments(vertices []point.Point, pairs [][2]int) []point.Segment {
	out := make([]point.Segment, len(pairs))
	for i, p := range pairs {
		out[i] = point.Segment{U: vertices[p[0]], V: vertices[p[1]]}
	}
	return out
}
