package pointgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wireviz/polygonum/point"
	"github.com/wireviz/polygonum/pointgraph"
)

func seg(ux, uy, uz, vx, vy, vz float64) point.Segment {
	return point.Segment{U: point.Point{X: ux, Y: uy, Z: uz}, V: point.Point{X: vx, Y: vy, Z: vz}}
}

func TestBuild_SymmetricNoSelfLoops(t *testing.T) {
	g := pointgraph.Build([]point.Segment{
		seg(0, 0, 0, 1, 0, 0),
		seg(1, 0, 0, 1, 1, 0),
	})
	a := point.Point{X: 0, Y: 0, Z: 0}
	b := point.Point{X: 1, Y: 0, Z: 0}
	c := point.Point{X: 1, Y: 1, Z: 0}

	assert.ElementsMatch(t, []point.Point{b}, g.Neighbors(a))
	assert.ElementsMatch(t, []point.Point{a, c}, g.Neighbors(b))
	assert.ElementsMatch(t, []point.Point{b}, g.Neighbors(c))
}

func TestBuild_DuplicateAndAntiparallelSegmentsAbsorbed(t *testing.T) {
	g := pointgraph.Build([]point.Segment{
		seg(0, 0, 0, 1, 0, 0),
		seg(0, 0, 0, 1, 0, 0), // duplicate
		seg(1, 0, 0, 0, 0, 0), // antiparallel duplicate
	})
	assert.Equal(t, 2, g.Len())
	a := point.Point{X: 0, Y: 0, Z: 0}
	assert.Len(t, g.Neighbors(a), 1)
}

func TestBuild_ZeroLengthSegmentTolerated(t *testing.T) {
	g := pointgraph.Build([]point.Segment{seg(1, 1, 1, 1, 1, 1)})
	assert.Equal(t, 0, g.Len())
}

func TestPrune_RemovesDanglingLeaf(t *testing.T) {
	// Square with one dangling edge off a corner.
	g := pointgraph.Build([]point.Segment{
		seg(0, 0, 0, 10, 0, 0),
		seg(10, 0, 0, 10, 10, 0),
		seg(10, 10, 0, 0, 10, 0),
		seg(0, 10, 0, 0, 0, 0),
		seg(10, 10, 0, 100, 100, 100), // dangling leaf
	})
	pruned := g.Prune()
	leaf := point.Point{X: 100, Y: 100, Z: 100}
	assert.False(t, pruned.HasPoint(leaf))
	assert.Equal(t, 4, pruned.Len())
}

func TestPrune_CascadesThroughDegreeTwoChain(t *testing.T) {
	// A--B--C--D is a pure chain: pruning must remove it entirely.
	g := pointgraph.Build([]point.Segment{
		seg(0, 0, 0, 1, 0, 0),
		seg(1, 0, 0, 2, 0, 0),
		seg(2, 0, 0, 3, 0, 0),
	})
	pruned := g.Prune()
	assert.Equal(t, 0, pruned.Len())
}

func TestPrune_IsIdempotent(t *testing.T) {
	g := pointgraph.Build([]point.Segment{
		seg(0, 0, 0, 10, 0, 0),
		seg(10, 0, 0, 10, 10, 0),
		seg(10, 10, 0, 0, 10, 0),
		seg(0, 10, 0, 0, 0, 0),
		seg(10, 10, 0, 100, 100, 100),
	})
	once := g.Prune()
	twice := once.Prune()
	assert.ElementsMatch(t, once.Points(), twice.Points())
	for _, p := range once.Points() {
		assert.ElementsMatch(t, once.Neighbors(p), twice.Neighbors(p))
	}
}

func TestPrune_NoDegreeOneVerticesRemain(t *testing.T) {
	g := pointgraph.Build([]point.Segment{
		seg(0, 0, 0, 10, 0, 0),
		seg(10, 0, 0, 10, 10, 0),
		seg(10, 10, 0, 0, 10, 0),
		seg(0, 10, 0, 0, 0, 0),
		seg(10, 10, 0, 100, 100, 100),
	})
	pruned := g.Prune()
	for _, p := range pruned.Points() {
		assert.NotEqual(t, 1, pruned.Degree(p))
	}
}

func TestSubgraph_InducedByPointSet(t *testing.T) {
	g := pointgraph.Build([]point.Segment{
		seg(0, 0, 0, 1, 0, 0),
		seg(1, 0, 0, 2, 0, 0),
	})
	keep := point.NewSet(point.Point{X: 0}, point.Point{X: 1})
	sub := g.Subgraph(keep)
	assert.Equal(t, 2, sub.Len())
	assert.False(t, sub.HasPoint(point.Point{X: 2}))
}
