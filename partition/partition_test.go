package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wireviz/polygonum/partition"
	"github.com/wireviz/polygonum/point"
	"github.com/wireviz/polygonum/pointgraph"
)

func TestComponents_PartitionsDisjointVertexSet(t *testing.T) {
	// Two disjoint triangles.
	a, b, c := point.Point{X: 0}, point.Point{X: 1}, point.Point{X: 2}
	d, e, f := point.Point{X: 10}, point.Point{X: 11}, point.Point{X: 12}

	g := pointgraph.Build([]point.Segment{
		{U: a, V: b}, {U: b, V: c}, {U: c, V: a},
		{U: d, V: e}, {U: e, V: f}, {U: f, V: d},
	})

	comps := partition.Components(g)
	assert.Len(t, comps, 2)

	total := 0
	seen := point.Set{}
	for _, comp := range comps {
		assert.NotEmpty(t, comp)
		for p := range comp {
			_, dup := seen[p]
			assert.False(t, dup, "point %v appears in more than one component", p)
			seen[p] = struct{}{}
			total++
		}
	}
	assert.Equal(t, 6, total)
}

func TestComponents_SingleComponentForConnectedGraph(t *testing.T) {
	a, b, c := point.Point{X: 0}, point.Point{X: 1}, point.Point{X: 2}
	g := pointgraph.Build([]point.Segment{{U: a, V: b}, {U: b, V: c}})
	comps := partition.Components(g)
	assert.Len(t, comps, 1)
	assert.Len(t, comps[0], 3)
}

func TestComponents_EmptyGraphYieldsNoComponents(t *testing.T) {
	g := pointgraph.Build(nil)
	comps := partition.Components(g)
	assert.Empty(t, comps)
}
