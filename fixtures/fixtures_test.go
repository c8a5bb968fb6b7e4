package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wireviz/polygonum"
	"github.com/wireviz/polygonum/fixtures"
)

func TestOpenBox_HasSixSegmentsAndYieldsOnePolygon(t *testing.T) {
	segs := fixtures.OpenBox()
	assert.Len(t, segs, 6)

	polys := polygonum.Polygonalize(segs, false, 0.01)
	assert.Len(t, polys, 1)
}

func TestTwoBays_ClosingSecondBayYieldsTwoPolygons(t *testing.T) {
	segs := fixtures.TwoBays()
	assert.Len(t, segs, 7)

	polys := polygonum.Polygonalize(segs, false, 0.01)
	assert.Len(t, polys, 2)
}

func TestDanglingLeaf_PrunedLeafStillYieldsOnePolygon(t *testing.T) {
	segs := fixtures.DanglingLeaf()
	assert.Len(t, segs, 7)

	polys := polygonum.Polygonalize(segs, false, 0.01)
	assert.Len(t, polys, 1)
}

func TestPlatonicSolids_ProduceNonEmptyFaceSets(t *testing.T) {
	tetra := fixtures.Tetrahedron()
	assert.Len(t, tetra, 6)
	polys := polygonum.Polygonalize(tetra, false, 0)
	assert.NotEmpty(t, polys)
	for _, p := range polys {
		assert.Greater(t, p.Area(), 0.0)
		assert.GreaterOrEqual(t, p.Len(), 3)
	}

	cube := fixtures.Cube()
	assert.Len(t, cube, 12)
	polys = polygonum.Polygonalize(cube, false, 0)
	assert.NotEmpty(t, polys)

	octa := fixtures.Octahedron()
	assert.Len(t, octa, 12)
	polys = polygonum.Polygonalize(octa, false, 0)
	assert.NotEmpty(t, polys)
}
