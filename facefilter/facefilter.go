// Package facefilter drops candidate polygons below an area threshold and
// then removes "outer" faces that dominate a finer decomposition already
// accepted (spec.md §4.7). Wire-frame cycle traversal can surface a cycle
// that is really the union of two adjacent real faces sharing an edge —
// e.g. the silhouette of two walls meeting at a corner — and this filter
// keeps the finer faces over that coarser union.
package facefilter

import (
	"sort"

	"github.com/wireviz/polygonum/polygon"
)

// Apply filters candidates down to the accepted face set:
//
//  1. Drop every polygon whose projected (xy) area is below minArea.
//  2. Sort the remainder by in-plane area, ascending.
//  3. Walk that order, accepting a polygon P unless some already-accepted
//     polygon Q satisfies P.Contains(Q) && P.SharesSidesWith(Q) — P is then
//     a dominating super-face of Q and is dropped.
//
// candidates is not mutated; the returned slice is freshly allocated.
func Apply(candidates []*polygon.Polygon, minArea float64) []*polygon.Polygon {
	surviving := make([]*polygon.Polygon, 0, len(candidates))
	for _, pg := range candidates {
		if pg.AreaProjected() >= minArea {
			surviving = append(surviving, pg)
		}
	}

	sort.SliceStable(surviving, func(i, j int) bool {
		return surviving[i].Area() < surviving[j].Area()
	})

	accepted := make([]*polygon.Polygon, 0, len(surviving))
	for _, p := range surviving {
		dominated := false
		for _, q := range accepted {
			if p.Contains(q) && p.SharesSidesWith(q) {
				dominated = true
				break
			}
		}
		if !dominated {
			accepted = append(accepted, p)
		}
	}
	return accepted
}
