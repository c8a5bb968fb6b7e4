package polygonum

import (
	"github.com/wireviz/polygonum/pipeline"
	"github.com/wireviz/polygonum/point"
	"github.com/wireviz/polygonum/polygon"
)

// Polygonalize reconstructs the planar faces implied by segments: it
// builds and prunes the point graph, partitions it into connected
// components, lifts each component into a segment graph, runs the
// dual-policy traversal, and applies the area/dominance filter
// (spec.md §6). Segments are read-only for the duration of the call; the
// returned polygons are owned by the caller.
//
// When parallelize is true, connected components are processed
// concurrently via pipeline's errgroup-backed driver; the returned
// polygon set is the same either way, only its order may differ.
func Polygonalize(segments []point.Segment, parallelize bool, minimumAreaProjected float64) []*polygon.Polygon {
	return pipeline.Run(segments,
		pipeline.WithParallelize(parallelize),
		pipeline.WithMinimumAreaProjected(minimumAreaProjected),
	)
}
