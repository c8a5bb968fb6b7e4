// Package polygonum reconstructs planar polygonal faces from an
// unordered collection of oriented 3D line segments describing a
// wireframe — for example, the edges of a building extracted from a
// CAD or BIM export.
//
// What is polygonum?
//
//	A small, dependency-light pipeline that turns a flat list of
//	segments into a deduplicated list of closed polygons:
//
//	  • Point graph: build and prune the undirected vertex adjacency
//	  • Segment graph: lift it into a directed line graph
//	  • Traversal: a dual-policy greedy walk discovers closed cycles
//	  • Filter: drop small faces and outer faces that dominate a finer
//	    decomposition already accepted
//
// Why this shape?
//
//   - Total core       — every well-formed segment list yields a result;
//     there are no recoverable errors in the core packages
//   - No tolerance     — point equality is bit-exact; callers own snapping
//   - Parallel-capable — connected components are independent units of
//     work and can be dispatched across a worker pool
//
// Everything is organized under a handful of subpackages:
//
//	point/         — Point, Segment, and the 3D vector kernel
//	pointgraph/    — undirected vertex adjacency, pruning, subgraphs
//	segmentgraph/  — the directed line-graph lift
//	partition/     — connected-component decomposition
//	traversal/     — the dual-policy cycle-discovery walk
//	polygon/       — the closed cyclic vertex path and its operations
//	facefilter/    — area threshold and dominance filtering
//	pipeline/      — sequential and partitioned-parallel drivers
//	ingest/geojson/ — a GeoJSON LineString reader (ambient, not core)
//	cmd/polygonum/ — a CLI entry point
//
// Quick ASCII example: four segments forming a closed box wall,
//
//	    A───B
//	    │   │
//	    D───C
//
// polygonalize on {A-B, B-C, C-D, D-A} returns exactly one polygon: ABCD.
package polygonum
