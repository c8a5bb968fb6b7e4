// Package segmentgraph lifts a pointgraph.Graph into a directed "line
// graph": vertices are oriented Segments of the point graph, and an edge
// (u,p) -> (p,w) exists whenever both sides share endpoint p. Every walk
// through a segmentgraph.Graph corresponds to a vertex path in the
// originating point graph, which is what lets traversal discover closed
// cycles by walking segments instead of points (spec.md §4.3).
package segmentgraph

import (
	"sort"

	"github.com/wireviz/polygonum/point"
	"github.com/wireviz/polygonum/pointgraph"
)

// Graph is a directed adjacency map from Segment to the set of Segments
// reachable in one hop. Immutable after Build returns.
type Graph struct {
	adj map[point.Segment]map[point.Segment]struct{}
}

// Build constructs a Graph from pg, retaining only the vertices in the
// point set "within" when it is non-nil (a nil Set means "every vertex of
// pg"; an empty non-nil Set retains no vertex).
//
// For every retained vertex p and every ordered pair (u, w) of distinct
// neighbours of p, a directed edge (u,p) -> (p,w) is emitted. No
// self-cycles: u must differ from w. Only p is checked against "within";
// its neighbours u and w are taken from pg unfiltered.
//
// Complexity: O(sum over retained p of deg(p)^2), the number of ordered
// neighbour pairs at each vertex.
func Build(pg *pointgraph.Graph, within point.Set) *Graph {
	g := &Graph{adj: make(map[point.Segment]map[point.Segment]struct{})}

	vertices := pg.Points()
	if within != nil {
		filtered := vertices[:0:0]
		for _, p := range vertices {
			if within.Has(p) {
				filtered = append(filtered, p)
			}
		}
		vertices = filtered
	}

	for _, p := range vertices {
		nbrs := pg.Neighbors(p)
		for _, u := range nbrs {
			for _, w := range nbrs {
				if u == w {
					continue
				}
				in := point.Segment{U: u, V: p}
				out := point.Segment{U: p, V: w}
				g.link(in, out)
			}
		}
	}
	return g
}

func (g *Graph) link(from, to point.Segment) {
	succ, ok := g.adj[from]
	if !ok {
		succ = make(map[point.Segment]struct{})
		g.adj[from] = succ
	}
	succ[to] = struct{}{}
}

// Successors returns the segments directly reachable from s, in a
// deterministic order (by destination endpoint, then source endpoint) so
// that traversal's election policies see a stable candidate ordering
// before scoring.
func (g *Graph) Successors(s point.Segment) []point.Segment {
	succ := g.adj[s]
	out := make([]point.Segment, 0, len(succ))
	for t := range succ {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].V != out[j].V {
			return out[i].V.Less(out[j].V)
		}
		return out[i].U.Less(out[j].U)
	})
	return out
}

// Segments returns every segment with at least one outgoing edge, in a
// deterministic order, for use as traversal starting points.
func (g *Graph) Segments() []point.Segment {
	out := make([]point.Segment, 0, len(g.adj))
	for s := range g.adj {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U.Less(out[j].U)
		}
		return out[i].V.Less(out[j].V)
	})
	return out
}

// Len returns the number of segments carrying at least one outgoing edge.
func (g *Graph) Len() int {
	return len(g.adj)
}
