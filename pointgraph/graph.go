// Package pointgraph builds and prunes the undirected adjacency graph over
// 3D points implied by a flat list of segments.
//
// Graph is the fundamental data structure the rest of polygonum's pipeline
// is built on: segmentgraph lifts it into a directed line graph, partition
// decomposes it into connected components, and traversal walks a
// per-component segmentgraph to discover candidate polygons.
//
// Per spec.md §7 the core is total: Build and Prune never fail and never
// panic on well-formed input (duplicate or zero-length segments are
// tolerated, not rejected).
package pointgraph

import (
	"sort"
	"sync"

	"github.com/wireviz/polygonum/point"
)

// Graph is an undirected adjacency map from Point to its set of neighbour
// Points. Invariants (spec.md §3): symmetric (v in adj[u] iff u in
// adj[v]); no self-loops; every stored adjacency set is non-empty.
//
// Graph is safe for concurrent reads; Build and Prune never mutate a Graph
// that has already been handed to a caller, so once a Graph is pruned it
// is effectively immutable and may be shared across goroutines without
// locking (the partitioned-parallel driver in package pipeline relies on
// this).
type Graph struct {
	mu  sync.RWMutex
	adj map[point.Point]map[point.Point]struct{}
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{adj: make(map[point.Point]map[point.Point]struct{})}
}

// Build constructs a Graph from an unordered list of segments. Duplicate
// segments and antiparallel duplicates (u,v) and (v,u) are absorbed into
// the same undirected edge. Zero-length segments (u == v) are dropped: a
// self-loop cannot appear in an undirected simple adjacency map and carries
// no face information.
func Build(segments []point.Segment) *Graph {
	g := New()
	for _, s := range segments {
		if s.U == s.V {
			continue
		}
		g.link(s.U, s.V)
		g.link(s.V, s.U)
	}
	return g
}

func (g *Graph) link(from, to point.Point) {
	nbrs, ok := g.adj[from]
	if !ok {
		nbrs = make(map[point.Point]struct{})
		g.adj[from] = nbrs
	}
	nbrs[to] = struct{}{}
}

// HasPoint reports whether p has any recorded adjacency.
func (g *Graph) HasPoint(p point.Point) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[p]
	return ok
}

// Degree returns the number of distinct neighbours of p.
func (g *Graph) Degree(p point.Point) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adj[p])
}

// Neighbors returns the neighbours of p in ascending Point order (for
// deterministic iteration by callers such as segmentgraph.Build).
func (g *Graph) Neighbors(p point.Point) []point.Point {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs := g.adj[p]
	out := make([]point.Point, 0, len(nbrs))
	for q := range nbrs {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Points returns every vertex of the graph, in ascending Point order.
func (g *Graph) Points() []point.Point {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]point.Point, 0, len(g.adj))
	for p := range g.adj {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Len returns the number of vertices in the graph.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adj)
}

// Prune performs iterative leaf removal (spec.md §4.2) and returns a new,
// pruned Graph; the receiver is left untouched. A leaf is a vertex of
// degree 1. Removing a leaf may reduce its sole neighbour to degree 1,
// promoting it to a leaf for the next round, or to degree 0 (if the
// neighbour had no other edges), removing it at once; this is the
// cascading-dead-branch behaviour the spec calls out. Pruning is idempotent: Prune() on an already-pruned graph returns
// an equal graph (there are no more leaves left to remove).
//
// Complexity: O(V) total across all rounds, since each round strictly
// reduces the vertex count.
func (g *Graph) Prune() *Graph {
	g.mu.RLock()
	// Work on a mutable copy of the adjacency sets so the receiver is
	// never mutated (Build/Prune results are meant to be shared freely).
	work := make(map[point.Point]map[point.Point]struct{}, len(g.adj))
	for p, nbrs := range g.adj {
		cp := make(map[point.Point]struct{}, len(nbrs))
		for q := range nbrs {
			cp[q] = struct{}{}
		}
		work[p] = cp
	}
	g.mu.RUnlock()

	leaves := make([]point.Point, 0)
	for p, nbrs := range work {
		if len(nbrs) == 1 {
			leaves = append(leaves, p)
		}
	}
	sort.Slice(leaves, func(i, j int) bool { return leaves[i].Less(leaves[j]) })

	for len(leaves) > 0 {
		next := make(map[point.Point]struct{})
		for _, p := range leaves {
			nbrs, ok := work[p]
			if !ok || len(nbrs) != 1 {
				// Already removed earlier in this same round via a
				// neighbour, or promoted away from leaf status.
				continue
			}
			var q point.Point
			for only := range nbrs {
				q = only
			}
			delete(work, p)
			if qn, ok := work[q]; ok {
				delete(qn, p)
				if len(qn) == 0 {
					delete(work, q)
				} else if len(qn) <= 2 {
					next[q] = struct{}{}
				}
			}
		}
		leaves = leaves[:0]
		for p := range next {
			if nbrs, ok := work[p]; ok && len(nbrs) == 1 {
				leaves = append(leaves, p)
			}
		}
		sort.Slice(leaves, func(i, j int) bool { return leaves[i].Less(leaves[j]) })
	}

	out := New()
	out.adj = work
	return out
}

// Subgraph returns a new Graph induced by the point set "within": only
// vertices in "within" are kept, and only edges whose both endpoints are
// kept. The receiver is not mutated. Mirrors the teacher library's
// InducedSubgraph view, retargeted from string vertex IDs to Points.
func (g *Graph) Subgraph(within point.Set) *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := New()
	for p, nbrs := range g.adj {
		if !within.Has(p) {
			continue
		}
		kept := make(map[point.Point]struct{})
		for q := range nbrs {
			if within.Has(q) {
				kept[q] = struct{}{}
			}
		}
		if len(kept) > 0 {
			out.adj[p] = kept
		}
	}
	return out
}
