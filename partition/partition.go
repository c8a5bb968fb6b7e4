// Package partition decomposes a pointgraph.Graph into its connected
// components via depth-first search (spec.md §4.4). This is the sole
// source of parallelism in the pipeline: each component is independent
// and can be handed to its own segmentgraph/traversal/facefilter run.
package partition

import (
	"sort"

	"github.com/wireviz/polygonum/point"
	"github.com/wireviz/polygonum/pointgraph"
)

// Components returns the connected components of g as disjoint point
// sets. Every vertex of g appears in exactly one component; no component
// is empty. Components are returned in a deterministic order (by their
// lexicographically smallest point), mirroring the teacher library's
// habit of sorting vertex IDs before emitting results.
//
// Complexity: O(V + E), a single DFS over the whole graph.
func Components(g *pointgraph.Graph) []point.Set {
	explored := make(map[point.Point]struct{})
	var comps []point.Set

	for _, p := range g.Points() {
		if _, seen := explored[p]; seen {
			continue
		}
		comp := point.Set{}
		stack := []point.Point{p}
		explored[p] = struct{}{}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp[cur] = struct{}{}
			for _, nbr := range g.Neighbors(cur) {
				if _, seen := explored[nbr]; seen {
					continue
				}
				explored[nbr] = struct{}{}
				stack = append(stack, nbr)
			}
		}
		comps = append(comps, comp)
	}

	sort.Slice(comps, func(i, j int) bool {
		return minPoint(comps[i]).Less(minPoint(comps[j]))
	})
	return comps
}

func minPoint(s point.Set) point.Point {
	first := true
	var m point.Point
	for p := range s {
		if first || p.Less(m) {
			m = p
			first = false
		}
	}
	return m
}
