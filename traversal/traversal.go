// Package traversal implements the dual-policy, non-branching
// depth-first walk that discovers closed cycles in a segmentgraph.Graph
// and turns each one into a candidate polygon.Polygon (spec.md §4.5).
//
// The walk never branches: at each step exactly one successor is elected
// by the active policy, which is what keeps this O(E*k) instead of an
// exponential enumeration of all simple cycles. Running the election
// twice — once theta-first, once coplanarity-first — recovers faces that
// project onto the same xy footprint (e.g. a roof directly above a floor),
// which a single theta-first pass would miss because the angular winner
// is identical for both faces.
package traversal

import (
	"context"

	"github.com/wireviz/polygonum/point"
	"github.com/wireviz/polygonum/polygon"
	"github.com/wireviz/polygonum/segmentgraph"
)

// Policy selects which score pair the election function minimises first.
type Policy int

const (
	// PolicyTheta minimises (theta, coplanarity): the sharpest clockwise
	// turn wins, ties broken by staying in a common plane.
	PolicyTheta Policy = iota
	// PolicyCoplanarity minimises (coplanarity, theta): staying in a
	// common plane wins, ties broken by the sharpest clockwise turn.
	PolicyCoplanarity
)

// Option configures a traversal run via functional arguments, mirroring
// the teacher library's bfs/dfs Option pattern.
type Option func(*Options)

// Options holds tunable parameters for Run/RunDual.
type Options struct {
	// Ctx allows cooperative cancellation between independent starting
	// edges. A cancelled context stops the outer loop early and returns
	// whatever polygons were already discovered; it is checked only
	// between root walks, never mid-walk, since a single walk's length is
	// bounded by MaxCycleLength and is never itself long-running.
	Ctx context.Context

	// MaxCycleLength bounds how many segments a single walk may push onto
	// its stack before it is abandoned as a dead end. Zero means no
	// limit. This is the "guarded for pathological inputs" safety valve
	// spec.md §9's design notes call for: recursion/iteration depth is
	// normally bounded by the cycle length, which is small in practice,
	// but adversarial input could otherwise walk indefinitely along a
	// long non-closing chain.
	MaxCycleLength int

	// OnPolygon, if non-nil, is invoked once for every distinct polygon
	// discovered (after dedup), in discovery order. Useful for progress
	// reporting from pipeline's per-component driver.
	OnPolygon func(*polygon.Polygon)
}

// DefaultOptions returns the zero-tuning default: background context, no
// cycle-length limit, no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		MaxCycleLength: 0,
		OnPolygon:      nil,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxCycleLength bounds walk length; n <= 0 disables the limit.
func WithMaxCycleLength(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxCycleLength = n
		}
	}
}

// WithOnPolygon installs a discovery hook.
func WithOnPolygon(fn func(*polygon.Polygon)) Option {
	return func(o *Options) {
		o.OnPolygon = fn
	}
}

// electFunc scores each candidate successor of "current" (having arrived
// via "previous") and returns the single elected next segment.
type electFunc func(previous, current point.Segment, candidates []point.Segment) point.Segment

func electTheta(previous, current point.Segment, candidates []point.Segment) point.Segment {
	best := candidates[0]
	bestTheta := point.Theta(current, best)
	bestCoplan := point.Coplanarity(previous.U, current.U, current.V, best.V)
	for _, cand := range candidates[1:] {
		th := point.Theta(current, cand)
		cp := point.Coplanarity(previous.U, current.U, current.V, cand.V)
		if th < bestTheta || (th == bestTheta && cp < bestCoplan) {
			best, bestTheta, bestCoplan = cand, th, cp
		}
	}
	return best
}

func electCoplanarity(previous, current point.Segment, candidates []point.Segment) point.Segment {
	best := candidates[0]
	bestCoplan := point.Coplanarity(previous.U, current.U, current.V, best.V)
	bestTheta := point.Theta(current, best)
	for _, cand := range candidates[1:] {
		cp := point.Coplanarity(previous.U, current.U, current.V, cand.V)
		th := point.Theta(current, cand)
		if cp < bestCoplan || (cp == bestCoplan && th < bestTheta) {
			best, bestCoplan, bestTheta = cand, cp, th
		}
	}
	return best
}

// Run walks every starting edge of g under the given policy and returns
// the set of distinct polygons discovered, deduplicated by
// polygon.Polygon.Key(). An empty segmentgraph yields an empty slice
// (spec.md §4.5: "the traversal is pure; no operation can fail").
func Run(g *segmentgraph.Graph, policy Policy, opts ...Option) []*polygon.Polygon {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	elect := electTheta
	if policy == PolicyCoplanarity {
		elect = electCoplanarity
	}

	seen := make(map[string]struct{})
	var out []*polygon.Polygon

	for _, s := range g.Segments() {
		if o.Ctx.Err() != nil {
			break
		}
		for _, t := range g.Successors(s) {
			pg := walkOnce(g, s, t, elect, o.MaxCycleLength)
			if pg == nil {
				continue
			}
			key := pg.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, pg)
			if o.OnPolygon != nil {
				o.OnPolygon(pg)
			}
		}
	}
	return out
}

// RunDual runs both election policies over g and merges their discoveries
// into one deduplicated polygon set — the "dual pass" of spec.md §4.5.1.
func RunDual(g *segmentgraph.Graph, opts ...Option) []*polygon.Polygon {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	// The hook fires here, after the cross-policy dedup, not inside each Run.
	hook := o.OnPolygon
	inner := append(append([]Option(nil), opts...), WithOnPolygon(nil))

	seen := make(map[string]struct{})
	var out []*polygon.Polygon

	merge := func(polys []*polygon.Polygon) {
		for _, pg := range polys {
			key := pg.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, pg)
			if hook != nil {
				hook(pg)
			}
		}
	}

	merge(Run(g, PolicyTheta, inner...))
	merge(Run(g, PolicyCoplanarity, inner...))
	return out
}

// walkOnce performs the non-branching walk described in spec.md §4.5's
// recursive step, expressed iteratively (the walk never branches, so an
// explicit loop and an equivalent recursion visit exactly the same
// segments in the same order; see spec.md §9's note that the two forms
// are interchangeable). It returns the closed polygon if the walk closes
// a cycle, or nil if it backtracks, dead-ends, or exceeds maxLen.
func walkOnce(g *segmentgraph.Graph, s, t point.Segment, elect electFunc, maxLen int) *polygon.Polygon {
	stack := []point.Segment{s}
	depth := map[point.Segment]int{s: 0}

	previous := s
	current := t

	for {
		// Step 1: no-U-turn rule.
		if _, ok := depth[current.Reversed()]; ok {
			return nil // Backtracking
		}
		// Step 2: cycle closure.
		if p, ok := depth[current]; ok {
			verts := make([]point.Point, 0, len(stack)-p)
			for _, seg := range stack[p:] {
				verts = append(verts, seg.U)
			}
			return polygon.New(verts) // PathClosing
		}
		// Step 3: push, elect, continue.
		stack = append(stack, current)
		depth[current] = len(stack) - 1
		if maxLen > 0 && len(stack) > maxLen {
			return nil
		}

		candidates := g.Successors(current)
		if len(candidates) == 0 {
			return nil
		}
		next := elect(previous, current, candidates)
		previous, current = current, next
	}
}
