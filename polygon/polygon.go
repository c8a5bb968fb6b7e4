// Package polygon implements the closed cyclic vertex path that is the
// output type of the whole pipeline (spec.md §3, §4.6).
//
// Equality and hashing of a Polygon use only its unordered vertex set, so
// cyclic rotations and reversals of the same point set collapse to one
// polygon — mirroring the teacher library's dfs package, which canonicalises
// a cycle's rotation before deduplicating it (see dfs.MinimalRotation in
// the retrieved lvlath source); here the canonical form is simpler still,
// since full rotation/reflection invariance is already implied by treating
// the vertex set as unordered.
package polygon

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wireviz/polygonum/point"
)

// Polygon is a closed cyclic vertex path: Sequence()[0] == Sequence()[last].
// Invariants (spec.md §3): all vertices distinct apart from the sentinel
// repetition; at least 3 distinct vertices; oriented so the z-component of
// its plane normal is non-negative.
type Polygon struct {
	sequence []point.Point // closed: sequence[0] == sequence[len-1]
	vertices point.Set     // canonical, unordered, sentinel excluded
}

// New builds a Polygon from an open (non-repeating) vertex list of at
// least 3 distinct points. It closes the sequence, and reverses it if the
// plane normal's z-component is negative so every Polygon's canonical
// orientation has non-negative z-normal (spec.md §3). Returns nil if seq
// has fewer than 3 distinct vertices — the caller (traversal) never
// constructs a cycle shorter than that, but New stays defensive about it
// since a Polygon's invariants are meaningless below that size.
func New(seq []point.Point) *Polygon {
	distinct := dedupe(seq)
	if len(distinct) < 3 {
		return nil
	}

	closed := make([]point.Point, len(distinct)+1)
	copy(closed, distinct)
	closed[len(distinct)] = distinct[0]

	if point.Normal(closed).Z < 0 {
		closed = reverseClosed(closed)
	}

	return &Polygon{
		sequence: closed,
		vertices: point.NewSet(distinct...),
	}
}

func dedupe(seq []point.Point) []point.Point {
	seen := make(map[point.Point]struct{}, len(seq))
	out := make([]point.Point, 0, len(seq))
	for _, p := range seq {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

func reverseClosed(closed []point.Point) []point.Point {
	n := len(closed) - 1 // last element duplicates the first
	out := make([]point.Point, len(closed))
	for i := 0; i < n; i++ {
		out[i] = closed[n-i]
	}
	out[n] = out[0]
	return out
}

// Sequence returns the closed vertex walk v0,v1,...,v(k-1),v0: the final
// yielded vertex equals the first, per the iteration contract in
// spec.md §6. The returned slice is a copy; callers may not mutate a
// Polygon through it.
func (p *Polygon) Sequence() []point.Point {
	out := make([]point.Point, len(p.sequence))
	copy(out, p.sequence)
	return out
}

// Vertices returns the canonical set of distinct vertices.
func (p *Polygon) Vertices() point.Set {
	return p.vertices
}

// Len returns the number of distinct vertices (k in spec.md §3).
func (p *Polygon) Len() int {
	return len(p.vertices)
}

// BBox is an xy-axis-aligned bounding box; z is ignored.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// BBox returns the polygon's xy bounding box.
func (p *Polygon) BBox() BBox {
	first := true
	var b BBox
	for v := range p.vertices {
		if first {
			b = BBox{MinX: v.X, MaxX: v.X, MinY: v.Y, MaxY: v.Y}
			first = false
			continue
		}
		if v.X < b.MinX {
			b.MinX = v.X
		}
		if v.X > b.MaxX {
			b.MaxX = v.X
		}
		if v.Y < b.MinY {
			b.MinY = v.Y
		}
		if v.Y > b.MaxY {
			b.MaxY = v.Y
		}
	}
	return b
}

// Area returns the in-plane area: |normal(sequence)| / 2.
func (p *Polygon) Area() float64 {
	return point.Norm(point.Normal(p.sequence)) / 2
}

// AreaProjected returns the xy footprint area: |normal(sequence).z| / 2.
func (p *Polygon) AreaProjected() float64 {
	n := point.Normal(p.sequence)
	return abs(n.Z) / 2
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// Centroid returns the arithmetic mean of the polygon's distinct vertices.
// Supplemented from original_source/src/polygon.rs, which exposes this for
// its GeoJSON writer; spec.md's distillation dropped it, but it is cheap
// and useful to callers rendering output.
func (p *Polygon) Centroid() point.Point {
	return point.Centroid(p.sequence[:len(p.sequence)-1])
}

// ContainsBoundaryOf reports xy-bbox dominance: whether other's bounding
// box lies entirely within p's.
func (p *Polygon) ContainsBoundaryOf(other *Polygon) bool {
	a, b := p.BBox(), other.BBox()
	return a.MinX <= b.MinX && a.MinY <= b.MinY && a.MaxX >= b.MaxX && a.MaxY >= b.MaxY
}

// ContainsPoint reports whether q lies inside p's xy projection via
// standard ray casting, toggling an "inside" flag across edges (a,b)
// where (a.Y > q.Y) != (b.Y > q.Y) and
// q.X < a.X + (q.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y). Vertices exactly in the
// vertex set are treated as contained before the ray test.
func (p *Polygon) ContainsPoint(q point.Point) bool {
	if p.vertices.Has(q) {
		return true
	}
	inside := false
	seq := p.sequence
	for i := 0; i < len(seq)-1; i++ {
		a, b := seq[i], seq[i+1]
		if (a.Y > q.Y) != (b.Y > q.Y) {
			xCross := a.X + (q.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if q.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// Contains reports whether p contains other: bbox dominance AND every
// vertex of other lies inside p's xy projection.
func (p *Polygon) Contains(other *Polygon) bool {
	if !p.ContainsBoundaryOf(other) {
		return false
	}
	seq := other.sequence
	for i := 0; i < len(seq)-1; i++ {
		if !p.ContainsPoint(seq[i]) {
			return false
		}
	}
	return true
}

// SharesSidesWith reports whether any ordered or reversed adjacent-vertex
// pair (edge) coincides between p and other's sequences.
func (p *Polygon) SharesSidesWith(other *Polygon) bool {
	edges := make(map[point.Segment]struct{}, len(p.sequence)-1)
	seq := p.sequence
	for i := 0; i < len(seq)-1; i++ {
		edges[point.Segment{U: seq[i], V: seq[i+1]}] = struct{}{}
	}
	oseq := other.sequence
	for i := 0; i < len(oseq)-1; i++ {
		e := point.Segment{U: oseq[i], V: oseq[i+1]}
		if _, ok := edges[e]; ok {
			return true
		}
		if _, ok := edges[e.Reversed()]; ok {
			return true
		}
	}
	return false
}

// Key returns a canonical string signature of the polygon's unordered
// vertex set: the vertices sorted by point.Point.Less and joined with
// commas. Equal vertex sets (any rotation or reflection of the same
// cycle) always produce the same Key, which makes Key suitable as the
// dedup/map key the traversal's shared polygon set needs — the same role
// dfs.JoinSig plays for cycle signatures in the teacher library, simplified
// here because Polygon equality has no rotation to canonicalise away (the
// vertex set is already unordered).
func (p *Polygon) Key() string {
	verts := p.vertices.Slice()
	parts := make([]string, len(verts))
	for i, v := range verts {
		parts[i] = fmt.Sprintf("%g:%g:%g", v.X, v.Y, v.Z)
	}
	return strings.Join(parts, ",")
}

// sortedKeys is a small helper kept for callers that want a deterministic
// ordering of a batch of polygons (e.g. tests comparing sequential vs
// parallel output as unordered sets).
func sortedKeys(polys []*Polygon) []string {
	keys := make([]string, len(polys))
	for i, pg := range polys {
		keys[i] = pg.Key()
	}
	sort.Strings(keys)
	return keys
}

// Keys returns the sorted Key() of every polygon in polys, for
// order-independent comparison of two polygon sets in tests.
func Keys(polys []*Polygon) []string {
	return sortedKeys(polys)
}
