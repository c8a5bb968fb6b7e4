// Package geojson reads a flat list of point.Segment values out of a
// GeoJSON FeatureCollection: every LineString feature's two coordinates
// become the endpoints of one directed segment (spec.md §6's "input
// format collaborator", restored from original_source/tests/integration.rs's
// io::parse helper). This is decode-only and boundary code, not core: it
// validates its input and returns errors rather than being total.
package geojson

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/wireviz/polygonum/point"
)

// ErrNotFeatureCollection is returned when the top-level JSON value has no
// "features" array.
var ErrNotFeatureCollection = errors.New("geojson: not a FeatureCollection")

// ErrMalformedLineString is returned when a LineString feature's
// coordinates cannot be read as two 3-element [x, y, z] positions.
var ErrMalformedLineString = errors.New("geojson: malformed LineString coordinates")

type featureCollection struct {
	Features []feature `json:"features"`
}

type feature struct {
	Geometry geometry `json:"geometry"`
}

type geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// ReadSegments decodes r as a GeoJSON FeatureCollection and returns one
// Segment per LineString feature, built from its first two coordinates.
// Features of any other geometry type are ignored. There is no
// tolerance-based coordinate snapping: floats are read as given.
func ReadSegments(r io.Reader) ([]point.Segment, error) {
	var fc featureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("geojson: decode: %w", err)
	}
	if fc.Features == nil {
		return nil, ErrNotFeatureCollection
	}

	segments := make([]point.Segment, 0, len(fc.Features))
	for _, f := range fc.Features {
		if f.Geometry.Type != "LineString" {
			continue
		}
		var coords [][]float64
		if err := json.Unmarshal(f.Geometry.Coordinates, &coords); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedLineString, err)
		}
		seg, err := lineStringSegment(coords)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

func lineStringSegment(coords [][]float64) (point.Segment, error) {
	if len(coords) < 2 {
		return point.Segment{}, fmt.Errorf("%w: need at least 2 positions, got %d", ErrMalformedLineString, len(coords))
	}
	from, err := position(coords[0])
	if err != nil {
		return point.Segment{}, err
	}
	to, err := position(coords[1])
	if err != nil {
		return point.Segment{}, err
	}
	return point.Segment{U: from, V: to}, nil
}

func position(coord []float64) (point.Point, error) {
	if len(coord) != 3 {
		return point.Point{}, fmt.Errorf("%w: expected [x, y, z], got %d values", ErrMalformedLineString, len(coord))
	}
	return point.Point{X: coord[0], Y: coord[1], Z: coord[2]}, nil
}
