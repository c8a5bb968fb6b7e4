package geojson_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wireviz/polygonum/ingest/geojson"
	"github.com/wireviz/polygonum/point"
)

const boxFeatureCollection = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[0,0,0],[0,10,0]]}},
    {"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[0,10,0],[10,10,5]]}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [0,0,0]}},
    {"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[10,10,5],[10,0,5]]}}
  ]
}`

func TestReadSegments_ParsesLineStringsAndSkipsOtherGeometry(t *testing.T) {
	segs, err := geojson.ReadSegments(strings.NewReader(boxFeatureCollection))
	require.NoError(t, err)
	assert.Equal(t, []point.Segment{
		{U: point.Point{X: 0, Y: 0, Z: 0}, V: point.Point{X: 0, Y: 10, Z: 0}},
		{U: point.Point{X: 0, Y: 10, Z: 0}, V: point.Point{X: 10, Y: 10, Z: 5}},
		{U: point.Point{X: 10, Y: 10, Z: 5}, V: point.Point{X: 10, Y: 0, Z: 5}},
	}, segs)
}

func TestReadSegments_NotAFeatureCollectionReturnsError(t *testing.T) {
	_, err := geojson.ReadSegments(strings.NewReader(`{"type": "Feature"}`))
	assert.ErrorIs(t, err, geojson.ErrNotFeatureCollection)
}

func TestReadSegments_MalformedLineStringReturnsError(t *testing.T) {
	bad := `{"features": [{"geometry": {"type": "LineString", "coordinates": [[0,0,0]]}}]}`
	_, err := geojson.ReadSegments(strings.NewReader(bad))
	assert.ErrorIs(t, err, geojson.ErrMalformedLineString)
}

func TestReadSegments_InvalidJSONReturnsError(t *testing.T) {
	_, err := geojson.ReadSegments(strings.NewReader(`not json`))
	assert.Error(t, err)
}

func TestReadSegments_EmptyFeatureListYieldsNoSegments(t *testing.T) {
	segs, err := geojson.ReadSegments(strings.NewReader(`{"features": []}`))
	require.NoError(t, err)
	assert.Empty(t, segs)
}
