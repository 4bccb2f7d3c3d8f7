package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoint(t *testing.T) {
	p, err := NewPoint(38.0675, -120.5436)
	require.NoError(t, err)
	assert.Equal(t, 38.0675, p.Latitude)
	assert.Equal(t, -120.5436, p.Longitude)

	// Boundary values are valid
	_, err = NewPoint(90, 180)
	assert.NoError(t, err)
	_, err = NewPoint(-90, -180)
	assert.NoError(t, err)

	// Out of range coordinates fail fast
	_, err = NewPoint(200, -300)
	assert.Error(t, err, "Should return error for out-of-range coordinates")

	// Non-numeric values fail the same checks
	_, err = NewPoint(math.NaN(), 0)
	assert.Error(t, err, "Should return error for NaN latitude")
	_, err = NewPoint(0, math.Inf(1))
	assert.Error(t, err, "Should return error for infinite longitude")
}

func TestBounds_Extend(t *testing.T) {
	require := require.New(t)

	start := Point{Latitude: 48.1344333, Longitude: -121.8064235}
	bounds := NewBounds(start, start)

	bounds.Extend(Point{Latitude: 48.2714123, Longitude: -121.6771830})

	require.Equal(48.1344333, bounds.SouthWest.Latitude)
	require.Equal(48.2714123, bounds.NorthEast.Latitude)
	require.Equal(-121.8064235, bounds.SouthWest.Longitude)
	require.Equal(-121.6771830, bounds.NorthEast.Longitude)

	// A point already inside changes nothing
	before := bounds
	bounds.Extend(Point{Latitude: 48.2, Longitude: -121.7})
	require.Equal(before, bounds)

	// Extending south-west widens the other corner
	bounds.Extend(Point{Latitude: 48.0, Longitude: -121.9})
	require.Equal(48.0, bounds.SouthWest.Latitude)
	require.Equal(-121.9, bounds.SouthWest.Longitude)
}

func TestBounds_Center(t *testing.T) {
	bounds := NewBounds(Point{Latitude: 50.3, Longitude: 30.5}, Point{Latitude: 50.5, Longitude: 30.7})
	center := bounds.Center()
	assert.InDelta(t, 50.4, center.Latitude, 1e-12)
	assert.InDelta(t, 30.6, center.Longitude, 1e-12)
}

func TestBounds_Contains(t *testing.T) {
	bounds := NewBounds(Point{Latitude: 50.3, Longitude: 30.5}, Point{Latitude: 50.5, Longitude: 30.7})

	assert.True(t, bounds.Contains(Point{Latitude: 50.4, Longitude: 30.6}))
	assert.True(t, bounds.Contains(Point{Latitude: 50.3, Longitude: 30.5}), "Edges are inside")
	assert.False(t, bounds.Contains(Point{Latitude: 50.2, Longitude: 30.6}))
	assert.False(t, bounds.Contains(Point{Latitude: 50.4, Longitude: 30.8}))
}

func TestDistance(t *testing.T) {
	// Highway 4 test coordinates: Angels Camp to Murphys (real route)
	angelsCamp := Point{Latitude: 38.0675, Longitude: -120.5436}
	murphys := Point{Latitude: 38.1391, Longitude: -120.4561}

	distance := Distance(angelsCamp, murphys)
	assert.InDelta(t, 11046, distance, 100, "Distance should be approximately 11.0km")

	assert.Equal(t, 0.0, Distance(angelsCamp, angelsCamp), "Distance from point to itself should be 0")
}

func TestDecodePolyline(t *testing.T) {
	points, err := DecodePolyline("_p~iF~ps|U_ulLnnqC_mqNvxq`@")
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.InDelta(t, 38.5, points[0].Latitude, 1e-5)
	assert.InDelta(t, -120.2, points[0].Longitude, 1e-5)
	assert.InDelta(t, 43.252, points[2].Latitude, 1e-5)
	assert.InDelta(t, -126.453, points[2].Longitude, 1e-5)

	_, err = DecodePolyline("")
	assert.Error(t, err, "Should return error for empty input")
}
