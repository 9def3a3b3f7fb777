package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistanceKm(t *testing.T) {
	tests := []struct {
		name      string
		point1    GeoPoint
		point2    GeoPoint
		expected  float64
		tolerance float64
	}{
		{
			name: "Same point",
			point1: GeoPoint{
				Latitude:  5.603717,
				Longitude: -0.186964,
			},
			point2: GeoPoint{
				Latitude:  5.603717,
				Longitude: -0.186964,
			},
			expected:  0.0,
			tolerance: 0.0,
		},
		{
			name: "Accra to Kumasi (approximately)",
			point1: GeoPoint{
				Latitude:  5.603717, // Accra
				Longitude: -0.186964,
			},
			point2: GeoPoint{
				Latitude:  6.688848, // Kumasi
				Longitude: -1.624443,
			},
			expected:  200.0, // Approximately 200 km
			tolerance: 10.0,
		},
		{
			name: "Cross equator",
			point1: GeoPoint{
				Latitude:  -1.0,
				Longitude: 0.0,
			},
			point2: GeoPoint{
				Latitude:  1.0,
				Longitude: 0.0,
			},
			expected:  222.4, // 2 degrees of latitude
			tolerance: 5.0,
		},
		{
			name: "Antipodal points",
			point1: GeoPoint{
				Latitude:  0.0,
				Longitude: 0.0,
			},
			point2: GeoPoint{
				Latitude:  0.0,
				Longitude: 180.0,
			},
			expected:  20015.0, // Half the earth's circumference
			tolerance: 30.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distance := HaversineDistanceKm(tt.point1, tt.point2)
			assert.InDelta(t, tt.expected, distance, tt.tolerance)
		})
	}
}

func TestHaversineDistanceKm_Symmetry(t *testing.T) {
	p1 := GeoPoint{Latitude: 5.603717, Longitude: -0.186964}
	p2 := GeoPoint{Latitude: 9.403430, Longitude: -0.836936}

	assert.Equal(t, HaversineDistanceKm(p1, p2), HaversineDistanceKm(p2, p1))
}

func TestHaversineDistanceKm_IdentityIsExactZero(t *testing.T) {
	p := GeoPoint{Latitude: 7.946527, Longitude: -1.023194}
	assert.Zero(t, HaversineDistanceKm(p, p))
}

func TestDistanceToPolylineKm(t *testing.T) {
	polyline := []GeoPoint{
		{Latitude: 5.60, Longitude: -0.19},
		{Latitude: 5.80, Longitude: -0.40},
		{Latitude: 6.00, Longitude: -0.60},
	}

	t.Run("point on a vertex", func(t *testing.T) {
		d := DistanceToPolylineKm(GeoPoint{Latitude: 5.80, Longitude: -0.40}, polyline)
		assert.Zero(t, d)
	})

	t.Run("point near the route", func(t *testing.T) {
		d := DistanceToPolylineKm(GeoPoint{Latitude: 5.81, Longitude: -0.41}, polyline)
		assert.Less(t, d, 2.0)
	})

	t.Run("point far from the route", func(t *testing.T) {
		d := DistanceToPolylineKm(GeoPoint{Latitude: 7.0, Longitude: -2.0}, polyline)
		assert.Greater(t, d, 100.0)
	})

	t.Run("empty polyline", func(t *testing.T) {
		d := DistanceToPolylineKm(GeoPoint{Latitude: 5.0, Longitude: 0.0}, nil)
		assert.Zero(t, d)
	})
}

func TestGeohashRoundTrip(t *testing.T) {
	p := GeoPoint{Latitude: 5.603717, Longitude: -0.186964}
	hash := EncodeGeohash(p, 7)
	assert.Len(t, hash, 7)

	decoded := DecodeGeohash(hash)
	assert.InDelta(t, p.Latitude, decoded.Latitude, 0.01)
	assert.InDelta(t, p.Longitude, decoded.Longitude, 0.01)
}
