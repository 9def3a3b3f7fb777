package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EarthRadiusKm is the mean earth radius used by the haversine formula
const EarthRadiusKm = 6371.0

// HaversineDistanceKm calculates the great-circle distance between two
// points in kilometers. Inputs are degrees. Identical points yield exactly
// zero; antipodal points are handled without division errors because the
// central angle is computed with atan2.
func HaversineDistanceKm(p1, p2 GeoPoint) float64 {
	if p1 == p2 {
		return 0
	}

	lat1 := p1.Latitude * math.Pi / 180.0
	lon1 := p1.Longitude * math.Pi / 180.0
	lat2 := p2.Latitude * math.Pi / 180.0
	lon2 := p2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// DistanceToPolylineKm returns the shortest haversine distance from a point
// to any vertex of a planned route polyline. Vertex spacing on planned
// routes is dense enough that vertex distance is an acceptable bound for
// deviation detection.
func DistanceToPolylineKm(p GeoPoint, polyline []GeoPoint) float64 {
	if len(polyline) == 0 {
		return 0
	}
	min := math.MaxFloat64
	for _, v := range polyline {
		if d := HaversineDistanceKm(p, v); d < min {
			min = d
		}
	}
	return min
}

// EncodeGeohash converts a point to a geohash string at the given precision
func EncodeGeohash(p GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(p.Latitude, p.Longitude, precision)
}

// DecodeGeohash converts a geohash string back to a point
func DecodeGeohash(hash string) GeoPoint {
	lat, lng := geohash.Decode(hash)
	return GeoPoint{Latitude: lat, Longitude: lng}
}
