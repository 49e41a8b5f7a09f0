// Package geo provides the great-circle distance check used to gate claims.
package geo

import (
	"math"

	"wikiwalk/internal/domain"
)

const earthRadiusKm = 6371

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// DistanceKm returns the haversine distance between two coordinates in
// kilometers.
func DistanceKm(a, b domain.Coordinate) float64 {
	dLat := deg2rad(b.Latitude - a.Latitude)
	dLon := deg2rad(b.Longitude - a.Longitude)

	radLat1 := deg2rad(a.Latitude)
	radLat2 := deg2rad(b.Latitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radLat1)*math.Cos(radLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// IsWithinRange reports whether the user is close enough to the article to
// claim it.
func IsWithinRange(user, article domain.Coordinate, thresholdKm float64) bool {
	return DistanceKm(user, article) <= thresholdKm
}
