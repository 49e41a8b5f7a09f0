package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wikiwalk/internal/domain"
)

func TestDistanceKm(t *testing.T) {
	bigBen := domain.Coordinate{Latitude: 51.5007, Longitude: -0.1246}
	londonEye := domain.Coordinate{Latitude: 51.5033, Longitude: -0.1196}

	d := DistanceKm(bigBen, londonEye)
	assert.InDelta(t, 0.44, d, 0.05)
}

func TestDistanceKm_SamePoint(t *testing.T) {
	p := domain.Coordinate{Latitude: 53.2307, Longitude: -0.5406}
	assert.Zero(t, DistanceKm(p, p))
}

func TestIsWithinRange(t *testing.T) {
	bigBen := domain.Coordinate{Latitude: 51.5007, Longitude: -0.1246}
	londonEye := domain.Coordinate{Latitude: 51.5033, Longitude: -0.1196}

	assert.False(t, IsWithinRange(bigBen, londonEye, 0.1))
	assert.True(t, IsWithinRange(bigBen, londonEye, 0.5))
}
