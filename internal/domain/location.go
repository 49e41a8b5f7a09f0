package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned by lookups for areas or trophies that were never
// discovered or tracked.
var ErrNotFound = errors.New("not found")

// Settlement classes an Area can carry. The special completion trophies
// filter on these.
const (
	AreaVillage = "village"
	AreaTown    = "town"
	AreaCity    = "city"
)

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Area is a discovered settlement acting as a container for articles.
// Rows are immutable after the first insert; areas are never undiscovered.
type Area struct {
	ID           string
	Name         string
	ArticleURL   string
	ThumbnailURL *string
	Country      string
	Type         string
	DiscoveredAt time.Time

	// Derived at read time from the articles referencing this area.
	TotalCount     int
	CollectedCount int
}

// Article is a point of interest belonging to exactly one area.
// CollectedAt is nil while merely discovered and set exactly once on claim.
type Article struct {
	ID           string
	Name         string
	ArticleURL   string
	ThumbnailURL *string
	AreaID       string
	Coords       Coordinate
	CollectedAt  *time.Time
}
