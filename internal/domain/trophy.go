package domain

import "time"

// RequirementType selects the aggregate a trophy's progress is computed from.
type RequirementType string

const (
	RequireCollectArticles RequirementType = "collect_articles"
	RequireDiscoverAreas   RequirementType = "discover_areas"
	RequireCompleteAreas   RequirementType = "complete_areas"
	RequireCompleteVillage RequirementType = "complete_village"
	RequireCompleteTown    RequirementType = "complete_town"
	RequireCompleteCity    RequirementType = "complete_city"
	RequireWetherspoons    RequirementType = "wetherspoons"
)

// Trophy is a static achievement definition. The catalogue is fixed at
// build time and never changes while the process runs.
type Trophy struct {
	ID          string
	Title       string
	Description string
	Category    string
	Requirement RequirementType
	Threshold   int
	Icon        string
}

// TrophyProgress tracks one trophy: the current recomputed value and the
// completion time, which is set at most once and never cleared.
type TrophyProgress struct {
	ID          string
	Value       int
	CompletedAt *time.Time
}

// Unlock describes a trophy that completed during a recomputation pass.
type Unlock struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
