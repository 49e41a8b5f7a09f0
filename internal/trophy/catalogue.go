// Package trophy recomputes achievement progress from collection state.
package trophy

import "wikiwalk/internal/domain"

// Catalogue is the static trophy list. Unlock results follow its declaration
// order, so new trophies belong at the end of their category block.
var Catalogue = []domain.Trophy{

	// Article collecting

	{
		ID:          "collect_articles_first",
		Title:       "First Steps",
		Description: "Collect your first article",
		Category:    "Article Collector",
		Requirement: domain.RequireCollectArticles,
		Threshold:   1,
		Icon:        "book",
	},
	{
		ID:          "collect_articles_second",
		Title:       "Amateur Collector",
		Description: "Collect 25 articles",
		Category:    "Article Collector",
		Requirement: domain.RequireCollectArticles,
		Threshold:   25,
		Icon:        "book",
	},
	{
		ID:          "collect_articles_third",
		Title:       "Tour Guide",
		Description: "Collect 50 articles",
		Category:    "Article Collector",
		Requirement: domain.RequireCollectArticles,
		Threshold:   50,
		Icon:        "book",
	},
	{
		ID:          "collect_articles_fourth",
		Title:       "Historian",
		Description: "Collect 100 articles",
		Category:    "Article Collector",
		Requirement: domain.RequireCollectArticles,
		Threshold:   100,
		Icon:        "book",
	},

	// Discovering areas

	{
		ID:          "discover_areas_first",
		Title:       "Traveller",
		Description: "Visit 3 different areas",
		Category:    "Traveller",
		Requirement: domain.RequireDiscoverAreas,
		Threshold:   3,
		Icon:        "walk",
	},
	{
		ID:          "discover_areas_second",
		Title:       "Tourist",
		Description: "Visit 5 different areas",
		Category:    "Traveller",
		Requirement: domain.RequireDiscoverAreas,
		Threshold:   5,
		Icon:        "walk",
	},
	{
		ID:          "discover_areas_third",
		Title:       "Cross Country",
		Description: "Visit 15 different areas",
		Category:    "Traveller",
		Requirement: domain.RequireDiscoverAreas,
		Threshold:   15,
		Icon:        "walk",
	},

	// Completing areas

	{
		ID:          "complete_areas_first",
		Title:       "First Area Complete",
		Description: "Collect every article in an area",
		Category:    "Completionist",
		Requirement: domain.RequireCompleteAreas,
		Threshold:   1,
	},
	{
		ID:          "complete_areas_second",
		Title:       "Amateur Completionist",
		Description: "Collect every article in 5 different areas",
		Category:    "Completionist",
		Requirement: domain.RequireCompleteAreas,
		Threshold:   5,
	},
	{
		ID:          "complete_areas_third",
		Title:       "All your areas are belong to us",
		Description: "Collect every article in 15 areas",
		Category:    "Completionist",
		Requirement: domain.RequireCompleteAreas,
		Threshold:   15,
	},

	// Specials

	{
		ID:          "special_complete_village",
		Title:       "It Takes a Village",
		Description: "Collect all articles in a village area",
		Category:    "Special",
		Requirement: domain.RequireCompleteVillage,
		Threshold:   1,
		Icon:        "home",
	},
	{
		ID:          "special_complete_town",
		Title:       "Talk of the Town",
		Description: "Collect all articles in a town area",
		Category:    "Special",
		Requirement: domain.RequireCompleteTown,
		Threshold:   1,
		Icon:        "town-hall",
	},
	{
		ID:          "special_complete_city",
		Title:       "Just a City Boy",
		Description: "Collect all articles in a city area",
		Category:    "Special",
		Requirement: domain.RequireCompleteCity,
		Threshold:   1,
		Icon:        "city",
	},
	{
		ID:          "special_wetherspoons_one",
		Title:       "For a Few Spoons More",
		Description: "Collect a Wetherspoons Location",
		Category:    "Special",
		Requirement: domain.RequireWetherspoons,
		Threshold:   1,
		Icon:        "home",
	},
}
