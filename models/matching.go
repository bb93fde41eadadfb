package models

import (
	"github.com/hashicorp/go-set/v2"
)

// MatchFactors is the per-factor breakdown of one scoring pass. Every factor is
// normalized to [0,1] before weighting.
type MatchFactors struct {
	CategoryMatch     float64
	LocationMatch     float64
	RatingScore       float64
	AvailabilityScore float64
	ExperienceScore   float64
	PriceScore        float64
	ResponseTimeScore float64
}

type ScoredProvider struct {
	Provider ProviderSnapshot
	Score    float64
	Factors  MatchFactors
}

// MatchWeights is the calibration of the scoring formula. The values are a
// deployment-wide constant: changing them reorders every ranking, so they are
// configured once at startup, never per request.
type MatchWeights struct {
	Category     float64
	Location     float64
	Rating       float64
	Availability float64
	Experience   float64
	Price        float64
	ResponseTime float64
}

// DefaultMatchWeights favors hard relevance (category, location) over
// reputation, and reputation over price and responsiveness.
var DefaultMatchWeights = MatchWeights{
	Category:     0.25,
	Location:     0.20,
	Rating:       0.20,
	Availability: 0.15,
	Experience:   0.10,
	Price:        0.05,
	ResponseTime: 0.05,
}

// relatedCategories maps a case category to the neighboring trades that get
// partial credit instead of being filtered out entirely.
var relatedCategories = map[string]*set.Set[string]{
	"cat_plumber":     set.From([]string{"cat_handyman", "cat_heating"}),
	"cat_electrician": set.From([]string{"cat_handyman", "cat_appliance"}),
	"cat_handyman":    set.From([]string{"cat_plumber", "cat_electrician", "cat_painter"}),
	"cat_painter":     set.From([]string{"cat_handyman"}),
	"cat_heating":     set.From([]string{"cat_plumber"}),
	"cat_appliance":   set.From([]string{"cat_electrician"}),
	"cat_cleaner":     set.From([]string{}),
}

// IsRelatedCategory reports whether a provider of category got partial credit
// for a case of category want.
func IsRelatedCategory(want, got string) bool {
	related, ok := relatedCategories[want]
	return ok && related.Contains(got)
}

// EligibleCategories is the category hard filter of the matching engine: the
// case's own category plus its related ones.
func EligibleCategories(category string) []string {
	categories := []string{category}
	if related, ok := relatedCategories[category]; ok {
		categories = append(categories, related.Slice()...)
	}
	return categories
}

// CategoryMarketRate is the per-category median hourly rate used as the budget
// band when a case carries no budget of its own.
var CategoryMarketRate = map[string]float64{
	"cat_plumber":     50,
	"cat_electrician": 55,
	"cat_handyman":    40,
	"cat_painter":     35,
	"cat_heating":     60,
	"cat_appliance":   45,
	"cat_cleaner":     25,
}

// DefaultMarketRate is the fallback band for categories without a configured
// median.
const DefaultMarketRate = 45
