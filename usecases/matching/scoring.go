// Package matching ranks provider snapshots against a case. Scoring is a pure
// function of the case, the snapshot and the clock: no I/O, no mutation, same
// inputs always produce the same output.
package matching

import (
	"math"
	"time"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
)

const (
	// relatedCategoryCredit is the partial category score for neighboring trades.
	relatedCategoryCredit = 0.4

	// Cold-start smoothing: ratings are shrunk toward ratingPrior until a
	// provider has accumulated about ratingPriorWeight reviews. A 5.0 with one
	// review lands near the prior; a 4.6 with hundreds keeps its value.
	ratingPrior       = 3.5
	ratingPriorWeight = 20.0

	// Providers active within the recency window score full availability;
	// afterwards the score decays with activityHalfLife.
	recencyWindow    = 24 * time.Hour
	activityHalfLife = 72 * time.Hour

	// experienceSaturation controls the diminishing returns of experience:
	// years/(years+saturation), so 5 years scores 0.5 and 20 years 0.8.
	experienceSaturation = 5.0

	// neutralResponseScore is used when no responsiveness history exists.
	neutralResponseScore = 0.5
)

// Score computes the weighted match score of one provider for one case.
// A zero category factor disqualifies the provider entirely: callers must
// treat it as a hard filter, not a low score.
func Score(c models.Case, provider models.ProviderSnapshot, weights models.MatchWeights, now time.Time) models.ScoredProvider {
	factors := models.MatchFactors{
		CategoryMatch:     categoryMatch(c, provider),
		LocationMatch:     locationMatch(c, provider),
		RatingScore:       ratingScore(provider),
		AvailabilityScore: availabilityScore(provider, now),
		ExperienceScore:   experienceScore(provider),
		PriceScore:        priceScore(c, provider),
		ResponseTimeScore: responseTimeScore(provider),
	}

	total := weights.Category*factors.CategoryMatch +
		weights.Location*factors.LocationMatch +
		weights.Rating*factors.RatingScore +
		weights.Availability*factors.AvailabilityScore +
		weights.Experience*factors.ExperienceScore +
		weights.Price*factors.PriceScore +
		weights.ResponseTime*factors.ResponseTimeScore

	return models.ScoredProvider{
		Provider: provider,
		Score:    total,
		Factors:  factors,
	}
}

func categoryMatch(c models.Case, provider models.ProviderSnapshot) float64 {
	switch {
	case provider.Category == c.Category:
		return 1.0
	case models.IsRelatedCategory(c.Category, provider.Category):
		return relatedCategoryCredit
	default:
		return 0
	}
}

func locationMatch(c models.Case, provider models.ProviderSnapshot) float64 {
	if provider.City != c.City {
		return 0.15
	}
	if c.Neighborhood != "" && provider.Neighborhood == c.Neighborhood {
		return 1.0
	}
	return 0.6
}

func ratingScore(provider models.ProviderSnapshot) float64 {
	n := float64(provider.TotalReviews)
	smoothed := (provider.Rating*n + ratingPrior*ratingPriorWeight) / (n + ratingPriorWeight)
	return smoothed / 5.0
}

func availabilityScore(provider models.ProviderSnapshot, now time.Time) float64 {
	if !provider.IsAvailable {
		return 0
	}
	inactiveFor := now.Sub(provider.LastActiveAt)
	if inactiveFor <= recencyWindow {
		return 1.0
	}
	return math.Exp2(-float64(inactiveFor-recencyWindow) / float64(activityHalfLife))
}

func experienceScore(provider models.ProviderSnapshot) float64 {
	years := float64(provider.ExperienceYears)
	if years < 0 {
		years = 0
	}
	return years / (years + experienceSaturation)
}

// priceScore penalizes both suspiciously cheap and overpriced providers: the
// score peaks at the category market rate and reaches zero at twice that
// distance in either direction.
func priceScore(c models.Case, provider models.ProviderSnapshot) float64 {
	market, ok := models.CategoryMarketRate[c.Category]
	if !ok || market <= 0 {
		market = models.DefaultMarketRate
	}
	if provider.HourlyRate <= 0 {
		return neutralResponseScore
	}
	distance := math.Abs(provider.HourlyRate-market) / market
	return math.Max(0, 1-distance/2)
}

func responseTimeScore(provider models.ProviderSnapshot) float64 {
	if provider.AvgResponseTime <= 0 {
		return neutralResponseScore
	}
	hours := provider.AvgResponseTime.Hours()
	return 1 / (1 + hours/2)
}
