package models

import (
	"time"
)

// ProviderSnapshot is the read model served by the provider directory. The
// matching engine treats it as immutable input for one scoring pass; staleness
// is tolerated because assignment re-validates through the conditioned accept.
type ProviderSnapshot struct {
	Id              string
	Name            string
	Category        string
	City            string
	Neighborhood    string
	Rating          float64
	TotalReviews    int
	ExperienceYears int
	HourlyRate      float64
	IsAvailable     bool
	LastActiveAt    time.Time
	// AvgResponseTime is zero when the directory has no responsiveness history.
	AvgResponseTime time.Duration
}
