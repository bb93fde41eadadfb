package dbmodels

import (
	"time"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/utils"
)

type DBProvider struct {
	Id                string    `db:"id"`
	Name              string    `db:"name"`
	Category          string    `db:"category"`
	City              string    `db:"city"`
	Neighborhood      string    `db:"neighborhood"`
	Rating            float64   `db:"rating"`
	TotalReviews      int       `db:"total_reviews"`
	ExperienceYears   int       `db:"experience_years"`
	HourlyRate        float64   `db:"hourly_rate"`
	IsAvailable       bool      `db:"is_available"`
	LastActiveAt      time.Time `db:"last_active_at"`
	AvgResponseTimeMs *int64    `db:"avg_response_time_ms"`
}

const TABLE_PROVIDERS = "providers"

var SelectProviderColumn = utils.ColumnList[DBProvider]()

func AdaptProviderSnapshot(db DBProvider) (models.ProviderSnapshot, error) {
	var avgResponse time.Duration
	if db.AvgResponseTimeMs != nil {
		avgResponse = time.Duration(*db.AvgResponseTimeMs) * time.Millisecond
	}
	return models.ProviderSnapshot{
		Id:              db.Id,
		Name:            db.Name,
		Category:        db.Category,
		City:            db.City,
		Neighborhood:    db.Neighborhood,
		Rating:          db.Rating,
		TotalReviews:    db.TotalReviews,
		ExperienceYears: db.ExperienceYears,
		HourlyRate:      db.HourlyRate,
		IsAvailable:     db.IsAvailable,
		LastActiveAt:    db.LastActiveAt,
		AvgResponseTime: avgResponse,
	}, nil
}
