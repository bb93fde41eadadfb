package dbmodels

import (
	"time"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/utils"
)

type DBCaseDecline struct {
	CaseId     string    `db:"case_id"`
	ProviderId string    `db:"provider_id"`
	Reason     *string   `db:"reason"`
	DeclinedAt time.Time `db:"declined_at"`
}

const TABLE_CASE_DECLINES = "case_declines"

var SelectCaseDeclineColumn = utils.ColumnList[DBCaseDecline]()

func AdaptCaseDecline(db DBCaseDecline) (models.CaseDecline, error) {
	return models.CaseDecline{
		CaseId:     db.CaseId,
		ProviderId: db.ProviderId,
		Reason:     db.Reason,
		DeclinedAt: db.DeclinedAt,
	}, nil
}

// DBDeclinedCase is the provider's declined view: the case row joined with the
// provider's own decline entry.
type DBDeclinedCase struct {
	DBCase
	Reason     *string   `db:"reason"`
	DeclinedAt time.Time `db:"declined_at"`
}

func AdaptDeclinedCase(providerId string) func(db DBDeclinedCase) (models.DeclinedCase, error) {
	return func(db DBDeclinedCase) (models.DeclinedCase, error) {
		c, err := AdaptCase(db.DBCase)
		if err != nil {
			return models.DeclinedCase{}, err
		}
		return models.DeclinedCase{
			Case: c,
			Decline: models.CaseDecline{
				CaseId:     db.Id,
				ProviderId: providerId,
				Reason:     db.Reason,
				DeclinedAt: db.DeclinedAt,
			},
		}, nil
	}
}
