package dbmodels

import (
	"time"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/utils"
)

type DBCase struct {
	Id              string     `db:"id"`
	Category        string     `db:"category"`
	ServiceType     string     `db:"service_type"`
	Description     string     `db:"description"`
	Priority        string     `db:"priority"`
	City            string     `db:"city"`
	Neighborhood    string     `db:"neighborhood"`
	Phone           string     `db:"phone"`
	Status          string     `db:"status"`
	AssignmentType  string     `db:"assignment_type"`
	IsOpenCase      bool       `db:"is_open_case"`
	ProviderId      *string    `db:"provider_id"`
	ProviderName    *string    `db:"provider_name"`
	CustomerId      string     `db:"customer_id"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	CompletedAt     *time.Time `db:"completed_at"`
	CompletionNotes *string    `db:"completion_notes"`
}

const TABLE_CASES = "cases"

var SelectCaseColumn = utils.ColumnList[DBCase]()

func AdaptCase(db DBCase) (models.Case, error) {
	return models.Case{
		Id:              db.Id,
		Category:        db.Category,
		ServiceType:     db.ServiceType,
		Description:     db.Description,
		Priority:        models.CasePriority(db.Priority),
		City:            db.City,
		Neighborhood:    db.Neighborhood,
		Phone:           db.Phone,
		Status:          models.CaseStatus(db.Status),
		AssignmentType:  models.AssignmentType(db.AssignmentType),
		IsOpenCase:      db.IsOpenCase,
		ProviderId:      db.ProviderId,
		ProviderName:    db.ProviderName,
		CustomerId:      db.CustomerId,
		CreatedAt:       db.CreatedAt,
		UpdatedAt:       db.UpdatedAt,
		CompletedAt:     db.CompletedAt,
		CompletionNotes: db.CompletionNotes,
	}, nil
}
