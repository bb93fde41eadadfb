package dbmodels

import (
	"time"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/utils"
)

type DBCaseEvent struct {
	Id             string    `db:"id"`
	CaseId         string    `db:"case_id"`
	ActorId        string    `db:"actor_id"`
	CreatedAt      time.Time `db:"created_at"`
	EventType      string    `db:"event_type"`
	AdditionalNote *string   `db:"additional_note"`
	NewValue       *string   `db:"new_value"`
	PreviousValue  *string   `db:"previous_value"`
}

const TABLE_CASE_EVENTS = "case_events"

var SelectCaseEventColumn = utils.ColumnList[DBCaseEvent]()

func AdaptCaseEvent(db DBCaseEvent) (models.CaseEvent, error) {
	var additionalNote, newValue, previousValue string
	if db.AdditionalNote != nil {
		additionalNote = *db.AdditionalNote
	}
	if db.NewValue != nil {
		newValue = *db.NewValue
	}
	if db.PreviousValue != nil {
		previousValue = *db.PreviousValue
	}
	return models.CaseEvent{
		Id:             db.Id,
		CaseId:         db.CaseId,
		ActorId:        db.ActorId,
		CreatedAt:      db.CreatedAt,
		EventType:      models.CaseEventTypeFrom(db.EventType),
		AdditionalNote: additionalNote,
		NewValue:       newValue,
		PreviousValue:  previousValue,
	}, nil
}
