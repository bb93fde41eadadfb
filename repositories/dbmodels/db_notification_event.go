package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/utils"
)

type DBNotificationEvent struct {
	Id        uuid.UUID       `db:"id"`
	UserId    string          `db:"user_id"`
	Type      string          `db:"type"`
	Title     string          `db:"title"`
	Body      string          `db:"body"`
	Data      json.RawMessage `db:"data"`
	CreatedAt time.Time       `db:"created_at"`
	SentAt    *time.Time      `db:"sent_at"`
}

const TABLE_NOTIFICATION_EVENTS = "notification_events"

var SelectNotificationEventColumn = utils.ColumnList[DBNotificationEvent]()

func AdaptNotificationEvent(db DBNotificationEvent) (models.NotificationEvent, error) {
	return models.NotificationEvent{
		Id:        db.Id,
		UserId:    db.UserId,
		Type:      models.NotificationType(db.Type),
		Title:     db.Title,
		Body:      db.Body,
		Data:      db.Data,
		CreatedAt: db.CreatedAt,
		SentAt:    db.SentAt,
	}, nil
}
