package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationCaseAssigned  NotificationType = "case_assigned"
	NotificationCaseAccepted  NotificationType = "case_accepted"
	NotificationCaseRequeued  NotificationType = "case_requeued"
	NotificationCaseCompleted NotificationType = "case_completed"
)

// NotificationEvent is one row of the notification outbox. It is written in the
// same transaction as the case mutation that caused it; delivery to the
// external sink happens asynchronously and is best-effort.
type NotificationEvent struct {
	Id        uuid.UUID
	UserId    string
	Type      NotificationType
	Title     string
	Body      string
	Data      json.RawMessage
	CreatedAt time.Time
	SentAt    *time.Time
}

type CreateNotificationEventAttributes struct {
	Id     uuid.UUID
	UserId string
	Type   NotificationType
	Title  string
	Body   string
	Data   json.RawMessage
}

type NotificationDeliveryJobArgs struct {
	NotificationEventId uuid.UUID `json:"notification_event_id"`
}

func (NotificationDeliveryJobArgs) Kind() string { return "notification_delivery" }
