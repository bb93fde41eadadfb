package models

import (
	"time"
)

type CaseEvent struct {
	Id             string
	CaseId         string
	ActorId        string
	CreatedAt      time.Time
	EventType      CaseEventType
	AdditionalNote string
	NewValue       string
	PreviousValue  string
}

type CaseEventType string

const (
	CaseCreated      CaseEventType = "case_created"
	CaseAssigned     CaseEventType = "case_assigned"
	CaseAcceptedEv   CaseEventType = "case_accepted"
	CaseDeclinedEv   CaseEventType = "case_declined"
	CaseRequeued     CaseEventType = "case_requeued"
	CaseCompletedEv  CaseEventType = "case_completed"
	CaseStatusUpdate CaseEventType = "status_updated"
	UnknownEvent     CaseEventType = "unknown_event"
)

func CaseEventTypeFrom(s string) CaseEventType {
	switch s {
	case "case_created":
		return CaseCreated
	case "case_assigned":
		return CaseAssigned
	case "case_accepted":
		return CaseAcceptedEv
	case "case_declined":
		return CaseDeclinedEv
	case "case_requeued":
		return CaseRequeued
	case "case_completed":
		return CaseCompletedEv
	case "status_updated":
		return CaseStatusUpdate
	default:
		return UnknownEvent
	}
}

type CreateCaseEventAttributes struct {
	CaseId         string
	ActorId        string
	EventType      CaseEventType
	AdditionalNote *string
	NewValue       *string
	PreviousValue  *string
}
