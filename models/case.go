package models

import (
	"fmt"
	"slices"
	"time"

	"github.com/guregu/null/v5"
)

type Case struct {
	Id              string
	Category        string
	ServiceType     string
	Description     string
	Priority        CasePriority
	City            string
	Neighborhood    string
	Phone           string
	Status          CaseStatus
	AssignmentType  AssignmentType
	IsOpenCase      bool
	ProviderId      *string
	ProviderName    *string
	CustomerId      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CompletedAt     *time.Time
	CompletionNotes *string
	Events          []CaseEvent
}

// IsAssignedTo reports whether providerId currently owns the case. Only an
// assigned provider's decline resets the case back to the open queue.
func (c Case) IsAssignedTo(providerId string) bool {
	return c.ProviderId != nil && *c.ProviderId == providerId
}

type CaseStatus string

const (
	CasePending   CaseStatus = "pending"
	CaseAccepted  CaseStatus = "accepted"
	CaseDeclined  CaseStatus = "declined"
	CaseWip       CaseStatus = "wip"
	CaseCompleted CaseStatus = "completed"
	CaseClosed    CaseStatus = "closed"

	CaseUnknownStatus CaseStatus = "unknown"
)

// ValidCaseStatuses is the whitelist accepted by the generic status update.
var ValidCaseStatuses = []CaseStatus{
	CasePending, CaseAccepted, CaseDeclined, CaseCompleted, CaseWip, CaseClosed,
}

func (s CaseStatus) IsFinalized() bool {
	return s == CaseClosed || s == CaseCompleted
}

// CanComplete: completion is only reachable from an owned, in-flight case.
func (s CaseStatus) CanComplete() bool {
	return slices.Contains([]CaseStatus{CaseAccepted, CaseWip}, s)
}

func ValidateCaseStatus(status string) (CaseStatus, error) {
	s := CaseStatus(status)
	if !slices.Contains(ValidCaseStatuses, s) {
		return CaseUnknownStatus, fmt.Errorf("invalid status: %s %w", status, ErrInvalidCaseStatus)
	}
	return s, nil
}

type CasePriority string

const (
	CasePriorityNormal CasePriority = "normal"
	CasePriorityUrgent CasePriority = "urgent"
)

type AssignmentType string

const (
	// AssignmentOpen broadcasts the case to every matching provider's queue.
	AssignmentOpen AssignmentType = "open"
	// AssignmentSpecific pre-addresses the case to one named provider. The case
	// still starts pending; only the named provider's accept moves it forward.
	AssignmentSpecific AssignmentType = "specific"
)

type CreateCaseAttributes struct {
	Category       string `validate:"required"`
	ServiceType    string `validate:"required"`
	Description    string `validate:"required"`
	Phone          string `validate:"required"`
	City           string `validate:"required"`
	Neighborhood   string
	Priority       CasePriority
	AssignmentType AssignmentType `validate:"required,oneof=open specific"`
	CustomerId     string         `validate:"required"`
	ProviderId     *string
	ProviderName   *string
}

type CompleteCaseAttributes struct {
	Id     string
	Notes  null.String
	Income null.Float
}

type UpdateCaseStatusAttributes struct {
	Id      string
	Status  CaseStatus
	Message null.String
}

type DeclineOutcome struct {
	// ReturnedToQueue is true when the declining provider owned the case and the
	// decline reset it to pending.
	ReturnedToQueue bool
}

type CaseFilters struct {
	Statuses   []CaseStatus
	Category   string
	City       string
	CustomerId string
	StartDate  time.Time
	EndDate    time.Time
}

const CasesSortingCreatedAt = SortingFieldCreatedAt
