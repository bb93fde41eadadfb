package models

import (
	"time"

	"github.com/guregu/null/v5"
)

// CaseDecline is one entry of the decline ledger. Its existence makes the case
// invisible in the provider's queue until explicitly removed.
type CaseDecline struct {
	CaseId     string
	ProviderId string
	Reason     *string
	DeclinedAt time.Time
}

type CreateCaseDeclineAttributes struct {
	CaseId     string
	ProviderId string
	Reason     null.String
}

// DeclinedCase is the complement view of the provider queue: the case joined
// with the provider's decline metadata.
type DeclinedCase struct {
	Case
	Decline CaseDecline
}
