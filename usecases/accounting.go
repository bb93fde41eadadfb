package usecases

import "context"

// AccountingRepository is the external accounting collaborator. The core only
// triggers completion-income entries; bookkeeping lives elsewhere.
type AccountingRepository interface {
	RecordCompletionIncome(ctx context.Context, caseId, providerId string, amount float64) error
}
