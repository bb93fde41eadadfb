package repositories

import (
	"context"
)

const TABLE_ACCOUNTING_ENTRIES = "accounting_entries"

// AccountingRepository books provider income. Entries are append-only;
// reporting reads them elsewhere. It is called after the case transition
// committed, so it carries its own executor.
type AccountingRepository struct {
	executorGetter ExecutorGetter
}

func NewAccountingRepository(executorGetter ExecutorGetter) *AccountingRepository {
	return &AccountingRepository{executorGetter: executorGetter}
}

func (repo *AccountingRepository) RecordCompletionIncome(ctx context.Context,
	caseId, providerId string, amount float64,
) error {
	_, err := ExecBuilder(
		ctx,
		repo.executorGetter.GetExecutor(),
		NewQueryBuilder().Insert(TABLE_ACCOUNTING_ENTRIES).
			Columns("case_id", "provider_id", "amount").
			Values(caseId, providerId, amount),
	)
	return err
}
