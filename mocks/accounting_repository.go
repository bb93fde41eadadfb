package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type AccountingRepository struct {
	mock.Mock
}

func (r *AccountingRepository) RecordCompletionIncome(ctx context.Context,
	caseId, providerId string, amount float64,
) error {
	args := r.Called(ctx, caseId, providerId, amount)
	return args.Error(0)
}
