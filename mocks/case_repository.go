package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/repositories"
)

type CaseRepository struct {
	mock.Mock
}

func (r *CaseRepository) GetCaseById(ctx context.Context, exec repositories.Executor, caseId string) (models.Case, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).(models.Case), args.Error(1)
}

func (r *CaseRepository) ListCases(ctx context.Context, exec repositories.Executor,
	filters models.CaseFilters, pagination models.PaginationAndSorting,
) ([]models.Case, error) {
	args := r.Called(ctx, exec, filters, pagination)
	return args.Get(0).([]models.Case), args.Error(1)
}

func (r *CaseRepository) CreateCase(ctx context.Context, exec repositories.Executor,
	attrs models.CreateCaseAttributes, newCaseId string,
) error {
	args := r.Called(ctx, exec, attrs, newCaseId)
	return args.Error(0)
}

func (r *CaseRepository) AcceptCase(ctx context.Context, exec repositories.Executor,
	caseId, providerId, providerName string,
) (bool, error) {
	args := r.Called(ctx, exec, caseId, providerId, providerName)
	return args.Bool(0), args.Error(1)
}

func (r *CaseRepository) ReopenCase(ctx context.Context, exec repositories.Executor,
	caseId, providerId string,
) (bool, error) {
	args := r.Called(ctx, exec, caseId, providerId)
	return args.Bool(0), args.Error(1)
}

func (r *CaseRepository) CompleteCase(ctx context.Context, exec repositories.Executor,
	caseId string, completionNotes *string,
) (bool, error) {
	args := r.Called(ctx, exec, caseId, completionNotes)
	return args.Bool(0), args.Error(1)
}

func (r *CaseRepository) UpdateCaseStatus(ctx context.Context, exec repositories.Executor,
	caseId string, status models.CaseStatus,
) error {
	args := r.Called(ctx, exec, caseId, status)
	return args.Error(0)
}

func (r *CaseRepository) ListAvailableCases(ctx context.Context, exec repositories.Executor,
	providerId string, pagination models.PaginationAndSorting,
) ([]models.Case, error) {
	args := r.Called(ctx, exec, providerId, pagination)
	return args.Get(0).([]models.Case), args.Error(1)
}

func (r *CaseRepository) ListDeclinedCases(ctx context.Context, exec repositories.Executor,
	providerId string,
) ([]models.DeclinedCase, error) {
	args := r.Called(ctx, exec, providerId)
	return args.Get(0).([]models.DeclinedCase), args.Error(1)
}

func (r *CaseRepository) CreateCaseEvent(ctx context.Context, exec repositories.Executor,
	attrs models.CreateCaseEventAttributes,
) error {
	args := r.Called(ctx, exec, attrs)
	return args.Error(0)
}

func (r *CaseRepository) ListCaseEvents(ctx context.Context, exec repositories.Executor,
	caseId string,
) ([]models.CaseEvent, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).([]models.CaseEvent), args.Error(1)
}
