package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/repositories"
)

type CaseDeclineRepository struct {
	mock.Mock
}

func (r *CaseDeclineRepository) CreateCaseDecline(ctx context.Context, exec repositories.Executor,
	attrs models.CreateCaseDeclineAttributes,
) error {
	args := r.Called(ctx, exec, attrs)
	return args.Error(0)
}

func (r *CaseDeclineRepository) DeleteCaseDecline(ctx context.Context, exec repositories.Executor,
	caseId, providerId string,
) error {
	args := r.Called(ctx, exec, caseId, providerId)
	return args.Error(0)
}

func (r *CaseDeclineRepository) ListDecliningProviderIds(ctx context.Context, exec repositories.Executor,
	caseId string,
) ([]string, error) {
	args := r.Called(ctx, exec, caseId)
	return args.Get(0).([]string), args.Error(1)
}
