package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/repositories"
)

type ProviderDirectory struct {
	mock.Mock
}

func (d *ProviderDirectory) ListProvidersByCategory(ctx context.Context, exec repositories.Executor,
	category string,
) ([]models.ProviderSnapshot, error) {
	args := d.Called(ctx, exec, category)
	return args.Get(0).([]models.ProviderSnapshot), args.Error(1)
}
