package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
)

type MatchingEngine struct {
	mock.Mock
}

func (e *MatchingEngine) FindBestProviders(ctx context.Context, c models.Case, limit int) ([]models.ScoredProvider, error) {
	args := e.Called(ctx, c, limit)
	return args.Get(0).([]models.ScoredProvider), args.Error(1)
}
