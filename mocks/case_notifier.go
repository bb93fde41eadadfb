package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
)

type CaseNotifier struct {
	mock.Mock
}

func (n *CaseNotifier) Notify(ctx context.Context, userId string,
	notificationType models.NotificationType, title, body string, data map[string]any,
) error {
	args := n.Called(ctx, userId, notificationType, title, body, data)
	return args.Error(0)
}
