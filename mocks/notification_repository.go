package mocks

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/repositories"
)

type NotificationRepository struct {
	mock.Mock
}

func (r *NotificationRepository) CreateNotificationEvent(ctx context.Context, exec repositories.Executor,
	attrs models.CreateNotificationEventAttributes,
) error {
	args := r.Called(ctx, exec, attrs)
	return args.Error(0)
}

func (r *NotificationRepository) GetNotificationEventById(ctx context.Context, exec repositories.Executor,
	id uuid.UUID,
) (models.NotificationEvent, error) {
	args := r.Called(ctx, exec, id)
	return args.Get(0).(models.NotificationEvent), args.Error(1)
}

func (r *NotificationRepository) MarkNotificationEventSent(ctx context.Context, exec repositories.Executor,
	id uuid.UUID,
) error {
	args := r.Called(ctx, exec, id)
	return args.Error(0)
}

type TaskQueueRepository struct {
	mock.Mock
}

func (r *TaskQueueRepository) EnqueueNotificationDelivery(ctx context.Context,
	tx repositories.Transaction, notificationEventId uuid.UUID,
) error {
	args := r.Called(ctx, tx, notificationEventId)
	return args.Error(0)
}

type NotificationSink struct {
	mock.Mock
}

func (s *NotificationSink) Push(ctx context.Context, userId string,
	notificationType models.NotificationType, title, body string, data json.RawMessage,
) error {
	args := s.Called(ctx, userId, notificationType, title, body, data)
	return args.Error(0)
}
