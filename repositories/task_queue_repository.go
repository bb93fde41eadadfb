package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
)

// TaskQueueRepository enqueues background jobs on the river queue. Jobs are
// inserted transactionally so a delivery job exists if and only if its outbox
// row committed.
type TaskQueueRepository struct {
	client *river.Client[pgx.Tx]
}

func NewTaskQueueRepository(client *river.Client[pgx.Tx]) *TaskQueueRepository {
	return &TaskQueueRepository{client: client}
}

func (repo *TaskQueueRepository) EnqueueNotificationDelivery(ctx context.Context,
	tx Transaction, notificationEventId uuid.UUID,
) error {
	_, err := repo.client.InsertTx(ctx, tx.RawTx(), models.NotificationDeliveryJobArgs{
		NotificationEventId: notificationEventId,
	}, nil)
	return err
}
