package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/repositories/dbmodels"
)

// CreateNotificationEvent writes one outbox row. It shares a transaction with
// the delivery job enqueue, so a delivery job never exists without its outbox
// row.
func (repo *MaystorDbRepository) CreateNotificationEvent(ctx context.Context, exec Executor,
	attrs models.CreateNotificationEventAttributes,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_NOTIFICATION_EVENTS).
			Columns(
				"id",
				"user_id",
				"type",
				"title",
				"body",
				"data",
			).
			Values(
				attrs.Id,
				attrs.UserId,
				attrs.Type,
				attrs.Title,
				attrs.Body,
				attrs.Data,
			),
	)
	return err
}

func (repo *MaystorDbRepository) GetNotificationEventById(ctx context.Context, exec Executor,
	id uuid.UUID,
) (models.NotificationEvent, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectNotificationEventColumn...).
			From(dbmodels.TABLE_NOTIFICATION_EVENTS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptNotificationEvent,
	)
}

func (repo *MaystorDbRepository) MarkNotificationEventSent(ctx context.Context, exec Executor,
	id uuid.UUID,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_NOTIFICATION_EVENTS).
			Set("sent_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"id": id}),
	)
	return err
}
