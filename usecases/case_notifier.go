package usecases

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/repositories"
	"github.com/dmirchev92/server-maystorfix-sub007/usecases/executor_factory"
)

type notificationOutboxRepository interface {
	CreateNotificationEvent(ctx context.Context, exec repositories.Executor,
		attrs models.CreateNotificationEventAttributes) error
}

type notificationTaskEnqueuer interface {
	EnqueueNotificationDelivery(ctx context.Context, tx repositories.Transaction,
		notificationEventId uuid.UUID) error
}

// CaseNotifier turns case transitions into notification requests. It writes an
// outbox row and enqueues the delivery job in one transaction; actual delivery
// to the sink happens in the background worker. Callers treat errors as
// best-effort: log and move on, the case transition has already committed.
type CaseNotifier struct {
	transactionFactory executor_factory.TransactionFactory
	outboxRepository   notificationOutboxRepository
	taskQueue          notificationTaskEnqueuer
}

func NewCaseNotifier(
	transactionFactory executor_factory.TransactionFactory,
	outboxRepository notificationOutboxRepository,
	taskQueue notificationTaskEnqueuer,
) *CaseNotifier {
	return &CaseNotifier{
		transactionFactory: transactionFactory,
		outboxRepository:   outboxRepository,
		taskQueue:          taskQueue,
	}
}

func (n *CaseNotifier) Notify(ctx context.Context, userId string,
	notificationType models.NotificationType, title, body string, data map[string]any,
) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return errors.Wrap(err, "could not marshal notification payload")
	}

	notificationEventId := uuid.New()
	return n.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		if err := n.outboxRepository.CreateNotificationEvent(ctx, tx,
			models.CreateNotificationEventAttributes{
				Id:     notificationEventId,
				UserId: userId,
				Type:   notificationType,
				Title:  title,
				Body:   body,
				Data:   payload,
			}); err != nil {
			return err
		}
		return n.taskQueue.EnqueueNotificationDelivery(ctx, tx, notificationEventId)
	})
}
