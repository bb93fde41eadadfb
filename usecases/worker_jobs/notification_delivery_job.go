package worker_jobs

import (
	"context"
	"encoding/json"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"github.com/riverqueue/river"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/repositories"
	"github.com/dmirchev92/server-maystorfix-sub007/usecases/executor_factory"
	"github.com/dmirchev92/server-maystorfix-sub007/utils"
)

const (
	NOTIFICATION_DELIVERY_TIMEOUT = 30 * time.Second

	// sinkRetryAttempts bounds the in-process retries against the sink before
	// the notification is abandoned.
	sinkRetryAttempts = 3
)

// NotificationSink is the push channel notifications are delivered through.
// Delivery is fire-and-forget from the case engine's point of view.
type NotificationSink interface {
	Push(ctx context.Context, userId string, notificationType models.NotificationType,
		title, body string, data json.RawMessage) error
}

type notificationDeliveryRepository interface {
	GetNotificationEventById(ctx context.Context, exec repositories.Executor,
		id uuid.UUID) (models.NotificationEvent, error)
	MarkNotificationEventSent(ctx context.Context, exec repositories.Executor,
		id uuid.UUID) error
}

// NotificationDeliveryWorker drains the notification outbox. Failures never
// reach the case transition that produced the event: infrastructure errors are
// retried by the queue, sink errors are retried a few times in-process and
// then the notification is dropped with a metric bump.
type NotificationDeliveryWorker struct {
	river.WorkerDefaults[models.NotificationDeliveryJobArgs]

	repository      notificationDeliveryRepository
	sink            NotificationSink
	executorFactory executor_factory.ExecutorFactory
}

func NewNotificationDeliveryWorker(
	repository notificationDeliveryRepository,
	sink NotificationSink,
	executorFactory executor_factory.ExecutorFactory,
) *NotificationDeliveryWorker {
	return &NotificationDeliveryWorker{
		repository:      repository,
		sink:            sink,
		executorFactory: executorFactory,
	}
}

func (w *NotificationDeliveryWorker) Timeout(job *river.Job[models.NotificationDeliveryJobArgs]) time.Duration {
	return NOTIFICATION_DELIVERY_TIMEOUT
}

func (w *NotificationDeliveryWorker) Work(ctx context.Context, job *river.Job[models.NotificationDeliveryJobArgs]) error {
	logger := utils.LoggerFromContext(ctx).With(
		"notification_event_id", job.Args.NotificationEventId,
	)
	ctx = utils.StoreLoggerInContext(ctx, logger)

	exec := w.executorFactory.NewExecutor()

	event, err := w.repository.GetNotificationEventById(ctx, exec, job.Args.NotificationEventId)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load notification event", "error", err)
		return err
	}

	// Idempotency: the job may run more than once.
	if event.SentAt != nil {
		logger.DebugContext(ctx, "notification already delivered", "sent_at", event.SentAt)
		return nil
	}

	err = retry.Do(
		func() error {
			return w.sink.Push(ctx, event.UserId, event.Type, event.Title, event.Body, event.Data)
		},
		retry.Context(ctx),
		retry.Attempts(sinkRetryAttempts),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		utils.MetricNotificationFailures.Inc()
		logger.WarnContext(ctx, "abandoning notification after sink retries",
			"error", err,
			"user_id", event.UserId,
			"type", event.Type)
		return nil
	}

	return w.repository.MarkNotificationEventSent(ctx, exec, event.Id)
}
