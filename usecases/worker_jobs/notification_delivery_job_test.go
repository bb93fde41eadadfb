package worker_jobs

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/dmirchev92/server-maystorfix-sub007/mocks"
	"github.com/dmirchev92/server-maystorfix-sub007/models"
)

type NotificationDeliveryTestSuite struct {
	suite.Suite
	repository      *mocks.NotificationRepository
	sink            *mocks.NotificationSink
	executorFactory *mocks.ExecutorFactory
	executor        *mocks.Executor

	ctx     context.Context
	eventId uuid.UUID
}

func (suite *NotificationDeliveryTestSuite) SetupTest() {
	suite.repository = new(mocks.NotificationRepository)
	suite.sink = new(mocks.NotificationSink)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executor = new(mocks.Executor)

	suite.ctx = context.Background()
	suite.eventId = uuid.MustParse("00000000-0000-0000-0000-000000000042")

	suite.executorFactory.On("NewExecutor").Return(suite.executor)
}

func (suite *NotificationDeliveryTestSuite) makeWorker() *NotificationDeliveryWorker {
	return NewNotificationDeliveryWorker(suite.repository, suite.sink, suite.executorFactory)
}

func (suite *NotificationDeliveryTestSuite) makeJob() *river.Job[models.NotificationDeliveryJobArgs] {
	return &river.Job[models.NotificationDeliveryJobArgs]{
		Args: models.NotificationDeliveryJobArgs{NotificationEventId: suite.eventId},
	}
}

func (suite *NotificationDeliveryTestSuite) pendingEvent() models.NotificationEvent {
	return models.NotificationEvent{
		Id:     suite.eventId,
		UserId: "44aa7808-5f71-4a97-87a8-d573e8bdce08",
		Type:   models.NotificationCaseAccepted,
		Title:  "Your case was accepted",
		Body:   "Ivan accepted your request",
		Data:   json.RawMessage(`{"case_id":"case-1"}`),
	}
}

func (suite *NotificationDeliveryTestSuite) Test_Work_nominal() {
	event := suite.pendingEvent()

	// Work decorates the job context with a logger before touching anything, so
	// the context is matched loosely.
	suite.repository.On("GetNotificationEventById", mock.Anything, suite.executor, suite.eventId).
		Return(event, nil)
	suite.sink.On("Push", mock.Anything, event.UserId, event.Type, event.Title, event.Body, event.Data).
		Return(nil)
	suite.repository.On("MarkNotificationEventSent", mock.Anything, suite.executor, suite.eventId).
		Return(nil)

	err := suite.makeWorker().Work(suite.ctx, suite.makeJob())

	suite.NoError(err)
	suite.repository.AssertExpectations(suite.T())
	suite.sink.AssertExpectations(suite.T())
}

func (suite *NotificationDeliveryTestSuite) Test_Work_skips_already_sent() {
	event := suite.pendingEvent()
	sentAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	event.SentAt = &sentAt

	suite.repository.On("GetNotificationEventById", mock.Anything, suite.executor, suite.eventId).
		Return(event, nil)

	err := suite.makeWorker().Work(suite.ctx, suite.makeJob())

	suite.NoError(err)
	suite.sink.AssertNotCalled(suite.T(), "Push")
	suite.repository.AssertNotCalled(suite.T(), "MarkNotificationEventSent")
}

func (suite *NotificationDeliveryTestSuite) Test_Work_abandons_after_sink_failures() {
	event := suite.pendingEvent()

	suite.repository.On("GetNotificationEventById", mock.Anything, suite.executor, suite.eventId).
		Return(event, nil)
	suite.sink.On("Push", mock.Anything, event.UserId, event.Type, event.Title, event.Body, event.Data).
		Return(errors.New("push gateway down"))

	err := suite.makeWorker().Work(suite.ctx, suite.makeJob())

	// Delivery is best-effort: the job must not error out and retry forever.
	suite.NoError(err)
	suite.repository.AssertNotCalled(suite.T(), "MarkNotificationEventSent")
	suite.sink.AssertNumberOfCalls(suite.T(), "Push", sinkRetryAttempts)
}

func TestNotificationDelivery(t *testing.T) {
	suite.Run(t, new(NotificationDeliveryTestSuite))
}
