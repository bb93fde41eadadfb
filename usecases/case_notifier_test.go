package usecases

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/dmirchev92/server-maystorfix-sub007/mocks"
	"github.com/dmirchev92/server-maystorfix-sub007/models"
)

type CaseNotifierTestSuite struct {
	suite.Suite
	outboxRepository   *mocks.NotificationRepository
	taskQueue          *mocks.TaskQueueRepository
	transactionFactory *mocks.TransactionFactory
	transaction        *mocks.Transaction

	ctx context.Context
}

func (suite *CaseNotifierTestSuite) SetupTest() {
	suite.outboxRepository = new(mocks.NotificationRepository)
	suite.taskQueue = new(mocks.TaskQueueRepository)
	suite.transaction = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}

	suite.ctx = context.Background()
}

func (suite *CaseNotifierTestSuite) makeNotifier() *CaseNotifier {
	return NewCaseNotifier(suite.transactionFactory, suite.outboxRepository, suite.taskQueue)
}

func (suite *CaseNotifierTestSuite) Test_Notify_outbox_and_job_share_a_transaction() {
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.outboxRepository.On("CreateNotificationEvent", suite.ctx, suite.transaction,
		mock.MatchedBy(func(attrs models.CreateNotificationEventAttributes) bool {
			return attrs.UserId == "user-1" &&
				attrs.Type == models.NotificationCaseAssigned &&
				attrs.Title == "New case for you"
		})).Return(nil)
	suite.taskQueue.On("EnqueueNotificationDelivery", suite.ctx, suite.transaction,
		mock.AnythingOfType("uuid.UUID")).Return(nil)

	err := suite.makeNotifier().Notify(suite.ctx, "user-1", models.NotificationCaseAssigned,
		"New case for you", "Leaking pipe", map[string]any{"case_id": "case-1"})

	suite.NoError(err)
	suite.outboxRepository.AssertExpectations(suite.T())
	suite.taskQueue.AssertExpectations(suite.T())
}

func (suite *CaseNotifierTestSuite) Test_Notify_outbox_failure_aborts_the_enqueue() {
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.outboxRepository.On("CreateNotificationEvent", suite.ctx, suite.transaction,
		mock.Anything).Return(errors.New("insert failed"))

	err := suite.makeNotifier().Notify(suite.ctx, "user-1", models.NotificationCaseAssigned,
		"New case for you", "Leaking pipe", nil)

	suite.Error(err)
	suite.taskQueue.AssertNotCalled(suite.T(), "EnqueueNotificationDelivery")
}

func TestCaseNotifier(t *testing.T) {
	suite.Run(t, new(CaseNotifierTestSuite))
}
