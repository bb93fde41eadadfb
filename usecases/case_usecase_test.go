package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/dmirchev92/server-maystorfix-sub007/mocks"
	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/pure_utils"
)

type CaseUsecaseTestSuite struct {
	suite.Suite
	repository         *mocks.CaseRepository
	declineRepository  *mocks.CaseDeclineRepository
	executorFactory    *mocks.ExecutorFactory
	transactionFactory *mocks.TransactionFactory
	executor           *mocks.Executor
	transaction        *mocks.Transaction
	notifier           *mocks.CaseNotifier
	accounting         *mocks.AccountingRepository

	ctx        context.Context
	caseId     string
	customerId string
	providerId string
}

func (suite *CaseUsecaseTestSuite) SetupTest() {
	suite.repository = new(mocks.CaseRepository)
	suite.declineRepository = new(mocks.CaseDeclineRepository)
	suite.executorFactory = new(mocks.ExecutorFactory)
	suite.executor = new(mocks.Executor)
	suite.transaction = new(mocks.Transaction)
	suite.transactionFactory = &mocks.TransactionFactory{TxMock: suite.transaction}
	suite.notifier = new(mocks.CaseNotifier)
	suite.accounting = new(mocks.AccountingRepository)

	suite.ctx = context.Background()
	suite.caseId = "6d899dc8-dc42-4839-9b6b-e843e4e60a20"
	suite.customerId = "44aa7808-5f71-4a97-87a8-d573e8bdce08"
	suite.providerId = "13617a88-56f5-4baa-8d11-ce102f7da907"
}

func (suite *CaseUsecaseTestSuite) makeUsecase() *CaseUseCase {
	return NewCaseUseCase(
		suite.executorFactory,
		suite.transactionFactory,
		suite.repository,
		suite.declineRepository,
		suite.notifier,
		suite.accounting,
	)
}

func (suite *CaseUsecaseTestSuite) AssertExpectations() {
	t := suite.T()
	suite.repository.AssertExpectations(t)
	suite.declineRepository.AssertExpectations(t)
	suite.executorFactory.AssertExpectations(t)
	suite.transactionFactory.AssertExpectations(t)
	suite.notifier.AssertExpectations(t)
	suite.accounting.AssertExpectations(t)
}

func (suite *CaseUsecaseTestSuite) pendingCase() models.Case {
	return models.Case{
		Id:             suite.caseId,
		Category:       "cat_plumber",
		ServiceType:    "Leaking pipe",
		Status:         models.CasePending,
		AssignmentType: models.AssignmentOpen,
		IsOpenCase:     true,
		CustomerId:     suite.customerId,
	}
}

func (suite *CaseUsecaseTestSuite) expectCaseDetails(c models.Case) {
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("GetCaseById", suite.ctx, suite.executor, c.Id).Return(c, nil)
	suite.repository.On("ListCaseEvents", suite.ctx, suite.executor, c.Id).
		Return([]models.CaseEvent{}, nil)
}

func (suite *CaseUsecaseTestSuite) Test_CreateCase_missing_fields() {
	usecase := suite.makeUsecase()

	_, err := usecase.CreateCase(suite.ctx, models.CreateCaseAttributes{
		Category:       "cat_plumber",
		AssignmentType: models.AssignmentOpen,
	})

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_CreateCase_self_assignment() {
	usecase := suite.makeUsecase()

	_, err := usecase.CreateCase(suite.ctx, models.CreateCaseAttributes{
		Category:       "cat_plumber",
		ServiceType:    "Leaking pipe",
		Description:    "Kitchen sink leaks",
		Phone:          "+359888123456",
		City:           "Sofia",
		AssignmentType: models.AssignmentSpecific,
		CustomerId:     suite.customerId,
		ProviderId:     &suite.customerId,
	})

	suite.ErrorIs(err, models.ErrSelfAssignment)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_CreateCase_specific_without_provider() {
	usecase := suite.makeUsecase()

	_, err := usecase.CreateCase(suite.ctx, models.CreateCaseAttributes{
		Category:       "cat_plumber",
		ServiceType:    "Leaking pipe",
		Description:    "Kitchen sink leaks",
		Phone:          "+359888123456",
		City:           "Sofia",
		AssignmentType: models.AssignmentSpecific,
		CustomerId:     suite.customerId,
	})

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_CreateCase_open_nominal() {
	attrs := models.CreateCaseAttributes{
		Category:       "cat_plumber",
		ServiceType:    "Leaking pipe",
		Description:    "Kitchen sink leaks",
		Phone:          "+359888123456",
		City:           "Sofia",
		AssignmentType: models.AssignmentOpen,
		CustomerId:     suite.customerId,
	}

	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("CreateCase", suite.ctx, suite.transaction, attrs,
		mock.AnythingOfType("string")).Return(nil)
	suite.repository.On("CreateCaseEvent", suite.ctx, suite.transaction,
		mock.MatchedBy(func(ev models.CreateCaseEventAttributes) bool {
			return ev.EventType == models.CaseCreated && ev.ActorId == suite.customerId
		})).Return(nil)
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.repository.On("GetCaseById", suite.ctx, suite.executor,
		mock.AnythingOfType("string")).Return(suite.pendingCase(), nil)
	suite.repository.On("ListCaseEvents", suite.ctx, suite.executor,
		mock.AnythingOfType("string")).Return([]models.CaseEvent{}, nil)

	c, err := suite.makeUsecase().CreateCase(suite.ctx, attrs)

	suite.NoError(err)
	suite.Equal(models.CasePending, c.Status)
	// An open case never notifies anyone at creation.
	suite.notifier.AssertNotCalled(suite.T(), "Notify")
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_AcceptCase_nominal() {
	accepted := suite.pendingCase()
	accepted.Status = models.CaseAccepted
	accepted.ProviderId = &suite.providerId

	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", suite.ctx, suite.transaction, suite.caseId).
		Return(suite.pendingCase(), nil)
	suite.repository.On("AcceptCase", suite.ctx, suite.transaction,
		suite.caseId, suite.providerId, "Ivan").Return(true, nil)
	suite.repository.On("CreateCaseEvent", suite.ctx, suite.transaction,
		mock.MatchedBy(func(ev models.CreateCaseEventAttributes) bool {
			return ev.EventType == models.CaseAcceptedEv && ev.ActorId == suite.providerId
		})).Return(nil)
	suite.expectCaseDetails(accepted)
	suite.notifier.On("Notify", suite.ctx, suite.customerId, models.NotificationCaseAccepted,
		mock.Anything, mock.Anything, mock.Anything).Return(nil)

	c, err := suite.makeUsecase().AcceptCase(suite.ctx, suite.caseId, suite.providerId, "Ivan")

	suite.NoError(err)
	suite.Equal(models.CaseAccepted, c.Status)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_AcceptCase_lost_race() {
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", suite.ctx, suite.transaction, suite.caseId).
		Return(suite.pendingCase(), nil)
	suite.repository.On("AcceptCase", suite.ctx, suite.transaction,
		suite.caseId, suite.providerId, "Ivan").Return(false, nil)

	_, err := suite.makeUsecase().AcceptCase(suite.ctx, suite.caseId, suite.providerId, "Ivan")

	suite.ErrorIs(err, models.ErrCaseAlreadyAssigned)
	suite.repository.AssertNotCalled(suite.T(), "CreateCaseEvent")
	suite.notifier.AssertNotCalled(suite.T(), "Notify")
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_AcceptCase_notifier_failure_does_not_fail_accept() {
	accepted := suite.pendingCase()
	accepted.Status = models.CaseAccepted
	accepted.ProviderId = &suite.providerId

	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", suite.ctx, suite.transaction, suite.caseId).
		Return(suite.pendingCase(), nil)
	suite.repository.On("AcceptCase", suite.ctx, suite.transaction,
		suite.caseId, suite.providerId, "Ivan").Return(true, nil)
	suite.repository.On("CreateCaseEvent", suite.ctx, suite.transaction, mock.Anything).Return(nil)
	suite.expectCaseDetails(accepted)
	suite.notifier.On("Notify", suite.ctx, suite.customerId, models.NotificationCaseAccepted,
		mock.Anything, mock.Anything, mock.Anything).
		Return(models.NotFoundError)

	_, err := suite.makeUsecase().AcceptCase(suite.ctx, suite.caseId, suite.providerId, "Ivan")

	suite.NoError(err)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_DeclineCase_by_assigned_provider_requeues() {
	assigned := suite.pendingCase()
	assigned.Status = models.CaseAccepted
	assigned.ProviderId = &suite.providerId

	attrs := models.CreateCaseDeclineAttributes{
		CaseId:     suite.caseId,
		ProviderId: suite.providerId,
		Reason:     null.StringFrom("overbooked"),
	}

	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", suite.ctx, suite.transaction, suite.caseId).
		Return(assigned, nil)
	suite.declineRepository.On("CreateCaseDecline", suite.ctx, suite.transaction, attrs).Return(nil)
	suite.repository.On("CreateCaseEvent", suite.ctx, suite.transaction,
		mock.MatchedBy(func(ev models.CreateCaseEventAttributes) bool {
			return ev.EventType == models.CaseDeclinedEv
		})).Return(nil)
	suite.repository.On("ReopenCase", suite.ctx, suite.transaction,
		suite.caseId, suite.providerId).Return(true, nil)
	suite.repository.On("CreateCaseEvent", suite.ctx, suite.transaction,
		mock.MatchedBy(func(ev models.CreateCaseEventAttributes) bool {
			return ev.EventType == models.CaseRequeued &&
				pure_utils.PtrValueOrDefault(ev.PreviousValue, "") == suite.providerId
		})).Return(nil)
	suite.notifier.On("Notify", suite.ctx, suite.customerId, models.NotificationCaseRequeued,
		mock.Anything, mock.Anything, mock.Anything).Return(nil)

	outcome, err := suite.makeUsecase().DeclineCase(suite.ctx, attrs)

	suite.NoError(err)
	suite.True(outcome.ReturnedToQueue)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_DeclineCase_by_unassigned_provider_is_passive() {
	attrs := models.CreateCaseDeclineAttributes{
		CaseId:     suite.caseId,
		ProviderId: suite.providerId,
	}

	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", suite.ctx, suite.transaction, suite.caseId).
		Return(suite.pendingCase(), nil)
	suite.declineRepository.On("CreateCaseDecline", suite.ctx, suite.transaction, attrs).Return(nil)
	suite.repository.On("CreateCaseEvent", suite.ctx, suite.transaction,
		mock.MatchedBy(func(ev models.CreateCaseEventAttributes) bool {
			return ev.EventType == models.CaseDeclinedEv
		})).Return(nil)

	outcome, err := suite.makeUsecase().DeclineCase(suite.ctx, attrs)

	suite.NoError(err)
	suite.False(outcome.ReturnedToQueue)
	suite.repository.AssertNotCalled(suite.T(), "ReopenCase")
	suite.notifier.AssertNotCalled(suite.T(), "Notify")
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_DeclineCase_of_completed_case_does_not_requeue() {
	// A completed case keeps its provider id; the provider's late decline is
	// recorded in the ledger but must not resurrect the case.
	done := suite.pendingCase()
	done.Status = models.CaseCompleted
	done.ProviderId = &suite.providerId

	attrs := models.CreateCaseDeclineAttributes{
		CaseId:     suite.caseId,
		ProviderId: suite.providerId,
		Reason:     null.StringFrom("never happened"),
	}

	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", suite.ctx, suite.transaction, suite.caseId).
		Return(done, nil)
	suite.declineRepository.On("CreateCaseDecline", suite.ctx, suite.transaction, attrs).Return(nil)
	suite.repository.On("CreateCaseEvent", suite.ctx, suite.transaction,
		mock.MatchedBy(func(ev models.CreateCaseEventAttributes) bool {
			return ev.EventType == models.CaseDeclinedEv
		})).Return(nil)

	outcome, err := suite.makeUsecase().DeclineCase(suite.ctx, attrs)

	suite.NoError(err)
	suite.False(outcome.ReturnedToQueue)
	suite.repository.AssertNotCalled(suite.T(), "ReopenCase")
	suite.notifier.AssertNotCalled(suite.T(), "Notify")
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_DeclineCase_twice_is_rejected() {
	attrs := models.CreateCaseDeclineAttributes{
		CaseId:     suite.caseId,
		ProviderId: suite.providerId,
	}

	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", suite.ctx, suite.transaction, suite.caseId).
		Return(suite.pendingCase(), nil)
	suite.declineRepository.On("CreateCaseDecline", suite.ctx, suite.transaction, attrs).
		Return(models.ErrAlreadyDeclined)

	_, err := suite.makeUsecase().DeclineCase(suite.ctx, attrs)

	suite.ErrorIs(err, models.ErrAlreadyDeclined)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_UndeclineCase_is_idempotent() {
	suite.executorFactory.On("NewExecutor").Return(suite.executor)
	suite.declineRepository.On("DeleteCaseDecline", suite.ctx, suite.executor,
		suite.caseId, suite.providerId).Return(nil)

	err := suite.makeUsecase().UndeclineCase(suite.ctx, suite.caseId, suite.providerId)

	suite.NoError(err)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_CompleteCase_from_pending_is_rejected() {
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", suite.ctx, suite.transaction, suite.caseId).
		Return(suite.pendingCase(), nil)
	suite.repository.On("CompleteCase", suite.ctx, suite.transaction, suite.caseId,
		(*string)(nil)).Return(false, nil)

	_, err := suite.makeUsecase().CompleteCase(suite.ctx, models.CompleteCaseAttributes{
		Id: suite.caseId,
	})

	suite.ErrorIs(err, models.ErrCaseNotCompletable)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_CompleteCase_records_income() {
	inFlight := suite.pendingCase()
	inFlight.Status = models.CaseWip
	inFlight.ProviderId = &suite.providerId

	done := inFlight
	done.Status = models.CaseCompleted

	attrs := models.CompleteCaseAttributes{
		Id:     suite.caseId,
		Notes:  null.StringFrom("replaced the siphon"),
		Income: null.FloatFrom(120),
	}

	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", suite.ctx, suite.transaction, suite.caseId).
		Return(inFlight, nil)
	suite.repository.On("CompleteCase", suite.ctx, suite.transaction, suite.caseId,
		attrs.Notes.Ptr()).Return(true, nil)
	suite.repository.On("CreateCaseEvent", suite.ctx, suite.transaction,
		mock.MatchedBy(func(ev models.CreateCaseEventAttributes) bool {
			return ev.EventType == models.CaseCompletedEv && ev.ActorId == suite.providerId
		})).Return(nil)
	suite.accounting.On("RecordCompletionIncome", suite.ctx, suite.caseId,
		suite.providerId, float64(120)).Return(nil)
	suite.notifier.On("Notify", suite.ctx, suite.customerId, models.NotificationCaseCompleted,
		mock.Anything, mock.Anything, mock.Anything).Return(nil)
	suite.expectCaseDetails(done)

	c, err := suite.makeUsecase().CompleteCase(suite.ctx, attrs)

	suite.NoError(err)
	suite.Equal(models.CaseCompleted, c.Status)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_UpdateCaseStatus_rejects_unknown_status() {
	_, err := suite.makeUsecase().UpdateCaseStatus(suite.ctx, models.UpdateCaseStatusAttributes{
		Id:     suite.caseId,
		Status: "instantiated",
	})

	suite.ErrorIs(err, models.ErrInvalidCaseStatus)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_UpdateCaseStatus_declined_needs_decline_operation() {
	_, err := suite.makeUsecase().UpdateCaseStatus(suite.ctx, models.UpdateCaseStatusAttributes{
		Id:     suite.caseId,
		Status: models.CaseDeclined,
	})

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_UpdateCaseStatus_same_status_is_noop() {
	suite.transactionFactory.On("Transaction", suite.ctx, mock.Anything).Return(nil)
	suite.repository.On("GetCaseById", suite.ctx, suite.transaction, suite.caseId).
		Return(suite.pendingCase(), nil)
	suite.expectCaseDetails(suite.pendingCase())

	_, err := suite.makeUsecase().UpdateCaseStatus(suite.ctx, models.UpdateCaseStatusAttributes{
		Id:     suite.caseId,
		Status: models.CasePending,
	})

	suite.NoError(err)
	suite.repository.AssertNotCalled(suite.T(), "UpdateCaseStatus")
	suite.AssertExpectations()
}

func (suite *CaseUsecaseTestSuite) Test_ListCases_rejects_inverted_date_range() {
	_, err := suite.makeUsecase().ListCases(suite.ctx, models.CaseFilters{
		StartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}, models.PaginationAndSorting{})

	suite.ErrorIs(err, models.BadParameterError)
	suite.AssertExpectations()
}

func TestCaseUsecase(t *testing.T) {
	suite.Run(t, new(CaseUsecaseTestSuite))
}
