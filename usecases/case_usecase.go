package usecases

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/pure_utils"
	"github.com/dmirchev92/server-maystorfix-sub007/repositories"
	"github.com/dmirchev92/server-maystorfix-sub007/usecases/executor_factory"
	"github.com/dmirchev92/server-maystorfix-sub007/utils"
)

type CaseUseCaseRepository interface {
	GetCaseById(ctx context.Context, exec repositories.Executor, caseId string) (models.Case, error)
	ListCases(ctx context.Context, exec repositories.Executor,
		filters models.CaseFilters, pagination models.PaginationAndSorting) ([]models.Case, error)
	CreateCase(ctx context.Context, exec repositories.Executor,
		attrs models.CreateCaseAttributes, newCaseId string) error
	AcceptCase(ctx context.Context, exec repositories.Executor,
		caseId, providerId, providerName string) (bool, error)
	ReopenCase(ctx context.Context, exec repositories.Executor,
		caseId, providerId string) (bool, error)
	CompleteCase(ctx context.Context, exec repositories.Executor,
		caseId string, completionNotes *string) (bool, error)
	UpdateCaseStatus(ctx context.Context, exec repositories.Executor,
		caseId string, status models.CaseStatus) error
	ListAvailableCases(ctx context.Context, exec repositories.Executor,
		providerId string, pagination models.PaginationAndSorting) ([]models.Case, error)
	ListDeclinedCases(ctx context.Context, exec repositories.Executor,
		providerId string) ([]models.DeclinedCase, error)
	CreateCaseEvent(ctx context.Context, exec repositories.Executor,
		attrs models.CreateCaseEventAttributes) error
	ListCaseEvents(ctx context.Context, exec repositories.Executor,
		caseId string) ([]models.CaseEvent, error)
}

type CaseDeclineRepository interface {
	CreateCaseDecline(ctx context.Context, exec repositories.Executor,
		attrs models.CreateCaseDeclineAttributes) error
	DeleteCaseDecline(ctx context.Context, exec repositories.Executor,
		caseId, providerId string) error
}

type caseNotifier interface {
	Notify(ctx context.Context, userId string, notificationType models.NotificationType,
		title, body string, data map[string]any) error
}

type CaseUseCase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         CaseUseCaseRepository
	declineRepository  CaseDeclineRepository
	notifier           caseNotifier
	accounting         AccountingRepository
	validate           *validator.Validate
}

func NewCaseUseCase(
	executorFactory executor_factory.ExecutorFactory,
	transactionFactory executor_factory.TransactionFactory,
	repository CaseUseCaseRepository,
	declineRepository CaseDeclineRepository,
	notifier caseNotifier,
	accounting AccountingRepository,
) *CaseUseCase {
	return &CaseUseCase{
		executorFactory:    executorFactory,
		transactionFactory: transactionFactory,
		repository:         repository,
		declineRepository:  declineRepository,
		notifier:           notifier,
		accounting:         accounting,
		validate:           validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (usecase *CaseUseCase) CreateCase(ctx context.Context, attrs models.CreateCaseAttributes) (models.Case, error) {
	if err := usecase.validate.Struct(attrs); err != nil {
		return models.Case{}, fmt.Errorf("invalid case input: %v %w", err, models.BadParameterError)
	}
	if attrs.ProviderId != nil && *attrs.ProviderId == attrs.CustomerId {
		return models.Case{}, models.ErrSelfAssignment
	}
	if attrs.AssignmentType == models.AssignmentSpecific && attrs.ProviderId == nil {
		return models.Case{}, fmt.Errorf(
			"specific assignment requires a provider id %w", models.BadParameterError)
	}

	newCaseId := uuid.NewString()
	err := usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		if err := usecase.repository.CreateCase(ctx, tx, attrs, newCaseId); err != nil {
			return err
		}

		events := []models.CreateCaseEventAttributes{{
			CaseId:    newCaseId,
			ActorId:   attrs.CustomerId,
			EventType: models.CaseCreated,
		}}
		if attrs.AssignmentType == models.AssignmentSpecific {
			events = append(events, models.CreateCaseEventAttributes{
				CaseId:    newCaseId,
				ActorId:   attrs.CustomerId,
				EventType: models.CaseAssigned,
				NewValue:  attrs.ProviderId,
			})
		}
		for _, event := range events {
			if err := usecase.repository.CreateCaseEvent(ctx, tx, event); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Case{}, err
	}

	utils.MetricCasesCreated.
		With(prometheus.Labels{"assignment_type": string(attrs.AssignmentType)}).
		Inc()

	if attrs.AssignmentType == models.AssignmentSpecific {
		usecase.notifyBestEffort(ctx, *attrs.ProviderId, models.NotificationCaseAssigned,
			"New case for you", attrs.ServiceType, map[string]any{"case_id": newCaseId})
	}

	return usecase.getCaseWithDetails(ctx, newCaseId)
}

// AcceptCase moves a pending case to accepted through the conditioned update.
// When several providers race, the single matching update decides the winner;
// everyone else gets ErrCaseAlreadyAssigned.
func (usecase *CaseUseCase) AcceptCase(ctx context.Context, caseId, providerId, providerName string) (models.Case, error) {
	err := usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		if _, err := usecase.repository.GetCaseById(ctx, tx, caseId); err != nil {
			return err
		}

		accepted, err := usecase.repository.AcceptCase(ctx, tx, caseId, providerId, providerName)
		if err != nil {
			return err
		}
		if !accepted {
			utils.MetricAssignConflicts.Inc()
			return models.ErrCaseAlreadyAssigned
		}

		return usecase.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
			CaseId:    caseId,
			ActorId:   providerId,
			EventType: models.CaseAcceptedEv,
			NewValue:  &providerId,
		})
	})
	if err != nil {
		return models.Case{}, err
	}

	utils.MetricCasesAssigned.With(prometheus.Labels{"origin": "manual"}).Inc()

	c, err := usecase.getCaseWithDetails(ctx, caseId)
	if err != nil {
		return models.Case{}, err
	}
	usecase.notifyBestEffort(ctx, c.CustomerId, models.NotificationCaseAccepted,
		"Your case was accepted", providerName+" accepted your request",
		map[string]any{"case_id": caseId, "provider_id": providerId})

	return c, nil
}

// DeclineCase appends to the decline ledger. Only when the declining provider
// currently owns the case does the decline also reset it to the open queue.
func (usecase *CaseUseCase) DeclineCase(ctx context.Context, attrs models.CreateCaseDeclineAttributes) (models.DeclineOutcome, error) {
	var outcome models.DeclineOutcome
	var customerId string

	err := usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		c, err := usecase.repository.GetCaseById(ctx, tx, attrs.CaseId)
		if err != nil {
			return err
		}
		customerId = c.CustomerId

		if err := usecase.declineRepository.CreateCaseDecline(ctx, tx, attrs); err != nil {
			return err
		}

		if err := usecase.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
			CaseId:         attrs.CaseId,
			ActorId:        attrs.ProviderId,
			EventType:      models.CaseDeclinedEv,
			AdditionalNote: attrs.Reason.Ptr(),
		}); err != nil {
			return err
		}

		// A completed or closed case is terminal: the ledger entry is recorded,
		// but the case never goes back to the queue.
		if c.Status.IsFinalized() || !c.IsAssignedTo(attrs.ProviderId) {
			return nil
		}

		// Conditioned on the provider still owning the case, so we never clobber
		// a concurrent transition by someone else.
		reopened, err := usecase.repository.ReopenCase(ctx, tx, attrs.CaseId, attrs.ProviderId)
		if err != nil {
			return err
		}
		if reopened {
			outcome.ReturnedToQueue = true
			previous := attrs.ProviderId
			return usecase.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
				CaseId:        attrs.CaseId,
				ActorId:       attrs.ProviderId,
				EventType:     models.CaseRequeued,
				PreviousValue: &previous,
			})
		}
		return nil
	})
	if err != nil {
		return models.DeclineOutcome{}, err
	}

	utils.MetricCasesDeclined.Inc()

	if outcome.ReturnedToQueue {
		usecase.notifyBestEffort(ctx, customerId, models.NotificationCaseRequeued,
			"Your case is back in the queue", "The provider declined your request",
			map[string]any{"case_id": attrs.CaseId})
	}

	return outcome, nil
}

// UndeclineCase removes the ledger entry; removing an absent one is a no-op.
func (usecase *CaseUseCase) UndeclineCase(ctx context.Context, caseId, providerId string) error {
	return usecase.declineRepository.DeleteCaseDecline(
		ctx, usecase.executorFactory.NewExecutor(), caseId, providerId)
}

func (usecase *CaseUseCase) CompleteCase(ctx context.Context, attrs models.CompleteCaseAttributes) (models.Case, error) {
	var completedCase models.Case

	err := usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		c, err := usecase.repository.GetCaseById(ctx, tx, attrs.Id)
		if err != nil {
			return err
		}

		completed, err := usecase.repository.CompleteCase(ctx, tx, attrs.Id, attrs.Notes.Ptr())
		if err != nil {
			return err
		}
		if !completed {
			return fmt.Errorf("case %s has status %s %w",
				attrs.Id, c.Status, models.ErrCaseNotCompletable)
		}
		completedCase = c

		status := string(models.CaseCompleted)
		return usecase.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
			CaseId:         attrs.Id,
			ActorId:        pure_utils.PtrValueOrDefault(c.ProviderId, c.CustomerId),
			EventType:      models.CaseCompletedEv,
			AdditionalNote: attrs.Notes.Ptr(),
			NewValue:       &status,
			PreviousValue:  (*string)(&c.Status),
		})
	})
	if err != nil {
		return models.Case{}, err
	}

	if attrs.Income.Valid && completedCase.ProviderId != nil {
		if err := usecase.accounting.RecordCompletionIncome(ctx, attrs.Id,
			*completedCase.ProviderId, attrs.Income.Float64); err != nil {
			utils.LoggerFromContext(ctx).ErrorContext(ctx,
				"failed to record completion income",
				"error", err, "case_id", attrs.Id)
		}
	}

	usecase.notifyBestEffort(ctx, completedCase.CustomerId, models.NotificationCaseCompleted,
		"Your case was completed", pure_utils.PtrValueOrDefault(attrs.Notes.Ptr(), ""),
		map[string]any{"case_id": attrs.Id})

	return usecase.getCaseWithDetails(ctx, attrs.Id)
}

// UpdateCaseStatus is the generic transition, guarded by the status whitelist.
// A completed target goes through the same side effects as CompleteCase; a
// declined target needs a declining provider and must use DeclineCase.
func (usecase *CaseUseCase) UpdateCaseStatus(ctx context.Context, attrs models.UpdateCaseStatusAttributes) (models.Case, error) {
	status, err := models.ValidateCaseStatus(string(attrs.Status))
	if err != nil {
		return models.Case{}, err
	}

	switch status {
	case models.CaseCompleted:
		return usecase.CompleteCase(ctx, models.CompleteCaseAttributes{
			Id:    attrs.Id,
			Notes: attrs.Message,
		})
	case models.CaseDeclined:
		return models.Case{}, fmt.Errorf(
			"declining requires a provider id, use the decline operation %w", models.BadParameterError)
	}

	err = usecase.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		c, err := usecase.repository.GetCaseById(ctx, tx, attrs.Id)
		if err != nil {
			return err
		}
		if c.Status == status {
			return nil
		}

		if err := usecase.repository.UpdateCaseStatus(ctx, tx, attrs.Id, status); err != nil {
			return err
		}

		newStatus := string(status)
		return usecase.repository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
			CaseId:         attrs.Id,
			ActorId:        c.CustomerId,
			EventType:      models.CaseStatusUpdate,
			AdditionalNote: attrs.Message.Ptr(),
			NewValue:       &newStatus,
			PreviousValue:  (*string)(&c.Status),
		})
	})
	if err != nil {
		return models.Case{}, err
	}

	return usecase.getCaseWithDetails(ctx, attrs.Id)
}

func (usecase *CaseUseCase) GetCase(ctx context.Context, caseId string) (models.Case, error) {
	return usecase.getCaseWithDetails(ctx, caseId)
}

func (usecase *CaseUseCase) ListCases(ctx context.Context, filters models.CaseFilters,
	pagination models.PaginationAndSorting,
) ([]models.Case, error) {
	if !filters.StartDate.IsZero() && !filters.EndDate.IsZero() && filters.StartDate.After(filters.EndDate) {
		return nil, fmt.Errorf("start date must be before end date %w", models.BadParameterError)
	}
	return usecase.repository.ListCases(ctx, usecase.executorFactory.NewExecutor(), filters, pagination)
}

func (usecase *CaseUseCase) ListCustomerCases(ctx context.Context, customerId string) ([]models.Case, error) {
	return usecase.repository.ListCases(ctx, usecase.executorFactory.NewExecutor(),
		models.CaseFilters{CustomerId: customerId}, models.PaginationAndSorting{})
}

// GetAvailableCases is the provider's work queue: open pending cases plus the
// provider's own non-closed cases, minus everything they declined.
func (usecase *CaseUseCase) GetAvailableCases(ctx context.Context, providerId string,
	pagination models.PaginationAndSorting,
) ([]models.Case, error) {
	return usecase.repository.ListAvailableCases(
		ctx, usecase.executorFactory.NewExecutor(), providerId, pagination)
}

func (usecase *CaseUseCase) GetDeclinedCases(ctx context.Context, providerId string) ([]models.DeclinedCase, error) {
	return usecase.repository.ListDeclinedCases(
		ctx, usecase.executorFactory.NewExecutor(), providerId)
}

func (usecase *CaseUseCase) ListCaseEvents(ctx context.Context, caseId string) ([]models.CaseEvent, error) {
	return usecase.repository.ListCaseEvents(
		ctx, usecase.executorFactory.NewExecutor(), caseId)
}

func (usecase *CaseUseCase) getCaseWithDetails(ctx context.Context, caseId string) (models.Case, error) {
	exec := usecase.executorFactory.NewExecutor()

	c, err := usecase.repository.GetCaseById(ctx, exec, caseId)
	if err != nil {
		return models.Case{}, err
	}

	events, err := usecase.repository.ListCaseEvents(ctx, exec, caseId)
	if err != nil {
		return models.Case{}, err
	}
	c.Events = events

	return c, nil
}

// notifyBestEffort: notification is decoupled from case-state correctness. A
// failed enqueue is logged and swallowed, never surfaced to the caller.
func (usecase *CaseUseCase) notifyBestEffort(ctx context.Context, userId string,
	notificationType models.NotificationType, title, body string, data map[string]any,
) {
	if err := usecase.notifier.Notify(ctx, userId, notificationType, title, body, data); err != nil {
		utils.LoggerFromContext(ctx).ErrorContext(ctx,
			"failed to enqueue case notification",
			"error", err, "user_id", userId, "type", string(notificationType))
	}
}
