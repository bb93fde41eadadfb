package usecases

import (
	"context"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/repositories"
	"github.com/dmirchev92/server-maystorfix-sub007/usecases/executor_factory"
	"github.com/dmirchev92/server-maystorfix-sub007/utils"
)

type dispatcherCaseRepository interface {
	GetCaseById(ctx context.Context, exec repositories.Executor, caseId string) (models.Case, error)
	AcceptCase(ctx context.Context, exec repositories.Executor,
		caseId, providerId, providerName string) (bool, error)
	CreateCaseEvent(ctx context.Context, exec repositories.Executor,
		attrs models.CreateCaseEventAttributes) error
}

type matchingEngine interface {
	FindBestProviders(ctx context.Context, c models.Case, limit int) ([]models.ScoredProvider, error)
}

type DispatcherUsecase struct {
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	caseRepository     dispatcherCaseRepository
	matchingEngine     matchingEngine
	notifier           caseNotifier
}

func NewDispatcherUsecase(
	executorFactory executor_factory.ExecutorFactory,
	transactionFactory executor_factory.TransactionFactory,
	caseRepository dispatcherCaseRepository,
	engine matchingEngine,
	notifier caseNotifier,
) *DispatcherUsecase {
	return &DispatcherUsecase{
		executorFactory:    executorFactory,
		transactionFactory: transactionFactory,
		caseRepository:     caseRepository,
		matchingEngine:     engine,
		notifier:           notifier,
	}
}

// GetSmartMatches returns the ranked provider suggestions for a case without
// mutating anything.
func (uc *DispatcherUsecase) GetSmartMatches(ctx context.Context, caseId string, limit int) ([]models.ScoredProvider, error) {
	c, err := uc.caseRepository.GetCaseById(ctx, uc.executorFactory.NewExecutor(), caseId)
	if err != nil {
		return nil, err
	}
	return uc.matchingEngine.FindBestProviders(ctx, c, limit)
}

// AutoAssignCase assigns the top-ranked provider to the case. It goes through
// the same conditioned accept as manual acceptance, so a racing human accept
// and the dispatcher still produce exactly one winner. A nil result without
// error means no eligible provider exists; that is a legitimate terminal
// outcome, not a failure.
func (uc *DispatcherUsecase) AutoAssignCase(ctx context.Context, caseId string) (*string, error) {
	logger := utils.LoggerFromContext(ctx)

	c, err := uc.caseRepository.GetCaseById(ctx, uc.executorFactory.NewExecutor(), caseId)
	if err != nil {
		return nil, errors.Wrap(err, "could not load case for auto-assignment")
	}

	best, err := uc.matchingEngine.FindBestProviders(ctx, c, 1)
	if err != nil {
		return nil, errors.Wrap(err, "could not rank providers")
	}
	if len(best) == 0 {
		logger.InfoContext(ctx, "no eligible provider for case", "case_id", caseId)
		return nil, nil
	}

	winner := best[0].Provider

	err = uc.transactionFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		accepted, err := uc.caseRepository.AcceptCase(ctx, tx, caseId, winner.Id, winner.Name)
		if err != nil {
			return err
		}
		if !accepted {
			utils.MetricAssignConflicts.Inc()
			return models.ErrCaseAlreadyAssigned
		}

		return uc.caseRepository.CreateCaseEvent(ctx, tx, models.CreateCaseEventAttributes{
			CaseId:    caseId,
			ActorId:   winner.Id,
			EventType: models.CaseAssigned,
			NewValue:  &winner.Id,
		})
	})
	if err != nil {
		return nil, err
	}

	utils.MetricCasesAssigned.With(prometheus.Labels{"origin": "auto"}).Inc()
	logger.InfoContext(ctx, "auto-assigned case",
		"case_id", caseId,
		"provider_id", winner.Id,
		"score", best[0].Score)

	uc.notifyAssignment(ctx, c, winner)

	return &winner.Id, nil
}

func (uc *DispatcherUsecase) notifyAssignment(ctx context.Context, c models.Case, winner models.ProviderSnapshot) {
	logger := utils.LoggerFromContext(ctx)

	if err := uc.notifier.Notify(ctx, winner.Id, models.NotificationCaseAssigned,
		"New case assigned to you", c.ServiceType,
		map[string]any{"case_id": c.Id}); err != nil {
		logger.ErrorContext(ctx, "failed to enqueue provider notification",
			"error", err, "case_id", c.Id)
	}

	if err := uc.notifier.Notify(ctx, c.CustomerId, models.NotificationCaseAccepted,
		"A provider took your case", winner.Name+" will handle your request",
		map[string]any{"case_id": c.Id, "provider_id": winner.Id}); err != nil {
		logger.ErrorContext(ctx, "failed to enqueue customer notification",
			"error", err, "case_id", c.Id)
	}
}
