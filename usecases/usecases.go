package usecases

import (
	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/repositories"
	"github.com/dmirchev92/server-maystorfix-sub007/repositories/clock"
	"github.com/dmirchev92/server-maystorfix-sub007/usecases/executor_factory"
	"github.com/dmirchev92/server-maystorfix-sub007/usecases/matching"
	"github.com/dmirchev92/server-maystorfix-sub007/usecases/worker_jobs"
)

// Usecases is the composition root: it owns the repositories and hands out
// fully wired usecase instances.
type Usecases struct {
	Repositories repositories.Repositories

	matchWeights models.MatchWeights
	clock        clock.Clock
}

func NewUsecases(repos repositories.Repositories) Usecases {
	return Usecases{
		Repositories: repos,
		matchWeights: models.DefaultMatchWeights,
		clock:        clock.New(),
	}
}

func (u Usecases) NewExecutorFactory() executor_factory.DbExecutorFactory {
	return executor_factory.NewDbExecutorFactory(u.Repositories.ExecutorGetter)
}

func (u Usecases) NewCaseNotifier() *CaseNotifier {
	return NewCaseNotifier(
		u.NewExecutorFactory(),
		u.Repositories.MaystorDbRepository,
		u.Repositories.TaskQueueRepository,
	)
}

func (u Usecases) NewMatchingEngine() *matching.Engine {
	return matching.NewEngine(
		u.NewExecutorFactory(),
		u.Repositories.ProviderDirectoryRepository,
		u.Repositories.MaystorDbRepository,
		u.matchWeights,
		u.clock,
	)
}

func (u Usecases) NewCaseUseCase() *CaseUseCase {
	executorFactory := u.NewExecutorFactory()
	return NewCaseUseCase(
		executorFactory,
		executorFactory,
		u.Repositories.MaystorDbRepository,
		u.Repositories.MaystorDbRepository,
		u.NewCaseNotifier(),
		u.Repositories.AccountingRepository,
	)
}

func (u Usecases) NewDispatcherUsecase() *DispatcherUsecase {
	executorFactory := u.NewExecutorFactory()
	return NewDispatcherUsecase(
		executorFactory,
		executorFactory,
		u.Repositories.MaystorDbRepository,
		u.NewMatchingEngine(),
		u.NewCaseNotifier(),
	)
}

func (u Usecases) NewNotificationDeliveryWorker(sink worker_jobs.NotificationSink) *worker_jobs.NotificationDeliveryWorker {
	return worker_jobs.NewNotificationDeliveryWorker(
		u.Repositories.MaystorDbRepository,
		sink,
		u.NewExecutorFactory(),
	)
}
