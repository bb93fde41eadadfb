package repositories

import (
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
)

type Repositories struct {
	ExecutorGetter              ExecutorGetter
	MaystorDbRepository         *MaystorDbRepository
	ProviderDirectoryRepository *ProviderDirectoryRepository
	AccountingRepository        *AccountingRepository
	TaskQueueRepository         *TaskQueueRepository
}

func NewRepositories(pool *pgxpool.Pool, riverClient *river.Client[pgx.Tx]) Repositories {
	executorGetter := NewExecutorGetter(pool)

	return Repositories{
		ExecutorGetter:              executorGetter,
		MaystorDbRepository:         NewMaystorDbRepository(),
		ProviderDirectoryRepository: NewProviderDirectoryRepository(),
		AccountingRepository:        NewAccountingRepository(executorGetter),
		TaskQueueRepository:         NewTaskQueueRepository(riverClient),
	}
}
