package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/repositories/dbmodels"
)

const (
	providerCacheSize = 256
	providerCacheTTL  = 30 * time.Second
)

// ProviderDirectoryRepository serves the provider snapshot read model. Results
// are cached per category: matching tolerates slightly stale snapshots because
// the subsequent assignment re-validates through the conditioned accept.
type ProviderDirectoryRepository struct {
	cache *expirable.LRU[string, []models.ProviderSnapshot]
}

func NewProviderDirectoryRepository() *ProviderDirectoryRepository {
	return &ProviderDirectoryRepository{
		cache: expirable.NewLRU[string, []models.ProviderSnapshot](providerCacheSize, nil, providerCacheTTL),
	}
}

func (repo *ProviderDirectoryRepository) ListProvidersByCategory(ctx context.Context, exec Executor,
	category string,
) ([]models.ProviderSnapshot, error) {
	if snapshots, ok := repo.cache.Get(category); ok {
		return snapshots, nil
	}

	snapshots, err := SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectProviderColumn...).
			From(dbmodels.TABLE_PROVIDERS).
			Where(squirrel.Eq{"category": category}).
			OrderBy("rating DESC, total_reviews DESC"),
		dbmodels.AdaptProviderSnapshot,
	)
	if err != nil {
		return nil, err
	}

	repo.cache.Add(category, snapshots)
	return snapshots, nil
}
