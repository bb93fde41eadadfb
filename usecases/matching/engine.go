package matching

import (
	"context"
	"sort"
	"time"

	"github.com/hashicorp/go-set/v2"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/repositories"
	"github.com/dmirchev92/server-maystorfix-sub007/repositories/clock"
	"github.com/dmirchev92/server-maystorfix-sub007/usecases/executor_factory"
	"github.com/dmirchev92/server-maystorfix-sub007/utils"
)

type providerDirectory interface {
	ListProvidersByCategory(ctx context.Context, exec repositories.Executor,
		category string) ([]models.ProviderSnapshot, error)
}

type declineReader interface {
	ListDecliningProviderIds(ctx context.Context, exec repositories.Executor,
		caseId string) ([]string, error)
}

type Engine struct {
	executorFactory   executor_factory.ExecutorFactory
	providerDirectory providerDirectory
	declineReader     declineReader
	weights           models.MatchWeights
	clock             clock.Clock
}

func NewEngine(
	executorFactory executor_factory.ExecutorFactory,
	providerDirectory providerDirectory,
	declineReader declineReader,
	weights models.MatchWeights,
	cl clock.Clock,
) *Engine {
	return &Engine{
		executorFactory:   executorFactory,
		providerDirectory: providerDirectory,
		declineReader:     declineReader,
		weights:           weights,
		clock:             cl,
	}
}

// FindBestProviders ranks the eligible providers for the case and returns the
// top limit of them. Eligible means: category matches (or is related), no
// decline record for this case, currently available.
func (e *Engine) FindBestProviders(ctx context.Context, c models.Case, limit int) ([]models.ScoredProvider, error) {
	start := time.Now()
	defer func() {
		utils.MetricMatchingLatency.Observe(time.Since(start).Seconds())
	}()

	exec := e.executorFactory.NewExecutor()

	declined, err := e.declineReader.ListDecliningProviderIds(ctx, exec, c.Id)
	if err != nil {
		return nil, err
	}
	excluded := set.From(declined)

	var candidates []models.ProviderSnapshot
	for _, category := range models.EligibleCategories(c.Category) {
		snapshots, err := e.providerDirectory.ListProvidersByCategory(ctx, exec, category)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, snapshots...)
	}

	now := e.clock.Now()
	scored := make([]models.ScoredProvider, 0, len(candidates))
	for _, provider := range candidates {
		if excluded.Contains(provider.Id) || !provider.IsAvailable {
			continue
		}
		sp := Score(c, provider, e.weights, now)
		if sp.Factors.CategoryMatch == 0 {
			continue
		}
		scored = append(scored, sp)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if scored[i].Provider.Rating != scored[j].Provider.Rating {
			return scored[i].Provider.Rating > scored[j].Provider.Rating
		}
		return scored[i].Provider.TotalReviews > scored[j].Provider.TotalReviews
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}
