package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/repositories/dbmodels"
)

// ListAvailableCases returns the provider's work queue:
//
//	(open pending cases) ∪ (cases assigned to the provider, not closed)
//	minus every case the provider has declined.
func (repo *MaystorDbRepository) ListAvailableCases(ctx context.Context, exec Executor,
	providerId string, pagination models.PaginationAndSorting,
) ([]models.Case, error) {
	query := NewQueryBuilder().
		Select(columnsNames("c", dbmodels.SelectCaseColumn)...).
		From(dbmodels.TABLE_CASES+" c").
		Where(squirrel.Or{
			squirrel.Eq{
				"c.is_open_case": true,
				"c.status":       models.CasePending,
			},
			squirrel.And{
				squirrel.Eq{"c.provider_id": providerId},
				squirrel.NotEq{"c.status": models.CaseClosed},
			},
		}).
		Where(`not exists (
			select 1
			from `+dbmodels.TABLE_CASE_DECLINES+` d
			where d.case_id = c.id and d.provider_id = ?
		)`, providerId)

	query = applyCaseSorting(query, pagination)

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCase)
}

// ListDeclinedCases is the complement view, newest decline first.
func (repo *MaystorDbRepository) ListDeclinedCases(ctx context.Context, exec Executor,
	providerId string,
) ([]models.DeclinedCase, error) {
	columns := columnsNames("c", dbmodels.SelectCaseColumn)
	columns = append(columns, "d.reason", "d.declined_at")

	query := NewQueryBuilder().
		Select(columns...).
		From(dbmodels.TABLE_CASE_DECLINES + " d").
		InnerJoin(dbmodels.TABLE_CASES + " c on c.id = d.case_id").
		Where(squirrel.Eq{"d.provider_id": providerId}).
		OrderBy("d.declined_at DESC")

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptDeclinedCase(providerId))
}
