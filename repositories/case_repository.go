package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/repositories/dbmodels"
)

func (repo *MaystorDbRepository) GetCaseById(ctx context.Context, exec Executor, caseId string) (models.Case, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseColumn...).
			From(dbmodels.TABLE_CASES).
			Where(squirrel.Eq{"id": caseId}),
		dbmodels.AdaptCase,
	)
}

func (repo *MaystorDbRepository) ListCases(ctx context.Context, exec Executor,
	filters models.CaseFilters, pagination models.PaginationAndSorting,
) ([]models.Case, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectCaseColumn...).
		From(dbmodels.TABLE_CASES)

	if len(filters.Statuses) > 0 {
		query = query.Where(squirrel.Eq{"status": filters.Statuses})
	}
	if filters.Category != "" {
		query = query.Where(squirrel.Eq{"category": filters.Category})
	}
	if filters.City != "" {
		query = query.Where(squirrel.Eq{"city": filters.City})
	}
	if filters.CustomerId != "" {
		query = query.Where(squirrel.Eq{"customer_id": filters.CustomerId})
	}
	if !filters.StartDate.IsZero() {
		query = query.Where(squirrel.GtOrEq{"created_at": filters.StartDate})
	}
	if !filters.EndDate.IsZero() {
		query = query.Where(squirrel.LtOrEq{"created_at": filters.EndDate})
	}

	query = applyCaseSorting(query, pagination)

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptCase)
}

func applyCaseSorting(query squirrel.SelectBuilder, pagination models.PaginationAndSorting) squirrel.SelectBuilder {
	sorting := pagination.Sorting
	if sorting == "" {
		sorting = models.CasesSortingCreatedAt
	}
	order := pagination.Order
	if order == "" {
		order = models.SortingOrderDesc
	}
	query = query.OrderBy(string(sorting) + " " + string(order))
	if pagination.Limit > 0 {
		query = query.Limit(uint64(pagination.Limit))
	}
	return query
}

func (repo *MaystorDbRepository) CreateCase(ctx context.Context, exec Executor,
	attrs models.CreateCaseAttributes, newCaseId string,
) error {
	priority := attrs.Priority
	if priority == "" {
		priority = models.CasePriorityNormal
	}

	isOpenCase := attrs.AssignmentType == models.AssignmentOpen
	var providerId, providerName *string
	if attrs.AssignmentType == models.AssignmentSpecific {
		providerId = attrs.ProviderId
		providerName = attrs.ProviderName
	}

	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_CASES).
			Columns(
				"id",
				"category",
				"service_type",
				"description",
				"priority",
				"city",
				"neighborhood",
				"phone",
				"status",
				"assignment_type",
				"is_open_case",
				"provider_id",
				"provider_name",
				"customer_id",
			).
			Values(
				newCaseId,
				attrs.Category,
				attrs.ServiceType,
				attrs.Description,
				priority,
				attrs.City,
				attrs.Neighborhood,
				attrs.Phone,
				models.CasePending,
				attrs.AssignmentType,
				isOpenCase,
				providerId,
				providerName,
				attrs.CustomerId,
			),
	)
	return err
}

// AcceptCase is the conditioned update behind both manual acceptance and
// auto-assignment. The status='pending' predicate makes concurrent accepts
// race-safe: exactly one update matches, every other caller sees zero rows.
func (repo *MaystorDbRepository) AcceptCase(ctx context.Context, exec Executor,
	caseId, providerId, providerName string,
) (bool, error) {
	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_CASES).
			Set("status", models.CaseAccepted).
			Set("provider_id", providerId).
			Set("provider_name", providerName).
			Set("updated_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{
				"id":     caseId,
				"status": models.CasePending,
			}),
	)
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// ReopenCase resets a case back to the open queue after its assigned provider
// declined. Conditioned on the declining provider still owning the case and on
// the case still being in flight, so a racing accept by someone else is never
// clobbered and a terminal case is never resurrected.
func (repo *MaystorDbRepository) ReopenCase(ctx context.Context, exec Executor,
	caseId, providerId string,
) (bool, error) {
	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_CASES).
			Set("status", models.CasePending).
			Set("provider_id", nil).
			Set("provider_name", nil).
			Set("updated_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{
				"id":          caseId,
				"provider_id": providerId,
				"status":      []models.CaseStatus{models.CaseAccepted, models.CaseWip},
			}),
	)
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// CompleteCase is conditioned on the case being in an in-flight status.
func (repo *MaystorDbRepository) CompleteCase(ctx context.Context, exec Executor,
	caseId string, completionNotes *string,
) (bool, error) {
	rowsAffected, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_CASES).
			Set("status", models.CaseCompleted).
			Set("completed_at", squirrel.Expr("now()")).
			Set("completion_notes", completionNotes).
			Set("updated_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{
				"id":     caseId,
				"status": []models.CaseStatus{models.CaseAccepted, models.CaseWip},
			}),
	)
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (repo *MaystorDbRepository) UpdateCaseStatus(ctx context.Context, exec Executor,
	caseId string, status models.CaseStatus,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Update(dbmodels.TABLE_CASES).
			Set("status", status).
			Set("updated_at", squirrel.Expr("now()")).
			Where(squirrel.Eq{"id": caseId}),
	)
	return err
}
