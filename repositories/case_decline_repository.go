package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/repositories/dbmodels"
)

// CreateCaseDecline appends to the decline ledger. The (case_id, provider_id)
// unique constraint is the arbiter under racing double-declines: the loser
// gets ErrAlreadyDeclined, never a duplicate row.
func (repo *MaystorDbRepository) CreateCaseDecline(ctx context.Context, exec Executor,
	attrs models.CreateCaseDeclineAttributes,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Insert(dbmodels.TABLE_CASE_DECLINES).
			Columns(
				"case_id",
				"provider_id",
				"reason",
			).
			Values(
				attrs.CaseId,
				attrs.ProviderId,
				attrs.Reason.Ptr(),
			),
	)
	if err != nil {
		if IsUniqueViolationError(err) {
			return models.ErrAlreadyDeclined
		}
		return err
	}
	return nil
}

// DeleteCaseDecline is idempotent: removing an absent record is not an error.
func (repo *MaystorDbRepository) DeleteCaseDecline(ctx context.Context, exec Executor,
	caseId, providerId string,
) error {
	_, err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().Delete(dbmodels.TABLE_CASE_DECLINES).
			Where(squirrel.Eq{
				"case_id":     caseId,
				"provider_id": providerId,
			}),
	)
	return err
}

func (repo *MaystorDbRepository) GetCaseDecline(ctx context.Context, exec Executor,
	caseId, providerId string,
) (*models.CaseDecline, error) {
	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseDeclineColumn...).
			From(dbmodels.TABLE_CASE_DECLINES).
			Where(squirrel.Eq{
				"case_id":     caseId,
				"provider_id": providerId,
			}),
		dbmodels.AdaptCaseDecline,
	)
}

// ListDecliningProviderIds returns the ids of every provider that has declined
// the case, for eligibility filtering during matching.
func (repo *MaystorDbRepository) ListDecliningProviderIds(ctx context.Context, exec Executor,
	caseId string,
) ([]string, error) {
	declines, err := SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseDeclineColumn...).
			From(dbmodels.TABLE_CASE_DECLINES).
			Where(squirrel.Eq{"case_id": caseId}),
		dbmodels.AdaptCaseDecline,
	)
	if err != nil {
		return nil, err
	}

	providerIds := make([]string, len(declines))
	for i, decline := range declines {
		providerIds[i] = decline.ProviderId
	}
	return providerIds, nil
}
