package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/dmirchev92/server-maystorfix-sub007/models"
	"github.com/dmirchev92/server-maystorfix-sub007/repositories/dbmodels"
)

func (repo *MaystorDbRepository) CreateCaseEvent(ctx context.Context, exec Executor,
	attrs models.CreateCaseEventAttributes,
) error {
	return repo.BatchCreateCaseEvents(ctx, exec, []models.CreateCaseEventAttributes{attrs})
}

func (repo *MaystorDbRepository) BatchCreateCaseEvents(ctx context.Context, exec Executor,
	attrs []models.CreateCaseEventAttributes,
) error {
	query := NewQueryBuilder().Insert(dbmodels.TABLE_CASE_EVENTS).
		Columns(
			"id",
			"case_id",
			"actor_id",
			"event_type",
			"additional_note",
			"new_value",
			"previous_value",
		)

	for _, attr := range attrs {
		query = query.Values(
			uuid.NewString(),
			attr.CaseId,
			attr.ActorId,
			attr.EventType,
			attr.AdditionalNote,
			attr.NewValue,
			attr.PreviousValue,
		)
	}

	_, err := ExecBuilder(ctx, exec, query)
	return err
}

func (repo *MaystorDbRepository) ListCaseEvents(ctx context.Context, exec Executor,
	caseId string,
) ([]models.CaseEvent, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCaseEventColumn...).
			From(dbmodels.TABLE_CASE_EVENTS).
			Where(squirrel.Eq{"case_id": caseId}).
			OrderBy("created_at DESC"),
		dbmodels.AdaptCaseEvent,
	)
}
