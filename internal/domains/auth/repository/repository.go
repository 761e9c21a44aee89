package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"primecm/infras/otel"
	"primecm/infras/postgres"
	"primecm/internal/domains/auth/model"
	"primecm/shared/constant"
	gDto "primecm/shared/dto"
	"primecm/shared/logger"
	gRepo "primecm/shared/repository"
)

type AccessToken interface {
	Upsert(ctx context.Context, model model.AccessToken) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.AccessToken, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.AccessToken]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) AccessToken {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AccessToken](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Upsert stores the admin's token, replacing any previous one, so each admin
// holds at most one live token.
func (r *repositoryImpl) Upsert(ctx context.Context, token model.AccessToken) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Upsert")
	defer scope.End()

	query := fmt.Sprintf(
		"%s ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s",
		r.InsertQuery(),
		model.FieldAdminID,
		model.FieldID, model.FieldID,
		model.FieldIssuedAt, model.FieldIssuedAt,
		model.FieldExpirationDate, model.FieldExpirationDate,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = r.db.Write.NamedExecContext(ctx, query, token); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert access token: %w", err)
	}

	return nil
}
