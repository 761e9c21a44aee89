package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"primecm/infras/otel"
	"primecm/infras/postgres"
	"primecm/internal/domains/admin/model"
	"primecm/shared/constant"
	gDto "primecm/shared/dto"
	"primecm/shared/logger"
	gRepo "primecm/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Admin interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Admin) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Admin, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Admin, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	AnyExist(ctx context.Context) (bool, error)
	LockBootstrapTx(ctx context.Context, sqltx *sqlx.Tx) (bool, error)
}

// bootstrapLockKey is the advisory lock taken while the first admin registers.
const bootstrapLockKey int64 = 0x7072696d65636d

type PhoneNumber interface {
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.PhoneNumber) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PhoneNumber, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Admin]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Admin {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Admin](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// AnyExist reports whether at least one admin has been registered.
func (r *repositoryImpl) AnyExist(ctx context.Context) (exist bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".AnyExist")
	defer scope.End()

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s)", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.GetContext(ctx, &exist, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check any admin exists: %w", err)
	}

	return exist, nil
}

// LockBootstrapTx holds the bootstrap lock until sqltx ends and then reports
// whether an admin already exists. Concurrent bootstrap registrations queue on
// the lock, so only the first one sees an empty table.
func (r *repositoryImpl) LockBootstrapTx(ctx context.Context, sqltx *sqlx.Tx) (exist bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".LockBootstrapTx")
	defer scope.End()

	if _, err = sqltx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", bootstrapLockKey); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to take bootstrap lock: %w", err)
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s)", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = sqltx.GetContext(ctx, &exist, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check any admin exists: %w", err)
	}

	return exist, nil
}

type phoneNumberRepositoryImpl struct {
	gRepo.Repository[model.PhoneNumber]
}

func NewPhoneNumber(db *postgres.Connection, otel otel.Otel) PhoneNumber {
	return &phoneNumberRepositoryImpl{
		Repository: gRepo.NewRepository[model.PhoneNumber](model.PhoneNumberEntityName, model.PhoneNumberTableName, model.FieldPhoneNumberID, db, otel),
	}
}
