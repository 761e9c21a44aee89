package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"primecm/infras/otel"
	"primecm/infras/postgres"
	"primecm/internal/domains/customer/model"
	gDto "primecm/shared/dto"
	gRepo "primecm/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Customer interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Customer) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Customer, error)
	GetTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Customer, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Customer, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type PhoneNumber interface {
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.PhoneNumber) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PhoneNumber, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PhoneNumber, error)
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
}

func New(db *postgres.Connection, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Customer](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

type phoneNumberRepositoryImpl struct {
	gRepo.Repository[model.PhoneNumber]
}

func NewPhoneNumber(db *postgres.Connection, otel otel.Otel) PhoneNumber {
	return &phoneNumberRepositoryImpl{
		Repository: gRepo.NewRepository[model.PhoneNumber](model.PhoneNumberEntityName, model.PhoneNumberTableName, model.FieldPhoneNumberID, db, otel),
	}
}
