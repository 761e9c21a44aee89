package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"primecm/infras/otel"
	"primecm/infras/postgres"
	"primecm/internal/domains/booking/model"
	"primecm/shared/constant"
	gDto "primecm/shared/dto"
	"primecm/shared/logger"
	gRepo "primecm/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Transaction interface {
	GetOrCreateTx(ctx context.Context, sqltx *sqlx.Tx, txn model.Transaction) (model.Transaction, error)
}

type Booking interface {
	UpsertTx(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking) error
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
}

type transactionRepositoryImpl struct {
	gRepo.Repository[model.Transaction]
	otel otel.Otel
}

func NewTransaction(db *postgres.Connection, otel otel.Otel) Transaction {
	return &transactionRepositoryImpl{
		Repository: gRepo.NewRepository[model.Transaction](model.TransactionEntityName, model.TransactionTableName, model.FieldTransactionPK, db, otel),
		otel:       otel,
	}
}

// GetOrCreateTx returns the customer's transaction for txn.At's calendar day,
// inserting txn when none exists. A concurrent insert of the same day makes
// this insert a no-op and the winner's row is returned.
func (r *transactionRepositoryImpl) GetOrCreateTx(ctx context.Context, sqltx *sqlx.Tx, txn model.Transaction) (res model.Transaction, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.TransactionEntityName+".GetOrCreateTx")
	defer scope.End()

	day := txn.At.Format(constant.DayDateFormat)

	args := map[string]any{
		model.FieldTransactionPK:         txn.ID,
		model.FieldTransactionCustomerID: txn.CustomerID,
		model.FieldTransactionAt:         day,
		constant.FieldCreatedAt:          txn.CreatedAt,
		constant.FieldModifiedAt:         txn.ModifiedAt,
		constant.FieldCreatedBy:          txn.CreatedBy,
		constant.FieldModifiedBy:         txn.ModifiedBy,
	}

	query := fmt.Sprintf("%s ON CONFLICT (%s, %s) DO NOTHING",
		r.InsertQuery(),
		model.FieldTransactionCustomerID, model.FieldTransactionAt,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = sqltx.NamedExecContext(ctx, query, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to insert transaction: %w", err)
	}

	res, err = r.GetTx(ctx, sqltx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTransactionCustomerID,
				Value:    txn.CustomerID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TransactionTableName,
			},
			gDto.Filter{
				Field:    model.FieldTransactionAt,
				Value:    day,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TransactionTableName,
			},
		},
	})
	if err != nil {
		scope.TraceError(err)

		return res, err
	}

	if res.ID == constant.Empty {
		err = fmt.Errorf("transaction of customer %s on %s vanished after insert", txn.CustomerID, day)
		scope.TraceError(err)

		return res, err
	}

	return res, nil
}

type bookingRepositoryImpl struct {
	gRepo.Repository[model.Booking]
	otel otel.Otel
}

func NewBooking(db *postgres.Connection, otel otel.Otel) Booking {
	return &bookingRepositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// UpsertTx inserts the line with count 1, or bumps the count of the existing
// line of the same shape under the same transaction.
func (r *bookingRepositoryImpl) UpsertTx(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".UpsertTx")
	defer scope.End()

	query := fmt.Sprintf(
		"%s ON CONFLICT (%s, %s, %s, %s, %s) DO UPDATE SET %s = %s.%s + 1, %s = EXCLUDED.%s, %s = EXCLUDED.%s",
		r.InsertQuery(),
		model.FieldTransactionID, model.FieldPaperType, model.FieldPaperSize, model.FieldRate, model.FieldCopies,
		model.FieldCount, model.TableName, model.FieldCount,
		constant.FieldModifiedAt, constant.FieldModifiedAt,
		constant.FieldModifiedBy, constant.FieldModifiedBy,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = sqltx.NamedExecContext(ctx, query, booking); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert booking: %w", err)
	}

	return nil
}
