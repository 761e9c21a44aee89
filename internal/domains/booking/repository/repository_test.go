package repository_test

import (
	"context"
	"errors"
	"primecm/infras/otel/mocks"
	"primecm/infras/postgres"
	"primecm/internal/domains/booking/model"
	"primecm/internal/domains/booking/repository"
	gDto "primecm/shared/dto"
	gModel "primecm/shared/model"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newDB(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")

	return &postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mock
}

func TestTransactionRepository_GetOrCreateTx(t *testing.T) {
	insertQuery := regexp.QuoteMeta("INSERT INTO transactions (id, customer_id, at, created_at, modified_at, created_by, modified_by) VALUES ($1, $2, $3, $4, $5, $6, $7) ON CONFLICT (customer_id, at) DO NOTHING")
	selectQuery := regexp.QuoteMeta("SELECT transactions.id, transactions.customer_id, transactions.at, transactions.created_at, transactions.modified_at, transactions.created_by, transactions.modified_by FROM transactions WHERE (transactions.customer_id = $1 AND transactions.at = $2) LIMIT 1")
	columns := []string{"id", "customer_id", "at", "created_at", "modified_at", "created_by", "modified_by"}

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	txn := model.Transaction{
		ID:         "txn-new",
		CustomerID: "c-1",
		At:         now,
		Metadata:   gModel.Metadata{CreatedAt: now, ModifiedAt: now, CreatedBy: "admin-1", ModifiedBy: "admin-1"},
	}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantID    string
		wantErr   bool
	}{
		{
			name: "first booking of the day creates the transaction",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(insertQuery).
					WithArgs("txn-new", "c-1", "2024-03-01", now, now, "admin-1", "admin-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectPrepare(selectQuery).
					ExpectQuery().
					WithArgs("c-1", "2024-03-01").
					WillReturnRows(sqlmock.NewRows(columns).AddRow("txn-new", "c-1", day, now, now, "admin-1", "admin-1"))
			},
			wantID: "txn-new",
		},
		{
			name: "existing transaction is reused",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(insertQuery).
					WithArgs("txn-new", "c-1", "2024-03-01", now, now, "admin-1", "admin-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectPrepare(selectQuery).
					ExpectQuery().
					WithArgs("c-1", "2024-03-01").
					WillReturnRows(sqlmock.NewRows(columns).AddRow("txn-old", "c-1", day, now, now, "admin-2", "admin-2"))
			},
			wantID: "txn-old",
		},
		{
			name: "insert failure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(insertQuery).WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
		{
			name: "row missing after insert",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(insertQuery).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectPrepare(selectQuery).
					ExpectQuery().
					WithArgs("c-1", "2024-03-01").
					WillReturnRows(sqlmock.NewRows(columns))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newDB(t)
			repo := repository.NewTransaction(conn, mocks.NewOtel())

			tt.setupMock(mock)

			tx, err := conn.Write.Beginx()
			assert.NoError(t, err)

			res, err := repo.GetOrCreateTx(context.Background(), tx, txn)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, res.ID)
				assert.Equal(t, day, res.At)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingRepository_UpsertTx(t *testing.T) {
	query := regexp.QuoteMeta("INSERT INTO bookings (id, transaction_id, paper_type, paper_size, rate, copies, count, created_at, modified_at, created_by, modified_by) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) ON CONFLICT (transaction_id, paper_type, paper_size, rate, copies) DO UPDATE SET count = bookings.count + 1, modified_at = EXCLUDED.modified_at, modified_by = EXCLUDED.modified_by")
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	booking := model.Booking{
		ID:            "b-1",
		TransactionID: "txn-1",
		PaperType:     model.PaperTypeLuster,
		PaperSize:     model.PaperSize5X7,
		Rate:          50,
		Copies:        3,
		Count:         1,
		Metadata:      gModel.Metadata{CreatedAt: now, ModifiedAt: now, CreatedBy: "admin-1", ModifiedBy: "admin-1"},
	}

	t.Run("success", func(t *testing.T) {
		conn, mock := newDB(t)
		repo := repository.NewBooking(conn, mocks.NewOtel())

		mock.ExpectBegin()
		mock.ExpectExec(query).
			WithArgs("b-1", "txn-1", "luster", "5X7", 50.0, 3, 1, now, now, "admin-1", "admin-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		tx, err := conn.Write.Beginx()
		assert.NoError(t, err)

		assert.NoError(t, repo.UpsertTx(context.Background(), tx, booking))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		conn, mock := newDB(t)
		repo := repository.NewBooking(conn, mocks.NewOtel())

		mock.ExpectBegin()
		mock.ExpectExec(query).WillReturnError(errors.New("check constraint"))

		tx, err := conn.Write.Beginx()
		assert.NoError(t, err)

		assert.Error(t, repo.UpsertTx(context.Background(), tx, booking))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepository_GetAllTx(t *testing.T) {
	conn, mock := newDB(t)
	repo := repository.NewBooking(conn, mocks.NewOtel())
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectPrepare(regexp.QuoteMeta("FROM bookings WHERE (bookings.transaction_id = $1) ORDER BY bookings.created_at ASC")).
		ExpectQuery().
		WithArgs("txn-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "transaction_id", "paper_type", "paper_size", "rate", "copies", "count", "created_at", "modified_at", "created_by", "modified_by"}).
			AddRow("b-1", "txn-1", "glossy", "8X10", "75.50", 2, 2, now, now, "admin-1", "admin-1"))

	tx, err := conn.Write.Beginx()
	assert.NoError(t, err)

	res, err := repo.GetAllTx(context.Background(), tx,
		gDto.QueryParams{SortBy: "created_at", SortDir: gDto.SortDirAsc},
		gDto.FilterGroup{Filters: []any{
			gDto.Filter{Field: model.FieldTransactionID, Value: "txn-1", Operator: gDto.FilterOperatorEq, Table: model.TableName},
		}},
	)

	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, model.PaperTypeGlossy, res[0].PaperType)
	assert.Equal(t, 75.5, res[0].Rate)
	assert.Equal(t, 2, res[0].Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
