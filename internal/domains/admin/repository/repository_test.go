package repository_test

import (
	"context"
	"errors"
	"primecm/infras/otel/mocks"
	"primecm/infras/postgres"
	"primecm/internal/domains/admin/repository"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestAdminRepository_AnyExist(t *testing.T) {
	query := regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM admins)")

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		expected  bool
		wantErr   bool
	}{
		{
			name: "empty table",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
			expected: false,
		},
		{
			name: "admins registered",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
			expected: true,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)

			defer db.Close()

			sqlxDB := sqlx.NewDb(db, "postgres")
			repo := repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel())

			tt.setupMock(mock)

			exist, err := repo.AnyExist(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, exist)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAdminRepository_LockBootstrapTx(t *testing.T) {
	lock := regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")
	query := regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM admins)")

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		expected  bool
		wantErr   bool
	}{
		{
			name: "first registration",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(lock).WithArgs(sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
			},
			expected: false,
		},
		{
			name: "another registration committed first",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(lock).WithArgs(sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			},
			expected: true,
		},
		{
			name: "lock error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(lock).WithArgs(sqlmock.AnyArg()).WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)

			defer db.Close()

			sqlxDB := sqlx.NewDb(db, "postgres")
			repo := repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel())

			mock.ExpectBegin()
			tt.setupMock(mock)

			tx, err := sqlxDB.Beginx()
			assert.NoError(t, err)

			exist, err := repo.LockBootstrapTx(context.Background(), tx)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, exist)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
