package repository_test

import (
	"context"
	"errors"
	"primecm/infras/otel/mocks"
	"primecm/infras/postgres"
	"primecm/internal/domains/auth/model"
	"primecm/internal/domains/auth/repository"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newRepository(t *testing.T) (repository.AccessToken, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel()), mock
}

func TestAccessTokenRepository_Upsert(t *testing.T) {
	issued := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	token := model.AccessToken{
		ID:             "token-2",
		AdminID:        "admin-1",
		IssuedAt:       issued,
		ExpirationDate: issued.Add(time.Hour),
	}
	query := regexp.QuoteMeta("INSERT INTO access_tokens (id, admin_id, issued_at, expiration_date) VALUES ($1, $2, $3, $4) ON CONFLICT (admin_id) DO UPDATE SET id = EXCLUDED.id, issued_at = EXCLUDED.issued_at, expiration_date = EXCLUDED.expiration_date")

	t.Run("success", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectExec(query).
			WithArgs("token-2", "admin-1", issued, issued.Add(time.Hour)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Upsert(context.Background(), token))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectExec(query).WillReturnError(errors.New("connection reset"))

		assert.Error(t, repo.Upsert(context.Background(), token))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
