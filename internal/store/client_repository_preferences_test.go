package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceRepository(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPreferenceRepository(db, logger.Nop())
	ctx := context.Background()

	mock.ExpectQuery(`SELECT value FROM preferences WHERE key = \?`).
		WithArgs("theme").
		WillReturnError(sql.ErrNoRows)
	_, err := repo.Get(ctx, "theme")
	assert.ErrorIs(t, err, ErrPreferenceNotFound)

	mock.ExpectExec(`INSERT INTO preferences`).
		WithArgs("theme", "dark").
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.Set(ctx, "theme", "dark"))

	mock.ExpectQuery(`SELECT key, value FROM preferences`).
		WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).
			AddRow("theme", "dark").
			AddRow("token", "abc"))
	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"theme": "dark", "token": "abc"}, all)

	mock.ExpectExec(`DELETE FROM preferences`).
		WithArgs("token").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(ctx, "token"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
