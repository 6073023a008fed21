package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var projectRowColumns = []string{
	"id", "user_id", "name", "field_id", "done_status", "done_at", "do_this_week",
	"keywords", "readings", "created_at", "updated_at", "task_count",
}

func newTestProjectRepo(t *testing.T) (*projectRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &projectRepository{db: db, logger: logger.Nop()}, mock
}

func TestProjectRepository_List(t *testing.T) {
	repo, mock := newTestProjectRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM projects p WHERE`).
		WithArgs(int64(42), "%home%").
		WillReturnRows(sqlmock.NewRows(projectRowColumns).
			AddRow(1, 42, "Home office", nil, false, nil, true, "desk", "", now, now, 2).
			AddRow(2, 42, "Home garden", 3, false, nil, false, "", "", now, now, 0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM projects p`).
		WithArgs(int64(42), "%home%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectCommit()

	items, total, err := repo.List(context.Background(), 42, models.ProjectFilter{
		ListParams: models.ListParams{Search: "home", Limit: 2},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 7, total)
	assert.Equal(t, 2, items[0].TaskCount)
	assert.Nil(t, items[0].FieldID)
	require.NotNil(t, items[1].FieldID)
	assert.Equal(t, int64(3), *items[1].FieldID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_List_OffsetPastEnd(t *testing.T) {
	repo, mock := newTestProjectRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM projects p WHERE .* LIMIT 50 OFFSET 10`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(projectRowColumns))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM projects p`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectCommit()

	items, total, err := repo.List(context.Background(), 42, models.ProjectFilter{
		ListParams: models.ListParams{Limit: 50, Offset: 10},
	})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 3, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_List_QueryFails(t *testing.T) {
	repo, mock := newTestProjectRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM projects p`).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, _, err := repo.List(context.Background(), 1, models.ProjectFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestProjectRepo(t)

	mock.ExpectQuery(`FROM projects p WHERE p.id = \$1 AND p.user_id = \$2`).
		WithArgs(int64(5), int64(42)).
		WillReturnRows(sqlmock.NewRows(projectRowColumns))

	_, err := repo.Get(context.Background(), 42, 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectRepository_Create_InvalidField(t *testing.T) {
	repo, mock := newTestProjectRepo(t)
	fieldID := int64(9)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM fields`).
		WithArgs(int64(9), int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), 42, models.ProjectCreate{Name: "x", FieldID: &fieldID})

	var refErr *InvalidReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "field_id", refErr.Field)
	assert.Equal(t, int64(9), refErr.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Create(t *testing.T) {
	repo, mock := newTestProjectRepo(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO projects`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectQuery(`FROM projects p WHERE p.id`).
		WithArgs(int64(11), int64(42)).
		WillReturnRows(sqlmock.NewRows(projectRowColumns).
			AddRow(11, 42, "Launch", nil, false, nil, false, "", "", now, now, 0))
	mock.ExpectCommit()

	p, err := repo.Create(context.Background(), 42, models.ProjectCreate{Name: "Launch"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), p.ID)
	assert.Equal(t, "Launch", p.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Update_Missing(t *testing.T) {
	repo, mock := newTestProjectRepo(t)
	name := "new"

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE projects SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Update(context.Background(), 42, 5, models.ProjectUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Delete_DetachesTasks(t *testing.T) {
	repo, mock := newTestProjectRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE projects SET deleted_at = NOW\(\)`).
		WithArgs(int64(5), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE tasks SET project_id = NULL`).
		WithArgs(int64(5), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 42, 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newTestProjectRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE projects SET deleted_at`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.Delete(context.Background(), 42, 5), ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
