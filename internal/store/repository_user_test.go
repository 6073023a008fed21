package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"user_id", "login", "password_hash", "display_name", "email", "language", "settings", "created_at", "updated_at"}

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{DB: conn, logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier()}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	user := models.User{Login: "john", PasswordHash: "hash", DisplayName: "John"}
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("john", "hash", "John", "", "en", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(1, "john", "hash", "John", "", "en", []byte(`{"theme":"dark"}`), now, now))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "john", created.Login)
	assert.Equal(t, "dark", created.Settings["theme"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "john"})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Login: "john"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unexpected DB error"))
}

func TestFindUserByLogin(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT .* FROM users WHERE login").
		WithArgs("john").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(3, "john", "hash", "", "", "en", nil, now, now))

	user, err := repo.FindUserByLogin(context.Background(), "john")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.UserID)
	assert.Equal(t, models.Settings{}, user.Settings)
}

func TestGetUser_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT .* FROM users WHERE user_id").
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUser(context.Background(), 9)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUser(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()
	name := "Jane"

	mock.ExpectExec(`UPDATE users SET updated_at = NOW\(\), display_name = \$1 WHERE user_id = \$2`).
		WithArgs("Jane", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT .* FROM users WHERE user_id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "jane", "", "Jane", "", "en", []byte("{}"), now, now))

	user, err := repo.UpdateUser(context.Background(), 1, models.UserUpdate{DisplayName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Jane", user.DisplayName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUser_Missing(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	lang := "de"

	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateUser(context.Background(), 1, models.UserUpdate{Language: &lang})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestEnsureUser_Provisions(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").
		WithArgs(int64(1), "default", "default").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("SELECT setval").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.EnsureUser(context.Background(), 1, "default"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureUser_AlreadyThere(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, repo.EnsureUser(context.Background(), 1, "default"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
