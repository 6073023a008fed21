package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.Login, &u.PasswordHash, &u.DisplayName, &u.Email, &u.Language, &u.Settings, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// CreateUser inserts a user and returns it with server-assigned fields.
// A taken login yields [ErrLoginAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Language == "" {
		user.Language = "en"
	}
	row := r.db.QueryRowContext(ctx, createUser, user.Login, user.PasswordHash, user.DisplayName, user.Email, user.Language, user.Settings)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrLoginAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByLogin returns the live user with the given login.
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByLogin", findUserByLogin, login)
}

// GetUser returns the live user with the given id.
func (r *userRepository) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.GetUser", getUser, userID)
}

func (r *userRepository) findOne(ctx context.Context, fn, query string, arg any) (models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	return user, nil
}

// UpdateUser applies the non-nil fields of update and returns the result.
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	if !update.Empty() {
		query, args, err := buildUpdateUserQuery(userID, update)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")
			return models.User{}, mapWriteError(err)
		}
		if err := affectedOne(res); err != nil {
			if errors.Is(err, ErrNotFound) {
				return models.User{}, ErrUserNotFound
			}
			return models.User{}, err
		}
	}

	return r.GetUser(ctx, userID)
}

// EnsureUser creates the user row with a fixed id when it is missing and
// advances the id sequence past it.
func (r *userRepository) EnsureUser(ctx context.Context, userID int64, login string) error {
	return r.db.withTx(ctx, nil, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, ensureUser, userID, login, login)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil
		}
		if _, err := tx.ExecContext(ctx, syncUserSequence); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		r.logger.Info().Int64("user_id", userID).Msg("provisioned default user")
		return nil
	})
}
