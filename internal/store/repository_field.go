package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/models"
	sq "github.com/Masterminds/squirrel"
)

type fieldRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFieldRepository constructs a [FieldRepository] backed by db.
func NewFieldRepository(db *DB, logger *logger.Logger) FieldRepository {
	logger.Debug().Msg("creating field repository")
	return &fieldRepository{db: db, logger: logger}
}

func scanField(row rowScanner) (models.Field, error) {
	var f models.Field
	err := row.Scan(&f.ID, &f.UserID, &f.Name, &f.Description, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

func (r *fieldRepository) List(ctx context.Context, userID int64, params models.ListParams) ([]models.Field, int, error) {
	listQuery, listArgs, err := buildListFieldsQuery(userID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	countQuery, countArgs, err := buildCountFieldsQuery(userID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		items []models.Field
		total int
	)
	err = r.db.withTx(ctx, snapshot, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, listQuery, listArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			f, err := scanField(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			items = append(items, f)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		total, err = count(ctx, tx, countQuery, countArgs)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fieldRepository.List").Msg("error listing fields")
		return nil, 0, err
	}

	return items, total, nil
}

func (r *fieldRepository) Get(ctx context.Context, userID, id int64) (models.Field, error) {
	return r.get(ctx, r.db, userID, id)
}

func (r *fieldRepository) get(ctx context.Context, q queryer, userID, id int64) (models.Field, error) {
	query, args, err := buildGetFieldQuery(userID, id)
	if err != nil {
		return models.Field{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.one(ctx, q, query, args)
}

func (r *fieldRepository) one(ctx context.Context, q queryer, query string, args []any) (models.Field, error) {
	f, err := scanField(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Field{}, ErrNotFound
		}
		return models.Field{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return f, nil
}

func (r *fieldRepository) FindByName(ctx context.Context, userID int64, name string) (models.Field, error) {
	query, args, err := psql.Select(fieldColumns...).From("fields f").
		Where(sq.Eq{"f.user_id": userID}).
		Where("f.deleted_at IS NULL").
		Where("LOWER(f.name) = LOWER(?)", name).
		OrderBy("f.created_at", "f.id").
		Limit(1).
		ToSql()
	if err != nil {
		return models.Field{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.one(ctx, r.db, query, args)
}

func (r *fieldRepository) Create(ctx context.Context, userID int64, in models.FieldCreate) (models.Field, error) {
	query, args, err := buildInsertFieldQuery(userID, in)
	if err != nil {
		return models.Field{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fieldRepository.Create").Msg("error creating field")
		return models.Field{}, mapWriteError(err)
	}

	return r.Get(ctx, userID, id)
}

func (r *fieldRepository) Update(ctx context.Context, userID, id int64, update models.FieldUpdate) (models.Field, error) {
	if update.Empty() {
		return r.Get(ctx, userID, id)
	}

	query, args, err := buildUpdateFieldQuery(userID, id, update)
	if err != nil {
		return models.Field{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Field{}, mapWriteError(err)
	}
	if err := affectedOne(res); err != nil {
		return models.Field{}, err
	}

	return r.Get(ctx, userID, id)
}

// Delete soft-deletes the field and detaches its projects and tasks.
func (r *fieldRepository) Delete(ctx context.Context, userID, id int64) error {
	query, args, err := buildSoftDeleteQuery("fields", userID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.db.withTx(ctx, nil, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if err := affectedOne(res); err != nil {
			return err
		}

		for _, detach := range []string{detachProjectsFromField, detachTasksFromField} {
			if _, err := tx.ExecContext(ctx, detach, id, userID); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
}
