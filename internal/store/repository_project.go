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

type projectRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProjectRepository constructs a [ProjectRepository] backed by db.
func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{db: db, logger: logger}
}

func scanProject(row rowScanner) (models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.FieldID, &p.DoneStatus, &p.DoneAt, &p.DoThisWeek,
		&p.Keywords, &p.Readings, &p.CreatedAt, &p.UpdatedAt, &p.TaskCount)
	return p, err
}

// List returns one page of projects and the total number of matches. Both
// statements run in the same snapshot transaction.
func (r *projectRepository) List(ctx context.Context, userID int64, filter models.ProjectFilter) ([]models.Project, int, error) {
	listQuery, listArgs, err := buildListProjectsQuery(userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	countQuery, countArgs, err := buildCountProjectsQuery(userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		items []models.Project
		total int
	)
	err = r.db.withTx(ctx, snapshot, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, listQuery, listArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		for rows.Next() {
			p, err := scanProject(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			items = append(items, p)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		total, err = count(ctx, tx, countQuery, countArgs)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectRepository.List").Msg("error listing projects")
		return nil, 0, err
	}

	return items, total, nil
}

func (r *projectRepository) Get(ctx context.Context, userID, id int64) (models.Project, error) {
	return r.get(ctx, r.db, userID, id)
}

func (r *projectRepository) get(ctx context.Context, q queryer, userID, id int64) (models.Project, error) {
	query, args, err := buildGetProjectQuery(userID, id)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	p, err := scanProject(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrNotFound
		}
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return p, nil
}

func (r *projectRepository) FindByName(ctx context.Context, userID int64, name string) (models.Project, error) {
	query, args, err := psql.Select(projectColumns...).From("projects p").
		Where(sq.Eq{"p.user_id": userID}).
		Where("p.deleted_at IS NULL").
		Where("LOWER(p.name) = LOWER(?)", name).
		OrderBy("p.done_at IS NOT NULL", "p.created_at", "p.id").
		Limit(1).
		ToSql()
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	p, err := scanProject(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, ErrNotFound
		}
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return p, nil
}

func (r *projectRepository) Create(ctx context.Context, userID int64, in models.ProjectCreate) (models.Project, error) {
	query, args, err := buildInsertProjectQuery(userID, in)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Project
	err = r.db.withTx(ctx, nil, func(tx *sql.Tx) error {
		if err := checkReference(ctx, tx, fieldExists, "field_id", userID, in.FieldID); err != nil {
			return err
		}

		var id int64
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return mapWriteError(err)
		}

		created, err = r.get(ctx, tx, userID, id)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectRepository.Create").Msg("error creating project")
		return models.Project{}, err
	}

	return created, nil
}

func (r *projectRepository) Update(ctx context.Context, userID, id int64, update models.ProjectUpdate) (models.Project, error) {
	if update.Empty() {
		return r.Get(ctx, userID, id)
	}

	query, args, err := buildUpdateProjectQuery(userID, id, update)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Project
	err = r.db.withTx(ctx, nil, func(tx *sql.Tx) error {
		if err := checkReference(ctx, tx, fieldExists, "field_id", userID, update.FieldID); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return mapWriteError(err)
		}
		if err := affectedOne(res); err != nil {
			return err
		}

		updated, err = r.get(ctx, tx, userID, id)
		return err
	})
	if err != nil {
		return models.Project{}, err
	}

	return updated, nil
}

// Delete soft-deletes the project and detaches its tasks.
func (r *projectRepository) Delete(ctx context.Context, userID, id int64) error {
	query, args, err := buildSoftDeleteQuery("projects", userID, id)
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

		if _, err := tx.ExecContext(ctx, detachTasksFromProject, id, userID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
}
