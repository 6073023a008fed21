// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/models"
)

type taskRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTaskRepository constructs a [TaskRepository] backed by db.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{db: db, logger: logger}
}

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.ProjectID, &t.FieldID, &t.DoneStatus, &t.DoneAt,
		&t.DoToday, &t.DoThisWeek, &t.IsReading, &t.WaitFor, &t.Postponed, &t.Reviewed,
		&t.Priority, &t.DoOnDate, &t.TimeExpenditure, &t.URL, &t.KnowledgeDBEntry,
		&t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func scanTasks(rows *sql.Rows) ([]models.Task, error) {
	defer rows.Close()

	var items []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return items, nil
}

// List returns one page of tasks and the total number of matches.
func (r *taskRepository) List(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, int, error) {
	listQuery, listArgs, err := buildListTasksQuery(userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	countQuery, countArgs, err := buildCountTasksQuery(userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	items, total, err := r.page(ctx, listQuery, listArgs, countQuery, countArgs)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*taskRepository.List").Msg("error listing tasks")
		return nil, 0, err
	}
	return items, total, nil
}

func (r *taskRepository) ListToday(ctx context.Context, userID int64, today time.Time, filter models.TaskFilter) ([]models.Task, int, error) {
	listQuery, listArgs, err := buildListTodayTasksQuery(userID, today, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	countQuery, countArgs, err := buildCountTodayTasksQuery(userID, today, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	items, total, err := r.page(ctx, listQuery, listArgs, countQuery, countArgs)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*taskRepository.ListToday").Msg("error listing today tasks")
		return nil, 0, err
	}
	return items, total, nil
}

func (r *taskRepository) ListWeek(ctx context.Context, userID int64, weekEnd time.Time, filter models.TaskFilter) ([]models.Task, int, error) {
	listQuery, listArgs, err := buildListWeekTasksQuery(userID, weekEnd, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	countQuery, countArgs, err := buildCountWeekTasksQuery(userID, weekEnd, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	items, total, err := r.page(ctx, listQuery, listArgs, countQuery, countArgs)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*taskRepository.ListWeek").Msg("error listing week tasks")
		return nil, 0, err
	}
	return items, total, nil
}

// page runs a list statement and its COUNT in one snapshot transaction.
func (r *taskRepository) page(ctx context.Context, listQuery string, listArgs []any, countQuery string, countArgs []any) ([]models.Task, int, error) {
	var (
		items []models.Task
		total int
	)
	err := r.db.withTx(ctx, snapshot, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, listQuery, listArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if items, err = scanTasks(rows); err != nil {
			return err
		}

		total, err = count(ctx, tx, countQuery, countArgs)
		return err
	})
	return items, total, err
}

func (r *taskRepository) Get(ctx context.Context, userID, id int64) (models.Task, error) {
	return r.get(ctx, r.db, userID, id)
}

func (r *taskRepository) get(ctx context.Context, q queryer, userID, id int64) (models.Task, error) {
	query, args, err := buildGetTaskQuery(userID, id)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	t, err := scanTask(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrNotFound
		}
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return t, nil
}

func (r *taskRepository) checkReferences(ctx context.Context, tx *sql.Tx, userID int64, projectID, fieldID *int64) error {
	if err := checkReference(ctx, tx, projectExists, "project_id", userID, projectID); err != nil {
		return err
	}
	return checkReference(ctx, tx, fieldExists, "field_id", userID, fieldID)
}

func (r *taskRepository) Create(ctx context.Context, userID int64, in models.TaskCreate) (models.Task, error) {
	query, args, err := buildInsertTaskQuery(userID, in)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Task
	err = r.db.withTx(ctx, nil, func(tx *sql.Tx) error {
		if err := r.checkReferences(ctx, tx, userID, in.ProjectID, in.FieldID); err != nil {
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
		logger.FromContext(ctx).Err(err).Str("func", "*taskRepository.Create").Msg("error creating task")
		return models.Task{}, err
	}

	return created, nil
}

func (r *taskRepository) Update(ctx context.Context, userID, id int64, update models.TaskUpdate) (models.Task, error) {
	if update.Empty() {
		return r.Get(ctx, userID, id)
	}

	query, args, err := buildUpdateTaskQuery(userID, id, update)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Task
	err = r.db.withTx(ctx, nil, func(tx *sql.Tx) error {
		if err := r.checkReferences(ctx, tx, userID, update.ProjectID, update.FieldID); err != nil {
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
		return models.Task{}, err
	}

	return updated, nil
}

func (r *taskRepository) Delete(ctx context.Context, userID, id int64) error {
	query, args, err := buildSoftDeleteQuery("tasks", userID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affectedOne(res)
}
