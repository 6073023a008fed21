package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/models"
)

const (
	restoreProjectDone = `UPDATE projects SET done_at = $1 WHERE id = $2 AND user_id = $3;`
	restoreTaskState   = `UPDATE tasks SET done_at = $1, reviewed = $2 WHERE id = $3 AND user_id = $4;`
)

type transferRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTransferRepository constructs a [TransferRepository] backed by db.
func NewTransferRepository(db *DB, logger *logger.Logger) TransferRepository {
	logger.Debug().Msg("creating transfer repository")
	return &transferRepository{db: db, logger: logger}
}

// Export reads every live field, project and task of the user from one
// snapshot.
func (r *transferRepository) Export(ctx context.Context, userID int64) (models.ExportBundle, error) {
	bundle := models.ExportBundle{Version: models.ExportVersion}

	err := r.db.withRetry(ctx, snapshot, func(tx *sql.Tx) error {
		query, args, err := buildListFieldsQuery(userID, models.ListParams{})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if bundle.Fields, err = collect(ctx, tx, query, args, scanField); err != nil {
			return err
		}

		query, args, err = buildListProjectsQuery(userID, models.ProjectFilter{})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if bundle.Projects, err = collect(ctx, tx, query, args, scanProject); err != nil {
			return err
		}

		query, args, err = buildListTasksQuery(userID, models.TaskFilter{})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		bundle.Tasks, err = collect(ctx, tx, query, args, scanTask)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*transferRepository.Export").Msg("error exporting data")
		return models.ExportBundle{}, err
	}

	bundle.ExportedAt = time.Now().UTC()
	return bundle, nil
}

// Import inserts the bundle as new rows of the user inside one transaction.
// Bundle ids are remapped; references to ids missing from the bundle are
// dropped.
func (r *transferRepository) Import(ctx context.Context, userID int64, bundle models.ExportBundle) (models.ImportResult, error) {
	var result models.ImportResult

	err := r.db.withTx(ctx, nil, func(tx *sql.Tx) error {
		result = models.ImportResult{}
		fieldIDs := make(map[int64]int64, len(bundle.Fields))
		projectIDs := make(map[int64]int64, len(bundle.Projects))

		for _, f := range bundle.Fields {
			id, err := insertReturningID(ctx, tx, buildInsertFieldQuery, userID, models.FieldCreate{Name: f.Name, Description: f.Description})
			if err != nil {
				return err
			}
			fieldIDs[f.ID] = id
			result.Fields++
		}

		for _, p := range bundle.Projects {
			in := models.ProjectCreate{
				Name:       p.Name,
				FieldID:    remap(fieldIDs, p.FieldID),
				DoThisWeek: p.DoThisWeek,
				Keywords:   p.Keywords,
				Readings:   p.Readings,
			}
			id, err := insertReturningID(ctx, tx, buildInsertProjectQuery, userID, in)
			if err != nil {
				return err
			}
			if p.DoneAt != nil {
				if _, err := tx.ExecContext(ctx, restoreProjectDone, *p.DoneAt, id, userID); err != nil {
					return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
				}
			}
			projectIDs[p.ID] = id
			result.Projects++
		}

		for _, t := range bundle.Tasks {
			priority := t.Priority
			in := models.TaskCreate{
				Name:             t.Name,
				ProjectID:        remap(projectIDs, t.ProjectID),
				FieldID:          remap(fieldIDs, t.FieldID),
				DoToday:          t.DoToday,
				DoThisWeek:       t.DoThisWeek,
				IsReading:        t.IsReading,
				WaitFor:          t.WaitFor,
				Postponed:        t.Postponed,
				Priority:         &priority,
				DoOnDate:         t.DoOnDate,
				TimeExpenditure:  t.TimeExpenditure,
				URL:              t.URL,
				KnowledgeDBEntry: t.KnowledgeDBEntry,
			}
			id, err := insertReturningID(ctx, tx, buildInsertTaskQuery, userID, in)
			if err != nil {
				return err
			}
			if t.DoneAt != nil || t.Reviewed {
				if _, err := tx.ExecContext(ctx, restoreTaskState, t.DoneAt, t.Reviewed, id, userID); err != nil {
					return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
				}
			}
			result.Tasks++
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*transferRepository.Import").Msg("error importing data")
		return models.ImportResult{}, err
	}

	return result, nil
}

func collect[T any](ctx context.Context, tx *sql.Tx, query string, args []any, scan func(rowScanner) (T, error)) ([]T, error) {
	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return items, nil
}

func insertReturningID[T any](ctx context.Context, tx *sql.Tx, build func(int64, T) (string, []any, error), userID int64, in T) (int64, error) {
	query, args, err := build(userID, in)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, mapWriteError(err)
	}
	return id, nil
}

func remap(ids map[int64]int64, old *int64) *int64 {
	if old == nil {
		return nil
	}
	id, ok := ids[*old]
	if !ok {
		return nil
	}
	return &id
}
