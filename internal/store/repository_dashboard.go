package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/models"
)

type dashboardRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDashboardRepository constructs a [DashboardRepository] backed by db.
func NewDashboardRepository(db *DB, logger *logger.Logger) DashboardRepository {
	logger.Debug().Msg("creating dashboard repository")
	return &dashboardRepository{db: db, logger: logger}
}

// Stats runs the project, task and field aggregates inside one REPEATABLE
// READ read-only transaction so every count sees the same snapshot.
func (r *dashboardRepository) Stats(ctx context.Context, userID int64, today time.Time) (models.DashboardStats, error) {
	var s models.DashboardStats

	err := r.db.withRetry(ctx, snapshot, func(tx *sql.Tx) error {
		s = models.DashboardStats{}

		if err := tx.QueryRowContext(ctx, projectStats, userID).Scan(
			&s.TotalProjects, &s.ActiveProjects, &s.WeeklyProjects, &s.CompletedProjects,
		); err != nil {
			return fmt.Errorf("%w: project stats: %w", ErrExecutingQuery, err)
		}

		if err := tx.QueryRowContext(ctx, taskStats, userID, today).Scan(
			&s.TotalTasks, &s.ActiveTasks, &s.CompletedTasks, &s.TodayTasks,
			&s.WeekTasks, &s.WaitingTasks, &s.OverdueTasks,
		); err != nil {
			return fmt.Errorf("%w: task stats: %w", ErrExecutingQuery, err)
		}

		if err := tx.QueryRowContext(ctx, fieldStats, userID).Scan(&s.TotalFields); err != nil {
			return fmt.Errorf("%w: field stats: %w", ErrExecutingQuery, err)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dashboardRepository.Stats").Msg("error computing stats")
		return models.DashboardStats{}, err
	}

	return s, nil
}
