package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/store"
	"github.com/MKhiriev/go-gtd/models"
)

type dashboardService struct {
	dashboardRepository store.DashboardRepository
	now                 func() time.Time
	logger              *logger.Logger
}

func NewDashboardService(dashboardRepository store.DashboardRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		dashboardRepository: dashboardRepository,
		now:                 time.Now,
		logger:              logger,
	}
}

// Stats returns the user's counters from one consistent snapshot. A user
// without rows gets all zeros.
func (s *dashboardService) Stats(ctx context.Context, userID int64) (models.DashboardStats, error) {
	stats, err := s.dashboardRepository.Stats(ctx, userID, today(s.now()))
	if err != nil {
		return models.DashboardStats{}, mapStoreError("dashboard stats", err)
	}
	return stats, nil
}
