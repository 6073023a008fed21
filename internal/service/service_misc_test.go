package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-gtd/internal/events"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/mock"
	"github.com/MKhiriev/go-gtd/internal/store"
	"github.com/MKhiriev/go-gtd/internal/validators"
	"github.com/MKhiriev/go-gtd/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboardService_Stats_ZeroForEmptyUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockDashboardRepository(ctrl)

	svc := NewDashboardService(repo, logger.Nop()).(*dashboardService)
	svc.now = func() time.Time { return fixedNow }

	repo.EXPECT().Stats(gomock.Any(), int64(1), time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC)).
		Return(models.DashboardStats{}, nil)

	stats, err := svc.Stats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.DashboardStats{}, stats)
}

func TestSearchService_RequiresQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	tasks := mock.NewMockTaskRepository(ctrl)
	projects := mock.NewMockProjectRepository(ctrl)

	v := validators.NewValidator()
	n := events.NewNotifier(nil)
	svc := NewSearchService(NewTaskService(tasks, v, n, logger.Nop()), NewProjectService(projects, v, n, logger.Nop()))

	_, err := svc.Tasks(context.Background(), 1, models.ListParams{Search: "  "})
	assert.ErrorIs(t, err, validators.ErrValidation)

	_, err = svc.Projects(context.Background(), 1, models.ListParams{})
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestSearchService_Tasks(t *testing.T) {
	ctrl := gomock.NewController(t)
	tasks := mock.NewMockTaskRepository(ctrl)
	projects := mock.NewMockProjectRepository(ctrl)

	v := validators.NewValidator()
	n := events.NewNotifier(nil)
	svc := NewSearchService(NewTaskService(tasks, v, n, logger.Nop()), NewProjectService(projects, v, n, logger.Nop()))

	tasks.EXPECT().List(gomock.Any(), int64(1), models.TaskFilter{ListParams: models.ListParams{Search: "milk", Limit: 10}}).
		Return([]models.Task{{ID: 1, Name: "Buy milk"}}, 1, nil)

	page, err := svc.Tasks(context.Background(), 1, models.ListParams{Search: " milk ", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestTransferService_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTransferRepository(ctrl)
	pub := &recordingPublisher{}
	svc := NewTransferService(repo, events.NewNotifier(pub), logger.Nop())

	bundle := models.ExportBundle{
		Version:  models.ExportVersion,
		Fields:   []models.Field{{ID: 1, Name: "Work"}},
		Projects: []models.Project{{ID: 1, Name: "Launch"}},
		Tasks:    []models.Task{{ID: 1, Name: "Write", Priority: 3}},
	}
	repo.EXPECT().Import(gomock.Any(), int64(2), bundle).Return(models.ImportResult{Fields: 1, Projects: 1, Tasks: 1}, nil)

	res, err := svc.Import(context.Background(), 2, bundle)
	require.NoError(t, err)
	assert.Equal(t, models.ImportResult{Fields: 1, Projects: 1, Tasks: 1}, res)
	assert.Equal(t, []string{"user.imported"}, pub.types())
}

func TestTransferService_Import_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		bundle models.ExportBundle
		field  string
	}{
		{name: "version", bundle: models.ExportBundle{Version: 99}, field: "version"},
		{
			name:   "unnamed task",
			bundle: models.ExportBundle{Version: models.ExportVersion, Tasks: []models.Task{{Priority: 3}}},
			field:  "tasks.name",
		},
		{
			name:   "priority",
			bundle: models.ExportBundle{Version: models.ExportVersion, Tasks: []models.Task{{Name: "x", Priority: 12}}},
			field:  "tasks.priority",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewTransferService(mock.NewMockTransferRepository(ctrl), events.NewNotifier(nil), logger.Nop())

			_, err := svc.Import(context.Background(), 2, tt.bundle)

			var verr *validators.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestUserService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	pub := &recordingPublisher{}
	svc := NewUserService(repo, validators.NewValidator(), events.NewNotifier(pub), logger.Nop())
	ctx := context.Background()

	repo.EXPECT().EnsureUser(ctx, int64(1), "default").Return(nil)
	require.NoError(t, svc.EnsureDefault(ctx, 1))

	repo.EXPECT().GetUser(ctx, int64(5)).Return(models.User{}, store.ErrUserNotFound)
	_, err := svc.Me(ctx, 5)
	assert.ErrorIs(t, err, ErrNotFound)

	bad := "not-an-email"
	_, err = svc.UpdateMe(ctx, 1, models.UserUpdate{Email: &bad})
	assert.ErrorIs(t, err, validators.ErrValidation)

	name := "John"
	repo.EXPECT().UpdateUser(ctx, int64(1), models.UserUpdate{DisplayName: &name}).Return(models.User{UserID: 1, DisplayName: name}, nil)
	user, err := svc.UpdateMe(ctx, 1, models.UserUpdate{DisplayName: &name})
	require.NoError(t, err)
	assert.Equal(t, "John", user.DisplayName)
	assert.Equal(t, []string{"user.updated"}, pub.types())
}
