package service

import (
	"context"
	"testing"

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

func newTestProjectSvc(t *testing.T) (ProjectService, *mock.MockProjectRepository, *recordingPublisher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProjectRepository(ctrl)
	pub := &recordingPublisher{}

	return NewProjectService(repo, validators.NewValidator(), events.NewNotifier(pub), logger.Nop()), repo, pub
}

func TestProjectService_Weekly_ForcesFilter(t *testing.T) {
	svc, repo, _ := newTestProjectSvc(t)

	repo.EXPECT().List(gomock.Any(), int64(1), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, f models.ProjectFilter) ([]models.Project, int, error) {
			require.NotNil(t, f.DoThisWeek)
			assert.True(t, *f.DoThisWeek)
			require.NotNil(t, f.IsDone)
			assert.False(t, *f.IsDone)
			return []models.Project{{ID: 1, DoThisWeek: true}}, 1, nil
		},
	)

	page, err := svc.Weekly(context.Background(), 1, models.ProjectFilter{ListParams: models.ListParams{Limit: 50}})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
}

func TestProjectService_Weekly_KeepsExplicitDoneFilter(t *testing.T) {
	svc, repo, _ := newTestProjectSvc(t)
	done := true

	repo.EXPECT().List(gomock.Any(), int64(1), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, f models.ProjectFilter) ([]models.Project, int, error) {
			assert.True(t, *f.IsDone)
			return nil, 0, nil
		},
	)

	_, err := svc.Weekly(context.Background(), 1, models.ProjectFilter{ListParams: models.ListParams{IsDone: &done}})
	require.NoError(t, err)
}

func TestProjectService_Get_NotFound(t *testing.T) {
	svc, repo, _ := newTestProjectSvc(t)

	repo.EXPECT().Get(gomock.Any(), int64(1), int64(7)).Return(models.Project{}, store.ErrNotFound)

	_, err := svc.Get(context.Background(), 1, 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectService_Create(t *testing.T) {
	svc, repo, pub := newTestProjectSvc(t)

	repo.EXPECT().Create(gomock.Any(), int64(1), models.ProjectCreate{Name: "Launch"}).
		Return(models.Project{ID: 4, Name: "Launch"}, nil)

	p, err := svc.Create(context.Background(), 1, models.ProjectCreate{Name: " Launch "})
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.ID)
	assert.Equal(t, []string{"project.created"}, pub.types())
}

func TestProjectService_Create_UnknownField(t *testing.T) {
	svc, repo, pub := newTestProjectSvc(t)
	fieldID := int64(42)

	repo.EXPECT().Create(gomock.Any(), int64(1), gomock.Any()).
		Return(models.Project{}, &store.InvalidReferenceError{Field: "field_id", ID: 42})

	_, err := svc.Create(context.Background(), 1, models.ProjectCreate{Name: "Launch", FieldID: &fieldID})

	var verr *validators.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "does not exist", verr.Fields["field_id"])
	assert.Empty(t, pub.types())
}

func TestProjectService_Update_RejectsBlankName(t *testing.T) {
	svc, _, _ := newTestProjectSvc(t)
	blank := "  "

	_, err := svc.Update(context.Background(), 1, 4, models.ProjectUpdate{Name: &blank})
	assert.ErrorIs(t, err, validators.ErrValidation)
}

func TestProjectService_Delete(t *testing.T) {
	svc, repo, pub := newTestProjectSvc(t)

	repo.EXPECT().Delete(gomock.Any(), int64(1), int64(4)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), 1, 4))
	assert.Equal(t, []string{"project.deleted"}, pub.types())
}
