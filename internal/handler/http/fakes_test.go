package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-gtd/internal/config"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/service"
	"github.com/MKhiriev/go-gtd/models"
)

// Hand-written service fakes. A nil function field returns zero values.

type fakeAuthService struct {
	registerFn    func(ctx context.Context, c models.Credentials) (models.User, error)
	loginFn       func(ctx context.Context, c models.Credentials) (models.User, error)
	createTokenFn func(ctx context.Context, u models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, s string) (models.Token, error)
}

func (f *fakeAuthService) Register(ctx context.Context, c models.Credentials) (models.User, error) {
	return f.registerFn(ctx, c)
}

func (f *fakeAuthService) Login(ctx context.Context, c models.Credentials) (models.User, error) {
	return f.loginFn(ctx, c)
}

func (f *fakeAuthService) CreateToken(ctx context.Context, u models.User) (models.Token, error) {
	if f.createTokenFn == nil {
		return models.Token{SignedString: "signed-token"}, nil
	}
	return f.createTokenFn(ctx, u)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, s string) (models.Token, error) {
	return f.parseTokenFn(ctx, s)
}

type fakeTaskService struct {
	listFn   func(ctx context.Context, userID int64, f models.TaskFilter) (models.Page[models.Task], error)
	todayFn  func(ctx context.Context, userID int64, f models.TaskFilter) (models.Page[models.Task], error)
	weekFn   func(ctx context.Context, userID int64, f models.TaskFilter) (models.Page[models.Task], error)
	getFn    func(ctx context.Context, userID, id int64) (models.Task, error)
	createFn func(ctx context.Context, userID int64, in models.TaskCreate) (models.Task, error)
	updateFn func(ctx context.Context, userID, id int64, u models.TaskUpdate) (models.Task, error)
	deleteFn func(ctx context.Context, userID, id int64) error
}

func (f *fakeTaskService) List(ctx context.Context, userID int64, filter models.TaskFilter) (models.Page[models.Task], error) {
	return f.listFn(ctx, userID, filter)
}

func (f *fakeTaskService) Today(ctx context.Context, userID int64, filter models.TaskFilter) (models.Page[models.Task], error) {
	return f.todayFn(ctx, userID, filter)
}

func (f *fakeTaskService) Week(ctx context.Context, userID int64, filter models.TaskFilter) (models.Page[models.Task], error) {
	if f.weekFn == nil {
		return models.NewPage[models.Task](nil, 0, filter.Limit, filter.Offset), nil
	}
	return f.weekFn(ctx, userID, filter)
}

func (f *fakeTaskService) Get(ctx context.Context, userID, id int64) (models.Task, error) {
	return f.getFn(ctx, userID, id)
}

func (f *fakeTaskService) Create(ctx context.Context, userID int64, in models.TaskCreate) (models.Task, error) {
	return f.createFn(ctx, userID, in)
}

func (f *fakeTaskService) Update(ctx context.Context, userID, id int64, u models.TaskUpdate) (models.Task, error) {
	return f.updateFn(ctx, userID, id, u)
}

func (f *fakeTaskService) Delete(ctx context.Context, userID, id int64) error {
	return f.deleteFn(ctx, userID, id)
}

type fakeQuickAddService struct {
	parseFn  func(ctx context.Context, text string) (models.TaskDraft, error)
	createFn func(ctx context.Context, userID int64, text string) (models.Task, error)
}

func (f *fakeQuickAddService) Parse(ctx context.Context, text string) (models.TaskDraft, error) {
	return f.parseFn(ctx, text)
}

func (f *fakeQuickAddService) Create(ctx context.Context, userID int64, text string) (models.Task, error) {
	return f.createFn(ctx, userID, text)
}

type fakeSearchService struct {
	tasksFn func(ctx context.Context, userID int64, p models.ListParams) (models.Page[models.Task], error)
}

func (f *fakeSearchService) Tasks(ctx context.Context, userID int64, p models.ListParams) (models.Page[models.Task], error) {
	return f.tasksFn(ctx, userID, p)
}

func (f *fakeSearchService) Projects(ctx context.Context, userID int64, p models.ListParams) (models.Page[models.Project], error) {
	return models.NewPage[models.Project](nil, 0, p.Limit, p.Offset), nil
}

type fakeAppInfoService struct {
	version models.VersionResponse
}

func (f *fakeAppInfoService) Version(context.Context) models.VersionResponse {
	return f.version
}

type fakeHealthService struct {
	err error
}

func (f *fakeHealthService) Check(context.Context) error {
	return f.err
}

type testOptions struct {
	auth         bool
	exportImport bool
}

func newTestHandler(t *testing.T, services *service.Services, opts testOptions) *Handler {
	t.Helper()

	if services.AppInfoService == nil {
		services.AppInfoService = &fakeAppInfoService{version: models.VersionResponse{Version: "test"}}
	}
	if services.HealthService == nil {
		services.HealthService = &fakeHealthService{}
	}

	cfg := &config.ServerConfig{
		App:      config.App{DefaultUserID: 1, MaxPageSize: 100},
		Features: config.Features{Auth: opts.auth, ExportImport: opts.exportImport},
	}
	return NewHandler(services, cfg, logger.Nop())
}
