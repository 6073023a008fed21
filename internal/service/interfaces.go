package service

import (
	"context"

	"github.com/MKhiriev/go-gtd/models"
)

type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	Me(ctx context.Context, userID int64) (models.User, error)
	UpdateMe(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)

	// EnsureDefault provisions the user every request acts as when auth is off.
	EnsureDefault(ctx context.Context, userID int64) error
}

type ProjectService interface {
	List(ctx context.Context, userID int64, filter models.ProjectFilter) (models.Page[models.Project], error)
	// Weekly lists the projects flagged for this week; open ones unless the
	// filter asks otherwise.
	Weekly(ctx context.Context, userID int64, filter models.ProjectFilter) (models.Page[models.Project], error)
	Get(ctx context.Context, userID, id int64) (models.Project, error)
	Create(ctx context.Context, userID int64, in models.ProjectCreate) (models.Project, error)
	Update(ctx context.Context, userID, id int64, update models.ProjectUpdate) (models.Project, error)
	Delete(ctx context.Context, userID, id int64) error
}

type TaskService interface {
	List(ctx context.Context, userID int64, filter models.TaskFilter) (models.Page[models.Task], error)
	Today(ctx context.Context, userID int64, filter models.TaskFilter) (models.Page[models.Task], error)
	Week(ctx context.Context, userID int64, filter models.TaskFilter) (models.Page[models.Task], error)
	Get(ctx context.Context, userID, id int64) (models.Task, error)
	Create(ctx context.Context, userID int64, in models.TaskCreate) (models.Task, error)
	Update(ctx context.Context, userID, id int64, update models.TaskUpdate) (models.Task, error)
	Delete(ctx context.Context, userID, id int64) error
}

type FieldService interface {
	List(ctx context.Context, userID int64, params models.ListParams) (models.Page[models.Field], error)
	Get(ctx context.Context, userID, id int64) (models.Field, error)
	Create(ctx context.Context, userID int64, in models.FieldCreate) (models.Field, error)
	Update(ctx context.Context, userID, id int64, update models.FieldUpdate) (models.Field, error)
	Delete(ctx context.Context, userID, id int64) error
}

type DashboardService interface {
	Stats(ctx context.Context, userID int64) (models.DashboardStats, error)
}

type QuickAddService interface {
	// Parse turns text into a draft without side effects.
	Parse(ctx context.Context, text string) (models.TaskDraft, error)
	// Create parses text, resolves its project and field hints and stores
	// the task.
	Create(ctx context.Context, userID int64, text string) (models.Task, error)
}

type SearchService interface {
	Tasks(ctx context.Context, userID int64, params models.ListParams) (models.Page[models.Task], error)
	Projects(ctx context.Context, userID int64, params models.ListParams) (models.Page[models.Project], error)
}

type TransferService interface {
	Export(ctx context.Context, userID int64) (models.ExportBundle, error)
	Import(ctx context.Context, userID int64, bundle models.ExportBundle) (models.ImportResult, error)
}

type AppInfoService interface {
	Version(ctx context.Context) models.VersionResponse
}

type HealthService interface {
	Check(ctx context.Context) error
}
