package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-gtd/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	// EnsureUser provisions the user with the given id if it does not exist.
	EnsureUser(ctx context.Context, userID int64, login string) error
}

// ProjectRepository persists projects scoped by user.
type ProjectRepository interface {
	List(ctx context.Context, userID int64, filter models.ProjectFilter) ([]models.Project, int, error)
	Get(ctx context.Context, userID, id int64) (models.Project, error)
	// FindByName returns the oldest live project whose name matches
	// case-insensitively.
	FindByName(ctx context.Context, userID int64, name string) (models.Project, error)
	Create(ctx context.Context, userID int64, in models.ProjectCreate) (models.Project, error)
	Update(ctx context.Context, userID, id int64, update models.ProjectUpdate) (models.Project, error)
	Delete(ctx context.Context, userID, id int64) error
}

// TaskRepository persists tasks scoped by user.
type TaskRepository interface {
	List(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, int, error)
	// ListToday pages the open tasks flagged for today or due on or before
	// today.
	ListToday(ctx context.Context, userID int64, today time.Time, filter models.TaskFilter) ([]models.Task, int, error)
	// ListWeek pages the open tasks flagged for this week or due before weekEnd.
	ListWeek(ctx context.Context, userID int64, weekEnd time.Time, filter models.TaskFilter) ([]models.Task, int, error)
	Get(ctx context.Context, userID, id int64) (models.Task, error)
	Create(ctx context.Context, userID int64, in models.TaskCreate) (models.Task, error)
	Update(ctx context.Context, userID, id int64, update models.TaskUpdate) (models.Task, error)
	Delete(ctx context.Context, userID, id int64) error
}

// FieldRepository persists fields scoped by user.
type FieldRepository interface {
	List(ctx context.Context, userID int64, params models.ListParams) ([]models.Field, int, error)
	Get(ctx context.Context, userID, id int64) (models.Field, error)
	FindByName(ctx context.Context, userID int64, name string) (models.Field, error)
	Create(ctx context.Context, userID int64, in models.FieldCreate) (models.Field, error)
	Update(ctx context.Context, userID, id int64, update models.FieldUpdate) (models.Field, error)
	Delete(ctx context.Context, userID, id int64) error
}

// DashboardRepository computes aggregate counts in one consistent read.
type DashboardRepository interface {
	Stats(ctx context.Context, userID int64, today time.Time) (models.DashboardStats, error)
}

// TransferRepository exports and imports a user's data.
type TransferRepository interface {
	Export(ctx context.Context, userID int64) (models.ExportBundle, error)
	Import(ctx context.Context, userID int64, bundle models.ExportBundle) (models.ImportResult, error)
}

// PreferenceRepository is the client-local key-value preference store.
type PreferenceRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	All(ctx context.Context) (map[string]string, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
