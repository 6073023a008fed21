package service

import (
	"github.com/MKhiriev/go-gtd/internal/config"
	"github.com/MKhiriev/go-gtd/internal/events"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/store"
	"github.com/MKhiriev/go-gtd/internal/validators"
	"github.com/MKhiriev/go-gtd/models"
)

type Services struct {
	AuthService      AuthService
	UserService      UserService
	ProjectService   ProjectService
	TaskService      TaskService
	FieldService     FieldService
	DashboardService DashboardService
	QuickAddService  QuickAddService
	SearchService    SearchService
	TransferService  TransferService
	AppInfoService   AppInfoService
	HealthService    HealthService
}

func NewServices(storages *store.Storages, publisher events.Publisher, buildInfo models.AppBuildInfo, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewValidator()
	notifier := events.NewNotifier(publisher)

	appInfo, err := NewAppInfoService(buildInfo, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	tasks := NewTaskService(storages.TaskRepository, validator, notifier, logger)
	projects := NewProjectService(storages.ProjectRepository, validator, notifier, logger)

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		UserService:      NewUserService(storages.UserRepository, validator, notifier, logger),
		ProjectService:   projects,
		TaskService:      tasks,
		FieldService:     NewFieldService(storages.FieldRepository, validator, notifier, logger),
		DashboardService: NewDashboardService(storages.DashboardRepository, logger),
		QuickAddService:  NewQuickAddService(tasks, storages.ProjectRepository, storages.FieldRepository, validator, logger),
		SearchService:    NewSearchService(tasks, projects),
		TransferService:  NewTransferService(storages.TransferRepository, notifier, logger),
		AppInfoService:   appInfo,
		HealthService:    NewHealthService(storages),
	}, nil
}
