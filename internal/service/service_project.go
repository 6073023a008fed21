package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-gtd/internal/events"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/store"
	"github.com/MKhiriev/go-gtd/internal/validators"
	"github.com/MKhiriev/go-gtd/models"
)

type projectService struct {
	projectRepository store.ProjectRepository
	validator         validators.Validator
	notifier          *events.Notifier
	logger            *logger.Logger
}

func NewProjectService(projectRepository store.ProjectRepository, validator validators.Validator, notifier *events.Notifier, logger *logger.Logger) ProjectService {
	return &projectService{
		projectRepository: projectRepository,
		validator:         validator,
		notifier:          notifier,
		logger:            logger,
	}
}

func (s *projectService) List(ctx context.Context, userID int64, filter models.ProjectFilter) (models.Page[models.Project], error) {
	items, total, err := s.projectRepository.List(ctx, userID, filter)
	if err != nil {
		return models.Page[models.Project]{}, mapStoreError("list projects", err)
	}
	return models.NewPage(items, total, filter.Limit, filter.Offset), nil
}

func (s *projectService) Weekly(ctx context.Context, userID int64, filter models.ProjectFilter) (models.Page[models.Project], error) {
	weekly := true
	filter.DoThisWeek = &weekly
	if filter.IsDone == nil {
		open := false
		filter.IsDone = &open
	}
	return s.List(ctx, userID, filter)
}

func (s *projectService) Get(ctx context.Context, userID, id int64) (models.Project, error) {
	p, err := s.projectRepository.Get(ctx, userID, id)
	if err != nil {
		return models.Project{}, mapStoreError("get project", err)
	}
	return p, nil
}

func (s *projectService) Create(ctx context.Context, userID int64, in models.ProjectCreate) (models.Project, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.Project{}, err
	}

	p, err := s.projectRepository.Create(ctx, userID, in)
	if err != nil {
		return models.Project{}, mapStoreError("create project", err)
	}

	s.notifier.Notify(ctx, models.ResourceProject, models.ActionCreated, p.ID, userID)
	return p, nil
}

func (s *projectService) Update(ctx context.Context, userID, id int64, update models.ProjectUpdate) (models.Project, error) {
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		update.Name = &name
	}
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Project{}, err
	}

	p, err := s.projectRepository.Update(ctx, userID, id, update)
	if err != nil {
		return models.Project{}, mapStoreError("update project", err)
	}

	if !update.Empty() {
		s.notifier.Notify(ctx, models.ResourceProject, models.ActionUpdated, p.ID, userID)
	}
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.projectRepository.Delete(ctx, userID, id); err != nil {
		return mapStoreError("delete project", err)
	}

	s.notifier.Notify(ctx, models.ResourceProject, models.ActionDeleted, id, userID)
	return nil
}
