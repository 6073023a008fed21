package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/store"
	"github.com/MKhiriev/go-gtd/internal/validators"
	"github.com/MKhiriev/go-gtd/models"
)

type quickAddService struct {
	taskService       TaskService
	projectRepository store.ProjectRepository
	fieldRepository   store.FieldRepository
	validator         validators.Validator
	now               func() time.Time
	logger            *logger.Logger
}

func NewQuickAddService(taskService TaskService, projectRepository store.ProjectRepository, fieldRepository store.FieldRepository,
	validator validators.Validator, logger *logger.Logger) QuickAddService {
	return &quickAddService{
		taskService:       taskService,
		projectRepository: projectRepository,
		fieldRepository:   fieldRepository,
		validator:         validator,
		now:               time.Now,
		logger:            logger,
	}
}

func (s *quickAddService) Parse(ctx context.Context, text string) (models.TaskDraft, error) {
	if err := s.validator.Validate(ctx, models.QuickAddRequest{Text: text}); err != nil {
		return models.TaskDraft{}, err
	}
	return ParseQuickAdd(text, today(s.now()))
}

// Create resolves the draft's hints by case-insensitive name. A hint that
// names no project or field is put back into the task name where it was
// written, so text made of an unknown hint alone still names a task. A task
// with a project but no field hint inherits the project's field.
func (s *quickAddService) Create(ctx context.Context, userID int64, text string) (models.Task, error) {
	if err := s.validator.Validate(ctx, models.QuickAddRequest{Text: text}); err != nil {
		return models.Task{}, err
	}
	draft, layout, err := parseQuickAdd(text, today(s.now()))
	if err != nil {
		return models.Task{}, err
	}

	var (
		projectID, fieldID     *int64
		keepProject, keepField bool
	)

	if draft.ProjectHint != "" {
		p, err := s.projectRepository.FindByName(ctx, userID, draft.ProjectHint)
		switch {
		case err == nil:
			projectID = &p.ID
			fieldID = p.FieldID
		case errors.Is(err, store.ErrNotFound):
			keepProject = true
		default:
			return models.Task{}, mapStoreError("resolve project hint", err)
		}
	}

	if draft.FieldHint != "" {
		f, err := s.fieldRepository.FindByName(ctx, userID, draft.FieldHint)
		switch {
		case err == nil:
			fieldID = &f.ID
		case errors.Is(err, store.ErrNotFound):
			keepField = true
		default:
			return models.Task{}, mapStoreError("resolve field hint", err)
		}
	}

	draft.Name = layout.name(keepProject, keepField)
	if draft.Name == "" {
		return models.Task{}, noNameError()
	}

	return s.taskService.Create(ctx, userID, draft.ToCreate(projectID, fieldID))
}
