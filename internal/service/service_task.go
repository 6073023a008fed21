package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-gtd/internal/events"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/store"
	"github.com/MKhiriev/go-gtd/internal/validators"
	"github.com/MKhiriev/go-gtd/models"
)

type taskService struct {
	taskRepository store.TaskRepository
	validator      validators.Validator
	notifier       *events.Notifier
	now            func() time.Time
	logger         *logger.Logger
}

func NewTaskService(taskRepository store.TaskRepository, validator validators.Validator, notifier *events.Notifier, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		validator:      validator,
		notifier:       notifier,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *taskService) List(ctx context.Context, userID int64, filter models.TaskFilter) (models.Page[models.Task], error) {
	items, total, err := s.taskRepository.List(ctx, userID, filter)
	if err != nil {
		return models.Page[models.Task]{}, mapStoreError("list tasks", err)
	}
	return models.NewPage(items, total, filter.Limit, filter.Offset), nil
}

// Today lists open tasks flagged for today or scheduled on or before today.
// Done tasks never appear, whatever their flags.
func (s *taskService) Today(ctx context.Context, userID int64, filter models.TaskFilter) (models.Page[models.Task], error) {
	items, total, err := s.taskRepository.ListToday(ctx, userID, today(s.now()), filter)
	if err != nil {
		return models.Page[models.Task]{}, mapStoreError("list today", err)
	}
	return models.NewPage(items, total, filter.Limit, filter.Offset), nil
}

// Week lists open tasks flagged for this week or scheduled before next
// Monday.
func (s *taskService) Week(ctx context.Context, userID int64, filter models.TaskFilter) (models.Page[models.Task], error) {
	items, total, err := s.taskRepository.ListWeek(ctx, userID, weekEnd(today(s.now())), filter)
	if err != nil {
		return models.Page[models.Task]{}, mapStoreError("list week", err)
	}
	return models.NewPage(items, total, filter.Limit, filter.Offset), nil
}

func (s *taskService) Get(ctx context.Context, userID, id int64) (models.Task, error) {
	t, err := s.taskRepository.Get(ctx, userID, id)
	if err != nil {
		return models.Task{}, mapStoreError("get task", err)
	}
	return t, nil
}

func (s *taskService) Create(ctx context.Context, userID int64, in models.TaskCreate) (models.Task, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.Task{}, err
	}

	t, err := s.taskRepository.Create(ctx, userID, in)
	if err != nil {
		return models.Task{}, mapStoreError("create task", err)
	}

	s.notifier.Notify(ctx, models.ResourceTask, models.ActionCreated, t.ID, userID)
	return t, nil
}

func (s *taskService) Update(ctx context.Context, userID, id int64, update models.TaskUpdate) (models.Task, error) {
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		update.Name = &name
	}
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Task{}, err
	}

	t, err := s.taskRepository.Update(ctx, userID, id, update)
	if err != nil {
		return models.Task{}, mapStoreError("update task", err)
	}

	if !update.Empty() {
		s.notifier.Notify(ctx, models.ResourceTask, models.ActionUpdated, t.ID, userID)
	}
	return t, nil
}

func (s *taskService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.taskRepository.Delete(ctx, userID, id); err != nil {
		return mapStoreError("delete task", err)
	}

	s.notifier.Notify(ctx, models.ResourceTask, models.ActionDeleted, id, userID)
	return nil
}
