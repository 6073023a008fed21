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

type fieldService struct {
	fieldRepository store.FieldRepository
	validator       validators.Validator
	notifier        *events.Notifier
	logger          *logger.Logger
}

func NewFieldService(fieldRepository store.FieldRepository, validator validators.Validator, notifier *events.Notifier, logger *logger.Logger) FieldService {
	return &fieldService{
		fieldRepository: fieldRepository,
		validator:       validator,
		notifier:        notifier,
		logger:          logger,
	}
}

func (s *fieldService) List(ctx context.Context, userID int64, params models.ListParams) (models.Page[models.Field], error) {
	items, total, err := s.fieldRepository.List(ctx, userID, params)
	if err != nil {
		return models.Page[models.Field]{}, mapStoreError("list fields", err)
	}
	return models.NewPage(items, total, params.Limit, params.Offset), nil
}

func (s *fieldService) Get(ctx context.Context, userID, id int64) (models.Field, error) {
	f, err := s.fieldRepository.Get(ctx, userID, id)
	if err != nil {
		return models.Field{}, mapStoreError("get field", err)
	}
	return f, nil
}

func (s *fieldService) Create(ctx context.Context, userID int64, in models.FieldCreate) (models.Field, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.Field{}, err
	}

	f, err := s.fieldRepository.Create(ctx, userID, in)
	if err != nil {
		return models.Field{}, mapStoreError("create field", err)
	}

	s.notifier.Notify(ctx, models.ResourceField, models.ActionCreated, f.ID, userID)
	return f, nil
}

func (s *fieldService) Update(ctx context.Context, userID, id int64, update models.FieldUpdate) (models.Field, error) {
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		update.Name = &name
	}
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Field{}, err
	}

	f, err := s.fieldRepository.Update(ctx, userID, id, update)
	if err != nil {
		return models.Field{}, mapStoreError("update field", err)
	}

	if !update.Empty() {
		s.notifier.Notify(ctx, models.ResourceField, models.ActionUpdated, f.ID, userID)
	}
	return f, nil
}

// Delete removes the field; its projects and tasks lose the reference.
func (s *fieldService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.fieldRepository.Delete(ctx, userID, id); err != nil {
		return mapStoreError("delete field", err)
	}

	s.notifier.Notify(ctx, models.ResourceField, models.ActionDeleted, id, userID)
	return nil
}
