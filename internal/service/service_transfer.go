package service

import (
	"context"

	"github.com/MKhiriev/go-gtd/internal/events"
	"github.com/MKhiriev/go-gtd/internal/logger"
	"github.com/MKhiriev/go-gtd/internal/store"
	"github.com/MKhiriev/go-gtd/internal/validators"
	"github.com/MKhiriev/go-gtd/models"
)

type transferService struct {
	transferRepository store.TransferRepository
	notifier           *events.Notifier
	logger             *logger.Logger
}

func NewTransferService(transferRepository store.TransferRepository, notifier *events.Notifier, logger *logger.Logger) TransferService {
	return &transferService{
		transferRepository: transferRepository,
		notifier:           notifier,
		logger:             logger,
	}
}

func (s *transferService) Export(ctx context.Context, userID int64) (models.ExportBundle, error) {
	bundle, err := s.transferRepository.Export(ctx, userID)
	if err != nil {
		return models.ExportBundle{}, mapStoreError("export", err)
	}
	return bundle, nil
}

// Import stores the bundle as new rows of the user. Every name must be
// present; the import is all or nothing.
func (s *transferService) Import(ctx context.Context, userID int64, bundle models.ExportBundle) (models.ImportResult, error) {
	if bundle.Version != models.ExportVersion {
		return models.ImportResult{}, &validators.ValidationError{
			Message: ErrUnsupportedExportVersion.Error(),
			Fields:  map[string]string{"version": "unsupported"},
		}
	}
	if err := validateBundle(bundle); err != nil {
		return models.ImportResult{}, err
	}

	result, err := s.transferRepository.Import(ctx, userID, bundle)
	if err != nil {
		return models.ImportResult{}, mapStoreError("import", err)
	}

	s.notifier.Notify(ctx, models.ResourceUser, models.ActionImported, userID, userID)
	logger.FromContext(ctx).Info().
		Int("fields", result.Fields).
		Int("projects", result.Projects).
		Int("tasks", result.Tasks).
		Msg("import finished")
	return result, nil
}

func validateBundle(bundle models.ExportBundle) error {
	verr := &validators.ValidationError{}
	for _, f := range bundle.Fields {
		if f.Name == "" {
			verr.Add("fields.name", "required")
		}
	}
	for _, p := range bundle.Projects {
		if p.Name == "" {
			verr.Add("projects.name", "required")
		}
	}
	for _, t := range bundle.Tasks {
		if t.Name == "" {
			verr.Add("tasks.name", "required")
		}
		if t.Priority < models.MinPriority || t.Priority > models.MaxPriority {
			verr.Add("tasks.priority", "max=10")
		}
	}
	if verr.Empty() {
		return nil
	}
	return verr
}
