package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-gtd/internal/validators"
	"github.com/MKhiriev/go-gtd/models"
)

// searchService runs name searches through the regular listings; a search
// term is mandatory.
type searchService struct {
	tasks    TaskService
	projects ProjectService
}

func NewSearchService(tasks TaskService, projects ProjectService) SearchService {
	return &searchService{tasks: tasks, projects: projects}
}

func (s *searchService) Tasks(ctx context.Context, userID int64, params models.ListParams) (models.Page[models.Task], error) {
	if err := requireSearch(&params); err != nil {
		return models.Page[models.Task]{}, err
	}
	return s.tasks.List(ctx, userID, models.TaskFilter{ListParams: params})
}

func (s *searchService) Projects(ctx context.Context, userID int64, params models.ListParams) (models.Page[models.Project], error) {
	if err := requireSearch(&params); err != nil {
		return models.Page[models.Project]{}, err
	}
	return s.projects.List(ctx, userID, models.ProjectFilter{ListParams: params})
}

func requireSearch(params *models.ListParams) error {
	params.Search = strings.TrimSpace(params.Search)
	if params.Search == "" {
		return validators.NewValidationError("q", "required")
	}
	return nil
}
