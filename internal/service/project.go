package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sakif/maintainer-match/internal/apperror"
	"github.com/sakif/maintainer-match/internal/model"
	"github.com/sakif/maintainer-match/internal/repository"
)

// ProjectService owns project business rules: creation validation and the
// list parameter pipeline.
type ProjectService struct {
	projects repository.ProjectRepository
	logger   *slog.Logger
}

func NewProjectService(projects repository.ProjectRepository, logger *slog.Logger) *ProjectService {
	return &ProjectService{projects: projects, logger: logger}
}

// Create validates and stores a new project. The owner ID comes from the
// authenticated session, never from the request body. Status is forced to
// open regardless of what the caller set — there are no transition endpoints,
// so every project enters the system open.
func (s *ProjectService) Create(ctx context.Context, project *model.Project, ownerID string) error {
	project.Name = strings.TrimSpace(project.Name)
	if project.Name == "" {
		return apperror.ValidationFailed("name", "name is required")
	}
	if strings.TrimSpace(project.Description) == "" {
		return apperror.ValidationFailed("description", "description is required")
	}
	if strings.TrimSpace(project.RepositoryURL) == "" {
		return apperror.ValidationFailed("repositoryUrl", "repositoryUrl is required")
	}

	project.OwnerID = ownerID
	project.Status = model.ProjectStatusOpen

	if err := s.projects.Create(ctx, project); err != nil {
		return fmt.Errorf("service/project: creating project: %w", err)
	}

	s.logger.Info("project created",
		slog.String("projectID", project.ID),
		slog.String("ownerID", ownerID),
	)
	return nil
}

// GetByID returns one project.
func (s *ProjectService) GetByID(ctx context.Context, id string) (*model.Project, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service/project: fetching project %s: %w", id, err)
	}
	return project, nil
}

// List returns one page of projects under the filter, plus pagination
// metadata consistent with the count taken under the same filter.
func (s *ProjectService) List(ctx context.Context, filter repository.ProjectFilter, params ListParams) ([]model.Project, Pagination, error) {
	opts := params.normalize()

	projects, total, err := s.projects.List(ctx, filter, opts)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("service/project: listing projects: %w", err)
	}
	return projects, paginate(opts, total), nil
}
