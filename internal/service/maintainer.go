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

// MaintainerService owns maintainer-profile business rules.
type MaintainerService struct {
	maintainers repository.MaintainerRepository
	logger      *slog.Logger
}

func NewMaintainerService(maintainers repository.MaintainerRepository, logger *slog.Logger) *MaintainerService {
	return &MaintainerService{maintainers: maintainers, logger: logger}
}

// Create validates and stores a new maintainer profile. Availability must be
// one of the recognized values — a typo here would silently break the
// availability filter, so it's rejected up front.
func (s *MaintainerService) Create(ctx context.Context, maintainer *model.Maintainer) error {
	maintainer.GitHubUsername = strings.TrimSpace(maintainer.GitHubUsername)
	if maintainer.GitHubUsername == "" {
		return apperror.ValidationFailed("githubUsername", "githubUsername is required")
	}
	if strings.TrimSpace(maintainer.Name) == "" {
		return apperror.ValidationFailed("name", "name is required")
	}
	if !model.ValidAvailability(maintainer.Availability) {
		return apperror.ValidationFailed("availability",
			"availability must be one of full-time, part-time, volunteer")
	}

	if err := s.maintainers.Create(ctx, maintainer); err != nil {
		return fmt.Errorf("service/maintainer: creating maintainer: %w", err)
	}

	s.logger.Info("maintainer profile created",
		slog.String("maintainerID", maintainer.ID),
		slog.String("githubUsername", maintainer.GitHubUsername),
	)
	return nil
}

// GetByID returns one maintainer profile.
func (s *MaintainerService) GetByID(ctx context.Context, id string) (*model.Maintainer, error) {
	maintainer, err := s.maintainers.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service/maintainer: fetching maintainer %s: %w", id, err)
	}
	return maintainer, nil
}

// List returns one page of maintainers under the filter plus pagination
// metadata.
func (s *MaintainerService) List(ctx context.Context, filter repository.MaintainerFilter, params ListParams) ([]model.Maintainer, Pagination, error) {
	opts := params.normalize()

	maintainers, total, err := s.maintainers.List(ctx, filter, opts)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("service/maintainer: listing maintainers: %w", err)
	}
	return maintainers, paginate(opts, total), nil
}
