package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/maintainer-match/internal/apperror"
	"github.com/sakif/maintainer-match/internal/model"
	"github.com/sakif/maintainer-match/internal/repository"
)

// MatchService records project/maintainer pairings. A match is an offer of
// help, created pending; nothing in the API moves it to another status.
type MatchService struct {
	matches repository.MatchRepository
	logger  *slog.Logger
}

func NewMatchService(matches repository.MatchRepository, logger *slog.Logger) *MatchService {
	return &MatchService{matches: matches, logger: logger}
}

// Create validates and stores a new match. Referential integrity against the
// projects and maintainers tables is enforced by the database, not re-checked
// here; a dangling ID surfaces as a storage error.
func (s *MatchService) Create(ctx context.Context, match *model.Match) error {
	if match.ProjectID == "" {
		return apperror.ValidationFailed("projectId", "projectId is required")
	}
	if match.MaintainerID == "" {
		return apperror.ValidationFailed("maintainerId", "maintainerId is required")
	}

	match.Status = model.MatchStatusPending

	if err := s.matches.Create(ctx, match); err != nil {
		return fmt.Errorf("service/match: creating match: %w", err)
	}

	s.logger.Info("match created",
		slog.String("matchID", match.ID),
		slog.String("projectID", match.ProjectID),
		slog.String("maintainerID", match.MaintainerID),
	)
	return nil
}

// List returns all matches, newest first.
func (s *MatchService) List(ctx context.Context) ([]model.Match, error) {
	matches, err := s.matches.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/match: listing matches: %w", err)
	}
	return matches, nil
}
