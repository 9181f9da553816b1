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

// UserService owns user accounts. Most accounts arrive through the OAuth
// login flow; Create also backs the public registration endpoint, which
// predates OAuth and is kept for API compatibility.
type UserService struct {
	users  repository.UserRepository
	logger *slog.Logger
}

func NewUserService(users repository.UserRepository, logger *slog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Create validates and stores a new user account.
func (s *UserService) Create(ctx context.Context, user *model.User) error {
	user.GitHubID = strings.TrimSpace(user.GitHubID)
	if user.GitHubID == "" {
		return apperror.ValidationFailed("githubId", "githubId is required")
	}
	if strings.TrimSpace(user.GitHubUsername) == "" {
		return apperror.ValidationFailed("githubUsername", "githubUsername is required")
	}

	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("service/user: creating user: %w", err)
	}

	s.logger.Info("user created",
		slog.String("userID", user.ID),
		slog.String("githubUsername", user.GitHubUsername),
	)
	return nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service/user: fetching user %s: %w", id, err)
	}
	return user, nil
}

// List returns every user. The user directory is small and unfiltered, so it
// skips the pagination pipeline the other resources use.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/user: listing users: %w", err)
	}
	return users, nil
}
