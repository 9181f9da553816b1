package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/sakif/maintainer-match/internal/apperror"
	"github.com/sakif/maintainer-match/internal/auth"
	"github.com/sakif/maintainer-match/internal/model"
	"github.com/sakif/maintainer-match/internal/repository"
)

// AuthService orchestrates the login flow: user lookup-or-create after the
// OAuth exchange, session issuing, session revocation, and the current-user
// lookup behind /auth/me. It knows nothing about HTTP — cookies are the
// handler's business.
type AuthService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	logger   *slog.Logger
}

func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, logger *slog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, logger: logger}
}

// LoginResult carries what the callback handler needs to set the cookie.
type LoginResult struct {
	User      *model.User
	Token     string
	ExpiresAt int64 // epoch millis, mirrors the session row
}

// LoginOrRegister turns a verified GitHub profile into a logged-in session.
//
// First login for a github_id creates the user; later logins reuse the
// existing row untouched, except that an empty email is backfilled if GitHub
// now provides one. Then a fresh session row is inserted with a fixed
// 30-day expiry and the opaque token is returned for the cookie.
func (s *AuthService) LoginOrRegister(ctx context.Context, ghUser *auth.GitHubUser) (*LoginResult, error) {
	if ghUser == nil {
		return nil, fmt.Errorf("service/auth: GitHub user must not be nil")
	}
	githubID := strconv.FormatInt(ghUser.ID, 10)

	user, err := s.users.GetByGitHubID(ctx, githubID)
	switch {
	case err == nil:
		if user.Email == "" && ghUser.Email != "" {
			if err := s.users.UpdateEmail(ctx, user.ID, ghUser.Email); err != nil {
				return nil, fmt.Errorf("service/auth: backfilling email for user %s: %w", user.ID, err)
			}
			user.Email = ghUser.Email
		}
	case isNotFound(err):
		user = &model.User{
			GitHubID:       githubID,
			GitHubUsername: ghUser.Login,
			Email:          ghUser.Email,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("service/auth: creating user (githubID=%s): %w", githubID, err)
		}
		s.logger.Info("new user registered",
			slog.String("userID", user.ID),
			slog.String("githubUsername", user.GitHubUsername),
		)
	default:
		return nil, fmt.Errorf("service/auth: looking up user (githubID=%s): %w", githubID, err)
	}

	token, err := auth.NewSessionToken()
	if err != nil {
		return nil, fmt.Errorf("service/auth: %w", err)
	}

	session := &model.Session{
		Token:          token,
		UserID:         user.ID,
		GitHubID:       user.GitHubID,
		GitHubUsername: user.GitHubUsername,
		ExpiresAt:      auth.SessionExpiry(time.Now()),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("service/auth: creating session for user %s: %w", user.ID, err)
	}

	s.logger.Info("user logged in",
		slog.String("userID", user.ID),
		slog.String("githubUsername", user.GitHubUsername),
	)

	return &LoginResult{User: user, Token: token, ExpiresAt: session.ExpiresAt}, nil
}

// Logout revokes the session row. Idempotent: revoking an unknown token is a
// no-op, so logout never fails from the user's point of view.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("service/auth: revoking session: %w", err)
	}
	return nil
}

// CurrentUser resolves a session token to its user, with the same error
// taxonomy the middleware exposes: SessionExpired for a dead token, NotFound
// for a dangling user reference.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*model.User, error) {
	session, err := s.sessions.GetValid(ctx, token, time.Now())
	if err != nil {
		return nil, fmt.Errorf("service/auth: validating session: %w", err)
	}
	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("service/auth: loading session user: %w", err)
	}
	return user, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, apperror.ErrNotFound)
}
