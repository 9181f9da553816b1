package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sakif/maintainer-match/internal/apperror"
	"github.com/sakif/maintainer-match/internal/model"
	"github.com/sakif/maintainer-match/internal/repository"
)

// contextKey is unexported so only this package can place or read the user
// in a request context.
type contextKey string

const userKey contextKey = "authUser"

// RequireAuth enforces a live session on protected routes.
//
// The check runs in three steps against the store, and each failure mode has
// a distinct observable result:
//   - no session cookie                  → 401 {"error":"Authentication required"}
//   - no live session row for the token  → 401 {"error":"Session expired"}
//     (unknown and expired tokens are deliberately indistinguishable; the
//     store filters on existence AND expiry in one predicate)
//   - session row but user row missing   → 404 {"error":"User not found"}
//     (a dangling session is a data-integrity anomaly, not an auth failure)
//
// On success the user is attached to the request context and the chain
// continues.
func RequireAuth(sessions repository.SessionRepository, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				writeAuthError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			user, err := lookupUser(r.Context(), sessions, users, cookie.Value)
			if err != nil {
				if errors.Is(err, apperror.ErrNotFound) {
					writeAuthError(w, http.StatusNotFound, "User not found")
					return
				}
				writeAuthError(w, http.StatusUnauthorized, "Session expired")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// OptionalAuth performs the same lookup but never short-circuits: the user is
// attached when the session is live, and the request proceeds anonymously
// otherwise — including on invalid or expired tokens. For endpoints that
// personalize but don't require login.
func OptionalAuth(sessions repository.SessionRepository, users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
				if user, err := lookupUser(r.Context(), sessions, users, cookie.Value); err == nil {
					r = r.WithContext(WithUser(r.Context(), user))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// lookupUser resolves a session token to its user: live session row first,
// then the referenced user row.
func lookupUser(ctx context.Context, sessions repository.SessionRepository, users repository.UserRepository, token string) (*model.User, error) {
	session, err := sessions.GetValid(ctx, token, time.Now())
	if err != nil {
		return nil, err
	}
	return users.GetByID(ctx, session.UserID)
}

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the authenticated user, or (nil, false) for an
// anonymous request.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok && user != nil
}

// writeAuthError emits the flat {"error": ...} body the frontend expects.
// The middleware can't use the handler package's helpers without an import
// cycle, so it writes the envelope directly.
func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
