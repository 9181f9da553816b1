package handler

import (
	"log/slog"
	"net/http"

	"github.com/rs/xid"

	"github.com/sakif/maintainer-match/internal/auth"
	"github.com/sakif/maintainer-match/internal/service"
)

// stateCookie carries the OAuth CSRF nonce between /auth/login and
// /auth/callback. Ten minutes is ample for a redirect round-trip.
const (
	stateCookie       = "github_oauth_state"
	stateCookieMaxAge = 600
)

// AuthHandler serves the GitHub OAuth flow and session endpoints.
type AuthHandler struct {
	auths    *service.AuthService
	provider *auth.GitHubProvider
	logger   *slog.Logger
}

func NewAuthHandler(auths *service.AuthService, provider *auth.GitHubProvider, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auths: auths, provider: provider, logger: logger}
}

// HandleLogin starts the OAuth flow: mint a state nonce, park it in a
// short-lived cookie, and bounce the browser to GitHub's authorize page.
//
// GET /auth/login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if !h.provider.Configured() {
		h.logger.Error("login attempted without OAuth credentials configured")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Authentication failed"})
		return
	}

	state := xid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   stateCookieMaxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.provider.AuthURL(state), http.StatusTemporaryRedirect)
}

// HandleCallback finishes the OAuth flow: verify the state nonce against the
// cookie, trade the code for a GitHub profile, log the user in, and set the
// session cookie. The state cookie is cleared no matter how the request ends —
// a nonce is single-use.
//
// GET /auth/callback
func (h *AuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	clearCookie(w, stateCookie)

	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")
	cookie, err := r.Cookie(stateCookie)
	if code == "" || state == "" || err != nil || cookie.Value != state {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid OAuth callback"})
		return
	}

	ghUser, err := h.provider.Exchange(r.Context(), code)
	if err != nil {
		h.logger.Error("OAuth exchange failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Authentication failed"})
		return
	}

	result, err := h.auths.LoginOrRegister(r.Context(), ghUser)
	if err != nil {
		h.logger.Error("login failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Authentication failed"})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    result.Token,
		Path:     "/",
		MaxAge:   int(auth.SessionLifetime.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/", http.StatusFound)
}

// HandleLogout revokes the session row and clears the cookie. Idempotent:
// without a cookie, or with a stale one, it still reports success.
//
// GET /auth/logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.SessionCookie); err == nil && cookie.Value != "" {
		if err := h.auths.Logout(r.Context(), cookie.Value); err != nil {
			writeError(w, h.logger, err)
			return
		}
	}

	clearCookie(w, auth.SessionCookie)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// HandleMe returns the user behind the session cookie. A missing cookie
// reports "Not authenticated" here, unlike the middleware's "Authentication
// required" — this endpoint answers "who am I", it doesn't guard anything.
//
// GET /auth/me
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(auth.SessionCookie)
	if err != nil || cookie.Value == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Not authenticated"})
		return
	}

	user, err := h.auths.CurrentUser(r.Context(), cookie.Value)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

// clearCookie expires a cookie immediately.
func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}
