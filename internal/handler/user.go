package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/maintainer-match/internal/model"
	"github.com/sakif/maintainer-match/internal/service"
)

// UserHandler serves the user directory endpoints.
type UserHandler struct {
	users  *service.UserService
	logger *slog.Logger
}

func NewUserHandler(users *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// createUserRequest is the public registration body. Request bodies use
// camelCase keys; response bodies mirror the storage columns in snake_case.
type createUserRequest struct {
	GitHubID       string `json:"githubId"`
	GitHubUsername string `json:"githubUsername"`
	Email          string `json:"email"`
}

// HandleList returns every user, newest first.
//
// GET /api/users
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

// HandleCreate registers a user directly, without the OAuth flow.
//
// POST /api/users
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user := &model.User{
		GitHubID:       req.GitHubID,
		GitHubUsername: req.GitHubUsername,
		Email:          req.Email,
	}
	if err := h.users.Create(r.Context(), user); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"user": user})
}

// HandleGet returns one user by ID.
//
// GET /api/users/{id}
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}
