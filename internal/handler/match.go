package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/maintainer-match/internal/model"
	"github.com/sakif/maintainer-match/internal/service"
)

// MatchHandler serves the match endpoints.
type MatchHandler struct {
	matches *service.MatchService
	logger  *slog.Logger
}

func NewMatchHandler(matches *service.MatchService, logger *slog.Logger) *MatchHandler {
	return &MatchHandler{matches: matches, logger: logger}
}

type createMatchRequest struct {
	ProjectID    string `json:"projectId"`
	MaintainerID string `json:"maintainerId"`
	Message      string `json:"message"`
}

// HandleList returns all matches, newest first.
//
// GET /api/matches
func (h *MatchHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matches.List(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"matches": matches})
}

// HandleCreate records a project/maintainer pairing. The status is always
// pending; nothing in the request can set it.
//
// POST /api/matches
func (h *MatchHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createMatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	match := &model.Match{
		ProjectID:    req.ProjectID,
		MaintainerID: req.MaintainerID,
		Message:      req.Message,
	}
	if err := h.matches.Create(r.Context(), match); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"match": match})
}
