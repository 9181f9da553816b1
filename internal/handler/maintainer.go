package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/maintainer-match/internal/model"
	"github.com/sakif/maintainer-match/internal/repository"
	"github.com/sakif/maintainer-match/internal/service"
)

// MaintainerHandler serves the maintainer-profile endpoints.
type MaintainerHandler struct {
	maintainers *service.MaintainerService
	logger      *slog.Logger
}

func NewMaintainerHandler(maintainers *service.MaintainerService, logger *slog.Logger) *MaintainerHandler {
	return &MaintainerHandler{maintainers: maintainers, logger: logger}
}

type createMaintainerRequest struct {
	GitHubUsername   string   `json:"githubUsername"`
	Name             string   `json:"name"`
	Bio              string   `json:"bio"`
	Skills           []string `json:"skills"`
	Languages        []string `json:"languages"`
	Experience       []string `json:"experience"`
	Availability     string   `json:"availability"`
	InterestedInPaid bool     `json:"interestedInPaid"`
	PortfolioURL     string   `json:"portfolioUrl"`
	UserID           string   `json:"userId"`
}

// HandleList returns one filtered, sorted page of maintainer profiles.
//
// GET /api/maintainers?skill=&language=&availability=&interestedInPaid=&sortBy=&order=&page=&limit=
func (h *MaintainerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.MaintainerFilter{
		Skill:            q.Get("skill"),
		Language:         q.Get("language"),
		Availability:     q.Get("availability"),
		InterestedInPaid: boolParam(q, "interestedInPaid"),
	}

	maintainers, pagination, err := h.maintainers.List(r.Context(), filter, listParams(q))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"maintainers": maintainers,
		"pagination":  pagination,
	})
}

// HandleCreate registers a new maintainer profile. The profile references a
// user via the body's userId; this endpoint predates the session flow and
// does not require auth.
//
// POST /api/maintainers
func (h *MaintainerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createMaintainerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	maintainer := &model.Maintainer{
		GitHubUsername:   req.GitHubUsername,
		Name:             req.Name,
		Bio:              req.Bio,
		Skills:           req.Skills,
		Languages:        req.Languages,
		Experience:       req.Experience,
		Availability:     req.Availability,
		InterestedInPaid: req.InterestedInPaid,
		PortfolioURL:     req.PortfolioURL,
		UserID:           req.UserID,
	}
	if err := h.maintainers.Create(r.Context(), maintainer); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"maintainer": maintainer})
}

// HandleGet returns one maintainer profile by ID.
//
// GET /api/maintainers/{id}
func (h *MaintainerHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	maintainer, err := h.maintainers.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"maintainer": maintainer})
}
