package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sakif/maintainer-match/internal/auth"
	"github.com/sakif/maintainer-match/internal/model"
	"github.com/sakif/maintainer-match/internal/repository"
	"github.com/sakif/maintainer-match/internal/service"
)

// ProjectHandler serves the project endpoints.
type ProjectHandler struct {
	projects *service.ProjectService
	logger   *slog.Logger
}

func NewProjectHandler(projects *service.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{projects: projects, logger: logger}
}

type createProjectRequest struct {
	Name                   string   `json:"name"`
	Description            string   `json:"description"`
	RepositoryURL          string   `json:"repositoryUrl"`
	Languages              []string `json:"languages"`
	MaintainerRequirements string   `json:"maintainerRequirements"`
	IsPaid                 bool     `json:"isPaid"`
	Compensation           *struct {
		Amount      float64 `json:"amount"`
		Currency    string  `json:"currency"`
		Description string  `json:"description"`
	} `json:"compensation"`
}

// HandleList returns one filtered, sorted page of projects.
//
// GET /api/projects?language=&status=&isPaid=&sortBy=&order=&page=&limit=
func (h *ProjectHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.ProjectFilter{
		Language: q.Get("language"),
		Status:   q.Get("status"),
		IsPaid:   boolParam(q, "isPaid"),
	}

	projects, pagination, err := h.projects.List(r.Context(), filter, listParams(q))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"projects":   projects,
		"pagination": pagination,
	})
}

// HandleCreate registers a new project. Runs behind RequireAuth, so the owner
// is always the session user — an ownerId in the body is ignored.
//
// POST /api/projects
func (h *ProjectHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		// Unreachable behind RequireAuth; guards against a miswired route.
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
		return
	}

	var req createProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	project := &model.Project{
		Name:                   req.Name,
		Description:            req.Description,
		RepositoryURL:          req.RepositoryURL,
		Languages:              req.Languages,
		MaintainerRequirements: req.MaintainerRequirements,
		IsPaid:                 req.IsPaid,
	}
	if req.Compensation != nil {
		project.CompensationAmount = req.Compensation.Amount
		project.CompensationCurrency = req.Compensation.Currency
		project.CompensationDescription = req.Compensation.Description
	}

	if err := h.projects.Create(r.Context(), project, user.ID); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"project": project})
}

// HandleGet returns one project by ID.
//
// GET /api/projects/{id}
func (h *ProjectHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	project, err := h.projects.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"project": project})
}

// listParams parses the shared sort/pagination query parameters. Unparseable
// numbers come through as zero and pick up the service defaults.
func listParams(q url.Values) service.ListParams {
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return service.ListParams{
		SortBy: q.Get("sortBy"),
		Order:  q.Get("order"),
		Page:   page,
		Limit:  limit,
	}
}

// boolParam is the three-state boolean filter: absent means unfiltered, the
// literal "true" means true, any other present value means false.
func boolParam(q url.Values, key string) *bool {
	if !q.Has(key) {
		return nil
	}
	v := q.Get(key) == "true"
	return &v
}
