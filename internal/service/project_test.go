package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sakif/maintainer-match/internal/apperror"
	"github.com/sakif/maintainer-match/internal/model"
	"github.com/sakif/maintainer-match/internal/repository"
)

// mockProjects records what the service handed it and plays back a canned
// page for List.
type mockProjects struct {
	created    *model.Project
	listResult []model.Project
	listTotal  int
	gotOpts    repository.ListOptions
}

func (m *mockProjects) Create(_ context.Context, p *model.Project) error {
	p.ID = "p1"
	m.created = p
	return nil
}

func (m *mockProjects) GetByID(_ context.Context, id string) (*model.Project, error) {
	if m.created != nil && m.created.ID == id {
		return m.created, nil
	}
	return nil, apperror.NotFound("Project")
}

func (m *mockProjects) List(_ context.Context, _ repository.ProjectFilter, opts repository.ListOptions) ([]model.Project, int, error) {
	m.gotOpts = opts
	return m.listResult, m.listTotal, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProjectCreate_ForcesOwnerAndStatus(t *testing.T) {
	repo := &mockProjects{}
	svc := NewProjectService(repo, testLogger())

	project := &model.Project{
		Name:          "chi",
		Description:   "lightweight router",
		RepositoryURL: "https://github.com/go-chi/chi",
		OwnerID:       "spoofed-owner",
		Status:        model.ProjectStatusClosed,
	}
	err := svc.Create(context.Background(), project, "session-user")

	assert.NoError(t, err)
	if assert.NotNil(t, repo.created) {
		assert.Equal(t, "session-user", repo.created.OwnerID, "owner must come from the session")
		assert.Equal(t, model.ProjectStatusOpen, repo.created.Status, "new projects always start open")
	}
}

func TestProjectCreate_Validation(t *testing.T) {
	svc := NewProjectService(&mockProjects{}, testLogger())

	cases := []struct {
		name    string
		project model.Project
		field   string
	}{
		{"missing name", model.Project{Description: "d", RepositoryURL: "r"}, "name"},
		{"blank name", model.Project{Name: "   ", Description: "d", RepositoryURL: "r"}, "name"},
		{"missing description", model.Project{Name: "n", RepositoryURL: "r"}, "description"},
		{"missing repository url", model.Project{Name: "n", Description: "d"}, "repositoryUrl"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Create(context.Background(), &tc.project, "u1")

			assert.ErrorIs(t, err, apperror.ErrValidation)
			var appErr *apperror.AppError
			if assert.ErrorAs(t, err, &appErr) {
				assert.Equal(t, tc.field, appErr.Field)
			}
		})
	}
}

func TestProjectList_PaginationMetadata(t *testing.T) {
	repo := &mockProjects{
		listResult: make([]model.Project, 10),
		listTotal:  25,
	}
	svc := NewProjectService(repo, testLogger())

	_, page, err := svc.List(context.Background(), repository.ProjectFilter{}, ListParams{Page: 2, Limit: 10})

	assert.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, 25, page.Total)
	assert.Equal(t, 3, page.TotalPages, "25 rows at 10 per page is 3 pages")
}

func TestProjectList_Defaults(t *testing.T) {
	repo := &mockProjects{listTotal: 0}
	svc := NewProjectService(repo, testLogger())

	_, page, err := svc.List(context.Background(), repository.ProjectFilter{}, ListParams{})

	assert.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, 0, page.TotalPages)
	assert.Equal(t, 1, repo.gotOpts.Page)
	assert.Equal(t, 10, repo.gotOpts.Limit)
}

func TestProjectList_OutOfRangePageEchoed(t *testing.T) {
	repo := &mockProjects{listResult: []model.Project{}, listTotal: 3}
	svc := NewProjectService(repo, testLogger())

	projects, page, err := svc.List(context.Background(), repository.ProjectFilter{}, ListParams{Page: 99, Limit: 10})

	assert.NoError(t, err)
	assert.Empty(t, projects)
	assert.Equal(t, 99, page.Page, "requested page is echoed even past the end")
	assert.Equal(t, 3, page.Total)
}

func TestProjectGetByID_NotFound(t *testing.T) {
	svc := NewProjectService(&mockProjects{}, testLogger())

	_, err := svc.GetByID(context.Background(), "missing")

	assert.True(t, errors.Is(err, apperror.ErrNotFound))
}
