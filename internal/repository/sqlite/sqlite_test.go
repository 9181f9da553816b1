package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/sakif/maintainer-match/internal/model"
)

// newTestDB creates an in-memory database with the full schema applied.
// Each test gets its own database; t.Cleanup closes it.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// createTestUser inserts a user to satisfy foreign keys on projects,
// maintainers, and sessions.
func createTestUser(t *testing.T, db *DB, githubID string) *model.User {
	t.Helper()
	user := &model.User{
		GitHubID:       githubID,
		GitHubUsername: "user-" + githubID,
		Email:          githubID + "@example.com",
	}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func createTestProject(t *testing.T, db *DB, owner *model.User, name string, languages []string, isPaid bool, status string) *model.Project {
	t.Helper()
	project := &model.Project{
		Name:          name,
		Description:   "a test project",
		RepositoryURL: "https://github.com/test/" + name,
		Languages:     languages,
		IsPaid:        isPaid,
		OwnerID:       owner.ID,
		Status:        status,
	}
	if err := db.Projects().Create(context.Background(), project); err != nil {
		t.Fatalf("failed to create test project: %v", err)
	}
	// created_at has second-level comparisons in ordering tests; keep inserts
	// from landing on the exact same instant.
	time.Sleep(2 * time.Millisecond)
	return project
}

func createTestMaintainer(t *testing.T, db *DB, user *model.User, username string, skills, languages []string, availability string, interestedInPaid bool) *model.Maintainer {
	t.Helper()
	maintainer := &model.Maintainer{
		GitHubUsername:   username,
		Name:             "Maintainer " + username,
		Skills:           skills,
		Languages:        languages,
		Availability:     availability,
		InterestedInPaid: interestedInPaid,
		UserID:           user.ID,
	}
	if err := db.Maintainers().Create(context.Background(), maintainer); err != nil {
		t.Fatalf("failed to create test maintainer: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	return maintainer
}
