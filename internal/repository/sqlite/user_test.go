package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sakif/maintainer-match/internal/apperror"
	"github.com/sakif/maintainer-match/internal/model"
)

func TestUserCreate(t *testing.T) {
	db := newTestDB(t)

	user := &model.User{
		GitHubID:       "12345",
		GitHubUsername: "testuser",
		Email:          "test@example.com",
	}
	if err := db.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if user.ID == "" {
		t.Error("Create() did not set user.ID")
	}
	if user.CreatedAt.IsZero() {
		t.Error("Create() did not set user.CreatedAt")
	}
}

func TestUserCreate_DuplicateGitHubID(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "99999")

	dup := &model.User{GitHubID: "99999", GitHubUsername: "second"}
	if err := db.Users().Create(context.Background(), dup); err == nil {
		t.Fatal("Create() should fail on duplicate github_id")
	}
}

func TestUserGetByID(t *testing.T) {
	db := newTestDB(t)
	created := createTestUser(t, db, "111")

	found, err := db.Users().GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if found.GitHubID != "111" {
		t.Errorf("GitHubID = %q, want %q", found.GitHubID, "111")
	}
	if found.Email != "111@example.com" {
		t.Errorf("Email = %q, want %q", found.Email, "111@example.com")
	}
}

func TestUserGetByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Users().GetByID(context.Background(), "nonexistent")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestUserGetByGitHubID(t *testing.T) {
	db := newTestDB(t)
	created := createTestUser(t, db, "777")

	found, err := db.Users().GetByGitHubID(context.Background(), "777")
	if err != nil {
		t.Fatalf("GetByGitHubID() error = %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("ID = %q, want %q", found.ID, created.ID)
	}

	if _, err := db.Users().GetByGitHubID(context.Background(), "000"); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByGitHubID() error = %v, want ErrNotFound", err)
	}
}

func TestUserList_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "1")
	time.Sleep(2 * time.Millisecond)
	second := createTestUser(t, db, "2")

	users, err := db.Users().List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("List() returned %d users, want 2", len(users))
	}
	if users[0].ID != second.ID {
		t.Errorf("List()[0].ID = %q, want newest user %q", users[0].ID, second.ID)
	}
}
