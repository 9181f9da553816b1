package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sakif/maintainer-match/internal/apperror"
	"github.com/sakif/maintainer-match/internal/model"
)

func TestMatchCreate(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "match-user")
	project := createTestProject(t, db, user, "proj", []string{"Go"}, false, "open")
	maintainer := createTestMaintainer(t, db, user, "helper", []string{"Go"}, []string{"Go"}, "volunteer", false)

	match := &model.Match{
		ProjectID:    project.ID,
		MaintainerID: maintainer.ID,
		Status:       model.MatchStatusPending,
		Message:      "I would like to help!",
	}
	if err := db.Matches().Create(context.Background(), match); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if match.ID == "" {
		t.Error("Create() did not set match.ID")
	}
	if match.Status != model.MatchStatusPending {
		t.Errorf("Status = %q, want pending", match.Status)
	}
	if match.Message != "I would like to help!" {
		t.Errorf("Message = %q, want it echoed verbatim", match.Message)
	}
}

func TestMatchCreate_UnknownProjectRejected(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "match-user-2")
	maintainer := createTestMaintainer(t, db, user, "helper2", []string{"Go"}, []string{"Go"}, "volunteer", false)

	match := &model.Match{
		ProjectID:    "no-such-project",
		MaintainerID: maintainer.ID,
		Status:       model.MatchStatusPending,
	}
	if err := db.Matches().Create(context.Background(), match); err == nil {
		t.Error("Create() should fail the project foreign key")
	}
}

func TestMatchGetByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Matches().GetByID(context.Background(), "nope")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestMatchList_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "match-user-3")
	project := createTestProject(t, db, user, "proj3", []string{"Go"}, false, "open")
	maintainer := createTestMaintainer(t, db, user, "helper3", []string{"Go"}, []string{"Go"}, "volunteer", false)

	first := &model.Match{ProjectID: project.ID, MaintainerID: maintainer.ID, Status: "pending", Message: "older"}
	if err := db.Matches().Create(context.Background(), first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	second := &model.Match{ProjectID: project.ID, MaintainerID: maintainer.ID, Status: "pending", Message: "newer"}
	if err := db.Matches().Create(context.Background(), second); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	matches, err := db.Matches().List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("List() returned %d matches, want 2", len(matches))
	}
	if matches[0].Message != "newer" || matches[1].Message != "older" {
		t.Errorf("order = [%s %s], want [newer older]", matches[0].Message, matches[1].Message)
	}
}
