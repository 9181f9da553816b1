package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/maintainer-match/internal/apperror"
	"github.com/sakif/maintainer-match/internal/model"
	"github.com/sakif/maintainer-match/internal/repository"
)

func TestMaintainerCreate_SkillsRoundTrip(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "m-user-1")

	created := createTestMaintainer(t, db, user, "ts-expert",
		[]string{"TypeScript", "React"}, []string{"TypeScript", "JavaScript"},
		model.AvailabilityFullTime, true)

	found, err := db.Maintainers().GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if len(found.Skills) != 2 || found.Skills[0] != "TypeScript" || found.Skills[1] != "React" {
		t.Errorf("Skills = %v, want [TypeScript React]", found.Skills)
	}
	if !found.InterestedInPaid {
		t.Error("InterestedInPaid = false, want true")
	}
	// Experience was never set; it must read back as an empty list, not nil
	// noise or an error.
	if found.Experience == nil || len(found.Experience) != 0 {
		t.Errorf("Experience = %v, want empty list", found.Experience)
	}
}

func TestMaintainerGetByID_NotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Maintainers().GetByID(context.Background(), "nope")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestMaintainerList_SkillFilter(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "m-user-2")
	createTestMaintainer(t, db, user, "ts-dev", []string{"TypeScript"}, []string{"TypeScript"}, "full-time", true)
	createTestMaintainer(t, db, user, "py-dev", []string{"Python", "Django"}, []string{"Python"}, "volunteer", false)

	maintainers, total, err := db.Maintainers().List(context.Background(),
		repository.MaintainerFilter{Skill: "Django"}, defaultListOptions())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 1 || maintainers[0].GitHubUsername != "py-dev" {
		t.Errorf("List() = %v (total %d), want just py-dev", maintainers, total)
	}
}

func TestMaintainerList_ConjunctiveFilters(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "m-user-3")
	createTestMaintainer(t, db, user, "ft-paid", []string{"Go"}, []string{"Go"}, "full-time", true)
	createTestMaintainer(t, db, user, "ft-free", []string{"Go"}, []string{"Go"}, "full-time", false)
	createTestMaintainer(t, db, user, "pt-paid", []string{"Go"}, []string{"Go"}, "part-time", true)

	// availability=full-time AND interestedInPaid=true must match only rows
	// satisfying both.
	paid := true
	maintainers, total, err := db.Maintainers().List(context.Background(),
		repository.MaintainerFilter{Availability: "full-time", InterestedInPaid: &paid},
		defaultListOptions())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 1 || len(maintainers) != 1 || maintainers[0].GitHubUsername != "ft-paid" {
		t.Errorf("List() = %v (total %d), want just ft-paid", maintainers, total)
	}
}

func TestMaintainerList_LanguageAndSkillTogether(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "m-user-4")
	createTestMaintainer(t, db, user, "both", []string{"React"}, []string{"TypeScript"}, "volunteer", false)
	createTestMaintainer(t, db, user, "skill-only", []string{"React"}, []string{"Python"}, "volunteer", false)

	maintainers, total, err := db.Maintainers().List(context.Background(),
		repository.MaintainerFilter{Skill: "React", Language: "TypeScript"},
		defaultListOptions())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 1 || maintainers[0].GitHubUsername != "both" {
		t.Errorf("List() = %v (total %d), want just both", maintainers, total)
	}
}

func TestMaintainerList_CountMatchesFilter(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "m-user-5")
	for _, name := range []string{"a", "b", "c"} {
		createTestMaintainer(t, db, user, name, []string{"Go"}, []string{"Go"}, "volunteer", false)
	}
	createTestMaintainer(t, db, user, "d", []string{"Go"}, []string{"Go"}, "full-time", false)

	opts := repository.ListOptions{Page: 1, Limit: 2}
	maintainers, total, err := db.Maintainers().List(context.Background(),
		repository.MaintainerFilter{Availability: "volunteer"}, opts)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	// The count must reflect the filter, not the page size.
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(maintainers) != 2 {
		t.Errorf("page size = %d, want 2", len(maintainers))
	}
}
