// Package repository defines the storage interfaces the rest of the
// application depends on. The concrete SQLite implementation lives in the
// sqlite subpackage; services and middleware only ever see these interfaces,
// which is what makes them testable with in-memory mocks.
package repository

import (
	"context"
	"time"

	"github.com/sakif/maintainer-match/internal/model"
)

// ListOptions carries the sort and pagination part of a list request.
// Values arrive as the client sent them; the query builder is responsible for
// clamping the sort column/direction to safe values. Limit and Page are
// assumed already normalized (>0) by the service layer.
type ListOptions struct {
	SortBy string // requested sort column; falls back to created_at if not allow-listed
	Order  string // "ASC"/"DESC" (any case); anything else becomes DESC
	Page   int
	Limit  int
}

// Offset converts page/limit to a row offset.
func (o ListOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}

// ProjectFilter holds the recognized project list filters. Nil/empty fields
// mean "no constraint"; set fields combine conjunctively.
type ProjectFilter struct {
	Language string // substring match against the serialized languages list
	Status   string // exact match
	IsPaid   *bool  // three-state: nil = unfiltered
}

// MaintainerFilter holds the recognized maintainer list filters.
type MaintainerFilter struct {
	Skill            string
	Language         string
	Availability     string
	InterestedInPaid *bool
}

// UserRepository accesses the users table.
//
// Users are immutable after creation except for UpdateEmail: a user created
// while their GitHub email was hidden gets the address backfilled on a later
// login.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByGitHubID(ctx context.Context, githubID string) (*model.User, error)
	UpdateEmail(ctx context.Context, id, email string) error
	List(ctx context.Context) ([]model.User, error)
}

// SessionRepository accesses the sessions table.
//
// GetValid filters on existence AND expiry in a single predicate, so an
// unknown token and an expired token are indistinguishable to callers — both
// come back as apperror.SessionExpired.
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	GetValid(ctx context.Context, token string, now time.Time) (*model.Session, error)
	Delete(ctx context.Context, token string) error
}

// ProjectRepository accesses the projects table. List returns one page of
// rows plus the total row count under the same filter, both read from a
// single snapshot so the count can't drift from the page.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	GetByID(ctx context.Context, id string) (*model.Project, error)
	List(ctx context.Context, filter ProjectFilter, opts ListOptions) ([]model.Project, int, error)
}

// MaintainerRepository accesses the maintainers table.
type MaintainerRepository interface {
	Create(ctx context.Context, maintainer *model.Maintainer) error
	GetByID(ctx context.Context, id string) (*model.Maintainer, error)
	List(ctx context.Context, filter MaintainerFilter, opts ListOptions) ([]model.Maintainer, int, error)
}

// MatchRepository accesses the matches table.
type MatchRepository interface {
	Create(ctx context.Context, match *model.Match) error
	GetByID(ctx context.Context, id string) (*model.Match, error)
	List(ctx context.Context) ([]model.Match, error)
}
