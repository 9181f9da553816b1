package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sakif/maintainer-match/internal/apperror"
	"github.com/sakif/maintainer-match/internal/model"
	"github.com/sakif/maintainer-match/internal/repository"
)

// MatchDB implements repository.MatchRepository.
type MatchDB struct {
	db *DB
}

// Matches returns the match store backed by this connection.
func (db *DB) Matches() *MatchDB {
	return &MatchDB{db: db}
}

// compile-time check that *MatchDB implements repository.MatchRepository
var _ repository.MatchRepository = (*MatchDB)(nil)

const matchColumns = `id, project_id, maintainer_id, status, message, created_at, updated_at`

// Create inserts a new match and reloads the canonical row. Status is set by
// the caller (always pending at the API surface).
func (m *MatchDB) Create(ctx context.Context, match *model.Match) error {
	match.ID = uuid.NewString()
	now := time.Now().UTC()
	match.CreatedAt = now
	match.UpdatedAt = now

	_, err := m.db.conn.ExecContext(ctx,
		`INSERT INTO matches (id, project_id, maintainer_id, status, message, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		match.ID,
		match.ProjectID,
		match.MaintainerID,
		match.Status,
		match.Message,
		match.CreatedAt,
		match.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting match: %w", err)
	}

	stored, err := m.GetByID(ctx, match.ID)
	if err != nil {
		return fmt.Errorf("sqlite: reloading created match: %w", err)
	}
	*match = *stored
	return nil
}

// GetByID retrieves a match by ID.
func (m *MatchDB) GetByID(ctx context.Context, id string) (*model.Match, error) {
	var mt model.Match
	err := m.db.conn.QueryRowContext(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE id = ?`, id,
	).Scan(
		&mt.ID, &mt.ProjectID, &mt.MaintainerID, &mt.Status, &mt.Message,
		&mt.CreatedAt, &mt.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("Match")
		}
		return nil, fmt.Errorf("sqlite: getting match %s: %w", id, err)
	}
	return &mt, nil
}

// List returns all matches, newest first.
func (m *MatchDB) List(ctx context.Context) ([]model.Match, error) {
	rows, err := m.db.conn.QueryContext(ctx,
		`SELECT `+matchColumns+` FROM matches ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing matches: %w", err)
	}
	defer rows.Close()

	matches := []model.Match{}
	for rows.Next() {
		var mt model.Match
		if err := rows.Scan(
			&mt.ID, &mt.ProjectID, &mt.MaintainerID, &mt.Status, &mt.Message,
			&mt.CreatedAt, &mt.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning match row: %w", err)
		}
		matches = append(matches, mt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating matches: %w", err)
	}
	return matches, nil
}
