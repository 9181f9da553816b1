package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sakif/maintainer-match/internal/apperror"
	"github.com/sakif/maintainer-match/internal/model"
	"github.com/sakif/maintainer-match/internal/repository"
)

// SessionDB implements repository.SessionRepository.
type SessionDB struct {
	db *DB
}

// Sessions returns the session store backed by this connection.
func (db *DB) Sessions() *SessionDB {
	return &SessionDB{db: db}
}

// compile-time check that *SessionDB implements repository.SessionRepository
var _ repository.SessionRepository = (*SessionDB)(nil)

// Create inserts a session row. The token is generated by the caller (auth
// package); this layer just persists it.
func (s *SessionDB) Create(ctx context.Context, session *model.Session) error {
	_, err := s.db.conn.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, github_id, github_username, expires_at)
		 VALUES (?, ?, ?, ?, ?)`,
		session.Token,
		session.UserID,
		session.GitHubID,
		session.GitHubUsername,
		session.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting session for user %s: %w", session.UserID, err)
	}
	return nil
}

// GetValid looks up a session that both exists and has not expired at the
// given instant. Expiry is checked lazily here, in the same predicate as the
// token match, so callers cannot tell an unknown token from an expired one:
// both come back as apperror.SessionExpired. Expired rows stay in the table
// until logout deletes them.
func (s *SessionDB) GetValid(ctx context.Context, token string, now time.Time) (*model.Session, error) {
	var sess model.Session
	err := s.db.conn.QueryRowContext(ctx,
		`SELECT id, user_id, github_id, github_username, expires_at
		 FROM sessions WHERE id = ? AND expires_at > ?`,
		token, now.UnixMilli(),
	).Scan(
		&sess.Token, &sess.UserID, &sess.GitHubID, &sess.GitHubUsername, &sess.ExpiresAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.SessionExpired()
		}
		return nil, fmt.Errorf("sqlite: getting session: %w", err)
	}
	return &sess, nil
}

// Delete removes a session row. Deleting a token that no longer exists is not
// an error — logout is idempotent.
func (s *SessionDB) Delete(ctx context.Context, token string) error {
	if _, err := s.db.conn.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, token); err != nil {
		return fmt.Errorf("sqlite: deleting session: %w", err)
	}
	return nil
}
