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

// UserDB implements repository.UserRepository.
type UserDB struct {
	db *DB
}

// Users returns the user store backed by this connection.
func (db *DB) Users() *UserDB {
	return &UserDB{db: db}
}

// compile-time check that *UserDB implements repository.UserRepository
var _ repository.UserRepository = (*UserDB)(nil)

const userColumns = `id, github_id, github_username, email, created_at, updated_at`

// Create inserts a new user and reloads the canonical stored row into user,
// so the caller returns exactly what the database holds.
func (u *UserDB) Create(ctx context.Context, user *model.User) error {
	user.ID = uuid.NewString()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := u.db.conn.ExecContext(ctx,
		`INSERT INTO users (id, github_id, github_username, email, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.ID,
		user.GitHubID,
		user.GitHubUsername,
		user.Email,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting user (githubID=%s): %w", user.GitHubID, err)
	}

	stored, err := u.GetByID(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("sqlite: reloading created user: %w", err)
	}
	*user = *stored
	return nil
}

// GetByID retrieves a user by internal ID.
func (u *UserDB) GetByID(ctx context.Context, id string) (*model.User, error) {
	row := u.db.conn.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row, id)
}

// GetByGitHubID retrieves a user by their GitHub ID. Used by the OAuth
// callback to decide between first login (create) and returning login.
func (u *UserDB) GetByGitHubID(ctx context.Context, githubID string) (*model.User, error) {
	row := u.db.conn.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE github_id = ?`, githubID)
	return scanUser(row, githubID)
}

// UpdateEmail backfills the email of an existing user. The only mutation
// users support — everything else is fixed at first login.
func (u *UserDB) UpdateEmail(ctx context.Context, id, email string) error {
	result, err := u.db.conn.ExecContext(ctx,
		`UPDATE users SET email = ?, updated_at = ? WHERE id = ?`,
		email, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: updating user email: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NotFound("User")
	}
	return nil
}

// List returns all users, newest first.
func (u *UserDB) List(ctx context.Context) ([]model.User, error) {
	rows, err := u.db.conn.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var usr model.User
		if err := rows.Scan(
			&usr.ID, &usr.GitHubID, &usr.GitHubUsername, &usr.Email,
			&usr.CreatedAt, &usr.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("sqlite: scanning user row: %w", err)
		}
		users = append(users, usr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating users: %w", err)
	}
	return users, nil
}

func scanUser(row *sql.Row, key string) (*model.User, error) {
	var usr model.User
	err := row.Scan(
		&usr.ID, &usr.GitHubID, &usr.GitHubUsername, &usr.Email,
		&usr.CreatedAt, &usr.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("User")
		}
		return nil, fmt.Errorf("sqlite: getting user %s: %w", key, err)
	}
	return &usr, nil
}
