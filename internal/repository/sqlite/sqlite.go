// Package sqlite implements the repository interfaces on SQLite.
//
// The driver is modernc.org/sqlite (pure Go, no cgo), registered with
// database/sql under the name "sqlite" by its blank import. The production
// deployment points DB_PATH at a file; tests use ":memory:".
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps the shared sql.DB pool and implements every repository interface.
// One DB value is created at startup, injected into services and middleware,
// and closed on shutdown — there is no package-level handle.
type DB struct {
	conn *sql.DB
}

// New opens the database, applies pragmas, and runs migrations.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	// Each pooled connection to ":memory:" would get its own empty database,
	// so the in-memory case must stay on a single connection.
	if dbPath == ":memory:" {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL lets reads proceed while a write is in flight; this server runs
	// concurrent list reads against occasional inserts.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	// Sessions reference users, matches reference projects and maintainers.
	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the schema. CREATE TABLE IF NOT EXISTS keeps this
// idempotent; the schema mirrors the hosted database the frontend was built
// against, including the JSON-serialized list columns.
func (db *DB) migrate() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id              TEXT PRIMARY KEY,
			github_id       TEXT NOT NULL UNIQUE,
			github_username TEXT NOT NULL,
			email           TEXT NOT NULL DEFAULT '',
			created_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at      DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		// The session token is the primary key; expires_at is epoch millis.
		`CREATE TABLE IF NOT EXISTS sessions (
			id              TEXT PRIMARY KEY,
			user_id         TEXT NOT NULL REFERENCES users(id),
			github_id       TEXT NOT NULL DEFAULT '',
			github_username TEXT NOT NULL DEFAULT '',
			expires_at      INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id                       TEXT PRIMARY KEY,
			name                     TEXT NOT NULL,
			description              TEXT NOT NULL,
			repository_url           TEXT NOT NULL,
			languages                TEXT NOT NULL DEFAULT '[]',
			maintainer_requirements  TEXT NOT NULL DEFAULT '',
			is_paid                  INTEGER NOT NULL DEFAULT 0,
			compensation_amount      REAL NOT NULL DEFAULT 0,
			compensation_currency    TEXT NOT NULL DEFAULT '',
			compensation_description TEXT NOT NULL DEFAULT '',
			owner_id                 TEXT NOT NULL REFERENCES users(id),
			status                   TEXT NOT NULL DEFAULT 'open',
			created_at               DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at               DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS maintainers (
			id                 TEXT PRIMARY KEY,
			github_username    TEXT NOT NULL,
			name               TEXT NOT NULL,
			bio                TEXT NOT NULL DEFAULT '',
			skills             TEXT NOT NULL DEFAULT '[]',
			languages          TEXT NOT NULL DEFAULT '[]',
			experience         TEXT NOT NULL DEFAULT '[]',
			availability       TEXT NOT NULL,
			interested_in_paid INTEGER NOT NULL DEFAULT 0,
			portfolio_url      TEXT NOT NULL DEFAULT '',
			user_id            TEXT NOT NULL REFERENCES users(id),
			created_at         DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at         DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS matches (
			id            TEXT PRIMARY KEY,
			project_id    TEXT NOT NULL REFERENCES projects(id),
			maintainer_id TEXT NOT NULL REFERENCES maintainers(id),
			status        TEXT NOT NULL DEFAULT 'pending',
			message       TEXT NOT NULL DEFAULT '',
			created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_projects_created_at ON projects(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_projects_owner_id ON projects(owner_id)`,
		`CREATE INDEX IF NOT EXISTS idx_maintainers_created_at ON maintainers(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_created_at ON matches(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("applying migration: %w", err)
		}
	}
	return nil
}
