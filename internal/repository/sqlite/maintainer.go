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

// MaintainerDB implements repository.MaintainerRepository.
type MaintainerDB struct {
	db *DB
}

// Maintainers returns the maintainer store backed by this connection.
func (db *DB) Maintainers() *MaintainerDB {
	return &MaintainerDB{db: db}
}

// compile-time check that *MaintainerDB implements repository.MaintainerRepository
var _ repository.MaintainerRepository = (*MaintainerDB)(nil)

const maintainerColumns = `id, github_username, name, bio, skills, languages,
	experience, availability, interested_in_paid, portfolio_url, user_id,
	created_at, updated_at`

// Create inserts a new maintainer profile and reloads the canonical row.
func (m *MaintainerDB) Create(ctx context.Context, maintainer *model.Maintainer) error {
	maintainer.ID = uuid.NewString()
	now := time.Now().UTC()
	maintainer.CreatedAt = now
	maintainer.UpdatedAt = now

	_, err := m.db.conn.ExecContext(ctx,
		`INSERT INTO maintainers (
			id, github_username, name, bio, skills, languages,
			experience, availability, interested_in_paid, portfolio_url, user_id,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		maintainer.ID,
		maintainer.GitHubUsername,
		maintainer.Name,
		maintainer.Bio,
		maintainer.Skills,
		maintainer.Languages,
		maintainer.Experience,
		maintainer.Availability,
		boolFlag(maintainer.InterestedInPaid),
		maintainer.PortfolioURL,
		maintainer.UserID,
		maintainer.CreatedAt,
		maintainer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting maintainer: %w", err)
	}

	stored, err := m.GetByID(ctx, maintainer.ID)
	if err != nil {
		return fmt.Errorf("sqlite: reloading created maintainer: %w", err)
	}
	*maintainer = *stored
	return nil
}

// GetByID retrieves a maintainer by ID.
func (m *MaintainerDB) GetByID(ctx context.Context, id string) (*model.Maintainer, error) {
	row := m.db.conn.QueryRowContext(ctx,
		`SELECT `+maintainerColumns+` FROM maintainers WHERE id = ?`, id)

	mnt, err := scanMaintainer(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("Maintainer")
		}
		return nil, fmt.Errorf("sqlite: getting maintainer %s: %w", id, err)
	}
	return mnt, nil
}

// List returns one page of maintainers under the given filter plus the total
// count, from a single read transaction — same shape as ProjectDB.List.
func (m *MaintainerDB) List(ctx context.Context, filter repository.MaintainerFilter, opts repository.ListOptions) ([]model.Maintainer, int, error) {
	q := newListQuery("maintainers", maintainerColumns)
	if filter.Skill != "" {
		q.filterList("skills", filter.Skill)
	}
	if filter.Language != "" {
		q.filterList("languages", filter.Language)
	}
	if filter.Availability != "" {
		q.filter("availability = ?", filter.Availability)
	}
	if filter.InterestedInPaid != nil {
		q.filterBool("interested_in_paid", *filter.InterestedInPaid)
	}

	tx, err := m.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("sqlite: beginning list transaction: %w", err)
	}
	defer tx.Rollback()

	countSQL, countArgs := q.countSQL()
	var total int
	if err := tx.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("sqlite: counting maintainers: %w", err)
	}

	pageSQL, pageArgs := q.pageSQL(opts)
	rows, err := tx.QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("sqlite: listing maintainers: %w", err)
	}
	defer rows.Close()

	maintainers := []model.Maintainer{}
	for rows.Next() {
		mnt, err := scanMaintainer(rows.Scan)
		if err != nil {
			return nil, 0, fmt.Errorf("sqlite: scanning maintainer row: %w", err)
		}
		maintainers = append(maintainers, *mnt)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("sqlite: iterating maintainers: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("sqlite: committing list transaction: %w", err)
	}
	return maintainers, total, nil
}

func scanMaintainer(scan func(dest ...any) error) (*model.Maintainer, error) {
	var mnt model.Maintainer
	var interested int
	err := scan(
		&mnt.ID,
		&mnt.GitHubUsername,
		&mnt.Name,
		&mnt.Bio,
		&mnt.Skills,
		&mnt.Languages,
		&mnt.Experience,
		&mnt.Availability,
		&interested,
		&mnt.PortfolioURL,
		&mnt.UserID,
		&mnt.CreatedAt,
		&mnt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	mnt.InterestedInPaid = interested != 0
	return &mnt, nil
}
