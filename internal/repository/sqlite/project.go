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

// ProjectDB implements repository.ProjectRepository.
type ProjectDB struct {
	db *DB
}

// Projects returns the project store backed by this connection.
func (db *DB) Projects() *ProjectDB {
	return &ProjectDB{db: db}
}

// compile-time check that *ProjectDB implements repository.ProjectRepository
var _ repository.ProjectRepository = (*ProjectDB)(nil)

const projectColumns = `id, name, description, repository_url, languages,
	maintainer_requirements, is_paid, compensation_amount, compensation_currency,
	compensation_description, owner_id, status, created_at, updated_at`

// Create inserts a new project and reloads the canonical stored row.
// The languages list goes through StringList's Valuer, so it lands in the
// column as JSON text.
func (p *ProjectDB) Create(ctx context.Context, project *model.Project) error {
	project.ID = uuid.NewString()
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err := p.db.conn.ExecContext(ctx,
		`INSERT INTO projects (
			id, name, description, repository_url, languages,
			maintainer_requirements, is_paid, compensation_amount, compensation_currency,
			compensation_description, owner_id, status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		project.ID,
		project.Name,
		project.Description,
		project.RepositoryURL,
		project.Languages,
		project.MaintainerRequirements,
		boolFlag(project.IsPaid),
		project.CompensationAmount,
		project.CompensationCurrency,
		project.CompensationDescription,
		project.OwnerID,
		project.Status,
		project.CreatedAt,
		project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: inserting project: %w", err)
	}

	stored, err := p.GetByID(ctx, project.ID)
	if err != nil {
		return fmt.Errorf("sqlite: reloading created project: %w", err)
	}
	*project = *stored
	return nil
}

// GetByID retrieves a project by ID.
func (p *ProjectDB) GetByID(ctx context.Context, id string) (*model.Project, error) {
	row := p.db.conn.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)

	proj, err := scanProject(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("Project")
		}
		return nil, fmt.Errorf("sqlite: getting project %s: %w", id, err)
	}
	return proj, nil
}

// List returns one page of projects under the given filter, plus the total
// row count under the same filter. Both statements are built from one
// listQuery (identical predicates) and executed inside a single read
// transaction, so the count is taken from the same snapshot as the page.
func (p *ProjectDB) List(ctx context.Context, filter repository.ProjectFilter, opts repository.ListOptions) ([]model.Project, int, error) {
	q := newListQuery("projects", projectColumns)
	if filter.Language != "" {
		q.filterList("languages", filter.Language)
	}
	if filter.Status != "" {
		q.filter("status = ?", filter.Status)
	}
	if filter.IsPaid != nil {
		q.filterBool("is_paid", *filter.IsPaid)
	}

	tx, err := p.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("sqlite: beginning list transaction: %w", err)
	}
	defer tx.Rollback()

	countSQL, countArgs := q.countSQL()
	var total int
	if err := tx.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("sqlite: counting projects: %w", err)
	}

	pageSQL, pageArgs := q.pageSQL(opts)
	rows, err := tx.QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("sqlite: listing projects: %w", err)
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		proj, err := scanProject(rows.Scan)
		if err != nil {
			return nil, 0, fmt.Errorf("sqlite: scanning project row: %w", err)
		}
		projects = append(projects, *proj)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("sqlite: iterating projects: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("sqlite: committing list transaction: %w", err)
	}
	return projects, total, nil
}

// scanProject reads one projects row via any Scan-shaped function, so the
// same column mapping serves both QueryRow and Rows iteration.
func scanProject(scan func(dest ...any) error) (*model.Project, error) {
	var proj model.Project
	var isPaid int
	err := scan(
		&proj.ID,
		&proj.Name,
		&proj.Description,
		&proj.RepositoryURL,
		&proj.Languages,
		&proj.MaintainerRequirements,
		&isPaid,
		&proj.CompensationAmount,
		&proj.CompensationCurrency,
		&proj.CompensationDescription,
		&proj.OwnerID,
		&proj.Status,
		&proj.CreatedAt,
		&proj.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	proj.IsPaid = isPaid != 0
	return &proj, nil
}

// boolFlag maps a bool onto the 0/1 INTEGER representation used by the
// is_paid and interested_in_paid columns.
func boolFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}
