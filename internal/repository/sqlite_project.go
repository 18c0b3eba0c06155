package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/stonebridgedev/clearview/internal/domain"
)

// projectColumns is the canonical SELECT column list for projects.
const projectColumns = `id, name, address, client, owner, status, budget,
		description, tags, start_date, end_date, created_at, updated_at`

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db *sql.DB
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(db *sql.DB) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (id, name, address, client, owner, status, budget,
		description, tags, start_date, end_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Address,
		p.Client,
		p.Owner,
		string(p.Status),
		p.Budget,
		p.Description,
		tagsToString(p.Tags),
		dateToString(p.StartDate),
		dateToString(p.EndDate),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanProject(row)
}

func (r *SQLiteProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProjectRow(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET name = ?, address = ?, client = ?, owner = ?,
		status = ?, budget = ?, description = ?, tags = ?, start_date = ?,
		end_date = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Address,
		p.Client,
		p.Owner,
		string(p.Status),
		p.Budget,
		p.Description,
		tagsToString(p.Tags),
		dateToString(p.StartDate),
		dateToString(p.EndDate),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("project %s: %w", p.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	return nil
}

// scanProject scans a single project from a *sql.Row.
func (r *SQLiteProjectRepo) scanProject(row *sql.Row) (*domain.Project, error) {
	var p domain.Project
	var statusStr, tagsStr, startStr, endStr, createdAtStr, updatedAtStr string

	err := row.Scan(
		&p.ID, &p.Name, &p.Address, &p.Client, &p.Owner, &statusStr, &p.Budget,
		&p.Description, &tagsStr, &startStr, &endStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("project: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}
	return populateProject(&p, statusStr, tagsStr, startStr, endStr, createdAtStr, updatedAtStr)
}

// scanProjectRow scans one project from *sql.Rows.
func scanProjectRow(rows *sql.Rows) (*domain.Project, error) {
	var p domain.Project
	var statusStr, tagsStr, startStr, endStr, createdAtStr, updatedAtStr string

	err := rows.Scan(
		&p.ID, &p.Name, &p.Address, &p.Client, &p.Owner, &statusStr, &p.Budget,
		&p.Description, &tagsStr, &startStr, &endStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning project row: %w", err)
	}
	return populateProject(&p, statusStr, tagsStr, startStr, endStr, createdAtStr, updatedAtStr)
}

// populateProject fills in parsed fields after scanning raw values.
func populateProject(p *domain.Project, statusStr, tagsStr, startStr, endStr, createdAtStr, updatedAtStr string) (*domain.Project, error) {
	p.Status = domain.ProjectStatus(statusStr)
	p.Tags = tagsFromString(tagsStr)
	p.StartDate = parseDate(startStr)
	p.EndDate = parseDate(endStr)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return p, nil
}
