package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/stonebridgedev/clearview/internal/domain"
)

// SQLiteMemberRepo implements MemberRepo using a SQLite database.
type SQLiteMemberRepo struct {
	db *sql.DB
}

// NewSQLiteMemberRepo creates a new SQLiteMemberRepo.
func NewSQLiteMemberRepo(db *sql.DB) *SQLiteMemberRepo {
	return &SQLiteMemberRepo{db: db}
}

func (r *SQLiteMemberRepo) Add(ctx context.Context, m *domain.Member) error {
	query := `INSERT INTO members (project_id, email, role, invited_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ProjectID,
		m.Email,
		string(m.Role),
		m.InvitedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting member: %w", err)
	}
	return nil
}

func (r *SQLiteMemberRepo) Get(ctx context.Context, projectID, email string) (*domain.Member, error) {
	query := `SELECT project_id, email, role, invited_at FROM members
		WHERE project_id = ? AND email = ? COLLATE NOCASE`
	row := r.db.QueryRowContext(ctx, query, projectID, email)

	var m domain.Member
	var roleStr, invitedAtStr string
	if err := row.Scan(&m.ProjectID, &m.Email, &roleStr, &invitedAtStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("member: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning member: %w", err)
	}
	m.Role = domain.MemberRole(roleStr)
	invitedAt, err := time.Parse(time.RFC3339, invitedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing invited_at: %w", err)
	}
	m.InvitedAt = invitedAt
	return &m, nil
}

func (r *SQLiteMemberRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Member, error) {
	query := `SELECT project_id, email, role, invited_at FROM members
		WHERE project_id = ? ORDER BY invited_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	defer rows.Close()

	var members []*domain.Member
	for rows.Next() {
		var m domain.Member
		var roleStr, invitedAtStr string
		if err := rows.Scan(&m.ProjectID, &m.Email, &roleStr, &invitedAtStr); err != nil {
			return nil, fmt.Errorf("scanning member row: %w", err)
		}
		m.Role = domain.MemberRole(roleStr)
		invitedAt, err := time.Parse(time.RFC3339, invitedAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing invited_at: %w", err)
		}
		m.InvitedAt = invitedAt
		members = append(members, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating members: %w", err)
	}
	return members, nil
}

func (r *SQLiteMemberRepo) Remove(ctx context.Context, projectID, email string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM members WHERE project_id = ? AND email = ? COLLATE NOCASE`,
		projectID, email)
	if err != nil {
		return fmt.Errorf("deleting member: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting member: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("member %s: %w", email, ErrNotFound)
	}
	return nil
}
