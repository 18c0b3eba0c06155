package repository

import (
	"context"
	"errors"

	"github.com/stonebridgedev/clearview/internal/domain"
)

// ErrNotFound is wrapped by repositories when a record does not exist.
var ErrNotFound = errors.New("not found")

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type MemberRepo interface {
	Add(ctx context.Context, m *domain.Member) error
	Get(ctx context.Context, projectID, email string) (*domain.Member, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Member, error)
	Remove(ctx context.Context, projectID, email string) error
}
