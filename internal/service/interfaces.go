package service

import (
	"context"

	"github.com/stonebridgedev/clearview/internal/domain"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
	Select(ctx context.Context, id string) error
	Selected(ctx context.Context) string
}

type DocumentService interface {
	Append(ctx context.Context, projectID, dayKey string, doc *domain.Document) (*domain.Document, error)
	ListForDay(ctx context.Context, projectID, dayKey string) ([]*domain.Document, error)
	ListForRange(ctx context.Context, projectID, startKey string, dayCount int) (map[string][]*domain.Document, error)
}

type TaskService interface {
	Insert(ctx context.Context, projectID string, t *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, projectID, id string, patch domain.TaskPatch) (*domain.Task, error)
	Remove(ctx context.Context, projectID, id string) error
	ListForProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	Dangling(ctx context.Context, projectID string) (map[string][]string, error)
}

type MemberService interface {
	Invite(ctx context.Context, projectID, email string, role domain.MemberRole) (*domain.Member, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Member, error)
	Remove(ctx context.Context, projectID, email string) error
}
