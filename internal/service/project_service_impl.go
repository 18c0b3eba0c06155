package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/stonebridgedev/clearview/internal/domain"
	"github.com/stonebridgedev/clearview/internal/repository"
	"github.com/stonebridgedev/clearview/internal/store"
)

type projectService struct {
	projects repository.ProjectRepo
	members  repository.MemberRepo
	kv       store.KV
}

func NewProjectService(projects repository.ProjectRepo, members repository.MemberRepo, kv store.KV) ProjectService {
	return &projectService{projects: projects, members: members, kv: kv}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Status == "" {
		p.Status = domain.ProjectPlanned
	}
	if p.Owner == "" {
		p.Owner = domain.DefaultUser.Name
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return err
	}

	// The creator is the project's first member.
	member := &domain.Member{
		ProjectID: p.ID,
		Email:     domain.DefaultUser.Email,
		Role:      domain.DefaultUser.Role,
		InvitedAt: now,
	}
	if err := s.members.Add(ctx, member); err != nil {
		return fmt.Errorf("adding creator membership: %w", err)
	}

	if err := store.SaveSelected(s.kv, p.ID); err != nil {
		fmt.Fprintf(os.Stderr, "clearview: saving selection: %v\n", err)
	}
	return nil
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) Update(ctx context.Context, p *domain.Project) error {
	p.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, p)
}

// Delete removes the project row and its document/task snapshots so
// that no document or task outlives its owning project.
func (s *projectService) Delete(ctx context.Context, id string) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	if err := store.DeleteProject(s.kv, id); err != nil {
		fmt.Fprintf(os.Stderr, "clearview: deleting snapshots for %s: %v\n", id, err)
	}
	if store.LoadSelected(s.kv) == id {
		if err := store.ClearSelected(s.kv); err != nil {
			fmt.Fprintf(os.Stderr, "clearview: clearing selection: %v\n", err)
		}
	}
	return nil
}

func (s *projectService) Select(ctx context.Context, id string) error {
	if _, err := s.projects.GetByID(ctx, id); err != nil {
		return err
	}
	return store.SaveSelected(s.kv, id)
}

func (s *projectService) Selected(ctx context.Context) string {
	return store.LoadSelected(s.kv)
}
