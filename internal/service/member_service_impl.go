package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/stonebridgedev/clearview/internal/domain"
	"github.com/stonebridgedev/clearview/internal/repository"
)

type memberService struct {
	projects repository.ProjectRepo
	members  repository.MemberRepo
}

func NewMemberService(projects repository.ProjectRepo, members repository.MemberRepo) MemberService {
	return &memberService{projects: projects, members: members}
}

func (s *memberService) Invite(ctx context.Context, projectID, email string, role domain.MemberRole) (*domain.Member, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	if err := domain.ValidateEmail(email); err != nil {
		return nil, err
	}
	if role == "" {
		role = domain.RoleMember
	}
	if !domain.ValidMemberRoles[string(role)] {
		return nil, fmt.Errorf("invalid member role %q", role)
	}

	if _, err := s.members.Get(ctx, projectID, email); err == nil {
		return nil, fmt.Errorf("%s is already invited", email)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	m := &domain.Member{
		ProjectID: projectID,
		Email:     email,
		Role:      role,
		InvitedAt: time.Now().UTC(),
	}
	if err := s.members.Add(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *memberService) ListByProject(ctx context.Context, projectID string) ([]*domain.Member, error) {
	return s.members.ListByProject(ctx, projectID)
}

func (s *memberService) Remove(ctx context.Context, projectID, email string) error {
	return s.members.Remove(ctx, projectID, email)
}
