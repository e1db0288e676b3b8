package service

import (
	"context"

	"github.com/google/uuid"

	"kuai-backend/internal/domains/team"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/query"
	"kuai-backend/pkg/clock"
)

type teamService struct {
	repo  team.Repository
	clock clock.Clock
}

func NewTeamService(repo team.Repository, clk clock.Clock) team.Service {
	return &teamService{repo: repo, clock: clk}
}

// =====================================================
// ROLES
// =====================================================

func (s *teamService) ListRoles(ctx context.Context, p query.ListParams) (query.Page[*team.Role], error) {
	items, total, err := s.repo.ListRoles(ctx, p)
	if err != nil {
		return query.Page[*team.Role]{}, err
	}
	return query.NewPage(items, total, p), nil
}

func (s *teamService) CreateRole(ctx context.Context, req *team.RoleRequest) (*team.Role, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}
	role := &team.Role{}
	req.Apply(role)
	if err := s.repo.InsertRole(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

// =====================================================
// MEMBERS
// =====================================================

func (s *teamService) ListMembers(ctx context.Context, p query.ListParams, f team.MemberFilter) (query.Page[*team.Member], error) {
	items, total, err := s.repo.ListMembers(ctx, p, f, s.clock.Now())
	if err != nil {
		return query.Page[*team.Member]{}, err
	}
	return query.NewPage(items, total, p), nil
}

func (s *teamService) Executive(ctx context.Context) ([]*team.Member, error) {
	return s.repo.ListExecutive(ctx)
}

func (s *teamService) ByRole(ctx context.Context) ([]team.RoleGroup, error) {
	roles, err := s.repo.ListActiveRoles(ctx)
	if err != nil {
		return nil, err
	}
	members, err := s.repo.ListActiveMembers(ctx)
	if err != nil {
		return nil, err
	}

	byRole := make(map[uuid.UUID][]*team.Member)
	for _, m := range members {
		if m.RoleID != nil {
			byRole[*m.RoleID] = append(byRole[*m.RoleID], m)
		}
	}

	groups := make([]team.RoleGroup, 0, len(roles))
	for _, role := range roles {
		if ms := byRole[role.ID]; len(ms) > 0 {
			groups = append(groups, team.RoleGroup{Role: role, Members: ms})
		}
	}
	return groups, nil
}

func (s *teamService) GetMember(ctx context.Context, id uuid.UUID) (*team.Member, error) {
	return s.repo.GetMemberByID(ctx, id, true)
}

func (s *teamService) CreateMember(ctx context.Context, req *team.MemberRequest) (*team.Member, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}
	m := &team.Member{}
	req.Apply(m, s.clock.Now())
	if err := s.repo.InsertMember(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *teamService) UpdateMember(ctx context.Context, id uuid.UUID, req *team.MemberRequest) (*team.Member, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}
	m, err := s.repo.GetMemberByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	req.Apply(m, s.clock.Now())
	if err := s.repo.UpdateMember(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *teamService) DeleteMember(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteMember(ctx, id)
}
