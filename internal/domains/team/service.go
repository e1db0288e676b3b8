package team

import (
	"context"

	"github.com/google/uuid"

	"kuai-backend/internal/shared/query"
)

type Service interface {
	ListRoles(ctx context.Context, p query.ListParams) (query.Page[*Role], error)
	CreateRole(ctx context.Context, req *RoleRequest) (*Role, error)

	ListMembers(ctx context.Context, p query.ListParams, f MemberFilter) (query.Page[*Member], error)
	Executive(ctx context.Context) ([]*Member, error)
	// ByRole nhóm member active theo role active, bỏ role không có ai
	ByRole(ctx context.Context) ([]RoleGroup, error)
	GetMember(ctx context.Context, id uuid.UUID) (*Member, error)
	CreateMember(ctx context.Context, req *MemberRequest) (*Member, error)
	UpdateMember(ctx context.Context, id uuid.UUID, req *MemberRequest) (*Member, error)
	DeleteMember(ctx context.Context, id uuid.UUID) error
}
