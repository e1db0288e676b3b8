package team

import (
	"context"
	"time"

	"github.com/google/uuid"

	"kuai-backend/internal/shared/query"
)

type Repository interface {
	ListRoles(ctx context.Context, p query.ListParams) ([]*Role, int, error)
	ListActiveRoles(ctx context.Context) ([]*Role, error)
	InsertRole(ctx context.Context, r *Role) error

	// ListMembers chỉ trả member active; now dùng cho filter roster current/archived
	ListMembers(ctx context.Context, p query.ListParams, f MemberFilter, now time.Time) ([]*Member, int, error)
	ListExecutive(ctx context.Context) ([]*Member, error)
	ListActiveMembers(ctx context.Context) ([]*Member, error)
	GetMemberByID(ctx context.Context, id uuid.UUID, activeOnly bool) (*Member, error)
	InsertMember(ctx context.Context, m *Member) error
	UpdateMember(ctx context.Context, m *Member) error
	DeleteMember(ctx context.Context, id uuid.UUID) error
}
