package partners

import (
	"context"

	"github.com/google/uuid"

	"kuai-backend/internal/shared/query"
)

type Repository interface {
	ListCategories(ctx context.Context, p query.ListParams) ([]*Category, int, error)
	ListActiveCategories(ctx context.Context) ([]*Category, error)
	InsertCategory(ctx context.Context, c *Category) error

	ListPartners(ctx context.Context, p query.ListParams, f PartnerFilter) ([]*Partner, int, error)
	ListFeatured(ctx context.Context) ([]*Partner, error)
	// ListActivePartners trả toàn bộ partner active theo thứ tự mặc định, dùng để group
	ListActivePartners(ctx context.Context) ([]*Partner, error)
	GetPartnerByID(ctx context.Context, id uuid.UUID, activeOnly bool) (*Partner, error)
	InsertPartner(ctx context.Context, p *Partner) error
	UpdatePartner(ctx context.Context, p *Partner) error
	DeletePartner(ctx context.Context, id uuid.UUID) error
}
