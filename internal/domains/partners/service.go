package partners

import (
	"context"

	"github.com/google/uuid"

	"kuai-backend/internal/shared/query"
)

type Service interface {
	ListCategories(ctx context.Context, p query.ListParams) (query.Page[*Category], error)
	CreateCategory(ctx context.Context, req *CategoryRequest) (*Category, error)

	ListPartners(ctx context.Context, p query.ListParams, f PartnerFilter) (query.Page[*Partner], error)
	Featured(ctx context.Context) ([]*Partner, error)
	ByCategory(ctx context.Context) ([]CategoryGroup, error)
	GetPartner(ctx context.Context, id uuid.UUID) (*Partner, error)
	CreatePartner(ctx context.Context, req *PartnerRequest) (*Partner, error)
	UpdatePartner(ctx context.Context, id uuid.UUID, req *PartnerRequest) (*Partner, error)
	DeletePartner(ctx context.Context, id uuid.UUID) error
}
