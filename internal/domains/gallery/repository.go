package gallery

import (
	"context"

	"github.com/google/uuid"

	"kuai-backend/internal/shared/query"
)

type Repository interface {
	ListCategories(ctx context.Context, p query.ListParams) ([]*Category, int, error)
	ListActiveCategories(ctx context.Context) ([]*Category, error)
	InsertCategory(ctx context.Context, c *Category) error

	ListImages(ctx context.Context, p query.ListParams, f ImageFilter) ([]*Image, int, error)
	ListFeatured(ctx context.Context, limit int) ([]*Image, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID, limit int) ([]*Image, error)
	GetImageByID(ctx context.Context, id uuid.UUID, activeOnly bool) (*Image, error)
	InsertImage(ctx context.Context, img *Image) error
	UpdateImage(ctx context.Context, img *Image) error
	DeleteImage(ctx context.Context, id uuid.UUID) error
}
