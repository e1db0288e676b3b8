package gallery

import (
	"context"

	"github.com/google/uuid"

	"kuai-backend/internal/shared/query"
)

type Service interface {
	ListCategories(ctx context.Context, p query.ListParams) (query.Page[*Category], error)
	CreateCategory(ctx context.Context, req *CategoryRequest) (*Category, error)

	ListImages(ctx context.Context, p query.ListParams, f ImageFilter) (query.Page[*Image], error)
	Featured(ctx context.Context) ([]*Image, error)
	// ByCategory: mỗi category active tối đa ByCategoryLimit ảnh, bỏ category rỗng
	ByCategory(ctx context.Context) ([]CategoryGroup, error)
	GetImage(ctx context.Context, id uuid.UUID) (*Image, error)
	CreateImage(ctx context.Context, req *ImageRequest) (*Image, error)
	UpdateImage(ctx context.Context, id uuid.UUID, req *ImageRequest) (*Image, error)
	DeleteImage(ctx context.Context, id uuid.UUID) error
}
