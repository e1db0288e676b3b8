package about

import (
	"context"

	"github.com/google/uuid"

	"kuai-backend/internal/shared/query"
)

type Service interface {
	List(ctx context.Context, p query.ListParams) (query.Page[*About], error)
	Current(ctx context.Context) (*About, error)
	GetByID(ctx context.Context, id uuid.UUID) (*About, error)
	Create(ctx context.Context, req *Request) (*About, error)
	Update(ctx context.Context, id uuid.UUID, req *Request) (*About, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
