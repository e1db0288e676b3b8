package about

import (
	"context"

	"github.com/google/uuid"

	"kuai-backend/internal/shared/query"
)

type Repository interface {
	Exists(ctx context.Context) (bool, error)
	Current(ctx context.Context) (*About, error) // nil nếu chưa có
	List(ctx context.Context, p query.ListParams) ([]*About, int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*About, error)
	Insert(ctx context.Context, a *About) error // singleton.ErrDuplicate khi đã có row
	Update(ctx context.Context, a *About) error
}
