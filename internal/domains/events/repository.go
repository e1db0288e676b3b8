package events

import (
	"context"

	"github.com/google/uuid"

	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/types"
)

type Repository interface {
	ListCategories(ctx context.Context, p query.ListParams) ([]*Category, int, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*Category, error)
	InsertCategory(ctx context.Context, c *Category) error

	// ListEvents chỉ trả event published; scope quyết định filter ngày + ordering
	ListEvents(ctx context.Context, p query.ListParams, f EventFilter, scope Scope, today types.Date) ([]*Event, int, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error)
	InsertEvent(ctx context.Context, e *Event) error
	UpdateEvent(ctx context.Context, e *Event) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	ListPublished(ctx context.Context) ([]*Event, error)

	// MarkCompleted ghi status completed cho các event đã promote khi đọc
	MarkCompleted(ctx context.Context, ids []uuid.UUID) error
	// PromotePast bulk upcoming → completed cho date < today, trả số row đổi
	PromotePast(ctx context.Context, today types.Date) (int64, error)
}
