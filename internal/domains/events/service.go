package events

import (
	"context"

	"github.com/google/uuid"

	"kuai-backend/internal/infrastructure/search"
	"kuai-backend/internal/shared/query"
)

type Service interface {
	ListCategories(ctx context.Context, p query.ListParams) (query.Page[*Category], error)
	GetCategory(ctx context.Context, slug string) (*Category, error)
	CreateCategory(ctx context.Context, req *CategoryRequest) (*Category, error)

	ListEvents(ctx context.Context, p query.ListParams, f EventFilter, scope Scope) (query.Page[*Event], error)
	GetEvent(ctx context.Context, slug string) (*Event, error)
	CreateEvent(ctx context.Context, req *EventRequest) (*Event, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, req *EventRequest) (*Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	// ReconcileStatuses promote mọi event quá hạn, dùng cho kuaictl reconcile-events
	ReconcileStatuses(ctx context.Context) (int64, error)
	SearchDocuments(ctx context.Context) ([]search.Document, error)
}

func (e *Event) Document() search.Document {
	return search.Document{
		Kind:    search.KindEvent,
		ID:      e.ID.String(),
		Slug:    e.Slug,
		Title:   e.Title,
		Summary: e.Location,
		Body:    e.Description,
		Date:    e.Date.String(),
	}
}
