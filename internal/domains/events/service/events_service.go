package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"kuai-backend/internal/domains/events"
	"kuai-backend/internal/infrastructure/search"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/types"
	"kuai-backend/internal/shared/utils"
	"kuai-backend/pkg/clock"
)

type eventsService struct {
	repo    events.Repository
	clock   clock.Clock
	indexer search.Indexer
}

func NewEventsService(repo events.Repository, clk clock.Clock, indexer search.Indexer) events.Service {
	return &eventsService{repo: repo, clock: clk, indexer: indexer}
}

func (s *eventsService) today() types.Date {
	return types.DateOf(s.clock.Now())
}

// =====================================================
// CATEGORIES
// =====================================================

func (s *eventsService) ListCategories(ctx context.Context, p query.ListParams) (query.Page[*events.Category], error) {
	items, total, err := s.repo.ListCategories(ctx, p)
	if err != nil {
		return query.Page[*events.Category]{}, err
	}
	return query.NewPage(items, total, p), nil
}

func (s *eventsService) GetCategory(ctx context.Context, slug string) (*events.Category, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, apperror.NewNotFound("Event category not found.")
	}
	return s.repo.GetCategoryBySlug(ctx, slug)
}

func (s *eventsService) CreateCategory(ctx context.Context, req *events.CategoryRequest) (*events.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	c := &events.Category{}
	req.Apply(c)
	if err := utils.AssignIfAbsent(c); err != nil {
		return nil, err
	}
	if err := s.repo.InsertCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// =====================================================
// EVENTS
// =====================================================

func (s *eventsService) ListEvents(ctx context.Context, p query.ListParams, f events.EventFilter, scope events.Scope) (query.Page[*events.Event], error) {
	today := s.today()
	// filter theo status phải thấy status đã promote, nên reconcile trước khi query
	if f.Status != nil {
		if _, err := s.repo.PromotePast(ctx, today); err != nil {
			return query.Page[*events.Event]{}, err
		}
	}
	items, total, err := s.repo.ListEvents(ctx, p, f, scope, today)
	if err != nil {
		return query.Page[*events.Event]{}, err
	}
	s.promote(ctx, today, items...)

	page := query.NewPage(items, total, p)
	if scope == events.ScopeFeatured {
		page.Page, page.PageSize = 1, events.FeaturedLimit
	}
	return page, nil
}

func (s *eventsService) GetEvent(ctx context.Context, slug string) (*events.Event, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, apperror.NewNotFound("Event not found.")
	}
	e, err := s.repo.GetEventBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	s.promote(ctx, s.today(), e)
	return e, nil
}

// promote áp transition trên record vừa đọc rồi ghi lại.
// Ghi lỗi chỉ warn: response vẫn đúng, lần đọc sau sẽ thử lại.
func (s *eventsService) promote(ctx context.Context, today types.Date, items ...*events.Event) {
	var changed []uuid.UUID
	for _, e := range items {
		if e.Promote(today) {
			changed = append(changed, e.ID)
		}
	}
	if len(changed) == 0 {
		return
	}
	if err := s.repo.MarkCompleted(ctx, changed); err != nil {
		log.Warn().Err(err).Int("count", len(changed)).Msg("[EVENTS] Failed to persist status promotion")
	}
}

func (s *eventsService) CreateEvent(ctx context.Context, req *events.EventRequest) (*events.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	e := &events.Event{}
	req.Apply(e, s.today())
	if err := utils.AssignIfAbsent(e); err != nil {
		return nil, err
	}
	if err := s.repo.InsertEvent(ctx, e); err != nil {
		return nil, err
	}

	search.Sync(s.indexer, e.Document(), e.IsPublished)
	return e, nil
}

func (s *eventsService) UpdateEvent(ctx context.Context, id uuid.UUID, req *events.EventRequest) (*events.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	e, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(e, s.today())
	if err := s.repo.UpdateEvent(ctx, e); err != nil {
		return nil, err
	}

	search.Sync(s.indexer, e.Document(), e.IsPublished)
	return e, nil
}

func (s *eventsService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		return err
	}
	search.Forget(s.indexer, search.KindEvent, id.String())
	return nil
}

func (s *eventsService) ReconcileStatuses(ctx context.Context) (int64, error) {
	n, err := s.repo.PromotePast(ctx, s.today())
	if err != nil {
		return 0, err
	}
	log.Info().Int64("updated", n).Msg("[EVENTS] Reconciled past event statuses")
	return n, nil
}

func (s *eventsService) SearchDocuments(ctx context.Context) ([]search.Document, error) {
	items, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	docs := make([]search.Document, len(items))
	for i, e := range items {
		docs[i] = e.Document()
	}
	return docs, nil
}
