package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"kuai-backend/internal/domains/indabax"
	"kuai-backend/internal/infrastructure/search"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/singleton"
	"kuai-backend/internal/shared/utils"
	"kuai-backend/pkg/clock"
)

type indabaxService struct {
	repo    indabax.Repository
	clock   clock.Clock
	indexer search.Indexer
	guard   *singleton.Guard
}

func NewIndabaxService(repo indabax.Repository, clk clock.Clock, indexer search.Indexer) indabax.Service {
	return &indabaxService{
		repo:    repo,
		clock:   clk,
		indexer: indexer,
		guard:   singleton.NewGuard(singleton.IndabaxSettings, repo.SettingsExists),
	}
}

func page[T any](items []T, total int, err error, p query.ListParams) (query.Page[T], error) {
	if err != nil {
		return query.Page[T]{}, err
	}
	return query.NewPage(items, total, p), nil
}

// =====================================================
// SETTINGS
// =====================================================

func (s *indabaxService) ListSettings(ctx context.Context, p query.ListParams) (query.Page[*indabax.Settings], error) {
	items, total, err := s.repo.ListSettings(ctx, p)
	return page(items, total, err, p)
}

func (s *indabaxService) CurrentSettings(ctx context.Context) (*indabax.Settings, error) {
	settings, err := s.repo.CurrentSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, s.guard.NotConfigured("Indabax settings not configured yet.")
	}
	return settings, nil
}

func (s *indabaxService) CreateSettings(ctx context.Context, req *indabax.SettingsRequest) (*indabax.Settings, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	settings := &indabax.Settings{}
	req.Apply(settings)
	if err := s.guard.Create(ctx, func(ctx context.Context) error { return s.repo.InsertSettings(ctx, settings) }); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *indabaxService) UpdateSettings(ctx context.Context, id uuid.UUID, req *indabax.SettingsRequest) (*indabax.Settings, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	settings, err := s.repo.GetSettingsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(settings)
	if err := s.repo.UpdateSettings(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *indabaxService) DeleteSettings(ctx context.Context, id uuid.UUID) error {
	return s.guard.Delete()
}

// =====================================================
// EVENTS
// =====================================================

func (s *indabaxService) ListEvents(ctx context.Context, p query.ListParams, f indabax.EventFilter) (query.Page[*indabax.Event], error) {
	items, total, err := s.repo.ListEvents(ctx, p, f)
	return page(items, total, err, p)
}

func (s *indabaxService) LatestEvent(ctx context.Context) (*indabax.Event, error) {
	return s.repo.LatestEvent(ctx)
}

func (s *indabaxService) GetEvent(ctx context.Context, slug string) (*indabax.Event, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, apperror.NewNotFound("Indabax event not found.")
	}
	return s.repo.GetEventBySlug(ctx, slug)
}

func (s *indabaxService) EventSpeakers(ctx context.Context, slug string) ([]*indabax.Speaker, error) {
	e, err := s.GetEvent(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.repo.ListEventSpeakers(ctx, e.ID)
}

func (s *indabaxService) EventSessions(ctx context.Context, slug string) ([]*indabax.Session, error) {
	e, err := s.GetEvent(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.repo.ListEventSessions(ctx, e.ID)
}

func (s *indabaxService) CreateEvent(ctx context.Context, req *indabax.EventRequest) (*indabax.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	e := &indabax.Event{}
	req.Apply(e)
	if err := utils.AssignIfAbsent(e); err != nil {
		return nil, err
	}
	if err := s.repo.InsertEvent(ctx, e); err != nil {
		return nil, err
	}

	search.Sync(s.indexer, e.Document(), e.IsPublished)
	return e, nil
}

func (s *indabaxService) UpdateEvent(ctx context.Context, id uuid.UUID, req *indabax.EventRequest) (*indabax.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	e, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(e)
	if err := s.repo.UpdateEvent(ctx, e); err != nil {
		return nil, err
	}

	search.Sync(s.indexer, e.Document(), e.IsPublished)
	return e, nil
}

func (s *indabaxService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		return err
	}
	search.Forget(s.indexer, search.KindIndabaxEvent, id.String())
	return nil
}

func (s *indabaxService) SearchDocuments(ctx context.Context) ([]search.Document, error) {
	items, err := s.repo.ListPublishedEvents(ctx)
	if err != nil {
		return nil, err
	}
	docs := make([]search.Document, len(items))
	for i, e := range items {
		docs[i] = e.Document()
	}
	return docs, nil
}

// =====================================================
// SPEAKERS / SESSIONS / GALLERY
// =====================================================

func (s *indabaxService) ListSpeakers(ctx context.Context, p query.ListParams, f indabax.SpeakerFilter) (query.Page[*indabax.Speaker], error) {
	items, total, err := s.repo.ListSpeakers(ctx, p, f)
	return page(items, total, err, p)
}

func (s *indabaxService) KeynoteSpeakers(ctx context.Context) ([]*indabax.Speaker, error) {
	return s.repo.ListKeynoteSpeakers(ctx)
}

func (s *indabaxService) GetSpeaker(ctx context.Context, id uuid.UUID) (*indabax.Speaker, error) {
	return s.repo.GetSpeaker(ctx, id)
}

func (s *indabaxService) ListSessions(ctx context.Context, p query.ListParams, f indabax.SessionFilter) (query.Page[*indabax.Session], error) {
	if f.SessionType != nil && !indabax.SessionType(*f.SessionType).Valid() {
		return query.Page[*indabax.Session]{}, apperror.NewValidation("invalid session_type", nil)
	}
	items, total, err := s.repo.ListSessions(ctx, p, f)
	return page(items, total, err, p)
}

func (s *indabaxService) GetSession(ctx context.Context, id uuid.UUID) (*indabax.Session, error) {
	return s.repo.GetSession(ctx, id)
}

func (s *indabaxService) ListGallery(ctx context.Context, p query.ListParams, eventID *uuid.UUID) (query.Page[*indabax.GalleryItem], error) {
	items, total, err := s.repo.ListGallery(ctx, p, eventID)
	return page(items, total, err, p)
}

func (s *indabaxService) GetGalleryItem(ctx context.Context, id uuid.UUID) (*indabax.GalleryItem, error) {
	return s.repo.GetGalleryItem(ctx, id)
}

// =====================================================
// HERO
// =====================================================

func (s *indabaxService) ListHeroes(ctx context.Context, p query.ListParams) (query.Page[*indabax.Hero], error) {
	items, total, err := s.repo.ListHeroes(ctx, p)
	return page(items, total, err, p)
}

func (s *indabaxService) CreateHero(ctx context.Context, req *indabax.HeroRequest) (*indabax.Hero, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	h := &indabax.Hero{}
	req.Apply(h)
	if err := s.repo.SaveHero(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *indabaxService) UpdateHero(ctx context.Context, id uuid.UUID, req *indabax.HeroRequest) (*indabax.Hero, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	h, err := s.repo.GetHero(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(h)
	if err := s.repo.SaveHero(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// =====================================================
// LEADERS
// =====================================================

func (s *indabaxService) ListLeaders(ctx context.Context, p query.ListParams, f indabax.LeaderFilter) (query.Page[*indabax.Leader], error) {
	items, total, err := s.repo.ListLeaders(ctx, p, f, s.clock.Now())
	return page(items, total, err, p)
}

// LeaderArchive nhóm leader đã hết nhiệm kỳ theo start_year giảm dần.
// Repo trả sẵn ORDER BY start_year DESC, name nên chỉ cần cắt theo năm.
func (s *indabaxService) LeaderArchive(ctx context.Context) ([]indabax.ArchiveYear, error) {
	leaders, err := s.repo.ListArchivedLeaders(ctx, s.clock.Now())
	if err != nil {
		return nil, err
	}

	groups := []indabax.ArchiveYear{}
	for _, l := range leaders {
		if n := len(groups); n > 0 && groups[n-1].Year == l.StartYear {
			groups[n-1].Leaders = append(groups[n-1].Leaders, l)
			continue
		}
		groups = append(groups, indabax.ArchiveYear{Year: l.StartYear, Leaders: []*indabax.Leader{l}})
	}
	return groups, nil
}

func (s *indabaxService) GetLeader(ctx context.Context, id uuid.UUID) (*indabax.Leader, error) {
	return s.repo.GetLeader(ctx, id)
}

func (s *indabaxService) CreateLeader(ctx context.Context, req *indabax.LeaderRequest) (*indabax.Leader, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	l := &indabax.Leader{}
	req.Apply(l, s.clock.Now())
	if err := s.repo.InsertLeader(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *indabaxService) UpdateLeader(ctx context.Context, id uuid.UUID, req *indabax.LeaderRequest) (*indabax.Leader, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	l, err := s.repo.GetLeader(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(l, s.clock.Now())
	if err := s.repo.UpdateLeader(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *indabaxService) DeleteLeader(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteLeader(ctx, id)
}

// =====================================================
// RESOURCES
// =====================================================

func (s *indabaxService) ListResources(ctx context.Context, p query.ListParams, resourceType *string) (query.Page[*indabax.Resource], error) {
	items, total, err := s.repo.ListResources(ctx, p, resourceType)
	return page(items, total, err, p)
}
