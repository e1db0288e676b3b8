package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuai-backend/internal/domains/indabax"
	"kuai-backend/internal/infrastructure/search"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/singleton"
	"kuai-backend/internal/shared/types"
	"kuai-backend/pkg/clock"
)

type memoryRepo struct {
	indabax.Repository
	settings []*indabax.Settings
	events   map[uuid.UUID]*indabax.Event
	speakers []*indabax.Speaker
	archived []*indabax.Leader
	leaders  []*indabax.Leader
	heroes   []*indabax.Hero
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{events: map[uuid.UUID]*indabax.Event{}}
}

func (m *memoryRepo) SettingsExists(ctx context.Context) (bool, error) { return len(m.settings) > 0, nil }

func (m *memoryRepo) CurrentSettings(ctx context.Context) (*indabax.Settings, error) {
	if len(m.settings) == 0 {
		return nil, nil
	}
	return m.settings[0], nil
}

func (m *memoryRepo) InsertSettings(ctx context.Context, s *indabax.Settings) error {
	if len(m.settings) > 0 {
		return singleton.ErrDuplicate
	}
	s.ID = uuid.New()
	m.settings = append(m.settings, s)
	return nil
}

func (m *memoryRepo) GetEventBySlug(ctx context.Context, slug string) (*indabax.Event, error) {
	for _, e := range m.events {
		if e.Slug == slug && e.IsPublished {
			return e, nil
		}
	}
	return nil, apperror.NewNotFound("Indabax event not found.")
}

func (m *memoryRepo) InsertEvent(ctx context.Context, e *indabax.Event) error {
	e.ID = uuid.New()
	m.events[e.ID] = e
	return nil
}

func (m *memoryRepo) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.events[id]; !ok {
		return apperror.NewNotFound("Indabax event not found.")
	}
	delete(m.events, id)
	return nil
}

func (m *memoryRepo) ListEventSpeakers(ctx context.Context, eventID uuid.UUID) ([]*indabax.Speaker, error) {
	var out []*indabax.Speaker
	for _, s := range m.speakers {
		if s.EventID != nil && *s.EventID == eventID && s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memoryRepo) ListArchivedLeaders(ctx context.Context, now time.Time) ([]*indabax.Leader, error) {
	return m.archived, nil
}

func (m *memoryRepo) InsertLeader(ctx context.Context, l *indabax.Leader) error {
	l.ID = uuid.New()
	m.leaders = append(m.leaders, l)
	return nil
}

func (m *memoryRepo) SaveHero(ctx context.Context, h *indabax.Hero) error {
	if h.IsActive {
		for _, other := range m.heroes {
			if other.ID != h.ID {
				other.IsActive = false
			}
		}
	}
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
		m.heroes = append(m.heroes, h)
	}
	return nil
}

func (m *memoryRepo) ListSessions(ctx context.Context, p query.ListParams, f indabax.SessionFilter) ([]*indabax.Session, int, error) {
	return []*indabax.Session{}, 0, nil
}

type recordingIndexer struct {
	upserts []search.Document
	removed []string
}

func (r *recordingIndexer) Upsert(doc search.Document) error {
	r.upserts = append(r.upserts, doc)
	return nil
}

func (r *recordingIndexer) Remove(kind, id string) error {
	r.removed = append(r.removed, search.DocID(kind, id))
	return nil
}

var fixedNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newService(repo *memoryRepo, ix search.Indexer) indabax.Service {
	return NewIndabaxService(repo, clock.Fixed(fixedNow), ix)
}

func intPtr(v int) *int { return &v }

func TestSettings_NotConfiguredAndGuarded(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo, search.NopIndexer{})
	ctx := context.Background()

	_, err := svc.CurrentSettings(ctx)
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "Indabax settings not configured yet.", appErr.Message)

	s, err := svc.CreateSettings(ctx, &indabax.SettingsRequest{Tagline: "Deep learning in Kabale"})
	require.NoError(t, err)
	assert.Equal(t, "Indabax Kabale", s.SiteName)
	assert.Equal(t, "Our Vision", s.VisionTitle)

	_, err = svc.CreateSettings(ctx, &indabax.SettingsRequest{})
	assert.True(t, apperror.IsConflict(err))
	assert.True(t, apperror.IsForbidden(svc.DeleteSettings(ctx, s.ID)))
	assert.Len(t, repo.settings, 1)
}

func TestSettings_InvalidSocialURL(t *testing.T) {
	svc := newService(newMemoryRepo(), search.NopIndexer{})

	_, err := svc.CreateSettings(context.Background(), &indabax.SettingsRequest{FacebookURL: "not a url"})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestCreateEvent_SlugAndIndex(t *testing.T) {
	ix := &recordingIndexer{}
	svc := newService(newMemoryRepo(), ix)

	e, err := svc.CreateEvent(context.Background(), &indabax.EventRequest{
		Title:       "Indabax Kabale 2025",
		Description: "Annual gathering.",
		Theme:       "Foundations",
		Date:        types.NewDate(2025, time.August, 14),
		Time:        "09:00",
		Location:    "Kabale University",
	})
	require.NoError(t, err)
	assert.Equal(t, "indabax-kabale-2025", e.Slug)
	assert.True(t, e.IsPublished)
	require.Len(t, ix.upserts, 1)
	assert.Equal(t, search.KindIndabaxEvent, ix.upserts[0].Kind)
	assert.Equal(t, "Foundations", ix.upserts[0].Summary)

	require.NoError(t, svc.DeleteEvent(context.Background(), e.ID))
	assert.Equal(t, []string{search.DocID(search.KindIndabaxEvent, e.ID.String())}, ix.removed)
}

func TestCreateEvent_Validation(t *testing.T) {
	svc := newService(newMemoryRepo(), search.NopIndexer{})

	cases := map[string]indabax.EventRequest{
		"missing date":     {Title: "X", Description: "d", Location: "L"},
		"bad time":         {Title: "X", Description: "d", Location: "L", Date: types.NewDate(2025, 1, 1), Time: "9am"},
		"zero participant": {Title: "X", Description: "d", Location: "L", Date: types.NewDate(2025, 1, 1), MaxParticipants: intPtr(0)},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateEvent(context.Background(), &req)
			assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		})
	}
}

func TestEventSpeakers(t *testing.T) {
	repo := newMemoryRepo()
	event := &indabax.Event{ID: uuid.New(), Slug: "indabax-2024", IsPublished: true}
	repo.events[event.ID] = event
	repo.speakers = []*indabax.Speaker{
		{ID: uuid.New(), Name: "Active", EventID: &event.ID, IsActive: true},
		{ID: uuid.New(), Name: "Hidden", EventID: &event.ID, IsActive: false},
	}
	svc := newService(repo, search.NopIndexer{})

	speakers, err := svc.EventSpeakers(context.Background(), "indabax-2024")
	require.NoError(t, err)
	require.Len(t, speakers, 1)
	assert.Equal(t, "Active", speakers[0].Name)

	_, err = svc.EventSpeakers(context.Background(), "missing")
	assert.True(t, apperror.IsNotFound(err))
}

func TestLeaderArchive_GroupsByStartYear(t *testing.T) {
	repo := newMemoryRepo()
	repo.archived = []*indabax.Leader{
		{Name: "Amina", StartYear: 2023, EndYear: intPtr(2024)},
		{Name: "Brian", StartYear: 2023, EndYear: intPtr(2024)},
		{Name: "Carol", StartYear: 2021, EndYear: intPtr(2022)},
	}
	svc := newService(repo, search.NopIndexer{})

	groups, err := svc.LeaderArchive(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, 2023, groups[0].Year)
	assert.Len(t, groups[0].Leaders, 2)
	assert.Equal(t, 2021, groups[1].Year)
	assert.Equal(t, "Carol", groups[1].Leaders[0].Name)
}

func TestLeaderArchive_Empty(t *testing.T) {
	groups, err := newService(newMemoryRepo(), search.NopIndexer{}).LeaderArchive(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestCreateLeader_DefaultsStartYear(t *testing.T) {
	svc := newService(newMemoryRepo(), search.NopIndexer{})

	l, err := svc.CreateLeader(context.Background(), &indabax.LeaderRequest{Name: "Daniel", Role: "Lead"})
	require.NoError(t, err)
	assert.Equal(t, 2025, l.StartYear)
	assert.True(t, l.Term().IsCurrent(fixedNow))

	_, err = svc.CreateLeader(context.Background(), &indabax.LeaderRequest{Name: "Daniel"})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestCreateHero_ActivationDeactivatesOthers(t *testing.T) {
	repo := newMemoryRepo()
	svc := newService(repo, search.NopIndexer{})
	ctx := context.Background()

	first, err := svc.CreateHero(ctx, &indabax.HeroRequest{Title: "2024 edition", IsActive: true})
	require.NoError(t, err)
	second, err := svc.CreateHero(ctx, &indabax.HeroRequest{Title: "2025 edition", IsActive: true})
	require.NoError(t, err)

	assert.False(t, first.IsActive)
	assert.True(t, second.IsActive)
}

func TestListSessions_RejectsUnknownType(t *testing.T) {
	svc := newService(newMemoryRepo(), search.NopIndexer{})
	bad := "lecture"

	_, err := svc.ListSessions(context.Background(), query.ListParams{Page: 1, PageSize: 10}, indabax.SessionFilter{SessionType: &bad})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	ok := "panel"
	page, err := svc.ListSessions(context.Background(), query.ListParams{Page: 1, PageSize: 10}, indabax.SessionFilter{SessionType: &ok})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
}
