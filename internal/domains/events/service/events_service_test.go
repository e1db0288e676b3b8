package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuai-backend/internal/domains/events"
	"kuai-backend/internal/infrastructure/search"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/lifecycle"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/types"
	"kuai-backend/pkg/clock"
)

type memoryRepo struct {
	events.Repository
	rows        map[uuid.UUID]*events.Event
	marked      []uuid.UUID
	markErr     error
	promotedFor types.Date
}

func newMemoryRepo(rows ...*events.Event) *memoryRepo {
	m := &memoryRepo{rows: map[uuid.UUID]*events.Event{}}
	for _, e := range rows {
		m.rows[e.ID] = e
	}
	return m
}

func (m *memoryRepo) ListEvents(ctx context.Context, p query.ListParams, f events.EventFilter, scope events.Scope, today types.Date) ([]*events.Event, int, error) {
	var out []*events.Event
	for _, e := range m.rows {
		if f.Status != nil && string(e.Status) != *f.Status {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (m *memoryRepo) GetEventBySlug(ctx context.Context, slug string) (*events.Event, error) {
	for _, e := range m.rows {
		if e.Slug == slug {
			cp := *e
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("Event not found.")
}

func (m *memoryRepo) GetEventByID(ctx context.Context, id uuid.UUID) (*events.Event, error) {
	e, ok := m.rows[id]
	if !ok {
		return nil, apperror.NewNotFound("Event not found.")
	}
	cp := *e
	return &cp, nil
}

func (m *memoryRepo) InsertEvent(ctx context.Context, e *events.Event) error {
	e.ID = uuid.New()
	cp := *e
	m.rows[e.ID] = &cp
	return nil
}

func (m *memoryRepo) UpdateEvent(ctx context.Context, e *events.Event) error {
	cp := *e
	m.rows[e.ID] = &cp
	return nil
}

func (m *memoryRepo) MarkCompleted(ctx context.Context, ids []uuid.UUID) error {
	if m.markErr != nil {
		return m.markErr
	}
	m.marked = append(m.marked, ids...)
	for _, id := range ids {
		if e, ok := m.rows[id]; ok && e.Status == lifecycle.EventUpcoming {
			e.Status = lifecycle.EventCompleted
		}
	}
	return nil
}

func (m *memoryRepo) PromotePast(ctx context.Context, today types.Date) (int64, error) {
	m.promotedFor = today
	var n int64
	for _, e := range m.rows {
		if status, changed := lifecycle.PromoteEventStatus(e.Status, e.Date, today); changed {
			e.Status = status
			n++
		}
	}
	return n, nil
}

var now = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func event(slug string, date types.Date, status lifecycle.EventStatus) *events.Event {
	return &events.Event{ID: uuid.New(), Slug: slug, Title: slug, Date: date, Status: status, IsPublished: true}
}

func TestGetEvent_PromotesAndPersists(t *testing.T) {
	old := event("old-meetup", types.NewDate(2024, time.January, 1), lifecycle.EventUpcoming)
	repo := newMemoryRepo(old)
	svc := NewEventsService(repo, clock.Fixed(now), search.NopIndexer{})

	e, err := svc.GetEvent(context.Background(), "old-meetup")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.EventCompleted, e.Status)
	assert.Equal(t, []uuid.UUID{old.ID}, repo.marked)
	assert.Equal(t, lifecycle.EventCompleted, repo.rows[old.ID].Status)

	// lần đọc thứ hai không ghi nữa
	_, err = svc.GetEvent(context.Background(), "old-meetup")
	require.NoError(t, err)
	assert.Len(t, repo.marked, 1)
}

func TestListEvents_KeepsExplicitStatuses(t *testing.T) {
	past := types.NewDate(2024, time.January, 1)
	cancelled := event("cancelled", past, lifecycle.EventCancelled)
	today := event("today", types.NewDate(2024, time.June, 1), lifecycle.EventUpcoming)
	repo := newMemoryRepo(cancelled, today)
	svc := NewEventsService(repo, clock.Fixed(now), search.NopIndexer{})

	page, err := svc.ListEvents(context.Background(), query.ListParams{Page: 1, PageSize: 10}, events.EventFilter{}, events.ScopeAll)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	for _, e := range page.Items {
		switch e.Slug {
		case "cancelled":
			assert.Equal(t, lifecycle.EventCancelled, e.Status)
		case "today":
			assert.Equal(t, lifecycle.EventUpcoming, e.Status)
		}
	}
	assert.Empty(t, repo.marked)
}

func TestListEvents_WriteBackFailureIsNotFatal(t *testing.T) {
	repo := newMemoryRepo(event("old", types.NewDate(2023, time.May, 5), lifecycle.EventUpcoming))
	repo.markErr = errors.New("connection reset")
	svc := NewEventsService(repo, clock.Fixed(now), search.NopIndexer{})

	page, err := svc.ListEvents(context.Background(), query.ListParams{Page: 1, PageSize: 10}, events.EventFilter{}, events.ScopePast)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.EventCompleted, page.Items[0].Status)
}

func TestCreateEvent_PromotesOnSave(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewEventsService(repo, clock.Fixed(now), search.NopIndexer{})

	e, err := svc.CreateEvent(context.Background(), &events.EventRequest{
		Title:       "Intro to PyTorch",
		Description: "Hands-on session",
		Image:       "card/x/original.jpg",
		Date:        types.NewDate(2024, time.January, 1),
		Time:        "14:30",
		Location:    "Block A",
		Status:      "upcoming",
	})
	require.NoError(t, err)
	assert.Equal(t, "intro-to-pytorch", e.Slug)
	assert.Equal(t, lifecycle.EventCompleted, e.Status)
	require.NotNil(t, e.Time)
	assert.Equal(t, "14:30", *e.Time)
}

func TestCreateEvent_Validation(t *testing.T) {
	svc := NewEventsService(newMemoryRepo(), clock.Fixed(now), search.NopIndexer{})

	base := events.EventRequest{
		Title:       "Talk",
		Description: "d",
		Image:       "img",
		Date:        types.NewDate(2024, time.July, 1),
		Location:    "Hall",
	}

	tests := []struct {
		name   string
		mutate func(r *events.EventRequest)
	}{
		{"missing date", func(r *events.EventRequest) { r.Date = types.Date{} }},
		{"bad time", func(r *events.EventRequest) { r.Time = "25:00" }},
		{"bad status", func(r *events.EventRequest) { r.Status = "postponed" }},
		{"zero participants", func(r *events.EventRequest) { n := 0; r.MaxParticipants = &n }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			_, err := svc.CreateEvent(context.Background(), &req)
			assert.True(t, apperror.IsKind(err, apperror.KindValidation))
		})
	}
}

func TestReconcileStatuses_UsesToday(t *testing.T) {
	repo := newMemoryRepo(
		event("jan", types.NewDate(2024, time.January, 1), lifecycle.EventUpcoming),
		event("may", types.NewDate(2024, time.May, 31), lifecycle.EventUpcoming),
		event("june", types.NewDate(2024, time.June, 1), lifecycle.EventUpcoming),
	)
	svc := NewEventsService(repo, clock.Fixed(now), search.NopIndexer{})

	n, err := svc.ReconcileStatuses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, types.NewDate(2024, time.June, 1), repo.promotedFor)
}

func TestListEvents_StatusFilterMatchesPromotedStatus(t *testing.T) {
	stale := event("stale", types.NewDate(2024, time.January, 1), lifecycle.EventUpcoming)
	next := event("next", types.NewDate(2024, time.July, 1), lifecycle.EventUpcoming)
	repo := newMemoryRepo(stale, next)
	svc := NewEventsService(repo, clock.Fixed(now), search.NopIndexer{})

	upcoming := string(lifecycle.EventUpcoming)
	page, err := svc.ListEvents(context.Background(), query.ListParams{Page: 1, PageSize: 10}, events.EventFilter{Status: &upcoming}, events.ScopeAll)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "next", page.Items[0].Slug)
	assert.Equal(t, lifecycle.EventUpcoming, page.Items[0].Status)

	completed := string(lifecycle.EventCompleted)
	page, err = svc.ListEvents(context.Background(), query.ListParams{Page: 1, PageSize: 10}, events.EventFilter{Status: &completed}, events.ScopeAll)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "stale", page.Items[0].Slug)
}
