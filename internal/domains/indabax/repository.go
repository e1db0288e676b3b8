package indabax

import (
	"context"
	"time"

	"github.com/google/uuid"

	"kuai-backend/internal/shared/query"
)

type Repository interface {
	// Settings (singleton)
	SettingsExists(ctx context.Context) (bool, error)
	// CurrentSettings trả về nil, nil khi chưa cấu hình
	CurrentSettings(ctx context.Context) (*Settings, error)
	ListSettings(ctx context.Context, p query.ListParams) ([]*Settings, int, error)
	GetSettingsByID(ctx context.Context, id uuid.UUID) (*Settings, error)
	InsertSettings(ctx context.Context, s *Settings) error
	UpdateSettings(ctx context.Context, s *Settings) error

	// Events chỉ trả event published, trừ GetEventByID (admin)
	ListEvents(ctx context.Context, p query.ListParams, f EventFilter) ([]*Event, int, error)
	LatestEvent(ctx context.Context) (*Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*Event, error)
	InsertEvent(ctx context.Context, e *Event) error
	UpdateEvent(ctx context.Context, e *Event) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	ListPublishedEvents(ctx context.Context) ([]*Event, error)

	ListSpeakers(ctx context.Context, p query.ListParams, f SpeakerFilter) ([]*Speaker, int, error)
	ListKeynoteSpeakers(ctx context.Context) ([]*Speaker, error)
	ListEventSpeakers(ctx context.Context, eventID uuid.UUID) ([]*Speaker, error)
	GetSpeaker(ctx context.Context, id uuid.UUID) (*Speaker, error)

	ListSessions(ctx context.Context, p query.ListParams, f SessionFilter) ([]*Session, int, error)
	ListEventSessions(ctx context.Context, eventID uuid.UUID) ([]*Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*Session, error)

	ListGallery(ctx context.Context, p query.ListParams, eventID *uuid.UUID) ([]*GalleryItem, int, error)
	GetGalleryItem(ctx context.Context, id uuid.UUID) (*GalleryItem, error)

	ListHeroes(ctx context.Context, p query.ListParams) ([]*Hero, int, error)
	GetHero(ctx context.Context, id uuid.UUID) (*Hero, error)
	// SaveHero insert (ID == uuid.Nil) hoặc update; hero active tắt các hero khác trong cùng transaction
	SaveHero(ctx context.Context, h *Hero) error

	ListLeaders(ctx context.Context, p query.ListParams, f LeaderFilter, now time.Time) ([]*Leader, int, error)
	ListArchivedLeaders(ctx context.Context, now time.Time) ([]*Leader, error)
	GetLeader(ctx context.Context, id uuid.UUID) (*Leader, error)
	InsertLeader(ctx context.Context, l *Leader) error
	UpdateLeader(ctx context.Context, l *Leader) error
	DeleteLeader(ctx context.Context, id uuid.UUID) error

	ListResources(ctx context.Context, p query.ListParams, resourceType *string) ([]*Resource, int, error)
}
