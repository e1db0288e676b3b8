package indabax

import (
	"context"

	"github.com/google/uuid"

	"kuai-backend/internal/infrastructure/search"
	"kuai-backend/internal/shared/query"
)

type Service interface {
	ListSettings(ctx context.Context, p query.ListParams) (query.Page[*Settings], error)
	CurrentSettings(ctx context.Context) (*Settings, error)
	CreateSettings(ctx context.Context, req *SettingsRequest) (*Settings, error)
	UpdateSettings(ctx context.Context, id uuid.UUID, req *SettingsRequest) (*Settings, error)
	DeleteSettings(ctx context.Context, id uuid.UUID) error

	ListEvents(ctx context.Context, p query.ListParams, f EventFilter) (query.Page[*Event], error)
	LatestEvent(ctx context.Context) (*Event, error)
	GetEvent(ctx context.Context, slug string) (*Event, error)
	EventSpeakers(ctx context.Context, slug string) ([]*Speaker, error)
	EventSessions(ctx context.Context, slug string) ([]*Session, error)
	CreateEvent(ctx context.Context, req *EventRequest) (*Event, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, req *EventRequest) (*Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	ListSpeakers(ctx context.Context, p query.ListParams, f SpeakerFilter) (query.Page[*Speaker], error)
	KeynoteSpeakers(ctx context.Context) ([]*Speaker, error)
	GetSpeaker(ctx context.Context, id uuid.UUID) (*Speaker, error)

	ListSessions(ctx context.Context, p query.ListParams, f SessionFilter) (query.Page[*Session], error)
	GetSession(ctx context.Context, id uuid.UUID) (*Session, error)

	ListGallery(ctx context.Context, p query.ListParams, eventID *uuid.UUID) (query.Page[*GalleryItem], error)
	GetGalleryItem(ctx context.Context, id uuid.UUID) (*GalleryItem, error)

	ListHeroes(ctx context.Context, p query.ListParams) (query.Page[*Hero], error)
	CreateHero(ctx context.Context, req *HeroRequest) (*Hero, error)
	UpdateHero(ctx context.Context, id uuid.UUID, req *HeroRequest) (*Hero, error)

	ListLeaders(ctx context.Context, p query.ListParams, f LeaderFilter) (query.Page[*Leader], error)
	LeaderArchive(ctx context.Context) ([]ArchiveYear, error)
	GetLeader(ctx context.Context, id uuid.UUID) (*Leader, error)
	CreateLeader(ctx context.Context, req *LeaderRequest) (*Leader, error)
	UpdateLeader(ctx context.Context, id uuid.UUID, req *LeaderRequest) (*Leader, error)
	DeleteLeader(ctx context.Context, id uuid.UUID) error

	ListResources(ctx context.Context, p query.ListParams, resourceType *string) (query.Page[*Resource], error)

	SearchDocuments(ctx context.Context) ([]search.Document, error)
}

func (e *Event) Document() search.Document {
	return search.Document{
		Kind:    search.KindIndabaxEvent,
		ID:      e.ID.String(),
		Slug:    e.Slug,
		Title:   e.Title,
		Summary: e.Theme,
		Body:    e.Description,
		Date:    e.Date.String(),
	}
}
