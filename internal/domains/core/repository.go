package core

import (
	"context"

	"github.com/google/uuid"

	"kuai-backend/internal/shared/query"
)

// Repository - data access của core domain.
// Singleton Insert trả singleton.ErrDuplicate khi đụng unique singleton_key.
type Repository interface {
	// Site settings
	SiteSettingsExists(ctx context.Context) (bool, error)
	CurrentSiteSettings(ctx context.Context) (*SiteSettings, error) // nil nếu chưa có
	ListSiteSettings(ctx context.Context, p query.ListParams) ([]*SiteSettings, int, error)
	GetSiteSettings(ctx context.Context, id uuid.UUID) (*SiteSettings, error)
	InsertSiteSettings(ctx context.Context, s *SiteSettings) error
	UpdateSiteSettings(ctx context.Context, s *SiteSettings) error

	// Contact info
	ContactInfoExists(ctx context.Context) (bool, error)
	CurrentContactInfo(ctx context.Context) (*ContactInfo, error) // nil nếu chưa có
	ListContactInfo(ctx context.Context, p query.ListParams) ([]*ContactInfo, int, error)
	GetContactInfo(ctx context.Context, id uuid.UUID) (*ContactInfo, error)
	InsertContactInfo(ctx context.Context, ci *ContactInfo) error
	UpdateContactInfo(ctx context.Context, ci *ContactInfo) error

	// Hero slides
	ListHeroSlides(ctx context.Context, p query.ListParams, activeOnly bool) ([]*HeroSlide, int, error)
	GetHeroSlide(ctx context.Context, id uuid.UUID, activeOnly bool) (*HeroSlide, error)
	InsertHeroSlide(ctx context.Context, h *HeroSlide) error
	UpdateHeroSlide(ctx context.Context, h *HeroSlide) error
	DeleteHeroSlide(ctx context.Context, id uuid.UUID) error

	// Quick links
	ListQuickLinks(ctx context.Context, p query.ListParams) ([]*QuickLink, int, error)
	GetQuickLink(ctx context.Context, id uuid.UUID) (*QuickLink, error)
}
