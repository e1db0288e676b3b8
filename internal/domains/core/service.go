package core

import (
	"context"

	"github.com/google/uuid"

	"kuai-backend/internal/shared/query"
)

// Service - business logic của core domain
type Service interface {
	// Site settings (singleton)
	ListSiteSettings(ctx context.Context, p query.ListParams) (query.Page[*SiteSettings], error)
	CurrentSiteSettings(ctx context.Context) (*SiteSettings, error)
	GetSiteSettings(ctx context.Context, id uuid.UUID) (*SiteSettings, error)
	CreateSiteSettings(ctx context.Context, req *SiteSettingsRequest) (*SiteSettings, error)
	UpdateSiteSettings(ctx context.Context, id uuid.UUID, req *SiteSettingsRequest) (*SiteSettings, error)
	DeleteSiteSettings(ctx context.Context, id uuid.UUID) error

	// Contact info (singleton)
	ListContactInfo(ctx context.Context, p query.ListParams) (query.Page[*ContactInfo], error)
	CurrentContactInfo(ctx context.Context) (*ContactInfo, error)
	GetContactInfo(ctx context.Context, id uuid.UUID) (*ContactInfo, error)
	CreateContactInfo(ctx context.Context, req *ContactInfoRequest) (*ContactInfo, error)
	UpdateContactInfo(ctx context.Context, id uuid.UUID, req *ContactInfoRequest) (*ContactInfo, error)
	DeleteContactInfo(ctx context.Context, id uuid.UUID) error

	// Hero slides
	ListHeroSlides(ctx context.Context, p query.ListParams) (query.Page[*HeroSlide], error)
	GetHeroSlide(ctx context.Context, id uuid.UUID) (*HeroSlide, error)
	CreateHeroSlide(ctx context.Context, req *HeroSlideRequest) (*HeroSlide, error)
	UpdateHeroSlide(ctx context.Context, id uuid.UUID, req *HeroSlideRequest) (*HeroSlide, error)
	DeleteHeroSlide(ctx context.Context, id uuid.UUID) error

	// Quick links
	ListQuickLinks(ctx context.Context, p query.ListParams) (query.Page[*QuickLink], error)
	GetQuickLink(ctx context.Context, id uuid.UUID) (*QuickLink, error)
}
