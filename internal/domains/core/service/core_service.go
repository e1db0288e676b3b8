package service

import (
	"context"

	"github.com/google/uuid"

	"kuai-backend/internal/domains/core"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/singleton"
)

type coreService struct {
	repo         core.Repository
	siteSettings *singleton.Guard
	contactInfo  *singleton.Guard
}

func NewCoreService(repo core.Repository) core.Service {
	return &coreService{
		repo:         repo,
		siteSettings: singleton.NewGuard(singleton.SiteSettings, repo.SiteSettingsExists),
		contactInfo:  singleton.NewGuard(singleton.ContactInfo, repo.ContactInfoExists),
	}
}

// =====================================================
// SITE SETTINGS
// =====================================================

func (s *coreService) ListSiteSettings(ctx context.Context, p query.ListParams) (query.Page[*core.SiteSettings], error) {
	items, total, err := s.repo.ListSiteSettings(ctx, p)
	if err != nil {
		return query.Page[*core.SiteSettings]{}, err
	}
	return query.NewPage(items, total, p), nil
}

func (s *coreService) CurrentSiteSettings(ctx context.Context) (*core.SiteSettings, error) {
	settings, err := s.repo.CurrentSiteSettings(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, s.siteSettings.NotConfigured("")
	}
	return settings, nil
}

func (s *coreService) GetSiteSettings(ctx context.Context, id uuid.UUID) (*core.SiteSettings, error) {
	return s.repo.GetSiteSettings(ctx, id)
}

func (s *coreService) CreateSiteSettings(ctx context.Context, req *core.SiteSettingsRequest) (*core.SiteSettings, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	settings := &core.SiteSettings{}
	req.Apply(settings)

	err := s.siteSettings.Create(ctx, func(ctx context.Context) error {
		return s.repo.InsertSiteSettings(ctx, settings)
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *coreService) UpdateSiteSettings(ctx context.Context, id uuid.UUID, req *core.SiteSettingsRequest) (*core.SiteSettings, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	settings, err := s.repo.GetSiteSettings(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(settings)

	if err := s.repo.UpdateSiteSettings(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// DeleteSiteSettings luôn Forbidden, kể cả khi id không tồn tại
func (s *coreService) DeleteSiteSettings(ctx context.Context, id uuid.UUID) error {
	return s.siteSettings.Delete()
}

// =====================================================
// CONTACT INFO
// =====================================================

func (s *coreService) ListContactInfo(ctx context.Context, p query.ListParams) (query.Page[*core.ContactInfo], error) {
	items, total, err := s.repo.ListContactInfo(ctx, p)
	if err != nil {
		return query.Page[*core.ContactInfo]{}, err
	}
	return query.NewPage(items, total, p), nil
}

func (s *coreService) CurrentContactInfo(ctx context.Context) (*core.ContactInfo, error) {
	info, err := s.repo.CurrentContactInfo(ctx)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, s.contactInfo.NotConfigured("")
	}
	return info, nil
}

func (s *coreService) GetContactInfo(ctx context.Context, id uuid.UUID) (*core.ContactInfo, error) {
	return s.repo.GetContactInfo(ctx, id)
}

func (s *coreService) CreateContactInfo(ctx context.Context, req *core.ContactInfoRequest) (*core.ContactInfo, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	info := &core.ContactInfo{}
	req.Apply(info)

	err := s.contactInfo.Create(ctx, func(ctx context.Context) error {
		return s.repo.InsertContactInfo(ctx, info)
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (s *coreService) UpdateContactInfo(ctx context.Context, id uuid.UUID, req *core.ContactInfoRequest) (*core.ContactInfo, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	info, err := s.repo.GetContactInfo(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(info)

	if err := s.repo.UpdateContactInfo(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}

func (s *coreService) DeleteContactInfo(ctx context.Context, id uuid.UUID) error {
	return s.contactInfo.Delete()
}

// =====================================================
// HERO SLIDES
// =====================================================

// Public chỉ thấy slide active
func (s *coreService) ListHeroSlides(ctx context.Context, p query.ListParams) (query.Page[*core.HeroSlide], error) {
	items, total, err := s.repo.ListHeroSlides(ctx, p, true)
	if err != nil {
		return query.Page[*core.HeroSlide]{}, err
	}
	return query.NewPage(items, total, p), nil
}

func (s *coreService) GetHeroSlide(ctx context.Context, id uuid.UUID) (*core.HeroSlide, error) {
	return s.repo.GetHeroSlide(ctx, id, true)
}

func (s *coreService) CreateHeroSlide(ctx context.Context, req *core.HeroSlideRequest) (*core.HeroSlide, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	slide := &core.HeroSlide{}
	req.Apply(slide)
	if err := s.repo.InsertHeroSlide(ctx, slide); err != nil {
		return nil, err
	}
	return slide, nil
}

func (s *coreService) UpdateHeroSlide(ctx context.Context, id uuid.UUID, req *core.HeroSlideRequest) (*core.HeroSlide, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	// admin sửa được cả slide đang inactive
	slide, err := s.repo.GetHeroSlide(ctx, id, false)
	if err != nil {
		return nil, err
	}
	req.Apply(slide)

	if err := s.repo.UpdateHeroSlide(ctx, slide); err != nil {
		return nil, err
	}
	return slide, nil
}

func (s *coreService) DeleteHeroSlide(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteHeroSlide(ctx, id)
}

// =====================================================
// QUICK LINKS
// =====================================================

func (s *coreService) ListQuickLinks(ctx context.Context, p query.ListParams) (query.Page[*core.QuickLink], error) {
	items, total, err := s.repo.ListQuickLinks(ctx, p)
	if err != nil {
		return query.Page[*core.QuickLink]{}, err
	}
	return query.NewPage(items, total, p), nil
}

func (s *coreService) GetQuickLink(ctx context.Context, id uuid.UUID) (*core.QuickLink, error) {
	return s.repo.GetQuickLink(ctx, id)
}
