package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kuai-backend/internal/domains/core"
	"kuai-backend/internal/infrastructure/database"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/singleton"
	"kuai-backend/pkg/cache"
)

const (
	cacheKeySiteSettings = "core:site_settings:current"
	cacheKeyContactInfo  = "core:contact_info:current"
)

const siteSettingsColumns = `id, site_name, site_tagline, logo, favicon,
	contact_email, contact_phone, address,
	facebook_url, twitter_url, instagram_url, linkedin_url, youtube_url, whatsapp_url, github_url,
	meta_description, meta_keywords, google_analytics_id, created_at, updated_at`

const contactInfoColumns = `id, email, phone, address, office_hours, latitude, longitude,
	emergency_contact, created_at, updated_at`

const heroSlideColumns = `id, title, subtitle, image, image_variants, image_alt,
	button1_text, button1_url, button1_style, button2_text, button2_url, button2_style,
	display_order, is_active, created_at, updated_at`

const quickLinkColumns = `id, name, url, display_order, is_active, open_new_tab, created_at, updated_at`

var (
	heroOrdering = query.Ordering{
		Allowed: map[string]string{"order": "display_order", "created_at": "created_at", "title": "title"},
		Default: []string{"order", "-created_at"},
	}
	quickLinkOrdering = query.Ordering{
		Allowed: map[string]string{"order": "display_order", "name": "name"},
		Default: []string{"order", "name"},
	}
	singletonOrdering = query.Ordering{
		Allowed: map[string]string{"created_at": "created_at"},
		Default: []string{"created_at"},
	}
)

type postgresRepository struct {
	db       database.DBTX
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewPostgresRepository(db database.DBTX, c cache.Cache, cacheTTL time.Duration) core.Repository {
	return &postgresRepository{db: db, cache: c, cacheTTL: cacheTTL}
}

// =====================================================
// SITE SETTINGS
// =====================================================

func (r *postgresRepository) SiteSettingsExists(ctx context.Context) (bool, error) {
	return database.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM site_settings)`)
}

func (r *postgresRepository) CurrentSiteSettings(ctx context.Context) (*core.SiteSettings, error) {
	return cache.Remember(ctx, r.cache, cacheKeySiteSettings, r.cacheTTL, func(ctx context.Context) (*core.SiteSettings, error) {
		s, err := database.SelectOne[core.SiteSettings](ctx, r.db,
			`SELECT `+siteSettingsColumns+` FROM site_settings ORDER BY created_at LIMIT 1`)
		if database.IsNoRows(err) {
			return nil, nil
		}
		return s, err
	})
}

func (r *postgresRepository) ListSiteSettings(ctx context.Context, p query.ListParams) ([]*core.SiteSettings, int, error) {
	return database.SelectPage[core.SiteSettings](ctx, r.db, siteSettingsColumns, "site_settings", "", nil,
		singletonOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) GetSiteSettings(ctx context.Context, id uuid.UUID) (*core.SiteSettings, error) {
	s, err := database.SelectOne[core.SiteSettings](ctx, r.db,
		`SELECT `+siteSettingsColumns+` FROM site_settings WHERE id = $1`, id)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Site settings not found.")
	}
	return s, err
}

func (r *postgresRepository) InsertSiteSettings(ctx context.Context, s *core.SiteSettings) error {
	row, err := database.SelectOne[core.SiteSettings](ctx, r.db, `
		INSERT INTO site_settings (
			site_name, site_tagline, logo, favicon, contact_email, contact_phone, address,
			facebook_url, twitter_url, instagram_url, linkedin_url, youtube_url, whatsapp_url, github_url,
			meta_description, meta_keywords, google_analytics_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING `+siteSettingsColumns,
		s.SiteName, s.SiteTagline, s.Logo, s.Favicon, s.ContactEmail, s.ContactPhone, s.Address,
		s.FacebookURL, s.TwitterURL, s.InstagramURL, s.LinkedinURL, s.YoutubeURL, s.WhatsappURL, s.GithubURL,
		s.MetaDescription, s.MetaKeywords, s.GoogleAnalyticsID,
	)
	if err != nil {
		return singleton.InsertError(err, "site_settings_singleton_key", "insert site settings")
	}

	*s = *row
	cache.Forget(ctx, r.cache, cacheKeySiteSettings)
	return nil
}

func (r *postgresRepository) UpdateSiteSettings(ctx context.Context, s *core.SiteSettings) error {
	row, err := database.SelectOne[core.SiteSettings](ctx, r.db, `
		UPDATE site_settings SET
			site_name = $2, site_tagline = $3, logo = $4, favicon = $5,
			contact_email = $6, contact_phone = $7, address = $8,
			facebook_url = $9, twitter_url = $10, instagram_url = $11, linkedin_url = $12,
			youtube_url = $13, whatsapp_url = $14, github_url = $15,
			meta_description = $16, meta_keywords = $17, google_analytics_id = $18,
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+siteSettingsColumns,
		s.ID, s.SiteName, s.SiteTagline, s.Logo, s.Favicon, s.ContactEmail, s.ContactPhone, s.Address,
		s.FacebookURL, s.TwitterURL, s.InstagramURL, s.LinkedinURL, s.YoutubeURL, s.WhatsappURL, s.GithubURL,
		s.MetaDescription, s.MetaKeywords, s.GoogleAnalyticsID,
	)
	if database.IsNoRows(err) {
		return apperror.NewNotFound("Site settings not found.")
	}
	if err != nil {
		return fmt.Errorf("update site settings: %w", err)
	}

	*s = *row
	cache.Forget(ctx, r.cache, cacheKeySiteSettings)
	return nil
}

// =====================================================
// CONTACT INFO
// =====================================================

func (r *postgresRepository) ContactInfoExists(ctx context.Context) (bool, error) {
	return database.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM contact_info)`)
}

func (r *postgresRepository) CurrentContactInfo(ctx context.Context) (*core.ContactInfo, error) {
	return cache.Remember(ctx, r.cache, cacheKeyContactInfo, r.cacheTTL, func(ctx context.Context) (*core.ContactInfo, error) {
		ci, err := database.SelectOne[core.ContactInfo](ctx, r.db,
			`SELECT `+contactInfoColumns+` FROM contact_info ORDER BY created_at LIMIT 1`)
		if database.IsNoRows(err) {
			return nil, nil
		}
		return ci, err
	})
}

func (r *postgresRepository) ListContactInfo(ctx context.Context, p query.ListParams) ([]*core.ContactInfo, int, error) {
	return database.SelectPage[core.ContactInfo](ctx, r.db, contactInfoColumns, "contact_info", "", nil,
		singletonOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) GetContactInfo(ctx context.Context, id uuid.UUID) (*core.ContactInfo, error) {
	ci, err := database.SelectOne[core.ContactInfo](ctx, r.db,
		`SELECT `+contactInfoColumns+` FROM contact_info WHERE id = $1`, id)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Contact information not found.")
	}
	return ci, err
}

func (r *postgresRepository) InsertContactInfo(ctx context.Context, ci *core.ContactInfo) error {
	row, err := database.SelectOne[core.ContactInfo](ctx, r.db, `
		INSERT INTO contact_info (email, phone, address, office_hours, latitude, longitude, emergency_contact)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+contactInfoColumns,
		ci.Email, ci.Phone, ci.Address, ci.OfficeHours, ci.Latitude, ci.Longitude, ci.EmergencyContact,
	)
	if err != nil {
		return singleton.InsertError(err, "contact_info_singleton_key", "insert contact info")
	}

	*ci = *row
	cache.Forget(ctx, r.cache, cacheKeyContactInfo)
	return nil
}

func (r *postgresRepository) UpdateContactInfo(ctx context.Context, ci *core.ContactInfo) error {
	row, err := database.SelectOne[core.ContactInfo](ctx, r.db, `
		UPDATE contact_info SET
			email = $2, phone = $3, address = $4, office_hours = $5,
			latitude = $6, longitude = $7, emergency_contact = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING `+contactInfoColumns,
		ci.ID, ci.Email, ci.Phone, ci.Address, ci.OfficeHours, ci.Latitude, ci.Longitude, ci.EmergencyContact,
	)
	if database.IsNoRows(err) {
		return apperror.NewNotFound("Contact information not found.")
	}
	if err != nil {
		return fmt.Errorf("update contact info: %w", err)
	}

	*ci = *row
	cache.Forget(ctx, r.cache, cacheKeyContactInfo)
	return nil
}

// =====================================================
// HERO SLIDES
// =====================================================

func (r *postgresRepository) ListHeroSlides(ctx context.Context, p query.ListParams, activeOnly bool) ([]*core.HeroSlide, int, error) {
	b := query.NewBuilder().Search(p.Search, "title", "subtitle")
	if activeOnly {
		b.Where("is_active = TRUE")
	}
	where, args := b.SQL(1)
	return database.SelectPage[core.HeroSlide](ctx, r.db, heroSlideColumns, "hero_slides", where, args,
		heroOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) GetHeroSlide(ctx context.Context, id uuid.UUID, activeOnly bool) (*core.HeroSlide, error) {
	sql := `SELECT ` + heroSlideColumns + ` FROM hero_slides WHERE id = $1`
	if activeOnly {
		sql += ` AND is_active = TRUE`
	}
	h, err := database.SelectOne[core.HeroSlide](ctx, r.db, sql, id)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Hero slide not found.")
	}
	return h, err
}

func (r *postgresRepository) InsertHeroSlide(ctx context.Context, h *core.HeroSlide) error {
	row, err := database.SelectOne[core.HeroSlide](ctx, r.db, `
		INSERT INTO hero_slides (
			title, subtitle, image, image_variants, image_alt,
			button1_text, button1_url, button1_style, button2_text, button2_url, button2_style,
			display_order, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+heroSlideColumns,
		h.Title, h.Subtitle, h.Image, h.ImageVariants, h.ImageAlt,
		h.Button1Text, h.Button1URL, h.Button1Style, h.Button2Text, h.Button2URL, h.Button2Style,
		h.Order, h.IsActive,
	)
	if err != nil {
		return fmt.Errorf("insert hero slide: %w", err)
	}
	*h = *row
	return nil
}

func (r *postgresRepository) UpdateHeroSlide(ctx context.Context, h *core.HeroSlide) error {
	row, err := database.SelectOne[core.HeroSlide](ctx, r.db, `
		UPDATE hero_slides SET
			title = $2, subtitle = $3, image = $4, image_variants = $5, image_alt = $6,
			button1_text = $7, button1_url = $8, button1_style = $9,
			button2_text = $10, button2_url = $11, button2_style = $12,
			display_order = $13, is_active = $14, updated_at = NOW()
		WHERE id = $1
		RETURNING `+heroSlideColumns,
		h.ID, h.Title, h.Subtitle, h.Image, h.ImageVariants, h.ImageAlt,
		h.Button1Text, h.Button1URL, h.Button1Style, h.Button2Text, h.Button2URL, h.Button2Style,
		h.Order, h.IsActive,
	)
	if database.IsNoRows(err) {
		return apperror.NewNotFound("Hero slide not found.")
	}
	if err != nil {
		return fmt.Errorf("update hero slide: %w", err)
	}
	*h = *row
	return nil
}

func (r *postgresRepository) DeleteHeroSlide(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM hero_slides WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete hero slide: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("Hero slide not found.")
	}
	return nil
}

// =====================================================
// QUICK LINKS
// =====================================================

func (r *postgresRepository) ListQuickLinks(ctx context.Context, p query.ListParams) ([]*core.QuickLink, int, error) {
	where, args := query.NewBuilder().
		Where("is_active = TRUE").
		Search(p.Search, "name", "url").
		SQL(1)
	return database.SelectPage[core.QuickLink](ctx, r.db, quickLinkColumns, "quick_links", where, args,
		quickLinkOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) GetQuickLink(ctx context.Context, id uuid.UUID) (*core.QuickLink, error) {
	q, err := database.SelectOne[core.QuickLink](ctx, r.db,
		`SELECT `+quickLinkColumns+` FROM quick_links WHERE id = $1 AND is_active = TRUE`, id)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Quick link not found.")
	}
	return q, err
}
