package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kuai-backend/internal/domains/about"
	"kuai-backend/internal/infrastructure/database"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/singleton"
	"kuai-backend/pkg/cache"
)

const cacheKeyCurrent = "about:current"

const columns = `id, title, content, hero_stats,
	who_we_are_title, who_we_are_description, who_we_are_image,
	why_exist_title, why_exist_description, image, mission, vision,
	impact_subtitle, impact_stats,
	cta_title, cta_description, cta_primary_text, cta_primary_link, cta_secondary_text, cta_secondary_link,
	created_at, updated_at`

var ordering = query.Ordering{
	Allowed: map[string]string{"created_at": "created_at"},
	Default: []string{"created_at"},
}

type postgresRepository struct {
	db       database.DBTX
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewPostgresRepository(db database.DBTX, c cache.Cache, cacheTTL time.Duration) about.Repository {
	return &postgresRepository{db: db, cache: c, cacheTTL: cacheTTL}
}

func (r *postgresRepository) Exists(ctx context.Context) (bool, error) {
	return database.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM about_pages)`)
}

func (r *postgresRepository) Current(ctx context.Context) (*about.About, error) {
	return cache.Remember(ctx, r.cache, cacheKeyCurrent, r.cacheTTL, func(ctx context.Context) (*about.About, error) {
		a, err := database.SelectOne[about.About](ctx, r.db,
			`SELECT `+columns+` FROM about_pages ORDER BY created_at LIMIT 1`)
		if database.IsNoRows(err) {
			return nil, nil
		}
		return a, err
	})
}

func (r *postgresRepository) List(ctx context.Context, p query.ListParams) ([]*about.About, int, error) {
	return database.SelectPage[about.About](ctx, r.db, columns, "about_pages", "", nil,
		ordering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*about.About, error) {
	a, err := database.SelectOne[about.About](ctx, r.db, `SELECT `+columns+` FROM about_pages WHERE id = $1`, id)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("About page not found.")
	}
	return a, err
}

func (r *postgresRepository) Insert(ctx context.Context, a *about.About) error {
	row, err := database.SelectOne[about.About](ctx, r.db, `
		INSERT INTO about_pages (
			title, content, hero_stats, who_we_are_title, who_we_are_description, who_we_are_image,
			why_exist_title, why_exist_description, image, mission, vision, impact_subtitle, impact_stats,
			cta_title, cta_description, cta_primary_text, cta_primary_link, cta_secondary_text, cta_secondary_link
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING `+columns,
		a.Title, a.Content, a.HeroStats, a.WhoWeAreTitle, a.WhoWeAreDescription, a.WhoWeAreImage,
		a.WhyExistTitle, a.WhyExistDescription, a.Image, a.Mission, a.Vision, a.ImpactSubtitle, a.ImpactStats,
		a.CTATitle, a.CTADescription, a.CTAPrimaryText, a.CTAPrimaryLink, a.CTASecondaryText, a.CTASecondaryLink,
	)
	if err != nil {
		return singleton.InsertError(err, "about_pages_singleton_key", "insert about page")
	}

	*a = *row
	cache.Forget(ctx, r.cache, cacheKeyCurrent)
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, a *about.About) error {
	row, err := database.SelectOne[about.About](ctx, r.db, `
		UPDATE about_pages SET
			title = $2, content = $3, hero_stats = $4,
			who_we_are_title = $5, who_we_are_description = $6, who_we_are_image = $7,
			why_exist_title = $8, why_exist_description = $9, image = $10,
			mission = $11, vision = $12, impact_subtitle = $13, impact_stats = $14,
			cta_title = $15, cta_description = $16, cta_primary_text = $17, cta_primary_link = $18,
			cta_secondary_text = $19, cta_secondary_link = $20, updated_at = NOW()
		WHERE id = $1
		RETURNING `+columns,
		a.ID, a.Title, a.Content, a.HeroStats, a.WhoWeAreTitle, a.WhoWeAreDescription, a.WhoWeAreImage,
		a.WhyExistTitle, a.WhyExistDescription, a.Image, a.Mission, a.Vision, a.ImpactSubtitle, a.ImpactStats,
		a.CTATitle, a.CTADescription, a.CTAPrimaryText, a.CTAPrimaryLink, a.CTASecondaryText, a.CTASecondaryLink,
	)
	if database.IsNoRows(err) {
		return apperror.NewNotFound("About page not found.")
	}
	if err != nil {
		return fmt.Errorf("update about page: %w", err)
	}

	*a = *row
	cache.Forget(ctx, r.cache, cacheKeyCurrent)
	return nil
}
