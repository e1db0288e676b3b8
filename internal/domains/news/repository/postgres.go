package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"kuai-backend/internal/domains/news"
	"kuai-backend/internal/infrastructure/database"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/query"
)

const categoryColumns = `c.id, c.name, c.slug, c.description, c.is_active, c.created_at, c.updated_at,
	(SELECT COUNT(*) FROM news_articles a WHERE a.category_id = c.id AND a.is_published) AS news_count`

const articleColumns = `a.id, a.title, a.slug, a.excerpt, a.content, a.image, a.image_variants,
	a.category_id, c.name AS category_name, a.author, a.date, a.is_published, a.is_featured,
	a.meta_description, a.created_at, a.updated_at`

const articleFrom = `news_articles a LEFT JOIN news_categories c ON c.id = a.category_id`

var (
	categoryOrdering = query.Ordering{
		Allowed: map[string]string{"name": "c.name", "created_at": "c.created_at"},
		Default: []string{"name"},
	}
	articleOrdering = query.Ordering{
		Allowed: map[string]string{"date": "a.date", "created_at": "a.created_at", "title": "a.title"},
		Default: []string{"-date", "-created_at"},
	}
)

type postgresRepository struct {
	db database.DBTX
}

func NewPostgresRepository(db database.DBTX) news.Repository {
	return &postgresRepository{db: db}
}

// =====================================================
// CATEGORIES
// =====================================================

func (r *postgresRepository) ListCategories(ctx context.Context, p query.ListParams) ([]*news.Category, int, error) {
	where, args := query.NewBuilder().
		Where("c.is_active = TRUE").
		Search(p.Search, "c.name", "c.description").
		SQL(1)
	return database.SelectPage[news.Category](ctx, r.db, categoryColumns, "news_categories c", where, args,
		categoryOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) GetCategoryBySlug(ctx context.Context, slug string) (*news.Category, error) {
	c, err := database.SelectOne[news.Category](ctx, r.db,
		`SELECT `+categoryColumns+` FROM news_categories c WHERE c.slug = $1 AND c.is_active = TRUE`, slug)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("News category not found.")
	}
	return c, err
}

func (r *postgresRepository) InsertCategory(ctx context.Context, c *news.Category) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO news_categories (name, slug, description, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		c.Name, c.Slug, c.Description, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		switch {
		case database.IsUniqueOn(err, "news_categories_slug_key"):
			return apperror.NewSlugTaken(c.Slug, err)
		case database.IsUniqueOn(err, "news_categories_name_key"):
			return apperror.NewConflict(apperror.CodeConflict, "category name already exists", err)
		}
		return fmt.Errorf("insert news category: %w", err)
	}
	return nil
}

// =====================================================
// ARTICLES
// =====================================================

func (r *postgresRepository) ListArticles(ctx context.Context, p query.ListParams, f news.ArticleFilter) ([]*news.Article, int, error) {
	b := query.NewBuilder().
		Where("a.is_published = TRUE").
		Search(p.Search, "a.title", "a.excerpt", "a.content", "a.author")
	query.Eq(b, "a.category_id", f.CategoryID)
	query.Eq(b, "a.is_featured", f.IsFeatured)
	query.Eq(b, "a.date", f.Date)

	where, args := b.SQL(1)
	return database.SelectPage[news.Article](ctx, r.db, articleColumns, articleFrom, where, args,
		articleOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) GetArticleBySlug(ctx context.Context, slug string) (*news.Article, error) {
	a, err := database.SelectOne[news.Article](ctx, r.db,
		`SELECT `+articleColumns+` FROM `+articleFrom+` WHERE a.slug = $1 AND a.is_published = TRUE`, slug)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("News article not found.")
	}
	return a, err
}

func (r *postgresRepository) GetArticleByID(ctx context.Context, id uuid.UUID) (*news.Article, error) {
	a, err := database.SelectOne[news.Article](ctx, r.db,
		`SELECT `+articleColumns+` FROM `+articleFrom+` WHERE a.id = $1`, id)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("News article not found.")
	}
	return a, err
}

func (r *postgresRepository) InsertArticle(ctx context.Context, a *news.Article) error {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO news_articles (
			title, slug, excerpt, content, image, image_variants, category_id, author, date,
			is_published, is_featured, meta_description
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		a.Title, a.Slug, a.Excerpt, a.Content, a.Image, a.ImageVariants, a.CategoryID, a.Author, a.Date,
		a.IsPublished, a.IsFeatured, a.MetaDescription,
	).Scan(&id)
	if err != nil {
		return r.mapWriteErr(err, a.Slug, "insert news article")
	}
	return r.reload(ctx, id, a)
}

func (r *postgresRepository) UpdateArticle(ctx context.Context, a *news.Article) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE news_articles SET
			title = $2, slug = $3, excerpt = $4, content = $5, image = $6, image_variants = $7,
			category_id = $8, author = $9, date = $10, is_published = $11, is_featured = $12,
			meta_description = $13, updated_at = NOW()
		WHERE id = $1`,
		a.ID, a.Title, a.Slug, a.Excerpt, a.Content, a.Image, a.ImageVariants,
		a.CategoryID, a.Author, a.Date, a.IsPublished, a.IsFeatured, a.MetaDescription,
	)
	if err != nil {
		return r.mapWriteErr(err, a.Slug, "update news article")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("News article not found.")
	}
	return r.reload(ctx, a.ID, a)
}

func (r *postgresRepository) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM news_articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete news article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("News article not found.")
	}
	return nil
}

func (r *postgresRepository) ListPublished(ctx context.Context) ([]*news.Article, error) {
	return database.SelectAll[news.Article](ctx, r.db,
		`SELECT `+articleColumns+` FROM `+articleFrom+` WHERE a.is_published = TRUE`)
}

// reload đọc lại row kèm category_name sau khi ghi
func (r *postgresRepository) reload(ctx context.Context, id uuid.UUID, dst *news.Article) error {
	row, err := r.GetArticleByID(ctx, id)
	if err != nil {
		return err
	}
	*dst = *row
	return nil
}

func (r *postgresRepository) mapWriteErr(err error, slug, op string) error {
	if database.IsUniqueOn(err, "news_articles_slug_key") {
		return apperror.NewSlugTaken(slug, err)
	}
	if database.IsForeignKeyViolation(err) {
		return apperror.NewValidation("category does not exist", nil)
	}
	return fmt.Errorf("%s: %w", op, err)
}
