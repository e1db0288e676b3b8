package news

import (
	"context"

	"github.com/google/uuid"

	"kuai-backend/internal/shared/query"
)

type Repository interface {
	// Categories (chỉ active)
	ListCategories(ctx context.Context, p query.ListParams) ([]*Category, int, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*Category, error)
	InsertCategory(ctx context.Context, c *Category) error

	// Articles
	ListArticles(ctx context.Context, p query.ListParams, f ArticleFilter) ([]*Article, int, error) // chỉ published
	GetArticleBySlug(ctx context.Context, slug string) (*Article, error)                            // chỉ published
	GetArticleByID(ctx context.Context, id uuid.UUID) (*Article, error)
	InsertArticle(ctx context.Context, a *Article) error
	UpdateArticle(ctx context.Context, a *Article) error
	DeleteArticle(ctx context.Context, id uuid.UUID) error
	ListPublished(ctx context.Context) ([]*Article, error)
}
