package news

import (
	"context"

	"github.com/google/uuid"

	"kuai-backend/internal/infrastructure/search"
	"kuai-backend/internal/shared/query"
)

type Service interface {
	ListCategories(ctx context.Context, p query.ListParams) (query.Page[*Category], error)
	GetCategory(ctx context.Context, slug string) (*Category, error)
	CreateCategory(ctx context.Context, req *CategoryRequest) (*Category, error)

	ListArticles(ctx context.Context, p query.ListParams, f ArticleFilter) (query.Page[*Article], error)
	GetArticle(ctx context.Context, slug string) (*Article, error)
	CreateArticle(ctx context.Context, req *ArticleRequest) (*Article, error)
	UpdateArticle(ctx context.Context, id uuid.UUID, req *ArticleRequest) (*Article, error)
	DeleteArticle(ctx context.Context, id uuid.UUID) error

	// SearchDocuments trả mọi bài published để rebuild index
	SearchDocuments(ctx context.Context) ([]search.Document, error)
}

// Document chuyển bài viết sang search document
func (a *Article) Document() search.Document {
	return search.Document{
		Kind:    search.KindNews,
		ID:      a.ID.String(),
		Slug:    a.Slug,
		Title:   a.Title,
		Summary: a.Excerpt,
		Body:    a.Content,
		Date:    a.Date.String(),
	}
}
