package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"kuai-backend/internal/domains/news"
	"kuai-backend/internal/infrastructure/search"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/types"
	"kuai-backend/internal/shared/utils"
	"kuai-backend/pkg/clock"
)

type newsService struct {
	repo    news.Repository
	clock   clock.Clock
	indexer search.Indexer
}

func NewNewsService(repo news.Repository, clk clock.Clock, indexer search.Indexer) news.Service {
	return &newsService{repo: repo, clock: clk, indexer: indexer}
}

// =====================================================
// CATEGORIES
// =====================================================

func (s *newsService) ListCategories(ctx context.Context, p query.ListParams) (query.Page[*news.Category], error) {
	items, total, err := s.repo.ListCategories(ctx, p)
	if err != nil {
		return query.Page[*news.Category]{}, err
	}
	return query.NewPage(items, total, p), nil
}

func (s *newsService) GetCategory(ctx context.Context, slug string) (*news.Category, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, apperror.NewNotFound("News category not found.")
	}
	return s.repo.GetCategoryBySlug(ctx, slug)
}

func (s *newsService) CreateCategory(ctx context.Context, req *news.CategoryRequest) (*news.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	c := &news.Category{}
	req.Apply(c)
	if err := utils.AssignIfAbsent(c); err != nil {
		return nil, err
	}
	if err := s.repo.InsertCategory(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// =====================================================
// ARTICLES
// =====================================================

func (s *newsService) ListArticles(ctx context.Context, p query.ListParams, f news.ArticleFilter) (query.Page[*news.Article], error) {
	items, total, err := s.repo.ListArticles(ctx, p, f)
	if err != nil {
		return query.Page[*news.Article]{}, err
	}
	return query.NewPage(items, total, p), nil
}

func (s *newsService) GetArticle(ctx context.Context, slug string) (*news.Article, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, apperror.NewNotFound("News article not found.")
	}
	return s.repo.GetArticleBySlug(ctx, slug)
}

func (s *newsService) CreateArticle(ctx context.Context, req *news.ArticleRequest) (*news.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	a := &news.Article{}
	req.Apply(a, types.DateOf(s.clock.Now()))
	if err := utils.AssignIfAbsent(a); err != nil {
		return nil, err
	}
	if err := s.repo.InsertArticle(ctx, a); err != nil {
		return nil, err
	}

	search.Sync(s.indexer, a.Document(), a.IsPublished)
	return a, nil
}

func (s *newsService) UpdateArticle(ctx context.Context, id uuid.UUID, req *news.ArticleRequest) (*news.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	a, err := s.repo.GetArticleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(a, types.DateOf(s.clock.Now()))
	if err := s.repo.UpdateArticle(ctx, a); err != nil {
		return nil, err
	}

	search.Sync(s.indexer, a.Document(), a.IsPublished)
	return a, nil
}

func (s *newsService) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteArticle(ctx, id); err != nil {
		return err
	}
	search.Forget(s.indexer, search.KindNews, id.String())
	return nil
}

func (s *newsService) SearchDocuments(ctx context.Context) ([]search.Document, error) {
	articles, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	docs := make([]search.Document, len(articles))
	for i, a := range articles {
		docs[i] = a.Document()
	}
	return docs, nil
}
