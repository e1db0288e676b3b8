package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuai-backend/internal/domains/news"
	"kuai-backend/internal/infrastructure/search"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/types"
	"kuai-backend/pkg/clock"
)

type memoryRepo struct {
	news.Repository
	articles map[uuid.UUID]*news.Article
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{articles: map[uuid.UUID]*news.Article{}}
}

func (m *memoryRepo) slugTaken(slug string, except uuid.UUID) bool {
	for id, a := range m.articles {
		if a.Slug == slug && id != except {
			return true
		}
	}
	return false
}

func (m *memoryRepo) InsertArticle(ctx context.Context, a *news.Article) error {
	if m.slugTaken(a.Slug, uuid.Nil) {
		return apperror.NewSlugTaken(a.Slug, nil)
	}
	a.ID = uuid.New()
	cp := *a
	m.articles[a.ID] = &cp
	return nil
}

func (m *memoryRepo) UpdateArticle(ctx context.Context, a *news.Article) error {
	if m.slugTaken(a.Slug, a.ID) {
		return apperror.NewSlugTaken(a.Slug, nil)
	}
	cp := *a
	m.articles[a.ID] = &cp
	return nil
}

func (m *memoryRepo) GetArticleByID(ctx context.Context, id uuid.UUID) (*news.Article, error) {
	a, ok := m.articles[id]
	if !ok {
		return nil, apperror.NewNotFound("News article not found.")
	}
	cp := *a
	return &cp, nil
}

func (m *memoryRepo) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.articles[id]; !ok {
		return apperror.NewNotFound("News article not found.")
	}
	delete(m.articles, id)
	return nil
}

func (m *memoryRepo) ListPublished(ctx context.Context) ([]*news.Article, error) {
	var out []*news.Article
	for _, a := range m.articles {
		if a.IsPublished {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryRepo) ListArticles(ctx context.Context, p query.ListParams, f news.ArticleFilter) ([]*news.Article, int, error) {
	out, _ := m.ListPublished(ctx)
	return out, len(out), nil
}

// recordingIndexer ghi lại doc trong index
type recordingIndexer struct {
	docs map[string]search.Document
}

func (r *recordingIndexer) Upsert(doc search.Document) error {
	r.docs[doc.DocID()] = doc
	return nil
}

func (r *recordingIndexer) Remove(kind, id string) error {
	delete(r.docs, search.DocID(kind, id))
	return nil
}

var today = time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)

func newService() (news.Service, *memoryRepo, *recordingIndexer) {
	repo := newMemoryRepo()
	ix := &recordingIndexer{docs: map[string]search.Document{}}
	return NewNewsService(repo, clock.Fixed(today), ix), repo, ix
}

func articleRequest(title string) *news.ArticleRequest {
	return &news.ArticleRequest{
		Title:   title,
		Excerpt: "Short summary",
		Content: "Long content",
		Image:   "card/abc/original.jpg",
	}
}

func TestCreateArticle_AssignsSlugOnce(t *testing.T) {
	svc, _, _ := newService()
	ctx := context.Background()

	a, err := svc.CreateArticle(ctx, articleRequest("AI & Robotics Club!"))
	require.NoError(t, err)
	assert.Equal(t, "ai-robotics-club", a.Slug)
	assert.Equal(t, types.NewDate(2024, time.June, 1), a.Date)
	assert.True(t, a.IsPublished)

	updated, err := svc.UpdateArticle(ctx, a.ID, articleRequest("A Completely New Title"))
	require.NoError(t, err)
	assert.Equal(t, "ai-robotics-club", updated.Slug)
	assert.Equal(t, "A Completely New Title", updated.Title)
}

func TestCreateArticle_SlugCollisionIsConflict(t *testing.T) {
	svc, repo, _ := newService()
	ctx := context.Background()

	_, err := svc.CreateArticle(ctx, articleRequest("Hackathon Results"))
	require.NoError(t, err)

	_, err = svc.CreateArticle(ctx, articleRequest("Hackathon Results"))
	require.Error(t, err)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeSlugTaken, appErr.Code)
	assert.Len(t, repo.articles, 1)
}

func TestArticle_SearchIndexFollowsPublishing(t *testing.T) {
	svc, _, ix := newService()
	ctx := context.Background()

	a, err := svc.CreateArticle(ctx, articleRequest("Deep Learning Workshop"))
	require.NoError(t, err)
	require.Contains(t, ix.docs, search.DocID(search.KindNews, a.ID.String()))

	req := articleRequest("Deep Learning Workshop")
	unpublished := false
	req.IsPublished = &unpublished
	_, err = svc.UpdateArticle(ctx, a.ID, req)
	require.NoError(t, err)
	assert.NotContains(t, ix.docs, search.DocID(search.KindNews, a.ID.String()))

	docs, err := svc.SearchDocuments(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)

	require.NoError(t, svc.DeleteArticle(ctx, a.ID))
	assert.True(t, apperror.IsNotFound(svc.DeleteArticle(ctx, a.ID)))
}

func TestCreateArticle_Validation(t *testing.T) {
	svc, _, _ := newService()

	req := articleRequest("Title")
	req.Excerpt = string(make([]rune, 301))
	_, err := svc.CreateArticle(context.Background(), req)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = svc.CreateArticle(context.Background(), articleRequest("???"))
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}
