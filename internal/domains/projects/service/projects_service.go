package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"kuai-backend/internal/domains/projects"
	"kuai-backend/internal/infrastructure/search"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/utils"
)

type projectsService struct {
	repo    projects.Repository
	indexer search.Indexer
}

func NewProjectsService(repo projects.Repository, indexer search.Indexer) projects.Service {
	return &projectsService{repo: repo, indexer: indexer}
}

// =====================================================
// CATEGORIES
// =====================================================

func (s *projectsService) ListCategories(ctx context.Context, p query.ListParams) (query.Page[*projects.Category], error) {
	items, total, err := s.repo.ListCategories(ctx, p)
	if err != nil {
		return query.Page[*projects.Category]{}, err
	}
	return query.NewPage(items, total, p), nil
}

func (s *projectsService) GetCategory(ctx context.Context, slug string) (*projects.Category, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, apperror.NewNotFound("Project category not found.")
	}
	return s.repo.GetCategoryBySlug(ctx, slug)
}

func (s *projectsService) CreateCategory(ctx context.Context, req *projects.CategoryRequest) (*projects.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	c := &projects.Category{}
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
// PROJECTS
// =====================================================

func (s *projectsService) ListProjects(ctx context.Context, p query.ListParams, f projects.ProjectFilter) (query.Page[*projects.Project], error) {
	items, total, err := s.repo.ListProjects(ctx, p, f)
	if err != nil {
		return query.Page[*projects.Project]{}, err
	}
	return query.NewPage(items, total, p), nil
}

func (s *projectsService) Featured(ctx context.Context) ([]*projects.Project, error) {
	return s.repo.ListFeatured(ctx, projects.FeaturedLimit)
}

func (s *projectsService) ByStatus(ctx context.Context) (map[projects.Status][]*projects.Project, error) {
	out := make(map[projects.Status][]*projects.Project, len(projects.GroupedStatuses))
	for _, status := range projects.GroupedStatuses {
		items, err := s.repo.ListByStatus(ctx, status, projects.ByStatusLimit)
		if err != nil {
			return nil, err
		}
		out[status] = items
	}
	return out, nil
}

func (s *projectsService) GetProject(ctx context.Context, slug string) (*projects.Project, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, apperror.NewNotFound("Project not found.")
	}
	return s.repo.GetProjectBySlug(ctx, slug)
}

func (s *projectsService) CreateProject(ctx context.Context, req *projects.ProjectRequest) (*projects.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	p := &projects.Project{}
	req.Apply(p)
	if err := utils.AssignIfAbsent(p); err != nil {
		return nil, err
	}
	if err := s.repo.InsertProject(ctx, p); err != nil {
		return nil, err
	}

	search.Sync(s.indexer, p.Document(), p.IsPublished)
	return p, nil
}

func (s *projectsService) UpdateProject(ctx context.Context, id uuid.UUID, req *projects.ProjectRequest) (*projects.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	p, err := s.repo.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(p)
	if err := s.repo.UpdateProject(ctx, p); err != nil {
		return nil, err
	}

	search.Sync(s.indexer, p.Document(), p.IsPublished)
	return p, nil
}

func (s *projectsService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteProject(ctx, id); err != nil {
		return err
	}
	search.Forget(s.indexer, search.KindProject, id.String())
	return nil
}

func (s *projectsService) SearchDocuments(ctx context.Context) ([]search.Document, error) {
	items, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	docs := make([]search.Document, len(items))
	for i, p := range items {
		docs[i] = p.Document()
	}
	return docs, nil
}
