package projects

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

	ListProjects(ctx context.Context, p query.ListParams, f ProjectFilter) (query.Page[*Project], error)
	Featured(ctx context.Context) ([]*Project, error)
	// ByStatus trả tối đa ByStatusLimit project cho mỗi GroupedStatuses
	ByStatus(ctx context.Context) (map[Status][]*Project, error)
	GetProject(ctx context.Context, slug string) (*Project, error)
	CreateProject(ctx context.Context, req *ProjectRequest) (*Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, req *ProjectRequest) (*Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error

	SearchDocuments(ctx context.Context) ([]search.Document, error)
}

func (p *Project) Document() search.Document {
	return search.Document{
		Kind:    search.KindProject,
		ID:      p.ID.String(),
		Slug:    p.Slug,
		Title:   p.Title,
		Summary: p.ShortDescription,
		Body:    p.Description,
		Date:    p.StartDate.String(),
	}
}
