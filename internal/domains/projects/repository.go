package projects

import (
	"context"

	"github.com/google/uuid"

	"kuai-backend/internal/shared/query"
)

type Repository interface {
	ListCategories(ctx context.Context, p query.ListParams) ([]*Category, int, error)
	GetCategoryBySlug(ctx context.Context, slug string) (*Category, error)
	InsertCategory(ctx context.Context, c *Category) error

	ListProjects(ctx context.Context, p query.ListParams, f ProjectFilter) ([]*Project, int, error)
	ListFeatured(ctx context.Context, limit int) ([]*Project, error)
	ListByStatus(ctx context.Context, status Status, limit int) ([]*Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*Project, error)
	GetProjectByID(ctx context.Context, id uuid.UUID) (*Project, error)
	InsertProject(ctx context.Context, p *Project) error
	UpdateProject(ctx context.Context, p *Project) error
	DeleteProject(ctx context.Context, id uuid.UUID) error
	ListPublished(ctx context.Context) ([]*Project, error)
}
