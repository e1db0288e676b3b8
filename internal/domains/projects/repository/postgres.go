package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"kuai-backend/internal/domains/projects"
	"kuai-backend/internal/infrastructure/database"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/query"
)

const categoryColumns = `c.id, c.name, c.slug, c.description, c.icon, c.color, c.is_active, c.created_at, c.updated_at,
	(SELECT COUNT(*) FROM projects p WHERE p.category_id = c.id AND p.is_published) AS projects_count`

const projectColumns = `p.id, p.title, p.slug, p.description, p.short_description, p.image, p.image_variants,
	p.category_id, c.name AS category_name, c.icon AS category_icon, c.color AS category_color,
	p.technologies, p.team_members, p.start_date, p.end_date, p.status,
	p.github_url, p.demo_url, p.documentation_url, p.is_published, p.is_featured, p.display_order,
	p.created_at, p.updated_at`

const projectFrom = `projects p LEFT JOIN project_categories c ON c.id = p.category_id`

// thứ tự mặc định dùng chung cho list, featured và by_status
const defaultOrder = ` ORDER BY p.display_order ASC, p.created_at DESC`

var (
	categoryOrdering = query.Ordering{
		Allowed: map[string]string{"name": "c.name", "created_at": "c.created_at"},
		Default: []string{"name"},
	}
	projectOrdering = query.Ordering{
		Allowed: map[string]string{"order": "p.display_order", "created_at": "p.created_at", "title": "p.title"},
		Default: []string{"order", "-created_at"},
	}
)

type postgresRepository struct {
	db database.DBTX
}

func NewPostgresRepository(db database.DBTX) projects.Repository {
	return &postgresRepository{db: db}
}

// =====================================================
// CATEGORIES
// =====================================================

func (r *postgresRepository) ListCategories(ctx context.Context, p query.ListParams) ([]*projects.Category, int, error) {
	where, args := query.NewBuilder().
		Where("c.is_active = TRUE").
		Search(p.Search, "c.name", "c.description").
		SQL(1)
	return database.SelectPage[projects.Category](ctx, r.db, categoryColumns, "project_categories c", where, args,
		categoryOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) GetCategoryBySlug(ctx context.Context, slug string) (*projects.Category, error) {
	c, err := database.SelectOne[projects.Category](ctx, r.db,
		`SELECT `+categoryColumns+` FROM project_categories c WHERE c.slug = $1 AND c.is_active = TRUE`, slug)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Project category not found.")
	}
	return c, err
}

func (r *postgresRepository) InsertCategory(ctx context.Context, c *projects.Category) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO project_categories (name, slug, description, icon, color, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		c.Name, c.Slug, c.Description, c.Icon, c.Color, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		switch {
		case database.IsUniqueOn(err, "project_categories_slug_key"):
			return apperror.NewSlugTaken(c.Slug, err)
		case database.IsUniqueOn(err, "project_categories_name_key"):
			return apperror.NewConflict(apperror.CodeConflict, "category name already exists", err)
		}
		return fmt.Errorf("insert project category: %w", err)
	}
	return nil
}

// =====================================================
// PROJECTS
// =====================================================

func (r *postgresRepository) ListProjects(ctx context.Context, p query.ListParams, f projects.ProjectFilter) ([]*projects.Project, int, error) {
	b := query.NewBuilder().
		Where("p.is_published = TRUE").
		Search(p.Search, "p.title", "p.description",
			"array_to_string(p.technologies, ' ')", "array_to_string(p.team_members, ' ')")
	query.Eq(b, "p.category_id", f.CategoryID)
	query.Eq(b, "p.status", f.Status)
	query.Eq(b, "p.is_featured", f.IsFeatured)

	where, args := b.SQL(1)
	return database.SelectPage[projects.Project](ctx, r.db, projectColumns, projectFrom, where, args,
		projectOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) ListFeatured(ctx context.Context, limit int) ([]*projects.Project, error) {
	return database.SelectAll[projects.Project](ctx, r.db,
		`SELECT `+projectColumns+` FROM `+projectFrom+`
		WHERE p.is_published = TRUE AND p.is_featured = TRUE`+defaultOrder+` LIMIT $1`, limit)
}

func (r *postgresRepository) ListByStatus(ctx context.Context, status projects.Status, limit int) ([]*projects.Project, error) {
	return database.SelectAll[projects.Project](ctx, r.db,
		`SELECT `+projectColumns+` FROM `+projectFrom+`
		WHERE p.is_published = TRUE AND p.status = $1`+defaultOrder+` LIMIT $2`, string(status), limit)
}

func (r *postgresRepository) GetProjectBySlug(ctx context.Context, slug string) (*projects.Project, error) {
	p, err := database.SelectOne[projects.Project](ctx, r.db,
		`SELECT `+projectColumns+` FROM `+projectFrom+` WHERE p.slug = $1 AND p.is_published = TRUE`, slug)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Project not found.")
	}
	return p, err
}

func (r *postgresRepository) GetProjectByID(ctx context.Context, id uuid.UUID) (*projects.Project, error) {
	p, err := database.SelectOne[projects.Project](ctx, r.db,
		`SELECT `+projectColumns+` FROM `+projectFrom+` WHERE p.id = $1`, id)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Project not found.")
	}
	return p, err
}

func (r *postgresRepository) InsertProject(ctx context.Context, p *projects.Project) error {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO projects (
			title, slug, description, short_description, image, image_variants, category_id,
			technologies, team_members, start_date, end_date, status,
			github_url, demo_url, documentation_url, is_published, is_featured, display_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id`,
		p.Title, p.Slug, p.Description, p.ShortDescription, p.Image, p.ImageVariants, p.CategoryID,
		p.Technologies, p.TeamMembers, p.StartDate, p.EndDate, string(p.Status),
		p.GithubURL, p.DemoURL, p.DocumentationURL, p.IsPublished, p.IsFeatured, p.Order,
	).Scan(&id)
	if err != nil {
		return r.mapWriteErr(err, p.Slug, "insert project")
	}
	return r.reload(ctx, id, p)
}

func (r *postgresRepository) UpdateProject(ctx context.Context, p *projects.Project) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE projects SET
			title = $2, slug = $3, description = $4, short_description = $5, image = $6,
			image_variants = $7, category_id = $8, technologies = $9, team_members = $10,
			start_date = $11, end_date = $12, status = $13, github_url = $14, demo_url = $15,
			documentation_url = $16, is_published = $17, is_featured = $18, display_order = $19,
			updated_at = NOW()
		WHERE id = $1`,
		p.ID, p.Title, p.Slug, p.Description, p.ShortDescription, p.Image,
		p.ImageVariants, p.CategoryID, p.Technologies, p.TeamMembers,
		p.StartDate, p.EndDate, string(p.Status), p.GithubURL, p.DemoURL,
		p.DocumentationURL, p.IsPublished, p.IsFeatured, p.Order,
	)
	if err != nil {
		return r.mapWriteErr(err, p.Slug, "update project")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("Project not found.")
	}
	return r.reload(ctx, p.ID, p)
}

func (r *postgresRepository) DeleteProject(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("Project not found.")
	}
	return nil
}

func (r *postgresRepository) ListPublished(ctx context.Context) ([]*projects.Project, error) {
	return database.SelectAll[projects.Project](ctx, r.db,
		`SELECT `+projectColumns+` FROM `+projectFrom+` WHERE p.is_published = TRUE`)
}

func (r *postgresRepository) reload(ctx context.Context, id uuid.UUID, dst *projects.Project) error {
	row, err := r.GetProjectByID(ctx, id)
	if err != nil {
		return err
	}
	*dst = *row
	return nil
}

func (r *postgresRepository) mapWriteErr(err error, slug, op string) error {
	if database.IsUniqueOn(err, "projects_slug_key") {
		return apperror.NewSlugTaken(slug, err)
	}
	if database.IsForeignKeyViolation(err) {
		return apperror.NewValidation("category does not exist", nil)
	}
	return fmt.Errorf("%s: %w", op, err)
}
