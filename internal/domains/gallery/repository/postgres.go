package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"kuai-backend/internal/domains/gallery"
	"kuai-backend/internal/infrastructure/database"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/query"
)

const categoryColumns = `c.id, c.name, c.description, c.display_order, c.is_active, c.created_at, c.updated_at,
	(SELECT COUNT(*) FROM gallery_images i WHERE i.category_id = c.id AND i.is_active) AS images_count`

const imageColumns = `i.id, i.title, i.description, i.image, i.image_variants, i.category_id, c.name AS category_name,
	i.photographer, i.event_name, i.date_taken, i.tags, i.display_order, i.is_active, i.is_featured,
	i.created_at, i.updated_at`

const imageFrom = `gallery_images i LEFT JOIN gallery_categories c ON c.id = i.category_id`

const imageDefaultOrder = ` ORDER BY i.display_order ASC, i.date_taken DESC`

var (
	categoryOrdering = query.Ordering{
		Allowed: map[string]string{"order": "c.display_order", "name": "c.name"},
		Default: []string{"order", "name"},
	}
	imageOrdering = query.Ordering{
		Allowed: map[string]string{"order": "i.display_order", "date_taken": "i.date_taken", "created_at": "i.created_at"},
		Default: []string{"order", "-date_taken"},
	}
)

type postgresRepository struct {
	db database.DBTX
}

func NewPostgresRepository(db database.DBTX) gallery.Repository {
	return &postgresRepository{db: db}
}

// =====================================================
// CATEGORIES
// =====================================================

func (r *postgresRepository) ListCategories(ctx context.Context, p query.ListParams) ([]*gallery.Category, int, error) {
	where, args := query.NewBuilder().
		Where("c.is_active = TRUE").
		Search(p.Search, "c.name", "c.description").
		SQL(1)
	return database.SelectPage[gallery.Category](ctx, r.db, categoryColumns, "gallery_categories c", where, args,
		categoryOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) ListActiveCategories(ctx context.Context) ([]*gallery.Category, error) {
	return database.SelectAll[gallery.Category](ctx, r.db,
		`SELECT `+categoryColumns+` FROM gallery_categories c WHERE c.is_active = TRUE ORDER BY c.display_order ASC, c.name ASC`)
}

func (r *postgresRepository) InsertCategory(ctx context.Context, c *gallery.Category) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO gallery_categories (name, description, display_order, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		c.Name, c.Description, c.Order, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if database.IsUniqueOn(err, "gallery_categories_name_key") {
			return apperror.NewConflict(apperror.CodeConflict, "category name already exists", err)
		}
		return fmt.Errorf("insert gallery category: %w", err)
	}
	return nil
}

// =====================================================
// IMAGES
// =====================================================

func (r *postgresRepository) ListImages(ctx context.Context, p query.ListParams, f gallery.ImageFilter) ([]*gallery.Image, int, error) {
	b := query.NewBuilder().
		Where("i.is_active = TRUE").
		Search(p.Search, "i.title", "i.description", "array_to_string(i.tags, ' ')", "i.event_name")
	query.Eq(b, "i.category_id", f.CategoryID)
	query.Eq(b, "i.is_featured", f.IsFeatured)
	query.Eq(b, "i.event_name", f.EventName)

	where, args := b.SQL(1)
	return database.SelectPage[gallery.Image](ctx, r.db, imageColumns, imageFrom, where, args,
		imageOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) ListFeatured(ctx context.Context, limit int) ([]*gallery.Image, error) {
	return database.SelectAll[gallery.Image](ctx, r.db,
		`SELECT `+imageColumns+` FROM `+imageFrom+`
		WHERE i.is_active = TRUE AND i.is_featured = TRUE`+imageDefaultOrder+` LIMIT $1`, limit)
}

func (r *postgresRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID, limit int) ([]*gallery.Image, error) {
	return database.SelectAll[gallery.Image](ctx, r.db,
		`SELECT `+imageColumns+` FROM `+imageFrom+`
		WHERE i.is_active = TRUE AND i.category_id = $1`+imageDefaultOrder+` LIMIT $2`, categoryID, limit)
}

func (r *postgresRepository) GetImageByID(ctx context.Context, id uuid.UUID, activeOnly bool) (*gallery.Image, error) {
	sql := `SELECT ` + imageColumns + ` FROM ` + imageFrom + ` WHERE i.id = $1`
	if activeOnly {
		sql += ` AND i.is_active = TRUE`
	}
	img, err := database.SelectOne[gallery.Image](ctx, r.db, sql, id)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Gallery image not found.")
	}
	return img, err
}

func (r *postgresRepository) InsertImage(ctx context.Context, img *gallery.Image) error {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO gallery_images (
			title, description, image, image_variants, category_id, photographer, event_name,
			date_taken, tags, display_order, is_active, is_featured
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		img.Title, img.Description, img.Image, img.ImageVariants, img.CategoryID, img.Photographer, img.EventName,
		img.DateTaken, img.Tags, img.Order, img.IsActive, img.IsFeatured,
	).Scan(&id)
	if err != nil {
		return mapWriteErr(err, "insert gallery image")
	}
	return r.reload(ctx, id, img)
}

func (r *postgresRepository) UpdateImage(ctx context.Context, img *gallery.Image) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE gallery_images SET
			title = $2, description = $3, image = $4, image_variants = $5, category_id = $6,
			photographer = $7, event_name = $8, date_taken = $9, tags = $10, display_order = $11,
			is_active = $12, is_featured = $13, updated_at = NOW()
		WHERE id = $1`,
		img.ID, img.Title, img.Description, img.Image, img.ImageVariants, img.CategoryID,
		img.Photographer, img.EventName, img.DateTaken, img.Tags, img.Order,
		img.IsActive, img.IsFeatured,
	)
	if err != nil {
		return mapWriteErr(err, "update gallery image")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("Gallery image not found.")
	}
	return r.reload(ctx, img.ID, img)
}

func (r *postgresRepository) DeleteImage(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gallery image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("Gallery image not found.")
	}
	return nil
}

func (r *postgresRepository) reload(ctx context.Context, id uuid.UUID, dst *gallery.Image) error {
	row, err := r.GetImageByID(ctx, id, false)
	if err != nil {
		return err
	}
	*dst = *row
	return nil
}

func mapWriteErr(err error, op string) error {
	if database.IsForeignKeyViolation(err) {
		return apperror.NewValidation("category does not exist", nil)
	}
	return fmt.Errorf("%s: %w", op, err)
}
