package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"kuai-backend/internal/domains/partners"
	"kuai-backend/internal/infrastructure/database"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/query"
)

const categoryColumns = `c.id, c.name, c.category_type, c.description, c.display_order, c.is_active, c.created_at, c.updated_at,
	(SELECT COUNT(*) FROM partners p WHERE p.category_id = c.id AND p.is_active) AS partners_count`

const partnerColumns = `p.id, p.name, p.description, p.logo, p.logo_variants, p.category_id,
	c.name AS category_name, c.category_type, p.website_url, p.partnership_level, p.partnership_since,
	p.display_order, p.is_active, p.is_featured, p.created_at, p.updated_at`

const partnerFrom = `partners p LEFT JOIN partner_categories c ON c.id = p.category_id`

const partnerDefaultOrder = ` ORDER BY p.display_order ASC, p.name ASC`

var (
	categoryOrdering = query.Ordering{
		Allowed: map[string]string{"order": "c.display_order", "name": "c.name"},
		Default: []string{"order", "name"},
	}
	partnerOrdering = query.Ordering{
		Allowed: map[string]string{"order": "p.display_order", "name": "p.name", "partnership_since": "p.partnership_since"},
		Default: []string{"order", "name"},
	}
)

type postgresRepository struct {
	db database.DBTX
}

func NewPostgresRepository(db database.DBTX) partners.Repository {
	return &postgresRepository{db: db}
}

// =====================================================
// CATEGORIES
// =====================================================

func (r *postgresRepository) ListCategories(ctx context.Context, p query.ListParams) ([]*partners.Category, int, error) {
	where, args := query.NewBuilder().
		Where("c.is_active = TRUE").
		Search(p.Search, "c.name", "c.description").
		SQL(1)
	return database.SelectPage[partners.Category](ctx, r.db, categoryColumns, "partner_categories c", where, args,
		categoryOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) ListActiveCategories(ctx context.Context) ([]*partners.Category, error) {
	return database.SelectAll[partners.Category](ctx, r.db,
		`SELECT `+categoryColumns+` FROM partner_categories c WHERE c.is_active = TRUE ORDER BY c.display_order ASC, c.name ASC`)
}

func (r *postgresRepository) InsertCategory(ctx context.Context, c *partners.Category) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO partner_categories (name, category_type, description, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		c.Name, string(c.CategoryType), c.Description, c.Order, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if database.IsUniqueOn(err, "partner_categories_name_key") {
			return apperror.NewConflict(apperror.CodeConflict, "category name already exists", err)
		}
		return fmt.Errorf("insert partner category: %w", err)
	}
	return nil
}

// =====================================================
// PARTNERS
// =====================================================

func (r *postgresRepository) ListPartners(ctx context.Context, p query.ListParams, f partners.PartnerFilter) ([]*partners.Partner, int, error) {
	b := query.NewBuilder().
		Where("p.is_active = TRUE").
		Search(p.Search, "p.name", "p.description", "p.partnership_level")
	query.Eq(b, "p.category_id", f.CategoryID)
	query.Eq(b, "p.is_featured", f.IsFeatured)

	where, args := b.SQL(1)
	return database.SelectPage[partners.Partner](ctx, r.db, partnerColumns, partnerFrom, where, args,
		partnerOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) ListFeatured(ctx context.Context) ([]*partners.Partner, error) {
	return database.SelectAll[partners.Partner](ctx, r.db,
		`SELECT `+partnerColumns+` FROM `+partnerFrom+`
		WHERE p.is_active = TRUE AND p.is_featured = TRUE`+partnerDefaultOrder)
}

func (r *postgresRepository) ListActivePartners(ctx context.Context) ([]*partners.Partner, error) {
	return database.SelectAll[partners.Partner](ctx, r.db,
		`SELECT `+partnerColumns+` FROM `+partnerFrom+` WHERE p.is_active = TRUE`+partnerDefaultOrder)
}

func (r *postgresRepository) GetPartnerByID(ctx context.Context, id uuid.UUID, activeOnly bool) (*partners.Partner, error) {
	sql := `SELECT ` + partnerColumns + ` FROM ` + partnerFrom + ` WHERE p.id = $1`
	if activeOnly {
		sql += ` AND p.is_active = TRUE`
	}
	p, err := database.SelectOne[partners.Partner](ctx, r.db, sql, id)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Partner not found.")
	}
	return p, err
}

func (r *postgresRepository) InsertPartner(ctx context.Context, p *partners.Partner) error {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO partners (
			name, description, logo, logo_variants, category_id, website_url,
			partnership_level, partnership_since, display_order, is_active, is_featured
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		p.Name, p.Description, p.Logo, p.LogoVariants, p.CategoryID, p.WebsiteURL,
		p.PartnershipLevel, p.PartnershipSince, p.Order, p.IsActive, p.IsFeatured,
	).Scan(&id)
	if err != nil {
		return mapWriteErr(err, "insert partner")
	}
	return r.reload(ctx, id, p)
}

func (r *postgresRepository) UpdatePartner(ctx context.Context, p *partners.Partner) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE partners SET
			name = $2, description = $3, logo = $4, logo_variants = $5, category_id = $6,
			website_url = $7, partnership_level = $8, partnership_since = $9, display_order = $10,
			is_active = $11, is_featured = $12, updated_at = NOW()
		WHERE id = $1`,
		p.ID, p.Name, p.Description, p.Logo, p.LogoVariants, p.CategoryID,
		p.WebsiteURL, p.PartnershipLevel, p.PartnershipSince, p.Order,
		p.IsActive, p.IsFeatured,
	)
	if err != nil {
		return mapWriteErr(err, "update partner")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("Partner not found.")
	}
	return r.reload(ctx, p.ID, p)
}

func (r *postgresRepository) DeletePartner(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete partner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("Partner not found.")
	}
	return nil
}

func (r *postgresRepository) reload(ctx context.Context, id uuid.UUID, dst *partners.Partner) error {
	row, err := r.GetPartnerByID(ctx, id, false)
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
