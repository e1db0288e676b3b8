package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"kuai-backend/internal/domains/events"
	"kuai-backend/internal/infrastructure/database"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/lifecycle"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/types"
)

const categoryColumns = `c.id, c.name, c.slug, c.icon, c.color, c.is_active, c.created_at, c.updated_at,
	(SELECT COUNT(*) FROM events e WHERE e.category_id = c.id AND e.is_published) AS events_count`

const eventColumns = `e.id, e.title, e.slug, e.description, e.image, e.image_variants,
	e.category_id, c.name AS category_name, e.date, e.time, e.end_date, e.location, e.venue_details,
	e.registration_link, e.registration_deadline, e.max_participants, e.status,
	e.is_published, e.is_featured, e.created_at, e.updated_at`

const eventFrom = `events e LEFT JOIN event_categories c ON c.id = e.category_id`

var (
	categoryOrdering = query.Ordering{
		Allowed: map[string]string{"name": "c.name", "created_at": "c.created_at"},
		Default: []string{"name"},
	}
	eventOrdering = query.Ordering{
		Allowed: map[string]string{"date": "e.date", "created_at": "e.created_at", "title": "e.title"},
		Default: []string{"-date"},
	}
)

type postgresRepository struct {
	db database.DBTX
}

func NewPostgresRepository(db database.DBTX) events.Repository {
	return &postgresRepository{db: db}
}

// =====================================================
// CATEGORIES
// =====================================================

func (r *postgresRepository) ListCategories(ctx context.Context, p query.ListParams) ([]*events.Category, int, error) {
	where, args := query.NewBuilder().
		Where("c.is_active = TRUE").
		Search(p.Search, "c.name").
		SQL(1)
	return database.SelectPage[events.Category](ctx, r.db, categoryColumns, "event_categories c", where, args,
		categoryOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) GetCategoryBySlug(ctx context.Context, slug string) (*events.Category, error) {
	c, err := database.SelectOne[events.Category](ctx, r.db,
		`SELECT `+categoryColumns+` FROM event_categories c WHERE c.slug = $1 AND c.is_active = TRUE`, slug)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Event category not found.")
	}
	return c, err
}

func (r *postgresRepository) InsertCategory(ctx context.Context, c *events.Category) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO event_categories (name, slug, icon, color, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		c.Name, c.Slug, c.Icon, c.Color, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		switch {
		case database.IsUniqueOn(err, "event_categories_slug_key"):
			return apperror.NewSlugTaken(c.Slug, err)
		case database.IsUniqueOn(err, "event_categories_name_key"):
			return apperror.NewConflict(apperror.CodeConflict, "category name already exists", err)
		}
		return fmt.Errorf("insert event category: %w", err)
	}
	return nil
}

// =====================================================
// EVENTS
// =====================================================

func (r *postgresRepository) ListEvents(ctx context.Context, p query.ListParams, f events.EventFilter, scope events.Scope, today types.Date) ([]*events.Event, int, error) {
	b := query.NewBuilder().
		Where("e.is_published = TRUE").
		Search(p.Search, "e.title", "e.description", "e.location")
	query.Eq(b, "e.category_id", f.CategoryID)
	query.Eq(b, "e.status", f.Status)
	query.Eq(b, "e.is_featured", f.IsFeatured)
	query.Eq(b, "e.date", f.Date)

	orderBy := eventOrdering.Clause(p.Ordering)
	limit, offset := p.Limit(), p.Offset()

	switch scope {
	case events.ScopeUpcoming:
		clause, args := lifecycle.UpcomingFilter("e.date", today)
		b.Where(clause, args...).Where("e.status = ?", string(lifecycle.EventUpcoming))
		orderBy = ` ORDER BY e.date ASC`
	case events.ScopePast:
		clause, args := lifecycle.PastFilter("e.date", today)
		b.Where(clause, args...)
		orderBy = ` ORDER BY e.date DESC`
	case events.ScopeFeatured:
		b.Where("e.is_featured = TRUE")
		orderBy = ` ORDER BY e.date DESC`
		limit, offset = events.FeaturedLimit, 0
	}

	where, args := b.SQL(1)
	items, total, err := database.SelectPage[events.Event](ctx, r.db, eventColumns, eventFrom, where, args, orderBy, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if scope == events.ScopeFeatured && total > events.FeaturedLimit {
		total = events.FeaturedLimit
	}
	return items, total, nil
}

func (r *postgresRepository) GetEventBySlug(ctx context.Context, slug string) (*events.Event, error) {
	e, err := database.SelectOne[events.Event](ctx, r.db,
		`SELECT `+eventColumns+` FROM `+eventFrom+` WHERE e.slug = $1 AND e.is_published = TRUE`, slug)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Event not found.")
	}
	return e, err
}

func (r *postgresRepository) GetEventByID(ctx context.Context, id uuid.UUID) (*events.Event, error) {
	e, err := database.SelectOne[events.Event](ctx, r.db,
		`SELECT `+eventColumns+` FROM `+eventFrom+` WHERE e.id = $1`, id)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Event not found.")
	}
	return e, err
}

func (r *postgresRepository) InsertEvent(ctx context.Context, e *events.Event) error {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO events (
			title, slug, description, image, image_variants, category_id, date, time, end_date,
			location, venue_details, registration_link, registration_deadline, max_participants,
			status, is_published, is_featured
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id`,
		e.Title, e.Slug, e.Description, e.Image, e.ImageVariants, e.CategoryID, e.Date, e.Time, e.EndDate,
		e.Location, e.VenueDetails, e.RegistrationLink, e.RegistrationDeadline, e.MaxParticipants,
		string(e.Status), e.IsPublished, e.IsFeatured,
	).Scan(&id)
	if err != nil {
		return mapWriteErr(err, e.Slug, "insert event")
	}
	return r.reload(ctx, id, e)
}

func (r *postgresRepository) UpdateEvent(ctx context.Context, e *events.Event) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE events SET
			title = $2, slug = $3, description = $4, image = $5, image_variants = $6, category_id = $7,
			date = $8, time = $9, end_date = $10, location = $11, venue_details = $12,
			registration_link = $13, registration_deadline = $14, max_participants = $15,
			status = $16, is_published = $17, is_featured = $18, updated_at = NOW()
		WHERE id = $1`,
		e.ID, e.Title, e.Slug, e.Description, e.Image, e.ImageVariants, e.CategoryID,
		e.Date, e.Time, e.EndDate, e.Location, e.VenueDetails,
		e.RegistrationLink, e.RegistrationDeadline, e.MaxParticipants,
		string(e.Status), e.IsPublished, e.IsFeatured,
	)
	if err != nil {
		return mapWriteErr(err, e.Slug, "update event")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("Event not found.")
	}
	return r.reload(ctx, e.ID, e)
}

func (r *postgresRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("Event not found.")
	}
	return nil
}

func (r *postgresRepository) ListPublished(ctx context.Context) ([]*events.Event, error) {
	return database.SelectAll[events.Event](ctx, r.db,
		`SELECT `+eventColumns+` FROM `+eventFrom+` WHERE e.is_published = TRUE`)
}

// MarkCompleted chỉ đổi row còn upcoming, chạy lại nhiều lần vẫn như nhau
func (r *postgresRepository) MarkCompleted(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.Exec(ctx, `
		UPDATE events SET status = $1, updated_at = NOW()
		WHERE id = ANY($2) AND status = $3`,
		string(lifecycle.EventCompleted), ids, string(lifecycle.EventUpcoming),
	)
	if err != nil {
		return fmt.Errorf("mark events completed: %w", err)
	}
	return nil
}

func (r *postgresRepository) PromotePast(ctx context.Context, today types.Date) (int64, error) {
	clause, args := lifecycle.PromotableFilter("status", "date", today)
	sql := query.Rebind(`UPDATE events SET status = ?, updated_at = NOW() WHERE `+clause, 1)

	tag, err := r.db.Exec(ctx, sql, append([]any{string(lifecycle.EventCompleted)}, args...)...)
	if err != nil {
		return 0, fmt.Errorf("promote past events: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *postgresRepository) reload(ctx context.Context, id uuid.UUID, dst *events.Event) error {
	row, err := r.GetEventByID(ctx, id)
	if err != nil {
		return err
	}
	*dst = *row
	return nil
}

func mapWriteErr(err error, slug, op string) error {
	if database.IsUniqueOn(err, "events_slug_key") {
		return apperror.NewSlugTaken(slug, err)
	}
	if database.IsForeignKeyViolation(err) {
		return apperror.NewValidation("category does not exist", nil)
	}
	return fmt.Errorf("%s: %w", op, err)
}
