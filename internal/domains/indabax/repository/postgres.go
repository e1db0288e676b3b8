package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"kuai-backend/internal/domains/indabax"
	"kuai-backend/internal/infrastructure/database"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/lifecycle"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/singleton"
	"kuai-backend/pkg/cache"
	pkgdb "kuai-backend/pkg/database"
)

const cacheKeySettings = "indabax:settings:current"

const settingsColumns = `id, site_name, tagline, logo, about_title, about_description, about_image,
	vision_title, vision_description, mission_title, mission_description, vision_mission_image,
	contact_email, contact_phone, location,
	facebook_url, twitter_url, instagram_url, linkedin_url, youtube_url,
	created_at, updated_at`

const eventColumns = `e.id, e.title, e.slug, e.description, e.theme, e.image, e.date, e.end_date, e.time,
	e.location, e.venue, e.registration_url, e.registration_deadline, e.max_participants,
	e.is_published, e.is_featured, e.created_at, e.updated_at,
	(SELECT COUNT(*) FROM indabax_speakers s WHERE s.event_id = e.id AND s.is_active) AS speakers_count,
	(SELECT COUNT(*) FROM indabax_sessions ss WHERE ss.event_id = e.id AND ss.is_active) AS sessions_count`

const speakerColumns = `s.id, s.name, s.title, s.organization, s.bio, s.photo, s.event_id, e.title AS event_title,
	s.linkedin_url, s.twitter_url, s.website_url, s.display_order, s.is_active, s.is_keynote,
	s.created_at, s.updated_at`

const speakerFrom = `indabax_speakers s LEFT JOIN indabax_events e ON e.id = s.event_id`

const sessionColumns = `ss.id, ss.title, ss.description, ss.session_type, ss.event_id, e.title AS event_title,
	ss.speaker_id, sp.name AS speaker_name, ss.date, ss.start_time, ss.end_time, ss.room,
	ss.slides_url, ss.video_url, ss.display_order, ss.is_active, ss.created_at, ss.updated_at`

const sessionFrom = `indabax_sessions ss
	JOIN indabax_events e ON e.id = ss.event_id
	LEFT JOIN indabax_speakers sp ON sp.id = ss.speaker_id`

const galleryColumns = `g.id, g.title, g.description, g.image, g.image_variants, g.event_id, e.title AS event_title,
	g.display_order, g.is_active, g.date_taken, g.created_at, g.updated_at`

const galleryFrom = `indabax_gallery g LEFT JOIN indabax_events e ON e.id = g.event_id`

const heroColumns = `id, title, description, image, is_active, created_at, updated_at`

const leaderColumns = `id, name, role, profile_image, bio, course, start_year, end_year,
	linkedin, twitter, github, email, created_at, updated_at`

const resourceColumns = `id, title, description, resource_type, url, file, image, uploaded_by, date_added, is_published`

var (
	settingsOrdering = query.Ordering{
		Allowed: map[string]string{"created_at": "created_at"},
		Default: []string{"created_at"},
	}
	eventOrdering = query.Ordering{
		Allowed: map[string]string{"date": "e.date", "created_at": "e.created_at"},
		Default: []string{"-date"},
	}
	speakerOrdering = query.Ordering{
		Allowed: map[string]string{"order": "s.display_order", "name": "s.name"},
		Default: []string{"order", "name"},
	}
	sessionOrdering = query.Ordering{
		Allowed: map[string]string{"date": "ss.date", "start_time": "ss.start_time", "order": "ss.display_order"},
		Default: []string{"date", "start_time", "order"},
	}
	galleryOrdering = query.Ordering{
		Allowed: map[string]string{"order": "g.display_order", "date_taken": "g.date_taken"},
		Default: []string{"order", "-date_taken"},
	}
	heroOrdering = query.Ordering{
		Allowed: map[string]string{"created_at": "created_at", "is_active": "is_active"},
		Default: []string{"-is_active", "-created_at"},
	}
	leaderOrdering = query.Ordering{
		Allowed: map[string]string{
			"start_year": "start_year",
			"end_year":   "end_year",
			"name":       "name",
			"role":       "role",
		},
		Default: []string{"-start_year", "-end_year", "name"},
	}
	resourceOrdering = query.Ordering{
		Allowed: map[string]string{"date_added": "date_added", "title": "title"},
		Default: []string{"-date_added"},
	}
)

type postgresRepository struct {
	db       database.TxStarter
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewPostgresRepository(db database.TxStarter, c cache.Cache, cacheTTL time.Duration) indabax.Repository {
	return &postgresRepository{db: db, cache: c, cacheTTL: cacheTTL}
}

// =====================================================
// SETTINGS
// =====================================================

func (r *postgresRepository) SettingsExists(ctx context.Context) (bool, error) {
	return database.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM indabax_settings)`)
}

func (r *postgresRepository) CurrentSettings(ctx context.Context) (*indabax.Settings, error) {
	return cache.Remember(ctx, r.cache, cacheKeySettings, r.cacheTTL, func(ctx context.Context) (*indabax.Settings, error) {
		s, err := database.SelectOne[indabax.Settings](ctx, r.db,
			`SELECT `+settingsColumns+` FROM indabax_settings ORDER BY created_at LIMIT 1`)
		if database.IsNoRows(err) {
			return nil, nil
		}
		return s, err
	})
}

func (r *postgresRepository) ListSettings(ctx context.Context, p query.ListParams) ([]*indabax.Settings, int, error) {
	return database.SelectPage[indabax.Settings](ctx, r.db, settingsColumns, "indabax_settings", "", nil,
		settingsOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) GetSettingsByID(ctx context.Context, id uuid.UUID) (*indabax.Settings, error) {
	s, err := database.SelectOne[indabax.Settings](ctx, r.db,
		`SELECT `+settingsColumns+` FROM indabax_settings WHERE id = $1`, id)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Indabax settings not found.")
	}
	return s, err
}

func (r *postgresRepository) InsertSettings(ctx context.Context, s *indabax.Settings) error {
	row, err := database.SelectOne[indabax.Settings](ctx, r.db, `
		INSERT INTO indabax_settings (
			site_name, tagline, logo, about_title, about_description, about_image,
			vision_title, vision_description, mission_title, mission_description, vision_mission_image,
			contact_email, contact_phone, location,
			facebook_url, twitter_url, instagram_url, linkedin_url, youtube_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING `+settingsColumns,
		s.SiteName, s.Tagline, s.Logo, s.AboutTitle, s.AboutDescription, s.AboutImage,
		s.VisionTitle, s.VisionDescription, s.MissionTitle, s.MissionDescription, s.VisionMissionImage,
		s.ContactEmail, s.ContactPhone, s.Location,
		s.FacebookURL, s.TwitterURL, s.InstagramURL, s.LinkedinURL, s.YoutubeURL,
	)
	if err != nil {
		return singleton.InsertError(err, "indabax_settings_singleton_key", "insert indabax settings")
	}

	*s = *row
	cache.Forget(ctx, r.cache, cacheKeySettings)
	return nil
}

func (r *postgresRepository) UpdateSettings(ctx context.Context, s *indabax.Settings) error {
	row, err := database.SelectOne[indabax.Settings](ctx, r.db, `
		UPDATE indabax_settings SET
			site_name = $2, tagline = $3, logo = $4,
			about_title = $5, about_description = $6, about_image = $7,
			vision_title = $8, vision_description = $9, mission_title = $10, mission_description = $11,
			vision_mission_image = $12, contact_email = $13, contact_phone = $14, location = $15,
			facebook_url = $16, twitter_url = $17, instagram_url = $18, linkedin_url = $19, youtube_url = $20,
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+settingsColumns,
		s.ID, s.SiteName, s.Tagline, s.Logo, s.AboutTitle, s.AboutDescription, s.AboutImage,
		s.VisionTitle, s.VisionDescription, s.MissionTitle, s.MissionDescription, s.VisionMissionImage,
		s.ContactEmail, s.ContactPhone, s.Location,
		s.FacebookURL, s.TwitterURL, s.InstagramURL, s.LinkedinURL, s.YoutubeURL,
	)
	if database.IsNoRows(err) {
		return apperror.NewNotFound("Indabax settings not found.")
	}
	if err != nil {
		return fmt.Errorf("update indabax settings: %w", err)
	}

	*s = *row
	cache.Forget(ctx, r.cache, cacheKeySettings)
	return nil
}

// =====================================================
// EVENTS
// =====================================================

func (r *postgresRepository) ListEvents(ctx context.Context, p query.ListParams, f indabax.EventFilter) ([]*indabax.Event, int, error) {
	b := query.NewBuilder().
		Where("e.is_published = TRUE").
		Search(p.Search, "e.title", "e.description", "e.theme", "e.location")
	query.Eq(b, "e.is_featured", f.IsFeatured)
	query.Eq(b, "e.date", f.Date)

	where, args := b.SQL(1)
	return database.SelectPage[indabax.Event](ctx, r.db, eventColumns, "indabax_events e", where, args,
		eventOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) LatestEvent(ctx context.Context) (*indabax.Event, error) {
	e, err := database.SelectOne[indabax.Event](ctx, r.db,
		`SELECT `+eventColumns+` FROM indabax_events e WHERE e.is_published = TRUE ORDER BY e.date DESC LIMIT 1`)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("No events found.")
	}
	return e, err
}

func (r *postgresRepository) GetEventBySlug(ctx context.Context, slug string) (*indabax.Event, error) {
	e, err := database.SelectOne[indabax.Event](ctx, r.db,
		`SELECT `+eventColumns+` FROM indabax_events e WHERE e.slug = $1 AND e.is_published = TRUE`, slug)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Indabax event not found.")
	}
	return e, err
}

func (r *postgresRepository) GetEventByID(ctx context.Context, id uuid.UUID) (*indabax.Event, error) {
	e, err := database.SelectOne[indabax.Event](ctx, r.db,
		`SELECT `+eventColumns+` FROM indabax_events e WHERE e.id = $1`, id)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Indabax event not found.")
	}
	return e, err
}

func (r *postgresRepository) InsertEvent(ctx context.Context, e *indabax.Event) error {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO indabax_events (
			title, slug, description, theme, image, date, end_date, time, location, venue,
			registration_url, registration_deadline, max_participants, is_published, is_featured
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id`,
		e.Title, e.Slug, e.Description, e.Theme, e.Image, e.Date, e.EndDate, e.Time, e.Location, e.Venue,
		e.RegistrationURL, e.RegistrationDeadline, e.MaxParticipants, e.IsPublished, e.IsFeatured,
	).Scan(&id)
	if err != nil {
		return mapEventWriteErr(err, e.Slug, "insert indabax event")
	}
	return r.reloadEvent(ctx, id, e)
}

func (r *postgresRepository) UpdateEvent(ctx context.Context, e *indabax.Event) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE indabax_events SET
			title = $2, slug = $3, description = $4, theme = $5, image = $6,
			date = $7, end_date = $8, time = $9, location = $10, venue = $11,
			registration_url = $12, registration_deadline = $13, max_participants = $14,
			is_published = $15, is_featured = $16, updated_at = NOW()
		WHERE id = $1`,
		e.ID, e.Title, e.Slug, e.Description, e.Theme, e.Image,
		e.Date, e.EndDate, e.Time, e.Location, e.Venue,
		e.RegistrationURL, e.RegistrationDeadline, e.MaxParticipants,
		e.IsPublished, e.IsFeatured,
	)
	if err != nil {
		return mapEventWriteErr(err, e.Slug, "update indabax event")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("Indabax event not found.")
	}
	return r.reloadEvent(ctx, e.ID, e)
}

func (r *postgresRepository) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM indabax_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete indabax event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("Indabax event not found.")
	}
	return nil
}

func (r *postgresRepository) ListPublishedEvents(ctx context.Context) ([]*indabax.Event, error) {
	return database.SelectAll[indabax.Event](ctx, r.db,
		`SELECT `+eventColumns+` FROM indabax_events e WHERE e.is_published = TRUE ORDER BY e.date DESC`)
}

func (r *postgresRepository) reloadEvent(ctx context.Context, id uuid.UUID, dst *indabax.Event) error {
	e, err := r.GetEventByID(ctx, id)
	if err != nil {
		return err
	}
	*dst = *e
	return nil
}

func mapEventWriteErr(err error, slug, op string) error {
	if database.IsUniqueOn(err, "indabax_events_slug_key") {
		return apperror.NewSlugTaken(slug, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// =====================================================
// SPEAKERS
// =====================================================

func (r *postgresRepository) ListSpeakers(ctx context.Context, p query.ListParams, f indabax.SpeakerFilter) ([]*indabax.Speaker, int, error) {
	b := query.NewBuilder().
		Where("s.is_active = TRUE").
		Search(p.Search, "s.name", "s.title", "s.organization", "s.bio")
	query.Eq(b, "s.event_id", f.EventID)
	query.Eq(b, "s.is_keynote", f.IsKeynote)

	where, args := b.SQL(1)
	return database.SelectPage[indabax.Speaker](ctx, r.db, speakerColumns, speakerFrom, where, args,
		speakerOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) ListKeynoteSpeakers(ctx context.Context) ([]*indabax.Speaker, error) {
	return database.SelectAll[indabax.Speaker](ctx, r.db,
		`SELECT `+speakerColumns+` FROM `+speakerFrom+`
		WHERE s.is_active = TRUE AND s.is_keynote = TRUE
		ORDER BY s.display_order ASC, s.name ASC`)
}

func (r *postgresRepository) ListEventSpeakers(ctx context.Context, eventID uuid.UUID) ([]*indabax.Speaker, error) {
	return database.SelectAll[indabax.Speaker](ctx, r.db,
		`SELECT `+speakerColumns+` FROM `+speakerFrom+`
		WHERE s.event_id = $1 AND s.is_active = TRUE
		ORDER BY s.display_order ASC, s.name ASC`, eventID)
}

func (r *postgresRepository) GetSpeaker(ctx context.Context, id uuid.UUID) (*indabax.Speaker, error) {
	s, err := database.SelectOne[indabax.Speaker](ctx, r.db,
		`SELECT `+speakerColumns+` FROM `+speakerFrom+` WHERE s.id = $1 AND s.is_active = TRUE`, id)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Speaker not found.")
	}
	return s, err
}

// =====================================================
// SESSIONS
// =====================================================

func (r *postgresRepository) ListSessions(ctx context.Context, p query.ListParams, f indabax.SessionFilter) ([]*indabax.Session, int, error) {
	b := query.NewBuilder().
		Where("ss.is_active = TRUE").
		Search(p.Search, "ss.title", "ss.description", "ss.room")
	query.Eq(b, "ss.event_id", f.EventID)
	query.Eq(b, "ss.session_type", f.SessionType)
	query.Eq(b, "ss.speaker_id", f.SpeakerID)
	query.Eq(b, "ss.date", f.Date)

	where, args := b.SQL(1)
	return database.SelectPage[indabax.Session](ctx, r.db, sessionColumns, sessionFrom, where, args,
		sessionOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) ListEventSessions(ctx context.Context, eventID uuid.UUID) ([]*indabax.Session, error) {
	return database.SelectAll[indabax.Session](ctx, r.db,
		`SELECT `+sessionColumns+` FROM `+sessionFrom+`
		WHERE ss.event_id = $1 AND ss.is_active = TRUE
		ORDER BY ss.date ASC, ss.start_time ASC, ss.display_order ASC`, eventID)
}

func (r *postgresRepository) GetSession(ctx context.Context, id uuid.UUID) (*indabax.Session, error) {
	s, err := database.SelectOne[indabax.Session](ctx, r.db,
		`SELECT `+sessionColumns+` FROM `+sessionFrom+` WHERE ss.id = $1 AND ss.is_active = TRUE`, id)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Session not found.")
	}
	return s, err
}

// =====================================================
// GALLERY
// =====================================================

func (r *postgresRepository) ListGallery(ctx context.Context, p query.ListParams, eventID *uuid.UUID) ([]*indabax.GalleryItem, int, error) {
	b := query.NewBuilder().
		Where("g.is_active = TRUE").
		Search(p.Search, "g.title", "g.description")
	query.Eq(b, "g.event_id", eventID)

	where, args := b.SQL(1)
	return database.SelectPage[indabax.GalleryItem](ctx, r.db, galleryColumns, galleryFrom, where, args,
		galleryOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) GetGalleryItem(ctx context.Context, id uuid.UUID) (*indabax.GalleryItem, error) {
	g, err := database.SelectOne[indabax.GalleryItem](ctx, r.db,
		`SELECT `+galleryColumns+` FROM `+galleryFrom+` WHERE g.id = $1 AND g.is_active = TRUE`, id)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Gallery image not found.")
	}
	return g, err
}

// =====================================================
// HERO
// =====================================================

func (r *postgresRepository) ListHeroes(ctx context.Context, p query.ListParams) ([]*indabax.Hero, int, error) {
	return database.SelectPage[indabax.Hero](ctx, r.db, heroColumns, "indabax_hero_sections", "", nil,
		heroOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) GetHero(ctx context.Context, id uuid.UUID) (*indabax.Hero, error) {
	h, err := database.SelectOne[indabax.Hero](ctx, r.db,
		`SELECT `+heroColumns+` FROM indabax_hero_sections WHERE id = $1`, id)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Hero section not found.")
	}
	return h, err
}

func (r *postgresRepository) SaveHero(ctx context.Context, h *indabax.Hero) error {
	saved, err := pkgdb.WithTransactionResult(ctx, r.db, func(tx pgx.Tx) (*indabax.Hero, error) {
		if h.IsActive {
			if _, err := tx.Exec(ctx, `
				UPDATE indabax_hero_sections SET is_active = FALSE, updated_at = NOW()
				WHERE is_active AND id <> $1`, h.ID); err != nil {
				return nil, fmt.Errorf("deactivate hero sections: %w", err)
			}
		}

		if h.ID == uuid.Nil {
			return database.SelectOne[indabax.Hero](ctx, tx, `
				INSERT INTO indabax_hero_sections (title, description, image, is_active)
				VALUES ($1, $2, $3, $4)
				RETURNING `+heroColumns,
				h.Title, h.Description, h.Image, h.IsActive)
		}

		row, err := database.SelectOne[indabax.Hero](ctx, tx, `
			UPDATE indabax_hero_sections SET
				title = $2, description = $3, image = $4, is_active = $5, updated_at = NOW()
			WHERE id = $1
			RETURNING `+heroColumns,
			h.ID, h.Title, h.Description, h.Image, h.IsActive)
		if database.IsNoRows(err) {
			return nil, apperror.NewNotFound("Hero section not found.")
		}
		return row, err
	})
	if err != nil {
		// hai request cùng activate: request thua chạm partial unique index
		if database.IsUniqueOn(err, "idx_indabax_hero_one_active") {
			return apperror.NewConflict(apperror.CodeConflict, "another hero section was activated concurrently", err)
		}
		if apperror.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("save hero section: %w", err)
	}

	*h = *saved
	return nil
}

// =====================================================
// LEADERS
// =====================================================

func (r *postgresRepository) ListLeaders(ctx context.Context, p query.ListParams, f indabax.LeaderFilter, now time.Time) ([]*indabax.Leader, int, error) {
	b := query.NewBuilder().
		Search(p.Search, "name", "role", "bio", "course")
	query.Eq(b, "role", f.Role)
	query.Eq(b, "start_year", f.StartYear)
	query.Eq(b, "end_year", f.EndYear)
	if f.Roster != nil {
		if clause, args, ok := lifecycle.RosterFilter(*f.Roster, "end_year", now); ok {
			b.Where(clause, args...)
		}
	}

	where, args := b.SQL(1)
	return database.SelectPage[indabax.Leader](ctx, r.db, leaderColumns, "indabax_leaders", where, args,
		leaderOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) ListArchivedLeaders(ctx context.Context, now time.Time) ([]*indabax.Leader, error) {
	clause, args := lifecycle.ArchivedFilter("end_year", now)
	return database.SelectAll[indabax.Leader](ctx, r.db,
		`SELECT `+leaderColumns+` FROM indabax_leaders WHERE `+query.Rebind(clause, 1)+`
		ORDER BY start_year DESC, name ASC`, args...)
}

func (r *postgresRepository) GetLeader(ctx context.Context, id uuid.UUID) (*indabax.Leader, error) {
	l, err := database.SelectOne[indabax.Leader](ctx, r.db,
		`SELECT `+leaderColumns+` FROM indabax_leaders WHERE id = $1`, id)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Leader not found.")
	}
	return l, err
}

func (r *postgresRepository) InsertLeader(ctx context.Context, l *indabax.Leader) error {
	row, err := database.SelectOne[indabax.Leader](ctx, r.db, `
		INSERT INTO indabax_leaders (
			name, role, profile_image, bio, course, start_year, end_year, linkedin, twitter, github, email
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+leaderColumns,
		l.Name, l.Role, l.ProfileImage, l.Bio, l.Course, l.StartYear, l.EndYear,
		l.Linkedin, l.Twitter, l.Github, l.Email,
	)
	if err != nil {
		return fmt.Errorf("insert leader: %w", err)
	}
	*l = *row
	return nil
}

func (r *postgresRepository) UpdateLeader(ctx context.Context, l *indabax.Leader) error {
	row, err := database.SelectOne[indabax.Leader](ctx, r.db, `
		UPDATE indabax_leaders SET
			name = $2, role = $3, profile_image = $4, bio = $5, course = $6,
			start_year = $7, end_year = $8, linkedin = $9, twitter = $10, github = $11, email = $12,
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+leaderColumns,
		l.ID, l.Name, l.Role, l.ProfileImage, l.Bio, l.Course,
		l.StartYear, l.EndYear, l.Linkedin, l.Twitter, l.Github, l.Email,
	)
	if database.IsNoRows(err) {
		return apperror.NewNotFound("Leader not found.")
	}
	if err != nil {
		return fmt.Errorf("update leader: %w", err)
	}
	*l = *row
	return nil
}

func (r *postgresRepository) DeleteLeader(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM indabax_leaders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete leader: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("Leader not found.")
	}
	return nil
}

// =====================================================
// RESOURCES
// =====================================================

func (r *postgresRepository) ListResources(ctx context.Context, p query.ListParams, resourceType *string) ([]*indabax.Resource, int, error) {
	b := query.NewBuilder().
		Where("is_published = TRUE").
		Search(p.Search, "title", "description")
	query.Eq(b, "resource_type", resourceType)

	where, args := b.SQL(1)
	return database.SelectPage[indabax.Resource](ctx, r.db, resourceColumns, "indabax_resources", where, args,
		resourceOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}
