package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kuai-backend/internal/domains/team"
	"kuai-backend/internal/infrastructure/database"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/lifecycle"
	"kuai-backend/internal/shared/query"
)

const roleColumns = `r.id, r.name, r.description, r.display_order, r.is_active, r.created_at, r.updated_at`

const memberColumns = `m.id, m.name, m.role_id, r.name AS role_name, m.title, m.bio, m.photo, m.photo_variants,
	m.email, m.phone, m.linkedin_url, m.twitter_url, m.github_url, m.website_url,
	m.display_order, m.is_active, m.is_executive, m.joined_date, m.start_year, m.end_year,
	m.created_at, m.updated_at`

const memberFrom = `team_members m LEFT JOIN team_roles r ON r.id = m.role_id`

const memberDefaultOrder = ` ORDER BY m.display_order ASC, m.name ASC`

var (
	roleOrdering = query.Ordering{
		Allowed: map[string]string{"order": "r.display_order", "name": "r.name"},
		Default: []string{"order", "name"},
	}
	memberOrdering = query.Ordering{
		Allowed: map[string]string{
			"order":       "m.display_order",
			"name":        "m.name",
			"joined_date": "m.joined_date",
			"start_year":  "m.start_year",
		},
		Default: []string{"order", "name"},
	}
)

type postgresRepository struct {
	db database.DBTX
}

func NewPostgresRepository(db database.DBTX) team.Repository {
	return &postgresRepository{db: db}
}

// =====================================================
// ROLES
// =====================================================

func (r *postgresRepository) ListRoles(ctx context.Context, p query.ListParams) ([]*team.Role, int, error) {
	where, args := query.NewBuilder().
		Where("r.is_active = TRUE").
		Search(p.Search, "r.name", "r.description").
		SQL(1)
	return database.SelectPage[team.Role](ctx, r.db, roleColumns, "team_roles r", where, args,
		roleOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) ListActiveRoles(ctx context.Context) ([]*team.Role, error) {
	return database.SelectAll[team.Role](ctx, r.db,
		`SELECT `+roleColumns+` FROM team_roles r WHERE r.is_active = TRUE ORDER BY r.display_order ASC, r.name ASC`)
}

func (r *postgresRepository) InsertRole(ctx context.Context, role *team.Role) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO team_roles (name, description, display_order, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`,
		role.Name, role.Description, role.Order, role.IsActive,
	).Scan(&role.ID, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if database.IsUniqueOn(err, "team_roles_name_key") {
			return apperror.NewConflict(apperror.CodeConflict, "role name already exists", err)
		}
		return fmt.Errorf("insert team role: %w", err)
	}
	return nil
}

// =====================================================
// MEMBERS
// =====================================================

func (r *postgresRepository) ListMembers(ctx context.Context, p query.ListParams, f team.MemberFilter, now time.Time) ([]*team.Member, int, error) {
	b := query.NewBuilder().
		Where("m.is_active = TRUE").
		Search(p.Search, "m.name", "m.title", "m.bio")
	query.Eq(b, "m.role_id", f.RoleID)
	query.Eq(b, "m.is_executive", f.IsExecutive)
	query.Eq(b, "m.start_year", f.StartYear)
	if f.Roster != nil {
		if clause, args, ok := lifecycle.RosterFilter(*f.Roster, "m.end_year", now); ok {
			b.Where(clause, args...)
		}
	}

	where, args := b.SQL(1)
	return database.SelectPage[team.Member](ctx, r.db, memberColumns, memberFrom, where, args,
		memberOrdering.Clause(p.Ordering), p.Limit(), p.Offset())
}

func (r *postgresRepository) ListExecutive(ctx context.Context) ([]*team.Member, error) {
	return database.SelectAll[team.Member](ctx, r.db,
		`SELECT `+memberColumns+` FROM `+memberFrom+`
		WHERE m.is_active = TRUE AND m.is_executive = TRUE`+memberDefaultOrder)
}

func (r *postgresRepository) ListActiveMembers(ctx context.Context) ([]*team.Member, error) {
	return database.SelectAll[team.Member](ctx, r.db,
		`SELECT `+memberColumns+` FROM `+memberFrom+` WHERE m.is_active = TRUE`+memberDefaultOrder)
}

func (r *postgresRepository) GetMemberByID(ctx context.Context, id uuid.UUID, activeOnly bool) (*team.Member, error) {
	sql := `SELECT ` + memberColumns + ` FROM ` + memberFrom + ` WHERE m.id = $1`
	if activeOnly {
		sql += ` AND m.is_active = TRUE`
	}
	m, err := database.SelectOne[team.Member](ctx, r.db, sql, id)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Team member not found.")
	}
	return m, err
}

func (r *postgresRepository) InsertMember(ctx context.Context, m *team.Member) error {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO team_members (
			name, role_id, title, bio, photo, photo_variants, email, phone,
			linkedin_url, twitter_url, github_url, website_url,
			display_order, is_active, is_executive, joined_date, start_year, end_year
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id`,
		m.Name, m.RoleID, m.Title, m.Bio, m.Photo, m.PhotoVariants, m.Email, m.Phone,
		m.LinkedinURL, m.TwitterURL, m.GithubURL, m.WebsiteURL,
		m.Order, m.IsActive, m.IsExecutive, m.JoinedDate, m.StartYear, m.EndYear,
	).Scan(&id)
	if err != nil {
		return mapWriteErr(err, "insert team member")
	}
	return r.reload(ctx, id, m)
}

func (r *postgresRepository) UpdateMember(ctx context.Context, m *team.Member) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE team_members SET
			name = $2, role_id = $3, title = $4, bio = $5, photo = $6, photo_variants = $7,
			email = $8, phone = $9, linkedin_url = $10, twitter_url = $11, github_url = $12,
			website_url = $13, display_order = $14, is_active = $15, is_executive = $16,
			joined_date = $17, start_year = $18, end_year = $19, updated_at = NOW()
		WHERE id = $1`,
		m.ID, m.Name, m.RoleID, m.Title, m.Bio, m.Photo, m.PhotoVariants,
		m.Email, m.Phone, m.LinkedinURL, m.TwitterURL, m.GithubURL,
		m.WebsiteURL, m.Order, m.IsActive, m.IsExecutive,
		m.JoinedDate, m.StartYear, m.EndYear,
	)
	if err != nil {
		return mapWriteErr(err, "update team member")
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("Team member not found.")
	}
	return r.reload(ctx, m.ID, m)
}

func (r *postgresRepository) DeleteMember(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("Team member not found.")
	}
	return nil
}

func (r *postgresRepository) reload(ctx context.Context, id uuid.UUID, dst *team.Member) error {
	row, err := r.GetMemberByID(ctx, id, false)
	if err != nil {
		return err
	}
	*dst = *row
	return nil
}

func mapWriteErr(err error, op string) error {
	if database.IsForeignKeyViolation(err) {
		return apperror.NewValidation("role does not exist", nil)
	}
	return fmt.Errorf("%s: %w", op, err)
}
