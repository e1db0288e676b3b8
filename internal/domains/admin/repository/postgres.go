package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"kuai-backend/internal/domains/admin"
	"kuai-backend/internal/infrastructure/database"
	"kuai-backend/internal/shared/apperror"
)

const columns = `id, email, full_name, password_hash, is_active, last_login_at, created_at, updated_at`

type postgresRepository struct {
	db database.DBTX
}

func NewPostgresRepository(db database.DBTX) admin.Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	a, err := database.SelectOne[admin.Admin](ctx, r.db,
		`SELECT `+columns+` FROM admin_users WHERE email = $1`, admin.NormalizeEmail(email))
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Admin not found.")
	}
	return a, err
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*admin.Admin, error) {
	a, err := database.SelectOne[admin.Admin](ctx, r.db, `SELECT `+columns+` FROM admin_users WHERE id = $1`, id)
	if database.IsNoRows(err) {
		return nil, apperror.NewNotFound("Admin not found.")
	}
	return a, err
}

func (r *postgresRepository) Insert(ctx context.Context, a *admin.Admin) error {
	row, err := database.SelectOne[admin.Admin](ctx, r.db, `
		INSERT INTO admin_users (email, full_name, password_hash, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING `+columns,
		a.Email, a.FullName, a.PasswordHash, a.IsActive,
	)
	if err != nil {
		if database.IsUniqueOn(err, "admin_users_email_key") {
			return apperror.NewConflict(apperror.CodeConflict, "admin email already exists", err)
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	*a = *row
	return nil
}

func (r *postgresRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE admin_users SET last_login_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}
