package admin

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Admin, error)
	Insert(ctx context.Context, a *Admin) error
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}
