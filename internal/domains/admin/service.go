package admin

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Me(ctx context.Context, id uuid.UUID) (*Admin, error)

	// Create và IssueToken phục vụ kuaictl, không có route HTTP
	Create(ctx context.Context, req CreateRequest) (*Admin, error)
	IssueToken(ctx context.Context, email string) (*LoginResponse, error)
}
