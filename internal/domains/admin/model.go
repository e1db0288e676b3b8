package admin

import (
	"time"

	"github.com/google/uuid"
)

const (
	MaxFailedAttempts = 5
	AttemptWindow     = 15 * time.Minute
	LockoutDuration   = 15 * time.Minute
)

// Admin là tài khoản quản trị nội dung, không có đăng ký public
type Admin struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	FullName     string     `json:"full_name" db:"full_name"`
	PasswordHash string     `json:"-" db:"password_hash"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at" db:"last_login_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}
