package admin

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const MinPasswordLength = 8

// NormalizeEmail: email so sánh không phân biệt hoa thường
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// LoginRequest - POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	r.Email = NormalizeEmail(r.Email)
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required),
	)
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	ExpiresIn   int       `json:"expires_in"` // seconds
	Admin       *Admin    `json:"admin"`
}

// CreateRequest dùng bởi kuaictl create-admin
type CreateRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

func (r CreateRequest) Validate() error {
	r.Email = NormalizeEmail(r.Email)
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat, validation.Length(0, 254)),
		validation.Field(&r.FullName, validation.Length(0, 200)),
		validation.Field(&r.Password, validation.Required, validation.Length(MinPasswordLength, 72)),
	)
}
