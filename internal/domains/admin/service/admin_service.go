package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"kuai-backend/internal/domains/admin"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/pkg/cache"
	"kuai-backend/pkg/jwt"
)

type adminService struct {
	repo       admin.Repository
	tokens     *jwt.Manager
	cache      cache.Cache
	bcryptCost int
}

func NewAdminService(repo admin.Repository, tokens *jwt.Manager, c cache.Cache) admin.Service {
	return &adminService{repo: repo, tokens: tokens, cache: c, bcryptCost: bcrypt.DefaultCost}
}

func attemptKey(email string) string { return "login_failed:" + email }
func lockKey(email string) string    { return "login_locked:" + email }

// =====================================================
// LOGIN
// =====================================================

func (s *adminService) Login(ctx context.Context, req admin.LoginRequest) (*admin.LoginResponse, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}
	email := admin.NormalizeEmail(req.Email)

	// 2. CHECK LOCKOUT
	if s.isLocked(ctx, email) {
		return nil, apperror.NewTooManyAttempts(admin.LockoutDuration)
	}

	// 3. FIND ADMIN + VERIFY PASSWORD
	// email không tồn tại và password sai trả cùng một lỗi
	a, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			s.recordFailure(ctx, email)
			return nil, apperror.NewInvalidCredentials()
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		s.recordFailure(ctx, email)
		return nil, apperror.NewInvalidCredentials()
	}
	if !a.IsActive {
		return nil, apperror.NewForbidden("Admin account is inactive.")
	}

	// 4. RESET COUNTER + ISSUE TOKEN
	cache.Forget(ctx, s.cache, attemptKey(email))
	if err := s.repo.TouchLastLogin(ctx, a.ID); err != nil {
		log.Warn().Err(err).Str("admin_id", a.ID.String()).Msg("[AUTH] Failed to update last login")
	}

	log.Info().Str("admin_id", a.ID.String()).Msg("[AUTH] Admin logged in")
	return s.issue(a)
}

func (s *adminService) isLocked(ctx context.Context, email string) bool {
	if s.cache == nil {
		return false
	}
	locked, err := s.cache.Exists(ctx, lockKey(email))
	if err != nil {
		log.Warn().Err(err).Msg("[AUTH] Lockout check failed, allowing attempt")
		return false
	}
	return locked
}

// recordFailure đếm lần sai trong AttemptWindow, đủ MaxFailedAttempts thì khóa LockoutDuration
func (s *adminService) recordFailure(ctx context.Context, email string) {
	if s.cache == nil {
		return
	}

	attempts, err := s.cache.Increment(ctx, attemptKey(email))
	if err != nil {
		log.Warn().Err(err).Msg("[AUTH] Failed to count login attempt")
		return
	}
	if attempts == 1 {
		if err := s.cache.Expire(ctx, attemptKey(email), admin.AttemptWindow); err != nil {
			log.Warn().Err(err).Msg("[AUTH] Failed to set attempt window")
		}
	}

	if attempts >= admin.MaxFailedAttempts {
		if err := s.cache.Set(ctx, lockKey(email), true, admin.LockoutDuration); err != nil {
			log.Warn().Err(err).Msg("[AUTH] Failed to lock account")
			return
		}
		cache.Forget(ctx, s.cache, attemptKey(email))
		log.Warn().Str("email", email).Int64("attempts", attempts).Msg("[AUTH] Account locked after failed logins")
	}
}

func (s *adminService) issue(a *admin.Admin) (*admin.LoginResponse, error) {
	token, expiresAt, err := s.tokens.GenerateAccessToken(a.ID.String(), a.Email, jwt.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &admin.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		ExpiresIn:   int(s.tokens.TTL().Seconds()),
		Admin:       a,
	}, nil
}

// =====================================================
// PROFILE / CLI
// =====================================================

func (s *adminService) Me(ctx context.Context, id uuid.UUID) (*admin.Admin, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *adminService) Create(ctx context.Context, req admin.CreateRequest) (*admin.Admin, error) {
	if err := req.Validate(); err != nil {
		return nil, apperror.NewValidation("invalid request", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	a := &admin.Admin{
		Email:        admin.NormalizeEmail(req.Email),
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *adminService) IssueToken(ctx context.Context, email string) (*admin.LoginResponse, error) {
	a, err := s.repo.FindByEmail(ctx, admin.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if !a.IsActive {
		return nil, apperror.NewForbidden("Admin account is inactive.")
	}
	return s.issue(a)
}
