package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"kuai-backend/internal/domains/admin"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/pkg/cache"
	"kuai-backend/pkg/jwt"
)

type memoryRepo struct {
	rows    map[string]*admin.Admin
	touched []uuid.UUID
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: map[string]*admin.Admin{}}
}

func (m *memoryRepo) FindByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	a, ok := m.rows[email]
	if !ok {
		return nil, apperror.NewNotFound("Admin not found.")
	}
	return a, nil
}

func (m *memoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*admin.Admin, error) {
	for _, a := range m.rows {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, apperror.NewNotFound("Admin not found.")
}

func (m *memoryRepo) Insert(ctx context.Context, a *admin.Admin) error {
	if _, ok := m.rows[a.Email]; ok {
		return apperror.NewConflict(apperror.CodeConflict, "admin email already exists", nil)
	}
	a.ID = uuid.New()
	m.rows[a.Email] = a
	return nil
}

func (m *memoryRepo) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	m.touched = append(m.touched, id)
	return nil
}

func newTestService(repo *memoryRepo) *adminService {
	svc := NewAdminService(repo, jwt.NewManager("test-secret", 30*time.Minute), cache.NewMemoryCache()).(*adminService)
	svc.bcryptCost = bcrypt.MinCost
	return svc
}

func seedAdmin(t *testing.T, svc *adminService) *admin.Admin {
	t.Helper()
	a, err := svc.Create(context.Background(), admin.CreateRequest{
		Email:    "  Admin@KUAI.ac.ug ",
		FullName: "Club Admin",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	return a
}

func TestCreate_NormalizesAndHashes(t *testing.T) {
	svc := newTestService(newMemoryRepo())
	a := seedAdmin(t, svc)

	assert.Equal(t, "admin@kuai.ac.ug", a.Email)
	assert.NotEqual(t, "correct-horse", a.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("correct-horse")))

	_, err := svc.Create(context.Background(), admin.CreateRequest{Email: "x@kuai.ac.ug", Password: "short"})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestLogin_Success(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	a := seedAdmin(t, svc)

	out, err := svc.Login(context.Background(), admin.LoginRequest{Email: "ADMIN@kuai.ac.ug", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, 1800, out.ExpiresIn)
	assert.Equal(t, []uuid.UUID{a.ID}, repo.touched)

	claims, err := svc.tokens.ValidateAccessToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, a.ID.String(), claims.AdminID)
	assert.Equal(t, jwt.RoleAdmin, claims.Role)
}

func TestLogin_UnknownEmailAndWrongPasswordLookTheSame(t *testing.T) {
	svc := newTestService(newMemoryRepo())
	seedAdmin(t, svc)

	_, errUnknown := svc.Login(context.Background(), admin.LoginRequest{Email: "ghost@kuai.ac.ug", Password: "whatever1"})
	_, errWrong := svc.Login(context.Background(), admin.LoginRequest{Email: "admin@kuai.ac.ug", Password: "wrong-pass"})

	for _, err := range []error{errUnknown, errWrong} {
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeInvalidCredentials, appErr.Code)
	}
}

func TestLogin_LockoutAfterFailures(t *testing.T) {
	svc := newTestService(newMemoryRepo())
	seedAdmin(t, svc)
	ctx := context.Background()

	for i := 0; i < admin.MaxFailedAttempts; i++ {
		_, err := svc.Login(ctx, admin.LoginRequest{Email: "admin@kuai.ac.ug", Password: "wrong-pass"})
		require.Error(t, err)
	}

	// khóa rồi thì password đúng cũng bị chặn
	_, err := svc.Login(ctx, admin.LoginRequest{Email: "admin@kuai.ac.ug", Password: "correct-horse"})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindRateLimited))
}

func TestLogin_InactiveAdmin(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	a := seedAdmin(t, svc)
	a.IsActive = false

	_, err := svc.Login(context.Background(), admin.LoginRequest{Email: "admin@kuai.ac.ug", Password: "correct-horse"})
	assert.True(t, apperror.IsForbidden(err))

	_, err = svc.IssueToken(context.Background(), "admin@kuai.ac.ug")
	assert.True(t, apperror.IsForbidden(err))
}

func TestIssueToken(t *testing.T) {
	svc := newTestService(newMemoryRepo())
	seedAdmin(t, svc)

	out, err := svc.IssueToken(context.Background(), "Admin@kuai.ac.ug")
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)

	_, err = svc.IssueToken(context.Background(), "nobody@kuai.ac.ug")
	assert.True(t, apperror.IsNotFound(err))
}
