package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuai-backend/internal/domains/admin"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/middleware"
	"kuai-backend/pkg/jwt"
)

var adminID = uuid.MustParse("0b9f7f4e-3a43-4d3f-8c2d-6b7a1f0e5c21")

type stubService struct{}

func (stubService) Login(_ context.Context, req admin.LoginRequest) (*admin.LoginResponse, error) {
	if req.Password != "correct-horse" {
		return nil, apperror.NewInvalidCredentials()
	}
	return &admin.LoginResponse{AccessToken: "tok", TokenType: "Bearer", ExpiresIn: 3600}, nil
}

func (stubService) Me(_ context.Context, id uuid.UUID) (*admin.Admin, error) {
	if id != adminID {
		return nil, apperror.NewNotFound("Admin not found.")
	}
	return &admin.Admin{ID: id, Email: "admin@kuai.example", IsActive: true}, nil
}

func (stubService) Create(context.Context, admin.CreateRequest) (*admin.Admin, error) {
	return nil, nil
}

func (stubService) IssueToken(context.Context, string) (*admin.LoginResponse, error) {
	return nil, nil
}

func newRouter(tokens *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(stubService{})
	r := gin.New()
	r.POST("/api/auth/login", h.Login)
	r.GET("/api/admin/me", middleware.AuthMiddleware(tokens), middleware.AdminMiddleware(), h.Me)
	return r
}

func TestLogin(t *testing.T) {
	r := newRouter(jwt.NewManager("secret", time.Hour))

	cases := []struct {
		name string
		body string
		code int
	}{
		{"ok", `{"email":"admin@kuai.example","password":"correct-horse"}`, http.StatusOK},
		{"wrong password", `{"email":"admin@kuai.example","password":"nope"}`, http.StatusUnauthorized},
		{"malformed", `{"email":`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestMe(t *testing.T) {
	tokens := jwt.NewManager("secret", time.Hour)
	r := newRouter(tokens)

	token, _, err := tokens.GenerateAccessToken(adminID.String(), "admin@kuai.example", jwt.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@kuai.example")
	assert.NotContains(t, w.Body.String(), "password")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
