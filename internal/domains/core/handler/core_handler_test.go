package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuai-backend/internal/domains/core"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/singleton"
	"kuai-backend/pkg/clock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubService chỉ override các method mà test gọi
type stubService struct {
	core.Service
	settings *core.SiteSettings
}

func (s *stubService) CurrentSiteSettings(ctx context.Context) (*core.SiteSettings, error) {
	if s.settings == nil {
		return nil, apperror.NewNotConfigured("Site settings not configured yet.")
	}
	return s.settings, nil
}

func (s *stubService) CreateSiteSettings(ctx context.Context, req *core.SiteSettingsRequest) (*core.SiteSettings, error) {
	if s.settings != nil {
		return nil, apperror.NewConflict(apperror.CodeSingletonExists, "singleton already initialized", singleton.ErrDuplicate)
	}
	s.settings = &core.SiteSettings{ID: uuid.New(), SiteName: req.SiteName, Logo: req.Logo}
	return s.settings, nil
}

func (s *stubService) DeleteSiteSettings(ctx context.Context, id uuid.UUID) error {
	return apperror.NewForbidden("Site settings cannot be deleted")
}

func newRouter(svc core.Service) *gin.Engine {
	now := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	h := NewCoreHandler(svc, media.NewResolver("/media/"), clock.Fixed(now), "1.0")

	r := gin.New()
	r.GET("/api/", h.Root)
	r.GET("/api/core/site-settings/current", h.CurrentSiteSettings)
	r.POST("/api/admin/core/site-settings", h.CreateSiteSettings)
	r.DELETE("/api/admin/core/site-settings/:id", h.DeleteSiteSettings)
	return r
}

func do(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Host = "api.kuai.example"
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestSiteSettings_EndToEnd(t *testing.T) {
	r := newRouter(&stubService{})

	w, body := do(r, http.MethodGet, "/api/core/site-settings/current", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperror.CodeNotConfigured, body["error"].(map[string]any)["code"])

	w, body = do(r, http.MethodPost, "/api/admin/core/site-settings", `{"site_name":"KUAI","logo":"site_logo/abc/original.png"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "http://api.kuai.example/media/site_logo/abc/original.png", data["logo_url"])
	assert.Nil(t, data["favicon_url"])

	w, _ = do(r, http.MethodPost, "/api/admin/core/site-settings", `{"site_name":"Again"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = do(r, http.MethodGet, "/api/core/site-settings/current", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(r, http.MethodDelete, "/api/admin/core/site-settings/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = do(r, http.MethodDelete, "/api/admin/core/site-settings/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoot_AbsoluteEndpoints(t *testing.T) {
	r := newRouter(&stubService{})

	w, body := do(r, http.MethodGet, "/api/", "")
	require.Equal(t, http.StatusOK, w.Code)

	data := body["data"].(map[string]any)
	assert.Equal(t, "KUAI Club API", data["message"])
	endpoints := data["endpoints"].(map[string]any)
	assert.Equal(t, "http://api.kuai.example/api/core/site-settings/",
		endpoints["core"].(map[string]any)["site_settings"])
	assert.Equal(t, "http://api.kuai.example/api/indabax/events/latest/",
		endpoints["indabax"].(map[string]any)["latest_event"])
}
