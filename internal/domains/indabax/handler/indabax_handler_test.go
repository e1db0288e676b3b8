package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuai-backend/internal/domains/indabax"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/types"
	"kuai-backend/pkg/clock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubService struct {
	indabax.Service
	settings    *indabax.Settings
	latest      *indabax.Event
	archive     []indabax.ArchiveYear
	gotSessions *indabax.SessionFilter
}

func (s *stubService) CurrentSettings(ctx context.Context) (*indabax.Settings, error) {
	if s.settings == nil {
		return nil, apperror.NewNotConfigured("Indabax settings not configured yet.")
	}
	return s.settings, nil
}

func (s *stubService) LatestEvent(ctx context.Context) (*indabax.Event, error) {
	if s.latest == nil {
		return nil, apperror.NewNotFound("No events found.")
	}
	return s.latest, nil
}

func (s *stubService) LeaderArchive(ctx context.Context) ([]indabax.ArchiveYear, error) {
	return s.archive, nil
}

func (s *stubService) ListSessions(ctx context.Context, p query.ListParams, f indabax.SessionFilter) (query.Page[*indabax.Session], error) {
	s.gotSessions = &f
	items := []*indabax.Session{{ID: uuid.New(), Title: "Transformers 101", SessionType: indabax.SessionPanel}}
	return query.NewPage(items, 1, p), nil
}

var now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newRouter(svc indabax.Service) *gin.Engine {
	h := NewIndabaxHandler(svc, media.NewResolver("/media/"), clock.Fixed(now))
	r := gin.New()
	r.GET("/api/indabax/settings/current", h.CurrentSettings)
	r.GET("/api/indabax/events/latest", h.LatestEvent)
	r.GET("/api/indabax/leaders/archive", h.LeaderArchive)
	r.GET("/api/indabax/sessions", h.ListSessions)
	return r
}

func get(r *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Host = "api.kuai.example"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestCurrentSettings(t *testing.T) {
	w, body := get(newRouter(&stubService{}), "/api/indabax/settings/current")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Indabax settings not configured yet.", body["error"].(map[string]any)["message"])

	svc := &stubService{settings: &indabax.Settings{ID: uuid.New(), SiteName: "Indabax Kabale", Logo: "logo/x/original.png"}}
	w, body = get(newRouter(svc), "/api/indabax/settings/current")
	require.Equal(t, http.StatusOK, w.Code)

	data := body["data"].(map[string]any)
	assert.Equal(t, "Indabax Kabale", data["site_name"])
	assert.Equal(t, "http://api.kuai.example/media/logo/x/original.png", data["logo_url"])
	assert.Nil(t, data["about_image_url"])
}

func TestLatestEvent(t *testing.T) {
	w, body := get(newRouter(&stubService{}), "/api/indabax/events/latest")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No events found.", body["error"].(map[string]any)["message"])

	svc := &stubService{latest: &indabax.Event{
		ID:            uuid.New(),
		Title:         "Indabax 2024",
		Slug:          "indabax-2024",
		Date:          types.NewDate(2024, time.September, 20),
		SpeakersCount: 4,
	}}
	w, body = get(newRouter(svc), "/api/indabax/events/latest")
	require.Equal(t, http.StatusOK, w.Code)

	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["is_past"])
	assert.Equal(t, float64(4), data["speakers_count"])
	assert.Equal(t, "2024-09-20", data["date"])
}

func TestLeaderArchive_Shape(t *testing.T) {
	end := 2024
	svc := &stubService{archive: []indabax.ArchiveYear{
		{Year: 2023, Leaders: []*indabax.Leader{{ID: uuid.New(), Name: "Amina", Role: "Lead", StartYear: 2023, EndYear: &end}}},
	}}

	w, body := get(newRouter(svc), "/api/indabax/leaders/archive")
	require.Equal(t, http.StatusOK, w.Code)

	data := body["data"].([]any)
	require.Len(t, data, 1)
	group := data[0].(map[string]any)
	assert.Equal(t, float64(2023), group["year"])

	leaders := group["leaders"].([]any)
	require.Len(t, leaders, 1)
	leader := leaders[0].(map[string]any)
	assert.Equal(t, "archived", leader["status"])
	assert.Equal(t, false, leader["is_current"])
}

func TestListSessions_Filters(t *testing.T) {
	svc := &stubService{}
	r := newRouter(svc)

	w, _ := get(r, "/api/indabax/sessions?session_type=lecture")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = get(r, "/api/indabax/sessions?date=20-09-2024")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body := get(r, "/api/indabax/sessions?session_type=panel&event=not-a-uuid")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.gotSessions)
	require.NotNil(t, svc.gotSessions.EventID)
	assert.Equal(t, uuid.Nil, *svc.gotSessions.EventID)

	items := body["data"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Panel Discussion", items[0].(map[string]any)["session_type_display"])
}
