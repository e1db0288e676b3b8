package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuai-backend/internal/domains/sitesearch"
	"kuai-backend/internal/infrastructure/search"
)

type stubService struct {
	gotKinds []string
	gotLimit int
}

func (s *stubService) Search(_ context.Context, q string, kinds []string, limit int) (*sitesearch.Result, error) {
	s.gotKinds, s.gotLimit = kinds, limit
	return &sitesearch.Result{Query: q, Count: 1, Results: []search.Hit{{Kind: search.KindNews, Slug: "hello"}}}, nil
}

func (s *stubService) Rebuild(context.Context) (int, error) { return 0, nil }

func TestSearch_ParsesParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubService{}
	r := gin.New()
	r.GET("/api/search", NewSearchHandler(svc).Search)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?q=hello&limit=5&kind=news,%20event", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"news", "event"}, svc.gotKinds)
	assert.Equal(t, 5, svc.gotLimit)

	var body struct {
		Data sitesearch.Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "hello", body.Data.Results[0].Slug)
}

func TestSearch_BadLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/search", NewSearchHandler(&stubService{}).Search)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?q=x&limit=ten", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
