package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuai-backend/internal/domains/uploads"
	"kuai-backend/internal/infrastructure/storage"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/internal/shared/media"
)

type stubService struct {
	gotProfile string
	gotSize    int
}

func (s *stubService) Upload(_ context.Context, profile string, data []byte) (*uploads.Result, error) {
	s.gotProfile, s.gotSize = profile, len(data)
	return &uploads.Result{
		Profile:  profile,
		Path:     "card/abc/original.jpg",
		Variants: media.Variants{"thumbnail": "card/abc/thumbnail.jpg"},
	}, nil
}

func (s *stubService) Open(_ context.Context, key string) (io.ReadCloser, *storage.ObjectInfo, error) {
	if key != "/card/abc/original.jpg" {
		return nil, nil, apperror.NewNotFound("File not found.")
	}
	return io.NopCloser(strings.NewReader("jpegdata")), &storage.ObjectInfo{
		Key: "card/abc/original.jpg", Size: 8, ContentType: "image/jpeg", ETag: "e1",
	}, nil
}

func newRouter(svc uploads.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUploadHandler(svc, media.NewResolver("/media/"), 1)
	r := gin.New()
	r.POST("/api/admin/media", h.Upload)
	r.GET("/media/*key", h.Serve)
	return r
}

func multipartBody(t *testing.T, profile string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	if profile != "" {
		require.NoError(t, w.WriteField("profile", profile))
	}
	if content != nil {
		part, err := w.CreateFormFile("file", "photo.jpg")
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestUpload(t *testing.T) {
	svc := &stubService{}
	r := newRouter(svc)

	body, ct := multipartBody(t, "card", []byte("fake-image"))
	req := httptest.NewRequest(http.MethodPost, "/api/admin/media", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "card", svc.gotProfile)
	assert.Equal(t, len("fake-image"), svc.gotSize)

	var resp struct {
		Data struct {
			Path        string            `json:"path"`
			URL         string            `json:"url"`
			VariantURLs map[string]string `json:"variant_urls"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "card/abc/original.jpg", resp.Data.Path)
	assert.Equal(t, "http://example.com/media/card/abc/original.jpg", resp.Data.URL)
	assert.Equal(t, "http://example.com/media/card/abc/thumbnail.jpg", resp.Data.VariantURLs["thumbnail"])
}

func TestUpload_DefaultProfileAndMissingFile(t *testing.T) {
	svc := &stubService{}
	r := newRouter(svc)

	body, ct := multipartBody(t, "", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/admin/media", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "plain", svc.gotProfile)

	body, ct = multipartBody(t, "card", nil)
	req = httptest.NewRequest(http.MethodPost, "/api/admin/media", body)
	req.Header.Set("Content-Type", ct)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpload_TooLarge(t *testing.T) {
	r := newRouter(&stubService{})

	body, ct := multipartBody(t, "card", bytes.Repeat([]byte("a"), (1<<20)+1))
	req := httptest.NewRequest(http.MethodPost, "/api/admin/media", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServe(t *testing.T) {
	r := newRouter(&stubService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/media/card/abc/original.jpg", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))
	assert.Equal(t, `"e1"`, w.Header().Get("ETag"))
	assert.Equal(t, "jpegdata", w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/media/card/missing.jpg", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
