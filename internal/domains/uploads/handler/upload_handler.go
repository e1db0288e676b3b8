package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"kuai-backend/internal/domains/uploads"
	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/response"
)

type UploadHandler struct {
	service  uploads.Service
	resolver *media.Resolver
	maxBytes int64
}

func NewUploadHandler(svc uploads.Service, resolver *media.Resolver, maxMB int) *UploadHandler {
	if maxMB <= 0 {
		maxMB = 5
	}
	return &UploadHandler{service: svc, resolver: resolver, maxBytes: int64(maxMB) << 20}
}

type uploadResponse struct {
	uploads.Result
	URL         *string            `json:"url"`
	VariantURLs map[string]*string `json:"variant_urls"`
}

// ════════════════════════════════════════════════════════════
// UPLOAD
// ════════════════════════════════════════════════════════════

// Upload - POST /api/admin/media (multipart: file, profile)
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file uploaded")
		return
	}
	if file.Size > h.maxBytes {
		response.BadRequest(c, "File too large")
		return
	}

	log.Info().Str("filename", file.Filename).Int64("size", file.Size).Msg("[MEDIA] Received upload")

	f, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Cannot read uploaded file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxBytes+1))
	if err != nil {
		response.BadRequest(c, "Cannot read uploaded file")
		return
	}

	profile := c.DefaultPostForm("profile", "plain")
	result, err := h.service.Upload(c.Request.Context(), profile, data)
	if err != nil {
		response.FromError(c, err)
		return
	}

	base := media.BaseFromRequest(c.Request)
	out := uploadResponse{
		Result:      *result,
		URL:         h.resolver.Resolve(result.Path, base),
		VariantURLs: make(map[string]*string, len(result.Variants)),
	}
	for name := range result.Variants {
		out.VariantURLs[name] = h.resolver.ResolveVariant(result.Variants, name, base)
	}
	response.Success(c, http.StatusCreated, out)
}

// ════════════════════════════════════════════════════════════
// SERVE
// ════════════════════════════════════════════════════════════

// Serve - GET /media/*key, stream object từ bucket
func (h *UploadHandler) Serve(c *gin.Context) {
	rc, info, err := h.service.Open(c.Request.Context(), c.Param("key"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	defer rc.Close()

	headers := map[string]string{"Cache-Control": "public, max-age=86400"}
	if info.ETag != "" {
		headers["ETag"] = `"` + info.ETag + `"`
	}
	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.DataFromReader(http.StatusOK, info.Size, contentType, rc, headers)
}
