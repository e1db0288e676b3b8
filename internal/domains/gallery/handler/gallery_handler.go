package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kuai-backend/internal/domains/gallery"
	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/response"
	"kuai-backend/internal/shared/utils"
)

type GalleryHandler struct {
	service  gallery.Service
	resolver *media.Resolver
}

func NewGalleryHandler(svc gallery.Service, resolver *media.Resolver) *GalleryHandler {
	return &GalleryHandler{service: svc, resolver: resolver}
}

// ════════════════════════════════════════════════════════════════
// CATEGORIES: /api/gallery/categories
// ════════════════════════════════════════════════════════════════

func (h *GalleryHandler) ListCategories(c *gin.Context) {
	p := query.ParseListParams(c.Request.URL.Query())
	page, err := h.service.ListCategories(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, page.Items, page.Page, page.PageSize, page.Total)
}

func (h *GalleryHandler) CreateCategory(c *gin.Context) {
	var req gallery.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	category, err := h.service.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, category)
}

// ════════════════════════════════════════════════════════════════
// IMAGES: /api/gallery/images
// ════════════════════════════════════════════════════════════════

func (h *GalleryHandler) ListImages(c *gin.Context) {
	values := c.Request.URL.Query()
	p := query.ParseListParams(values)

	f := gallery.ImageFilter{
		IsFeatured: query.BoolParam(values, "is_featured"),
		EventName:  query.StringParam(values, "event_name"),
	}
	if raw := query.StringParam(values, "category"); raw != nil {
		id := utils.ParseStringToUUID(*raw)
		f.CategoryID = &id
	}

	page, err := h.service.ListImages(c.Request.Context(), p, f)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, response.Map(page.Items, h.toResponse(c)), page.Page, page.PageSize, page.Total)
}

func (h *GalleryHandler) Featured(c *gin.Context) {
	items, err := h.service.Featured(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, response.Map(items, h.toResponse(c)))
}

func (h *GalleryHandler) ByCategory(c *gin.Context) {
	groups, err := h.service.ByCategory(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	toResponse := h.toResponse(c)
	out := response.Map(groups, func(g gallery.CategoryGroup) gallery.CategoryGroupResponse {
		return gallery.CategoryGroupResponse{Category: g.Category, Images: response.Map(g.Images, toResponse)}
	})
	response.Success(c, http.StatusOK, out)
}

func (h *GalleryHandler) GetImage(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	img, err := h.service.GetImage(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.toResponse(c)(img))
}

func (h *GalleryHandler) toResponse(c *gin.Context) func(*gallery.Image) gallery.ImageResponse {
	base := media.BaseFromRequest(c.Request)
	return func(img *gallery.Image) gallery.ImageResponse {
		return img.ToResponse(h.resolver, base)
	}
}

// ════════════════════════════════════════════════════════════════
// ADMIN: /api/admin/gallery/images
// ════════════════════════════════════════════════════════════════

func (h *GalleryHandler) CreateImage(c *gin.Context) {
	var req gallery.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	img, err := h.service.CreateImage(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, h.toResponse(c)(img))
}

func (h *GalleryHandler) UpdateImage(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	var req gallery.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	img, err := h.service.UpdateImage(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.toResponse(c)(img))
}

func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := h.service.DeleteImage(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
