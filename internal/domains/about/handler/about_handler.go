package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kuai-backend/internal/domains/about"
	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/response"
	"kuai-backend/internal/shared/utils"
)

type AboutHandler struct {
	service  about.Service
	resolver *media.Resolver
}

func NewAboutHandler(svc about.Service, resolver *media.Resolver) *AboutHandler {
	return &AboutHandler{service: svc, resolver: resolver}
}

func (h *AboutHandler) toResponse(c *gin.Context) func(*about.About) about.Response {
	base := media.BaseFromRequest(c.Request)
	return func(a *about.About) about.Response { return a.ToResponse(h.resolver, base) }
}

// ════════════════════════════════════════════════════════════════
// PUBLIC: GET /api/about, /api/about/current, /api/about/:id
// ════════════════════════════════════════════════════════════════

func (h *AboutHandler) List(c *gin.Context) {
	p := query.ParseListParams(c.Request.URL.Query())
	page, err := h.service.List(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, response.Map(page.Items, h.toResponse(c)), page.Page, page.PageSize, page.Total)
}

func (h *AboutHandler) Current(c *gin.Context) {
	a, err := h.service.Current(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.toResponse(c)(a))
}

func (h *AboutHandler) GetByID(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.toResponse(c)(a))
}

// ════════════════════════════════════════════════════════════════
// ADMIN: /api/admin/about
// ════════════════════════════════════════════════════════════════

func (h *AboutHandler) Create(c *gin.Context) {
	var req about.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	a, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, h.toResponse(c)(a))
}

func (h *AboutHandler) Update(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	var req about.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	a, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.toResponse(c)(a))
}

func (h *AboutHandler) Delete(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
