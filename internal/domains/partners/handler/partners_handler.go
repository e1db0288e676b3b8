package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kuai-backend/internal/domains/partners"
	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/response"
	"kuai-backend/internal/shared/utils"
)

type PartnersHandler struct {
	service  partners.Service
	resolver *media.Resolver
}

func NewPartnersHandler(svc partners.Service, resolver *media.Resolver) *PartnersHandler {
	return &PartnersHandler{service: svc, resolver: resolver}
}

// ════════════════════════════════════════════════════════════════
// CATEGORIES: /api/partners/categories
// ════════════════════════════════════════════════════════════════

func (h *PartnersHandler) ListCategories(c *gin.Context) {
	p := query.ParseListParams(c.Request.URL.Query())
	page, err := h.service.ListCategories(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, page.Items, page.Page, page.PageSize, page.Total)
}

func (h *PartnersHandler) CreateCategory(c *gin.Context) {
	var req partners.CategoryRequest
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
// PARTNERS: /api/partners
// ════════════════════════════════════════════════════════════════

func (h *PartnersHandler) List(c *gin.Context) {
	values := c.Request.URL.Query()
	p := query.ParseListParams(values)

	f := partners.PartnerFilter{IsFeatured: query.BoolParam(values, "is_featured")}
	if raw := query.StringParam(values, "category"); raw != nil {
		id := utils.ParseStringToUUID(*raw)
		f.CategoryID = &id
	}

	page, err := h.service.ListPartners(c.Request.Context(), p, f)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, response.Map(page.Items, h.toResponse(c)), page.Page, page.PageSize, page.Total)
}

func (h *PartnersHandler) Featured(c *gin.Context) {
	items, err := h.service.Featured(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, response.Map(items, h.toResponse(c)))
}

func (h *PartnersHandler) ByCategory(c *gin.Context) {
	groups, err := h.service.ByCategory(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	toResponse := h.toResponse(c)
	out := response.Map(groups, func(g partners.CategoryGroup) partners.CategoryGroupResponse {
		return partners.CategoryGroupResponse{Category: g.Category, Partners: response.Map(g.Partners, toResponse)}
	})
	response.Success(c, http.StatusOK, out)
}

func (h *PartnersHandler) Get(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	p, err := h.service.GetPartner(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.toResponse(c)(p))
}

func (h *PartnersHandler) toResponse(c *gin.Context) func(*partners.Partner) partners.PartnerResponse {
	base := media.BaseFromRequest(c.Request)
	return func(p *partners.Partner) partners.PartnerResponse {
		return p.ToResponse(h.resolver, base)
	}
}

// ════════════════════════════════════════════════════════════════
// ADMIN: /api/admin/partners
// ════════════════════════════════════════════════════════════════

func (h *PartnersHandler) Create(c *gin.Context) {
	var req partners.PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	p, err := h.service.CreatePartner(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, h.toResponse(c)(p))
}

func (h *PartnersHandler) Update(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	var req partners.PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	p, err := h.service.UpdatePartner(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.toResponse(c)(p))
}

func (h *PartnersHandler) Delete(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := h.service.DeletePartner(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
