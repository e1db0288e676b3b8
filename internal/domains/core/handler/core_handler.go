package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kuai-backend/internal/domains/core"
	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/response"
	"kuai-backend/internal/shared/utils"
	"kuai-backend/pkg/clock"
)

type CoreHandler struct {
	service  core.Service
	resolver *media.Resolver
	clock    clock.Clock
	version  string
}

func NewCoreHandler(svc core.Service, resolver *media.Resolver, clk clock.Clock, version string) *CoreHandler {
	return &CoreHandler{service: svc, resolver: resolver, clock: clk, version: version}
}

// ════════════════════════════════════════════════════════════════
// API ROOT: GET /api/
// ════════════════════════════════════════════════════════════════

func (h *CoreHandler) Root(c *gin.Context) {
	apiBase := media.BaseFromRequest(c.Request) + "/api/"
	response.Success(c, http.StatusOK, core.NewAPIRoot(apiBase, h.version, h.clock.Now()))
}

// ════════════════════════════════════════════════════════════════
// SITE SETTINGS: /api/core/site-settings
// ════════════════════════════════════════════════════════════════

func (h *CoreHandler) siteSettingsResponse(c *gin.Context) func(*core.SiteSettings) core.SiteSettingsResponse {
	base := media.BaseFromRequest(c.Request)
	return func(s *core.SiteSettings) core.SiteSettingsResponse { return s.ToResponse(h.resolver, base) }
}

func (h *CoreHandler) ListSiteSettings(c *gin.Context) {
	p := query.ParseListParams(c.Request.URL.Query())
	page, err := h.service.ListSiteSettings(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, response.Map(page.Items, h.siteSettingsResponse(c)), page.Page, page.PageSize, page.Total)
}

func (h *CoreHandler) CurrentSiteSettings(c *gin.Context) {
	settings, err := h.service.CurrentSiteSettings(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.siteSettingsResponse(c)(settings))
}

func (h *CoreHandler) GetSiteSettings(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	settings, err := h.service.GetSiteSettings(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.siteSettingsResponse(c)(settings))
}

func (h *CoreHandler) CreateSiteSettings(c *gin.Context) {
	var req core.SiteSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	settings, err := h.service.CreateSiteSettings(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, h.siteSettingsResponse(c)(settings))
}

func (h *CoreHandler) UpdateSiteSettings(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	var req core.SiteSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	settings, err := h.service.UpdateSiteSettings(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.siteSettingsResponse(c)(settings))
}

func (h *CoreHandler) DeleteSiteSettings(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := h.service.DeleteSiteSettings(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ════════════════════════════════════════════════════════════════
// CONTACT INFO: /api/core/contact-info
// ════════════════════════════════════════════════════════════════

func (h *CoreHandler) ListContactInfo(c *gin.Context) {
	p := query.ParseListParams(c.Request.URL.Query())
	page, err := h.service.ListContactInfo(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, page.Items, page.Page, page.PageSize, page.Total)
}

func (h *CoreHandler) CurrentContactInfo(c *gin.Context) {
	info, err := h.service.CurrentContactInfo(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, info)
}

func (h *CoreHandler) GetContactInfo(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	info, err := h.service.GetContactInfo(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, info)
}

func (h *CoreHandler) CreateContactInfo(c *gin.Context) {
	var req core.ContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	info, err := h.service.CreateContactInfo(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, info)
}

func (h *CoreHandler) UpdateContactInfo(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	var req core.ContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	info, err := h.service.UpdateContactInfo(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, info)
}

func (h *CoreHandler) DeleteContactInfo(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := h.service.DeleteContactInfo(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ════════════════════════════════════════════════════════════════
// HERO SLIDES: /api/core/hero-slides
// ════════════════════════════════════════════════════════════════

func (h *CoreHandler) heroSlideResponse(c *gin.Context) func(*core.HeroSlide) core.HeroSlideResponse {
	base := media.BaseFromRequest(c.Request)
	return func(s *core.HeroSlide) core.HeroSlideResponse { return s.ToResponse(h.resolver, base) }
}

func (h *CoreHandler) ListHeroSlides(c *gin.Context) {
	p := query.ParseListParams(c.Request.URL.Query())
	page, err := h.service.ListHeroSlides(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, response.Map(page.Items, h.heroSlideResponse(c)), page.Page, page.PageSize, page.Total)
}

func (h *CoreHandler) GetHeroSlide(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	slide, err := h.service.GetHeroSlide(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.heroSlideResponse(c)(slide))
}

func (h *CoreHandler) CreateHeroSlide(c *gin.Context) {
	var req core.HeroSlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	slide, err := h.service.CreateHeroSlide(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, h.heroSlideResponse(c)(slide))
}

func (h *CoreHandler) UpdateHeroSlide(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	var req core.HeroSlideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	slide, err := h.service.UpdateHeroSlide(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.heroSlideResponse(c)(slide))
}

func (h *CoreHandler) DeleteHeroSlide(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := h.service.DeleteHeroSlide(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ════════════════════════════════════════════════════════════════
// QUICK LINKS: /api/core/quick-links
// ════════════════════════════════════════════════════════════════

func (h *CoreHandler) ListQuickLinks(c *gin.Context) {
	p := query.ParseListParams(c.Request.URL.Query())
	page, err := h.service.ListQuickLinks(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, page.Items, page.Page, page.PageSize, page.Total)
}

func (h *CoreHandler) GetQuickLink(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	link, err := h.service.GetQuickLink(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, link)
}
