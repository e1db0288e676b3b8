package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kuai-backend/internal/domains/news"
	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/response"
	"kuai-backend/internal/shared/types"
	"kuai-backend/internal/shared/utils"
)

type NewsHandler struct {
	service  news.Service
	resolver *media.Resolver
}

func NewNewsHandler(svc news.Service, resolver *media.Resolver) *NewsHandler {
	return &NewsHandler{service: svc, resolver: resolver}
}

// ════════════════════════════════════════════════════════════════
// CATEGORIES: /api/news/categories
// ════════════════════════════════════════════════════════════════

func (h *NewsHandler) ListCategories(c *gin.Context) {
	p := query.ParseListParams(c.Request.URL.Query())
	page, err := h.service.ListCategories(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, page.Items, page.Page, page.PageSize, page.Total)
}

func (h *NewsHandler) GetCategory(c *gin.Context) {
	category, err := h.service.GetCategory(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, category)
}

func (h *NewsHandler) CreateCategory(c *gin.Context) {
	var req news.CategoryRequest
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
// ARTICLES: /api/news/articles
// ════════════════════════════════════════════════════════════════

func (h *NewsHandler) ListArticles(c *gin.Context) {
	values := c.Request.URL.Query()
	p := query.ParseListParams(values)

	f := news.ArticleFilter{IsFeatured: query.BoolParam(values, "is_featured")}
	if raw := query.StringParam(values, "category"); raw != nil {
		id := utils.ParseStringToUUID(*raw)
		f.CategoryID = &id
	}
	if raw := query.StringParam(values, "date"); raw != nil {
		d, err := types.ParseDate(*raw)
		if err != nil {
			response.BadRequest(c, "date must be YYYY-MM-DD")
			return
		}
		f.Date = &d
	}

	page, err := h.service.ListArticles(c.Request.Context(), p, f)
	if err != nil {
		response.FromError(c, err)
		return
	}

	base := media.BaseFromRequest(c.Request)
	items := response.Map(page.Items, func(a *news.Article) news.ArticleListItem { return a.ToListItem(h.resolver, base) })
	response.Paginated(c, items, page.Page, page.PageSize, page.Total)
}

func (h *NewsHandler) GetArticle(c *gin.Context) {
	a, err := h.service.GetArticle(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a.ToResponse(h.resolver, media.BaseFromRequest(c.Request)))
}

func (h *NewsHandler) CreateArticle(c *gin.Context) {
	var req news.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	a, err := h.service.CreateArticle(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, a.ToResponse(h.resolver, media.BaseFromRequest(c.Request)))
}

func (h *NewsHandler) UpdateArticle(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	var req news.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	a, err := h.service.UpdateArticle(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a.ToResponse(h.resolver, media.BaseFromRequest(c.Request)))
}

func (h *NewsHandler) DeleteArticle(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := h.service.DeleteArticle(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
