package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kuai-backend/internal/domains/projects"
	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/response"
	"kuai-backend/internal/shared/utils"
)

type ProjectsHandler struct {
	service  projects.Service
	resolver *media.Resolver
}

func NewProjectsHandler(svc projects.Service, resolver *media.Resolver) *ProjectsHandler {
	return &ProjectsHandler{service: svc, resolver: resolver}
}

// ════════════════════════════════════════════════════════════════
// CATEGORIES: /api/projects/categories
// ════════════════════════════════════════════════════════════════

func (h *ProjectsHandler) ListCategories(c *gin.Context) {
	p := query.ParseListParams(c.Request.URL.Query())
	page, err := h.service.ListCategories(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, page.Items, page.Page, page.PageSize, page.Total)
}

func (h *ProjectsHandler) GetCategory(c *gin.Context) {
	category, err := h.service.GetCategory(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, category)
}

func (h *ProjectsHandler) CreateCategory(c *gin.Context) {
	var req projects.CategoryRequest
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
// PROJECTS: /api/projects
// ════════════════════════════════════════════════════════════════

func (h *ProjectsHandler) List(c *gin.Context) {
	values := c.Request.URL.Query()
	p := query.ParseListParams(values)

	f := projects.ProjectFilter{
		Status:     query.StringParam(values, "status"),
		IsFeatured: query.BoolParam(values, "is_featured"),
	}
	if f.Status != nil && !projects.Status(*f.Status).Valid() {
		response.BadRequest(c, "status must be one of planning, in_progress, completed, on_hold")
		return
	}
	if raw := query.StringParam(values, "category"); raw != nil {
		id := utils.ParseStringToUUID(*raw)
		f.CategoryID = &id
	}

	page, err := h.service.ListProjects(c.Request.Context(), p, f)
	if err != nil {
		response.FromError(c, err)
		return
	}

	items := response.Map(page.Items, h.listItem(c))
	response.Paginated(c, items, page.Page, page.PageSize, page.Total)
}

func (h *ProjectsHandler) Featured(c *gin.Context) {
	items, err := h.service.Featured(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, response.Map(items, h.listItem(c)))
}

// ByStatus trả object {"completed": [...], "in_progress": [...], "planning": [...]}
func (h *ProjectsHandler) ByStatus(c *gin.Context) {
	groups, err := h.service.ByStatus(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	toItem := h.listItem(c)
	out := make(map[projects.Status][]projects.ProjectListItem, len(groups))
	for status, items := range groups {
		out[status] = response.Map(items, toItem)
	}
	response.Success(c, http.StatusOK, out)
}

func (h *ProjectsHandler) Get(c *gin.Context) {
	p, err := h.service.GetProject(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p.ToResponse(h.resolver, media.BaseFromRequest(c.Request)))
}

func (h *ProjectsHandler) listItem(c *gin.Context) func(*projects.Project) projects.ProjectListItem {
	base := media.BaseFromRequest(c.Request)
	return func(p *projects.Project) projects.ProjectListItem {
		return p.ToListItem(h.resolver, base)
	}
}

// ════════════════════════════════════════════════════════════════
// ADMIN: /api/admin/projects
// ════════════════════════════════════════════════════════════════

func (h *ProjectsHandler) Create(c *gin.Context) {
	var req projects.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	p, err := h.service.CreateProject(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, p.ToResponse(h.resolver, media.BaseFromRequest(c.Request)))
}

func (h *ProjectsHandler) Update(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	var req projects.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	p, err := h.service.UpdateProject(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, p.ToResponse(h.resolver, media.BaseFromRequest(c.Request)))
}

func (h *ProjectsHandler) Delete(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := h.service.DeleteProject(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
