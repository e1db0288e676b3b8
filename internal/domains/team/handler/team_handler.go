package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kuai-backend/internal/domains/team"
	"kuai-backend/internal/shared/lifecycle"
	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/response"
	"kuai-backend/internal/shared/utils"
	"kuai-backend/pkg/clock"
)

type TeamHandler struct {
	service  team.Service
	resolver *media.Resolver
	clock    clock.Clock
}

func NewTeamHandler(svc team.Service, resolver *media.Resolver, clk clock.Clock) *TeamHandler {
	return &TeamHandler{service: svc, resolver: resolver, clock: clk}
}

// ════════════════════════════════════════════════════════════════
// ROLES: /api/team/roles
// ════════════════════════════════════════════════════════════════

func (h *TeamHandler) ListRoles(c *gin.Context) {
	p := query.ParseListParams(c.Request.URL.Query())
	page, err := h.service.ListRoles(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, page.Items, page.Page, page.PageSize, page.Total)
}

func (h *TeamHandler) CreateRole(c *gin.Context) {
	var req team.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	role, err := h.service.CreateRole(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, role)
}

// ════════════════════════════════════════════════════════════════
// MEMBERS: /api/team/members
// ════════════════════════════════════════════════════════════════

func (h *TeamHandler) ListMembers(c *gin.Context) { h.list(c, nil) }

func (h *TeamHandler) Current(c *gin.Context) {
	status := lifecycle.StatusCurrent
	h.list(c, &status)
}

func (h *TeamHandler) Archived(c *gin.Context) {
	status := lifecycle.StatusArchived
	h.list(c, &status)
}

func (h *TeamHandler) list(c *gin.Context, roster *lifecycle.RosterStatus) {
	values := c.Request.URL.Query()
	p := query.ParseListParams(values)

	f := team.MemberFilter{
		IsExecutive: query.BoolParam(values, "is_executive"),
		StartYear:   query.IntParam(values, "start_year"),
		Roster:      roster,
	}
	if raw := query.StringParam(values, "role"); raw != nil {
		id := utils.ParseStringToUUID(*raw)
		f.RoleID = &id
	}

	page, err := h.service.ListMembers(c.Request.Context(), p, f)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, response.Map(page.Items, h.listItem(c)), page.Page, page.PageSize, page.Total)
}

func (h *TeamHandler) Executive(c *gin.Context) {
	items, err := h.service.Executive(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, response.Map(items, h.listItem(c)))
}

func (h *TeamHandler) ByRole(c *gin.Context) {
	groups, err := h.service.ByRole(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	toItem := h.listItem(c)
	out := response.Map(groups, func(g team.RoleGroup) team.RoleGroupResponse {
		return team.RoleGroupResponse{Role: g.Role, Members: response.Map(g.Members, toItem)}
	})
	response.Success(c, http.StatusOK, out)
}

func (h *TeamHandler) GetMember(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	m, err := h.service.GetMember(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.respond(c, http.StatusOK, m)
}

func (h *TeamHandler) listItem(c *gin.Context) func(*team.Member) team.MemberListItem {
	base := media.BaseFromRequest(c.Request)
	now := h.clock.Now()
	return func(m *team.Member) team.MemberListItem {
		return m.ToListItem(h.resolver, base, now)
	}
}

func (h *TeamHandler) respond(c *gin.Context, status int, m *team.Member) {
	response.Success(c, status, m.ToResponse(h.resolver, media.BaseFromRequest(c.Request), h.clock.Now()))
}

// ════════════════════════════════════════════════════════════════
// ADMIN: /api/admin/team/members
// ════════════════════════════════════════════════════════════════

func (h *TeamHandler) CreateMember(c *gin.Context) {
	var req team.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	m, err := h.service.CreateMember(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, m)
}

func (h *TeamHandler) UpdateMember(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	var req team.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	m, err := h.service.UpdateMember(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.respond(c, http.StatusOK, m)
}

func (h *TeamHandler) DeleteMember(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := h.service.DeleteMember(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
