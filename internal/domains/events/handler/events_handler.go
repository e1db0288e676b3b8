package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kuai-backend/internal/domains/events"
	"kuai-backend/internal/shared/lifecycle"
	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/response"
	"kuai-backend/internal/shared/types"
	"kuai-backend/internal/shared/utils"
	"kuai-backend/pkg/clock"
)

type EventsHandler struct {
	service  events.Service
	resolver *media.Resolver
	clock    clock.Clock
}

func NewEventsHandler(svc events.Service, resolver *media.Resolver, clk clock.Clock) *EventsHandler {
	return &EventsHandler{service: svc, resolver: resolver, clock: clk}
}

// ════════════════════════════════════════════════════════════════
// CATEGORIES: /api/events/categories
// ════════════════════════════════════════════════════════════════

func (h *EventsHandler) ListCategories(c *gin.Context) {
	p := query.ParseListParams(c.Request.URL.Query())
	page, err := h.service.ListCategories(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, page.Items, page.Page, page.PageSize, page.Total)
}

func (h *EventsHandler) GetCategory(c *gin.Context) {
	category, err := h.service.GetCategory(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, category)
}

func (h *EventsHandler) CreateCategory(c *gin.Context) {
	var req events.CategoryRequest
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
// EVENTS: /api/events, /upcoming, /past, /featured, /:slug
// ════════════════════════════════════════════════════════════════

func (h *EventsHandler) List(c *gin.Context)     { h.list(c, events.ScopeAll) }
func (h *EventsHandler) Upcoming(c *gin.Context) { h.list(c, events.ScopeUpcoming) }
func (h *EventsHandler) Past(c *gin.Context)     { h.list(c, events.ScopePast) }
func (h *EventsHandler) Featured(c *gin.Context) { h.list(c, events.ScopeFeatured) }

func (h *EventsHandler) list(c *gin.Context, scope events.Scope) {
	values := c.Request.URL.Query()
	p := query.ParseListParams(values)

	f := events.EventFilter{
		Status:     query.StringParam(values, "status"),
		IsFeatured: query.BoolParam(values, "is_featured"),
	}
	if f.Status != nil && !lifecycle.EventStatus(*f.Status).Valid() {
		response.BadRequest(c, "status must be one of upcoming, ongoing, completed, cancelled")
		return
	}
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

	page, err := h.service.ListEvents(c.Request.Context(), p, f, scope)
	if err != nil {
		response.FromError(c, err)
		return
	}

	base := media.BaseFromRequest(c.Request)
	today := types.DateOf(h.clock.Now())
	items := response.Map(page.Items, func(e *events.Event) events.EventListItem {
		return e.ToListItem(h.resolver, base, today)
	})
	response.Paginated(c, items, page.Page, page.PageSize, page.Total)
}

func (h *EventsHandler) Get(c *gin.Context) {
	e, err := h.service.GetEvent(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.respond(c, http.StatusOK, e)
}

func (h *EventsHandler) respond(c *gin.Context, status int, e *events.Event) {
	today := types.DateOf(h.clock.Now())
	response.Success(c, status, e.ToResponse(h.resolver, media.BaseFromRequest(c.Request), today))
}

// ════════════════════════════════════════════════════════════════
// ADMIN: /api/admin/events
// ════════════════════════════════════════════════════════════════

func (h *EventsHandler) Create(c *gin.Context) {
	var req events.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	e, err := h.service.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, e)
}

func (h *EventsHandler) Update(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	var req events.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	e, err := h.service.UpdateEvent(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.respond(c, http.StatusOK, e)
}

func (h *EventsHandler) Delete(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := h.service.DeleteEvent(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
