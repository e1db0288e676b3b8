package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kuai-backend/internal/domains/indabax"
	"kuai-backend/internal/shared/lifecycle"
	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/response"
	"kuai-backend/internal/shared/types"
	"kuai-backend/internal/shared/utils"
	"kuai-backend/pkg/clock"
)

type IndabaxHandler struct {
	service  indabax.Service
	resolver *media.Resolver
	clock    clock.Clock
}

func NewIndabaxHandler(svc indabax.Service, resolver *media.Resolver, clk clock.Clock) *IndabaxHandler {
	return &IndabaxHandler{service: svc, resolver: resolver, clock: clk}
}

// ════════════════════════════════════════════════════════════════
// SETTINGS: /api/indabax/settings
// ════════════════════════════════════════════════════════════════

func (h *IndabaxHandler) settingsResponse(c *gin.Context) func(*indabax.Settings) indabax.SettingsResponse {
	base := media.BaseFromRequest(c.Request)
	return func(s *indabax.Settings) indabax.SettingsResponse { return s.ToResponse(h.resolver, base) }
}

func (h *IndabaxHandler) ListSettings(c *gin.Context) {
	p := query.ParseListParams(c.Request.URL.Query())
	page, err := h.service.ListSettings(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, response.Map(page.Items, h.settingsResponse(c)), page.Page, page.PageSize, page.Total)
}

func (h *IndabaxHandler) CurrentSettings(c *gin.Context) {
	s, err := h.service.CurrentSettings(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.settingsResponse(c)(s))
}

func (h *IndabaxHandler) CreateSettings(c *gin.Context) {
	var req indabax.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	s, err := h.service.CreateSettings(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, h.settingsResponse(c)(s))
}

func (h *IndabaxHandler) UpdateSettings(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	var req indabax.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	s, err := h.service.UpdateSettings(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.settingsResponse(c)(s))
}

func (h *IndabaxHandler) DeleteSettings(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := h.service.DeleteSettings(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ════════════════════════════════════════════════════════════════
// EVENTS: /api/indabax/events, /latest, /:slug, /:slug/speakers, /:slug/sessions
// ════════════════════════════════════════════════════════════════

func (h *IndabaxHandler) ListEvents(c *gin.Context) {
	values := c.Request.URL.Query()
	p := query.ParseListParams(values)

	f := indabax.EventFilter{IsFeatured: query.BoolParam(values, "is_featured")}
	if raw := query.StringParam(values, "date"); raw != nil {
		d, err := types.ParseDate(*raw)
		if err != nil {
			response.BadRequest(c, "date must be YYYY-MM-DD")
			return
		}
		f.Date = &d
	}

	page, err := h.service.ListEvents(c.Request.Context(), p, f)
	if err != nil {
		response.FromError(c, err)
		return
	}

	base := media.BaseFromRequest(c.Request)
	today := types.DateOf(h.clock.Now())
	items := response.Map(page.Items, func(e *indabax.Event) indabax.EventListItem {
		return e.ToListItem(h.resolver, base, today)
	})
	response.Paginated(c, items, page.Page, page.PageSize, page.Total)
}

func (h *IndabaxHandler) LatestEvent(c *gin.Context) {
	e, err := h.service.LatestEvent(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.respondEvent(c, http.StatusOK, e)
}

func (h *IndabaxHandler) GetEvent(c *gin.Context) {
	e, err := h.service.GetEvent(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.respondEvent(c, http.StatusOK, e)
}

func (h *IndabaxHandler) EventSpeakers(c *gin.Context) {
	items, err := h.service.EventSpeakers(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, response.Map(items, h.speakerResponse(c)))
}

func (h *IndabaxHandler) EventSessions(c *gin.Context) {
	items, err := h.service.EventSessions(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, response.Map(items, (*indabax.Session).ToResponse))
}

func (h *IndabaxHandler) CreateEvent(c *gin.Context) {
	var req indabax.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	e, err := h.service.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.respondEvent(c, http.StatusCreated, e)
}

func (h *IndabaxHandler) UpdateEvent(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	var req indabax.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	e, err := h.service.UpdateEvent(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	h.respondEvent(c, http.StatusOK, e)
}

func (h *IndabaxHandler) DeleteEvent(c *gin.Context) {
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

func (h *IndabaxHandler) respondEvent(c *gin.Context, status int, e *indabax.Event) {
	today := types.DateOf(h.clock.Now())
	response.Success(c, status, e.ToResponse(h.resolver, media.BaseFromRequest(c.Request), today))
}

// ════════════════════════════════════════════════════════════════
// HERO: /api/indabax/hero
// ════════════════════════════════════════════════════════════════

func (h *IndabaxHandler) heroResponse(c *gin.Context) func(*indabax.Hero) indabax.HeroResponse {
	base := media.BaseFromRequest(c.Request)
	return func(hero *indabax.Hero) indabax.HeroResponse { return hero.ToResponse(h.resolver, base) }
}

func (h *IndabaxHandler) ListHeroes(c *gin.Context) {
	p := query.ParseListParams(c.Request.URL.Query())
	page, err := h.service.ListHeroes(c.Request.Context(), p)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, response.Map(page.Items, h.heroResponse(c)), page.Page, page.PageSize, page.Total)
}

func (h *IndabaxHandler) CreateHero(c *gin.Context) {
	var req indabax.HeroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	hero, err := h.service.CreateHero(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, h.heroResponse(c)(hero))
}

func (h *IndabaxHandler) UpdateHero(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	var req indabax.HeroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	hero, err := h.service.UpdateHero(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.heroResponse(c)(hero))
}

// ════════════════════════════════════════════════════════════════
// LEADERS: /api/indabax/leaders, /current, /archived, /archive, /:id
// ════════════════════════════════════════════════════════════════

func (h *IndabaxHandler) leaderResponse(c *gin.Context) func(*indabax.Leader) indabax.LeaderResponse {
	base := media.BaseFromRequest(c.Request)
	now := h.clock.Now()
	return func(l *indabax.Leader) indabax.LeaderResponse { return l.ToResponse(h.resolver, base, now) }
}

func (h *IndabaxHandler) ListLeaders(c *gin.Context) { h.listLeaders(c, nil) }

func (h *IndabaxHandler) CurrentLeaders(c *gin.Context) {
	status := lifecycle.StatusCurrent
	h.listLeaders(c, &status)
}

func (h *IndabaxHandler) ArchivedLeaders(c *gin.Context) {
	status := lifecycle.StatusArchived
	h.listLeaders(c, &status)
}

func (h *IndabaxHandler) listLeaders(c *gin.Context, roster *lifecycle.RosterStatus) {
	values := c.Request.URL.Query()
	p := query.ParseListParams(values)

	f := indabax.LeaderFilter{
		Role:      query.StringParam(values, "role"),
		StartYear: query.IntParam(values, "start_year"),
		EndYear:   query.IntParam(values, "end_year"),
		Roster:    roster,
	}

	page, err := h.service.ListLeaders(c.Request.Context(), p, f)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, response.Map(page.Items, h.leaderResponse(c)), page.Page, page.PageSize, page.Total)
}

func (h *IndabaxHandler) LeaderArchive(c *gin.Context) {
	groups, err := h.service.LeaderArchive(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	toResponse := h.leaderResponse(c)
	out := response.Map(groups, func(g indabax.ArchiveYear) indabax.ArchiveYearResponse {
		return indabax.ArchiveYearResponse{Year: g.Year, Leaders: response.Map(g.Leaders, toResponse)}
	})
	response.Success(c, http.StatusOK, out)
}

func (h *IndabaxHandler) GetLeader(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	l, err := h.service.GetLeader(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.leaderResponse(c)(l))
}

func (h *IndabaxHandler) CreateLeader(c *gin.Context) {
	var req indabax.LeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	l, err := h.service.CreateLeader(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, h.leaderResponse(c)(l))
}

func (h *IndabaxHandler) UpdateLeader(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	var req indabax.LeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	l, err := h.service.UpdateLeader(c.Request.Context(), id, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.leaderResponse(c)(l))
}

func (h *IndabaxHandler) DeleteLeader(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	if err := h.service.DeleteLeader(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
