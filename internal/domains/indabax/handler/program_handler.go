package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"kuai-backend/internal/domains/indabax"
	"kuai-backend/internal/shared/media"
	"kuai-backend/internal/shared/query"
	"kuai-backend/internal/shared/response"
	"kuai-backend/internal/shared/types"
	"kuai-backend/internal/shared/utils"
)

// uuidParam: filter id sai format → uuid.Nil, trả list rỗng thay vì 400
func uuidParam(c *gin.Context, key string) *uuid.UUID {
	raw := query.StringParam(c.Request.URL.Query(), key)
	if raw == nil {
		return nil
	}
	id := utils.ParseStringToUUID(*raw)
	return &id
}

// ════════════════════════════════════════════════════════════════
// SPEAKERS: /api/indabax/speakers, /keynote, /:id
// ════════════════════════════════════════════════════════════════

func (h *IndabaxHandler) speakerResponse(c *gin.Context) func(*indabax.Speaker) indabax.SpeakerResponse {
	base := media.BaseFromRequest(c.Request)
	return func(s *indabax.Speaker) indabax.SpeakerResponse { return s.ToResponse(h.resolver, base) }
}

func (h *IndabaxHandler) ListSpeakers(c *gin.Context) {
	values := c.Request.URL.Query()
	p := query.ParseListParams(values)
	f := indabax.SpeakerFilter{
		EventID:   uuidParam(c, "event"),
		IsKeynote: query.BoolParam(values, "is_keynote"),
	}

	page, err := h.service.ListSpeakers(c.Request.Context(), p, f)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, response.Map(page.Items, h.speakerResponse(c)), page.Page, page.PageSize, page.Total)
}

func (h *IndabaxHandler) KeynoteSpeakers(c *gin.Context) {
	items, err := h.service.KeynoteSpeakers(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, response.Map(items, h.speakerResponse(c)))
}

func (h *IndabaxHandler) GetSpeaker(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	s, err := h.service.GetSpeaker(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.speakerResponse(c)(s))
}

// ════════════════════════════════════════════════════════════════
// SESSIONS: /api/indabax/sessions, /:id
// ════════════════════════════════════════════════════════════════

func (h *IndabaxHandler) ListSessions(c *gin.Context) {
	values := c.Request.URL.Query()
	p := query.ParseListParams(values)
	f := indabax.SessionFilter{
		EventID:     uuidParam(c, "event"),
		SessionType: query.StringParam(values, "session_type"),
		SpeakerID:   uuidParam(c, "speaker"),
	}
	if f.SessionType != nil && !indabax.SessionType(*f.SessionType).Valid() {
		response.BadRequest(c, "session_type must be one of keynote, talk, workshop, panel, tutorial")
		return
	}
	if raw := query.StringParam(values, "date"); raw != nil {
		d, err := types.ParseDate(*raw)
		if err != nil {
			response.BadRequest(c, "date must be YYYY-MM-DD")
			return
		}
		f.Date = &d
	}

	page, err := h.service.ListSessions(c.Request.Context(), p, f)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, response.Map(page.Items, (*indabax.Session).ToResponse), page.Page, page.PageSize, page.Total)
}

func (h *IndabaxHandler) GetSession(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	s, err := h.service.GetSession(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, s.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// GALLERY: /api/indabax/gallery, /:id
// ════════════════════════════════════════════════════════════════

func (h *IndabaxHandler) galleryResponse(c *gin.Context) func(*indabax.GalleryItem) indabax.GalleryItemResponse {
	base := media.BaseFromRequest(c.Request)
	return func(g *indabax.GalleryItem) indabax.GalleryItemResponse { return g.ToResponse(h.resolver, base) }
}

func (h *IndabaxHandler) ListGallery(c *gin.Context) {
	p := query.ParseListParams(c.Request.URL.Query())
	page, err := h.service.ListGallery(c.Request.Context(), p, uuidParam(c, "event"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Paginated(c, response.Map(page.Items, h.galleryResponse(c)), page.Page, page.PageSize, page.Total)
}

func (h *IndabaxHandler) GetGalleryItem(c *gin.Context) {
	id, err := utils.ParamUUID(c, "id")
	if err != nil {
		response.FromError(c, err)
		return
	}
	g, err := h.service.GetGalleryItem(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.galleryResponse(c)(g))
}

// ════════════════════════════════════════════════════════════════
// RESOURCES: /api/indabax/resources
// ════════════════════════════════════════════════════════════════

func (h *IndabaxHandler) ListResources(c *gin.Context) {
	values := c.Request.URL.Query()
	p := query.ParseListParams(values)

	resourceType := query.StringParam(values, "resource_type")
	if resourceType != nil && !validResourceType(*resourceType) {
		response.BadRequest(c, "resource_type must be one of video, doc, slide, link, file")
		return
	}

	page, err := h.service.ListResources(c.Request.Context(), p, resourceType)
	if err != nil {
		response.FromError(c, err)
		return
	}

	base := media.BaseFromRequest(c.Request)
	items := response.Map(page.Items, func(r *indabax.Resource) indabax.ResourceResponse {
		return r.ToResponse(h.resolver, base)
	})
	response.Paginated(c, items, page.Page, page.PageSize, page.Total)
}

func validResourceType(raw string) bool {
	for _, t := range indabax.ResourceTypes {
		if string(t) == raw {
			return true
		}
	}
	return false
}
