package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"kuai-backend/internal/domains/sitesearch"
	"kuai-backend/internal/shared/response"
)

type SearchHandler struct {
	service sitesearch.Service
}

func NewSearchHandler(svc sitesearch.Service) *SearchHandler {
	return &SearchHandler{service: svc}
}

// Search - GET /api/search?q=&limit=&kind=news,event
func (h *SearchHandler) Search(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, "limit must be an integer")
			return
		}
		limit = n
	}

	var kinds []string
	for _, k := range strings.Split(c.Query("kind"), ",") {
		if k = strings.TrimSpace(k); k != "" {
			kinds = append(kinds, k)
		}
	}

	out, err := h.service.Search(c.Request.Context(), c.Query("q"), kinds, limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}
