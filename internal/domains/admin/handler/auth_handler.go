package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kuai-backend/internal/domains/admin"
	"kuai-backend/internal/shared/middleware"
	"kuai-backend/internal/shared/response"
)

type AuthHandler struct {
	service admin.Service
}

func NewAuthHandler(svc admin.Service) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login - POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req admin.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	out, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, out)
}

// Me - GET /api/admin/me
func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := middleware.AdminIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "missing admin context")
		return
	}
	a, err := h.service.Me(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, a)
}
