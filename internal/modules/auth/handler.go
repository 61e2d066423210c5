package auth

import (
	"errors"
	"net/http"

	"oficina/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes registers the unauthenticated auth endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/auth")
	{
		g.POST("/login", h.Login)
	}
}

// RegisterProtectedRoutes registers the endpoints that need a valid token.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/auth")
	{
		g.GET("/me", h.Me)
		g.POST("/senha", h.ChangePassword)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
		return
	case errors.Is(err, ErrUserInactive):
		response.Error(c, http.StatusForbidden, "USER_INACTIVE", err.Error())
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "LOGIN_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": result.Token,
		"user":  toUserResponse(result.User),
	})
}

func (h *Handler) Me(c *gin.Context) {
	u, err := h.service.Me(c.Request.Context(), c.GetInt64("user_id"))
	if errors.Is(err, ErrUserNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(u))
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	err := h.service.ChangePassword(c.Request.Context(), c.GetInt64("user_id"), req)
	switch {
	case errors.Is(err, ErrWeakPassword):
		response.Error(c, http.StatusBadRequest, "WEAK_PASSWORD", err.Error())
		return
	case errors.Is(err, ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
		return
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "UPDATE_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true})
}
