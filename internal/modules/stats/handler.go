package stats

import (
	"net/http"
	"strconv"

	"oficina/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	st := rg.Group("/stats")
	{
		st.GET("/dashboard", h.Dashboard)
		st.GET("/tendencia", h.Trend)
		st.GET("/consultores", h.Consultores)
		st.GET("/clientes", h.TopClients)
	}
}

func (h *Handler) Dashboard(c *gin.Context) {
	st, err := h.service.Dashboard(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build dashboard stats")
		return
	}
	response.Success(c, http.StatusOK, st)
}

func (h *Handler) Trend(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("dias", "30"))
	points, err := h.service.Trend(c.Request.Context(), days)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build trend")
		return
	}
	response.Success(c, http.StatusOK, points)
}

func (h *Handler) Consultores(c *gin.Context) {
	stats, err := h.service.ConsultantPerformance(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build consultant stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) TopClients(c *gin.Context) {
	n, _ := strconv.Atoi(c.DefaultQuery("n", "10"))
	stats, err := h.service.TopClients(c.Request.Context(), n)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build client stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}
