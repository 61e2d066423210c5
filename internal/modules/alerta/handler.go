package alerta

import (
	"errors"
	"net/http"
	"strconv"

	"oficina/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // CORS is enforced at the HTTP layer
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// RegisterRoutes registers alert routes under the authenticated group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/alertas")
	{
		g.GET("", h.List)
		g.GET("/nao-lidos", h.UnreadCount)
		g.PATCH("/:id/lido", h.MarkRead)
		g.POST("/lidos", h.MarkAllRead)
		g.DELETE("/:id", h.Delete)
		g.GET("/ws", h.WebSocket)
	}
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	alertas, err := h.service.List(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", err.Error())
		return
	}

	unread, err := h.service.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"alertas": alertas, "nao_lidos": unread})
}

func (h *Handler) UnreadCount(c *gin.Context) {
	unread, err := h.service.UnreadCount(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"nao_lidos": unread})
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid alert id")
		return
	}

	err = h.service.MarkRead(c.Request.Context(), c.GetInt64("user_id"), id)
	if errors.Is(err, ErrNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "alert not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lido": true})
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	n, err := h.service.MarkAllRead(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"marcados": n})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid alert id")
		return
	}

	err = h.service.Delete(c.Request.Context(), c.GetInt64("user_id"), id)
	if errors.Is(err, ErrNotFound) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "alert not found")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "DELETE_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// WebSocket upgrades the connection and pushes unread-count updates until the
// client goes away. The read loop exists only to detect disconnects.
func (h *Handler) WebSocket(c *gin.Context) {
	userID := c.GetInt64("user_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.Register(userID, conn)
	defer h.hub.Unregister(userID)

	if unread, err := h.service.UnreadCount(c.Request.Context(), userID); err == nil {
		h.hub.PushUnread(userID, unread)
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
