package order

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"oficina/internal/pkg/response"
	"oficina/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	os := rg.Group("/os")
	{
		os.GET("", h.List)
		os.POST("", h.Create)
		os.GET("/:id", h.Get)
		os.PATCH("/:id/status", h.UpdateStatus)
		os.PATCH("/:id/valores", h.UpdateValores)
		os.PATCH("/:id/atribuicao", h.Assign)
		os.DELETE("/:id", h.Delete)

		os.GET("/filtros/:screen", h.LoadFilter)
		os.PUT("/filtros/:screen", h.SaveFilter)
	}
}

// RegisterTechnicianRoutes exposes the technician's own work queue. It lives
// outside the /os group because technicians are not entitled to the full
// order screen.
func (h *Handler) RegisterTechnicianRoutes(rg *gin.RouterGroup) {
	rg.GET("/minhas-os", h.MyOrders)
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return 0, false
	}
	return id, true
}

// SpecFromQuery maps the list screen's query string onto a FilterSpec.
// Absent parameters and the TODOS sentinel mean no constraint.
func SpecFromQuery(c *gin.Context) FilterSpec {
	spec := FilterSpec{
		Busca:   c.Query("busca"),
		Tipo:    c.Query("tipo"),
		Status:  c.Query("status"),
		Aging:   c.Query("aging"),
		Chassi:  c.Query("chassi"),
		Cliente: c.Query("cliente"),
		Modelo:  c.Query("modelo"),
	}
	if v := c.Query("valor_min"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			spec.ValorMin = &f
		}
	}
	if v := c.Query("valor_max"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			spec.ValorMax = &f
		}
	}
	if v := c.Query("consultor_id"); v != "" && v != Todos {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			spec.ConsultorID = &id
		}
	}
	if v := c.Query("data_inicio"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			spec.DataInicio = &t
		}
	}
	if v := c.Query("data_fim"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			// Inclusive end: anything opened on that calendar day counts.
			end := t.Add(24*time.Hour - time.Nanosecond)
			spec.DataFim = &end
		}
	}
	return spec
}

func (h *Handler) List(c *gin.Context) {
	q := repository.OrderQuery{}
	if v := c.Query("tecnico_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			q.TecnicoID = id
		}
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.Limit = n
		}
	}

	views, err := h.service.List(c.Request.Context(), q, SpecFromQuery(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list orders")
		return
	}
	response.Success(c, http.StatusOK, views)
}

// MyOrders lists the orders assigned to the authenticated technician.
func (h *Handler) MyOrders(c *gin.Context) {
	q := repository.OrderQuery{TecnicoID: c.GetInt64("user_id")}

	views, err := h.service.List(c.Request.Context(), q, SpecFromQuery(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list orders")
		return
	}
	response.Success(c, http.StatusOK, views)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	view, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch order")
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	o, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid order payload")
		case errors.Is(err, ErrDuplicateNumero):
			response.Error(c, http.StatusConflict, "DUPLICATE_NUMERO", "Order number already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create order")
		}
		return
	}
	response.Success(c, http.StatusCreated, o)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var upd StatusUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	view, err := h.service.UpdateStatus(c.Request.Context(), id, upd)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		case errors.Is(err, ErrInvalidStatus),
			errors.Is(err, ErrSameStatus),
			errors.Is(err, ErrOrderClosed),
			errors.Is(err, ErrQuoteRequired),
			errors.Is(err, ErrPedidoRequired),
			errors.Is(err, ErrMotivoRequired):
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_TRANSITION", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update status")
		}
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) UpdateValores(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateValoresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	view, err := h.service.UpdateValores(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		case errors.Is(err, ErrOrderClosed):
			response.Error(c, http.StatusUnprocessableEntity, "ORDER_CLOSED", "Terminal order cannot be modified")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Monetary values must be non-negative")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update values")
		}
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) Assign(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	view, err := h.service.Assign(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		case errors.Is(err, ErrOrderClosed):
			response.Error(c, http.StatusUnprocessableEntity, "ORDER_CLOSED", "Terminal order cannot be reassigned")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to assign order")
		}
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		case errors.Is(err, ErrOrderClosed):
			response.Error(c, http.StatusUnprocessableEntity, "ORDER_CLOSED", "Terminal order cannot be deleted")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete order")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) LoadFilter(c *gin.Context) {
	spec := h.service.LoadFilter(c.Request.Context(), c.GetInt64("user_id"), c.Param("screen"))
	response.Success(c, http.StatusOK, spec)
}

func (h *Handler) SaveFilter(c *gin.Context) {
	var spec FilterSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.service.SaveFilter(c.Request.Context(), c.GetInt64("user_id"), c.Param("screen"), spec); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save filter")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"saved": true})
}
