package report

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"oficina/internal/modules/order"
	"oficina/internal/pkg/response"
	"oficina/internal/repository"

	"github.com/gin-gonic/gin"
)

var osReportColumns = []string{
	"Número", "Tipo", "Status", "Cliente", "Modelo", "Chassi",
	"Abertura", "Dias", "Urgência", "Consultor", "Valor Total",
}

type Handler struct {
	orders *order.Service
}

func NewHandler(orders *order.Service) *Handler {
	return &Handler{orders: orders}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rel := rg.Group("/relatorios")
	{
		rel.GET("/os.csv", h.OrdersCSV)
		rel.GET("/os/impressao", h.OrdersPrintable)
	}
}

func fmtValor(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func (h *Handler) ordersTable(c *gin.Context) (Table, float64, error) {
	views, err := h.orders.List(c.Request.Context(), repository.OrderQuery{}, order.SpecFromQuery(c))
	if err != nil {
		return Table{}, 0, err
	}

	var total float64
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		consultor := ""
		if v.ConsultorID != nil {
			consultor = strconv.FormatInt(*v.ConsultorID, 10)
		}
		rows = append(rows, []string{
			v.Numero,
			string(v.Tipo),
			string(v.Status),
			v.Cliente,
			v.Modelo,
			v.Chassi,
			v.DataAbertura.Format("02/01/2006"),
			strconv.Itoa(v.DiasAberta),
			string(v.Urgencia),
			consultor,
			fmtValor(v.ValorTotal),
		})
		total += v.ValorTotal
	}
	return Table{Columns: osReportColumns, Rows: rows}, total, nil
}

func (h *Handler) OrdersCSV(c *gin.Context) {
	table, _, err := h.ordersTable(c)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build report")
		return
	}

	csv := ToCSV(table)
	c.Header("Content-Disposition", `attachment; filename="ordens-servico.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

func (h *Handler) OrdersPrintable(c *gin.Context) {
	table, total, err := h.ordersTable(c)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build report")
		return
	}

	subtitle := fmt.Sprintf("Gerado em %s — %d ordens", time.Now().Format("02/01/2006 15:04"), len(table.Rows))
	doc := ToPrintableHTML(table, "Relatório de Ordens de Serviço", subtitle, map[string]string{
		"Valor total": fmtValor(total),
		"Ordens":      strconv.Itoa(len(table.Rows)),
	})
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}
