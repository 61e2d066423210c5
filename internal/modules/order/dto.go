package order

import (
	"time"

	"oficina/internal/domain"
)

type CreateOrderRequest struct {
	Numero            string    `json:"numero"`
	Tipo              string    `json:"tipo" binding:"required"`
	Cliente           string    `json:"cliente" binding:"required"`
	Modelo            string    `json:"modelo" binding:"required"`
	Chassi            string    `json:"chassi" binding:"required"`
	Descricao         string    `json:"descricao"`
	ConsultorID       *int64    `json:"consultor_id"`
	TecnicoID         *int64    `json:"tecnico_id"`
	DataAbertura      time.Time `json:"data_abertura"`
	ValorMaoDeObra    float64   `json:"valor_mao_de_obra"`
	ValorPecas        float64   `json:"valor_pecas"`
	ValorDeslocamento float64   `json:"valor_deslocamento"`
}

type UpdateValoresRequest struct {
	ValorMaoDeObra    float64 `json:"valor_mao_de_obra"`
	ValorPecas        float64 `json:"valor_pecas"`
	ValorDeslocamento float64 `json:"valor_deslocamento"`
}

type AssignRequest struct {
	TecnicoID   *int64 `json:"tecnico_id"`
	ConsultorID *int64 `json:"consultor_id"`
}

// OrderView decorates an order with its derived aging fields for list and
// detail screens.
type OrderView struct {
	domain.ServiceOrder
	DiasAberta int            `json:"dias_aberta"`
	Urgencia   domain.Urgency `json:"urgencia"`
}

func viewOf(o domain.ServiceOrder, now time.Time) OrderView {
	days := domain.DaysOpen(o.DataAbertura, now)
	return OrderView{
		ServiceOrder: o,
		DiasAberta:   days,
		Urgencia:     domain.UrgencyFor(days),
	}
}
