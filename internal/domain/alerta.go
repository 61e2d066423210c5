package domain

import "time"

type AlertaType string

const (
	AlertaOSAtrasada       AlertaType = "os_atrasada"
	AlertaGarantiaPendente AlertaType = "garantia_pendente"
	AlertaPecasChegando    AlertaType = "pecas_chegando"
	AlertaPendenciaVencida AlertaType = "pendencia_vencida"
)

type AlertaPriority string

const (
	PrioridadeBaixa   AlertaPriority = "BAIXA"
	PrioridadeNormal  AlertaPriority = "NORMAL"
	PrioridadeAlta    AlertaPriority = "ALTA"
	PrioridadeUrgente AlertaPriority = "URGENTE"
)

type Alerta struct {
	ID         int64          `json:"id"`
	UserID     int64          `json:"user_id"`
	OrderID    *int64         `json:"ordem_servico_id,omitempty"`
	Tipo       AlertaType     `json:"tipo"`
	Prioridade AlertaPriority `json:"prioridade"`
	Titulo     string         `json:"titulo"`
	Mensagem   string         `json:"mensagem,omitempty"`
	Lido       bool           `json:"lido"`
	LidoEm     *time.Time     `json:"lido_em,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
