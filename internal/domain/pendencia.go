package domain

import "time"

type PendenciaType string

const (
	PendenciaPecas     PendenciaType = "PECAS"
	PendenciaServico   PendenciaType = "SERVICO"
	PendenciaTerceiros PendenciaType = "TERCEIROS"
	PendenciaGarantia  PendenciaType = "GARANTIA"
	PendenciaCliente   PendenciaType = "CLIENTE"
	PendenciaOutros    PendenciaType = "OUTROS"
)

type PendenciaStatus string

const (
	PendenciaPendente     PendenciaStatus = "PENDENTE"
	PendenciaEmAndamento  PendenciaStatus = "EM_ANDAMENTO"
	PendenciaResolvida    PendenciaStatus = "RESOLVIDA"
	PendenciaCanceladaSts PendenciaStatus = "CANCELADA"
)

func (s PendenciaStatus) Open() bool {
	return s == PendenciaPendente || s == PendenciaEmAndamento
}

// Pendencia is a blocking issue attached to a service order. It is opened
// and resolved independently of the order's own status.
type Pendencia struct {
	ID            int64           `json:"id"`
	OrderID       int64           `json:"ordem_servico_id" validate:"required"`
	Tipo          PendenciaType   `json:"tipo"`
	Status        PendenciaStatus `json:"status"`
	Descricao     string          `json:"descricao" gorm:"type:text"`
	Responsavel   string          `json:"responsavel,omitempty"`
	DataAbertura  time.Time       `json:"data_abertura"`
	DataPrevista  *time.Time      `json:"data_prevista,omitempty"`
	DataResolvida *time.Time      `json:"data_resolvida,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
