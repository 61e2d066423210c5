package domain

import "time"

type OrderType string

const (
	TipoNormal   OrderType = "NORMAL"
	TipoGarantia OrderType = "GARANTIA"
)

type OrderStatus string

const (
	StatusEmExecucao                   OrderStatus = "EM_EXECUCAO"
	StatusAguardandoAprovacaoOrcamento OrderStatus = "AGUARDANDO_APROVACAO_ORCAMENTO"
	StatusAguardandoPecas              OrderStatus = "AGUARDANDO_PECAS"
	StatusAguardandoPagamento          OrderStatus = "AGUARDANDO_PAGAMENTO"
	StatusEmDiagnostico                OrderStatus = "EM_DIAGNOSTICO"
	StatusEmTransito                   OrderStatus = "EM_TRANSITO"
	StatusPausada                      OrderStatus = "PAUSADA"
	StatusConcluida                    OrderStatus = "CONCLUIDA"
	StatusFaturada                     OrderStatus = "FATURADA"
	StatusCancelada                    OrderStatus = "CANCELADA"
)

// AllOrderStatuses lists every valid status. Order matters only for display.
var AllOrderStatuses = []OrderStatus{
	StatusEmExecucao,
	StatusAguardandoAprovacaoOrcamento,
	StatusAguardandoPecas,
	StatusAguardandoPagamento,
	StatusEmDiagnostico,
	StatusEmTransito,
	StatusPausada,
	StatusConcluida,
	StatusFaturada,
	StatusCancelada,
}

func (s OrderStatus) Valid() bool {
	for _, v := range AllOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal statuses accept no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == StatusFaturada || s == StatusCancelada
}

func (s OrderStatus) Closed() bool {
	return s == StatusConcluida || s == StatusFaturada
}

type ServiceOrder struct {
	ID             int64       `json:"id"`
	Numero         string      `json:"numero" validate:"required"`
	Tipo           OrderType   `json:"tipo"`
	Status         OrderStatus `json:"status"`
	DataAbertura   time.Time   `json:"data_abertura"`
	DataFechamento *time.Time  `json:"data_fechamento,omitempty"`
	TecnicoID      *int64      `json:"tecnico_id,omitempty"`
	ConsultorID    *int64      `json:"consultor_id,omitempty"`
	Cliente        string      `json:"cliente"`
	Modelo         string      `json:"modelo"`
	Chassi         string      `json:"chassi"`
	Descricao      string      `json:"descricao,omitempty" gorm:"type:text"`

	ValorMaoDeObra    float64 `json:"valor_mao_de_obra"`
	ValorPecas        float64 `json:"valor_pecas"`
	ValorDeslocamento float64 `json:"valor_deslocamento"`
	// ValorTotal is recomputed from the three components on every write.
	ValorTotal float64 `json:"valor_total"`

	// Status-specific annotations. Which of these are required is decided
	// by the transition rules, not here.
	NumeroOrcamento string     `json:"numero_orcamento,omitempty"`
	NumeroPedido    string     `json:"numero_pedido,omitempty"`
	MotivoPausa     string     `json:"motivo_pausa,omitempty"`
	TipoDiagnostico string     `json:"tipo_diagnostico,omitempty"`
	LocalAtual      string     `json:"local_atual,omitempty"`
	PrevisaoChegada *time.Time `json:"previsao_chegada,omitempty"`
	PrevisaoRetorno *time.Time `json:"previsao_retorno,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
