package order

import (
	"time"

	"oficina/internal/domain"
)

// StatusUpdate carries a candidate status plus the status-specific fields
// supplied with it. Empty strings and nil times mean "not supplied".
type StatusUpdate struct {
	Status          domain.OrderStatus `json:"status"`
	NumeroOrcamento string             `json:"numero_orcamento,omitempty"`
	NumeroPedido    string             `json:"numero_pedido,omitempty"`
	MotivoPausa     string             `json:"motivo_pausa,omitempty"`
	TipoDiagnostico string             `json:"tipo_diagnostico,omitempty"`
	LocalAtual      string             `json:"local_atual,omitempty"`
	PrevisaoChegada *time.Time         `json:"previsao_chegada,omitempty"`
	PrevisaoRetorno *time.Time         `json:"previsao_retorno,omitempty"`
}

// requiredFieldErrors is the lookup table of per-target required fields.
// Deliberately NOT a transition graph: any non-terminal status may move to
// any other, only the extra data differs. Restricting the graph is an open
// product decision.
var requiredFieldErrors = map[domain.OrderStatus]error{
	domain.StatusAguardandoAprovacaoOrcamento: ErrQuoteRequired,
	domain.StatusAguardandoPecas:              ErrPedidoRequired,
	domain.StatusPausada:                      ErrMotivoRequired,
}

func (u StatusUpdate) requiredFieldPresent() bool {
	switch u.Status {
	case domain.StatusAguardandoAprovacaoOrcamento:
		return u.NumeroOrcamento != ""
	case domain.StatusAguardandoPecas:
		return u.NumeroPedido != ""
	case domain.StatusPausada:
		return u.MotivoPausa != ""
	}
	return true
}

// ValidateTransition checks a candidate transition. It never writes; a
// returned error means the caller must not touch the store.
func ValidateTransition(current domain.OrderStatus, u StatusUpdate) error {
	if !u.Status.Valid() {
		return ErrInvalidStatus
	}
	if current.Terminal() {
		return ErrOrderClosed
	}
	if u.Status == current {
		return ErrSameStatus
	}
	if !u.requiredFieldPresent() {
		return requiredFieldErrors[u.Status]
	}
	return nil
}

// fields builds the column map written together with the status. Only
// supplied values are included so an unrelated annotation is never
// overwritten. Entering a closed status stamps the closing date.
func (u StatusUpdate) fields(now time.Time) map[string]any {
	out := map[string]any{}
	if u.NumeroOrcamento != "" {
		out["numero_orcamento"] = u.NumeroOrcamento
	}
	if u.NumeroPedido != "" {
		out["numero_pedido"] = u.NumeroPedido
	}
	if u.MotivoPausa != "" {
		out["motivo_pausa"] = u.MotivoPausa
	}
	if u.TipoDiagnostico != "" {
		out["tipo_diagnostico"] = u.TipoDiagnostico
	}
	if u.LocalAtual != "" {
		out["local_atual"] = u.LocalAtual
	}
	if u.PrevisaoChegada != nil {
		out["previsao_chegada"] = *u.PrevisaoChegada
	}
	if u.PrevisaoRetorno != nil {
		out["previsao_retorno"] = *u.PrevisaoRetorno
	}
	if u.Status.Closed() {
		out["data_fechamento"] = now
	}
	return out
}
