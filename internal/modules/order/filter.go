package order

import (
	"encoding/json"
	"strings"
	"time"

	"oficina/internal/domain"
)

// Todos is the "no constraint" sentinel for enum filter fields.
const Todos = "TODOS"

type AgingBucket string

const (
	AgingAte30  AgingBucket = "ATE_30"   // [0,30) days
	Aging30a60  AgingBucket = "30_60"    // [30,60)
	Aging60a90  AgingBucket = "60_90"    // [60,90)
	AgingMais90 AgingBucket = "MAIS_90"  // [90,inf)
)

// FilterSpec is the multi-field filter applied to an in-memory order list.
// Every field is optional; empty string, Todos or nil means no constraint.
// All active predicates are ANDed.
type FilterSpec struct {
	Busca       string     `json:"busca,omitempty"`
	Tipo        string     `json:"tipo,omitempty"`
	Status      string     `json:"status,omitempty"`
	Aging       string     `json:"aging,omitempty"`
	ValorMin    *float64   `json:"valor_min,omitempty"`
	ValorMax    *float64   `json:"valor_max,omitempty"`
	ConsultorID *int64     `json:"consultor_id,omitempty"`
	DataInicio  *time.Time `json:"data_inicio,omitempty"`
	DataFim     *time.Time `json:"data_fim,omitempty"`
	Chassi      string     `json:"chassi,omitempty"`
	Cliente     string     `json:"cliente,omitempty"`
	Modelo      string     `json:"modelo,omitempty"`
}

func enumActive(v string) bool {
	return v != "" && v != Todos
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func agingMatch(bucket AgingBucket, days int) bool {
	switch bucket {
	case AgingAte30:
		return days < 30
	case Aging30a60:
		return days >= 30 && days < 60
	case Aging60a90:
		return days >= 60 && days < 90
	case AgingMais90:
		return days >= 90
	}
	return true
}

func matches(o *domain.ServiceOrder, spec FilterSpec, now time.Time) bool {
	if spec.Busca != "" {
		term := spec.Busca
		if !containsFold(o.Numero, term) &&
			!containsFold(o.Cliente, term) &&
			!containsFold(o.Chassi, term) &&
			!containsFold(o.Modelo, term) {
			return false
		}
	}
	if enumActive(spec.Tipo) && string(o.Tipo) != spec.Tipo {
		return false
	}
	if enumActive(spec.Status) && string(o.Status) != spec.Status {
		return false
	}
	if enumActive(spec.Aging) && !agingMatch(AgingBucket(spec.Aging), domain.DaysOpen(o.DataAbertura, now)) {
		return false
	}
	if spec.ValorMin != nil && o.ValorTotal < *spec.ValorMin {
		return false
	}
	if spec.ValorMax != nil && o.ValorTotal > *spec.ValorMax {
		return false
	}
	if spec.ConsultorID != nil {
		if o.ConsultorID == nil || *o.ConsultorID != *spec.ConsultorID {
			return false
		}
	}
	if spec.DataInicio != nil && o.DataAbertura.Before(*spec.DataInicio) {
		return false
	}
	if spec.DataFim != nil && o.DataAbertura.After(*spec.DataFim) {
		return false
	}
	if spec.Chassi != "" && !containsFold(o.Chassi, spec.Chassi) {
		return false
	}
	if spec.Cliente != "" && !containsFold(o.Cliente, spec.Cliente) {
		return false
	}
	if spec.Modelo != "" && !containsFold(o.Modelo, spec.Modelo) {
		return false
	}
	return true
}

// ApplyFilters narrows orders by spec. Pure: input order preserved, input
// slice untouched, an empty spec returns every element.
func ApplyFilters(orders []domain.ServiceOrder, spec FilterSpec, now time.Time) []domain.ServiceOrder {
	out := make([]domain.ServiceOrder, 0, len(orders))
	for i := range orders {
		if matches(&orders[i], spec, now) {
			out = append(out, orders[i])
		}
	}
	return out
}

// filterSchemaVersion guards the persisted filter payload. Any version
// mismatch or parse failure falls back to an empty spec.
const filterSchemaVersion = 1

type savedFilterEnvelope struct {
	Version int        `json:"version"`
	Spec    FilterSpec `json:"spec"`
}

func encodeSavedFilter(spec FilterSpec) ([]byte, error) {
	return json.Marshal(savedFilterEnvelope{Version: filterSchemaVersion, Spec: spec})
}

func decodeSavedFilter(raw []byte) (FilterSpec, bool) {
	var env savedFilterEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return FilterSpec{}, false
	}
	if env.Version != filterSchemaVersion {
		return FilterSpec{}, false
	}
	return env.Spec, true
}
