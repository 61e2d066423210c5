package stats

import (
	"sort"
	"time"

	"oficina/internal/domain"
)

// DashboardStats is the flat summary record behind the landing dashboard.
type DashboardStats struct {
	TotalOS      int `json:"total_os"`
	OSAbertas    int `json:"os_abertas"`
	OSConcluidas int `json:"os_concluidas"`
	OSCanceladas int `json:"os_canceladas"`
	OSNormalTipo int `json:"os_tipo_normal"`
	OSGarantia   int `json:"os_tipo_garantia"`

	// Urgency tiers are counted over open orders only; a closed order has
	// no aging badge.
	OSNormais  int `json:"os_normais"`
	OSMedias   int `json:"os_medias"`
	OSAltas    int `json:"os_altas"`
	OSCriticas int `json:"os_criticas"`

	ValorTotal        float64 `json:"valor_total"`
	ValorMaoDeObra    float64 `json:"valor_mao_de_obra"`
	ValorPecas        float64 `json:"valor_pecas"`
	ValorDeslocamento float64 `json:"valor_deslocamento"`

	TempoMedioResolucao float64 `json:"tempo_medio_resolucao"`
	PendenciasAbertas   int     `json:"pendencias_abertas"`
	AlertasNaoLidos     int     `json:"alertas_nao_lidos"`
}

// BuildDashboardStats folds the fetched rows into the dashboard summary.
// An empty input produces an all-zero record, never NaN.
func BuildDashboardStats(orders []domain.ServiceOrder, pendencias []domain.Pendencia, alertas []domain.Alerta, now time.Time) DashboardStats {
	var s DashboardStats
	var resolutionDays, resolved int

	for i := range orders {
		o := &orders[i]
		s.TotalOS++

		switch o.Tipo {
		case domain.TipoGarantia:
			s.OSGarantia++
		default:
			s.OSNormalTipo++
		}

		s.ValorTotal += o.ValorTotal
		s.ValorMaoDeObra += o.ValorMaoDeObra
		s.ValorPecas += o.ValorPecas
		s.ValorDeslocamento += o.ValorDeslocamento

		switch {
		case o.Status.Closed():
			s.OSConcluidas++
			end := now
			if o.DataFechamento != nil {
				end = *o.DataFechamento
			}
			resolutionDays += domain.DaysOpen(o.DataAbertura, end)
			resolved++
		case o.Status == domain.StatusCancelada:
			s.OSCanceladas++
		default:
			s.OSAbertas++
			switch domain.UrgencyFor(domain.DaysOpen(o.DataAbertura, now)) {
			case domain.UrgenciaCritica:
				s.OSCriticas++
			case domain.UrgenciaAlta:
				s.OSAltas++
			case domain.UrgenciaMedia:
				s.OSMedias++
			default:
				s.OSNormais++
			}
		}
	}

	if resolved > 0 {
		s.TempoMedioResolucao = float64(resolutionDays) / float64(resolved)
	}

	for i := range pendencias {
		if pendencias[i].Status.Open() {
			s.PendenciasAbertas++
		}
	}
	for i := range alertas {
		if !alertas[i].Lido {
			s.AlertasNaoLidos++
		}
	}
	return s
}

// TrendPoint is one calendar day of order intake.
type TrendPoint struct {
	Date     string  `json:"date"`
	Total    int     `json:"total"`
	Normais  int     `json:"normais"`
	Garantia int     `json:"garantia"`
	Valor    float64 `json:"valor"`
}

// BuildTrend buckets orders opened within the trailing window into
// per-day points keyed by ISO date, ascending.
func BuildTrend(orders []domain.ServiceOrder, windowDays int, now time.Time) []TrendPoint {
	cutoff := now.AddDate(0, 0, -windowDays)
	buckets := map[string]*TrendPoint{}

	for i := range orders {
		o := &orders[i]
		if o.DataAbertura.Before(cutoff) || o.DataAbertura.After(now) {
			continue
		}
		key := o.DataAbertura.Format("2006-01-02")
		p, ok := buckets[key]
		if !ok {
			p = &TrendPoint{Date: key}
			buckets[key] = p
		}
		p.Total++
		if o.Tipo == domain.TipoGarantia {
			p.Garantia++
		} else {
			p.Normais++
		}
		p.Valor += o.ValorTotal
	}

	out := make([]TrendPoint, 0, len(buckets))
	for _, p := range buckets {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// ConsultantStat summarizes one consultant's book of orders. A nil
// ConsultorID is the "no consultant" bucket.
type ConsultantStat struct {
	ConsultorID   *int64  `json:"consultor_id"`
	Total         int     `json:"total"`
	Concluidas    int     `json:"concluidas"`
	EmAndamento   int     `json:"em_andamento"`
	ValorTotal    float64 `json:"valor_total"`
	TaxaConclusao float64 `json:"taxa_conclusao"`
}

func BuildConsultantPerformance(orders []domain.ServiceOrder) []ConsultantStat {
	const unassigned = int64(-1)
	buckets := map[int64]*ConsultantStat{}

	for i := range orders {
		o := &orders[i]
		key := unassigned
		if o.ConsultorID != nil {
			key = *o.ConsultorID
		}
		st, ok := buckets[key]
		if !ok {
			st = &ConsultantStat{}
			if key != unassigned {
				id := key
				st.ConsultorID = &id
			}
			buckets[key] = st
		}
		st.Total++
		st.ValorTotal += o.ValorTotal
		switch {
		case o.Status.Closed():
			st.Concluidas++
		case o.Status != domain.StatusCancelada:
			st.EmAndamento++
		}
	}

	out := make([]ConsultantStat, 0, len(buckets))
	for _, st := range buckets {
		if st.Total > 0 {
			st.TaxaConclusao = float64(st.Concluidas) / float64(st.Total)
		}
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		a, b := int64(-1), int64(-1)
		if out[i].ConsultorID != nil {
			a = *out[i].ConsultorID
		}
		if out[j].ConsultorID != nil {
			b = *out[j].ConsultorID
		}
		return a < b
	})
	return out
}

// ClientStat is one client's order count and summed value.
type ClientStat struct {
	Cliente    string  `json:"cliente"`
	Total      int     `json:"total"`
	ValorTotal float64 `json:"valor_total"`
}

// TopClientsByValue returns the n clients with the highest summed order
// value. Orders without a client name land in the "Sem nome" bucket.
func TopClientsByValue(orders []domain.ServiceOrder, n int) []ClientStat {
	buckets := map[string]*ClientStat{}
	for i := range orders {
		o := &orders[i]
		name := o.Cliente
		if name == "" {
			name = "Sem nome"
		}
		st, ok := buckets[name]
		if !ok {
			st = &ClientStat{Cliente: name}
			buckets[name] = st
		}
		st.Total++
		st.ValorTotal += o.ValorTotal
	}

	out := make([]ClientStat, 0, len(buckets))
	for _, st := range buckets {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ValorTotal != out[j].ValorTotal {
			return out[i].ValorTotal > out[j].ValorTotal
		}
		return out[i].Cliente < out[j].Cliente
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
