package stats

import (
	"testing"
	"time"

	"oficina/internal/domain"

	"github.com/stretchr/testify/assert"
)

var statsNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func openedDaysAgo(days int) time.Time {
	return statsNow.AddDate(0, 0, -days)
}

func TestBuildDashboardStats_EmptyInputIsAllZero(t *testing.T) {
	s := BuildDashboardStats(nil, nil, nil, statsNow)

	assert.Equal(t, 0, s.TotalOS)
	assert.Equal(t, 0, s.OSAbertas)
	assert.Equal(t, 0.0, s.TempoMedioResolucao)
	assert.False(t, s.TempoMedioResolucao != s.TempoMedioResolucao, "must not be NaN")
}

func TestBuildDashboardStats_UrgencyTiers(t *testing.T) {
	orders := []domain.ServiceOrder{
		{Status: domain.StatusEmExecucao, DataAbertura: openedDaysAgo(10)},
		{Status: domain.StatusAguardandoPecas, DataAbertura: openedDaysAgo(65)},
		{Status: domain.StatusEmExecucao, DataAbertura: openedDaysAgo(95)},
	}

	s := BuildDashboardStats(orders, nil, nil, statsNow)

	assert.Equal(t, 1, s.OSCriticas)
	assert.Equal(t, 1, s.OSAltas)
	assert.Equal(t, 1, s.OSNormais)
	assert.Equal(t, 0, s.OSMedias)
	assert.Equal(t, 3, s.OSAbertas)
	assert.Equal(t, 0, s.OSConcluidas)
}

func TestBuildDashboardStats_ResolutionTimeAndCounts(t *testing.T) {
	closed1 := openedDaysAgo(0)
	closed2 := openedDaysAgo(2)
	orders := []domain.ServiceOrder{
		{Status: domain.StatusConcluida, DataAbertura: openedDaysAgo(10), DataFechamento: &closed1},
		{Status: domain.StatusFaturada, Tipo: domain.TipoGarantia, DataAbertura: openedDaysAgo(6), DataFechamento: &closed2},
		{Status: domain.StatusCancelada, DataAbertura: openedDaysAgo(1)},
		{Status: domain.StatusEmExecucao, DataAbertura: openedDaysAgo(1), ValorTotal: 500, ValorPecas: 500},
	}
	pendencias := []domain.Pendencia{
		{Status: domain.PendenciaPendente},
		{Status: domain.PendenciaResolvida},
		{Status: domain.PendenciaEmAndamento},
	}
	alertas := []domain.Alerta{{Lido: false}, {Lido: true}, {Lido: false}}

	s := BuildDashboardStats(orders, pendencias, alertas, statsNow)

	assert.Equal(t, 4, s.TotalOS)
	assert.Equal(t, 2, s.OSConcluidas)
	assert.Equal(t, 1, s.OSCanceladas)
	assert.Equal(t, 1, s.OSAbertas)
	assert.Equal(t, 1, s.OSGarantia)
	assert.Equal(t, 3, s.OSNormalTipo)
	// (10 + 4) / 2
	assert.Equal(t, 7.0, s.TempoMedioResolucao)
	assert.Equal(t, 2, s.PendenciasAbertas)
	assert.Equal(t, 2, s.AlertasNaoLidos)
	assert.Equal(t, 500.0, s.ValorTotal)
	assert.Equal(t, 500.0, s.ValorPecas)
}

func TestBuildTrend_BucketsByDaySortedAscending(t *testing.T) {
	orders := []domain.ServiceOrder{
		{DataAbertura: openedDaysAgo(1), ValorTotal: 100},
		{DataAbertura: openedDaysAgo(1), Tipo: domain.TipoGarantia, ValorTotal: 50},
		{DataAbertura: openedDaysAgo(3), ValorTotal: 200},
		{DataAbertura: openedDaysAgo(40)}, // outside window
	}

	points := BuildTrend(orders, 30, statsNow)

	assert.Len(t, points, 2)
	assert.Equal(t, openedDaysAgo(3).Format("2006-01-02"), points[0].Date)
	assert.Equal(t, openedDaysAgo(1).Format("2006-01-02"), points[1].Date)
	assert.Equal(t, 2, points[1].Total)
	assert.Equal(t, 1, points[1].Garantia)
	assert.Equal(t, 1, points[1].Normais)
	assert.Equal(t, 150.0, points[1].Valor)
}

func TestBuildConsultantPerformance(t *testing.T) {
	c1, c2 := int64(11), int64(22)
	orders := []domain.ServiceOrder{
		{ConsultorID: &c1, Status: domain.StatusConcluida, ValorTotal: 100},
		{ConsultorID: &c1, Status: domain.StatusEmExecucao, ValorTotal: 200},
		{ConsultorID: &c1, Status: domain.StatusCancelada},
		{ConsultorID: &c2, Status: domain.StatusFaturada, ValorTotal: 50},
		{Status: domain.StatusEmExecucao, ValorTotal: 10},
	}

	stats := BuildConsultantPerformance(orders)

	assert.Len(t, stats, 3)
	assert.Equal(t, c1, *stats[0].ConsultorID)
	assert.Equal(t, 3, stats[0].Total)
	assert.Equal(t, 1, stats[0].Concluidas)
	assert.Equal(t, 1, stats[0].EmAndamento)
	assert.Equal(t, 300.0, stats[0].ValorTotal)
	assert.InDelta(t, 1.0/3.0, stats[0].TaxaConclusao, 1e-9)

	// sentinel bucket for the unassigned order
	var unassigned *ConsultantStat
	for i := range stats {
		if stats[i].ConsultorID == nil {
			unassigned = &stats[i]
		}
	}
	assert.NotNil(t, unassigned)
	assert.Equal(t, 1, unassigned.Total)
}

func TestTopClientsByValue(t *testing.T) {
	orders := []domain.ServiceOrder{
		{Cliente: "Fazenda A", ValorTotal: 100},
		{Cliente: "Fazenda A", ValorTotal: 400},
		{Cliente: "Fazenda B", ValorTotal: 300},
		{ValorTotal: 1000}, // no client name
		{Cliente: "Fazenda C", ValorTotal: 50},
	}

	top := TopClientsByValue(orders, 2)

	assert.Len(t, top, 2)
	assert.Equal(t, "Sem nome", top[0].Cliente)
	assert.Equal(t, 1000.0, top[0].ValorTotal)
	assert.Equal(t, "Fazenda A", top[1].Cliente)
	assert.Equal(t, 500.0, top[1].ValorTotal)
	assert.Equal(t, 2, top[1].Total)
}

func TestTopClientsByValue_NSmallerThanClients(t *testing.T) {
	top := TopClientsByValue([]domain.ServiceOrder{{Cliente: "X", ValorTotal: 1}}, 5)
	assert.Len(t, top, 1)
}
