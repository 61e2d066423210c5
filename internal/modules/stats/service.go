package stats

import (
	"context"
	"time"

	"oficina/internal/domain"
	"oficina/internal/repository"
)

type OrderListerInterface interface {
	List(ctx context.Context, q repository.OrderQuery) ([]domain.ServiceOrder, error)
}

type PendenciaListerInterface interface {
	ListOpen(ctx context.Context) ([]domain.Pendencia, error)
}

type AlertaCounterInterface interface {
	CountUnread(ctx context.Context, userID int64) (int64, error)
}

// Service recomputes every figure from a fresh fetch; nothing is cached
// between requests.
type Service struct {
	orders     OrderListerInterface
	pendencias PendenciaListerInterface
	alertas    AlertaCounterInterface
	now        func() time.Time
}

func NewService(orders OrderListerInterface, pendencias PendenciaListerInterface, alertas AlertaCounterInterface) *Service {
	return &Service{
		orders:     orders,
		pendencias: pendencias,
		alertas:    alertas,
		now:        time.Now,
	}
}

// Dashboard builds the summary for one user. Pendencia and alert fetches
// are secondary data: a failure there degrades the figures to zero instead
// of failing the whole dashboard.
func (s *Service) Dashboard(ctx context.Context, userID int64) (*DashboardStats, error) {
	orders, err := s.orders.List(ctx, repository.OrderQuery{})
	if err != nil {
		return nil, err
	}

	pendencias, err := s.pendencias.ListOpen(ctx)
	if err != nil {
		pendencias = nil
	}

	st := BuildDashboardStats(orders, pendencias, nil, s.now())

	if unread, err := s.alertas.CountUnread(ctx, userID); err == nil {
		st.AlertasNaoLidos = int(unread)
	}
	return &st, nil
}

func (s *Service) Trend(ctx context.Context, windowDays int) ([]TrendPoint, error) {
	if windowDays <= 0 {
		windowDays = 30
	}
	orders, err := s.orders.List(ctx, repository.OrderQuery{})
	if err != nil {
		return nil, err
	}
	return BuildTrend(orders, windowDays, s.now()), nil
}

func (s *Service) ConsultantPerformance(ctx context.Context) ([]ConsultantStat, error) {
	orders, err := s.orders.List(ctx, repository.OrderQuery{})
	if err != nil {
		return nil, err
	}
	return BuildConsultantPerformance(orders), nil
}

func (s *Service) TopClients(ctx context.Context, n int) ([]ClientStat, error) {
	if n <= 0 {
		n = 10
	}
	orders, err := s.orders.List(ctx, repository.OrderQuery{})
	if err != nil {
		return nil, err
	}
	return TopClientsByValue(orders, n), nil
}
