package alerta

import (
	"context"
	"time"

	"oficina/internal/domain"
	"oficina/internal/repository"
)

type AlertaRepositoryInterface interface {
	Create(ctx context.Context, a *domain.Alerta) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Alerta, error)
	CountUnread(ctx context.Context, userID int64) (int64, error)
	MarkRead(ctx context.Context, userID, alertaID int64) error
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, userID, alertaID int64) error
	HasRecentForOrder(ctx context.Context, orderID int64, tipo domain.AlertaType, since time.Time) (bool, error)
	DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error)
}

type OrderSourceInterface interface {
	ListOpenOlderThan(ctx context.Context, cutoff time.Time) ([]domain.ServiceOrder, error)
	List(ctx context.Context, q repository.OrderQuery) ([]domain.ServiceOrder, error)
}

type UserSourceInterface interface {
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}
