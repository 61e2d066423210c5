package order

import (
	"context"
	"time"

	"oficina/internal/domain"
	"oficina/internal/repository"
)

type OrderRepositoryInterface interface {
	Create(ctx context.Context, o *domain.ServiceOrder) error
	GetByID(ctx context.Context, id int64) (*domain.ServiceOrder, error)
	GetByNumero(ctx context.Context, numero string) (*domain.ServiceOrder, error)
	List(ctx context.Context, q repository.OrderQuery) ([]domain.ServiceOrder, error)
	Update(ctx context.Context, o *domain.ServiceOrder) error
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus, fields map[string]any) error
	ListOpenOlderThan(ctx context.Context, cutoff time.Time) ([]domain.ServiceOrder, error)
	Delete(ctx context.Context, id int64) error
}

type SavedFilterRepositoryInterface interface {
	Upsert(ctx context.Context, f *domain.SavedFilter) error
	Get(ctx context.Context, userID int64, screen string) (*domain.SavedFilter, error)
	Delete(ctx context.Context, userID int64, screen string) error
}
