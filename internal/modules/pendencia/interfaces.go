package pendencia

import (
	"context"

	"oficina/internal/domain"
)

type PendenciaRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Pendencia) error
	GetByID(ctx context.Context, id int64) (*domain.Pendencia, error)
	ListByOrder(ctx context.Context, orderID int64) ([]domain.Pendencia, error)
	ListOpen(ctx context.Context) ([]domain.Pendencia, error)
	Update(ctx context.Context, p *domain.Pendencia) error
	Delete(ctx context.Context, id int64) error
}

type OrderSourceInterface interface {
	GetByID(ctx context.Context, id int64) (*domain.ServiceOrder, error)
}
