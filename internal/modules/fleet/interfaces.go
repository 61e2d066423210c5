package fleet

import (
	"context"

	"oficina/internal/domain"
)

type VehicleRepositoryInterface interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	UpdateAllocation(ctx context.Context, id int64, status domain.VehicleStatus, tecnicoID *int64, odometro int64) error
}
