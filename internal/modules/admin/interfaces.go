package admin

import (
	"context"

	"oficina/internal/domain"
)

type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}
