package admin

import (
	"context"
	"errors"
	"strings"

	"oficina/internal/domain"
	"oficina/internal/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLength = 8

// Service handles staff account management. Only managers reach it; the
// route guard enforces that.
type Service struct {
	users UserRepositoryInterface
}

func NewService(users UserRepositoryInterface) *Service {
	return &Service{users: users}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	role := domain.UserRole(req.Role)
	if !role.Valid() || len(req.Password) < minPasswordLength {
		return nil, ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         role,
		Name:         req.Name,
		Phone:        req.Phone,
		Active:       true,
	}
	if fields := validator.Check(u); fields != nil {
		return nil, ErrValidation
	}
	if err := s.users.Create(ctx, u); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) ListUsers(ctx context.Context, role string) ([]domain.User, error) {
	if role != "" {
		r := domain.UserRole(role)
		if !r.Valid() {
			return nil, ErrValidation
		}
		return s.users.ListByRole(ctx, r)
	}
	return s.users.List(ctx)
}

func (s *Service) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, ErrValidation
		}
		u.Name = *req.Name
	}
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		if !role.Valid() {
			return nil, ErrValidation
		}
		u.Role = role
	}
	if req.Phone != nil {
		u.Phone = *req.Phone
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// SetActive enables or disables an account. A manager cannot lock themselves
// out.
func (s *Service) SetActive(ctx context.Context, actorID, id int64, active bool) (*domain.User, error) {
	if !active && actorID == id {
		return nil, ErrSelfDeactivate
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	u.Active = active
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
