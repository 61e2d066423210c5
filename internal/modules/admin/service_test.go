package admin

import (
	"context"
	"testing"

	"oficina/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil {
		u.ID = 101
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func TestCreateUser_HashesPasswordAndNormalizesEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users)

	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "tecnico@oficina.com" &&
			u.Active &&
			u.Role == domain.RoleTecnico &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("senha-forte-1")) == nil
	})).Return(nil)

	u, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Email:    " Tecnico@Oficina.com ",
		Password: "senha-forte-1",
		Name:     "João",
		Role:     "TECNICO",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(101), u.ID)
}

func TestCreateUser_InvalidRoleRejected(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users)

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Email:    "x@oficina.com",
		Password: "senha-forte-1",
		Name:     "X",
		Role:     "ESTAGIARIO",
	})

	assert.ErrorIs(t, err, ErrValidation)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUser_ShortPasswordRejected(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users)

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Email:    "x@oficina.com",
		Password: "curta",
		Name:     "X",
		Role:     "TECNICO",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestSetActive_SelfDeactivateRejected(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users)

	_, err := svc.SetActive(context.Background(), 1, 1, false)

	assert.ErrorIs(t, err, ErrSelfDeactivate)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetActive_DeactivatesOtherUser(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users)

	users.On("GetByID", mock.Anything, int64(2)).Return(&domain.User{ID: 2, Active: true}, nil)
	users.On("Update", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.ID == 2 && !u.Active
	})).Return(nil)

	u, err := svc.SetActive(context.Background(), 1, 2, false)

	assert.NoError(t, err)
	assert.False(t, u.Active)
}
