package fleet

import (
	"context"
	"testing"

	"oficina/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	if args.Error(0) == nil {
		v.ID = 401
	}
	return args.Error(0)
}

func (m *MockVehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) List(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) UpdateAllocation(ctx context.Context, id int64, status domain.VehicleStatus, tecnicoID *int64, odometro int64) error {
	args := m.Called(ctx, id, status, tecnicoID, odometro)
	return args.Error(0)
}

func TestCreate_NormalizesPlate(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	svc := NewService(vehicles)

	vehicles.On("Create", mock.Anything, mock.MatchedBy(func(v *domain.Vehicle) bool {
		return v.Placa == "ABC1D23" && v.Status == domain.VeiculoDisponivel
	})).Return(nil)

	v, err := svc.Create(context.Background(), CreateVehicleRequest{
		Placa:  " abc-1d23 ",
		Modelo: "Hilux",
	})

	assert.NoError(t, err)
	assert.Equal(t, "ABC1D23", v.Placa)
}

func TestCreate_InvalidPlateRejected(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	svc := NewService(vehicles)

	_, err := svc.Create(context.Background(), CreateVehicleRequest{
		Placa:  "123ABCD",
		Modelo: "Hilux",
	})

	assert.ErrorIs(t, err, ErrValidation)
	vehicles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAllocate_OnlyFromAvailable(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	svc := NewService(vehicles)

	vehicles.On("GetByID", mock.Anything, int64(401)).Return(&domain.Vehicle{
		ID:     401,
		Status: domain.VeiculoManutencao,
	}, nil)

	_, err := svc.Allocate(context.Background(), 401, AllocateRequest{TecnicoID: 7})

	assert.ErrorIs(t, err, ErrNotAvailable)
	vehicles.AssertNotCalled(t, "UpdateAllocation",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAllocate_SetsTechnicianAndStatus(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	svc := NewService(vehicles)

	available := &domain.Vehicle{ID: 401, Status: domain.VeiculoDisponivel, Odometro: 10000}
	allocated := &domain.Vehicle{ID: 401, Status: domain.VeiculoEmUso, Odometro: 10200}
	vehicles.On("GetByID", mock.Anything, int64(401)).Return(available, nil).Once()
	vehicles.On("UpdateAllocation", mock.Anything, int64(401), domain.VeiculoEmUso,
		mock.MatchedBy(func(id *int64) bool { return id != nil && *id == 7 }),
		int64(10200)).Return(nil)
	vehicles.On("GetByID", mock.Anything, int64(401)).Return(allocated, nil)

	v, err := svc.Allocate(context.Background(), 401, AllocateRequest{TecnicoID: 7, Odometro: 10200})

	assert.NoError(t, err)
	assert.Equal(t, domain.VeiculoEmUso, v.Status)
}

func TestAllocate_OdometerCannotDecrease(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	svc := NewService(vehicles)

	vehicles.On("GetByID", mock.Anything, int64(401)).Return(&domain.Vehicle{
		ID:       401,
		Status:   domain.VeiculoDisponivel,
		Odometro: 10000,
	}, nil)

	_, err := svc.Allocate(context.Background(), 401, AllocateRequest{TecnicoID: 7, Odometro: 9000})

	assert.ErrorIs(t, err, ErrOdometerBack)
}

func TestRelease_ClearsTechnician(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	svc := NewService(vehicles)

	tecnico := int64(7)
	inUse := &domain.Vehicle{ID: 401, Status: domain.VeiculoEmUso, TecnicoID: &tecnico, Odometro: 10200}
	released := &domain.Vehicle{ID: 401, Status: domain.VeiculoDisponivel, Odometro: 10500}
	vehicles.On("GetByID", mock.Anything, int64(401)).Return(inUse, nil).Once()
	vehicles.On("UpdateAllocation", mock.Anything, int64(401), domain.VeiculoDisponivel,
		(*int64)(nil), int64(10500)).Return(nil)
	vehicles.On("GetByID", mock.Anything, int64(401)).Return(released, nil)

	v, err := svc.Release(context.Background(), 401, ReleaseRequest{Odometro: 10500})

	assert.NoError(t, err)
	assert.Equal(t, domain.VeiculoDisponivel, v.Status)
	assert.Nil(t, v.TecnicoID)
}

func TestRelease_NotAllocatedRejected(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	svc := NewService(vehicles)

	vehicles.On("GetByID", mock.Anything, int64(401)).Return(&domain.Vehicle{
		ID:     401,
		Status: domain.VeiculoDisponivel,
	}, nil)

	_, err := svc.Release(context.Background(), 401, ReleaseRequest{})

	assert.ErrorIs(t, err, ErrNotAllocated)
}

func TestSetStatus_AllocatedVehicleFrozen(t *testing.T) {
	vehicles := new(MockVehicleRepository)
	svc := NewService(vehicles)

	tecnico := int64(7)
	vehicles.On("GetByID", mock.Anything, int64(401)).Return(&domain.Vehicle{
		ID:        401,
		Status:    domain.VeiculoEmUso,
		TecnicoID: &tecnico,
	}, nil)

	_, err := svc.SetStatus(context.Background(), 401, "MANUTENCAO")

	assert.ErrorIs(t, err, ErrNotAvailable)
}
