package pendencia

import (
	"context"
	"testing"
	"time"

	"oficina/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gorm.io/gorm"
)

type MockPendenciaRepository struct {
	mock.Mock
}

func (m *MockPendenciaRepository) Create(ctx context.Context, p *domain.Pendencia) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil {
		p.ID = 301
	}
	return args.Error(0)
}

func (m *MockPendenciaRepository) GetByID(ctx context.Context, id int64) (*domain.Pendencia, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pendencia), args.Error(1)
}

func (m *MockPendenciaRepository) ListByOrder(ctx context.Context, orderID int64) ([]domain.Pendencia, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pendencia), args.Error(1)
}

func (m *MockPendenciaRepository) ListOpen(ctx context.Context) ([]domain.Pendencia, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Pendencia), args.Error(1)
}

func (m *MockPendenciaRepository) Update(ctx context.Context, p *domain.Pendencia) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPendenciaRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderSource struct {
	mock.Mock
}

func (m *MockOrderSource) GetByID(ctx context.Context, id int64) (*domain.ServiceOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceOrder), args.Error(1)
}

func newTestService(pendencias *MockPendenciaRepository, orders *MockOrderSource) *Service {
	s := NewService(pendencias, orders)
	s.now = func() time.Time {
		return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func TestCreate_OpensAsPendente(t *testing.T) {
	pendencias := new(MockPendenciaRepository)
	orders := new(MockOrderSource)
	svc := newTestService(pendencias, orders)

	orders.On("GetByID", mock.Anything, int64(10)).Return(&domain.ServiceOrder{ID: 10}, nil)
	pendencias.On("Create", mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Create(context.Background(), CreatePendenciaRequest{
		OrderID:   10,
		Tipo:      "PECAS",
		Descricao: "Aguardando bomba injetora",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PendenciaPendente, p.Status)
	assert.Equal(t, svc.now(), p.DataAbertura)
	assert.Nil(t, p.DataResolvida)
}

func TestCreate_UnknownOrderRejected(t *testing.T) {
	pendencias := new(MockPendenciaRepository)
	orders := new(MockOrderSource)
	svc := newTestService(pendencias, orders)

	orders.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), CreatePendenciaRequest{
		OrderID:   99,
		Tipo:      "PECAS",
		Descricao: "x",
	})

	assert.ErrorIs(t, err, ErrOrderNotFound)
	pendencias.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_InvalidTipoRejected(t *testing.T) {
	pendencias := new(MockPendenciaRepository)
	orders := new(MockOrderSource)
	svc := newTestService(pendencias, orders)

	_, err := svc.Create(context.Background(), CreatePendenciaRequest{
		OrderID:   10,
		Tipo:      "FERIAS",
		Descricao: "x",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestResolve_StampsResolutionDate(t *testing.T) {
	pendencias := new(MockPendenciaRepository)
	orders := new(MockOrderSource)
	svc := newTestService(pendencias, orders)

	pendencias.On("GetByID", mock.Anything, int64(301)).Return(&domain.Pendencia{
		ID:     301,
		Status: domain.PendenciaEmAndamento,
	}, nil)
	pendencias.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Pendencia) bool {
		return p.Status == domain.PendenciaResolvida &&
			p.DataResolvida != nil && p.DataResolvida.Equal(svc.now())
	})).Return(nil)

	p, err := svc.Resolve(context.Background(), 301, ResolvePendenciaRequest{})

	assert.NoError(t, err)
	assert.Equal(t, domain.PendenciaResolvida, p.Status)
}

func TestResolve_CancelOption(t *testing.T) {
	pendencias := new(MockPendenciaRepository)
	orders := new(MockOrderSource)
	svc := newTestService(pendencias, orders)

	pendencias.On("GetByID", mock.Anything, int64(301)).Return(&domain.Pendencia{
		ID:     301,
		Status: domain.PendenciaPendente,
	}, nil)
	pendencias.On("Update", mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Resolve(context.Background(), 301, ResolvePendenciaRequest{Cancelar: true})

	assert.NoError(t, err)
	assert.Equal(t, domain.PendenciaCanceladaSts, p.Status)
}

func TestResolve_AlreadyResolvedRejected(t *testing.T) {
	pendencias := new(MockPendenciaRepository)
	orders := new(MockOrderSource)
	svc := newTestService(pendencias, orders)

	resolved := svc.now().AddDate(0, 0, -1)
	pendencias.On("GetByID", mock.Anything, int64(301)).Return(&domain.Pendencia{
		ID:            301,
		Status:        domain.PendenciaResolvida,
		DataResolvida: &resolved,
	}, nil)

	_, err := svc.Resolve(context.Background(), 301, ResolvePendenciaRequest{})

	assert.ErrorIs(t, err, ErrAlreadyResolved)
	pendencias.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_ReopeningClearsResolutionDate(t *testing.T) {
	pendencias := new(MockPendenciaRepository)
	orders := new(MockOrderSource)
	svc := newTestService(pendencias, orders)

	resolved := svc.now().AddDate(0, 0, -2)
	pendencias.On("GetByID", mock.Anything, int64(301)).Return(&domain.Pendencia{
		ID:            301,
		Status:        domain.PendenciaResolvida,
		DataResolvida: &resolved,
	}, nil)
	pendencias.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Pendencia) bool {
		return p.Status == domain.PendenciaEmAndamento && p.DataResolvida == nil
	})).Return(nil)

	status := "EM_ANDAMENTO"
	p, err := svc.Update(context.Background(), 301, UpdatePendenciaRequest{Status: &status})

	assert.NoError(t, err)
	assert.Nil(t, p.DataResolvida)
}
