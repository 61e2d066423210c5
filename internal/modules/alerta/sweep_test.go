package alerta

import (
	"context"
	"testing"
	"time"

	"oficina/internal/domain"
	"oficina/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAlertaRepository struct {
	mock.Mock
}

func (m *MockAlertaRepository) Create(ctx context.Context, a *domain.Alerta) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAlertaRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Alerta, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Alerta), args.Error(1)
}

func (m *MockAlertaRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAlertaRepository) MarkRead(ctx context.Context, userID, alertaID int64) error {
	args := m.Called(ctx, userID, alertaID)
	return args.Error(0)
}

func (m *MockAlertaRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAlertaRepository) Delete(ctx context.Context, userID, alertaID int64) error {
	args := m.Called(ctx, userID, alertaID)
	return args.Error(0)
}

func (m *MockAlertaRepository) HasRecentForOrder(ctx context.Context, orderID int64, tipo domain.AlertaType, since time.Time) (bool, error) {
	args := m.Called(ctx, orderID, tipo, since)
	return args.Bool(0), args.Error(1)
}

func (m *MockAlertaRepository) DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	args := m.Called(ctx, age)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderSource struct {
	mock.Mock
}

func (m *MockOrderSource) ListOpenOlderThan(ctx context.Context, cutoff time.Time) ([]domain.ServiceOrder, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceOrder), args.Error(1)
}

func (m *MockOrderSource) List(ctx context.Context, q repository.OrderQuery) ([]domain.ServiceOrder, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceOrder), args.Error(1)
}

type MockUserSource struct {
	mock.Mock
}

func (m *MockUserSource) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func newTestSweeper(alertas *MockAlertaRepository, orders *MockOrderSource, users *MockUserSource) *Sweeper {
	s := NewSweeper(alertas, orders, users, nil)
	s.now = func() time.Time {
		return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func testSweepConfig() SweepConfig {
	cfg := DefaultSweepConfig()
	cfg.RetentionDays = 0
	return cfg
}

func int64Ptr(v int64) *int64 { return &v }

func TestSweep_OverdueOrderAlertsConsultantAndManagers(t *testing.T) {
	alertas := new(MockAlertaRepository)
	orders := new(MockOrderSource)
	users := new(MockUserSource)
	s := newTestSweeper(alertas, orders, users)
	now := s.now()

	users.On("ListByRole", mock.Anything, domain.RoleGerente).
		Return([]domain.User{{ID: 1, Role: domain.RoleGerente}}, nil)
	orders.On("ListOpenOlderThan", mock.Anything, mock.Anything).
		Return([]domain.ServiceOrder{{
			ID:           10,
			Numero:       "OS-AAAA1111",
			Tipo:         domain.TipoNormal,
			Status:       domain.StatusEmExecucao,
			DataAbertura: now.AddDate(0, 0, -120),
			Cliente:      "Fazenda Boa Vista",
			ConsultorID:  int64Ptr(7),
		}}, nil)
	orders.On("List", mock.Anything, repository.OrderQuery{Status: string(domain.StatusAguardandoPecas)}).
		Return([]domain.ServiceOrder{}, nil)
	alertas.On("HasRecentForOrder", mock.Anything, int64(10), domain.AlertaOSAtrasada, mock.Anything).
		Return(false, nil)
	alertas.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Alerta) bool {
		return a.Tipo == domain.AlertaOSAtrasada &&
			a.Prioridade == domain.PrioridadeUrgente &&
			a.OrderID != nil && *a.OrderID == 10
	})).Return(nil)

	created, err := s.Run(context.Background(), testSweepConfig())

	assert.NoError(t, err)
	assert.Equal(t, 2, created) // consultant 7 + manager 1
	alertas.AssertNumberOfCalls(t, "Create", 2)
}

func TestSweep_RecentAlertSuppressed(t *testing.T) {
	alertas := new(MockAlertaRepository)
	orders := new(MockOrderSource)
	users := new(MockUserSource)
	s := newTestSweeper(alertas, orders, users)
	now := s.now()

	users.On("ListByRole", mock.Anything, domain.RoleGerente).
		Return([]domain.User{{ID: 1}}, nil)
	orders.On("ListOpenOlderThan", mock.Anything, mock.Anything).
		Return([]domain.ServiceOrder{{
			ID:           10,
			Numero:       "OS-AAAA1111",
			Status:       domain.StatusEmExecucao,
			DataAbertura: now.AddDate(0, 0, -120),
		}}, nil)
	orders.On("List", mock.Anything, repository.OrderQuery{Status: string(domain.StatusAguardandoPecas)}).
		Return([]domain.ServiceOrder{}, nil)
	alertas.On("HasRecentForOrder", mock.Anything, int64(10), domain.AlertaOSAtrasada, mock.Anything).
		Return(true, nil)

	created, err := s.Run(context.Background(), testSweepConfig())

	assert.NoError(t, err)
	assert.Equal(t, 0, created)
	alertas.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSweep_ConsultantWhoIsManagerGetsOneAlert(t *testing.T) {
	alertas := new(MockAlertaRepository)
	orders := new(MockOrderSource)
	users := new(MockUserSource)
	s := newTestSweeper(alertas, orders, users)
	now := s.now()

	users.On("ListByRole", mock.Anything, domain.RoleGerente).
		Return([]domain.User{{ID: 7}}, nil)
	orders.On("ListOpenOlderThan", mock.Anything, mock.Anything).
		Return([]domain.ServiceOrder{{
			ID:           10,
			Numero:       "OS-AAAA1111",
			Status:       domain.StatusEmExecucao,
			DataAbertura: now.AddDate(0, 0, -120),
			ConsultorID:  int64Ptr(7),
		}}, nil)
	orders.On("List", mock.Anything, repository.OrderQuery{Status: string(domain.StatusAguardandoPecas)}).
		Return([]domain.ServiceOrder{}, nil)
	alertas.On("HasRecentForOrder", mock.Anything, int64(10), domain.AlertaOSAtrasada, mock.Anything).
		Return(false, nil)
	alertas.On("Create", mock.Anything, mock.Anything).Return(nil)

	created, err := s.Run(context.Background(), testSweepConfig())

	assert.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestSweep_WarrantyStaleGetsHighPriorityAlert(t *testing.T) {
	alertas := new(MockAlertaRepository)
	orders := new(MockOrderSource)
	users := new(MockUserSource)
	s := newTestSweeper(alertas, orders, users)
	now := s.now()

	users.On("ListByRole", mock.Anything, domain.RoleGerente).
		Return([]domain.User{{ID: 1}}, nil)
	orders.On("ListOpenOlderThan", mock.Anything, mock.Anything).
		Return([]domain.ServiceOrder{{
			ID:           11,
			Numero:       "OS-BBBB2222",
			Tipo:         domain.TipoGarantia,
			Status:       domain.StatusEmExecucao,
			DataAbertura: now.AddDate(0, 0, -45),
		}}, nil)
	orders.On("List", mock.Anything, repository.OrderQuery{Status: string(domain.StatusAguardandoPecas)}).
		Return([]domain.ServiceOrder{}, nil)
	alertas.On("HasRecentForOrder", mock.Anything, int64(11), domain.AlertaGarantiaPendente, mock.Anything).
		Return(false, nil)
	alertas.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Alerta) bool {
		return a.Tipo == domain.AlertaGarantiaPendente && a.Prioridade == domain.PrioridadeAlta
	})).Return(nil)

	created, err := s.Run(context.Background(), testSweepConfig())

	assert.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestSweep_PartsArrivingSoonGetsAlert(t *testing.T) {
	alertas := new(MockAlertaRepository)
	orders := new(MockOrderSource)
	users := new(MockUserSource)
	s := newTestSweeper(alertas, orders, users)
	now := s.now()
	chegada := now.AddDate(0, 0, 2)

	users.On("ListByRole", mock.Anything, domain.RoleGerente).
		Return([]domain.User{{ID: 1}}, nil)
	orders.On("ListOpenOlderThan", mock.Anything, mock.Anything).
		Return([]domain.ServiceOrder{}, nil)
	orders.On("List", mock.Anything, repository.OrderQuery{Status: string(domain.StatusAguardandoPecas)}).
		Return([]domain.ServiceOrder{{
			ID:              12,
			Numero:          "OS-CCCC3333",
			Tipo:            domain.TipoNormal,
			Status:          domain.StatusAguardandoPecas,
			DataAbertura:    now.AddDate(0, 0, -10),
			PrevisaoChegada: &chegada,
		}}, nil)
	alertas.On("HasRecentForOrder", mock.Anything, int64(12), domain.AlertaPecasChegando, mock.Anything).
		Return(false, nil)
	alertas.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Alerta) bool {
		return a.Tipo == domain.AlertaPecasChegando && a.Prioridade == domain.PrioridadeNormal
	})).Return(nil)

	created, err := s.Run(context.Background(), testSweepConfig())

	assert.NoError(t, err)
	assert.Equal(t, 1, created)
}

func TestSweep_PartsAlreadyLateNotAlerted(t *testing.T) {
	alertas := new(MockAlertaRepository)
	orders := new(MockOrderSource)
	users := new(MockUserSource)
	s := newTestSweeper(alertas, orders, users)
	now := s.now()
	chegada := now.AddDate(0, 0, -1)

	users.On("ListByRole", mock.Anything, domain.RoleGerente).
		Return([]domain.User{{ID: 1}}, nil)
	orders.On("ListOpenOlderThan", mock.Anything, mock.Anything).
		Return([]domain.ServiceOrder{}, nil)
	orders.On("List", mock.Anything, repository.OrderQuery{Status: string(domain.StatusAguardandoPecas)}).
		Return([]domain.ServiceOrder{{
			ID:              12,
			Numero:          "OS-CCCC3333",
			Tipo:            domain.TipoNormal,
			Status:          domain.StatusAguardandoPecas,
			DataAbertura:    now.AddDate(0, 0, -10),
			PrevisaoChegada: &chegada,
		}}, nil)

	created, err := s.Run(context.Background(), testSweepConfig())

	assert.NoError(t, err)
	assert.Equal(t, 0, created)
	alertas.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
