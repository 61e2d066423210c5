package alerta

import (
	"context"
	"testing"

	"oficina/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gorm.io/gorm"
)

func TestService_MarkReadNotFound(t *testing.T) {
	alertas := new(MockAlertaRepository)
	svc := NewService(alertas, nil)

	alertas.On("MarkRead", mock.Anything, int64(5), int64(99)).Return(gorm.ErrRecordNotFound)

	err := svc.MarkRead(context.Background(), 5, 99)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_MarkAllRead(t *testing.T) {
	alertas := new(MockAlertaRepository)
	svc := NewService(alertas, nil)

	alertas.On("MarkAllRead", mock.Anything, int64(5)).Return(int64(3), nil)

	n, err := svc.MarkAllRead(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestService_DeleteScopedToUser(t *testing.T) {
	alertas := new(MockAlertaRepository)
	svc := NewService(alertas, nil)

	alertas.On("Delete", mock.Anything, int64(5), int64(40)).Return(gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), 5, 40)

	assert.ErrorIs(t, err, ErrNotFound)
	alertas.AssertCalled(t, "Delete", mock.Anything, int64(5), int64(40))
}

func TestService_ListPassesThrough(t *testing.T) {
	alertas := new(MockAlertaRepository)
	svc := NewService(alertas, nil)

	alertas.On("ListByUser", mock.Anything, int64(5), 50).
		Return([]domain.Alerta{{ID: 1, UserID: 5, Tipo: domain.AlertaOSAtrasada}}, nil)

	out, err := svc.List(context.Background(), 5, 50)

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, domain.AlertaOSAtrasada, out[0].Tipo)
}
