package alerta

import (
	"context"
	"errors"

	"oficina/internal/domain"

	"gorm.io/gorm"
)

// Service handles alert consumption: listing, read marks and deletion.
// Alert creation happens in the sweep.
type Service struct {
	alertas AlertaRepositoryInterface
	hub     *Hub
}

func NewService(alertas AlertaRepositoryInterface, hub *Hub) *Service {
	return &Service{alertas: alertas, hub: hub}
}

func (s *Service) List(ctx context.Context, userID int64, limit int) ([]domain.Alerta, error) {
	return s.alertas.ListByUser(ctx, userID, limit)
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.alertas.CountUnread(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, userID, alertaID int64) error {
	err := s.alertas.MarkRead(ctx, userID, alertaID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	s.pushUnread(ctx, userID)
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	n, err := s.alertas.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, err
	}
	s.pushUnread(ctx, userID)
	return n, nil
}

func (s *Service) Delete(ctx context.Context, userID, alertaID int64) error {
	err := s.alertas.Delete(ctx, userID, alertaID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	s.pushUnread(ctx, userID)
	return nil
}

// pushUnread is best-effort: an offline user just sees the fresh count on
// the next poll.
func (s *Service) pushUnread(ctx context.Context, userID int64) {
	if s.hub == nil || !s.hub.IsOnline(userID) {
		return
	}
	if unread, err := s.alertas.CountUnread(ctx, userID); err == nil {
		s.hub.PushUnread(userID, unread)
	}
}
