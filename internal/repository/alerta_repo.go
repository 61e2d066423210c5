package repository

import (
	"context"
	"time"

	"oficina/internal/domain"

	"gorm.io/gorm"
)

type AlertaRepository struct {
	db *gorm.DB
}

func NewAlertaRepository(db *gorm.DB) *AlertaRepository {
	return &AlertaRepository{db: db}
}

type alertaModel struct {
	ID         int64      `gorm:"column:id;primaryKey"`
	UserID     int64      `gorm:"column:user_id;index:idx_alertas_user_unread"`
	OrderID    *int64     `gorm:"column:ordem_servico_id;index"`
	Tipo       string     `gorm:"column:tipo"`
	Prioridade string     `gorm:"column:prioridade"`
	Titulo     string     `gorm:"column:titulo"`
	Mensagem   *string    `gorm:"column:mensagem"`
	Lido       bool       `gorm:"column:lido;index:idx_alertas_user_unread"`
	LidoEm     *time.Time `gorm:"column:lido_em"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
}

func (alertaModel) TableName() string { return "alertas" }

func toDomainAlerta(m alertaModel) *domain.Alerta {
	return &domain.Alerta{
		ID:         m.ID,
		UserID:     m.UserID,
		OrderID:    m.OrderID,
		Tipo:       domain.AlertaType(m.Tipo),
		Prioridade: domain.AlertaPriority(m.Prioridade),
		Titulo:     m.Titulo,
		Mensagem:   strOrEmpty(m.Mensagem),
		Lido:       m.Lido,
		LidoEm:     m.LidoEm,
		CreatedAt:  m.CreatedAt,
	}
}

func toAlertaModel(a *domain.Alerta) alertaModel {
	return alertaModel{
		ID:         a.ID,
		UserID:     a.UserID,
		OrderID:    a.OrderID,
		Tipo:       string(a.Tipo),
		Prioridade: string(a.Prioridade),
		Titulo:     a.Titulo,
		Mensagem:   strOrNil(a.Mensagem),
		Lido:       a.Lido,
		LidoEm:     a.LidoEm,
		CreatedAt:  a.CreatedAt,
	}
}

func (r *AlertaRepository) Create(ctx context.Context, a *domain.Alerta) error {
	m := toAlertaModel(a)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainAlerta(m)
	return nil
}

func (r *AlertaRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Alerta, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []alertaModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Alerta, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainAlerta(m))
	}
	return out, nil
}

func (r *AlertaRepository) CountUnread(ctx context.Context, userID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&alertaModel{}).
		Where("user_id = ? AND lido = ?", userID, false).
		Count(&cnt)
	return cnt, tx.Error
}

func (r *AlertaRepository) MarkRead(ctx context.Context, userID, alertaID int64) error {
	now := time.Now()
	tx := r.db.WithContext(ctx).Model(&alertaModel{}).
		Where("id = ? AND user_id = ?", alertaID, userID).
		Updates(map[string]any{"lido": true, "lido_em": now})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AlertaRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	now := time.Now()
	tx := r.db.WithContext(ctx).Model(&alertaModel{}).
		Where("user_id = ? AND lido = ?", userID, false).
		Updates(map[string]any{"lido": true, "lido_em": now})
	return tx.RowsAffected, tx.Error
}

func (r *AlertaRepository) Delete(ctx context.Context, userID, alertaID int64) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", alertaID, userID).
		Delete(&alertaModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HasRecentForOrder reports whether an alert of the given type already
// exists for the order within the window. The sweep uses it to avoid
// flooding the same overdue order every run.
func (r *AlertaRepository) HasRecentForOrder(ctx context.Context, orderID int64, tipo domain.AlertaType, since time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&alertaModel{}).
		Where("ordem_servico_id = ? AND tipo = ? AND created_at >= ?", orderID, string(tipo), since).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *AlertaRepository) DeleteOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	cutoff := time.Now().Add(-age)
	tx := r.db.WithContext(ctx).
		Where("created_at < ? AND lido = ?", cutoff, true).
		Delete(&alertaModel{})
	return tx.RowsAffected, tx.Error
}
