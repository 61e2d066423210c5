package repository

import (
	"context"
	"time"

	"oficina/internal/domain"

	"gorm.io/gorm"
)

type PendenciaRepository struct {
	db *gorm.DB
}

func NewPendenciaRepository(db *gorm.DB) *PendenciaRepository {
	return &PendenciaRepository{db: db}
}

type pendenciaModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	OrderID       int64      `gorm:"column:ordem_servico_id;index"`
	Tipo          string     `gorm:"column:tipo"`
	Status        string     `gorm:"column:status;index"`
	Descricao     string     `gorm:"column:descricao"`
	Responsavel   *string    `gorm:"column:responsavel"`
	DataAbertura  time.Time  `gorm:"column:data_abertura"`
	DataPrevista  *time.Time `gorm:"column:data_prevista"`
	DataResolvida *time.Time `gorm:"column:data_resolvida"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (pendenciaModel) TableName() string { return "pendencias" }

func toDomainPendencia(m pendenciaModel) *domain.Pendencia {
	return &domain.Pendencia{
		ID:            m.ID,
		OrderID:       m.OrderID,
		Tipo:          domain.PendenciaType(m.Tipo),
		Status:        domain.PendenciaStatus(m.Status),
		Descricao:     m.Descricao,
		Responsavel:   strOrEmpty(m.Responsavel),
		DataAbertura:  m.DataAbertura,
		DataPrevista:  m.DataPrevista,
		DataResolvida: m.DataResolvida,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toPendenciaModel(p *domain.Pendencia) pendenciaModel {
	return pendenciaModel{
		ID:            p.ID,
		OrderID:       p.OrderID,
		Tipo:          string(p.Tipo),
		Status:        string(p.Status),
		Descricao:     p.Descricao,
		Responsavel:   strOrNil(p.Responsavel),
		DataAbertura:  p.DataAbertura,
		DataPrevista:  p.DataPrevista,
		DataResolvida: p.DataResolvida,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (r *PendenciaRepository) Create(ctx context.Context, p *domain.Pendencia) error {
	m := toPendenciaModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPendencia(m)
	return nil
}

func (r *PendenciaRepository) GetByID(ctx context.Context, id int64) (*domain.Pendencia, error) {
	var m pendenciaModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPendencia(m), nil
}

func (r *PendenciaRepository) ListByOrder(ctx context.Context, orderID int64) ([]domain.Pendencia, error) {
	var rows []pendenciaModel
	tx := r.db.WithContext(ctx).
		Where("ordem_servico_id = ?", orderID).
		Order("data_abertura ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Pendencia, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPendencia(m))
	}
	return out, nil
}

func (r *PendenciaRepository) ListOpen(ctx context.Context) ([]domain.Pendencia, error) {
	var rows []pendenciaModel
	tx := r.db.WithContext(ctx).
		Where("status IN ?", []string{
			string(domain.PendenciaPendente),
			string(domain.PendenciaEmAndamento),
		}).
		Order("data_abertura ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Pendencia, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainPendencia(m))
	}
	return out, nil
}

func (r *PendenciaRepository) Update(ctx context.Context, p *domain.Pendencia) error {
	m := toPendenciaModel(p)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPendencia(m)
	return nil
}

func (r *PendenciaRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&pendenciaModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
