package repository

import (
	"context"
	"time"

	"oficina/internal/domain"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

type orderModel struct {
	ID                int64      `gorm:"column:id;primaryKey"`
	Numero            string     `gorm:"column:numero;uniqueIndex"`
	Tipo              string     `gorm:"column:tipo"`
	Status            string     `gorm:"column:status;index"`
	DataAbertura      time.Time  `gorm:"column:data_abertura;index"`
	DataFechamento    *time.Time `gorm:"column:data_fechamento"`
	TecnicoID         *int64     `gorm:"column:tecnico_id;index"`
	ConsultorID       *int64     `gorm:"column:consultor_id;index"`
	Cliente           string     `gorm:"column:cliente"`
	Modelo            string     `gorm:"column:modelo"`
	Chassi            string     `gorm:"column:chassi"`
	Descricao         *string    `gorm:"column:descricao"`
	ValorMaoDeObra    float64    `gorm:"column:valor_mao_de_obra"`
	ValorPecas        float64    `gorm:"column:valor_pecas"`
	ValorDeslocamento float64    `gorm:"column:valor_deslocamento"`
	ValorTotal        float64    `gorm:"column:valor_total"`
	NumeroOrcamento   *string    `gorm:"column:numero_orcamento"`
	NumeroPedido      *string    `gorm:"column:numero_pedido"`
	MotivoPausa       *string    `gorm:"column:motivo_pausa"`
	TipoDiagnostico   *string    `gorm:"column:tipo_diagnostico"`
	LocalAtual        *string    `gorm:"column:local_atual"`
	PrevisaoChegada   *time.Time `gorm:"column:previsao_chegada"`
	PrevisaoRetorno   *time.Time `gorm:"column:previsao_retorno"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}

func (orderModel) TableName() string { return "ordens_servico" }

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}

func toDomainOrder(m orderModel) *domain.ServiceOrder {
	return &domain.ServiceOrder{
		ID:                m.ID,
		Numero:            m.Numero,
		Tipo:              domain.OrderType(m.Tipo),
		Status:            domain.OrderStatus(m.Status),
		DataAbertura:      m.DataAbertura,
		DataFechamento:    m.DataFechamento,
		TecnicoID:         m.TecnicoID,
		ConsultorID:       m.ConsultorID,
		Cliente:           m.Cliente,
		Modelo:            m.Modelo,
		Chassi:            m.Chassi,
		Descricao:         strOrEmpty(m.Descricao),
		ValorMaoDeObra:    m.ValorMaoDeObra,
		ValorPecas:        m.ValorPecas,
		ValorDeslocamento: m.ValorDeslocamento,
		ValorTotal:        m.ValorTotal,
		NumeroOrcamento:   strOrEmpty(m.NumeroOrcamento),
		NumeroPedido:      strOrEmpty(m.NumeroPedido),
		MotivoPausa:       strOrEmpty(m.MotivoPausa),
		TipoDiagnostico:   strOrEmpty(m.TipoDiagnostico),
		LocalAtual:        strOrEmpty(m.LocalAtual),
		PrevisaoChegada:   m.PrevisaoChegada,
		PrevisaoRetorno:   m.PrevisaoRetorno,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toOrderModel(o *domain.ServiceOrder) orderModel {
	return orderModel{
		ID:                o.ID,
		Numero:            o.Numero,
		Tipo:              string(o.Tipo),
		Status:            string(o.Status),
		DataAbertura:      o.DataAbertura,
		DataFechamento:    o.DataFechamento,
		TecnicoID:         o.TecnicoID,
		ConsultorID:       o.ConsultorID,
		Cliente:           o.Cliente,
		Modelo:            o.Modelo,
		Chassi:            o.Chassi,
		Descricao:         strOrNil(o.Descricao),
		ValorMaoDeObra:    o.ValorMaoDeObra,
		ValorPecas:        o.ValorPecas,
		ValorDeslocamento: o.ValorDeslocamento,
		ValorTotal:        o.ValorTotal,
		NumeroOrcamento:   strOrNil(o.NumeroOrcamento),
		NumeroPedido:      strOrNil(o.NumeroPedido),
		MotivoPausa:       strOrNil(o.MotivoPausa),
		TipoDiagnostico:   strOrNil(o.TipoDiagnostico),
		LocalAtual:        strOrNil(o.LocalAtual),
		PrevisaoChegada:   o.PrevisaoChegada,
		PrevisaoRetorno:   o.PrevisaoRetorno,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.ServiceOrder) error {
	m := toOrderModel(o)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*o = *toDomainOrder(m)
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceOrder, error) {
	var m orderModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainOrder(m), nil
}

func (r *OrderRepository) GetByNumero(ctx context.Context, numero string) (*domain.ServiceOrder, error) {
	var m orderModel
	tx := r.db.WithContext(ctx).Where("numero = ?", numero).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainOrder(m), nil
}

// OrderQuery narrows the fetch server-side. Rich multi-field filtering runs
// in memory afterwards, so only cheap equality filters and the fetch limit
// live here.
type OrderQuery struct {
	Status      string
	Tipo        string
	TecnicoID   int64
	ConsultorID int64
	Limit       int
}

const defaultFetchLimit = 1000

func (r *OrderRepository) List(ctx context.Context, q OrderQuery) ([]domain.ServiceOrder, error) {
	tx := r.db.WithContext(ctx).Model(&orderModel{})
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.Tipo != "" {
		tx = tx.Where("tipo = ?", q.Tipo)
	}
	if q.TecnicoID != 0 {
		tx = tx.Where("tecnico_id = ?", q.TecnicoID)
	}
	if q.ConsultorID != 0 {
		tx = tx.Where("consultor_id = ?", q.ConsultorID)
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultFetchLimit
	}

	var rows []orderModel
	tx = tx.Order("data_abertura DESC").Limit(limit).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.ServiceOrder, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainOrder(m))
	}
	return out, nil
}

func (r *OrderRepository) Update(ctx context.Context, o *domain.ServiceOrder) error {
	m := toOrderModel(o)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*o = *toDomainOrder(m)
	return nil
}

// UpdateStatus writes the new status plus whichever status-specific fields
// were supplied, in a single UPDATE.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus, fields map[string]any) error {
	updates := map[string]any{"status": string(status)}
	for k, v := range fields {
		updates[k] = v
	}
	tx := r.db.WithContext(ctx).Model(&orderModel{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListOpenOlderThan returns non-terminal orders opened before the cutoff.
// Used by the overdue-alert sweep.
func (r *OrderRepository) ListOpenOlderThan(ctx context.Context, cutoff time.Time) ([]domain.ServiceOrder, error) {
	var rows []orderModel
	tx := r.db.WithContext(ctx).
		Where("data_abertura < ?", cutoff).
		Where("status NOT IN ?", []string{
			string(domain.StatusConcluida),
			string(domain.StatusFaturada),
			string(domain.StatusCancelada),
		}).
		Order("data_abertura ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.ServiceOrder, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainOrder(m))
	}
	return out, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&orderModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
