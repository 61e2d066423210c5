package repository

import (
	"context"
	"time"

	"oficina/internal/domain"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

type vehicleModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Placa     string    `gorm:"column:placa;uniqueIndex"`
	Modelo    string    `gorm:"column:modelo"`
	Marca     string    `gorm:"column:marca"`
	Ano       int       `gorm:"column:ano"`
	Cor       *string   `gorm:"column:cor"`
	Odometro  int64     `gorm:"column:odometro"`
	Status    string    `gorm:"column:status;index"`
	TecnicoID *int64    `gorm:"column:tecnico_id;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (vehicleModel) TableName() string { return "veiculos" }

func toDomainVehicle(m vehicleModel) *domain.Vehicle {
	return &domain.Vehicle{
		ID:        m.ID,
		Placa:     m.Placa,
		Modelo:    m.Modelo,
		Marca:     m.Marca,
		Ano:       m.Ano,
		Cor:       strOrEmpty(m.Cor),
		Odometro:  m.Odometro,
		Status:    domain.VehicleStatus(m.Status),
		TecnicoID: m.TecnicoID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toVehicleModel(v *domain.Vehicle) vehicleModel {
	return vehicleModel{
		ID:        v.ID,
		Placa:     v.Placa,
		Modelo:    v.Modelo,
		Marca:     v.Marca,
		Ano:       v.Ano,
		Cor:       strOrNil(v.Cor),
		Odometro:  v.Odometro,
		Status:    string(v.Status),
		TecnicoID: v.TecnicoID,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*v = *toDomainVehicle(m)
	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var m vehicleModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVehicle(m), nil
}

func (r *VehicleRepository) List(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error) {
	tx := r.db.WithContext(ctx).Model(&vehicleModel{})
	if status != "" {
		tx = tx.Where("status = ?", string(status))
	}

	var rows []vehicleModel
	tx = tx.Order("placa ASC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Vehicle, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainVehicle(m))
	}
	return out, nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*v = *toDomainVehicle(m)
	return nil
}

// UpdateAllocation writes status, technician and odometer in one UPDATE so
// an allocation never lands half-applied.
func (r *VehicleRepository) UpdateAllocation(ctx context.Context, id int64, status domain.VehicleStatus, tecnicoID *int64, odometro int64) error {
	updates := map[string]any{
		"status":     string(status),
		"tecnico_id": tecnicoID,
	}
	if odometro > 0 {
		updates["odometro"] = odometro
	}
	tx := r.db.WithContext(ctx).Model(&vehicleModel{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
