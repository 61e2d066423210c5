package domain

import "time"

type VehicleStatus string

const (
	VeiculoDisponivel VehicleStatus = "DISPONIVEL"
	VeiculoEmUso      VehicleStatus = "EM_USO"
	VeiculoManutencao VehicleStatus = "MANUTENCAO"
	VeiculoInativo    VehicleStatus = "INATIVO"
)

func (s VehicleStatus) Valid() bool {
	switch s {
	case VeiculoDisponivel, VeiculoEmUso, VeiculoManutencao, VeiculoInativo:
		return true
	}
	return false
}

type Vehicle struct {
	ID        int64         `json:"id"`
	Placa     string        `json:"placa" validate:"required"`
	Modelo    string        `json:"modelo"`
	Marca     string        `json:"marca"`
	Ano       int           `json:"ano,omitempty"`
	Cor       string        `json:"cor,omitempty"`
	Odometro  int64         `json:"odometro"`
	Status    VehicleStatus `json:"status"`
	TecnicoID *int64        `json:"tecnico_id,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
