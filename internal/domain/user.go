package domain

import "time"

type UserRole string

const (
	RoleGerente           UserRole = "GERENTE"
	RoleConsultorGarantia UserRole = "CONSULTOR_GARANTIA"
	RoleConsultorVendas   UserRole = "CONSULTOR_VENDAS"
	RoleTecnico           UserRole = "TECNICO"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleGerente, RoleConsultorGarantia, RoleConsultorVendas, RoleTecnico:
		return true
	}
	return false
}

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
