package auth

import "oficina/internal/domain"

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// UserResponse is the authenticated profile plus the navigation the role is
// entitled to, so clients never hardcode role-to-screen mappings.
type UserResponse struct {
	ID              int64           `json:"id"`
	Email           string          `json:"email"`
	Name            string          `json:"name"`
	Role            domain.UserRole `json:"role"`
	RotaInicial     string          `json:"rota_inicial"`
	RotasPermitidas []string        `json:"rotas_permitidas"`
}
