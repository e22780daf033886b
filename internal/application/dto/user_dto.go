package dto

import (
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Username    string   `json:"username" validate:"required,min=3,max=50"`
	FullName    string   `json:"full_name" validate:"required,min=1,max=200"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"required,min=8"`
	Role        string   `json:"role" validate:"required,oneof=admin pharmacist assistant user"`
	Permissions []string `json:"permissions,omitempty"`
}

// UpdateUserRequest entrada para editar un usuario. Password opcional.
type UpdateUserRequest struct {
	FullName    string   `json:"full_name" validate:"required,min=1,max=200"`
	Email       string   `json:"email" validate:"required,email"`
	Password    string   `json:"password" validate:"omitempty,min=8"`
	Role        string   `json:"role" validate:"required,oneof=admin pharmacist assistant user"`
	Permissions []string `json:"permissions,omitempty"`
}

// UserResponse salida de un usuario (sin hash de password).
type UserResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	FullName    string     `json:"full_name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	Permissions []string   `json:"permissions"`
	Status      string     `json:"status"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToUserResponse mapea la entidad a su DTO.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		FullName:    u.FullName,
		Email:       u.Email,
		Role:        u.Role,
		Permissions: u.Permissions,
		Status:      u.Status,
		LastLogin:   u.LastLogin,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
