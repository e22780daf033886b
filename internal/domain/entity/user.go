package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RolePharmacist = "pharmacist"
	RoleAssistant  = "assistant"
	RoleUser       = "user"
)

// Estados de cuenta.
const (
	UserActive   = "active"
	UserInactive = "inactive"
)

// User representa una cuenta del sistema.
// Permissions es el conjunto explícito de la cuenta; el rol admin satisface
// cualquier chequeo de permiso sin importar este conjunto (ver domain/policy).
type User struct {
	ID           string
	Username     string
	FullName     string
	Email        string
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Role         string // admin, pharmacist, assistant, user
	Permissions  []string
	Status       string // active, inactive
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
