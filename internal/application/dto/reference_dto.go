package dto

import (
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// SupplierRequest entrada para crear o editar un proveedor.
type SupplierRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=200"`
	Active *bool  `json:"active,omitempty"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReasonRequest entrada para crear o editar un motivo de movimiento.
type ReasonRequest struct {
	Code        string `json:"code" validate:"required,min=1,max=50"`
	Description string `json:"description" validate:"required,min=1,max=200"`
	Active      *bool  `json:"active,omitempty"`
}

// ReasonResponse salida de un motivo.
type ReasonResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToSupplierResponse(s *entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func ToReasonResponse(r *entity.Reason) ReasonResponse {
	return ReasonResponse{
		ID:          r.ID,
		Code:        r.Code,
		Description: r.Description,
		Active:      r.Active,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
