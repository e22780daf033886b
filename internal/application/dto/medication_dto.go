package dto

import (
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// CreateMedicationRequest entrada para dar de alta un medicamento.
type CreateMedicationRequest struct {
	Code         string `json:"code" validate:"required,min=1,max=50"`
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Category     string `json:"category" validate:"required,min=1,max=100"`
	Supplier     string `json:"supplier" validate:"omitempty,max=200"`
	ReorderLevel int64  `json:"reorder_level" validate:"min=0"`
}

// UpdateMedicationRequest entrada para editar un medicamento.
type UpdateMedicationRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	Category     string `json:"category" validate:"required,min=1,max=100"`
	Supplier     string `json:"supplier" validate:"omitempty,max=200"`
	ReorderLevel int64  `json:"reorder_level" validate:"min=0"`
}

// MedicationResponse salida de un medicamento.
type MedicationResponse struct {
	ID           string    `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Supplier     string    `json:"supplier"`
	ReorderLevel int64     `json:"reorder_level"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToMedicationResponse mapea la entidad a su DTO.
func ToMedicationResponse(m *entity.Medication) MedicationResponse {
	return MedicationResponse{
		ID:           m.ID,
		Code:         m.Code,
		Name:         m.Name,
		Category:     m.Category,
		Supplier:     m.Supplier,
		ReorderLevel: m.ReorderLevel,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
