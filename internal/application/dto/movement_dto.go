package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
type RegisterMovementRequest struct {
	Type         string          `json:"type" validate:"required,oneof=in out adjust"`
	MedicationID string          `json:"medication_id" validate:"required,uuid"`
	BatchID      string          `json:"batch_id" validate:"required,uuid"`
	ReasonID     string          `json:"reason_id" validate:"omitempty,uuid"`
	Quantity     decimal.Decimal `json:"quantity" validate:"required"`
	Date         time.Time       `json:"date"`
	Notes        string          `json:"notes" validate:"omitempty,max=500"`
}

// MovementResponse salida de un movimiento del diario.
type MovementResponse struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	MedicationID   string          `json:"medication_id"`
	MedicationName string          `json:"medication_name,omitempty"`
	BatchID        string          `json:"batch_id"`
	BatchNumber    string          `json:"batch_number,omitempty"`
	ReasonID       string          `json:"reason_id,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	Delta          decimal.Decimal `json:"delta"`
	Date           time.Time       `json:"date"`
	Notes          string          `json:"notes,omitempty"`
	CreatedBy      string          `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ToMovementResponse mapea la entidad a su DTO.
func ToMovementResponse(m *entity.StockMovement) MovementResponse {
	return MovementResponse{
		ID:           m.ID,
		Type:         m.Type,
		MedicationID: m.MedicationID,
		BatchID:      m.BatchID,
		ReasonID:     m.ReasonID,
		Quantity:     m.Quantity,
		Delta:        m.Delta,
		Date:         m.Date,
		Notes:        m.Notes,
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
	}
}
