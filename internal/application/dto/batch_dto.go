package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/stock"
)

// CreateBatchRequest entrada para registrar un lote nuevo.
// El número de lote y el stock inicial los asigna el servidor.
type CreateBatchRequest struct {
	MedicationID string          `json:"medication_id" validate:"required,uuid"`
	Quantity     decimal.Decimal `json:"quantity" validate:"required"`
	ReceivedDate time.Time       `json:"received_date" validate:"required"`
	ExpiryDate   time.Time       `json:"expiry_date" validate:"required"`
	Supplier     string          `json:"supplier" validate:"omitempty,max=200"`
	ReceivedBy   string          `json:"received_by" validate:"omitempty,max=200"`
}

// UpdateBatchRequest entrada para editar un lote. La cantidad recibida no
// es editable. CurrentStock es opcional: si viene, la diferencia se registra
// como movimiento de ajuste en el diario, nunca como edición directa.
type UpdateBatchRequest struct {
	ReceivedDate time.Time        `json:"received_date" validate:"required"`
	ExpiryDate   time.Time        `json:"expiry_date" validate:"required"`
	Supplier     string           `json:"supplier" validate:"omitempty,max=200"`
	ReceivedBy   string           `json:"received_by" validate:"omitempty,max=200"`
	CurrentStock *decimal.Decimal `json:"current_stock,omitempty"`
}

// BatchResponse salida de un lote, con los niveles derivados de
// vencimiento y de stock ya clasificados.
type BatchResponse struct {
	ID             string          `json:"id"`
	MedicationID   string          `json:"medication_id"`
	MedicationName string          `json:"medication_name,omitempty"`
	BatchNumber    string          `json:"batch_number"`
	Quantity       decimal.Decimal `json:"quantity"`
	ReceivedDate   time.Time       `json:"received_date"`
	ExpiryDate     time.Time       `json:"expiry_date"`
	Supplier       string          `json:"supplier"`
	ReceivedBy     string          `json:"received_by"`
	CurrentStock   decimal.Decimal `json:"current_stock"`
	Status         string          `json:"status"`
	ExpiryLevel    string          `json:"expiry_level"`
	StockLevel     string          `json:"stock_level"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToBatchResponse mapea la entidad y calcula los niveles con el reloj dado.
func ToBatchResponse(b *entity.Batch, now time.Time) BatchResponse {
	return BatchResponse{
		ID:           b.ID,
		MedicationID: b.MedicationID,
		BatchNumber:  b.BatchNumber,
		Quantity:     b.Quantity,
		ReceivedDate: b.ReceivedDate,
		ExpiryDate:   b.ExpiryDate,
		Supplier:     b.Supplier,
		ReceivedBy:   b.ReceivedBy,
		CurrentStock: b.CurrentStock,
		Status:       b.Status,
		ExpiryLevel:  string(stock.ExpiryLevel(b.ExpiryDate, now)),
		StockLevel:   string(stock.StockLevel(b.CurrentStock, b.Quantity)),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
