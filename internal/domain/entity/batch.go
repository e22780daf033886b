package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un lote. Un lote nunca se borra físicamente: se marca inactive
// para que los movimientos del diario siempre resuelvan su referencia.
const (
	BatchActive   = "active"
	BatchInactive = "inactive"
)

// Batch representa un lote recibido de un medicamento.
// Invariante: 0 <= CurrentStock <= Quantity. CurrentStock solo cambia a través
// del diario de movimientos; Quantity queda fija al momento de la recepción.
type Batch struct {
	ID           string
	MedicationID string
	BatchNumber  string // generado una sola vez al crear, ej. PAR001-2024-01-05
	Quantity     decimal.Decimal
	ReceivedDate time.Time
	ExpiryDate   time.Time
	Supplier     string
	ReceivedBy   string
	CurrentStock decimal.Decimal
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
