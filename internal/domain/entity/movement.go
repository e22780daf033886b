package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIn     = "in"     // entrada
	MovementTypeOut    = "out"    // salida (dispensación)
	MovementTypeAdjust = "adjust" // ajuste manual / reconciliación
)

// StockMovement representa un movimiento registrado contra un lote.
// Es un hecho histórico: no existe edición ni borrado de movimientos.
// Quantity siempre es positiva; para adjust, Delta lleva el signo aplicado al stock.
type StockMovement struct {
	ID           string
	Type         string // in, out, adjust
	MedicationID string
	BatchID      string
	ReasonID     string // opcional, referencia a reasons
	Quantity     decimal.Decimal
	Delta        decimal.Decimal // efecto neto sobre CurrentStock (+/-)
	Date         time.Time
	Notes        string
	CreatedAt    time.Time
	CreatedBy    string // username
}
