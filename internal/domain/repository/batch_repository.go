package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// BatchRepository define el puerto de persistencia para lotes.
// Usado dentro de transacciones para garantizar consistencia del stock.
type BatchRepository interface {
	Create(batch *entity.Batch) error
	GetByID(id string) (*entity.Batch, error)
	// GetForUpdate bloquea la fila del lote (SELECT FOR UPDATE) dentro de una tx.
	GetForUpdate(id string) (*entity.Batch, error)
	List(includeInactive bool) ([]*entity.Batch, error)
	ListByMedication(medicationID string) ([]*entity.Batch, error)
	Update(batch *entity.Batch) error
	// UpdateStock actualiza solo CurrentStock (camino del diario de movimientos).
	UpdateStock(id string, currentStock decimal.Decimal) error
	// Deactivate marca el lote como inactive (soft delete).
	Deactivate(id string) error
}

// BatchSequenceRepository entrega el ordinal monotónico por medicamento usado
// para el código de lote. El contador es independiente del número de lotes
// vivos: borrar un lote nunca reutiliza un ordinal.
type BatchSequenceRepository interface {
	Next(medicationID string) (int64, error)
}
