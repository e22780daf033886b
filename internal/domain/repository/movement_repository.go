package repository

import (
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia del diario de movimientos.
// El diario es append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	List(limit, offset int) ([]*entity.StockMovement, error)
	ListByBatch(batchID string) ([]*entity.StockMovement, error)
	ListByMedication(medicationID string, from, to *time.Time) ([]*entity.StockMovement, error)
}
