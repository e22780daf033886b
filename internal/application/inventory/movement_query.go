package inventory

import (
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// MovementQueryUseCase consultas de solo lectura sobre el diario.
type MovementQueryUseCase struct {
	movementRepo repository.MovementRepository
}

func NewMovementQueryUseCase(movementRepo repository.MovementRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movementRepo: movementRepo}
}

func (uc *MovementQueryUseCase) Get(id string) (*entity.StockMovement, error) {
	mov, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	return mov, nil
}

func (uc *MovementQueryUseCase) List(limit, offset int) ([]*entity.StockMovement, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.movementRepo.List(limit, offset)
}

// History devuelve el historial de un lote en orden cronológico inverso.
func (uc *MovementQueryUseCase) History(batchID string) ([]*entity.StockMovement, error) {
	return uc.movementRepo.ListByBatch(batchID)
}

// ByMedication filtra el diario por medicamento y rango de fechas opcional.
func (uc *MovementQueryUseCase) ByMedication(medicationID string, from, to *time.Time) ([]*entity.StockMovement, error) {
	return uc.movementRepo.ListByMedication(medicationID, from, to)
}
