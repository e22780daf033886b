// Package inventory contiene el motor de consistencia del stock: todo cambio
// de existencias pasa por el diario de movimientos dentro de una transacción.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock de forma transaccional
// (in, out, adjust) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// El stock de un lote solo cambia por este camino.
type RegisterMovementUseCase struct {
	txRunner   TxRunner
	reasonRepo repository.ReasonRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, reasonRepo repository.ReasonRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, reasonRepo: reasonRepo}
}

// MovementInputDTO entrada para registrar un movimiento.
// Para in/out la cantidad es el volumen movido (> 0).
// Para adjust la cantidad es el stock corregido del lote (>= 0); el delta
// se deriva contra el stock actual dentro de la transacción.
type MovementInputDTO struct {
	UserID       string
	Type         string
	MedicationID string
	BatchID      string
	ReasonID     string
	Quantity     decimal.Decimal
	Date         time.Time
	Notes        string
}

// RegisterMovement valida la entrada, abre una transacción, bloquea la fila
// del lote y aplica el movimiento: el registro del diario y la actualización
// del stock se confirman juntos o no se confirma ninguno.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInputDTO) (*entity.StockMovement, error) {
	switch input.Type {
	case entity.MovementTypeIn, entity.MovementTypeOut:
		if !input.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovementTypeAdjust:
		if input.Quantity.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	if input.MedicationID == "" || input.BatchID == "" {
		return nil, domain.ErrInvalidInput
	}

	// El motivo es opcional, pero si viene tiene que existir y estar activo.
	if input.ReasonID != "" {
		reason, err := uc.reasonRepo.GetByID(input.ReasonID)
		if err != nil {
			return nil, err
		}
		if reason == nil {
			return nil, domain.ErrNotFound
		}
		if !reason.Active {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	var created *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(movRepo repository.MovementRepository, batchRepo repository.BatchRepository) error {
		// Bloquea la fila del lote para evitar condiciones de carrera.
		batch, err := batchRepo.GetForUpdate(input.BatchID)
		if err != nil {
			return err
		}
		if batch == nil {
			return domain.ErrNotFound
		}
		if batch.Status != entity.BatchActive {
			return domain.ErrBatchInactive
		}
		if batch.MedicationID != input.MedicationID {
			return domain.ErrMedicationMismatch
		}

		quantity, delta, err := resolveDelta(input.Type, input.Quantity, batch)
		if err != nil {
			return err
		}

		mov := &entity.StockMovement{
			ID:           uuid.New().String(),
			Type:         input.Type,
			MedicationID: input.MedicationID,
			BatchID:      input.BatchID,
			ReasonID:     input.ReasonID,
			Quantity:     quantity,
			Delta:        delta,
			Date:         date,
			Notes:        input.Notes,
			CreatedAt:    now,
			CreatedBy:    input.UserID,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := batchRepo.UpdateStock(batch.ID, batch.CurrentStock.Add(delta)); err != nil {
			return err
		}
		created = mov
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// resolveDelta calcula la cantidad registrada y el efecto neto sobre el stock,
// validando los límites del lote: una salida nunca deja stock negativo y una
// entrada o ajuste nunca supera la cantidad recibida del lote.
func resolveDelta(movType string, quantity decimal.Decimal, batch *entity.Batch) (decimal.Decimal, decimal.Decimal, error) {
	switch movType {
	case entity.MovementTypeOut:
		if quantity.GreaterThan(batch.CurrentStock) {
			return decimal.Zero, decimal.Zero, domain.ErrInsufficientStock
		}
		return quantity, quantity.Neg(), nil
	case entity.MovementTypeIn:
		if batch.CurrentStock.Add(quantity).GreaterThan(batch.Quantity) {
			return decimal.Zero, decimal.Zero, domain.ErrStockExceedsQty
		}
		return quantity, quantity, nil
	case entity.MovementTypeAdjust:
		// quantity es el stock objetivo; el delta se deriva del stock actual.
		if quantity.GreaterThan(batch.Quantity) {
			return decimal.Zero, decimal.Zero, domain.ErrStockExceedsQty
		}
		delta := quantity.Sub(batch.CurrentStock)
		if delta.IsZero() {
			return decimal.Zero, decimal.Zero, domain.ErrInvalidInput
		}
		return delta.Abs(), delta, nil
	}
	return decimal.Zero, decimal.Zero, domain.ErrInvalidInput
}
