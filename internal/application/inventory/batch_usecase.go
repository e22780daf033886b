package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/internal/domain/stock"
)

// BatchUseCase gestiona el ciclo de vida de los lotes: alta con código
// generado por secuencia, edición, baja lógica y consulta.
type BatchUseCase struct {
	batchRepo      repository.BatchRepository
	medicationRepo repository.MedicationRepository
	seqRepo        repository.BatchSequenceRepository
	movementUC     *RegisterMovementUseCase
}

// NewBatchUseCase construye el caso de uso.
func NewBatchUseCase(
	batchRepo repository.BatchRepository,
	medicationRepo repository.MedicationRepository,
	seqRepo repository.BatchSequenceRepository,
	movementUC *RegisterMovementUseCase,
) *BatchUseCase {
	return &BatchUseCase{
		batchRepo:      batchRepo,
		medicationRepo: medicationRepo,
		seqRepo:        seqRepo,
		movementUC:     movementUC,
	}
}

// CreateBatchInput entrada para registrar un lote.
type CreateBatchInput struct {
	MedicationID string
	Quantity     decimal.Decimal
	ReceivedDate time.Time
	ExpiryDate   time.Time
	Supplier     string
	ReceivedBy   string
}

// UpdateBatchInput entrada para editar un lote. La cantidad recibida no es
// editable: queda fija al momento de la recepción. CurrentStock opcional: si
// viene y difiere del stock actual, la diferencia se registra como ajuste
// en el diario de movimientos.
type UpdateBatchInput struct {
	ReceivedDate time.Time
	ExpiryDate   time.Time
	Supplier     string
	ReceivedBy   string
	CurrentStock *decimal.Decimal
}

// Create valida el alta, obtiene el siguiente ordinal del medicamento y
// genera el código de lote. El stock inicial es la cantidad recibida.
func (uc *BatchUseCase) Create(input CreateBatchInput) (*entity.Batch, error) {
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if input.ReceivedDate.IsZero() || input.ExpiryDate.IsZero() || !input.ExpiryDate.After(input.ReceivedDate) {
		return nil, domain.ErrInvalidInput
	}
	med, err := uc.medicationRepo.GetByID(input.MedicationID)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, domain.ErrNotFound
	}

	ordinal, err := uc.seqRepo.Next(med.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	batch := &entity.Batch{
		ID:           uuid.New().String(),
		MedicationID: med.ID,
		BatchNumber:  stock.BatchNumber(med.Name, ordinal, input.ReceivedDate),
		Quantity:     input.Quantity,
		ReceivedDate: input.ReceivedDate,
		ExpiryDate:   input.ExpiryDate,
		Supplier:     input.Supplier,
		ReceivedBy:   input.ReceivedBy,
		CurrentStock: input.Quantity,
		Status:       entity.BatchActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.batchRepo.Create(batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// Update edita los campos mutables del lote. El stock actual no se toca
// aquí: si el caller manda CurrentStock, la diferencia entra al diario como
// movimiento de ajuste y es ese camino el que actualiza el lote.
func (uc *BatchUseCase) Update(ctx context.Context, id, userID string, input UpdateBatchInput) (*entity.Batch, error) {
	if input.ReceivedDate.IsZero() || input.ExpiryDate.IsZero() || !input.ExpiryDate.After(input.ReceivedDate) {
		return nil, domain.ErrInvalidInput
	}
	batch, err := uc.batchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	if batch.Status != entity.BatchActive {
		return nil, domain.ErrBatchInactive
	}

	batch.ReceivedDate = input.ReceivedDate
	batch.ExpiryDate = input.ExpiryDate
	batch.Supplier = input.Supplier
	batch.ReceivedBy = input.ReceivedBy
	batch.UpdatedAt = time.Now()
	if err := uc.batchRepo.Update(batch); err != nil {
		return nil, err
	}

	if input.CurrentStock != nil && !input.CurrentStock.Equal(batch.CurrentStock) {
		_, err := uc.movementUC.RegisterMovement(ctx, MovementInputDTO{
			UserID:       userID,
			Type:         entity.MovementTypeAdjust,
			MedicationID: batch.MedicationID,
			BatchID:      batch.ID,
			Quantity:     *input.CurrentStock,
			Notes:        "Ajuste por edición de lote",
		})
		if err != nil {
			return nil, err
		}
		return uc.Get(id)
	}
	return batch, nil
}

// Deactivate marca el lote como inactivo. El historial del diario se
// conserva intacto; el lote deja de aparecer en listados y de aceptar
// movimientos.
func (uc *BatchUseCase) Deactivate(id string) error {
	batch, err := uc.batchRepo.GetByID(id)
	if err != nil {
		return err
	}
	if batch == nil {
		return domain.ErrNotFound
	}
	return uc.batchRepo.Deactivate(id)
}

// Get devuelve un lote por ID.
func (uc *BatchUseCase) Get(id string) (*entity.Batch, error) {
	batch, err := uc.batchRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	return batch, nil
}

// List devuelve los lotes, por defecto solo los activos.
func (uc *BatchUseCase) List(includeInactive bool) ([]*entity.Batch, error) {
	return uc.batchRepo.List(includeInactive)
}

// ListByMedication devuelve los lotes activos de un medicamento ordenados
// por fecha de vencimiento (primero los que vencen antes).
func (uc *BatchUseCase) ListByMedication(medicationID string) ([]*entity.Batch, error) {
	med, err := uc.medicationRepo.GetByID(medicationID)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, domain.ErrNotFound
	}
	return uc.batchRepo.ListByMedication(medicationID)
}
