package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

type fakeMedicationRepo struct {
	meds map[string]*entity.Medication
}

func (r *fakeMedicationRepo) Create(m *entity.Medication) error { return nil }

// GetByID replica el contrato de los repos reales: nil, nil si no existe.
func (r *fakeMedicationRepo) GetByID(id string) (*entity.Medication, error) {
	m, ok := r.meds[id]
	if !ok {
		return nil, nil
	}
	return m, nil
}
func (r *fakeMedicationRepo) GetByCode(code string) (*entity.Medication, error) {
	for _, m := range r.meds {
		if m.Code == code {
			return m, nil
		}
	}
	return nil, nil
}
func (r *fakeMedicationRepo) List() ([]*entity.Medication, error) {
	var out []*entity.Medication
	for _, m := range r.meds {
		out = append(out, m)
	}
	return out, nil
}
func (r *fakeMedicationRepo) Update(m *entity.Medication) error { return nil }
func (r *fakeMedicationRepo) Delete(id string) error            { return nil }

// fakeSeqRepo contador monotónico en memoria por medicamento.
type fakeSeqRepo struct {
	counters map[string]int64
}

func (r *fakeSeqRepo) Next(medicationID string) (int64, error) {
	if r.counters == nil {
		r.counters = make(map[string]int64)
	}
	r.counters[medicationID]++
	return r.counters[medicationID], nil
}

func setupBatchUC(batches ...*entity.Batch) (*inventory.BatchUseCase, *fakeBatchRepo, *fakeMovementRepo) {
	batchRepo := newFakeBatchRepo(batches...)
	movRepo := &fakeMovementRepo{}
	tx := &fakeTxRunner{movRepo: movRepo, batchRepo: batchRepo}
	movementUC := inventory.NewRegisterMovementUseCase(tx, &fakeReasonRepo{reasons: map[string]*entity.Reason{}})
	medRepo := &fakeMedicationRepo{meds: map[string]*entity.Medication{
		medID: {ID: medID, Code: "MED001", Name: "TestDrug", Category: "Analgesic"},
	}}
	uc := inventory.NewBatchUseCase(batchRepo, medRepo, &fakeSeqRepo{}, movementUC)
	return uc, batchRepo, movRepo
}

var (
	received = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	expiry   = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
)

func TestCreateBatch_GeneraCodigoConSecuencia(t *testing.T) {
	uc, _, _ := setupBatchUC()

	batch, err := uc.Create(inventory.CreateBatchInput{
		MedicationID: medID,
		Quantity:     decimal.NewFromInt(500),
		ReceivedDate: received,
		ExpiryDate:   expiry,
		Supplier:     "Pharma Inc",
		ReceivedBy:   "admin",
	})
	require.NoError(t, err)

	assert.Equal(t, "TES001-2024-01-01", batch.BatchNumber)
	assert.True(t, batch.CurrentStock.Equal(batch.Quantity), "el stock inicial es la cantidad recibida")
	assert.Equal(t, entity.BatchActive, batch.Status)

	// El segundo lote del mismo medicamento avanza el ordinal
	second, err := uc.Create(inventory.CreateBatchInput{
		MedicationID: medID,
		Quantity:     decimal.NewFromInt(200),
		ReceivedDate: received,
		ExpiryDate:   expiry,
	})
	require.NoError(t, err)
	assert.Equal(t, "TES002-2024-01-01", second.BatchNumber)
}

func TestCreateBatch_OrdinalNoSeReutilizaTrasLaBaja(t *testing.T) {
	uc, batchRepo, _ := setupBatchUC()

	first, err := uc.Create(inventory.CreateBatchInput{
		MedicationID: medID,
		Quantity:     decimal.NewFromInt(100),
		ReceivedDate: received,
		ExpiryDate:   expiry,
	})
	require.NoError(t, err)
	require.NoError(t, uc.Deactivate(first.ID))

	second, err := uc.Create(inventory.CreateBatchInput{
		MedicationID: medID,
		Quantity:     decimal.NewFromInt(100),
		ReceivedDate: received,
		ExpiryDate:   expiry,
	})
	require.NoError(t, err)
	assert.Equal(t, "TES002-2024-01-01", second.BatchNumber,
		"el contador es independiente de los lotes vivos")

	stored, err := batchRepo.GetByID(first.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.BatchInactive, stored.Status)
}

func TestCreateBatch_MedicamentoInexistente(t *testing.T) {
	uc, _, _ := setupBatchUC()
	_, err := uc.Create(inventory.CreateBatchInput{
		MedicationID: "no-existe",
		Quantity:     decimal.NewFromInt(100),
		ReceivedDate: received,
		ExpiryDate:   expiry,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateBatch_Validaciones(t *testing.T) {
	uc, _, _ := setupBatchUC()

	// Cantidad no positiva
	_, err := uc.Create(inventory.CreateBatchInput{
		MedicationID: medID,
		Quantity:     decimal.Zero,
		ReceivedDate: received,
		ExpiryDate:   expiry,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Vencimiento anterior a la recepción
	_, err = uc.Create(inventory.CreateBatchInput{
		MedicationID: medID,
		Quantity:     decimal.NewFromInt(10),
		ReceivedDate: expiry,
		ExpiryDate:   received,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateBatch_StockSePatcheaViaAjuste(t *testing.T) {
	uc, batchRepo, movRepo := setupBatchUC(newBatch(100, 70))
	target := decimal.NewFromInt(60)

	updated, err := uc.Update(context.Background(), batchID, userID, inventory.UpdateBatchInput{
		ReceivedDate: received,
		ExpiryDate:   expiry,
		CurrentStock: &target,
	})
	require.NoError(t, err)

	assert.True(t, updated.CurrentStock.Equal(target))
	mustStock(t, batchRepo, 60)

	// El cambio de stock quedó asentado como movimiento de ajuste
	require.Len(t, movRepo.movements, 1)
	assert.Equal(t, entity.MovementTypeAdjust, movRepo.movements[0].Type)
	assert.True(t, movRepo.movements[0].Delta.Equal(decimal.NewFromInt(-10)))
	assert.Equal(t, userID, movRepo.movements[0].CreatedBy)
}

func TestUpdateBatch_SinPatchDeStockNoGeneraMovimientos(t *testing.T) {
	uc, _, movRepo := setupBatchUC(newBatch(100, 70))

	updated, err := uc.Update(context.Background(), batchID, userID, inventory.UpdateBatchInput{
		ReceivedDate: received,
		ExpiryDate:   expiry,
		Supplier:     "MediCorp",
	})
	require.NoError(t, err)
	assert.True(t, updated.Quantity.Equal(decimal.NewFromInt(100)), "la cantidad recibida no es editable")
	assert.True(t, updated.CurrentStock.Equal(decimal.NewFromInt(70)), "el stock no cambia en una edición")
	assert.Equal(t, "MediCorp", updated.Supplier)
	assert.Empty(t, movRepo.movements)
}

func TestUpdateBatch_LoteInexistente(t *testing.T) {
	uc, _, _ := setupBatchUC()

	_, err := uc.Update(context.Background(), "no-existe", userID, inventory.UpdateBatchInput{
		ReceivedDate: received,
		ExpiryDate:   expiry,
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateBatch_LoteInactivoSeRechaza(t *testing.T) {
	batch := newBatch(100, 70)
	batch.Status = entity.BatchInactive
	uc, _, _ := setupBatchUC(batch)

	_, err := uc.Update(context.Background(), batchID, userID, inventory.UpdateBatchInput{
		ReceivedDate: received,
		ExpiryDate:   expiry,
	})
	require.ErrorIs(t, err, domain.ErrBatchInactive)
}

func TestDeactivate_LoteInexistente(t *testing.T) {
	uc, _, _ := setupBatchUC()
	require.ErrorIs(t, uc.Deactivate("no-existe"), domain.ErrNotFound)
}

func TestGetBatch_LoteInexistente(t *testing.T) {
	uc, _, _ := setupBatchUC()
	_, err := uc.Get("no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListByMedication_MedicamentoInexistente(t *testing.T) {
	uc, _, _ := setupBatchUC()
	_, err := uc.ListByMedication("no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
