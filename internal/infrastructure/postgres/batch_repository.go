package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación de BatchRepository sobre PostgreSQL (usable con pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

const batchColumns = `id, medication_id, batch_number, quantity, received_date, expiry_date,
		supplier, received_by, current_stock, status, created_at, updated_at`

// Create persiste un lote nuevo.
func (r *BatchRepo) Create(b *entity.Batch) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	query := `
		INSERT INTO batches (id, medication_id, batch_number, quantity, received_date, expiry_date,
			supplier, received_by, current_stock, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		b.ID, b.MedicationID, b.BatchNumber, b.Quantity, b.ReceivedDate, b.ExpiryDate,
		b.Supplier, b.ReceivedBy, b.CurrentStock, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID. Devuelve nil, nil si no existe.
func (r *BatchRepo) GetByID(id string) (*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE id = $1`
	return scanBatch(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene el lote y bloquea la fila (SELECT FOR UPDATE).
// Debe llamarse dentro de una transacción; es la base del check-then-update
// del diario de movimientos.
func (r *BatchRepo) GetForUpdate(id string) (*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE id = $1 FOR UPDATE`
	return scanBatch(r.q.QueryRow(context.Background(), query, id))
}

// List lista lotes; por defecto solo activos.
func (r *BatchRepo) List(includeInactive bool) ([]*entity.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches`
	if !includeInactive {
		query += ` WHERE status = 'active'`
	}
	query += ` ORDER BY received_date DESC, batch_number`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	return collectBatches(rows)
}

// ListByMedication lista los lotes activos de un medicamento (para el selector de movimientos).
func (r *BatchRepo) ListByMedication(medicationID string) ([]*entity.Batch, error) {
	query := `SELECT ` + batchColumns + `
		FROM batches WHERE medication_id = $1 AND status = 'active'
		ORDER BY expiry_date`
	rows, err := r.q.Query(context.Background(), query, medicationID)
	if err != nil {
		return nil, fmt.Errorf("list batches by medication: %w", err)
	}
	defer rows.Close()
	return collectBatches(rows)
}

// Update reemplaza los campos mutables del lote. No toca current_stock:
// ese campo solo cambia vía UpdateStock dentro de la transacción del diario.
func (r *BatchRepo) Update(b *entity.Batch) error {
	query := `
		UPDATE batches
		SET received_date = $2, expiry_date = $3, supplier = $4, received_by = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		b.ID, b.ReceivedDate, b.ExpiryDate, b.Supplier, b.ReceivedBy, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock actualiza solo current_stock (camino exclusivo del diario).
func (r *BatchRepo) UpdateStock(id string, currentStock decimal.Decimal) error {
	query := `UPDATE batches SET current_stock = $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id, currentStock)
	if err != nil {
		return fmt.Errorf("update batch stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Deactivate marca el lote como inactive (soft delete): el historial de
// movimientos sigue resolviendo la referencia.
func (r *BatchRepo) Deactivate(id string) error {
	query := `UPDATE batches SET status = 'inactive', updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("deactivate batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanBatch(row pgx.Row) (*entity.Batch, error) {
	var b entity.Batch
	err := row.Scan(&b.ID, &b.MedicationID, &b.BatchNumber, &b.Quantity, &b.ReceivedDate,
		&b.ExpiryDate, &b.Supplier, &b.ReceivedBy, &b.CurrentStock, &b.Status,
		&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return &b, nil
}

func collectBatches(rows pgx.Rows) ([]*entity.Batch, error) {
	var list []*entity.Batch
	for rows.Next() {
		var b entity.Batch
		if err := rows.Scan(&b.ID, &b.MedicationID, &b.BatchNumber, &b.Quantity, &b.ReceivedDate,
			&b.ExpiryDate, &b.Supplier, &b.ReceivedBy, &b.CurrentStock, &b.Status,
			&b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
