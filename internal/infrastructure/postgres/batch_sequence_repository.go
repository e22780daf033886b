package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.BatchSequenceRepository = (*BatchSequenceRepo)(nil)

// BatchSequenceRepo contador monotónico por medicamento para el código de lote.
// UPSERT + RETURNING en una sola sentencia: dos recepciones concurrentes del
// mismo medicamento nunca obtienen el mismo ordinal.
type BatchSequenceRepo struct {
	q Querier
}

// NewBatchSequenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchSequenceRepository(q Querier) *BatchSequenceRepo {
	return &BatchSequenceRepo{q: q}
}

// Next devuelve el siguiente ordinal (1-based) para el medicamento.
func (r *BatchSequenceRepo) Next(medicationID string) (int64, error) {
	query := `
		INSERT INTO batch_sequences (medication_id, last_ordinal)
		VALUES ($1, 1)
		ON CONFLICT (medication_id)
		DO UPDATE SET last_ordinal = batch_sequences.last_ordinal + 1
		RETURNING last_ordinal`
	var ordinal int64
	if err := r.q.QueryRow(context.Background(), query, medicationID).Scan(&ordinal); err != nil {
		return 0, fmt.Errorf("next batch ordinal: %w", err)
	}
	return ordinal, nil
}
