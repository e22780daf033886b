package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.MedicationRepository = (*MedicationRepo)(nil)

// MedicationRepo implementación de MedicationRepository sobre PostgreSQL (usable con pool o tx).
type MedicationRepo struct {
	q Querier
}

// NewMedicationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMedicationRepository(q Querier) *MedicationRepo {
	return &MedicationRepo{q: q}
}

const medicationColumns = `id, code, name, category, supplier, reorder_level, created_at, updated_at`

// Create persiste un medicamento. Devuelve ErrDuplicate si el código ya existe.
func (r *MedicationRepo) Create(m *entity.Medication) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO medications (id, code, name, category, supplier, reorder_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Code, m.Name, m.Category, m.Supplier, m.ReorderLevel, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create medication: %w", err)
	}
	return nil
}

// GetByID obtiene un medicamento por ID. Devuelve nil, nil si no existe.
func (r *MedicationRepo) GetByID(id string) (*entity.Medication, error) {
	query := `SELECT ` + medicationColumns + ` FROM medications WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByCode obtiene un medicamento por su código único.
func (r *MedicationRepo) GetByCode(code string) (*entity.Medication, error) {
	query := `SELECT ` + medicationColumns + ` FROM medications WHERE code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, code))
}

// List lista el catálogo completo ordenado por código.
func (r *MedicationRepo) List() ([]*entity.Medication, error) {
	query := `SELECT ` + medicationColumns + ` FROM medications ORDER BY code`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	defer rows.Close()
	var list []*entity.Medication
	for rows.Next() {
		var m entity.Medication
		if err := rows.Scan(&m.ID, &m.Code, &m.Name, &m.Category, &m.Supplier,
			&m.ReorderLevel, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan medication: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update reemplaza los campos editables.
func (r *MedicationRepo) Update(m *entity.Medication) error {
	query := `
		UPDATE medications
		SET code = $2, name = $3, category = $4, supplier = $5, reorder_level = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		m.ID, m.Code, m.Name, m.Category, m.Supplier, m.ReorderLevel, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update medication: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un medicamento del catálogo.
func (r *MedicationRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM medications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete medication: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MedicationRepo) scanOne(row pgx.Row) (*entity.Medication, error) {
	var m entity.Medication
	err := row.Scan(&m.ID, &m.Code, &m.Name, &m.Category, &m.Supplier,
		&m.ReorderLevel, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medication: %w", err)
	}
	return &m, nil
}
