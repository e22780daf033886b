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

var (
	_ repository.SupplierRepository = (*SupplierRepo)(nil)
	_ repository.ReasonRepository   = (*ReasonRepo)(nil)
)

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor.
func (r *SupplierRepo) Create(s *entity.Supplier) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	query := `
		INSERT INTO suppliers (id, name, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, s.ID, s.Name, s.Active, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor. Devuelve nil, nil si no existe.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, active, created_at, updated_at FROM suppliers WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List lista proveedores por nombre.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, active, created_at, updated_at FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update reemplaza nombre y estado.
func (r *SupplierRepo) Update(s *entity.Supplier) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE suppliers SET name = $2, active = $3, updated_at = $4 WHERE id = $1`,
		s.ID, s.Name, s.Active, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un proveedor.
func (r *SupplierRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReasonRepo implementación de ReasonRepository sobre PostgreSQL.
type ReasonRepo struct {
	q Querier
}

// NewReasonRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReasonRepository(q Querier) *ReasonRepo {
	return &ReasonRepo{q: q}
}

// Create persiste un motivo. Devuelve ErrDuplicate si el código ya existe.
func (r *ReasonRepo) Create(reason *entity.Reason) error {
	if reason.ID == "" {
		reason.ID = uuid.New().String()
	}
	query := `
		INSERT INTO reasons (id, code, description, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		reason.ID, reason.Code, reason.Description, reason.Active, reason.CreatedAt, reason.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create reason: %w", err)
	}
	return nil
}

// GetByID obtiene un motivo. Devuelve nil, nil si no existe.
func (r *ReasonRepo) GetByID(id string) (*entity.Reason, error) {
	var reason entity.Reason
	err := r.q.QueryRow(context.Background(),
		`SELECT id, code, description, active, created_at, updated_at FROM reasons WHERE id = $1`, id).
		Scan(&reason.ID, &reason.Code, &reason.Description, &reason.Active, &reason.CreatedAt, &reason.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reason: %w", err)
	}
	return &reason, nil
}

// List lista motivos por código.
func (r *ReasonRepo) List() ([]*entity.Reason, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, code, description, active, created_at, updated_at FROM reasons ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list reasons: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reason
	for rows.Next() {
		var reason entity.Reason
		if err := rows.Scan(&reason.ID, &reason.Code, &reason.Description, &reason.Active,
			&reason.CreatedAt, &reason.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan reason: %w", err)
		}
		list = append(list, &reason)
	}
	return list, rows.Err()
}

// Update reemplaza código, descripción y estado.
func (r *ReasonRepo) Update(reason *entity.Reason) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE reasons SET code = $2, description = $3, active = $4, updated_at = $5 WHERE id = $1`,
		reason.ID, reason.Code, reason.Description, reason.Active, reason.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update reason: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un motivo.
func (r *ReasonRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM reasons WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reason: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
