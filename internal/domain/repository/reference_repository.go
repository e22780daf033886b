package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// SupplierRepository puerto de persistencia para proveedores (datos de referencia).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
}

// ReasonRepository puerto de persistencia para motivos de movimiento.
type ReasonRepository interface {
	Create(reason *entity.Reason) error
	GetByID(id string) (*entity.Reason, error)
	List() ([]*entity.Reason, error)
	Update(reason *entity.Reason) error
	Delete(id string) error
}
