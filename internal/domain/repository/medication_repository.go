package repository

import "github.com/jhoicas/Farmacia-api/internal/domain/entity"

// MedicationRepository define el puerto de persistencia para el catálogo de medicamentos.
type MedicationRepository interface {
	Create(medication *entity.Medication) error
	GetByID(id string) (*entity.Medication, error)
	GetByCode(code string) (*entity.Medication, error)
	List() ([]*entity.Medication, error)
	Update(medication *entity.Medication) error
	Delete(id string) error
}
