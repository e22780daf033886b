// Package usecase agrupa los casos de uso CRUD del catálogo y de usuarios.
package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// MedicationUseCase CRUD del catálogo de medicamentos.
type MedicationUseCase struct {
	medicationRepo repository.MedicationRepository
	batchRepo      repository.BatchRepository
}

// NewMedicationUseCase construye el caso de uso.
func NewMedicationUseCase(medicationRepo repository.MedicationRepository, batchRepo repository.BatchRepository) *MedicationUseCase {
	return &MedicationUseCase{medicationRepo: medicationRepo, batchRepo: batchRepo}
}

// Create da de alta un medicamento. El código es único en el catálogo.
func (uc *MedicationUseCase) Create(in dto.CreateMedicationRequest) (*entity.Medication, error) {
	code := strings.TrimSpace(in.Code)
	name := strings.TrimSpace(in.Name)
	if code == "" || name == "" || strings.TrimSpace(in.Category) == "" || in.ReorderLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.medicationRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	med := &entity.Medication{
		ID:           uuid.New().String(),
		Code:         code,
		Name:         name,
		Category:     in.Category,
		Supplier:     in.Supplier,
		ReorderLevel: in.ReorderLevel,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.medicationRepo.Create(med); err != nil {
		return nil, err
	}
	return med, nil
}

// Update edita un medicamento. El código no es editable.
func (uc *MedicationUseCase) Update(id string, in dto.UpdateMedicationRequest) (*entity.Medication, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" || in.ReorderLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	med, err := uc.medicationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, domain.ErrNotFound
	}
	med.Name = strings.TrimSpace(in.Name)
	med.Category = in.Category
	med.Supplier = in.Supplier
	med.ReorderLevel = in.ReorderLevel
	med.UpdatedAt = time.Now()
	if err := uc.medicationRepo.Update(med); err != nil {
		return nil, err
	}
	return med, nil
}

// Delete elimina un medicamento del catálogo. Se rechaza si tiene lotes
// activos asociados.
func (uc *MedicationUseCase) Delete(id string) error {
	med, err := uc.medicationRepo.GetByID(id)
	if err != nil {
		return err
	}
	if med == nil {
		return domain.ErrNotFound
	}
	batches, err := uc.batchRepo.ListByMedication(id)
	if err != nil {
		return err
	}
	if len(batches) > 0 {
		return domain.ErrMedicationInUse
	}
	return uc.medicationRepo.Delete(id)
}

// Get devuelve un medicamento por ID.
func (uc *MedicationUseCase) Get(id string) (*entity.Medication, error) {
	med, err := uc.medicationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if med == nil {
		return nil, domain.ErrNotFound
	}
	return med, nil
}

// List devuelve el catálogo completo.
func (uc *MedicationUseCase) List() ([]*entity.Medication, error) {
	return uc.medicationRepo.List()
}
