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

// ReferenceUseCase CRUD de los catálogos auxiliares: proveedores y motivos
// de movimiento.
type ReferenceUseCase struct {
	supplierRepo repository.SupplierRepository
	reasonRepo   repository.ReasonRepository
}

func NewReferenceUseCase(supplierRepo repository.SupplierRepository, reasonRepo repository.ReasonRepository) *ReferenceUseCase {
	return &ReferenceUseCase{supplierRepo: supplierRepo, reasonRepo: reasonRepo}
}

func (uc *ReferenceUseCase) CreateSupplier(in dto.SupplierRequest) (*entity.Supplier, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	s := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Active != nil {
		s.Active = *in.Active
	}
	if err := uc.supplierRepo.Create(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *ReferenceUseCase) UpdateSupplier(id string, in dto.SupplierRequest) (*entity.Supplier, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	s.Name = name
	if in.Active != nil {
		s.Active = *in.Active
	}
	s.UpdatedAt = time.Now()
	if err := uc.supplierRepo.Update(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *ReferenceUseCase) DeleteSupplier(id string) error {
	return uc.supplierRepo.Delete(id)
}

func (uc *ReferenceUseCase) ListSuppliers() ([]*entity.Supplier, error) {
	return uc.supplierRepo.List()
}

func (uc *ReferenceUseCase) CreateReason(in dto.ReasonRequest) (*entity.Reason, error) {
	code := strings.TrimSpace(in.Code)
	desc := strings.TrimSpace(in.Description)
	if code == "" || desc == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	r := &entity.Reason{
		ID:          uuid.New().String(),
		Code:        code,
		Description: desc,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Active != nil {
		r.Active = *in.Active
	}
	if err := uc.reasonRepo.Create(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (uc *ReferenceUseCase) UpdateReason(id string, in dto.ReasonRequest) (*entity.Reason, error) {
	code := strings.TrimSpace(in.Code)
	desc := strings.TrimSpace(in.Description)
	if code == "" || desc == "" {
		return nil, domain.ErrInvalidInput
	}
	r, err := uc.reasonRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	r.Code = code
	r.Description = desc
	if in.Active != nil {
		r.Active = *in.Active
	}
	r.UpdatedAt = time.Now()
	if err := uc.reasonRepo.Update(r); err != nil {
		return nil, err
	}
	return r, nil
}

func (uc *ReferenceUseCase) DeleteReason(id string) error {
	return uc.reasonRepo.Delete(id)
}

func (uc *ReferenceUseCase) ListReasons() ([]*entity.Reason, error) {
	return uc.reasonRepo.List()
}
