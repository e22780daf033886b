package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
)

// ReferenceHandler catálogos auxiliares: proveedores y motivos de movimiento.
type ReferenceHandler struct {
	uc *usecase.ReferenceUseCase
}

// NewReferenceHandler construye el handler.
func NewReferenceHandler(uc *usecase.ReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{uc: uc}
}

func (h *ReferenceHandler) ListSuppliers(c *fiber.Ctx) error {
	suppliers, err := h.uc.ListSuppliers()
	if err != nil {
		return respondDomainError(c, err)
	}
	rows := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		rows = append(rows, dto.ToSupplierResponse(s))
	}
	return c.JSON(rows)
}

func (h *ReferenceHandler) CreateSupplier(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.CreateSupplier(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToSupplierResponse(s))
}

func (h *ReferenceHandler) UpdateSupplier(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.UpdateSupplier(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToSupplierResponse(s))
}

func (h *ReferenceHandler) DeleteSupplier(c *fiber.Ctx) error {
	if err := h.uc.DeleteSupplier(c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ReferenceHandler) ListReasons(c *fiber.Ctx) error {
	reasons, err := h.uc.ListReasons()
	if err != nil {
		return respondDomainError(c, err)
	}
	rows := make([]dto.ReasonResponse, 0, len(reasons))
	for _, r := range reasons {
		rows = append(rows, dto.ToReasonResponse(r))
	}
	return c.JSON(rows)
}

func (h *ReferenceHandler) CreateReason(c *fiber.Ctx) error {
	var in dto.ReasonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	r, err := h.uc.CreateReason(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToReasonResponse(r))
}

func (h *ReferenceHandler) UpdateReason(c *fiber.Ctx) error {
	var in dto.ReasonRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	r, err := h.uc.UpdateReason(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToReasonResponse(r))
}

func (h *ReferenceHandler) DeleteReason(c *fiber.Ctx) error {
	if err := h.uc.DeleteReason(c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
