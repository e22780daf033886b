package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
)

// respondDomainError mapea los errores de dominio a códigos HTTP.
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrStockExceedsQty):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "STOCK_EXCEEDS_QTY", Message: err.Error()})
	case errors.Is(err, domain.ErrBatchInactive):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "BATCH_INACTIVE", Message: err.Error()})
	case errors.Is(err, domain.ErrMedicationMismatch):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "MEDICATION_MISMATCH", Message: err.Error()})
	case errors.Is(err, domain.ErrMedicationInUse):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "MEDICATION_IN_USE", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrSelfAction):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SELF_ACTION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
