package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/pkg/table"
)

// MedicationHandler maneja las peticiones HTTP del catálogo de medicamentos.
type MedicationHandler struct {
	uc        *usecase.MedicationUseCase
	exporters Exporters
}

// NewMedicationHandler construye el handler.
func NewMedicationHandler(uc *usecase.MedicationUseCase, exporters Exporters) *MedicationHandler {
	return &MedicationHandler{uc: uc, exporters: exporters}
}

var medicationColumns = []table.Column[dto.MedicationResponse]{
	{Header: "Código", Value: func(m dto.MedicationResponse) string { return m.Code }},
	{Header: "Nombre", Value: func(m dto.MedicationResponse) string { return m.Name }},
	{Header: "Categoría", Value: func(m dto.MedicationResponse) string { return m.Category }},
	{Header: "Proveedor", Value: func(m dto.MedicationResponse) string { return m.Supplier }},
	{Header: "Nivel de reorden", Value: func(m dto.MedicationResponse) string { return strconv.FormatInt(m.ReorderLevel, 10) }},
}

// List godoc
// @Summary      Listar medicamentos
// @Description  Listado tabular con búsqueda, paginación y exportación (format=json|xlsx|pdf).
// @Tags         medications
// @Security     Bearer
// @Produce      json
// @Param        search     query  string  false  "término de búsqueda (insensible a acentos)"
// @Param        page       query  int     false  "página 1-based"
// @Param        page_size  query  int     false  "tamaño de página (default 10)"
// @Param        format     query  string  false  "json (default), xlsx o pdf"
// @Success      200  {object}  dto.PageResponse[dto.MedicationResponse]
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/medications [get]
func (h *MedicationHandler) List(c *fiber.Ctx) error {
	var req dto.TableRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	meds, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	rows := make([]dto.MedicationResponse, 0, len(meds))
	for _, m := range meds {
		rows = append(rows, dto.ToMedicationResponse(m))
	}
	return respondTable(c, h.exporters, req, "Medicamentos", "medicamentos", rows, medicationColumns)
}

// GetByID godoc
// @Summary      Obtener medicamento
// @Tags         medications
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del medicamento"
// @Success      200  {object}  dto.MedicationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medications/{id} [get]
func (h *MedicationHandler) GetByID(c *fiber.Ctx) error {
	med, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToMedicationResponse(med))
}

// Create godoc
// @Summary      Crear medicamento
// @Tags         medications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMedicationRequest  true  "datos del medicamento"
// @Success      201  {object}  dto.MedicationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/medications [post]
func (h *MedicationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMedicationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	med, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToMedicationResponse(med))
}

// Update godoc
// @Summary      Editar medicamento
// @Tags         medications
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del medicamento"
// @Param        body  body  dto.UpdateMedicationRequest  true  "datos editables (el código no se cambia)"
// @Success      200  {object}  dto.MedicationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medications/{id} [put]
func (h *MedicationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMedicationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	med, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToMedicationResponse(med))
}

// Delete godoc
// @Summary      Eliminar medicamento
// @Description  Se rechaza con 409 si el medicamento tiene lotes activos.
// @Tags         medications
// @Security     Bearer
// @Param        id  path  string  true  "ID del medicamento"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/medications/{id} [delete]
func (h *MedicationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
