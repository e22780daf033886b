package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/inventory"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Farmacia-api/pkg/table"
)

// BatchHandler maneja las peticiones HTTP de lotes.
type BatchHandler struct {
	uc           *inventory.BatchUseCase
	medicationUC *usecase.MedicationUseCase
	exporters    Exporters
}

// NewBatchHandler construye el handler.
func NewBatchHandler(uc *inventory.BatchUseCase, medicationUC *usecase.MedicationUseCase, exporters Exporters) *BatchHandler {
	return &BatchHandler{uc: uc, medicationUC: medicationUC, exporters: exporters}
}

var batchColumns = []table.Column[dto.BatchResponse]{
	{Header: "Lote", Value: func(b dto.BatchResponse) string { return b.BatchNumber }},
	{Header: "Medicamento", Value: func(b dto.BatchResponse) string { return b.MedicationName }},
	{Header: "Cantidad", Value: func(b dto.BatchResponse) string { return b.Quantity.String() }},
	{Header: "Stock actual", Value: func(b dto.BatchResponse) string { return b.CurrentStock.String() }},
	{Header: "Recibido", Value: func(b dto.BatchResponse) string { return b.ReceivedDate.Format("2006-01-02") }},
	{Header: "Vence", Value: func(b dto.BatchResponse) string { return b.ExpiryDate.Format("2006-01-02") }},
	{Header: "Proveedor", Value: func(b dto.BatchResponse) string { return b.Supplier }},
}

// List godoc
// @Summary      Listar lotes
// @Description  Listado tabular con niveles de vencimiento y stock derivados.
//
//	Por defecto solo lotes activos; include_inactive=true incluye los dados de baja.
//
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        search            query  string  false  "término de búsqueda"
// @Param        page              query  int     false  "página 1-based"
// @Param        page_size         query  int     false  "tamaño de página"
// @Param        format            query  string  false  "json, xlsx o pdf"
// @Param        include_inactive  query  bool    false  "incluir lotes inactivos"
// @Success      200  {object}  dto.PageResponse[dto.BatchResponse]
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/batches [get]
func (h *BatchHandler) List(c *fiber.Ctx) error {
	var req dto.TableRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	batches, err := h.uc.List(c.QueryBool("include_inactive"))
	if err != nil {
		return respondDomainError(c, err)
	}
	rows, err := h.toResponses(batches)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondTable(c, h.exporters, req, "Lotes de inventario", "lotes", rows, batchColumns)
}

// GetByID godoc
// @Summary      Obtener lote
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {object}  dto.BatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [get]
func (h *BatchHandler) GetByID(c *fiber.Ctx) error {
	batch, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	resp := dto.ToBatchResponse(batch, time.Now())
	if med, err := h.medicationUC.Get(batch.MedicationID); err == nil {
		resp.MedicationName = med.Name
	}
	return c.JSON(resp)
}

// ListByMedication godoc
// @Summary      Lotes activos de un medicamento
// @Description  Ordenados por fecha de vencimiento ascendente (FEFO).
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del medicamento"
// @Success      200  {array}   dto.BatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medications/{id}/batches [get]
func (h *BatchHandler) ListByMedication(c *fiber.Ctx) error {
	batches, err := h.uc.ListByMedication(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	rows, err := h.toResponses(batches)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(rows)
}

// Create godoc
// @Summary      Registrar lote
// @Description  El código de lote lo genera el servidor con la secuencia del
//
//	medicamento; el stock inicial es la cantidad recibida.
//
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBatchRequest  true  "datos del lote"
// @Success      201  {object}  dto.BatchResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batches [post]
func (h *BatchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	batch, err := h.uc.Create(inventory.CreateBatchInput{
		MedicationID: in.MedicationID,
		Quantity:     in.Quantity,
		ReceivedDate: in.ReceivedDate,
		ExpiryDate:   in.ExpiryDate,
		Supplier:     in.Supplier,
		ReceivedBy:   in.ReceivedBy,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	metrics.BatchesCreated.Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.ToBatchResponse(batch, time.Now()))
}

// Update godoc
// @Summary      Editar lote
// @Description  Si el body trae current_stock, la diferencia se registra como
//
//	movimiento de ajuste en el diario; el stock nunca se edita directo.
//
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.UpdateBatchRequest  true  "datos editables"
// @Success      200  {object}  dto.BatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [put]
func (h *BatchHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	batch, err := h.uc.Update(c.Context(), c.Params("id"), GetUserID(c), inventory.UpdateBatchInput{
		ReceivedDate: in.ReceivedDate,
		ExpiryDate:   in.ExpiryDate,
		Supplier:     in.Supplier,
		ReceivedBy:   in.ReceivedBy,
		CurrentStock: in.CurrentStock,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToBatchResponse(batch, time.Now()))
}

// Deactivate godoc
// @Summary      Dar de baja un lote
// @Description  Baja lógica: el lote queda inactivo y su historial se conserva.
// @Tags         batches
// @Security     Bearer
// @Param        id  path  string  true  "ID del lote"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [delete]
func (h *BatchHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// toResponses mapea lotes a DTOs resolviendo el nombre del medicamento.
func (h *BatchHandler) toResponses(batches []*entity.Batch) ([]dto.BatchResponse, error) {
	meds, err := h.medicationUC.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(meds))
	for _, m := range meds {
		names[m.ID] = m.Name
	}
	now := time.Now()
	rows := make([]dto.BatchResponse, 0, len(batches))
	for _, b := range batches {
		resp := dto.ToBatchResponse(b, now)
		resp.MedicationName = names[b.MedicationID]
		rows = append(rows, resp)
	}
	return rows, nil
}
