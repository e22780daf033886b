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

// InventoryHandler maneja el diario de movimientos de stock (protegido).
type InventoryHandler struct {
	registerUC   *inventory.RegisterMovementUseCase
	queryUC      *inventory.MovementQueryUseCase
	batchUC      *inventory.BatchUseCase
	medicationUC *usecase.MedicationUseCase
	exporters    Exporters
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	registerUC *inventory.RegisterMovementUseCase,
	queryUC *inventory.MovementQueryUseCase,
	batchUC *inventory.BatchUseCase,
	medicationUC *usecase.MedicationUseCase,
	exporters Exporters,
) *InventoryHandler {
	return &InventoryHandler{
		registerUC:   registerUC,
		queryUC:      queryUC,
		batchUC:      batchUC,
		medicationUC: medicationUC,
		exporters:    exporters,
	}
}

var movementColumns = []table.Column[dto.MovementResponse]{
	{Header: "Fecha", Value: func(m dto.MovementResponse) string { return m.Date.Format("2006-01-02 15:04") }},
	{Header: "Tipo", Value: func(m dto.MovementResponse) string { return m.Type }},
	{Header: "Medicamento", Value: func(m dto.MovementResponse) string { return m.MedicationName }},
	{Header: "Lote", Value: func(m dto.MovementResponse) string { return m.BatchNumber }},
	{Header: "Cantidad", Value: func(m dto.MovementResponse) string { return m.Quantity.String() }},
	{Header: "Efecto", Value: func(m dto.MovementResponse) string { return m.Delta.String() }},
	{Header: "Notas", Value: func(m dto.MovementResponse) string { return m.Notes }},
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  Único camino por el que cambia el stock de un lote. El diario
//
//	y el stock se actualizan en la misma transacción.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "type (in|out|adjust), medication_id, batch_id, quantity, reason_id y notes opcionales"
// @Success      201  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.registerUC.RegisterMovement(c.Context(), inventory.MovementInputDTO{
		UserID:       GetUserID(c),
		Type:         in.Type,
		MedicationID: in.MedicationID,
		BatchID:      in.BatchID,
		ReasonID:     in.ReasonID,
		Quantity:     in.Quantity,
		Date:         in.Date,
		Notes:        in.Notes,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	metrics.MovementsTotal.WithLabelValues(mov.Type).Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.ToMovementResponse(mov))
}

// ListMovements godoc
// @Summary      Listar movimientos
// @Description  Diario en orden cronológico inverso, con búsqueda y exportación.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        search     query  string  false  "término de búsqueda"
// @Param        page       query  int     false  "página 1-based"
// @Param        page_size  query  int     false  "tamaño de página"
// @Param        format     query  string  false  "json, xlsx o pdf"
// @Success      200  {object}  dto.PageResponse[dto.MovementResponse]
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var req dto.TableRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	movements, err := h.queryUC.List(1000, 0)
	if err != nil {
		return respondDomainError(c, err)
	}
	rows, err := h.toResponses(movements)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondTable(c, h.exporters, req, "Movimientos de stock", "movimientos", rows, movementColumns)
}

// BatchHistory godoc
// @Summary      Historial de un lote
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {array}   dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batches/{id}/movements [get]
func (h *InventoryHandler) BatchHistory(c *fiber.Ctx) error {
	// Valida que el lote exista antes de listar su historial.
	if _, err := h.batchUC.Get(c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	movements, err := h.queryUC.History(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	rows, err := h.toResponses(movements)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(rows)
}

// MedicationHistory godoc
// @Summary      Movimientos de un medicamento
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID del medicamento"
// @Param        from  query  string  false  "fecha inicial (RFC 3339)"
// @Param        to    query  string  false  "fecha final (RFC 3339)"
// @Success      200  {array}   dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/medications/{id}/movements [get]
func (h *InventoryHandler) MedicationHistory(c *fiber.Ctx) error {
	if _, err := h.medicationUC.Get(c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	from, err := parseDateQuery(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido"})
	}
	to, err := parseDateQuery(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido"})
	}
	movements, err := h.queryUC.ByMedication(c.Params("id"), from, to)
	if err != nil {
		return respondDomainError(c, err)
	}
	rows, err := h.toResponses(movements)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(rows)
}

func parseDateQuery(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		// También se acepta la forma corta YYYY-MM-DD.
		t, err = time.Parse("2006-01-02", v)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}

// toResponses mapea movimientos resolviendo nombre de medicamento y código de lote.
func (h *InventoryHandler) toResponses(movements []*entity.StockMovement) ([]dto.MovementResponse, error) {
	meds, err := h.medicationUC.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(meds))
	for _, m := range meds {
		names[m.ID] = m.Name
	}
	batches, err := h.batchUC.List(true)
	if err != nil {
		return nil, err
	}
	numbers := make(map[string]string, len(batches))
	for _, b := range batches {
		numbers[b.ID] = b.BatchNumber
	}
	rows := make([]dto.MovementResponse, 0, len(movements))
	for _, mov := range movements {
		resp := dto.ToMovementResponse(mov)
		resp.MedicationName = names[mov.MedicationID]
		resp.BatchNumber = numbers[mov.BatchID]
		rows = append(rows, resp)
	}
	return rows, nil
}
