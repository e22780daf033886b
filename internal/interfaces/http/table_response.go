package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Farmacia-api/pkg/table"
)

// ExcelExporter sink XLSX de un modelo de exportación.
type ExcelExporter interface {
	Export(export table.Export) ([]byte, error)
}

// PDFExporter sink PDF de un modelo de exportación.
type PDFExporter interface {
	Generate(export table.Export) ([]byte, error)
}

// Exporters sinks de exportación compartidos por los handlers tabulares.
type Exporters struct {
	Excel ExcelExporter
	PDF   PDFExporter
}

// respondTable resuelve un listado tabular según el formato pedido:
// json devuelve la página filtrada, xlsx y pdf exportan el conjunto
// filtrado completo como descarga.
func respondTable[T any](c *fiber.Ctx, ex Exporters, req dto.TableRequest, title, filename string, rows []T, cols []table.Column[T]) error {
	req.Normalize()
	switch req.Format {
	case "json":
		page := table.Apply(rows, cols, table.Options{
			Search:   req.Search,
			Page:     req.Page,
			PageSize: req.PageSize,
		})
		return c.JSON(dto.PageResponse[T]{
			Items:     page.Rows,
			Page:      page.Page,
			PageCount: page.PageCount,
			Total:     page.Total,
		})
	case "xlsx":
		export := table.BuildExport(title, rows, cols, req.Search)
		data, err := ex.Excel.Export(export)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
		}
		metrics.ExportsTotal.WithLabelValues("xlsx").Inc()
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, attachment(filename, "xlsx"))
		return c.Send(data)
	case "pdf":
		export := table.BuildExport(title, rows, cols, req.Search)
		data, err := ex.PDF.Generate(export)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
		}
		metrics.ExportsTotal.WithLabelValues("pdf").Inc()
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, attachment(filename, "pdf"))
		return c.Send(data)
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato no soportado: " + req.Format})
}

func attachment(filename, ext string) string {
	return fmt.Sprintf("attachment; filename=%s_%s.%s", filename, time.Now().Format("2006-01-02"), ext)
}
