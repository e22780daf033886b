// Package excel implementa el sink de exportación a hoja de cálculo.
// Recibe el modelo genérico de pkg/table y produce un workbook XLSX con una
// única hoja "Data" cuyas columnas son las etiquetas de cabecera.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Farmacia-api/pkg/table"
)

const sheetName = "Data"

// TableExporter genera workbooks XLSX desde un table.Export.
type TableExporter struct{}

// NewTableExporter construye el exportador.
func NewTableExporter() *TableExporter { return &TableExporter{} }

// Export produce los bytes del archivo .xlsx con el conjunto filtrado completo.
func (e *TableExporter) Export(export table.Export) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	header := make([]interface{}, len(export.Headers))
	for i, h := range export.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: cabecera: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
	})
	if err == nil {
		lastCell, _ := excelize.CoordinatesToCellName(len(export.Headers), 1)
		_ = f.SetCellStyle(sheetName, "A1", lastCell, headerStyle)
	}

	for i, row := range export.Rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("excel: celda fila %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: serializar workbook: %w", err)
	}
	return buf.Bytes(), nil
}
