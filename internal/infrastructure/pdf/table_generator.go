// Package pdf implementa el sink de exportación a documento tabular paginado.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  Título del listado                                          │
//	│  Generado el: <fecha y hora>                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CABECERA estilizada con las etiquetas de columna            │
//	│  filas del conjunto filtrado (no solo la página actual)      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Farmacia-api/pkg/table"
)

// maxColumns límite del grid de Maroto (12 celdas por fila).
const maxColumns = 12

var (
	colorHeader  = &props.Color{Red: 51, Green: 122, Blue: 183}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorZebra   = &props.Color{Red: 245, Green: 245, Blue: 245}
)

// TableGenerator genera documentos PDF tabulares desde un table.Export.
type TableGenerator struct{}

// NewTableGenerator construye el generador.
func NewTableGenerator() *TableGenerator { return &TableGenerator{} }

// Generate produce los bytes del PDF: título, marca de tiempo de generación,
// cabecera estilizada y las filas filtradas con zebra striping.
func (g *TableGenerator) Generate(export table.Export) ([]byte, error) {
	n := len(export.Headers)
	if n == 0 || n > maxColumns {
		return nil, fmt.Errorf("pdf: número de columnas fuera de rango: %d", n)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle(export.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(9).Add(
		text.NewCol(12, export.Title, props.Text{Style: fontstyle.Bold, Size: 14}),
	))
	m.AddRows(row.New(6).Add(
		text.NewCol(12, "Generado el: "+time.Now().Format("02/01/2006 15:04"), props.Text{
			Size: 8, Color: colorGray,
		}),
	))
	m.AddRows(line.NewRow(2, props.Line{Color: colorHeader, Thickness: 0.4}))

	m.AddRows(headerRow(export.Headers))
	for i, cells := range export.Rows {
		m.AddRows(dataRow(cells, len(export.Headers), i%2 == 1))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow cabecera en negrita con fondo azul, una celda por etiqueta.
func headerRow(headers []string) core.Row {
	widths := columnWidths(len(headers))
	r := row.New(7).WithStyle(&props.Cell{BackgroundColor: colorHeader})
	for i, h := range headers {
		r.Add(col.New(widths[i]).Add(
			text.New(h, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorWhite, Top: 1, Left: 1}),
		))
	}
	return r
}

func dataRow(cells []string, numCols int, zebra bool) core.Row {
	widths := columnWidths(numCols)
	r := row.New(6)
	if zebra {
		r.WithStyle(&props.Cell{BackgroundColor: colorZebra})
	}
	for i := 0; i < numCols; i++ {
		value := ""
		if i < len(cells) {
			value = cells[i]
		}
		r.Add(col.New(widths[i]).Add(
			text.New(value, props.Text{Size: 8, Top: 1, Left: 1}),
		))
	}
	return r
}

// columnWidths reparte las 12 celdas del grid entre n columnas; el resto
// se asigna a las primeras de izquierda a derecha.
func columnWidths(n int) []int {
	widths := make([]int, n)
	base := maxColumns / n
	extra := maxColumns % n
	for i := range widths {
		widths[i] = base
		if i < extra {
			widths[i]++
		}
	}
	return widths
}
