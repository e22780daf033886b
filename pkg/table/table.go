// Package table implementa la vista tabular genérica: búsqueda, paginación y
// construcción del modelo de exportación sobre cualquier colección de filas.
// No conoce el dominio; los handlers le entregan filas y descriptores de columna.
package table

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultPageSize tamaño de página por defecto de los listados.
const DefaultPageSize = 10

// Column descriptor de columna: etiqueta de cabecera y accessor del valor en texto.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Options búsqueda y paginación de un listado.
type Options struct {
	Search   string
	Page     int // 1-based; fuera de rango se ajusta, nunca falla
	PageSize int // 0 -> DefaultPageSize
}

// Page resultado paginado.
type Page[T any] struct {
	Rows      []T
	Page      int
	PageCount int
	Total     int // filas tras el filtro, antes de paginar
}

// Export modelo que consumen los sinks de exportación (XLSX y PDF).
// Rows es el conjunto FILTRADO completo, no la página actual.
type Export struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// fold normaliza para búsqueda: minúsculas y sin diacríticos, de modo que
// "dispensação" matchee con "dispensacao".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

// Filter devuelve las filas donde alguna columna contiene el término de búsqueda
// (substring, insensible a mayúsculas y acentos). Término vacío devuelve todo.
func Filter[T any](rows []T, columns []Column[T], search string) []T {
	if search == "" {
		return rows
	}
	term := fold(search)
	filtered := make([]T, 0, len(rows))
	for _, row := range rows {
		for _, col := range columns {
			if strings.Contains(fold(col.Value(row)), term) {
				filtered = append(filtered, row)
				break
			}
		}
	}
	return filtered
}

// Paginate corta una página del conjunto. Páginas fuera de rango se ajustan al
// límite más cercano; nunca devuelve error.
func Paginate[T any](rows []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	total := len(rows)
	pageCount := (total + pageSize - 1) / pageSize
	if pageCount == 0 {
		pageCount = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return Page[T]{
		Rows:      rows[start:end],
		Page:      page,
		PageCount: pageCount,
		Total:     total,
	}
}

// Apply filtra y pagina en un paso.
func Apply[T any](rows []T, columns []Column[T], opts Options) Page[T] {
	return Paginate(Filter(rows, columns, opts.Search), opts.Page, opts.PageSize)
}

// BuildExport construye el modelo de exportación con el conjunto filtrado
// completo (el contrato de los sinks es exportar todo lo filtrado, no la página).
func BuildExport[T any](title string, rows []T, columns []Column[T], search string) Export {
	filtered := Filter(rows, columns, search)
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	out := make([][]string, len(filtered))
	for i, row := range filtered {
		cells := make([]string, len(columns))
		for j, col := range columns {
			cells[j] = col.Value(row)
		}
		out[i] = cells
	}
	return Export{Title: title, Headers: headers, Rows: out}
}
