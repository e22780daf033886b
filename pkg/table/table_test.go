package table_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/pkg/table"
)

type fila struct {
	Nombre    string
	Categoria string
}

var columnas = []table.Column[fila]{
	{Header: "Nombre", Value: func(f fila) string { return f.Nombre }},
	{Header: "Categoría", Value: func(f fila) string { return f.Categoria }},
}

// ──────────────────────────────────────────────────────────────────────────────
// Filter
// ──────────────────────────────────────────────────────────────────────────────

func TestFilter_TerminoVacioDevuelveTodo(t *testing.T) {
	rows := []fila{{"Paracetamol 500mg", "Analgesic"}, {"Ibuprofeno 400mg", "Analgesic"}}
	filtered := table.Filter(rows, columnas, "")
	assert.Equal(t, rows, filtered, "búsqueda vacía no debe filtrar nada")
}

func TestFilter_BuscaEnCualquierColumna(t *testing.T) {
	rows := []fila{
		{"Paracetamol 500mg", "Analgesic"},
		{"Amoxicilina 250mg", "Antibiotic"},
		{"Loratadina 10mg", "Antihistamine"},
	}
	// "para" matchea la fila 0 por la columna Nombre
	filtered := table.Filter(rows, columnas, "para")
	require.Len(t, filtered, 1)
	assert.Equal(t, "Paracetamol 500mg", filtered[0].Nombre)

	// por columna Categoría
	filtered = table.Filter(rows, columnas, "antibiotic")
	require.Len(t, filtered, 1)
	assert.Equal(t, "Amoxicilina 250mg", filtered[0].Nombre)
}

func TestFilter_InsensibleAMayusculasYAcentos(t *testing.T) {
	rows := []fila{{"Dipirona", "Analgésico"}}
	assert.Len(t, table.Filter(rows, columnas, "ANALGESICO"), 1,
		"la búsqueda debe ignorar mayúsculas y diacríticos")
	assert.Len(t, table.Filter(rows, columnas, "analgésico"), 1)
}

func TestFilter_SinCoincidenciasDevuelveVacio(t *testing.T) {
	rows := []fila{{"Paracetamol", "Analgesic"}}
	assert.Empty(t, table.Filter(rows, columnas, "zzz"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Paginate
// ──────────────────────────────────────────────────────────────────────────────

func muchasFilas(n int) []fila {
	rows := make([]fila, n)
	for i := range rows {
		rows[i] = fila{Nombre: fmt.Sprintf("Med %02d", i), Categoria: "Cat"}
	}
	return rows
}

func TestPaginate_VeinticincoFilasSonTresPaginas(t *testing.T) {
	page := table.Paginate(muchasFilas(25), 1, 10)
	assert.Equal(t, 3, page.PageCount)
	assert.Equal(t, 25, page.Total)
	assert.Len(t, page.Rows, 10)

	last := table.Paginate(muchasFilas(25), 3, 10)
	assert.Len(t, last.Rows, 5, "la última página lleva el resto")
}

func TestPaginate_PaginaFueraDeRangoSeAjusta(t *testing.T) {
	// Página 4 de 3 se ajusta a la 3, nunca falla
	page := table.Paginate(muchasFilas(25), 4, 10)
	assert.Equal(t, 3, page.Page)
	assert.Len(t, page.Rows, 5)

	page = table.Paginate(muchasFilas(25), 0, 10)
	assert.Equal(t, 1, page.Page)
}

func TestPaginate_ConjuntoVacio(t *testing.T) {
	page := table.Paginate([]fila{}, 1, 10)
	assert.Equal(t, 1, page.PageCount, "sin filas hay una única página vacía")
	assert.Empty(t, page.Rows)
	assert.Zero(t, page.Total)
}

func TestPaginate_PageSizeCeroUsaDefault(t *testing.T) {
	page := table.Paginate(muchasFilas(25), 1, 0)
	assert.Len(t, page.Rows, table.DefaultPageSize)
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildExport
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildExport_ExportaElConjuntoFiltradoCompleto(t *testing.T) {
	rows := muchasFilas(25)
	export := table.BuildExport("Listado", rows, columnas, "")
	assert.Equal(t, "Listado", export.Title)
	assert.Equal(t, []string{"Nombre", "Categoría"}, export.Headers)
	// Todas las filas filtradas, no solo la página actual
	assert.Len(t, export.Rows, 25)
	assert.Equal(t, []string{"Med 00", "Cat"}, export.Rows[0])
}

func TestBuildExport_RespetaLaBusqueda(t *testing.T) {
	rows := []fila{{"Paracetamol", "Analgesic"}, {"Amoxicilina", "Antibiotic"}}
	export := table.BuildExport("Listado", rows, columnas, "amoxi")
	require.Len(t, export.Rows, 1)
	assert.Equal(t, "Amoxicilina", export.Rows[0][0])
}
