package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Farmacia-api/internal/domain/stock"
)

var now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestExpiryLevel(t *testing.T) {
	cases := []struct {
		name   string
		expiry time.Time
		want   string
	}{
		{"ya vencido", now.AddDate(0, 0, -1), stock.LevelCritical},
		{"vence en dos semanas", now.AddDate(0, 0, 14), stock.LevelCritical},
		{"vence justo en un mes", now.Add(30 * 24 * time.Hour), stock.LevelCritical},
		{"vence en dos meses", now.AddDate(0, 0, 60), stock.LevelWarning},
		{"vence en tres meses", now.Add(90 * 24 * time.Hour), stock.LevelWarning},
		{"vence en un año", now.AddDate(1, 0, 0), stock.LevelNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stock.ExpiryLevel(tc.expiry, now))
		})
	}
}

func TestStockLevel(t *testing.T) {
	qty := decimal.NewFromInt(100)
	cases := []struct {
		name    string
		current int64
		want    string
	}{
		{"agotado", 0, stock.LevelCritical},
		{"bajo el 20 por ciento", 19, stock.LevelCritical},
		{"justo en el 20 por ciento", 20, stock.LevelWarning},
		{"bajo el 50 por ciento", 49, stock.LevelWarning},
		{"justo en el 50 por ciento", 50, stock.LevelNormal},
		{"lleno", 100, stock.LevelNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stock.StockLevel(decimal.NewFromInt(tc.current), qty))
		})
	}
}

func TestStockLevel_CantidadCeroEsNormal(t *testing.T) {
	assert.Equal(t, stock.LevelNormal, stock.StockLevel(decimal.Zero, decimal.Zero))
}

func TestBatchNumber(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "TES001-2024-01-01", stock.BatchNumber("TestDrug", 1, date))
	assert.Equal(t, "PAR042-2024-01-01", stock.BatchNumber("Paracetamol 500mg", 42, date))
}

func TestBatchNumber_NombreCorto(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	// Nombres de menos de 3 caracteres se usan completos
	assert.Equal(t, "AB007-2024-03-10", stock.BatchNumber("ab", 7, date))
}

func TestBatchNumber_EsDeterministico(t *testing.T) {
	date := time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC)
	a := stock.BatchNumber("Omeprazole 20mg", 3, date)
	b := stock.BatchNumber("Omeprazole 20mg", 3, date)
	assert.Equal(t, a, b)
}
