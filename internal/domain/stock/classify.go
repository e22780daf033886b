// Package stock contiene la lógica pura del libro de lotes: clasificación de
// riesgo de vencimiento, nivel de stock y el formato del código de lote.
package stock

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Niveles de clasificación (solo presentación, nunca bloquean operaciones).
const (
	LevelNormal   = "normal"
	LevelWarning  = "warning"
	LevelCritical = "critical"
)

// monthApprox es el mes de 30 días usado por la clasificación de vencimiento.
const monthApprox = 30 * 24 * time.Hour

var (
	lowStockCritical = decimal.NewFromFloat(0.2)
	lowStockWarning  = decimal.NewFromFloat(0.5)
)

// ExpiryLevel clasifica el riesgo de vencimiento de un lote:
// <=1 mes critical, <=3 meses warning, resto normal.
func ExpiryLevel(expiry, now time.Time) string {
	months := float64(expiry.Sub(now)) / float64(monthApprox)
	switch {
	case months <= 1:
		return LevelCritical
	case months <= 3:
		return LevelWarning
	default:
		return LevelNormal
	}
}

// StockLevel clasifica el stock restante contra la cantidad recibida:
// < 20% critical, < 50% warning, resto normal.
func StockLevel(current, quantity decimal.Decimal) string {
	if quantity.IsZero() {
		return LevelNormal
	}
	switch {
	case current.LessThan(quantity.Mul(lowStockCritical)):
		return LevelCritical
	case current.LessThan(quantity.Mul(lowStockWarning)):
		return LevelWarning
	default:
		return LevelNormal
	}
}

// BatchNumber genera el código de lote: las primeras 3 letras del nombre del
// medicamento en mayúsculas, el ordinal por medicamento a 3 dígitos y la fecha
// de creación. Determinístico: mismas entradas, mismo código.
// Ejemplo: ("TestDrug", 1, 2024-01-01) -> "TES001-2024-01-01".
// El ordinal viene de un contador monotónico por medicamento (batch_sequences);
// no depende del tamaño actual de la colección, así que borrar lotes no
// reutiliza códigos.
func BatchNumber(medicationName string, ordinal int64, date time.Time) string {
	runes := []rune(medicationName)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	prefix := strings.ToUpper(string(runes))
	return fmt.Sprintf("%s%03d-%s", prefix, ordinal, date.Format("2006-01-02"))
}
