package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailyMovement volumen de movimientos de un día (para la serie del dashboard).
type DailyMovement struct {
	Date time.Time
	In   decimal.Decimal
	Out  decimal.Decimal
}

// TopMedication ranking por cantidad dispensada.
type TopMedication struct {
	MedicationID string
	Name         string
	Quantity     decimal.Decimal
}

// CategoryShare stock total agrupado por categoría.
type CategoryShare struct {
	Category string
	Quantity decimal.Decimal
}

// DashboardCounts contadores de la fila superior del dashboard.
type DashboardCounts struct {
	TotalMedications int64
	ActiveBatches    int64
	LowStockBatches  int64
	ExpiringSoon     int64
}

// AnalyticsRepository consultas read-only de agregación para el dashboard.
// Todo se recalcula al leer; los volúmenes de una farmacia lo permiten.
type AnalyticsRepository interface {
	GetCounts(ctx context.Context, now time.Time) (*DashboardCounts, error)
	GetMovementSeries(ctx context.Context, from, to time.Time) ([]DailyMovement, error)
	GetTopMedications(ctx context.Context, limit int) ([]TopMedication, error)
	GetCategoryDistribution(ctx context.Context) ([]CategoryShare, error)
}
