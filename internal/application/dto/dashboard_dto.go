package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Agrega los contadores del panel, la serie de movimientos de la última
// semana, el Top-5 de medicamentos dispensados y la distribución de stock
// por categoría.
type DashboardSummaryDTO struct {
	TotalMedications int64 `json:"total_medications"`
	ActiveBatches    int64 `json:"active_batches"`
	LowStockBatches  int64 `json:"low_stock_batches"`
	ExpiringSoon     int64 `json:"expiring_soon"`

	MovementSeries []DailyMovementDTO `json:"movement_series"`
	TopMedications []TopMedicationDTO `json:"top_medications"`
	Categories     []CategoryShareDTO `json:"categories"`

	RecentActivity []MovementResponse `json:"recent_activity"`
}

// DailyMovementDTO punto de la serie diaria de entradas y salidas.
type DailyMovementDTO struct {
	Date string          `json:"date"` // YYYY-MM-DD
	In   decimal.Decimal `json:"in"`
	Out  decimal.Decimal `json:"out"`
}

// TopMedicationDTO medicamento más dispensado en el período.
type TopMedicationDTO struct {
	MedicationID string          `json:"medication_id"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// CategoryShareDTO stock disponible agregado por categoría.
type CategoryShareDTO struct {
	Category string          `json:"category"`
	Quantity decimal.Decimal `json:"quantity"`
}
