package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only de agregación para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetCounts calcula los contadores de la fila superior del dashboard.
// "Stock bajo" = lotes activos por debajo del 50% de la cantidad recibida
// (umbral warning); "por vencer" = vence dentro de 90 días.
func (r *AnalyticsRepo) GetCounts(ctx context.Context, now time.Time) (*repository.DashboardCounts, error) {
	query := `
		SELECT
			(SELECT count(*) FROM medications),
			(SELECT count(*) FROM batches WHERE status = 'active'),
			(SELECT count(*) FROM batches WHERE status = 'active' AND current_stock < quantity * 0.5),
			(SELECT count(*) FROM batches WHERE status = 'active' AND expiry_date <= $1)`
	var c repository.DashboardCounts
	err := r.q.QueryRow(ctx, query, now.Add(90*24*time.Hour)).Scan(
		&c.TotalMedications, &c.ActiveBatches, &c.LowStockBatches, &c.ExpiringSoon,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}
	return &c, nil
}

// GetMovementSeries agrupa el volumen in/out por día dentro del rango.
// Los ajustes no entran en la serie; el gráfico original solo traza entradas y salidas.
func (r *AnalyticsRepo) GetMovementSeries(ctx context.Context, from, to time.Time) ([]repository.DailyMovement, error) {
	query := `
		SELECT date::date AS day,
			COALESCE(sum(quantity) FILTER (WHERE type = 'in'), 0) AS qty_in,
			COALESCE(sum(quantity) FILTER (WHERE type = 'out'), 0) AS qty_out
		FROM stock_movements
		WHERE date >= $1 AND date <= $2 AND type IN ('in', 'out')
		GROUP BY day
		ORDER BY day`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("movement series: %w", err)
	}
	defer rows.Close()
	var series []repository.DailyMovement
	for rows.Next() {
		var d repository.DailyMovement
		if err := rows.Scan(&d.Date, &d.In, &d.Out); err != nil {
			return nil, fmt.Errorf("scan series row: %w", err)
		}
		series = append(series, d)
	}
	return series, rows.Err()
}

// GetTopMedications rankea medicamentos por cantidad dispensada (type = out).
func (r *AnalyticsRepo) GetTopMedications(ctx context.Context, limit int) ([]repository.TopMedication, error) {
	query := `
		SELECT m.id, m.name, sum(sm.quantity) AS dispensed
		FROM stock_movements sm
		JOIN medications m ON m.id = sm.medication_id
		WHERE sm.type = 'out'
		GROUP BY m.id, m.name
		ORDER BY dispensed DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("top medications: %w", err)
	}
	defer rows.Close()
	var top []repository.TopMedication
	for rows.Next() {
		var t repository.TopMedication
		if err := rows.Scan(&t.MedicationID, &t.Name, &t.Quantity); err != nil {
			return nil, fmt.Errorf("scan top medication: %w", err)
		}
		top = append(top, t)
	}
	return top, rows.Err()
}

// GetCategoryDistribution suma el stock actual de lotes activos por categoría.
func (r *AnalyticsRepo) GetCategoryDistribution(ctx context.Context) ([]repository.CategoryShare, error) {
	query := `
		SELECT m.category, COALESCE(sum(b.current_stock), 0) AS total
		FROM batches b
		JOIN medications m ON m.id = b.medication_id
		WHERE b.status = 'active'
		GROUP BY m.category
		ORDER BY total DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("category distribution: %w", err)
	}
	defer rows.Close()
	var dist []repository.CategoryShare
	for rows.Next() {
		var c repository.CategoryShare
		if err := rows.Scan(&c.Category, &c.Quantity); err != nil {
			return nil, fmt.Errorf("scan category share: %w", err)
		}
		dist = append(dist, c)
	}
	return dist, rows.Err()
}
