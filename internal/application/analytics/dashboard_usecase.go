// Package analytics arma el resumen del panel de control a partir de las
// consultas agregadas del repositorio.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

const (
	seriesDays     = 7
	topLimit       = 5
	recentActivity = 10
)

// DashboardUseCase agrega contadores, serie semanal de movimientos, Top-5
// de dispensación, distribución por categoría y actividad reciente.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	movementRepo  repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, movementRepo repository.MovementRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, movementRepo: movementRepo}
}

// GetSummary ejecuta las consultas del panel en paralelo (son independientes)
// y arma la respuesta.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -seriesDays+1)

	type countsResult struct {
		counts *repository.DashboardCounts
		err    error
	}
	type seriesResult struct {
		rows []repository.DailyMovement
		err  error
	}
	type topResult struct {
		rows []repository.TopMedication
		err  error
	}
	type catResult struct {
		rows []repository.CategoryShare
		err  error
	}
	type recentResult struct {
		rows []*entity.StockMovement
		err  error
	}

	countsCh := make(chan countsResult, 1)
	seriesCh := make(chan seriesResult, 1)
	topCh := make(chan topResult, 1)
	catCh := make(chan catResult, 1)
	recentCh := make(chan recentResult, 1)

	go func() {
		counts, err := uc.analyticsRepo.GetCounts(ctx, now)
		countsCh <- countsResult{counts, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetMovementSeries(ctx, from, now)
		seriesCh <- seriesResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetTopMedications(ctx, topLimit)
		topCh <- topResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetCategoryDistribution(ctx)
		catCh <- catResult{rows, err}
	}()
	go func() {
		rows, err := uc.movementRepo.List(recentActivity, 0)
		recentCh <- recentResult{rows, err}
	}()

	countsRes := <-countsCh
	seriesRes := <-seriesCh
	topRes := <-topCh
	catRes := <-catCh
	recentRes := <-recentCh

	if countsRes.err != nil {
		return nil, fmt.Errorf("dashboard: contadores: %w", countsRes.err)
	}
	if seriesRes.err != nil {
		return nil, fmt.Errorf("dashboard: serie de movimientos: %w", seriesRes.err)
	}
	if topRes.err != nil {
		return nil, fmt.Errorf("dashboard: top medicamentos: %w", topRes.err)
	}
	if catRes.err != nil {
		return nil, fmt.Errorf("dashboard: categorías: %w", catRes.err)
	}
	if recentRes.err != nil {
		return nil, fmt.Errorf("dashboard: actividad reciente: %w", recentRes.err)
	}

	summary := &dto.DashboardSummaryDTO{
		TotalMedications: countsRes.counts.TotalMedications,
		ActiveBatches:    countsRes.counts.ActiveBatches,
		LowStockBatches:  countsRes.counts.LowStockBatches,
		ExpiringSoon:     countsRes.counts.ExpiringSoon,
		MovementSeries:   buildSeries(from, seriesRes.rows),
		TopMedications:   make([]dto.TopMedicationDTO, 0, len(topRes.rows)),
		Categories:       make([]dto.CategoryShareDTO, 0, len(catRes.rows)),
		RecentActivity:   make([]dto.MovementResponse, 0, len(recentRes.rows)),
	}
	for _, row := range topRes.rows {
		summary.TopMedications = append(summary.TopMedications, dto.TopMedicationDTO{
			MedicationID: row.MedicationID,
			Name:         row.Name,
			Quantity:     row.Quantity,
		})
	}
	for _, row := range catRes.rows {
		summary.Categories = append(summary.Categories, dto.CategoryShareDTO{
			Category: row.Category,
			Quantity: row.Quantity,
		})
	}
	for _, mov := range recentRes.rows {
		summary.RecentActivity = append(summary.RecentActivity, dto.ToMovementResponse(mov))
	}
	return summary, nil
}

// buildSeries rellena los días sin movimientos con ceros para que el panel
// reciba siempre los siete puntos.
func buildSeries(from time.Time, rows []repository.DailyMovement) []dto.DailyMovementDTO {
	byDay := make(map[string]repository.DailyMovement, len(rows))
	for _, row := range rows {
		byDay[row.Date.Format("2006-01-02")] = row
	}
	series := make([]dto.DailyMovementDTO, 0, seriesDays)
	for i := 0; i < seriesDays; i++ {
		day := from.AddDate(0, 0, i).Format("2006-01-02")
		point := dto.DailyMovementDTO{Date: day}
		if row, ok := byDay[day]; ok {
			point.In = row.In
			point.Out = row.Out
		}
		series = append(series, point)
	}
	return series
}
