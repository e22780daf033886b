package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmacia-api/internal/application/analytics"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

type fakeAnalyticsRepo struct {
	counts *repository.DashboardCounts
	series []repository.DailyMovement
	top    []repository.TopMedication
	cats   []repository.CategoryShare
}

func (r *fakeAnalyticsRepo) GetCounts(ctx context.Context, now time.Time) (*repository.DashboardCounts, error) {
	return r.counts, nil
}

func (r *fakeAnalyticsRepo) GetMovementSeries(ctx context.Context, from, to time.Time) ([]repository.DailyMovement, error) {
	return r.series, nil
}

func (r *fakeAnalyticsRepo) GetTopMedications(ctx context.Context, limit int) ([]repository.TopMedication, error) {
	return r.top, nil
}

func (r *fakeAnalyticsRepo) GetCategoryDistribution(ctx context.Context) ([]repository.CategoryShare, error) {
	return r.cats, nil
}

type fakeMovementList struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementList) Create(m *entity.StockMovement) error            { return nil }
func (r *fakeMovementList) GetByID(id string) (*entity.StockMovement, error) { return nil, nil }
func (r *fakeMovementList) List(limit, offset int) ([]*entity.StockMovement, error) {
	return r.movements, nil
}
func (r *fakeMovementList) ListByBatch(batchID string) ([]*entity.StockMovement, error) {
	return nil, nil
}
func (r *fakeMovementList) ListByMedication(medicationID string, from, to *time.Time) ([]*entity.StockMovement, error) {
	return nil, nil
}

func TestGetSummary_AgregaTodasLasFuentes(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1).Truncate(24 * time.Hour)
	repo := &fakeAnalyticsRepo{
		counts: &repository.DashboardCounts{
			TotalMedications: 12,
			ActiveBatches:    8,
			LowStockBatches:  2,
			ExpiringSoon:     3,
		},
		series: []repository.DailyMovement{
			{Date: yesterday, In: decimal.NewFromInt(50), Out: decimal.NewFromInt(30)},
		},
		top: []repository.TopMedication{
			{MedicationID: "m1", Name: "Paracetamol 500mg", Quantity: decimal.NewFromInt(120)},
		},
		cats: []repository.CategoryShare{
			{Category: "Analgesic", Quantity: decimal.NewFromInt(900)},
		},
	}
	movRepo := &fakeMovementList{movements: []*entity.StockMovement{
		{ID: "mv1", Type: entity.MovementTypeOut, Quantity: decimal.NewFromInt(5), Delta: decimal.NewFromInt(-5)},
	}}

	uc := analytics.NewDashboardUseCase(repo, movRepo)
	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 12, summary.TotalMedications)
	assert.EqualValues(t, 8, summary.ActiveBatches)
	assert.EqualValues(t, 2, summary.LowStockBatches)
	assert.EqualValues(t, 3, summary.ExpiringSoon)

	require.Len(t, summary.TopMedications, 1)
	assert.Equal(t, "Paracetamol 500mg", summary.TopMedications[0].Name)
	require.Len(t, summary.Categories, 1)
	require.Len(t, summary.RecentActivity, 1)
	assert.Equal(t, "mv1", summary.RecentActivity[0].ID)
}

func TestGetSummary_SerieSiempreTraeSieteDias(t *testing.T) {
	repo := &fakeAnalyticsRepo{counts: &repository.DashboardCounts{}}
	uc := analytics.NewDashboardUseCase(repo, &fakeMovementList{})

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	require.Len(t, summary.MovementSeries, 7, "los días sin movimientos se rellenan con ceros")
	for _, point := range summary.MovementSeries {
		assert.True(t, point.In.IsZero())
		assert.True(t, point.Out.IsZero())
		assert.NotEmpty(t, point.Date)
	}
	// Serie en orden cronológico terminando hoy
	last := summary.MovementSeries[6].Date
	assert.Equal(t, time.Now().Format("2006-01-02"), last)
}

func TestGetSummary_LosDiasConDatosSeColocanEnSuPunto(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1)
	repo := &fakeAnalyticsRepo{
		counts: &repository.DashboardCounts{},
		series: []repository.DailyMovement{
			{Date: yesterday, In: decimal.NewFromInt(40), Out: decimal.NewFromInt(10)},
		},
	}
	uc := analytics.NewDashboardUseCase(repo, &fakeMovementList{})

	summary, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	point := summary.MovementSeries[5] // anteayer=4, ayer=5, hoy=6
	assert.Equal(t, yesterday.Format("2006-01-02"), point.Date)
	assert.True(t, point.In.Equal(decimal.NewFromInt(40)))
	assert.True(t, point.Out.Equal(decimal.NewFromInt(10)))
}
