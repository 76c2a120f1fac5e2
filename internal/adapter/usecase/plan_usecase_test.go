package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mesa-roi/internal/adapter/metrics"
	"mesa-roi/internal/core/domain"
	"mesa-roi/internal/core/planner"
	"mesa-roi/internal/core/port"
	"mesa-roi/internal/core/port/mocks"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, repo port.PlanRepository, predictor port.Predictor) (*PlanUseCase, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	u := NewPlanUseCase(repo, predictor, planner.DefaultOptions(), logger, metrics.NewPlanner(reg))
	u.now = func() time.Time { return fixedNow }
	return u, reg
}

// rows yields three campaigns with ROI 1, 5 and 9 for a spend of 100.
func rows() []domain.PerformanceRow {
	return []domain.PerformanceRow{
		{CampaignID: "A", Impressions: 100, Clicks: 50, Spent: 60},
		{CampaignID: "A", Impressions: 100, Clicks: 50, Spent: 40},
		{CampaignID: "B", Impressions: 1000, Clicks: 500, Spent: 100},
		{CampaignID: "C", Impressions: 1800, Clicks: 900, Spent: 100},
	}
}

func TestPreview(t *testing.T) {
	predictor := mocks.NewMockPredictor(t)
	predictor.EXPECT().Predict(mock.Anything).Return(0.25, nil).Times(4)

	svc, reg := newTestUseCase(t, nil, predictor)
	plan, err := svc.Preview(context.Background(), rows())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, plan.ID)
	assert.Equal(t, fixedNow, plan.CreatedAt)
	assert.Equal(t, "exclude", plan.ZeroSpendPolicy)
	assert.Equal(t, 0.3, plan.ReductionFactor)
	assert.True(t, plan.PoolApplied)
	assert.InDelta(t, 30, plan.Pool, 1e-9)
	assert.InDelta(t, 300, plan.TotalNewBudget, 1e-9)

	require.Len(t, plan.Campaigns, 3)
	assert.Equal(t, "C", plan.Campaigns[0].CampaignID)
	assert.Equal(t, domain.RecommendationIncrease, plan.Campaigns[0].Recommendation)
	assert.InDelta(t, 130, plan.Campaigns[0].NewBudget, 1e-9)
	assert.Equal(t, 0.25, plan.Campaigns[0].PredictedRate)
	assert.Equal(t, "A", plan.Campaigns[2].CampaignID)
	assert.Equal(t, 2, plan.Campaigns[2].Rows)
	assert.InDelta(t, 70, plan.Campaigns[2].NewBudget, 1e-9)
	assert.NotEmpty(t, plan.Campaigns[2].Explanation)

	assert.Equal(t, 1.0, runsTotal(t, reg, "preview", "ok"))
}

// runsTotal reads mesa_roi_plan_runs_total for the given labels.
func runsTotal(t *testing.T, reg *prometheus.Registry, operation, status string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "mesa_roi_plan_runs_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["operation"] == operation && labels["status"] == status {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestPreviewRejectsInvalidRows(t *testing.T) {
	svc, reg := newTestUseCase(t, nil, mocks.NewMockPredictor(t))

	_, err := svc.Preview(context.Background(), []domain.PerformanceRow{{CampaignID: "a", Impressions: 1, Clicks: 5}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 1.0, runsTotal(t, reg, "preview", "error"))
}

func TestPreviewPredictorFailure(t *testing.T) {
	predictor := mocks.NewMockPredictor(t)
	predictor.EXPECT().Predict(mock.Anything).Return(0, errors.New("boom")).Once()

	svc, _ := newTestUseCase(t, nil, predictor)
	_, err := svc.Preview(context.Background(), rows())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "predict row 1")
}

func TestPreviewEmpty(t *testing.T) {
	svc, _ := newTestUseCase(t, nil, mocks.NewMockPredictor(t))
	plan, err := svc.Preview(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, plan.Campaigns)
	assert.False(t, plan.PoolApplied)
}

func TestIngest(t *testing.T) {
	repo := mocks.NewMockPlanRepository(t)
	repo.EXPECT().InsertPerformance(mock.Anything, rows()).Return(4, nil)

	svc, _ := newTestUseCase(t, repo, mocks.NewMockPredictor(t))
	n, err := svc.Ingest(context.Background(), rows())
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestIngestValidatesBeforeStoring(t *testing.T) {
	repo := mocks.NewMockPlanRepository(t)
	svc, _ := newTestUseCase(t, repo, mocks.NewMockPredictor(t))

	_, err := svc.Ingest(context.Background(), []domain.PerformanceRow{{CampaignID: "a", Spent: -1}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	n, err := svc.Ingest(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestIngestRepositoryError(t *testing.T) {
	repo := mocks.NewMockPlanRepository(t)
	repo.EXPECT().InsertPerformance(mock.Anything, mock.Anything).Return(0, errors.New("conn reset"))

	svc, _ := newTestUseCase(t, repo, mocks.NewMockPredictor(t))
	_, err := svc.Ingest(context.Background(), rows())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert performance")
}

func TestRun(t *testing.T) {
	campaign := "B"
	filter := port.PerformanceFilter{CampaignID: &campaign}

	repo := mocks.NewMockPlanRepository(t)
	repo.EXPECT().ListPerformance(mock.Anything, filter).Return(rows(), nil)

	var saved *domain.Plan
	repo.EXPECT().
		SavePlan(mock.Anything, mock.AnythingOfType("*domain.Plan")).
		Run(func(_ context.Context, plan *domain.Plan) { saved = plan }).
		Return(nil)

	predictor := mocks.NewMockPredictor(t)
	predictor.EXPECT().Predict(mock.Anything).Return(0.1, nil)

	svc, _ := newTestUseCase(t, repo, predictor)
	plan, err := svc.Run(context.Background(), filter)
	require.NoError(t, err)
	assert.Same(t, plan, saved)
	assert.Len(t, plan.Campaigns, 3)
}

func TestRunListError(t *testing.T) {
	repo := mocks.NewMockPlanRepository(t)
	repo.EXPECT().ListPerformance(mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	svc, reg := newTestUseCase(t, repo, mocks.NewMockPredictor(t))
	_, err := svc.Run(context.Background(), port.PerformanceFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list performance")
	assert.Equal(t, 1.0, runsTotal(t, reg, "run", "error"))
}

func TestRunSaveError(t *testing.T) {
	repo := mocks.NewMockPlanRepository(t)
	repo.EXPECT().ListPerformance(mock.Anything, mock.Anything).Return(rows(), nil)
	repo.EXPECT().SavePlan(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	predictor := mocks.NewMockPredictor(t)
	predictor.EXPECT().Predict(mock.Anything).Return(0.1, nil)

	svc, reg := newTestUseCase(t, repo, predictor)
	_, err := svc.Run(context.Background(), port.PerformanceFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save plan")
	assert.Equal(t, 1.0, runsTotal(t, reg, "run", "error"))
	assert.Zero(t, runsTotal(t, reg, "run", "ok"), "unsaved plans are not counted as delivered")
}

func TestRunCountsSavedPlan(t *testing.T) {
	repo := mocks.NewMockPlanRepository(t)
	repo.EXPECT().ListPerformance(mock.Anything, mock.Anything).Return(rows(), nil)
	repo.EXPECT().SavePlan(mock.Anything, mock.Anything).Return(nil)

	predictor := mocks.NewMockPredictor(t)
	predictor.EXPECT().Predict(mock.Anything).Return(0.1, nil)

	svc, reg := newTestUseCase(t, repo, predictor)
	_, err := svc.Run(context.Background(), port.PerformanceFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1.0, runsTotal(t, reg, "run", "ok"))
	assert.Zero(t, runsTotal(t, reg, "run", "error"))
}

func TestPreviewRejectsOverflowingSpend(t *testing.T) {
	predictor := mocks.NewMockPredictor(t)
	predictor.EXPECT().Predict(mock.Anything).Return(0.01, nil).Maybe()

	svc, _ := newTestUseCase(t, nil, predictor)
	_, err := svc.Preview(context.Background(), []domain.PerformanceRow{
		{CampaignID: "a", Impressions: 10, Spent: 1e308},
		{CampaignID: "a", Impressions: 10, Spent: 1e308},
		{CampaignID: "b", Impressions: 10, Spent: 5},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "campaign a: total spent overflows")
}

func TestPreviewRejectsNonFiniteConversions(t *testing.T) {
	svc, _ := newTestUseCase(t, nil, mocks.NewMockPredictor(t))
	_, err := svc.Preview(context.Background(), []domain.PerformanceRow{
		{CampaignID: "a", Impressions: 10, Clicks: 1, Spent: 5, TotalConversion: math.NaN()},
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "row 1")
}

func TestGetPlan(t *testing.T) {
	id := uuid.New()
	stored := &domain.Plan{ID: id}

	repo := mocks.NewMockPlanRepository(t)
	repo.EXPECT().GetPlan(mock.Anything, id).Return(stored, nil).Once()
	repo.EXPECT().GetPlan(mock.Anything, mock.Anything).Return(nil, nil).Once()

	svc, _ := newTestUseCase(t, repo, mocks.NewMockPredictor(t))

	plan, err := svc.GetPlan(context.Background(), id)
	require.NoError(t, err)
	assert.Same(t, stored, plan)

	_, err = svc.GetPlan(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
}

func TestLatestPlan(t *testing.T) {
	repo := mocks.NewMockPlanRepository(t)
	repo.EXPECT().LatestPlan(mock.Anything).Return(nil, nil).Once()

	svc, _ := newTestUseCase(t, repo, mocks.NewMockPredictor(t))
	_, err := svc.LatestPlan(context.Background())
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)

	boom := errors.New("boom")
	repo.EXPECT().LatestPlan(mock.Anything).Return(nil, boom).Once()
	_, err = svc.LatestPlan(context.Background())
	assert.ErrorIs(t, err, boom)
}
