package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-roi/internal/core/domain"
	"mesa-roi/internal/core/port"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestPlanRepository_InsertPerformance(t *testing.T) {
	rows := []domain.PerformanceRow{
		{CampaignID: "916", ReportingStart: time.Date(2017, 8, 17, 0, 0, 0, 0, time.UTC), Impressions: 10, Clicks: 1, Spent: 1.5},
		{CampaignID: "936", Impressions: 4},
	}

	t.Run("nominal", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO ad_performance").
			WillReturnResult(pgxmock.NewResult("INSERT", 2))
		mock.ExpectCommit()

		n, err := NewPlanRepository(mock).InsertPerformance(context.Background(), rows)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO ad_performance").WillReturnError(assert.AnError)
		mock.ExpectRollback()

		_, err := NewPlanRepository(mock).InsertPerformance(context.Background(), rows)
		assert.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPlanRepository_ListPerformance(t *testing.T) {
	mock := newMock(t)
	campaign := "916"

	mock.ExpectQuery(`FROM ad_performance WHERE campaign_id = \$1 ORDER BY id`).
		WithArgs("916").
		WillReturnRows(pgxmock.NewRows([]string{
			"ad_id", "campaign_id", "fb_campaign_id", "reporting_start", "reporting_end",
			"age", "gender", "interest1", "interest2", "interest3",
			"impressions", "clicks", "spent", "total_conversion", "approved_conversion",
		}).AddRow(
			"708746", "916", "103916", "2017-08-17", "",
			"30-34", "M", int64(15), int64(17), int64(17),
			int64(7350), int64(1), 1.43, 2.0, 1.0,
		))

	rows, err := NewPlanRepository(mock).ListPerformance(context.Background(), port.PerformanceFilter{CampaignID: &campaign})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "708746", rows[0].AdID)
	assert.Equal(t, time.Date(2017, 8, 17, 0, 0, 0, 0, time.UTC), rows[0].ReportingStart)
	assert.True(t, rows[0].ReportingEnd.IsZero())
	assert.Equal(t, int64(7350), rows[0].Impressions)
	assert.Equal(t, 1.43, rows[0].Spent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func samplePlan() *domain.Plan {
	return &domain.Plan{
		ID:              uuid.New(),
		CreatedAt:       time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		ReductionFactor: 0.3,
		LowerQuantile:   0.25,
		UpperQuantile:   0.75,
		ZeroSpendPolicy: "exclude",
		Thresholds:      domain.Thresholds{Low: 3, High: 7},
		Pool:            30,
		PoolApplied:     true,
		TotalSpent:      300,
		TotalNewBudget:  300,
		Campaigns: []domain.CampaignRecord{
			{CampaignID: "C", Spent: 100, Rows: 1, ROI: 9, ROIDefined: true, Recommendation: domain.RecommendationIncrease, BudgetGain: 30, NewBudget: 130},
			{CampaignID: "A", Spent: 100, Rows: 1, ROI: 1, ROIDefined: true, Recommendation: domain.RecommendationReduce, BudgetCut: 30, NewBudget: 70},
		},
	}
}

func TestPlanRepository_SavePlan(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO plan_runs").WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO plan_campaigns").WillReturnResult(pgxmock.NewResult("INSERT", 2))
		mock.ExpectCommit()

		err := NewPlanRepository(mock).SavePlan(context.Background(), samplePlan())
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("campaign insert fails", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO plan_runs").WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO plan_campaigns").WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := NewPlanRepository(mock).SavePlan(context.Background(), samplePlan())
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "insert plan_campaigns")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPlanRepository_GetPlan(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		mock := newMock(t)
		want := samplePlan()

		mock.ExpectQuery("FROM plan_runs WHERE id = ").
			WillReturnRows(pgxmock.NewRows(append([]string{"created_at"}, runColumns...)).AddRow(
				want.CreatedAt, 0.3, 0.25, 0.75, "exclude", 3.0, 7.0, 30.0, true, 300.0, 300.0,
			))
		campaigns := pgxmock.NewRows(campaignColumns)
		for _, c := range want.Campaigns {
			campaigns.AddRow(
				c.CampaignID, c.ObservedRate, c.PredictedRate, c.Spent, c.Impressions, c.Rows,
				c.ROI, c.ROIDefined, string(c.Recommendation), c.BudgetCut, c.BudgetGain, c.NewBudget, c.Explanation,
			)
		}
		mock.ExpectQuery("FROM plan_campaigns WHERE run_id = .* ORDER BY rank").WillReturnRows(campaigns)

		got, err := NewPlanRepository(mock).GetPlan(context.Background(), want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM plan_runs").WillReturnError(pgx.ErrNoRows)

		got, err := NewPlanRepository(mock).GetPlan(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPlanRepository_LatestPlan(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`FROM plan_runs ORDER BY created_at DESC LIMIT 1`).WillReturnError(pgx.ErrNoRows)

		got, err := NewPlanRepository(mock).LatestPlan(context.Background())
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery("FROM plan_runs").WillReturnError(assert.AnError)

		_, err := NewPlanRepository(mock).LatestPlan(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
	})
}
