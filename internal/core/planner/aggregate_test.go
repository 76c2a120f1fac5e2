package planner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-roi/internal/core/domain"
)

func TestValidateRows(t *testing.T) {
	tests := []struct {
		name string
		row  domain.PerformanceRow
		msg  string
	}{
		{name: "missing campaign", row: domain.PerformanceRow{}, msg: "missing campaign_id"},
		{name: "negative impressions", row: domain.PerformanceRow{CampaignID: "a", Impressions: -1}, msg: "negative impressions"},
		{name: "negative clicks", row: domain.PerformanceRow{CampaignID: "a", Clicks: -1}, msg: "negative clicks"},
		{name: "negative spent", row: domain.PerformanceRow{CampaignID: "a", Spent: -0.5}, msg: "spent"},
		{name: "nan spent", row: domain.PerformanceRow{CampaignID: "a", Spent: math.NaN()}, msg: "spent"},
		{name: "clicks above impressions", row: domain.PerformanceRow{CampaignID: "a", Impressions: 1, Clicks: 2}, msg: "clicks exceed impressions"},
		{name: "nan total conversion", row: domain.PerformanceRow{CampaignID: "a", TotalConversion: math.NaN()}, msg: "conversions must be finite"},
		{name: "infinite approved conversion", row: domain.PerformanceRow{CampaignID: "a", ApprovedConversion: math.Inf(1)}, msg: "conversions must be finite"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []domain.PerformanceRow{{CampaignID: "ok", Impressions: 10, Clicks: 1, Spent: 1}, tt.row}
			err := ValidateRows(rows)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), "row 2")
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	assert.NoError(t, ValidateRows(nil))
	assert.NoError(t, ValidateRows([]domain.PerformanceRow{{CampaignID: "a"}}))
}

func TestAggregate(t *testing.T) {
	rows := []domain.PerformanceRow{
		{CampaignID: "b", Impressions: 100, Clicks: 2, Spent: 1.5},
		{CampaignID: "a", Impressions: 200, Clicks: 10, Spent: 4},
		{CampaignID: "b", Impressions: 0, Clicks: 0, Spent: 0.5},
		{CampaignID: "a", Impressions: 100, Clicks: 1, Spent: 6},
	}
	records, err := Aggregate(rows, []float64{0.1, 0.2, math.NaN(), 0.4})
	require.NoError(t, err)
	require.Len(t, records, 2)

	a, b := records[0], records[1]
	assert.Equal(t, "a", a.CampaignID)
	assert.Equal(t, "b", b.CampaignID)

	// per-row rates are averaged, not recomputed from totals
	assert.InDelta(t, (0.05+0.01)/2, a.ObservedRate, 1e-12)
	assert.InDelta(t, 0.3, a.PredictedRate, 1e-12)
	assert.Equal(t, 10.0, a.Spent)
	assert.Equal(t, int64(300), a.Impressions)
	assert.Equal(t, 2, a.Rows)

	assert.InDelta(t, 0.01, b.ObservedRate, 1e-12, "zero impressions count as a zero rate")
	assert.InDelta(t, 0.05, b.PredictedRate, 1e-12, "non-finite predictions count as zero")
	assert.Equal(t, 2.0, b.Spent)
}

func TestAggregateWithoutPredictions(t *testing.T) {
	records, err := Aggregate([]domain.PerformanceRow{{CampaignID: "a", Impressions: 4, Clicks: 1}}, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Zero(t, records[0].PredictedRate)
	assert.Equal(t, 0.25, records[0].ObservedRate)
}

func TestAggregateRejectsMisalignedPredictions(t *testing.T) {
	_, err := Aggregate([]domain.PerformanceRow{{CampaignID: "a"}}, []float64{1, 2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAggregateRejectsOverflowingTotals(t *testing.T) {
	tests := []struct {
		name string
		rows []domain.PerformanceRow
		msg  string
	}{
		{
			name: "campaign spent",
			rows: []domain.PerformanceRow{
				{CampaignID: "a", Spent: 1e308},
				{CampaignID: "a", Spent: 1e308},
				{CampaignID: "b", Spent: 5},
			},
			msg: "campaign a: total spent overflows",
		},
		{
			name: "batch spent",
			rows: []domain.PerformanceRow{
				{CampaignID: "a", Spent: 1e308},
				{CampaignID: "b", Spent: 1e308},
			},
			msg: "total spent overflows",
		},
		{
			name: "impressions",
			rows: []domain.PerformanceRow{
				{CampaignID: "a", Impressions: math.MaxInt64},
				{CampaignID: "a", Impressions: 1},
			},
			msg: "campaign a: impressions overflow",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, ValidateRows(tt.rows))
			_, err := Aggregate(tt.rows, nil)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestAggregateLargeButFiniteSpend(t *testing.T) {
	records, err := Aggregate([]domain.PerformanceRow{
		{CampaignID: "a", Spent: 1e307},
		{CampaignID: "b", Spent: 1e307},
	}, []float64{1e308, 1e308})
	require.NoError(t, err)
	assert.Equal(t, 1e307, records[0].Spent)

	records, err = Aggregate([]domain.PerformanceRow{
		{CampaignID: "a"}, {CampaignID: "a"},
	}, []float64{1e308, 1e308})
	require.NoError(t, err)
	assert.Zero(t, records[0].PredictedRate, "overflowing prediction sum counts as zero")
}

func TestComputeROI(t *testing.T) {
	records := []domain.CampaignRecord{
		{CampaignID: "a", ObservedRate: 0.02, Impressions: 1000, Spent: 4},
		{CampaignID: "idle", ObservedRate: 0.02, Impressions: 1000},
	}
	require.NoError(t, ComputeROI(records, ZeroSpendExclude))
	assert.InDelta(t, 5.0, records[0].ROI, 1e-12)
	assert.True(t, records[0].ROIDefined)
	assert.Zero(t, records[1].ROI)
	assert.False(t, records[1].ROIDefined)

	require.NoError(t, ComputeROI(records, ZeroSpendAsZero))
	assert.True(t, records[1].ROIDefined)
	assert.Zero(t, records[1].ROI)
}

func TestComputeROIRejectsOverflow(t *testing.T) {
	records := []domain.CampaignRecord{
		{CampaignID: "a", ObservedRate: 0.5, Impressions: 1000, Spent: 4},
		{CampaignID: "tiny", ObservedRate: 1, Impressions: math.MaxInt64, Spent: 1e-300},
	}
	err := ComputeROI(records, ZeroSpendExclude)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "campaign tiny")
}

func TestComputeThresholdsWithoutDefinedROI(t *testing.T) {
	_, ok := ComputeThresholds([]domain.CampaignRecord{{CampaignID: "idle"}}, 0.25, 0.75)
	assert.False(t, ok)
}
