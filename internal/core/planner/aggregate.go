package planner

import (
	"fmt"
	"math"
	"sort"

	"mesa-roi/internal/core/domain"
)

// ValidateRows rejects the batch when any row is unusable. The first
// offending row is reported with its 1-based position.
func ValidateRows(rows []domain.PerformanceRow) error {
	for i, r := range rows {
		switch {
		case r.CampaignID == "":
			return fmt.Errorf("%w: row %d: missing campaign_id", domain.ErrInvalidInput, i+1)
		case r.Impressions < 0:
			return fmt.Errorf("%w: row %d: negative impressions", domain.ErrInvalidInput, i+1)
		case r.Clicks < 0:
			return fmt.Errorf("%w: row %d: negative clicks", domain.ErrInvalidInput, i+1)
		case r.Spent < 0 || !isFinite(r.Spent):
			return fmt.Errorf("%w: row %d: spent must be a non-negative number", domain.ErrInvalidInput, i+1)
		case !isFinite(r.TotalConversion) || !isFinite(r.ApprovedConversion):
			return fmt.Errorf("%w: row %d: conversions must be finite", domain.ErrInvalidInput, i+1)
		case r.Clicks > r.Impressions:
			return fmt.Errorf("%w: row %d: clicks exceed impressions", domain.ErrInvalidInput, i+1)
		}
	}
	return nil
}

// Aggregate groups rows by campaign. predicted holds one prediction per
// row, aligned with rows; a nil slice leaves PredictedRate at zero. The
// result is ordered by campaign id. Totals that overflow, per campaign or
// over the whole batch, reject the input.
func Aggregate(rows []domain.PerformanceRow, predicted []float64) ([]domain.CampaignRecord, error) {
	if predicted != nil && len(predicted) != len(rows) {
		return nil, fmt.Errorf("%w: %d predictions for %d rows", domain.ErrInvalidInput, len(predicted), len(rows))
	}

	type acc struct {
		rate, pred float64
		rec        domain.CampaignRecord
	}
	groups := make(map[string]*acc)
	for i, r := range rows {
		g, ok := groups[r.CampaignID]
		if !ok {
			g = &acc{rec: domain.CampaignRecord{CampaignID: r.CampaignID}}
			groups[r.CampaignID] = g
		}
		g.rate += r.ClickRate()
		if predicted != nil {
			g.pred += finiteOrZero(predicted[i])
		}
		if r.Impressions > math.MaxInt64-g.rec.Impressions {
			return nil, fmt.Errorf("%w: campaign %s: impressions overflow", domain.ErrInvalidInput, r.CampaignID)
		}
		g.rec.Spent += r.Spent
		g.rec.Impressions += r.Impressions
		g.rec.Rows++
	}

	records := make([]domain.CampaignRecord, 0, len(groups))
	for _, g := range groups {
		n := float64(g.rec.Rows)
		g.rec.ObservedRate = g.rate / n
		g.rec.PredictedRate = finiteOrZero(g.pred / n)
		records = append(records, g.rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CampaignID < records[j].CampaignID
	})

	var total float64
	for _, r := range records {
		if !isFinite(r.Spent) {
			return nil, fmt.Errorf("%w: campaign %s: total spent overflows", domain.ErrInvalidInput, r.CampaignID)
		}
		total += r.Spent
	}
	// the reallocation pool is bounded by the batch total
	if !isFinite(total) {
		return nil, fmt.Errorf("%w: total spent overflows", domain.ErrInvalidInput)
	}
	return records, nil
}

func finiteOrZero(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
