package planner

import (
	"mesa-roi/internal/core/domain"
)

// Reallocation summarizes the money moved by Reallocate.
type Reallocation struct {
	// Pool is the sum of cuts computed over reduce campaigns.
	Pool float64
	// Applied is false when no increase campaign could receive the pool;
	// in that case every budget is left unchanged.
	Applied bool
}

// Reallocate moves factor of each reduce campaign's spend to the increase
// campaigns, weighted by their ROI. If every increase ROI is zero the pool
// is split evenly. Monitor campaigns keep their spend.
func Reallocate(records []domain.CampaignRecord, factor float64) Reallocation {
	var (
		res       Reallocation
		maxROI    float64
		increases int
	)
	for i := range records {
		r := &records[i]
		r.BudgetCut, r.BudgetGain, r.NewBudget = 0, 0, r.Spent
		switch r.Recommendation {
		case domain.RecommendationReduce:
			res.Pool += r.Spent * factor
		case domain.RecommendationIncrease:
			maxROI = max(maxROI, r.ROI)
			increases++
		}
	}
	if increases == 0 {
		return res
	}
	res.Applied = true

	// weights are taken relative to the largest ROI so the sum stays finite
	var roiSum float64
	if maxROI > 0 {
		for _, r := range records {
			if r.Recommendation == domain.RecommendationIncrease {
				roiSum += r.ROI / maxROI
			}
		}
	}

	for i := range records {
		r := &records[i]
		switch r.Recommendation {
		case domain.RecommendationReduce:
			r.BudgetCut = r.Spent * factor
			r.NewBudget = r.Spent - r.BudgetCut
		case domain.RecommendationIncrease:
			w := 1 / float64(increases)
			if roiSum > 0 {
				w = r.ROI / maxROI / roiSum
			}
			r.BudgetGain = w * res.Pool
			r.NewBudget = r.Spent + r.BudgetGain
		}
	}
	return res
}
