// Package planner classifies campaigns by ROI and moves budget from the
// weakest to the strongest ones. All functions are pure and deterministic.
package planner

import (
	"sort"

	"mesa-roi/internal/core/domain"
)

// Result is the outcome of Build.
type Result struct {
	Campaigns    []domain.CampaignRecord
	Thresholds   domain.Thresholds
	Reallocation Reallocation
	TotalSpent   float64
	TotalBudget  float64
}

// Build runs ROI computation, classification, reallocation and explanation
// over a copy of records. Quantiles are computed once over the whole set
// before any record is classified. The returned campaigns are sorted by
// descending ROI, ties broken by campaign id.
func Build(records []domain.CampaignRecord, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	out := make([]domain.CampaignRecord, len(records))
	copy(out, records)

	if err := ComputeROI(out, opts.ZeroSpend); err != nil {
		return Result{}, err
	}
	th, _ := ComputeThresholds(out, opts.LowerQuantile, opts.UpperQuantile)
	Classify(out, th)
	realloc := Reallocate(out, opts.ReductionFactor)

	res := Result{Thresholds: th, Reallocation: realloc}
	for i := range out {
		out[i].Explanation = Explain(out[i])
		res.TotalSpent += out[i].Spent
		res.TotalBudget += out[i].NewBudget
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ROI == out[j].ROI {
			return out[i].CampaignID < out[j].CampaignID
		}
		return out[i].ROI > out[j].ROI
	})
	res.Campaigns = out
	return res, nil
}
