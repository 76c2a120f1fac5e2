package planner

import (
	"fmt"

	"mesa-roi/internal/core/domain"
)

// ComputeROI fills ROI and ROIDefined on every record. Zero spend is
// resolved by policy. A positive spend so small that the ROI overflows
// rejects the input: ranking such a campaign as 0 would cut the strongest
// one.
func ComputeROI(records []domain.CampaignRecord, policy ZeroSpendPolicy) error {
	for i := range records {
		r := &records[i]
		if r.Spent <= 0 {
			r.ROI = 0
			r.ROIDefined = policy == ZeroSpendAsZero
			continue
		}
		roi := r.ObservedRate * float64(r.Impressions) / r.Spent
		if !isFinite(roi) {
			return fmt.Errorf("%w: campaign %s: ROI is not finite (spent %g)", domain.ErrInvalidInput, r.CampaignID, r.Spent)
		}
		r.ROI = roi
		r.ROIDefined = true
	}
	return nil
}

// ComputeThresholds returns the lower and upper ROI quantiles over records
// with a defined ROI. ok is false when there is none.
func ComputeThresholds(records []domain.CampaignRecord, lower, upper float64) (th domain.Thresholds, ok bool) {
	values := make([]float64, 0, len(records))
	for _, r := range records {
		if r.ROIDefined {
			values = append(values, r.ROI)
		}
	}
	if len(values) == 0 {
		return domain.Thresholds{}, false
	}
	return domain.Thresholds{
		Low:  Quantile(values, lower),
		High: Quantile(values, upper),
	}, true
}

// Classify assigns a recommendation to each record. Comparisons are
// strict: a ROI equal to either threshold is monitored.
func Classify(records []domain.CampaignRecord, th domain.Thresholds) {
	for i := range records {
		r := &records[i]
		switch {
		case !r.ROIDefined:
			r.Recommendation = domain.RecommendationMonitor
		case r.ROI < th.Low:
			r.Recommendation = domain.RecommendationReduce
		case r.ROI > th.High:
			r.Recommendation = domain.RecommendationIncrease
		default:
			r.Recommendation = domain.RecommendationMonitor
		}
	}
}
