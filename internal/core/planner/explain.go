package planner

import (
	"fmt"

	"mesa-roi/internal/core/domain"
)

// Explain renders the rationale for a record's recommendation. It depends
// only on the recommendation and the two rates.
func Explain(r domain.CampaignRecord) string {
	switch r.Recommendation {
	case domain.RecommendationIncrease:
		return fmt.Sprintf("This campaign is performing well with a CTR of %.4f. "+
			"The model predicts a CTR of %.4f, indicating strong audience engagement. "+
			"Increasing budget could maximize returns.", r.ObservedRate, r.PredictedRate)
	case domain.RecommendationReduce:
		return fmt.Sprintf("This campaign has a low CTR (%.4f) relative to its spend. "+
			"The model predicts %.4f and does not suggest significant improvement. "+
			"Reducing or pausing the budget may prevent further losses.", r.ObservedRate, r.PredictedRate)
	default:
		return fmt.Sprintf("This campaign shows stable performance with a CTR of %.4f "+
			"against a predicted %.4f. No immediate action is required; "+
			"continued monitoring is recommended.", r.ObservedRate, r.PredictedRate)
	}
}
