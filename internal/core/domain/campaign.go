package domain

// Recommendation is the action bucket a campaign falls into after
// classification against the ROI quantile thresholds.
type Recommendation string

const (
	RecommendationIncrease Recommendation = "increase"
	RecommendationReduce   Recommendation = "reduce"
	RecommendationMonitor  Recommendation = "monitor"
)

// Label returns the human readable action shown on reports.
func (r Recommendation) Label() string {
	switch r {
	case RecommendationIncrease:
		return "Increase Budget"
	case RecommendationReduce:
		return "Pause or Reduce Budget"
	default:
		return "Monitor"
	}
}

// CampaignRecord is the per-campaign summary derived from performance rows.
// Spend and budgets are monetary amounts in the input currency.
type CampaignRecord struct {
	CampaignID    string  `json:"campaign_id"`
	ObservedRate  float64 `json:"observed_rate"`  // mean click rate over rows
	PredictedRate float64 `json:"predicted_rate"` // mean model prediction over rows
	Spent         float64 `json:"spent"`
	Impressions   int64   `json:"impressions"`
	Rows          int     `json:"rows"`

	// ROI is observed_rate * impressions / spent. ROIDefined is false when
	// the campaign had no spend and was excluded from the quantiles.
	ROI        float64 `json:"roi"`
	ROIDefined bool    `json:"roi_defined"`

	Recommendation Recommendation `json:"recommendation"`
	BudgetCut      float64        `json:"budget_cut"`
	BudgetGain     float64        `json:"budget_gain"`
	NewBudget      float64        `json:"new_budget"`
	Explanation    string         `json:"explanation"`
}
