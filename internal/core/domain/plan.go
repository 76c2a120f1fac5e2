package domain

import (
	"time"

	"github.com/google/uuid"
)

// Features is the encoded input of a single row handed to a predictor.
type Features map[string]float64

// Thresholds are the ROI quantile values separating the action buckets.
type Thresholds struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Plan is the output of one reallocation run. Campaigns are sorted by
// descending ROI.
type Plan struct {
	ID              uuid.UUID        `json:"id"`
	CreatedAt       time.Time        `json:"created_at"`
	ReductionFactor float64          `json:"reduction_factor"`
	LowerQuantile   float64          `json:"lower_quantile"`
	UpperQuantile   float64          `json:"upper_quantile"`
	ZeroSpendPolicy string           `json:"zero_spend_policy"`
	Thresholds      Thresholds       `json:"thresholds"`
	Pool            float64          `json:"pool"`
	PoolApplied     bool             `json:"pool_applied"`
	TotalSpent      float64          `json:"total_spent"`
	TotalNewBudget  float64          `json:"total_new_budget"`
	Campaigns       []CampaignRecord `json:"campaigns"`
}

// Count returns how many campaigns carry the given recommendation.
func (p *Plan) Count(r Recommendation) int {
	n := 0
	for i := range p.Campaigns {
		if p.Campaigns[i].Recommendation == r {
			n++
		}
	}
	return n
}
