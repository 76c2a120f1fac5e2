package domain

import (
	"time"
)

// PerformanceRow is a single reporting row of ad delivery. Rows are grouped
// by CampaignID to build CampaignRecords.
type PerformanceRow struct {
	AdID               string    `json:"ad_id"`
	CampaignID         string    `json:"campaign_id" validate:"required"`
	FBCampaignID       string    `json:"fb_campaign_id"`
	ReportingStart     time.Time `json:"reporting_start"`
	ReportingEnd       time.Time `json:"reporting_end"`
	Age                string    `json:"age"`
	Gender             string    `json:"gender"`
	Interest1          int64     `json:"interest1"`
	Interest2          int64     `json:"interest2"`
	Interest3          int64     `json:"interest3"`
	Impressions        int64     `json:"impressions" validate:"gte=0"`
	Clicks             int64     `json:"clicks" validate:"gte=0"`
	Spent              float64   `json:"spent" validate:"gte=0"`
	TotalConversion    float64   `json:"total_conversion"`
	ApprovedConversion float64   `json:"approved_conversion"`
}

// ClickRate returns clicks per impression. Rows without impressions have a
// rate of zero.
func (r PerformanceRow) ClickRate() float64 {
	if r.Impressions <= 0 {
		return 0
	}
	return float64(r.Clicks) / float64(r.Impressions)
}
