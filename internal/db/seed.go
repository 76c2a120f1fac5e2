package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"mesa-roi/internal/core/domain"
	"mesa-roi/internal/core/port"
)

// SeedRows generates demo performance rows: campaigns ads reporting over
// days consecutive days each. Every campaign gets its own click rate so
// the planner has something to rank. The same seed yields the same rows.
func SeedRows(seed int64, campaigns, adsPerCampaign, days int, start time.Time) []domain.PerformanceRow {
	r := rand.New(rand.NewSource(seed))
	ages := []string{"30-34", "35-39", "40-44", "45-49"}
	genders := []string{"M", "F"}

	var rows []domain.PerformanceRow
	for c := 1; c <= campaigns; c++ {
		campaignID := fmt.Sprintf("%d", 900+c)
		ctr := 0.0002 + r.Float64()*0.0008
		cpm := 0.15 + r.Float64()*0.35
		for a := 1; a <= adsPerCampaign; a++ {
			adID := fmt.Sprintf("%d%03d", 700000+c, a)
			fbID := fmt.Sprintf("%d", 100000+c*100+r.Intn(10))
			for d := 0; d < days; d++ {
				day := start.AddDate(0, 0, d)
				impressions := int64(1000 + r.Intn(50000))
				clicks := int64(float64(impressions) * ctr * (0.5 + r.Float64()))
				spent := float64(impressions) / 1000 * cpm
				conv := float64(r.Intn(4))
				rows = append(rows, domain.PerformanceRow{
					AdID:               adID,
					CampaignID:         campaignID,
					FBCampaignID:       fbID,
					ReportingStart:     day,
					ReportingEnd:       day,
					Age:                ages[r.Intn(len(ages))],
					Gender:             genders[r.Intn(len(genders))],
					Interest1:          int64(2 + r.Intn(60)),
					Interest2:          int64(2 + r.Intn(60)),
					Interest3:          int64(2 + r.Intn(60)),
					Impressions:        impressions,
					Clicks:             clicks,
					Spent:              float64(int64(spent*100)) / 100,
					TotalConversion:    conv,
					ApprovedConversion: float64(r.Intn(int(conv) + 1)),
				})
			}
		}
	}
	return rows
}

// Seed inserts demo performance rows through repo.
func Seed(ctx context.Context, repo port.PlanRepository, seed int64) (int64, error) {
	start := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, -14)
	return repo.InsertPerformance(ctx, SeedRows(seed, 8, 5, 14, start))
}
