// Package features turns performance rows into the numeric inputs consumed
// by a predictor.
package features

import (
	"sort"
	"time"

	"mesa-roi/internal/core/domain"
)

// Feature names produced by Encode.
const (
	CampaignID         = "campaign_id"
	FBCampaignID       = "fb_campaign_id"
	Age                = "age"
	AgeGroup           = "age_group"
	Gender             = "gender"
	Interest1          = "interest1"
	Interest2          = "interest2"
	Interest3          = "interest3"
	Impressions        = "impressions"
	Spent              = "spent"
	TotalConversion    = "total_conversion"
	ApprovedConversion = "approved_conversion"
	Day                = "day"
	Month              = "month"
	DayOfWeek          = "day_of_week"
)

// Names lists every feature Encode emits.
var Names = []string{
	CampaignID, FBCampaignID, Age, AgeGroup, Gender,
	Interest1, Interest2, Interest3,
	Impressions, Spent, TotalConversion, ApprovedConversion,
	Day, Month, DayOfWeek,
}

// Known reports whether name is emitted by Encode.
func Known(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// Encode builds one feature map per row. Categorical columns are coded by
// the position of their value among the sorted distinct values of the
// batch, so the same batch always encodes the same way. Rows without a
// reporting start date get zero date parts.
func Encode(rows []domain.PerformanceRow) []domain.Features {
	campaigns := codes(rows, func(r domain.PerformanceRow) string { return r.CampaignID })
	fbCampaigns := codes(rows, func(r domain.PerformanceRow) string { return r.FBCampaignID })
	ages := codes(rows, func(r domain.PerformanceRow) string { return r.Age })
	genders := codes(rows, func(r domain.PerformanceRow) string { return r.Gender })

	out := make([]domain.Features, len(rows))
	for i, r := range rows {
		f := domain.Features{
			CampaignID:         campaigns[r.CampaignID],
			FBCampaignID:       fbCampaigns[r.FBCampaignID],
			Age:                ages[r.Age],
			AgeGroup:           ages[r.Age],
			Gender:             genders[r.Gender],
			Interest1:          float64(r.Interest1),
			Interest2:          float64(r.Interest2),
			Interest3:          float64(r.Interest3),
			Impressions:        float64(r.Impressions),
			Spent:              r.Spent,
			TotalConversion:    r.TotalConversion,
			ApprovedConversion: r.ApprovedConversion,
		}
		if !r.ReportingStart.IsZero() {
			f[Day] = float64(r.ReportingStart.Day())
			f[Month] = float64(r.ReportingStart.Month())
			f[DayOfWeek] = float64(mondayFirst(r.ReportingStart.Weekday()))
		} else {
			f[Day], f[Month], f[DayOfWeek] = 0, 0, 0
		}
		out[i] = f
	}
	return out
}

func mondayFirst(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func codes(rows []domain.PerformanceRow, key func(domain.PerformanceRow) string) map[string]float64 {
	seen := make(map[string]struct{})
	for _, r := range rows {
		seen[key(r)] = struct{}{}
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	out := make(map[string]float64, len(values))
	for i, v := range values {
		out[v] = float64(i)
	}
	return out
}
