// Package report renders plans for terminals and files.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"mesa-roi/internal/core/domain"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	increaseStyle = cellStyle.Foreground(lipgloss.Color("2"))
	reduceStyle   = cellStyle.Foreground(lipgloss.Color("1"))
)

// WriteTable prints a summary and the top campaigns of plan. top <= 0
// prints every campaign.
func WriteTable(w io.Writer, plan *domain.Plan, top int) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Budget Reallocation Plan"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Campaigns:    %d (increase %d, reduce %d, monitor %d)\n",
		len(plan.Campaigns),
		plan.Count(domain.RecommendationIncrease),
		plan.Count(domain.RecommendationReduce),
		plan.Count(domain.RecommendationMonitor))
	fmt.Fprintf(&b, "Thresholds:   p%.0f=%.4f p%.0f=%.4f\n",
		plan.LowerQuantile*100, plan.Thresholds.Low, plan.UpperQuantile*100, plan.Thresholds.High)
	fmt.Fprintf(&b, "Pool:         %.2f (%s)\n", plan.Pool, appliedLabel(plan.PoolApplied))
	fmt.Fprintf(&b, "Total budget: %.2f -> %.2f\n", plan.TotalSpent, plan.TotalNewBudget)

	if len(plan.Campaigns) == 0 {
		b.WriteString("\nNo campaigns.\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	limit := len(plan.Campaigns)
	if top > 0 && top < limit {
		limit = top
	}
	rows := make([][]string, 0, limit)
	for _, c := range plan.Campaigns[:limit] {
		roi := fmt.Sprintf("%.4f", c.ROI)
		if !c.ROIDefined {
			roi = "n/a"
		}
		rows = append(rows, []string{
			c.CampaignID,
			roi,
			fmt.Sprintf("%.2f", c.Spent),
			fmt.Sprintf("%.2f", c.NewBudget),
			c.Recommendation.Label(),
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CAMPAIGN", "ROI", "SPENT", "NEW BUDGET", "RECOMMENDATION").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 4 {
				switch plan.Campaigns[row].Recommendation {
				case domain.RecommendationIncrease:
					return increaseStyle
				case domain.RecommendationReduce:
					return reduceStyle
				}
			}
			return cellStyle
		})
	b.WriteString("\n")
	b.WriteString(t.Render())
	b.WriteString("\n")
	if limit < len(plan.Campaigns) {
		fmt.Fprintf(&b, "... %d more\n", len(plan.Campaigns)-limit)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteExplanations prints the rationale of the first n campaigns.
func WriteExplanations(w io.Writer, plan *domain.Plan, n int) error {
	if n > len(plan.Campaigns) {
		n = len(plan.Campaigns)
	}
	var b strings.Builder
	for _, c := range plan.Campaigns[:n] {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(fmt.Sprintf("Campaign %s: %s", c.CampaignID, c.Recommendation.Label())))
		b.WriteString("\n")
		b.WriteString(c.Explanation)
		b.WriteString("\n")
		b.WriteString(strings.Repeat("-", 60))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON writes plan as indented JSON.
func WriteJSON(w io.Writer, plan *domain.Plan) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(plan)
}

func appliedLabel(applied bool) string {
	if applied {
		return "applied"
	}
	return "not applied, no increase campaigns"
}
