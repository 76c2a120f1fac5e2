package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"mesa-roi/internal/core/domain"
)

func TestPlannerObservePlan(t *testing.T) {
	p := NewPlanner(prometheus.NewRegistry())
	plan := &domain.Plan{
		Pool:        42,
		PoolApplied: true,
		Campaigns: []domain.CampaignRecord{
			{Recommendation: domain.RecommendationIncrease},
			{Recommendation: domain.RecommendationReduce},
			{Recommendation: domain.RecommendationReduce},
		},
	}

	p.ObservePlan("run", plan, 10*time.Millisecond)
	p.ObserveFailure("run")

	assert.Equal(t, 1.0, testutil.ToFloat64(p.runs.WithLabelValues("run", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.runs.WithLabelValues("run", "error")))
	assert.Equal(t, 2.0, testutil.ToFloat64(p.campaigns.WithLabelValues("reduce")))
	assert.Equal(t, 0.0, testutil.ToFloat64(p.campaigns.WithLabelValues("monitor")))
	assert.Equal(t, 42.0, testutil.ToFloat64(p.pool))
	assert.Equal(t, 1, testutil.CollectAndCount(p.duration))
}

func TestPlannerKeepsPoolWhenNotApplied(t *testing.T) {
	p := NewPlanner(prometheus.NewRegistry())
	p.ObservePlan("preview", &domain.Plan{Pool: 5, PoolApplied: true}, time.Millisecond)
	p.ObservePlan("preview", &domain.Plan{Pool: 9}, time.Millisecond)
	assert.Equal(t, 5.0, testutil.ToFloat64(p.pool))
}

func TestNilPlannerIsNoop(t *testing.T) {
	var p *Planner
	assert.NotPanics(t, func() {
		p.ObservePlan("run", &domain.Plan{}, time.Second)
		p.ObserveFailure("run")
	})
}
