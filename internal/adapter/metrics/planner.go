// Package metrics exposes planner activity as Prometheus collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"mesa-roi/internal/core/domain"
)

// Planner records plan runs. A nil *Planner is valid and records nothing.
type Planner struct {
	runs      *prometheus.CounterVec
	campaigns *prometheus.CounterVec
	pool      prometheus.Gauge
	duration  *prometheus.HistogramVec
}

// NewPlanner creates the collectors and registers them with reg.
func NewPlanner(reg prometheus.Registerer) *Planner {
	p := &Planner{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mesa_roi",
			Name:      "plan_runs_total",
			Help:      "Plan computations by operation and status.",
		}, []string{"operation", "status"}),
		campaigns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mesa_roi",
			Name:      "campaigns_classified_total",
			Help:      "Campaigns classified by recommendation.",
		}, []string{"recommendation"}),
		pool: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mesa_roi",
			Name:      "reallocation_pool",
			Help:      "Budget moved by the last applied plan.",
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "mesa_roi",
			Name:      "plan_duration_seconds",
			Help:      "Time spent computing a plan.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	reg.MustRegister(p.runs, p.campaigns, p.pool, p.duration)
	return p
}

// ObservePlan records a successful run.
func (p *Planner) ObservePlan(operation string, plan *domain.Plan, elapsed time.Duration) {
	if p == nil {
		return
	}
	p.runs.With(prometheus.Labels{"operation": operation, "status": "ok"}).Inc()
	p.duration.With(prometheus.Labels{"operation": operation}).Observe(elapsed.Seconds())
	for _, r := range []domain.Recommendation{
		domain.RecommendationIncrease,
		domain.RecommendationReduce,
		domain.RecommendationMonitor,
	} {
		p.campaigns.With(prometheus.Labels{"recommendation": string(r)}).Add(float64(plan.Count(r)))
	}
	if plan.PoolApplied {
		p.pool.Set(plan.Pool)
	}
}

// ObserveFailure records a failed run.
func (p *Planner) ObserveFailure(operation string) {
	if p == nil {
		return
	}
	p.runs.With(prometheus.Labels{"operation": operation, "status": "error"}).Inc()
}
