package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"mesa-roi/internal/adapter/metrics"
	"mesa-roi/internal/core/domain"
	"mesa-roi/internal/core/features"
	"mesa-roi/internal/core/planner"
	"mesa-roi/internal/core/port"
)

// PlanUseCase provides business logic for budget planning. It orchestrates
// the predictor, the planner and the repository to implement the
// port.PlanUseCase interface.
type PlanUseCase struct {
	repo      port.PlanRepository
	predictor port.Predictor
	opts      planner.Options
	logger    *slog.Logger
	metrics   *metrics.Planner

	// now is replaced in tests to get stable timestamps.
	now func() time.Time
}

// NewPlanUseCase creates a usecase. repo may be nil when only Preview is
// used, as the CLI does. m may be nil to disable metrics.
func NewPlanUseCase(repo port.PlanRepository, predictor port.Predictor, opts planner.Options, logger *slog.Logger, m *metrics.Planner) *PlanUseCase {
	return &PlanUseCase{
		repo:      repo,
		predictor: predictor,
		opts:      opts,
		logger:    logger,
		metrics:   m,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Preview computes a plan for rows without storing it.
func (u *PlanUseCase) Preview(ctx context.Context, rows []domain.PerformanceRow) (*domain.Plan, error) {
	start := time.Now()
	plan, err := u.compute(ctx, "preview", rows)
	if err != nil {
		return nil, err
	}
	u.observe(ctx, "preview", len(rows), plan, time.Since(start))
	return plan, nil
}

// Ingest validates rows and stores them.
func (u *PlanUseCase) Ingest(ctx context.Context, rows []domain.PerformanceRow) (int64, error) {
	if err := planner.ValidateRows(rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	n, err := u.repo.InsertPerformance(ctx, rows)
	if err != nil {
		return 0, fmt.Errorf("insert performance: %w", err)
	}
	u.logger.InfoContext(ctx, "performance rows ingested", slog.Int64("rows", n))
	return n, nil
}

// Run computes a plan over stored rows and stores the result.
func (u *PlanUseCase) Run(ctx context.Context, filter port.PerformanceFilter) (*domain.Plan, error) {
	rows, err := u.repo.ListPerformance(ctx, filter)
	if err != nil {
		u.metrics.ObserveFailure("run")
		return nil, fmt.Errorf("list performance: %w", err)
	}
	start := time.Now()
	plan, err := u.compute(ctx, "run", rows)
	if err != nil {
		return nil, err
	}
	if err = u.repo.SavePlan(ctx, plan); err != nil {
		u.metrics.ObserveFailure("run")
		return nil, fmt.Errorf("save plan: %w", err)
	}
	u.observe(ctx, "run", len(rows), plan, time.Since(start))
	return plan, nil
}

// GetPlan returns a stored plan.
func (u *PlanUseCase) GetPlan(ctx context.Context, id uuid.UUID) (*domain.Plan, error) {
	plan, err := u.repo.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrPlanNotFound
	}
	return plan, nil
}

// LatestPlan returns the newest stored plan.
func (u *PlanUseCase) LatestPlan(ctx context.Context) (*domain.Plan, error) {
	plan, err := u.repo.LatestPlan(ctx)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrPlanNotFound
	}
	return plan, nil
}

// compute runs the full pipeline: validation, prediction, aggregation and
// planning. Quantiles need every campaign, so aggregation completes before
// planner.Build classifies anything. Failures are recorded here; callers
// record success once the plan is delivered.
func (u *PlanUseCase) compute(ctx context.Context, operation string, rows []domain.PerformanceRow) (*domain.Plan, error) {
	plan, err := u.build(rows)
	if err != nil {
		u.metrics.ObserveFailure(operation)
		u.logger.WarnContext(ctx, "plan rejected", slog.String("operation", operation), slog.Any("error", err))
		return nil, err
	}
	return plan, nil
}

func (u *PlanUseCase) observe(ctx context.Context, operation string, rows int, plan *domain.Plan, elapsed time.Duration) {
	u.metrics.ObservePlan(operation, plan, elapsed)
	u.logger.InfoContext(ctx, "plan delivered",
		slog.String("operation", operation),
		slog.String("plan_id", plan.ID.String()),
		slog.Int("rows", rows),
		slog.Int("campaigns", len(plan.Campaigns)),
		slog.Int("increase", plan.Count(domain.RecommendationIncrease)),
		slog.Int("reduce", plan.Count(domain.RecommendationReduce)),
		slog.Float64("pool", plan.Pool),
		slog.Bool("pool_applied", plan.PoolApplied),
		slog.Duration("elapsed", elapsed),
	)
}

func (u *PlanUseCase) build(rows []domain.PerformanceRow) (*domain.Plan, error) {
	if err := planner.ValidateRows(rows); err != nil {
		return nil, err
	}
	predicted, err := u.predict(rows)
	if err != nil {
		return nil, err
	}
	records, err := planner.Aggregate(rows, predicted)
	if err != nil {
		return nil, err
	}
	res, err := planner.Build(records, u.opts)
	if err != nil {
		return nil, err
	}
	return &domain.Plan{
		ID:              uuid.New(),
		CreatedAt:       u.now(),
		ReductionFactor: u.opts.ReductionFactor,
		LowerQuantile:   u.opts.LowerQuantile,
		UpperQuantile:   u.opts.UpperQuantile,
		ZeroSpendPolicy: string(u.opts.ZeroSpend),
		Thresholds:      res.Thresholds,
		Pool:            res.Reallocation.Pool,
		PoolApplied:     res.Reallocation.Applied,
		TotalSpent:      res.TotalSpent,
		TotalNewBudget:  res.TotalBudget,
		Campaigns:       res.Campaigns,
	}, nil
}

func (u *PlanUseCase) predict(rows []domain.PerformanceRow) ([]float64, error) {
	encoded := features.Encode(rows)
	out := make([]float64, len(rows))
	for i, f := range encoded {
		y, err := u.predictor.Predict(f)
		if err != nil {
			return nil, fmt.Errorf("predict row %d: %w", i+1, err)
		}
		out[i] = y
	}
	return out, nil
}
