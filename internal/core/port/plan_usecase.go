package port

import (
	"context"

	"github.com/google/uuid"

	"mesa-roi/internal/core/domain"
)

// PlanUseCase defines the business operations exposed by the planner. This
// interface represents the primary port into the application domain. Mock
// implementations can be generated from this interface for testing.
type PlanUseCase interface {
	// Preview computes a plan for the given rows without storing anything.
	// Invalid rows reject the whole batch with domain.ErrInvalidInput.
	Preview(ctx context.Context, rows []domain.PerformanceRow) (*domain.Plan, error)

	// Ingest validates and stores performance rows for later runs.
	Ingest(ctx context.Context, rows []domain.PerformanceRow) (int64, error)

	// Run computes a plan over the stored rows matching filter and
	// stores it.
	Run(ctx context.Context, filter PerformanceFilter) (*domain.Plan, error)

	// GetPlan returns a stored plan or domain.ErrPlanNotFound.
	GetPlan(ctx context.Context, id uuid.UUID) (*domain.Plan, error)

	// LatestPlan returns the newest stored plan or domain.ErrPlanNotFound.
	LatestPlan(ctx context.Context) (*domain.Plan, error)
}
