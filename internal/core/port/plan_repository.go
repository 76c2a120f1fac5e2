package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mesa-roi/internal/core/domain"
)

// PlanRepository defines the persistence layer for performance rows and
// computed plans. It is an outbound port in hexagonal architecture. A plan
// must be stored atomically together with its campaigns.
type PlanRepository interface {
	// InsertPerformance stores performance rows and returns how many were
	// written.
	InsertPerformance(ctx context.Context, rows []domain.PerformanceRow) (int64, error)
	// ListPerformance returns the stored rows matching the filter.
	ListPerformance(ctx context.Context, filter PerformanceFilter) ([]domain.PerformanceRow, error)

	// SavePlan stores a plan and its campaigns.
	SavePlan(ctx context.Context, plan *domain.Plan) error
	// GetPlan returns a plan by id, or nil when it does not exist.
	GetPlan(ctx context.Context, id uuid.UUID) (*domain.Plan, error)
	// LatestPlan returns the most recently created plan, or nil when none
	// has been stored.
	LatestPlan(ctx context.Context) (*domain.Plan, error)
}

// PerformanceFilter restricts stored rows by reporting period and campaign.
// Zero times leave the corresponding bound open.
type PerformanceFilter struct {
	From       time.Time
	To         time.Time
	CampaignID *string
}
