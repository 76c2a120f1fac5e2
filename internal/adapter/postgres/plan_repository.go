package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"mesa-roi/internal/core/domain"
	"mesa-roi/internal/core/port"
)

// DB is the subset of pgxpool.Pool used by the repository.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// insertChunk bounds the rows of a single INSERT to stay below the
// PostgreSQL limit of 65535 bind parameters.
const insertChunk = 1000

var performanceColumns = []string{
	"ad_id", "campaign_id", "fb_campaign_id", "reporting_start", "reporting_end",
	"age", "gender", "interest1", "interest2", "interest3",
	"impressions", "clicks", "spent", "total_conversion", "approved_conversion",
}

var runColumns = []string{
	"reduction_factor", "lower_quantile", "upper_quantile", "zero_spend_policy",
	"low_threshold", "high_threshold", "pool", "pool_applied", "total_spent", "total_new_budget",
}

var campaignColumns = []string{
	"campaign_id", "observed_rate", "predicted_rate", "spent", "impressions", "row_count",
	"roi", "roi_defined", "recommendation", "budget_cut", "budget_gain", "new_budget", "explanation",
}

// PlanRepository implements port.PlanRepository on PostgreSQL.
type PlanRepository struct {
	db DB
	qb sq.StatementBuilderType
}

// NewPlanRepository returns a new repository instance. A *pgxpool.Pool
// satisfies DB.
func NewPlanRepository(db DB) *PlanRepository {
	return &PlanRepository{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// InsertPerformance stores rows in a single transaction.
func (r *PlanRepository) InsertPerformance(ctx context.Context, rows []domain.PerformanceRow) (n int64, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	for start := 0; start < len(rows); start += insertChunk {
		end := min(start+insertChunk, len(rows))
		q := r.qb.Insert("ad_performance").Columns(performanceColumns...)
		for _, row := range rows[start:end] {
			q = q.Values(
				row.AdID, row.CampaignID, row.FBCampaignID,
				dateArg(row.ReportingStart), dateArg(row.ReportingEnd),
				row.Age, row.Gender, row.Interest1, row.Interest2, row.Interest3,
				row.Impressions, row.Clicks, row.Spent, row.TotalConversion, row.ApprovedConversion,
			)
		}
		sql, args, err := q.ToSql()
		if err != nil {
			return 0, err
		}
		tag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return 0, fmt.Errorf("insert ad_performance: %w", err)
		}
		n += tag.RowsAffected()
	}
	return n, nil
}

// ListPerformance returns stored rows whose reporting start falls inside
// the filter period.
func (r *PlanRepository) ListPerformance(ctx context.Context, filter port.PerformanceFilter) ([]domain.PerformanceRow, error) {
	q := r.qb.Select(
		"ad_id", "campaign_id", "fb_campaign_id",
		"COALESCE(to_char(reporting_start, 'YYYY-MM-DD'), '')",
		"COALESCE(to_char(reporting_end, 'YYYY-MM-DD'), '')",
		"age", "gender", "interest1", "interest2", "interest3",
		"impressions", "clicks", "spent", "total_conversion", "approved_conversion",
	).From("ad_performance")
	if !filter.From.IsZero() {
		q = q.Where(sq.GtOrEq{"reporting_start": filter.From})
	}
	if !filter.To.IsZero() {
		q = q.Where(sq.LtOrEq{"reporting_start": filter.To})
	}
	if filter.CampaignID != nil {
		q = q.Where(sq.Eq{"campaign_id": *filter.CampaignID})
	}
	sql, args, err := q.OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.PerformanceRow, error) {
		var (
			p          domain.PerformanceRow
			start, end string
		)
		err := row.Scan(
			&p.AdID, &p.CampaignID, &p.FBCampaignID, &start, &end,
			&p.Age, &p.Gender, &p.Interest1, &p.Interest2, &p.Interest3,
			&p.Impressions, &p.Clicks, &p.Spent, &p.TotalConversion, &p.ApprovedConversion,
		)
		if err != nil {
			return p, err
		}
		p.ReportingStart = parseDate(start)
		p.ReportingEnd = parseDate(end)
		return p, nil
	})
}

// SavePlan stores the plan run and its campaigns atomically. Campaign rank
// preserves the plan order.
func (r *PlanRepository) SavePlan(ctx context.Context, plan *domain.Plan) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	sql, args, err := r.qb.Insert("plan_runs").
		Columns(append([]string{"id", "created_at"}, runColumns...)...).
		Values(
			plan.ID, plan.CreatedAt,
			plan.ReductionFactor, plan.LowerQuantile, plan.UpperQuantile, plan.ZeroSpendPolicy,
			plan.Thresholds.Low, plan.Thresholds.High, plan.Pool, plan.PoolApplied,
			plan.TotalSpent, plan.TotalNewBudget,
		).ToSql()
	if err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert plan_runs: %w", err)
	}

	for start := 0; start < len(plan.Campaigns); start += insertChunk {
		end := min(start+insertChunk, len(plan.Campaigns))
		q := r.qb.Insert("plan_campaigns").
			Columns(append([]string{"run_id", "rank"}, campaignColumns...)...)
		for i, c := range plan.Campaigns[start:end] {
			q = q.Values(
				plan.ID, start+i+1,
				c.CampaignID, c.ObservedRate, c.PredictedRate, c.Spent, c.Impressions, c.Rows,
				c.ROI, c.ROIDefined, string(c.Recommendation),
				c.BudgetCut, c.BudgetGain, c.NewBudget, c.Explanation,
			)
		}
		sql, args, err = q.ToSql()
		if err != nil {
			return err
		}
		if _, err = tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("insert plan_campaigns: %w", err)
		}
	}
	return nil
}

// GetPlan returns a plan by id, or nil when it does not exist.
func (r *PlanRepository) GetPlan(ctx context.Context, id uuid.UUID) (*domain.Plan, error) {
	sql, args, err := r.qb.Select(append([]string{"created_at"}, runColumns...)...).
		From("plan_runs").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	plan := domain.Plan{ID: id}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&plan.CreatedAt,
		&plan.ReductionFactor, &plan.LowerQuantile, &plan.UpperQuantile, &plan.ZeroSpendPolicy,
		&plan.Thresholds.Low, &plan.Thresholds.High, &plan.Pool, &plan.PoolApplied,
		&plan.TotalSpent, &plan.TotalNewBudget,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	sql, args, err = r.qb.Select(campaignColumns...).
		From("plan_campaigns").
		Where(sq.Eq{"run_id": id}).
		OrderBy("rank").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	plan.Campaigns, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignRecord, error) {
		var (
			c   domain.CampaignRecord
			rec string
		)
		err := row.Scan(
			&c.CampaignID, &c.ObservedRate, &c.PredictedRate, &c.Spent, &c.Impressions, &c.Rows,
			&c.ROI, &c.ROIDefined, &rec, &c.BudgetCut, &c.BudgetGain, &c.NewBudget, &c.Explanation,
		)
		c.Recommendation = domain.Recommendation(rec)
		return c, err
	})
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// LatestPlan returns the most recent plan, or nil when none exists.
func (r *PlanRepository) LatestPlan(ctx context.Context) (*domain.Plan, error) {
	sql, args, err := r.qb.Select("id::text").
		From("plan_runs").
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}
	var raw string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse plan id: %w", err)
	}
	return r.GetPlan(ctx, id)
}

func dateArg(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: !t.IsZero()}
}

func parseDate(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
