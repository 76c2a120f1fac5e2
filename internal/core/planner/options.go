package planner

import (
	"fmt"
	"strings"

	"mesa-roi/internal/core/domain"
)

// ZeroSpendPolicy decides how campaigns with no spend, whose ROI is
// undefined, take part in classification.
type ZeroSpendPolicy string

const (
	// ZeroSpendExclude leaves the ROI undefined, keeps the campaign out of
	// the quantiles and always classifies it as monitor.
	ZeroSpendExclude ZeroSpendPolicy = "exclude"
	// ZeroSpendAsZero treats the ROI as 0 and ranks it like any other value.
	ZeroSpendAsZero ZeroSpendPolicy = "zero"
)

// ParseZeroSpendPolicy accepts "exclude" or "zero" in any case.
func ParseZeroSpendPolicy(s string) (ZeroSpendPolicy, error) {
	switch p := ZeroSpendPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case ZeroSpendExclude, ZeroSpendAsZero:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown zero spend policy %q", domain.ErrInvalidConfig, s)
	}
}

// Options configures a planning run.
type Options struct {
	// ReductionFactor is the share of a reduce campaign's spend moved into
	// the reallocation pool. Must be in (0,1].
	ReductionFactor float64
	// LowerQuantile and UpperQuantile select the ROI thresholds below and
	// above which campaigns are reduced or increased.
	LowerQuantile float64
	UpperQuantile float64
	ZeroSpend     ZeroSpendPolicy
}

// DefaultOptions returns a 30% reduction with quartile thresholds.
func DefaultOptions() Options {
	return Options{
		ReductionFactor: 0.3,
		LowerQuantile:   0.25,
		UpperQuantile:   0.75,
		ZeroSpend:       ZeroSpendExclude,
	}
}

// Validate reports settings that would make the plan meaningless.
func (o Options) Validate() error {
	if !(o.ReductionFactor > 0 && o.ReductionFactor <= 1) {
		return fmt.Errorf("%w: reduction factor must be in (0,1], got %v", domain.ErrInvalidConfig, o.ReductionFactor)
	}
	if o.LowerQuantile < 0 || o.UpperQuantile > 1 || !(o.LowerQuantile < o.UpperQuantile) {
		return fmt.Errorf("%w: quantiles must satisfy 0 <= lower < upper <= 1, got %v/%v",
			domain.ErrInvalidConfig, o.LowerQuantile, o.UpperQuantile)
	}
	if _, err := ParseZeroSpendPolicy(string(o.ZeroSpend)); err != nil {
		return err
	}
	return nil
}
