package configs

import (
	"mesa-roi/internal/core/planner"
)

// Planner holds the budget reallocation settings. See planner.Options for
// the meaning of each field.
type Planner struct {
	ReductionFactor float64 `env:"REDUCTION_FACTOR" envDefault:"0.3"`
	LowerQuantile   float64 `env:"LOWER_QUANTILE" envDefault:"0.25"`
	UpperQuantile   float64 `env:"UPPER_QUANTILE" envDefault:"0.75"`
	// ZeroSpendPolicy is "exclude" or "zero".
	ZeroSpendPolicy string `env:"ZERO_SPEND_POLICY" envDefault:"exclude"`
}

// Options converts the section into validated planner options.
func (c Planner) Options() (planner.Options, error) {
	policy, err := planner.ParseZeroSpendPolicy(c.ZeroSpendPolicy)
	if err != nil {
		return planner.Options{}, err
	}
	opts := planner.Options{
		ReductionFactor: c.ReductionFactor,
		LowerQuantile:   c.LowerQuantile,
		UpperQuantile:   c.UpperQuantile,
		ZeroSpend:       policy,
	}
	if err = opts.Validate(); err != nil {
		return planner.Options{}, err
	}
	return opts, nil
}
