package port

import "mesa-roi/internal/core/domain"

// Predictor estimates the click rate of a single encoded row.
type Predictor interface {
	Predict(features domain.Features) (float64, error)
}
