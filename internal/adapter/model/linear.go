// Package model provides click rate predictors implementing port.Predictor.
package model

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"mesa-roi/internal/config/configs"
	"mesa-roi/internal/core/domain"
	"mesa-roi/internal/core/features"
	"mesa-roi/internal/core/port"
)

// LinearModel predicts intercept + Σ weight*feature, optionally clamped to
// [Min, Max]. Features absent from a row count as zero.
type LinearModel struct {
	Intercept float64            `yaml:"intercept"`
	Weights   map[string]float64 `yaml:"weights"`
	Min       *float64           `yaml:"min"`
	Max       *float64           `yaml:"max"`
}

// Predict implements port.Predictor.
func (m *LinearModel) Predict(f domain.Features) (float64, error) {
	y := m.Intercept
	// fixed order keeps the float sum reproducible
	for _, name := range features.Names {
		if w, ok := m.Weights[name]; ok {
			y += w * f[name]
		}
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("non-finite prediction %v", y)
	}
	if m.Min != nil && y < *m.Min {
		y = *m.Min
	}
	if m.Max != nil && y > *m.Max {
		y = *m.Max
	}
	return y, nil
}

// DecodeLinear reads a YAML model definition. Weights referring to
// features the encoder does not produce are rejected.
func DecodeLinear(r io.Reader) (*LinearModel, error) {
	var m LinearModel
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: decode model: %v", domain.ErrInvalidConfig, err)
	}
	var unknown []string
	for name := range m.Weights {
		if !features.Known(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: model references unknown features %v", domain.ErrInvalidConfig, unknown)
	}
	if m.Min != nil && m.Max != nil && *m.Min > *m.Max {
		return nil, fmt.Errorf("%w: model min %v above max %v", domain.ErrInvalidConfig, *m.Min, *m.Max)
	}
	return &m, nil
}

// LoadLinear reads a YAML model definition from path.
func LoadLinear(path string) (*LinearModel, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model: %w", err)
	}
	defer file.Close()
	return DecodeLinear(file)
}

// Constant predicts the same rate for every row.
type Constant float64

// Predict implements port.Predictor.
func (c Constant) Predict(domain.Features) (float64, error) {
	return float64(c), nil
}

// New returns the predictor selected by cfg.
func New(cfg configs.Model) (port.Predictor, error) {
	if cfg.Path == "" {
		return Constant(cfg.Baseline), nil
	}
	return LoadLinear(cfg.Path)
}
