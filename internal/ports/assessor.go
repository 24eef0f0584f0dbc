package ports

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/AnjanaVP231/BMI-Calculator/internal/domain"
)

// MeasurementAssessor turns raw user input into advice.
// Transport adapters depend on this port rather than on the domain directly.
type MeasurementAssessor interface {
	// Assess validates the input and, only if every field is valid, evaluates it
	Assess(ctx context.Context, raw domain.RawMeasurement) (*domain.AdviceResult, error)

	// Check validates the input without evaluating it
	Check(ctx context.Context, raw domain.RawMeasurement) error
}

// Assessor runs the validator and the engine
type Assessor struct{}

// NewAssessor creates a new assessor
func NewAssessor() *Assessor {
	return &Assessor{}
}

// Assess returns domain.ValidationErrors when any field is invalid.
// There is no partial result: either all fields pass or nothing is evaluated.
func (a *Assessor) Assess(ctx context.Context, raw domain.RawMeasurement) (*domain.AdviceResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := domain.Validate(raw)
	if err != nil {
		log.Debug().Err(err).Msg("measurement rejected")
		return nil, err
	}

	result := domain.Evaluate(m)

	log.Info().
		Float64("bmi", result.BMI).
		Str("category", string(result.Category)).
		Str("age_group", string(result.AgeGroup)).
		Str("direction", string(result.Direction)).
		Float64("delta_kg", result.DeltaKg).
		Msg("evaluated measurement")

	return &result, nil
}

// Check reports field errors for live feedback while the user types
func (a *Assessor) Check(ctx context.Context, raw domain.RawMeasurement) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := domain.Validate(raw)
	return err
}
