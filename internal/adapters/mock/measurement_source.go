package mock

import (
	"math/rand"
	"strconv"

	"github.com/AnjanaVP231/BMI-Calculator/internal/domain"
)

// MeasurementSource produces random but valid raw measurements.
// Useful for exercising the engine over its whole input domain.
type MeasurementSource struct {
	rng *rand.Rand
}

// NewMeasurementSource creates a source; the same seed yields the same sequence
func NewMeasurementSource(seed int64) *MeasurementSource {
	return &MeasurementSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NextRaw returns the next measurement as a user would type it
func (s *MeasurementSource) NextRaw() domain.RawMeasurement {
	m := s.Next()
	return domain.RawMeasurement{
		Weight: strconv.FormatFloat(m.WeightKg, 'f', -1, 64),
		Height: strconv.FormatFloat(m.HeightCm, 'f', -1, 64),
		Age:    strconv.Itoa(m.AgeYears),
	}
}

// Next returns a measurement inside the validated domain.
// Weight and height carry one decimal, like typical form input.
func (s *MeasurementSource) Next() domain.Measurement {
	return domain.Measurement{
		WeightKg: s.tenths(domain.MaxWeightKg),
		HeightCm: s.tenths(domain.MaxHeightCm),
		AgeYears: domain.MinAgeYears + s.rng.Intn(domain.MaxAgeYears-domain.MinAgeYears+1),
	}
}

// tenths returns a value in (0, limit] in steps of 0.1
func (s *MeasurementSource) tenths(limit float64) float64 {
	steps := int(limit * 10)
	return float64(1+s.rng.Intn(steps)) / 10
}
