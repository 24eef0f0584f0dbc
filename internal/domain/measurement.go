package domain

// Input limits for a single evaluation
const (
	MaxWeightKg = 500.0
	MaxHeightCm = 300.0
	MinAgeYears = 2
	MaxAgeYears = 120
)

// RawMeasurement holds the three fields exactly as a user typed them
type RawMeasurement struct {
	Weight string
	Height string
	Age    string
}

// Measurement is a validated body measurement.
// Weight is in kilograms, height in centimeters, age in whole years.
type Measurement struct {
	WeightKg float64
	HeightCm float64
	AgeYears int
}

// HeightM returns the height in meters
func (m Measurement) HeightM() float64 {
	return m.HeightCm / 100
}
