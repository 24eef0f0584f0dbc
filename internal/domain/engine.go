package domain

import (
	"fmt"
	"math"
	"strings"
)

// ScaleMaxBMI is the top of the BMI scale bar shown to users
const ScaleMaxBMI = 40.0

// AdviceResult is the full outcome of one evaluation.
// This is pure domain logic - built fresh on every call, never shared.
type AdviceResult struct {
	BMI          float64
	Category     Category
	AgeGroup     AgeGroup
	HealthyMinKg float64
	HealthyMaxKg float64
	DeltaKg      float64
	Direction    Direction
	Message      MessageKind
}

// Evaluate classifies a validated measurement and derives the advice.
// It never fails; callers must run Validate first.
func Evaluate(m Measurement) AdviceResult {
	group := AgeGroupOf(m.AgeYears)
	h := m.HeightM()
	bmi := bmiAt(m.WeightKg, h)
	category := Classify(bmi, group)
	minKg, maxKg := healthyRangeAt(h, group)
	advice := Advise(m.WeightKg, category, minKg, maxKg)

	return AdviceResult{
		BMI:          bmi,
		Category:     category,
		AgeGroup:     group,
		HealthyMinKg: minKg,
		HealthyMaxKg: maxKg,
		DeltaKg:      advice.DeltaKg,
		Direction:    advice.Direction,
		Message:      advice.Message,
	}
}

// ComputeBMI returns weight / height_m^2 rounded to 2 decimals
func ComputeBMI(weightKg, heightCm float64) float64 {
	return bmiAt(weightKg, Measurement{HeightCm: heightCm}.HeightM())
}

// HealthyRange returns the weight range, in kg rounded to 1 decimal, whose
// BMI falls inside the healthy band of the group at the given height.
func HealthyRange(heightCm float64, group AgeGroup) (minKg, maxKg float64) {
	return healthyRangeAt(Measurement{HeightCm: heightCm}.HeightM(), group)
}

func bmiAt(weightKg, heightM float64) float64 {
	return roundTo(weightKg/(heightM*heightM), 2)
}

func healthyRangeAt(heightM float64, group AgeGroup) (minKg, maxKg float64) {
	low, high := group.Bounds()
	return roundTo(low*heightM*heightM, 1), roundTo(high*heightM*heightM, 1)
}

// ScalePosition returns where the BMI sits on the 0-40 scale bar,
// as a percentage clamped to [0, 100].
func (r AdviceResult) ScalePosition() float64 {
	pos := r.BMI / ScaleMaxBMI * 100
	return math.Max(0, math.Min(100, pos))
}

// AdviceText returns the advice sentence for the result
func (r AdviceResult) AdviceText() string {
	return r.Message.Text(r.DeltaKg)
}

// Summary renders the result as plain text
func (r AdviceResult) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "BMI:          %.2f\n", r.BMI)
	fmt.Fprintf(&b, "Category:     %s\n", r.Category)
	fmt.Fprintf(&b, "Age group:    %s\n", r.AgeGroup.Label())
	fmt.Fprintf(&b, "Healthy:      %.1f - %.1f kg\n", r.HealthyMinKg, r.HealthyMaxKg)
	fmt.Fprintf(&b, "Advice:       %s\n", r.AdviceText())
	if d := r.AgeGroup.Disclaimer(); d != "" {
		fmt.Fprintf(&b, "Note:         %s\n", d)
	}
	return b.String()
}

// roundTo rounds half-up to the given number of decimal places
func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	// magnitudes this large have no fractional digits left to round
	if math.IsInf(v*p, 0) {
		return v
	}
	return math.Floor(v*p+0.5) / p
}
