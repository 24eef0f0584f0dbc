package domain

// AgeGroup selects the healthy BMI band used for a person
type AgeGroup string

const (
	AgeGroupChild  AgeGroup = "Child"
	AgeGroupAdult  AgeGroup = "Adult"
	AgeGroupSenior AgeGroup = "Senior"
)

// Age group boundaries, inclusive
const (
	childMaxAge = 17
	adultMaxAge = 64
)

// AgeGroupOf maps a validated age to its group.
// Business logic: 2-17 Child, 18-64 Adult, 65 and over Senior
func AgeGroupOf(ageYears int) AgeGroup {
	switch {
	case ageYears <= childMaxAge:
		return AgeGroupChild
	case ageYears <= adultMaxAge:
		return AgeGroupAdult
	default:
		return AgeGroupSenior
	}
}

// Bounds returns the healthy BMI band [low, high] for the group
func (g AgeGroup) Bounds() (low, high float64) {
	switch g {
	case AgeGroupChild:
		return 14, 21
	case AgeGroupSenior:
		return 22, 27
	default:
		return 18.5, 24.9
	}
}

// Label returns a display label including the age span
func (g AgeGroup) Label() string {
	switch g {
	case AgeGroupChild:
		return "Child (2-17)"
	case AgeGroupSenior:
		return "Senior (65+)"
	default:
		return "Adult (18-64)"
	}
}

// Disclaimer returns a caveat to show alongside results for the group.
// Child bands are a simplified linear stand-in for percentile growth charts.
func (g AgeGroup) Disclaimer() string {
	if g == AgeGroupChild {
		return "BMI ranges for children and teens are simplified approximations. " +
			"Growth charts based on age and sex percentiles give a more accurate picture; " +
			"please consult a pediatrician."
	}
	return ""
}
