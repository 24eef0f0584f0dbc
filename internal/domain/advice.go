package domain

import "fmt"

// Direction tells whether weight should be gained, lost, or kept
type Direction string

const (
	DirectionNone Direction = "none"
	DirectionGain Direction = "gain"
	DirectionLose Direction = "lose"
)

// MessageKind selects the advice message shown with a result
type MessageKind string

const (
	MessageCongratulate      MessageKind = "congratulate"
	MessageSuggestGain       MessageKind = "suggest_gain"
	MessageSuggestLose       MessageKind = "suggest_lose"
	MessageSuggestLoseUrgent MessageKind = "suggest_lose_urgent"
)

// Advice is the recommended adjustment for a classified weight
type Advice struct {
	DeltaKg   float64
	Direction Direction
	Message   MessageKind
}

// Advise derives the gain/loss recommendation from the category and the
// healthy weight range. DeltaKg is the distance to the nearest edge of the
// range and is never negative.
func Advise(weightKg float64, category Category, healthyMinKg, healthyMaxKg float64) Advice {
	switch category {
	case CategoryUnderweight:
		return Advice{
			DeltaKg:   nonNegative(roundTo(healthyMinKg-weightKg, 1)),
			Direction: DirectionGain,
			Message:   MessageSuggestGain,
		}
	case CategoryOverweight:
		return Advice{
			DeltaKg:   nonNegative(roundTo(weightKg-healthyMaxKg, 1)),
			Direction: DirectionLose,
			Message:   MessageSuggestLose,
		}
	case CategoryObese:
		return Advice{
			DeltaKg:   nonNegative(roundTo(weightKg-healthyMaxKg, 1)),
			Direction: DirectionLose,
			Message:   MessageSuggestLoseUrgent,
		}
	default:
		return Advice{Direction: DirectionNone, Message: MessageCongratulate}
	}
}

// Text renders the advice sentence for a delta in kilograms.
// A zero delta outside the healthy category means the weight sits on the
// rounded edge of the range.
func (k MessageKind) Text(deltaKg float64) string {
	if deltaKg == 0 {
		switch k {
		case MessageSuggestGain:
			return "You are right at the lower edge of the healthy range for your age group. " +
				"Gaining a little weight would bring you into it."
		case MessageSuggestLose, MessageSuggestLoseUrgent:
			return "You are right at the upper edge of the healthy range for your age group. " +
				"Losing a little weight would bring you into it."
		}
	}

	switch k {
	case MessageSuggestGain:
		return fmt.Sprintf("Consider gaining about %.1f kg to reach a healthy weight for your age group.", deltaKg)
	case MessageSuggestLose:
		return fmt.Sprintf("Consider losing about %.1f kg to reach a healthy weight for your age group.", deltaKg)
	case MessageSuggestLoseUrgent:
		return fmt.Sprintf("Losing about %.1f kg would bring you into the healthy range. "+
			"We recommend consulting a healthcare professional for a personalized plan.", deltaKg)
	default:
		return "Great job! Your weight is within the healthy range for your age group."
	}
}

// nonNegative clamps rounding noise at the range edge to zero.
// It also turns a negative zero into a positive one.
func nonNegative(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return v
}
