package domain

// Category is the BMI classification label
type Category string

const (
	CategoryUnderweight Category = "Underweight"
	CategoryNormal      Category = "Normal"
	CategoryOverweight  Category = "Overweight"
	CategoryObese       Category = "Obese"
)

// obeseOffset is added to the top of the healthy band to get the obese
// threshold. It is the same literal for every age group.
const obeseOffset = 5.0

// Classify returns the category of a rounded BMI within an age group.
//
//	bmi <  low              Underweight
//	low <= bmi <= high      Normal
//	high < bmi < high+5     Overweight
//	bmi >= high+5           Obese
func Classify(bmi float64, group AgeGroup) Category {
	low, high := group.Bounds()
	switch {
	case bmi < low:
		return CategoryUnderweight
	case bmi <= high:
		return CategoryNormal
	case bmi < high+obeseOffset:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

// Color returns the badge color for the category
func (c Category) Color() string {
	switch c {
	case CategoryUnderweight:
		return "#3498db"
	case CategoryNormal:
		return "#2ecc71"
	case CategoryOverweight:
		return "#f39c12"
	default:
		return "#e74c3c"
	}
}

// Order returns the position of the category on the BMI scale, starting at 1
func (c Category) Order() int {
	switch c {
	case CategoryUnderweight:
		return 1
	case CategoryNormal:
		return 2
	case CategoryOverweight:
		return 3
	default:
		return 4
	}
}
