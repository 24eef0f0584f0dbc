package domain

import (
	"math"
	"testing"
)

func TestAgeGroupOf(t *testing.T) {
	tests := []struct {
		age  int
		want AgeGroup
	}{
		{age: 2, want: AgeGroupChild},
		{age: 8, want: AgeGroupChild},
		{age: 17, want: AgeGroupChild},
		{age: 18, want: AgeGroupAdult},
		{age: 30, want: AgeGroupAdult},
		{age: 64, want: AgeGroupAdult},
		{age: 65, want: AgeGroupSenior},
		{age: 120, want: AgeGroupSenior},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			if got := AgeGroupOf(tt.age); got != tt.want {
				t.Errorf("AgeGroupOf(%d) = %v, want %v", tt.age, got, tt.want)
			}
		})
	}
}

func TestAgeGroupOf_Partition(t *testing.T) {
	counts := map[AgeGroup]int{}
	for age := MinAgeYears; age <= MaxAgeYears; age++ {
		g := AgeGroupOf(age)
		switch g {
		case AgeGroupChild, AgeGroupAdult, AgeGroupSenior:
			counts[g]++
		default:
			t.Fatalf("age %d mapped to unknown group %q", age, g)
		}
	}

	if counts[AgeGroupChild] != 16 || counts[AgeGroupAdult] != 47 || counts[AgeGroupSenior] != 56 {
		t.Errorf("unexpected partition sizes: %v", counts)
	}
}

func TestAgeGroup_Bounds(t *testing.T) {
	tests := []struct {
		group     AgeGroup
		low, high float64
	}{
		{AgeGroupChild, 14, 21},
		{AgeGroupAdult, 18.5, 24.9},
		{AgeGroupSenior, 22, 27},
	}

	for _, tt := range tests {
		low, high := tt.group.Bounds()
		if low != tt.low || high != tt.high {
			t.Errorf("%s bounds = [%v, %v], want [%v, %v]", tt.group, low, high, tt.low, tt.high)
		}
	}
}

func TestClassify_AdultBoundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want Category
	}{
		{bmi: 18.49, want: CategoryUnderweight},
		{bmi: 18.5, want: CategoryNormal},
		{bmi: 24.9, want: CategoryNormal},
		{bmi: 24.91, want: CategoryOverweight},
		{bmi: 29.89, want: CategoryOverweight},
		// high+5 itself is on the obese side
		{bmi: 29.9, want: CategoryObese},
		{bmi: 29.91, want: CategoryObese},
		{bmi: 45, want: CategoryObese},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			if got := Classify(tt.bmi, AgeGroupAdult); got != tt.want {
				t.Errorf("Classify(%v, Adult) = %v, want %v", tt.bmi, got, tt.want)
			}
		})
	}
}

func TestClassify_ObeseOffsetIsConstant(t *testing.T) {
	tests := []struct {
		group AgeGroup
		bmi   float64
		want  Category
	}{
		{AgeGroupChild, 25.99, CategoryOverweight},
		{AgeGroupChild, 26, CategoryObese},
		{AgeGroupSenior, 31.99, CategoryOverweight},
		{AgeGroupSenior, 32, CategoryObese},
		{AgeGroupChild, 13.99, CategoryUnderweight},
		{AgeGroupSenior, 21.99, CategoryUnderweight},
		{AgeGroupSenior, 22, CategoryNormal},
	}

	for _, tt := range tests {
		if got := Classify(tt.bmi, tt.group); got != tt.want {
			t.Errorf("Classify(%v, %s) = %v, want %v", tt.bmi, tt.group, got, tt.want)
		}
	}
}

func TestEvaluate_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		m    Measurement
		want AdviceResult
	}{
		{
			name: "adult normal",
			m:    Measurement{WeightKg: 70, HeightCm: 175, AgeYears: 30},
			want: AdviceResult{
				BMI:          22.86,
				Category:     CategoryNormal,
				AgeGroup:     AgeGroupAdult,
				HealthyMinKg: 56.7,
				HealthyMaxKg: 76.3,
				DeltaKg:      0,
				Direction:    DirectionNone,
				Message:      MessageCongratulate,
			},
		},
		{
			name: "adult underweight",
			m:    Measurement{WeightKg: 45, HeightCm: 170, AgeYears: 25},
			want: AdviceResult{
				BMI:          15.57,
				Category:     CategoryUnderweight,
				AgeGroup:     AgeGroupAdult,
				HealthyMinKg: 53.5,
				HealthyMaxKg: 72,
				DeltaKg:      8.5,
				Direction:    DirectionGain,
				Message:      MessageSuggestGain,
			},
		},
		{
			name: "senior overweight",
			m:    Measurement{WeightKg: 90, HeightCm: 170, AgeYears: 70},
			want: AdviceResult{
				BMI:          31.14,
				Category:     CategoryOverweight,
				AgeGroup:     AgeGroupSenior,
				HealthyMinKg: 63.6,
				HealthyMaxKg: 78,
				DeltaKg:      12,
				Direction:    DirectionLose,
				Message:      MessageSuggestLose,
			},
		},
		{
			name: "child normal",
			m:    Measurement{WeightKg: 20, HeightCm: 110, AgeYears: 8},
			want: AdviceResult{
				BMI:          16.53,
				Category:     CategoryNormal,
				AgeGroup:     AgeGroupChild,
				HealthyMinKg: 16.9,
				HealthyMaxKg: 25.4,
				DeltaKg:      0,
				Direction:    DirectionNone,
				Message:      MessageCongratulate,
			},
		},
		{
			name: "adult obese",
			m:    Measurement{WeightKg: 120, HeightCm: 175, AgeYears: 40},
			want: AdviceResult{
				BMI:          39.18,
				Category:     CategoryObese,
				AgeGroup:     AgeGroupAdult,
				HealthyMinKg: 56.7,
				HealthyMaxKg: 76.3,
				DeltaKg:      43.7,
				Direction:    DirectionLose,
				Message:      MessageSuggestLoseUrgent,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.m)
			if got != tt.want {
				t.Errorf("Evaluate(%+v)\n got  %+v\n want %+v", tt.m, got, tt.want)
			}
		})
	}
}

func TestComputeBMI(t *testing.T) {
	tests := []struct {
		weight, height float64
		want           float64
	}{
		{70, 175, 22.86},
		{45, 170, 15.57},
		{90, 170, 31.14},
		{20, 110, 16.53},
		{100, 100, 100},
	}

	for _, tt := range tests {
		if got := ComputeBMI(tt.weight, tt.height); got != tt.want {
			t.Errorf("ComputeBMI(%v, %v) = %v, want %v", tt.weight, tt.height, got, tt.want)
		}
	}
}

func TestRoundTo_HalfUp(t *testing.T) {
	tests := []struct {
		v      float64
		places int
		want   float64
	}{
		{2.25, 1, 2.3},
		{2.24, 1, 2.2},
		{0.125, 2, 0.13},
		{8.5, 1, 8.5},
		{-0.04, 1, 0},
		{math.MaxFloat64, 2, math.MaxFloat64},
	}

	for _, tt := range tests {
		if got := roundTo(tt.v, tt.places); got != tt.want {
			t.Errorf("roundTo(%v, %d) = %v, want %v", tt.v, tt.places, got, tt.want)
		}
	}
}

func TestAdvise_NeverNegative(t *testing.T) {
	// A weight just past the rounded edge must not produce "-0.0"
	a := Advise(53.52, CategoryUnderweight, 53.5, 72)
	if a.DeltaKg < 0 || math.Signbit(a.DeltaKg) {
		t.Errorf("expected non-negative delta, got %v", a.DeltaKg)
	}

	a = Advise(78.01, CategoryOverweight, 63.6, 78.0)
	if a.DeltaKg != 0 || math.Signbit(a.DeltaKg) {
		t.Errorf("expected zero delta, got %v", a.DeltaKg)
	}
}

func TestAdviceResult_ScalePosition(t *testing.T) {
	tests := []struct {
		bmi  float64
		want float64
	}{
		{bmi: 0, want: 0},
		{bmi: 20, want: 50},
		{bmi: 40, want: 100},
		{bmi: 55, want: 100},
	}

	for _, tt := range tests {
		r := AdviceResult{BMI: tt.bmi}
		if got := r.ScalePosition(); got != tt.want {
			t.Errorf("ScalePosition() for bmi %v = %v, want %v", tt.bmi, got, tt.want)
		}
	}
}

func TestAdviceResult_Text(t *testing.T) {
	r := Evaluate(Measurement{WeightKg: 45, HeightCm: 170, AgeYears: 25})
	want := "Consider gaining about 8.5 kg to reach a healthy weight for your age group."
	if got := r.AdviceText(); got != want {
		t.Errorf("AdviceText() = %q, want %q", got, want)
	}

	child := Evaluate(Measurement{WeightKg: 20, HeightCm: 110, AgeYears: 8})
	if child.AgeGroup.Disclaimer() == "" {
		t.Error("expected a disclaimer for child results")
	}
	if r.AgeGroup.Disclaimer() != "" {
		t.Error("expected no disclaimer for adult results")
	}
}

func TestCategory_Order(t *testing.T) {
	cats := []Category{CategoryUnderweight, CategoryNormal, CategoryOverweight, CategoryObese}
	for i, c := range cats {
		if c.Order() != i+1 {
			t.Errorf("%s.Order() = %d, want %d", c, c.Order(), i+1)
		}
		if c.Color() == "" {
			t.Errorf("%s has no color", c)
		}
	}
}

func TestEvaluate_OnRoundedRangeEdge(t *testing.T) {
	tests := []struct {
		name     string
		m        Measurement
		category Category
		want     string
	}{
		{
			name:     "child at healthy minimum",
			m:        Measurement{WeightKg: 14, HeightCm: 100.1, AgeYears: 8},
			category: CategoryUnderweight,
			want: "You are right at the lower edge of the healthy range for your age group. " +
				"Gaining a little weight would bring you into it.",
		},
		{
			name:     "adult at healthy maximum",
			m:        Measurement{WeightKg: 60, HeightCm: 155.2, AgeYears: 30},
			category: CategoryOverweight,
			want: "You are right at the upper edge of the healthy range for your age group. " +
				"Losing a little weight would bring you into it.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Evaluate(tt.m)
			if r.Category != tt.category {
				t.Fatalf("expected %s, got %s (bmi %v)", tt.category, r.Category, r.BMI)
			}
			if r.DeltaKg != 0 {
				t.Fatalf("expected zero delta, got %v", r.DeltaKg)
			}
			if got := r.AdviceText(); got != tt.want {
				t.Errorf("AdviceText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvaluate_MatchesComponentFunctions(t *testing.T) {
	m := Measurement{WeightKg: 82.4, HeightCm: 175, AgeYears: 52}
	if m.HeightM() != 1.75 {
		t.Fatalf("HeightM() = %v, want 1.75", m.HeightM())
	}

	r := Evaluate(m)
	if bmi := ComputeBMI(m.WeightKg, m.HeightCm); r.BMI != bmi {
		t.Errorf("Evaluate BMI %v differs from ComputeBMI %v", r.BMI, bmi)
	}
	minKg, maxKg := HealthyRange(m.HeightCm, r.AgeGroup)
	if r.HealthyMinKg != minKg || r.HealthyMaxKg != maxKg {
		t.Errorf("Evaluate range [%v, %v] differs from HealthyRange [%v, %v]",
			r.HealthyMinKg, r.HealthyMaxKg, minKg, maxKg)
	}
}
