package roi

import (
	"math"
	"testing"
)

func TestComfortIndex(t *testing.T) {
	tests := []struct {
		name     string
		factors  ComfortFactors
		expected float64
	}{
		{"Best case", ComfortFactors{DTI: 0, GraduationRate: 1, ROI: 100}, 100},
		{"Worst case", ComfortFactors{DTI: 100, GraduationRate: 0, ROI: -100}, 0},
		{"DTI of fifty scores zero", ComfortFactors{DTI: 50, GraduationRate: 0, ROI: -100}, 0},
		{"Middle of the road", ComfortFactors{DTI: 20, GraduationRate: 0.6, ROI: 0}, 57},
		{"ROI saturates above one hundred", ComfortFactors{DTI: 0, GraduationRate: 0, ROI: 500}, 70},
		{"ROI saturates below minus one hundred", ComfortFactors{DTI: 0, GraduationRate: 0, ROI: -500}, 40},
		{"Graduation rate above one is clamped overall", ComfortFactors{DTI: 0, GraduationRate: 2, ROI: 100}, 100},
		{"Negative graduation rate is clamped overall", ComfortFactors{DTI: 100, GraduationRate: -1, ROI: -100}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.factors.Score()
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Score() = %v, expected %v", got, tt.expected)
			}
			if got < 0 || got > 100 {
				t.Errorf("Score() = %v outside [0, 100]", got)
			}
		})
	}
}

func TestRatings(t *testing.T) {
	if RateDTI(10) != RatingLow || RateDTI(30) != RatingModerate || RateDTI(36) != RatingHigh {
		t.Error("unexpected DTI rating bands")
	}
	if RateGraduation(0.85) != RatingHigh || RateGraduation(0.6) != RatingModerate || RateGraduation(0.3) != RatingLow {
		t.Error("unexpected graduation rating bands")
	}
	if RateComfort(70) != RatingExcellent || RateComfort(55) != RatingGood || RateComfort(10) != RatingPoor {
		t.Error("unexpected comfort rating bands")
	}
}
