package roi

import (
	"math"
	"testing"
)

func TestEarningsProjection(t *testing.T) {
	tests := []struct {
		name       string
		year1      float64
		growthRate float64
		expected   Projection
	}{
		{
			name:       "Default growth",
			year1:      50000,
			growthRate: 0.03,
			expected:   Projection{Year1: 50000, Year3: 53045.0, Year5: 56275.0},
		},
		{
			name:       "No growth",
			year1:      40000,
			growthRate: 0,
			expected:   Projection{Year1: 40000, Year3: 40000, Year5: 40000},
		},
		{
			name:     "Zero salary",
			year1:    0,
			expected: Projection{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EarningsProjection(tt.year1, tt.growthRate)
			if got.Year1 != tt.expected.Year1 {
				t.Errorf("Year1 = %.2f, expected %.2f", got.Year1, tt.expected.Year1)
			}
			if math.Abs(got.Year3-tt.expected.Year3) > 1 {
				t.Errorf("Year3 = %.2f, expected %.2f", got.Year3, tt.expected.Year3)
			}
			if math.Abs(got.Year5-tt.expected.Year5) > 1 {
				t.Errorf("Year5 = %.2f, expected %.2f", got.Year5, tt.expected.Year5)
			}
		})
	}
}

func TestDefaultEarningsAssumption(t *testing.T) {
	got := DefaultEarningsAssumption(50000).Project()
	if math.Abs(got.Year5-56275.44) > 0.01 {
		t.Errorf("Year5 = %.2f, expected 56275.44", got.Year5)
	}
}

func TestMonthlyTakeHome(t *testing.T) {
	tests := []struct {
		name     string
		salary   float64
		taxRate  float64
		expected float64
	}{
		{"Default tax", 50000, 0.22, 3250},
		{"No tax", 60000, 0, 5000},
		{"No salary", 0, 0.22, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthlyTakeHome(tt.salary, tt.taxRate); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("MonthlyTakeHome() = %.2f, expected %.2f", got, tt.expected)
			}
		})
	}
}
