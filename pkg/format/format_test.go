package format

import (
	"math"
	"testing"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Zero", 0, "$0"},
		{"Small", 999, "$999"},
		{"Thousands", 26400, "$26,400"},
		{"Millions", 1234567.89, "$1,234,568"},
		{"Rounds half to even down", 2.5, "$2"},
		{"Rounds half to even up", 3.5, "$4"},
		{"Negative", -1234.4, "-$1,234"},
		{"Infinite", math.Inf(1), "$-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "0.0%"},
		{35.2627, "35.3%"},
		{-14.1723, "-14.2%"},
		{100, "100.0%"},
	}

	for _, tt := range tests {
		if got := Percentage(tt.value); got != tt.expected {
			t.Errorf("Percentage(%v) = %q, expected %q", tt.value, got, tt.expected)
		}
	}
}

func TestYears(t *testing.T) {
	tests := []struct {
		years    float64
		expected string
	}{
		{0, "0.0 years"},
		{21.12, "21.1 years"},
		{50, "50.0 years"},
		{math.Inf(1), "Never"},
	}

	for _, tt := range tests {
		if got := Years(tt.years); got != tt.expected {
			t.Errorf("Years(%v) = %q, expected %q", tt.years, got, tt.expected)
		}
	}
}

func TestScore(t *testing.T) {
	if got := Score(39.66); got != "40/100" {
		t.Errorf("Score() = %q, expected 40/100", got)
	}
}
