package roi

import (
	"math"
	"testing"
)

func TestCumulativeDebt(t *testing.T) {
	tests := []struct {
		name       string
		yearlyCost float64
		aid        AidPackage
		years      int
		expected   float64
	}{
		{
			name:       "Aid covers cost",
			yearlyCost: 20000,
			aid:        AidPackage{Grants: 10000, Scholarships: 5000, WorkStudy: 3000, FamilyContribution: 2000},
			years:      4,
			expected:   0,
		},
		{
			name:       "Aid covers cost over six years",
			yearlyCost: 20000,
			aid:        AidPackage{Grants: 20000},
			years:      6,
			expected:   0,
		},
		{
			name:       "Partial aid over four years",
			yearlyCost: 20000,
			aid:        AidPackage{Scholarships: 5000},
			years:      4,
			expected:   60000,
		},
		{
			name:       "Aid above cost does not go negative",
			yearlyCost: 10000,
			aid:        AidPackage{Grants: 15000},
			years:      4,
			expected:   0,
		},
		{
			name:       "No aid",
			yearlyCost: 26400,
			years:      4,
			expected:   105600,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.aid.Debt(tt.yearlyCost, tt.years)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Debt() = %.2f, expected %.2f", got, tt.expected)
			}
			direct := CumulativeDebt(tt.yearlyCost, tt.aid.Grants, tt.aid.Scholarships, tt.aid.WorkStudy, tt.aid.FamilyContribution, tt.years)
			if direct != got {
				t.Errorf("CumulativeDebt() = %.2f, method returned %.2f", direct, got)
			}
		})
	}
}

func TestAidPackageTotal(t *testing.T) {
	aid := AidPackage{Grants: 1, Scholarships: 2, WorkStudy: 3, FamilyContribution: 4}
	if aid.Total() != 10 {
		t.Errorf("Total() = %.2f, expected 10", aid.Total())
	}
}

func TestLoanMonthlyPayment(t *testing.T) {
	tests := []struct {
		name      string
		terms     LoanTerms
		expected  float64
		tolerance float64
	}{
		{"No principal", LoanTerms{Principal: 0, AnnualRate: 0.055, TermYears: 10}, 0, 0},
		{"Zero rate", LoanTerms{Principal: 12000, AnnualRate: 0, TermYears: 10}, 100, 1e-9},
		{"Negative rate is straight-line", LoanTerms{Principal: 12000, AnnualRate: -0.01, TermYears: 10}, 100, 1e-9},
		{"Standard amortization", LoanTerms{Principal: 30000, AnnualRate: 0.055, TermYears: 10}, 326.04, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.terms.MonthlyPayment(); math.Abs(got-tt.expected) > tt.tolerance {
				t.Errorf("MonthlyPayment() = %.4f, expected %.2f", got, tt.expected)
			}
		})
	}
}

func TestDefaultLoanTerms(t *testing.T) {
	terms := DefaultLoanTerms(30000)
	if terms.AnnualRate != 0.055 || terms.TermYears != 10 {
		t.Errorf("unexpected defaults: %+v", terms)
	}
}
