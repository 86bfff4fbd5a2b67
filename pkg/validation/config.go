package validation

import (
	"fmt"

	"github.com/iwvelando/college-roi/pkg/constants"
)

// AssumptionValues is the subset of user assumptions that can be range checked.
type AssumptionValues struct {
	HousingType      string
	RoommateCount    int
	FoodMonthly      float64
	TransportMonthly float64
	Books            float64
	Misc             float64
	Grants           float64
	Scholarships     float64
	WorkStudy        float64
	Family           float64
	LoanAPR          float64
	TaxRate          float64
	GrowthRate       float64
	PaymentRate      float64
	LoanTermYears    int
	Years            int
}

// ValidateAssumptions returns warnings for values outside the ranges the tool
// offers. Out-of-range values are still used as given.
func ValidateAssumptions(a AssumptionValues) []string {
	var warnings []string

	if err := ValidateHousingType(a.HousingType); err != nil {
		warnings = append(warnings, err.Error()+"; housing will not be adjusted")
	}

	if a.RoommateCount < 0 || a.RoommateCount > constants.MaxRoommates {
		warnings = append(warnings, fmt.Sprintf("Roommate count %d is outside 0-%d; housing discount is capped at %.0f%%",
			a.RoommateCount, constants.MaxRoommates, constants.MaxRoommateDiscount*constants.PercentageMultiplier))
	}

	currencies := []struct {
		name  string
		value float64
	}{
		{"food budget", a.FoodMonthly},
		{"transport budget", a.TransportMonthly},
		{"books", a.Books},
		{"misc", a.Misc},
		{"grants", a.Grants},
		{"scholarships", a.Scholarships},
		{"work-study", a.WorkStudy},
		{"family contribution", a.Family},
	}
	for _, c := range currencies {
		if c.value < 0 {
			warnings = append(warnings, fmt.Sprintf("Negative %s (%.2f) will be used as given", c.name, c.value))
		}
	}

	if a.LoanAPR < constants.MinLoanAPR || a.LoanAPR > constants.MaxLoanAPR {
		warnings = append(warnings, fmt.Sprintf("Loan APR %.3f is outside the typical range %.2f-%.2f",
			a.LoanAPR, constants.MinLoanAPR, constants.MaxLoanAPR))
	}
	if a.TaxRate < constants.MinTaxRate || a.TaxRate > constants.MaxTaxRate {
		warnings = append(warnings, fmt.Sprintf("Tax rate %.2f is outside the typical range %.2f-%.2f",
			a.TaxRate, constants.MinTaxRate, constants.MaxTaxRate))
	}
	if a.GrowthRate < 0 {
		warnings = append(warnings, fmt.Sprintf("Earnings growth rate %.3f is negative", a.GrowthRate))
	}
	if a.PaymentRate <= 0 {
		warnings = append(warnings, "Payment rate is not positive; payback period will be reported as never")
	}
	if a.LoanTermYears <= 0 {
		warnings = append(warnings, fmt.Sprintf("Loan term of %d years is not positive; the full debt is treated as due at once", a.LoanTermYears))
	}
	if a.Years <= 0 {
		warnings = append(warnings, fmt.Sprintf("Study length of %d years accumulates no debt", a.Years))
	}

	return warnings
}

// ValidateGraduationRate warns when a graduation rate is not a fraction.
func ValidateGraduationRate(institution string, rate float64) string {
	if rate < 0 || rate > 1 {
		return fmt.Sprintf("Institution '%s' graduation rate %.2f is outside 0-1", institution, rate)
	}
	return ""
}
