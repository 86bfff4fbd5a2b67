package roi

import (
	"github.com/iwvelando/college-roi/pkg/constants"
	"github.com/iwvelando/college-roi/pkg/loans"
	"github.com/iwvelando/college-roi/pkg/mathutil"
)

// AidPackage holds annual aid that is either non-repayable or offsets cost.
type AidPackage struct {
	Grants             float64 `json:"grants" yaml:"grants"`
	Scholarships       float64 `json:"scholarships" yaml:"scholarships"`
	WorkStudy          float64 `json:"workStudy" yaml:"workStudy"`
	FamilyContribution float64 `json:"familyContribution" yaml:"familyContribution"`
}

// Total returns the annual aid sum.
func (a AidPackage) Total() float64 {
	return a.Grants + a.Scholarships + a.WorkStudy + a.FamilyContribution
}

// Debt returns the debt accumulated over years of study with this package.
func (a AidPackage) Debt(yearlyCost float64, years int) float64 {
	return CumulativeDebt(yearlyCost, a.Grants, a.Scholarships, a.WorkStudy, a.FamilyContribution, years)
}

// CumulativeDebt returns the debt at graduation. The yearly gap between cost
// and aid is floored at 0 and aid is assumed constant across all years.
func CumulativeDebt(yearlyCost, grants, scholarships, workStudy, familyContribution float64, years int) float64 {
	yearlyAid := grants + scholarships + workStudy + familyContribution
	yearlyDebt := mathutil.NonNegative(yearlyCost - yearlyAid)
	return yearlyDebt * float64(years)
}

// LoanTerms describes a fixed-rate repayment plan.
type LoanTerms struct {
	Principal  float64 `json:"principal" yaml:"principal"`
	AnnualRate float64 `json:"annualRate" yaml:"annualRate"`
	TermYears  int     `json:"termYears" yaml:"termYears"`
}

// DefaultLoanTerms returns terms for principal at the default APR and term.
func DefaultLoanTerms(principal float64) LoanTerms {
	return LoanTerms{
		Principal:  principal,
		AnnualRate: constants.DefaultLoanAPR,
		TermYears:  constants.DefaultLoanTermYears,
	}
}

// MonthlyPayment returns the amortized monthly payment for t.
func (t LoanTerms) MonthlyPayment() float64 {
	return LoanMonthlyPayment(t.Principal, t.AnnualRate, t.TermYears)
}

// LoanMonthlyPayment returns the fixed monthly payment that retires principal
// over termYears at annualRate (a fraction). It returns 0 for no principal and
// a straight-line payment when the rate is not positive.
func LoanMonthlyPayment(principal, annualRate float64, termYears int) float64 {
	return loans.MonthlyPayment(principal, annualRate, termYears)
}
