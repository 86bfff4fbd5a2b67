package roi

import (
	"math"

	"github.com/iwvelando/college-roi/pkg/constants"
	"github.com/iwvelando/college-roi/pkg/mathutil"
)

// ROI returns the five-year return on a degree as a percentage of its total
// four-year cost.
//
// Year 1 earnings are backed out of year 5 with the fixed divisor 1.126
// (1.03^4) whatever growth rate produced year5Earnings. The average of the
// two, times five, is compared to five years of baselineEarnings.
// A non-positive cost returns 0.
func ROI(totalCost4yr, year5Earnings, baselineEarnings float64) float64 {
	if totalCost4yr <= 0 {
		return 0
	}

	year1Estimate := year5Earnings / constants.ROIYear1Divisor
	cumulative := (year1Estimate + year5Earnings) / 2 * constants.ROIHorizonYears
	baseline := baselineEarnings * constants.ROIHorizonYears

	net := cumulative - baseline - totalCost4yr
	return net / totalCost4yr * constants.PercentageMultiplier
}

// PaybackPeriod returns the years needed to retire totalDebt by paying
// paymentRate of annualSalary each year. Interest is ignored.
// No debt pays back in 0 years; no salary or payment never pays back
// (+Inf). Finite results are capped at 50.
func PaybackPeriod(totalDebt, annualSalary, paymentRate float64) float64 {
	if totalDebt <= 0 {
		return 0
	}
	if annualSalary <= 0 {
		return math.Inf(1)
	}

	annualPayment := annualSalary * paymentRate
	if annualPayment <= 0 {
		return math.Inf(1)
	}

	return mathutil.Min(totalDebt/annualPayment, constants.MaxPaybackYears)
}

// DTIRatio returns monthly debt payment over monthly income as a percentage,
// capped at 100 so the comfort index stays well-behaved. No income yields 0.
func DTIRatio(monthlyDebtPayment, monthlyIncome float64) float64 {
	if monthlyIncome <= 0 {
		return 0
	}
	dti := monthlyDebtPayment / monthlyIncome * constants.PercentageMultiplier
	return mathutil.Min(dti, constants.MaxDTI)
}
