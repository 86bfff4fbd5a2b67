package roi

import (
	"math"

	"github.com/iwvelando/college-roi/pkg/constants"
)

// EarningsAssumption is a starting salary and its annual growth rate.
type EarningsAssumption struct {
	Year1Salary float64 `json:"year1Salary" yaml:"year1Salary"`
	GrowthRate  float64 `json:"growthRate" yaml:"growthRate"`
}

// DefaultEarningsAssumption uses the default 3% growth rate.
func DefaultEarningsAssumption(year1Salary float64) EarningsAssumption {
	return EarningsAssumption{Year1Salary: year1Salary, GrowthRate: constants.DefaultEarningsGrowthRate}
}

// Project returns the projection for e.
func (e EarningsAssumption) Project() Projection {
	return EarningsProjection(e.Year1Salary, e.GrowthRate)
}

// Projection holds salaries for years 1, 3 and 5 after graduation.
type Projection struct {
	Year1 float64 `json:"year1"`
	Year3 float64 `json:"year3"`
	Year5 float64 `json:"year5"`
}

// EarningsProjection compounds year1Salary at growthRate: year 3 is two
// periods out and year 5 is four.
func EarningsProjection(year1Salary, growthRate float64) Projection {
	return Projection{
		Year1: year1Salary,
		Year3: year1Salary * math.Pow(1+growthRate, 2),
		Year5: year1Salary * math.Pow(1+growthRate, 4),
	}
}

// MonthlyTakeHome returns after-tax monthly pay. It supplies the income side
// of DTIRatio.
func MonthlyTakeHome(annualSalary, taxRate float64) float64 {
	return annualSalary * (1 - taxRate) / constants.MonthsPerYear
}
