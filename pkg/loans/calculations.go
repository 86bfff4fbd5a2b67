// Package loans provides fixed-rate student loan amortization utilities.
package loans

import (
	"math"

	"github.com/iwvelando/college-roi/pkg/constants"
	"github.com/iwvelando/college-roi/pkg/mathutil"
)

// Payment holds the values for a given monthly payment.
type Payment struct {
	Month              int
	Payment            float64
	Principal          float64
	Interest           float64
	RemainingPrincipal float64
}

// Summary aggregates an amortization schedule.
type Summary struct {
	MonthlyPayment float64
	Months         int
	TotalPaid      float64
	TotalInterest  float64
}

// MonthlyPayment calculates the monthly payment for a loan using the standard
// amortization formula. annualRate is a fraction (0.055 for 5.5%).
//
// A non-positive principal owes nothing. A non-positive rate repays the
// principal in equal installments. A non-positive term leaves the whole
// principal due at once.
func MonthlyPayment(principal, annualRate float64, termYears int) float64 {
	if principal <= 0 {
		return 0
	}
	termMonths := termYears * constants.MonthsPerYear
	if termMonths <= 0 {
		return principal
	}
	if annualRate <= 0 {
		return principal / float64(termMonths)
	}

	monthlyRate := annualRate / constants.MonthsPerYear
	power := math.Pow(1+monthlyRate, float64(termMonths))
	return principal * monthlyRate * power / (power - 1)
}

// InterestPayment calculates the interest portion of a payment.
func InterestPayment(remainingPrincipal, annualRate float64) float64 {
	if annualRate <= 0 {
		return 0
	}
	return remainingPrincipal * annualRate / constants.MonthsPerYear
}

// Schedule produces the month-by-month amortization schedule of a loan.
// The final payment absorbs any rounding residue so the balance ends at 0.
func Schedule(principal, annualRate float64, termYears int) []Payment {
	monthlyPayment := MonthlyPayment(principal, annualRate, termYears)
	if monthlyPayment <= 0 {
		return nil
	}

	termMonths := termYears * constants.MonthsPerYear
	if termMonths <= 0 {
		return []Payment{{Month: 1, Payment: principal, Principal: principal}}
	}

	schedule := make([]Payment, 0, termMonths)
	remaining := principal
	for month := 1; month <= termMonths; month++ {
		interest := InterestPayment(remaining, annualRate)
		current := Payment{
			Month:    month,
			Payment:  monthlyPayment,
			Interest: interest,
		}
		current.Principal = monthlyPayment - interest

		if month == termMonths || mathutil.Round(remaining-current.Principal) <= 0 {
			// We will get machine error otherwise so settle the exact balance.
			current.Principal = remaining
			current.Payment = remaining + interest
			current.RemainingPrincipal = 0
			schedule = append(schedule, current)
			break
		}

		remaining -= current.Principal
		current.RemainingPrincipal = remaining
		schedule = append(schedule, current)
	}

	return schedule
}

// Summarize totals a schedule generated by Schedule.
func Summarize(schedule []Payment) Summary {
	var summary Summary
	if len(schedule) == 0 {
		return summary
	}
	summary.MonthlyPayment = schedule[0].Payment
	summary.Months = len(schedule)
	for _, payment := range schedule {
		summary.TotalPaid += payment.Payment
		summary.TotalInterest += payment.Interest
	}
	return summary
}
