// Package format renders engine results for people: whole-dollar currency,
// one-decimal percentages and payback durations.
package format

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns whole dollars with thousands separators (e.g., "$26,400",
// "-$1,235"). Halves round to even. The minus sign always precedes the
// dollar sign, never "$-1,235".
func Currency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "$-"
	}
	dollars := decimal.NewFromFloat(amount).RoundBank(0).IntPart()
	if dollars < 0 {
		return printer.Sprintf("-$%d", -dollars)
	}
	return printer.Sprintf("$%d", dollars)
}
