package format

import (
	"fmt"
	"math"
)

// Never is shown for a payback period that cannot complete.
const Never = "Never"

// Percentage returns a percentage with one decimal (e.g., "35.3%").
func Percentage(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// Years returns a duration with one decimal (e.g., "21.1 years"), or Never
// for an infinite payback period.
func Years(years float64) string {
	if math.IsInf(years, 1) {
		return Never
	}
	return fmt.Sprintf("%.1f years", years)
}

// Score returns a comfort index as "NN/100".
func Score(score float64) string {
	return fmt.Sprintf("%.0f/100", score)
}
