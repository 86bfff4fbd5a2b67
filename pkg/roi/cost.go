package roi

import (
	"github.com/iwvelando/college-roi/pkg/constants"
	"github.com/iwvelando/college-roi/pkg/mathutil"
)

// CostInputs holds the annual cost components of attending a program.
type CostInputs struct {
	Tuition       float64 `json:"tuition" yaml:"tuition"`
	Housing       float64 `json:"housing" yaml:"housing"` // before roommate discount
	Food          float64 `json:"food" yaml:"food"`
	Transport     float64 `json:"transport" yaml:"transport"`
	Books         float64 `json:"books" yaml:"books"`
	Misc          float64 `json:"misc" yaml:"misc"`
	RoommateCount int     `json:"roommateCount" yaml:"roommateCount"`
}

// Total returns the yearly cost of attendance for c.
func (c CostInputs) Total() float64 {
	return TotalCostOfAttendance(c.Tuition, c.Housing, c.Food, c.Transport, c.Books, c.Misc, c.RoommateCount)
}

// AdjustedHousing returns housing after the roommate discount.
func (c CostInputs) AdjustedHousing() float64 {
	return AdjustedHousing(c.Housing, c.RoommateCount)
}

// RoommateDiscount returns the fractional housing discount for a number of
// roommates: 25% each, capped at 75%. Counts above 3 are accepted and simply
// hit the cap.
func RoommateDiscount(roommates int) float64 {
	return mathutil.Min(float64(roommates)*constants.RoommateReductionRate, constants.MaxRoommateDiscount)
}

// AdjustedHousing applies the roommate discount to an annual housing cost.
func AdjustedHousing(housing float64, roommates int) float64 {
	return housing * (1 - RoommateDiscount(roommates))
}

// TotalCostOfAttendance sums the yearly cost of attendance after discounting
// housing for roommates. The result is floored at 0.
func TotalCostOfAttendance(tuition, housing, food, transport, books, misc float64, roommates int) float64 {
	total := tuition + AdjustedHousing(housing, roommates) + food + transport + books + misc
	return mathutil.NonNegative(total)
}

// NetPrice subtracts grants and scholarships from a sticker price, floored at 0.
func NetPrice(stickerPrice, grants, scholarships float64) float64 {
	return mathutil.NonNegative(stickerPrice - grants - scholarships)
}
