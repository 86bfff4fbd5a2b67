// Package analysis sequences the calculation engine for one program, or two
// side by side, resolving institution and program records into concrete
// inputs first.
package analysis

import (
	"github.com/iwvelando/college-roi/pkg/constants"
	"github.com/iwvelando/college-roi/pkg/roi"
	"github.com/iwvelando/college-roi/pkg/validation"
)

// Assumptions are the user-adjustable parameters shared by every program
// under analysis.
type Assumptions struct {
	HousingType      string         `json:"housingType" yaml:"housingType" mapstructure:"housingType"`
	RoommateCount    int            `json:"roommateCount" yaml:"roommateCount" mapstructure:"roommateCount"`
	FoodMonthly      float64        `json:"foodMonthly" yaml:"foodMonthly" mapstructure:"foodMonthly"`
	TransportMonthly float64        `json:"transportMonthly" yaml:"transportMonthly" mapstructure:"transportMonthly"`
	Books            float64        `json:"books" yaml:"books" mapstructure:"books"`
	Misc             float64        `json:"misc" yaml:"misc" mapstructure:"misc"`
	Aid              roi.AidPackage `json:"aid" yaml:"aid" mapstructure:"aid"`
	LoanAPR          float64        `json:"loanApr" yaml:"loanApr" mapstructure:"loanApr"`
	TaxRate          float64        `json:"taxRate" yaml:"taxRate" mapstructure:"taxRate"`
	GrowthRate       float64        `json:"growthRate" yaml:"growthRate" mapstructure:"growthRate"`
	BaselineEarnings float64        `json:"baselineEarnings" yaml:"baselineEarnings" mapstructure:"baselineEarnings"`
	PaymentRate      float64        `json:"paymentRate" yaml:"paymentRate" mapstructure:"paymentRate"`
	LoanTermYears    int            `json:"loanTermYears" yaml:"loanTermYears" mapstructure:"loanTermYears"`
	Years            int            `json:"years" yaml:"years" mapstructure:"years"`
}

// DefaultAssumptions returns the defaults of the planner: on-campus housing,
// no roommates, no aid, 5.5% APR over 10 years and a 22% tax rate.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		HousingType:      constants.HousingOnCampus,
		FoodMonthly:      constants.DefaultFoodMonthly,
		TransportMonthly: constants.DefaultTransportMonthly,
		Books:            constants.DefaultBooksYearly,
		Misc:             constants.DefaultMiscYearly,
		LoanAPR:          constants.DefaultLoanAPR,
		TaxRate:          constants.DefaultTaxRate,
		GrowthRate:       constants.DefaultEarningsGrowthRate,
		BaselineEarnings: constants.DefaultBaselineEarnings,
		PaymentRate:      constants.DefaultPaymentRate,
		LoanTermYears:    constants.DefaultLoanTermYears,
		Years:            constants.DefaultStudyYears,
	}
}

// Validate returns warnings for assumptions outside the usual ranges.
func (a Assumptions) Validate() []string {
	return validation.ValidateAssumptions(validation.AssumptionValues{
		HousingType:      a.HousingType,
		RoommateCount:    a.RoommateCount,
		FoodMonthly:      a.FoodMonthly,
		TransportMonthly: a.TransportMonthly,
		Books:            a.Books,
		Misc:             a.Misc,
		Grants:           a.Aid.Grants,
		Scholarships:     a.Aid.Scholarships,
		WorkStudy:        a.Aid.WorkStudy,
		Family:           a.Aid.FamilyContribution,
		LoanAPR:          a.LoanAPR,
		TaxRate:          a.TaxRate,
		GrowthRate:       a.GrowthRate,
		PaymentRate:      a.PaymentRate,
		LoanTermYears:    a.LoanTermYears,
		Years:            a.Years,
	})
}

// HousingMultiplier returns the multiplier for the housing type, 1 when unknown.
func (a Assumptions) HousingMultiplier() float64 {
	if m, ok := constants.HousingMultipliers[a.HousingType]; ok {
		return m
	}
	return 1
}

// Selection identifies a program at an institution.
type Selection struct {
	Name          string `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
	InstitutionID int    `json:"institutionId" yaml:"institutionId" mapstructure:"institutionId"`
	CIPCode       string `json:"cipCode" yaml:"cipCode" mapstructure:"cipCode"`
}
