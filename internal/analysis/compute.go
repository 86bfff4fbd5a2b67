package analysis

import (
	"encoding/json"
	"math"

	"github.com/iwvelando/college-roi/pkg/constants"
	"github.com/iwvelando/college-roi/pkg/loans"
	"github.com/iwvelando/college-roi/pkg/roi"
)

// Inputs are fully resolved engine inputs; nothing in here is missing.
type Inputs struct {
	Costs            roi.CostInputs `json:"costs"`
	Aid              roi.AidPackage `json:"aid"`
	Years            int            `json:"years"`
	Year1Salary      float64        `json:"year1Salary"`
	GrowthRate       float64        `json:"growthRate"`
	BaselineEarnings float64        `json:"baselineEarnings"`
	LoanAPR          float64        `json:"loanApr"`
	LoanTermYears    int            `json:"loanTermYears"`
	TaxRate          float64        `json:"taxRate"`
	PaymentRate      float64        `json:"paymentRate"`
	GraduationRate   float64        `json:"graduationRate"`
}

// InputsFromAssumptions fills the shared parts of Inputs from a.
func InputsFromAssumptions(a Assumptions) Inputs {
	return Inputs{
		Costs: roi.CostInputs{
			Food:          a.FoodMonthly * constants.MonthsPerYear,
			Transport:     a.TransportMonthly * constants.MonthsPerYear,
			Books:         a.Books,
			Misc:          a.Misc,
			RoommateCount: a.RoommateCount,
		},
		Aid:              a.Aid,
		Years:            a.Years,
		GrowthRate:       a.GrowthRate,
		BaselineEarnings: a.BaselineEarnings,
		LoanAPR:          a.LoanAPR,
		LoanTermYears:    a.LoanTermYears,
		TaxRate:          a.TaxRate,
		PaymentRate:      a.PaymentRate,
	}
}

// Years is a payback duration that may be infinite. It encodes to JSON as
// null when infinite.
type Years float64

// IsNever reports whether the duration never completes.
func (y Years) IsNever() bool {
	return math.IsInf(float64(y), 1)
}

// MarshalJSON implements json.Marshaler.
func (y Years) MarshalJSON() ([]byte, error) {
	if y.IsNever() || math.IsNaN(float64(y)) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(y))
}

// UnmarshalJSON implements json.Unmarshaler.
func (y *Years) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*y = Years(math.Inf(1))
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*y = Years(v)
	return nil
}

// Metrics are every value computed for one program.
type Metrics struct {
	Name        string `json:"name"`
	Institution string `json:"institution,omitempty"`
	Program     string `json:"program,omitempty"`
	State       string `json:"state,omitempty"`

	Tuition    float64 `json:"tuition"`
	NetTuition float64 `json:"netTuition"` // after grants and scholarships
	Housing    float64 `json:"housing"`    // after roommate discount
	Food       float64 `json:"food"`
	Transport  float64 `json:"transport"`
	Books      float64 `json:"books"`
	Misc       float64 `json:"misc"`

	TotalAnnualCost float64 `json:"totalAnnualCost"`
	CumulativeDebt  float64 `json:"cumulativeDebt"`

	Year1 float64 `json:"year1"`
	Year3 float64 `json:"year3"`
	Year5 float64 `json:"year5"`

	ROI            float64 `json:"roi"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	MonthlyIncome  float64 `json:"monthlyIncome"`
	DTI            float64 `json:"dti"`
	Payback        Years   `json:"payback"`
	GraduationRate float64 `json:"graduationRate"`
	Comfort        float64 `json:"comfort"`

	TotalRepaid   float64 `json:"totalRepaid"`
	TotalInterest float64 `json:"totalInterest"`

	DTIRating        roi.Rating `json:"dtiRating"`
	GraduationRating roi.Rating `json:"graduationRating"`
	ComfortRating    roi.Rating `json:"comfortRating"`

	EarningsFallback bool     `json:"earningsFallback,omitempty"`
	Warnings         []string `json:"warnings,omitempty"`
}

// Compute runs the engine over resolved inputs in dependency order:
// cost, debt, earnings, loan payment and income, DTI, payback, comfort.
func Compute(in Inputs) Metrics {
	yearly := in.Costs.Total()
	debt := in.Aid.Debt(yearly, in.Years)

	earnings := roi.EarningsProjection(in.Year1Salary, in.GrowthRate)
	returnOnInvestment := roi.ROI(yearly*float64(in.Years), earnings.Year5, in.BaselineEarnings)

	payment := roi.LoanMonthlyPayment(debt, in.LoanAPR, in.LoanTermYears)
	income := roi.MonthlyTakeHome(earnings.Year1, in.TaxRate)
	dti := roi.DTIRatio(payment, income)

	payback := roi.PaybackPeriod(debt, earnings.Year1, in.PaymentRate)
	comfort := roi.ComfortIndex(dti, in.GraduationRate, returnOnInvestment)

	summary := loans.Summarize(loans.Schedule(debt, in.LoanAPR, in.LoanTermYears))

	return Metrics{
		Tuition:          in.Costs.Tuition,
		NetTuition:       roi.NetPrice(in.Costs.Tuition, in.Aid.Grants, in.Aid.Scholarships),
		Housing:          in.Costs.AdjustedHousing(),
		Food:             in.Costs.Food,
		Transport:        in.Costs.Transport,
		Books:            in.Costs.Books,
		Misc:             in.Costs.Misc,
		TotalAnnualCost:  yearly,
		CumulativeDebt:   debt,
		Year1:            earnings.Year1,
		Year3:            earnings.Year3,
		Year5:            earnings.Year5,
		ROI:              returnOnInvestment,
		MonthlyPayment:   payment,
		MonthlyIncome:    income,
		DTI:              dti,
		Payback:          Years(payback),
		GraduationRate:   in.GraduationRate,
		Comfort:          comfort,
		TotalRepaid:      summary.TotalPaid,
		TotalInterest:    summary.TotalInterest,
		DTIRating:        roi.RateDTI(dti),
		GraduationRating: roi.RateGraduation(in.GraduationRate),
		ComfortRating:    roi.RateComfort(comfort),
	}
}
