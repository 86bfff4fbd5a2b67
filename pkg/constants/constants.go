// Package constants provides shared constants for the college-roi application.
package constants

// Calendar constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Housing adjustments
const (
	// RoommateReductionRate is the housing discount granted per roommate
	RoommateReductionRate = 0.25

	// MaxRoommateDiscount caps the total roommate discount on housing
	MaxRoommateDiscount = 0.75

	// HousingOnCampus, HousingOffCampus and HousingAtHome are the supported housing types
	HousingOnCampus  = "on_campus"
	HousingOffCampus = "off_campus"
	HousingAtHome    = "at_home"
)

// HousingMultipliers scales the regional one-bedroom cost per housing type.
var HousingMultipliers = map[string]float64{
	HousingOnCampus:  1.0,
	HousingOffCampus: 1.0,
	HousingAtHome:    0.3,
}

// Financial calculation defaults
const (
	// DefaultStudyYears is the number of enrollment years used for debt
	DefaultStudyYears = 4

	// DefaultLoanTermYears is the repayment term of student loans
	DefaultLoanTermYears = 10

	// DefaultEarningsGrowthRate is the annual salary growth rate
	DefaultEarningsGrowthRate = 0.03

	// DefaultBaselineEarnings is the annual salary of a high school graduate
	DefaultBaselineEarnings = 35000.0

	// DefaultLoanAPR is the default annual loan interest rate (5.5%)
	DefaultLoanAPR = 0.055

	// DefaultTaxRate is the default effective tax rate (22%)
	DefaultTaxRate = 0.22

	// DefaultPaymentRate is the fraction of gross income put towards debt
	DefaultPaymentRate = 0.10

	// DefaultGraduationRate is used when an institution reports none
	DefaultGraduationRate = 0.5
)

// ROI and payback constants
const (
	// ROIYear1Divisor backs out year 1 earnings from year 5 earnings.
	// It is 1.03^4 rounded and stays fixed regardless of the growth rate in use.
	ROIYear1Divisor = 1.126

	// ROIHorizonYears is the number of post-graduation years ROI covers
	ROIHorizonYears = 5

	// MaxPaybackYears is the display ceiling for payback periods
	MaxPaybackYears = 50.0

	// MaxDTI caps the debt-to-income percentage fed to the comfort index
	MaxDTI = 100.0
)

// Comfort index weights
const (
	ComfortWeightDTI            = 0.40
	ComfortWeightGraduationRate = 0.30
	ComfortWeightROI            = 0.30
)

// Budget defaults (monthly unless noted)
const (
	DefaultFoodMonthly      = 400.0
	DefaultTransportMonthly = 200.0
	DefaultBooksYearly      = 1200.0
	DefaultMiscYearly       = 2000.0
)

// Lookup fallbacks
const (
	// FallbackHousingCost is the annual one-bedroom cost for unknown states
	FallbackHousingCost = 12000.0

	// FallbackMedianEarnings is the median earnings for unknown states
	FallbackMedianEarnings = 45000.0

	// FallbackTuitionPublic and FallbackTuitionPrivate fill missing tuition
	FallbackTuitionPublic  = 10000.0
	FallbackTuitionPrivate = 30000.0
)

// Assumption ranges offered to users; values outside produce warnings
const (
	MinLoanAPR = 0.03
	MaxLoanAPR = 0.10
	MinTaxRate = 0.15
	MaxTaxRate = 0.35

	MaxRoommates = 3
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// Cache defaults
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"

	// DefaultCacheTTLSeconds matches the one hour lookup cache of the web tool
	DefaultCacheTTLSeconds = 3600
)

// Tolerances
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)
