package roi

// Rating is a qualitative band for a metric.
type Rating string

const (
	RatingLow       Rating = "Low"
	RatingModerate  Rating = "Moderate"
	RatingHigh      Rating = "High"
	RatingExcellent Rating = "Excellent"
	RatingGood      Rating = "Good"
	RatingPoor      Rating = "Poor"
)

// RateDTI bands a DTI percentage: up to 20 is Low, up to 35 Moderate.
func RateDTI(dti float64) Rating {
	switch {
	case dti <= 20:
		return RatingLow
	case dti <= 35:
		return RatingModerate
	default:
		return RatingHigh
	}
}

// RateGraduation bands a graduation rate fraction.
func RateGraduation(rate float64) Rating {
	switch {
	case rate >= 0.8:
		return RatingHigh
	case rate >= 0.6:
		return RatingModerate
	default:
		return RatingLow
	}
}

// RateComfort bands a comfort index score.
func RateComfort(score float64) Rating {
	switch {
	case score >= 70:
		return RatingExcellent
	case score >= 50:
		return RatingGood
	default:
		return RatingPoor
	}
}
