package roi

import (
	"github.com/iwvelando/college-roi/pkg/constants"
	"github.com/iwvelando/college-roi/pkg/mathutil"
)

// ComfortFactors are the inputs of the comfort index.
type ComfortFactors struct {
	DTI            float64 `json:"dti"`            // percentage
	GraduationRate float64 `json:"graduationRate"` // fraction
	ROI            float64 `json:"roi"`            // percentage
}

// Score returns the comfort index for f.
func (f ComfortFactors) Score() float64 {
	return ComfortIndex(f.DTI, f.GraduationRate, f.ROI)
}

// ComfortIndex blends DTI (40%), graduation rate (30%) and ROI (30%) into a
// score in [0, 100].
//
// DTI scores 100 at 0% and 0 at 50% or more. Graduation rate maps [0, 1]
// onto [0, 100]. ROI maps [-100, 100] onto [0, 100] and saturates beyond.
func ComfortIndex(dti, graduationRate, roi float64) float64 {
	dtiScore := mathutil.NonNegative(100 - dti*2)
	gradScore := graduationRate * 100
	roiScore := mathutil.Clamp((roi+100)/2, 0, 100)

	index := dtiScore*constants.ComfortWeightDTI +
		gradScore*constants.ComfortWeightGraduationRate +
		roiScore*constants.ComfortWeightROI

	return mathutil.Clamp(index, 0, 100)
}
