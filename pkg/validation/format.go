// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/college-roi/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON, format)
}

// ValidateHousingType checks that a housing multiplier exists for housingType.
func ValidateHousingType(housingType string) error {
	if _, ok := constants.HousingMultipliers[housingType]; !ok {
		return fmt.Errorf("expected housing type of %s, %s or %s, got %s",
			constants.HousingOnCampus, constants.HousingOffCampus, constants.HousingAtHome, housingType)
	}
	return nil
}
