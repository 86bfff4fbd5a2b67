// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/college-roi/internal/analysis"
	"github.com/iwvelando/college-roi/internal/lookup"
)

// Fixture institution IDs and CIP codes.
const (
	PublicInstitutionID  = 100
	PrivateInstitutionID = 200
	ComputerScienceCIP   = "11.0701"
	BusinessCIP          = "52.0201"
)

// Directory returns a directory holding a public university whose computer
// science program reports 50000 first-year earnings, and a private college
// whose business program reports none.
func Directory() *lookup.StaticDirectory {
	return lookup.NewStaticDirectory(
		[]lookup.Institution{
			{ID: PublicInstitutionID, Name: "State University", State: "OH", Control: lookup.ControlPublic,
				TuitionInState: lookup.Float(10000), TuitionOutOfState: lookup.Float(30000)},
			{ID: PrivateInstitutionID, Name: "Private College", State: "MA", Control: lookup.ControlPrivateNonprofit,
				TuitionOutOfState: lookup.Float(55000), GraduationRate: lookup.Float(0.92)},
		},
		[]lookup.Program{
			{InstitutionID: PublicInstitutionID, CIPCode: ComputerScienceCIP, Name: "Computer Science",
				MedianEarnings1yr: lookup.Float(50000)},
			{InstitutionID: PrivateInstitutionID, CIPCode: BusinessCIP, Name: "Business Administration"},
		},
		[]lookup.Region{
			{State: "OH", Housing1BR: 12000, MedianEarnings: 42000},
			{State: "MA", Housing1BR: 24000, MedianEarnings: 58000},
		},
	)
}

// PublicSelection selects the fixture computer science program.
func PublicSelection() analysis.Selection {
	return analysis.Selection{Name: "public", InstitutionID: PublicInstitutionID, CIPCode: ComputerScienceCIP}
}

// PrivateSelection selects the fixture business program.
func PrivateSelection() analysis.Selection {
	return analysis.Selection{Name: "private", InstitutionID: PrivateInstitutionID, CIPCode: BusinessCIP}
}

// FindMetrics finds a result by name in the results slice.
// Returns a pointer to the metrics if found, nil otherwise.
func FindMetrics(results []analysis.Metrics, name string) *analysis.Metrics {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}
