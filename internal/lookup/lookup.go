// Package lookup defines the institution, program and regional cost records
// the analysis layer reads, and the Directory contract that serves them.
//
// Values a data source may not report are pointers. Callers resolve them to
// concrete fallbacks before handing numbers to the calculation engine.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotFound is returned when an institution or program is unknown.
var ErrNotFound = errors.New("not found")

// Control is the ownership type of an institution.
type Control int

const (
	ControlUnknown Control = iota
	ControlPublic
	ControlPrivateNonprofit
	ControlPrivateForProfit
)

// String returns the display name of c.
func (c Control) String() string {
	switch c {
	case ControlPublic:
		return "Public"
	case ControlPrivateNonprofit:
		return "Private nonprofit"
	case ControlPrivateForProfit:
		return "Private for-profit"
	default:
		return "Unknown"
	}
}

var controlKeys = map[Control]string{
	ControlUnknown:          "unknown",
	ControlPublic:           "public",
	ControlPrivateNonprofit: "private_nonprofit",
	ControlPrivateForProfit: "private_for_profit",
}

// MarshalText encodes c as its config key, e.g. "public".
func (c Control) MarshalText() ([]byte, error) {
	key, ok := controlKeys[c]
	if !ok {
		key = controlKeys[ControlUnknown]
	}
	return []byte(key), nil
}

// UnmarshalText accepts a config key or the numeric control code (1, 2, 3).
func (c *Control) UnmarshalText(text []byte) error {
	value := strings.ToLower(strings.TrimSpace(string(text)))
	for control, key := range controlKeys {
		if value == key {
			*c = control
			return nil
		}
	}
	if code, err := strconv.Atoi(value); err == nil && code >= 0 && code <= int(ControlPrivateForProfit) {
		*c = Control(code)
		return nil
	}
	return fmt.Errorf("unknown institution control %q", string(text))
}

// Institution is a college record.
type Institution struct {
	ID                int      `json:"id" mapstructure:"id"`
	Name              string   `json:"name" mapstructure:"name"`
	State             string   `json:"state" mapstructure:"state"`
	Control           Control  `json:"control" mapstructure:"control"`
	TuitionInState    *float64 `json:"tuitionInState,omitempty" mapstructure:"tuitionInState"`
	TuitionOutOfState *float64 `json:"tuitionOutOfState,omitempty" mapstructure:"tuitionOutOfState"`
	GraduationRate    *float64 `json:"graduationRate,omitempty" mapstructure:"graduationRate"`
}

// Program is a field of study offered by an institution.
type Program struct {
	InstitutionID     int      `json:"institutionId" mapstructure:"institutionId"`
	CIPCode           string   `json:"cipCode" mapstructure:"cipCode"`
	Name              string   `json:"name" mapstructure:"name"`
	CredentialLevel   int      `json:"credentialLevel" mapstructure:"credentialLevel"`
	MedianEarnings1yr *float64 `json:"medianEarnings1yr,omitempty" mapstructure:"medianEarnings1yr"`
	MedianEarnings4yr *float64 `json:"medianEarnings4yr,omitempty" mapstructure:"medianEarnings4yr"`
	MedianDebt        *float64 `json:"medianDebt,omitempty" mapstructure:"medianDebt"`
}

// Region holds state-level cost and earnings estimates.
type Region struct {
	State          string  `json:"state" mapstructure:"state"`
	Housing1BR     float64 `json:"housing1br" mapstructure:"housing1br"`
	MedianEarnings float64 `json:"medianEarnings" mapstructure:"medianEarnings"`
}

// Directory serves institution, program and regional records.
//
// HousingCost and MedianEarnings never fail: unknown states yield fallback
// constants.
type Directory interface {
	Institution(ctx context.Context, id int) (Institution, error)
	Program(ctx context.Context, institutionID int, cipCode string) (Program, error)
	HousingCost(ctx context.Context, state string) float64
	MedianEarnings(ctx context.Context, state string) float64
}

// Float returns a pointer to v, for building records with reported values.
func Float(v float64) *float64 {
	return &v
}
