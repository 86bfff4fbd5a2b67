package lookup

import (
	"context"
	"fmt"
	"strings"

	"github.com/iwvelando/college-roi/pkg/constants"
)

type programKey struct {
	institutionID int
	cipCode       string
}

// StaticDirectory serves records held in memory, typically from the
// configuration file. It is read-only after construction.
type StaticDirectory struct {
	institutions map[int]Institution
	programs     map[programKey]Program
	regions      map[string]Region
}

// NewStaticDirectory indexes the given records. Later duplicates win.
func NewStaticDirectory(institutions []Institution, programs []Program, regions []Region) *StaticDirectory {
	d := &StaticDirectory{
		institutions: make(map[int]Institution, len(institutions)),
		programs:     make(map[programKey]Program, len(programs)),
		regions:      make(map[string]Region, len(regions)),
	}
	for _, inst := range institutions {
		d.institutions[inst.ID] = inst
	}
	for _, prog := range programs {
		d.programs[programKey{prog.InstitutionID, strings.TrimSpace(prog.CIPCode)}] = prog
	}
	for _, region := range regions {
		d.regions[normalizeState(region.State)] = region
	}
	return d
}

// Institution returns the institution with id.
func (d *StaticDirectory) Institution(_ context.Context, id int) (Institution, error) {
	inst, ok := d.institutions[id]
	if !ok {
		return Institution{}, fmt.Errorf("institution %d: %w", id, ErrNotFound)
	}
	return inst, nil
}

// Program returns the program identified by institutionID and cipCode.
func (d *StaticDirectory) Program(_ context.Context, institutionID int, cipCode string) (Program, error) {
	prog, ok := d.programs[programKey{institutionID, strings.TrimSpace(cipCode)}]
	if !ok {
		return Program{}, fmt.Errorf("program %s at institution %d: %w", cipCode, institutionID, ErrNotFound)
	}
	return prog, nil
}

// HousingCost returns the annual one-bedroom cost for state.
func (d *StaticDirectory) HousingCost(_ context.Context, state string) float64 {
	if region, ok := d.regions[normalizeState(state)]; ok && region.Housing1BR > 0 {
		return region.Housing1BR
	}
	return constants.FallbackHousingCost
}

// MedianEarnings returns the median earnings for state.
func (d *StaticDirectory) MedianEarnings(_ context.Context, state string) float64 {
	if region, ok := d.regions[normalizeState(state)]; ok && region.MedianEarnings > 0 {
		return region.MedianEarnings
	}
	return constants.FallbackMedianEarnings
}

func normalizeState(state string) string {
	return strings.ToUpper(strings.TrimSpace(state))
}
