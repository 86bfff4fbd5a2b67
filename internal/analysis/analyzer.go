package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/iwvelando/college-roi/internal/lookup"
	"github.com/iwvelando/college-roi/pkg/constants"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Analyzer resolves selections against a Directory and runs the engine.
type Analyzer struct {
	logger    *zap.Logger
	directory lookup.Directory
}

// NewAnalyzer creates an Analyzer. A nil logger disables logging.
func NewAnalyzer(logger *zap.Logger, directory lookup.Directory) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{logger: logger, directory: directory}
}

// Resolved carries resolved inputs plus the descriptive fields of a selection.
type Resolved struct {
	Inputs           Inputs
	Institution      lookup.Institution
	Program          lookup.Program
	EarningsFallback bool
}

// Resolve turns a selection into engine inputs. An unknown institution is an
// error; an unknown program falls back to state median earnings.
func (a *Analyzer) Resolve(ctx context.Context, sel Selection, as Assumptions) (Resolved, error) {
	inst, err := a.directory.Institution(ctx, sel.InstitutionID)
	if err != nil {
		return Resolved{}, fmt.Errorf("resolving institution %d: %w", sel.InstitutionID, err)
	}

	prog, err := a.directory.Program(ctx, sel.InstitutionID, sel.CIPCode)
	if err != nil && !errors.Is(err, lookup.ErrNotFound) {
		return Resolved{}, fmt.Errorf("resolving program %s at %d: %w", sel.CIPCode, sel.InstitutionID, err)
	}
	if err != nil {
		a.logger.Debug("program not found, using state earnings",
			zap.String("op", "analysis.Resolve"),
			zap.Int("institution", sel.InstitutionID),
			zap.String("cip", sel.CIPCode),
		)
		prog = lookup.Program{InstitutionID: sel.InstitutionID, CIPCode: sel.CIPCode}
	}

	in := InputsFromAssumptions(as)
	in.Costs.Tuition = tuition(inst)
	in.Costs.Housing = a.directory.HousingCost(ctx, inst.State) * as.HousingMultiplier()
	in.GraduationRate = reportedOr(inst.GraduationRate, constants.DefaultGraduationRate)

	fallback := prog.MedianEarnings1yr == nil
	if fallback {
		in.Year1Salary = a.directory.MedianEarnings(ctx, inst.State)
	} else {
		in.Year1Salary = *prog.MedianEarnings1yr
	}

	return Resolved{Inputs: in, Institution: inst, Program: prog, EarningsFallback: fallback}, nil
}

// Analyze computes metrics for a single selection.
func (a *Analyzer) Analyze(ctx context.Context, sel Selection, as Assumptions) (Metrics, error) {
	res, err := a.Resolve(ctx, sel, as)
	if err != nil {
		return Metrics{}, err
	}

	m := Compute(res.Inputs)
	m.Name = sel.Name
	if m.Name == "" {
		m.Name = res.Institution.Name
	}
	m.Institution = res.Institution.Name
	m.Program = res.Program.Name
	m.State = res.Institution.State
	m.EarningsFallback = res.EarningsFallback
	if res.EarningsFallback {
		m.Warnings = append(m.Warnings, fmt.Sprintf("no program earnings reported, using %s state median", res.Institution.State))
	}

	a.logger.Info("analyzed program",
		zap.String("op", "analysis.Analyze"),
		zap.String("name", m.Name),
		zap.Float64("totalAnnualCost", m.TotalAnnualCost),
		zap.Float64("cumulativeDebt", m.CumulativeDebt),
		zap.Float64("roi", m.ROI),
		zap.Float64("comfort", m.Comfort),
	)
	return m, nil
}

// Deltas are second minus first for each compared metric.
type Deltas struct {
	TotalAnnualCost float64 `json:"totalAnnualCost"`
	CumulativeDebt  float64 `json:"cumulativeDebt"`
	Year1           float64 `json:"year1"`
	Year5           float64 `json:"year5"`
	ROI             float64 `json:"roi"`
	MonthlyPayment  float64 `json:"monthlyPayment"`
	DTI             float64 `json:"dti"`
	GraduationRate  float64 `json:"graduationRate"`
	Comfort         float64 `json:"comfort"`
}

// Comparison is the side-by-side result for two selections.
type Comparison struct {
	First  Metrics `json:"first"`
	Second Metrics `json:"second"`
	Deltas Deltas  `json:"deltas"`
	// Preferred names the selection with the higher comfort index, empty on a tie.
	Preferred string `json:"preferred,omitempty"`
}

// Compare analyzes both selections concurrently under the same assumptions.
func (a *Analyzer) Compare(ctx context.Context, left, right Selection, as Assumptions) (Comparison, error) {
	var first, second Metrics
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := a.Analyze(gctx, left, as)
		if err != nil {
			return fmt.Errorf("first selection: %w", err)
		}
		first = m
		return nil
	})
	g.Go(func() error {
		m, err := a.Analyze(gctx, right, as)
		if err != nil {
			return fmt.Errorf("second selection: %w", err)
		}
		second = m
		return nil
	})
	if err := g.Wait(); err != nil {
		return Comparison{}, err
	}

	return NewComparison(first, second), nil
}

// NewComparison builds the comparison of two computed results.
func NewComparison(first, second Metrics) Comparison {
	c := Comparison{First: first, Second: second, Deltas: Diff(first, second)}
	switch {
	case first.Comfort > second.Comfort:
		c.Preferred = first.Name
	case second.Comfort > first.Comfort:
		c.Preferred = second.Name
	}
	return c
}

// Diff returns b minus a for each compared metric.
func Diff(a, b Metrics) Deltas {
	return Deltas{
		TotalAnnualCost: b.TotalAnnualCost - a.TotalAnnualCost,
		CumulativeDebt:  b.CumulativeDebt - a.CumulativeDebt,
		Year1:           b.Year1 - a.Year1,
		Year5:           b.Year5 - a.Year5,
		ROI:             b.ROI - a.ROI,
		MonthlyPayment:  b.MonthlyPayment - a.MonthlyPayment,
		DTI:             b.DTI - a.DTI,
		GraduationRate:  b.GraduationRate - a.GraduationRate,
		Comfort:         b.Comfort - a.Comfort,
	}
}

func tuition(inst lookup.Institution) float64 {
	if inst.Control == lookup.ControlPublic {
		return reportedOr(inst.TuitionInState, constants.FallbackTuitionPublic)
	}
	return reportedOr(inst.TuitionOutOfState, constants.FallbackTuitionPrivate)
}

// reportedOr treats missing and zero values as unreported.
func reportedOr(v *float64, fallback float64) float64 {
	if v == nil || *v == 0 {
		return fallback
	}
	return *v
}
