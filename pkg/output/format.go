// Package output provides utilities for formatting and displaying analysis
// results.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/iwvelando/college-roi/internal/analysis"
	"github.com/iwvelando/college-roi/pkg/constants"
	"github.com/iwvelando/college-roi/pkg/format"
)

// Report is everything rendered for one run.
type Report struct {
	Results    []analysis.Metrics   `json:"results"`
	Comparison *analysis.Comparison `json:"comparison,omitempty"`
	Warnings   []string             `json:"warnings,omitempty"`
}

// NewReport builds a report, adding a comparison when there are exactly two
// results.
func NewReport(results []analysis.Metrics, warnings []string) Report {
	r := Report{Results: results, Warnings: warnings}
	if len(results) == 2 {
		c := analysis.NewComparison(results[0], results[1])
		r.Comparison = &c
	}
	return r
}

type row struct {
	label string
	value func(m analysis.Metrics) string
	raw   func(m analysis.Metrics) float64
	delta func(d analysis.Deltas) string
}

func money(f func(analysis.Metrics) float64) func(analysis.Metrics) string {
	return func(m analysis.Metrics) string { return format.Currency(f(m)) }
}

func rated(value func(analysis.Metrics) string, rating func(analysis.Metrics) string) func(analysis.Metrics) string {
	return func(m analysis.Metrics) string { return fmt.Sprintf("%s (%s)", value(m), rating(m)) }
}

func signedCurrency(v float64) string {
	if v > 0 {
		return "+" + format.Currency(v)
	}
	return format.Currency(v)
}

func signedPoints(v float64) string {
	return fmt.Sprintf("%+.1f pts", v)
}

var rows = []row{
	{label: "Tuition", value: money(func(m analysis.Metrics) float64 { return m.Tuition }),
		raw: func(m analysis.Metrics) float64 { return m.Tuition }},
	{label: "Net tuition", value: money(func(m analysis.Metrics) float64 { return m.NetTuition }),
		raw: func(m analysis.Metrics) float64 { return m.NetTuition }},
	{label: "Housing", value: money(func(m analysis.Metrics) float64 { return m.Housing }),
		raw: func(m analysis.Metrics) float64 { return m.Housing }},
	{label: "Food", value: money(func(m analysis.Metrics) float64 { return m.Food }),
		raw: func(m analysis.Metrics) float64 { return m.Food }},
	{label: "Transportation", value: money(func(m analysis.Metrics) float64 { return m.Transport }),
		raw: func(m analysis.Metrics) float64 { return m.Transport }},
	{label: "Books & supplies", value: money(func(m analysis.Metrics) float64 { return m.Books }),
		raw: func(m analysis.Metrics) float64 { return m.Books }},
	{label: "Miscellaneous", value: money(func(m analysis.Metrics) float64 { return m.Misc }),
		raw: func(m analysis.Metrics) float64 { return m.Misc }},
	{label: "Total annual cost", value: money(func(m analysis.Metrics) float64 { return m.TotalAnnualCost }),
		raw:   func(m analysis.Metrics) float64 { return m.TotalAnnualCost },
		delta: func(d analysis.Deltas) string { return signedCurrency(d.TotalAnnualCost) }},
	{label: "Debt at graduation", value: money(func(m analysis.Metrics) float64 { return m.CumulativeDebt }),
		raw:   func(m analysis.Metrics) float64 { return m.CumulativeDebt },
		delta: func(d analysis.Deltas) string { return signedCurrency(d.CumulativeDebt) }},
	{label: "Year 1 earnings", value: money(func(m analysis.Metrics) float64 { return m.Year1 }),
		raw:   func(m analysis.Metrics) float64 { return m.Year1 },
		delta: func(d analysis.Deltas) string { return signedCurrency(d.Year1) }},
	{label: "Year 3 earnings", value: money(func(m analysis.Metrics) float64 { return m.Year3 }),
		raw: func(m analysis.Metrics) float64 { return m.Year3 }},
	{label: "Year 5 earnings", value: money(func(m analysis.Metrics) float64 { return m.Year5 }),
		raw:   func(m analysis.Metrics) float64 { return m.Year5 },
		delta: func(d analysis.Deltas) string { return signedCurrency(d.Year5) }},
	{label: "5-year ROI", value: func(m analysis.Metrics) string { return format.Percentage(m.ROI) },
		raw:   func(m analysis.Metrics) float64 { return m.ROI },
		delta: func(d analysis.Deltas) string { return signedPoints(d.ROI) }},
	{label: "Monthly loan payment", value: money(func(m analysis.Metrics) float64 { return m.MonthlyPayment }),
		raw:   func(m analysis.Metrics) float64 { return m.MonthlyPayment },
		delta: func(d analysis.Deltas) string { return signedCurrency(d.MonthlyPayment) }},
	{label: "Monthly take-home", value: money(func(m analysis.Metrics) float64 { return m.MonthlyIncome }),
		raw: func(m analysis.Metrics) float64 { return m.MonthlyIncome }},
	{label: "Total interest", value: money(func(m analysis.Metrics) float64 { return m.TotalInterest }),
		raw: func(m analysis.Metrics) float64 { return m.TotalInterest }},
	{label: "Debt-to-income",
		value: rated(func(m analysis.Metrics) string { return format.Percentage(m.DTI) },
			func(m analysis.Metrics) string { return string(m.DTIRating) }),
		raw:   func(m analysis.Metrics) float64 { return m.DTI },
		delta: func(d analysis.Deltas) string { return signedPoints(d.DTI) }},
	{label: "Payback period", value: func(m analysis.Metrics) string { return format.Years(float64(m.Payback)) },
		raw: func(m analysis.Metrics) float64 { return float64(m.Payback) }},
	{label: "Graduation rate",
		value: rated(func(m analysis.Metrics) string { return format.Percentage(m.GraduationRate * 100) },
			func(m analysis.Metrics) string { return string(m.GraduationRating) }),
		raw:   func(m analysis.Metrics) float64 { return m.GraduationRate },
		delta: func(d analysis.Deltas) string { return signedPoints(d.GraduationRate * 100) }},
	{label: "Comfort index",
		value: rated(func(m analysis.Metrics) string { return format.Score(m.Comfort) },
			func(m analysis.Metrics) string { return string(m.ComfortRating) }),
		raw:   func(m analysis.Metrics) float64 { return m.Comfort },
		delta: func(d analysis.Deltas) string { return signedPoints(d.Comfort) }},
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, report Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := []string{"Metric"}
	for _, m := range report.Results {
		header = append(header, m.Name)
	}
	if report.Comparison != nil {
		header = append(header, "Difference")
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	descriptive := []struct {
		label string
		value func(m analysis.Metrics) string
	}{
		{"Institution", func(m analysis.Metrics) string { return m.Institution }},
		{"Program", func(m analysis.Metrics) string { return m.Program }},
		{"State", func(m analysis.Metrics) string { return m.State }},
	}
	for _, d := range descriptive {
		cells := []string{d.label}
		for _, m := range report.Results {
			cells = append(cells, d.value(m))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	for _, r := range rows {
		cells := []string{r.label}
		for _, m := range report.Results {
			cells = append(cells, r.value(m))
		}
		if report.Comparison != nil {
			delta := ""
			if r.delta != nil {
				delta = r.delta(report.Comparison.Deltas)
			}
			cells = append(cells, delta)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if report.Comparison != nil {
		if report.Comparison.Preferred != "" {
			fmt.Fprintf(w, "\nHigher comfort index: %s\n", report.Comparison.Preferred)
		} else {
			fmt.Fprintf(w, "\nBoth choices have the same comfort index\n")
		}
	}

	var notes []string
	for _, m := range report.Results {
		for _, warning := range m.Warnings {
			notes = append(notes, fmt.Sprintf("%s: %s", m.Name, warning))
		}
	}
	notes = append(notes, report.Warnings...)
	if len(notes) > 0 {
		fmt.Fprintf(w, "\nNotes:\n")
		for _, note := range notes {
			fmt.Fprintf(w, "  - %s\n", note)
		}
	}
	return nil
}

// CsvFormat outputs in comma-separated value format with one row per metric
// and one column per result. Values are unformatted; an infinite payback is
// written as "never".
func CsvFormat(w io.Writer, report Report) error {
	cw := csv.NewWriter(w)

	header := []string{"metric"}
	for _, m := range report.Results {
		header = append(header, m.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{r.label}
		for _, m := range report.Results {
			record = append(record, csvNumber(r.raw(m)))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func csvNumber(v float64) string {
	if analysis.Years(v).IsNever() {
		return "never"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// CsvString returns the CSV rendering of report.
func CsvString(report Report) string {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, report); err != nil {
		return ""
	}
	return buf.String()
}

// JSONFormat writes report as indented JSON.
func JSONFormat(w io.Writer, report Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// Write renders report in the named format: pretty, csv or json.
func Write(w io.Writer, outputFormat string, report Report) error {
	switch outputFormat {
	case "", constants.OutputFormatPretty:
		return PrettyFormat(w, report)
	case constants.OutputFormatCSV:
		return CsvFormat(w, report)
	case constants.OutputFormatJSON:
		return JSONFormat(w, report)
	default:
		return fmt.Errorf("unknown output format %s", outputFormat)
	}
}
