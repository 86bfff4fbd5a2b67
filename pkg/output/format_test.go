package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iwvelando/college-roi/internal/analysis"
)

func plannerMetrics(name string) analysis.Metrics {
	as := analysis.DefaultAssumptions()
	as.RoommateCount = 2
	in := analysis.InputsFromAssumptions(as)
	in.Costs.Tuition = 10000
	in.Costs.Housing = 12000
	in.Year1Salary = 50000
	in.GraduationRate = 0.5

	m := analysis.Compute(in)
	m.Name = name
	m.Institution = "State University"
	m.Program = "Computer Science"
	m.State = "OH"
	return m
}

func noEarningsMetrics(name string) analysis.Metrics {
	in := analysis.InputsFromAssumptions(analysis.DefaultAssumptions())
	in.Costs.Tuition = 30000
	in.GraduationRate = 0.9

	m := analysis.Compute(in)
	m.Name = name
	m.Warnings = []string{"no program earnings reported"}
	return m
}

func TestPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := PrettyFormat(&buf, NewReport([]analysis.Metrics{plannerMetrics("Test Program")}, nil)); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	output := buf.String()

	expected := []string{
		"Metric",
		"Test Program",
		"State University",
		"$26,400",
		"$105,600",
		"$6,000",
		"-14.2%",
		"$1,146",
		"$3,250",
		"35.3% (High)",
		"21.1 years",
		"50.0% (Low)",
		"40/100 (Poor)",
	}
	for _, e := range expected {
		if !strings.Contains(output, e) {
			t.Errorf("PrettyFormat output missing %q:\n%s", e, output)
		}
	}
	if strings.Contains(output, "Difference") {
		t.Errorf("PrettyFormat should not show a difference column for one result")
	}
}

func TestPrettyFormatComparison(t *testing.T) {
	report := NewReport([]analysis.Metrics{plannerMetrics("A"), noEarningsMetrics("B")}, []string{"Loan APR is high"})
	if report.Comparison == nil {
		t.Fatal("expected a comparison for two results")
	}

	var buf bytes.Buffer
	if err := PrettyFormat(&buf, report); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	output := buf.String()

	for _, e := range []string{"Difference", "Never", "Higher comfort index:", "Notes:", "B: no program earnings reported", "Loan APR is high"} {
		if !strings.Contains(output, e) {
			t.Errorf("PrettyFormat output missing %q:\n%s", e, output)
		}
	}
}

func TestCsvFormat(t *testing.T) {
	report := NewReport([]analysis.Metrics{plannerMetrics("A"), noEarningsMetrics("B")}, nil)
	records, err := csv.NewReader(strings.NewReader(CsvString(report))).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}

	if len(records) != len(rows)+1 {
		t.Fatalf("expected %d records, got %d", len(rows)+1, len(records))
	}
	if strings.Join(records[0], ",") != "metric,A,B" {
		t.Errorf("unexpected header %v", records[0])
	}

	byLabel := make(map[string][]string)
	for _, record := range records[1:] {
		byLabel[record[0]] = record[1:]
	}
	if got := byLabel["Total annual cost"][0]; got != "26400.00" {
		t.Errorf("expected total annual cost 26400.00, got %s", got)
	}
	if got := byLabel["Debt at graduation"][0]; got != "105600.00" {
		t.Errorf("expected debt 105600.00, got %s", got)
	}
	if got := byLabel["Payback period"][1]; got != "never" {
		t.Errorf("expected never payback for B, got %s", got)
	}
}

func TestJSONFormat(t *testing.T) {
	report := NewReport([]analysis.Metrics{plannerMetrics("A"), noEarningsMetrics("B")}, nil)

	var buf bytes.Buffer
	if err := JSONFormat(&buf, report); err != nil {
		t.Fatalf("JSONFormat() error = %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}
	if len(decoded.Results) != 2 || decoded.Comparison == nil {
		t.Fatalf("unexpected decoded report %+v", decoded)
	}
	if !decoded.Results[1].Payback.IsNever() {
		t.Errorf("expected infinite payback to survive encoding, got %v", decoded.Results[1].Payback)
	}
	if decoded.Results[0].TotalAnnualCost != 26400 {
		t.Errorf("expected total annual cost 26400, got %v", decoded.Results[0].TotalAnnualCost)
	}
}

func TestWrite(t *testing.T) {
	report := NewReport([]analysis.Metrics{plannerMetrics("A")}, nil)
	for _, format := range []string{"", "pretty", "csv", "json"} {
		var buf bytes.Buffer
		if err := Write(&buf, format, report); err != nil {
			t.Errorf("Write(%q) error = %v", format, err)
		}
		if buf.Len() == 0 {
			t.Errorf("Write(%q) produced no output", format)
		}
	}

	if err := Write(&bytes.Buffer{}, "xml", report); err == nil {
		t.Error("expected error for unknown format")
	}
}
