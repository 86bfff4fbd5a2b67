package config

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/college-roi/internal/analysis"
	"github.com/iwvelando/college-roi/internal/lookup"
	"github.com/iwvelando/college-roi/pkg/constants"
	"go.uber.org/zap"
)

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		wantError  bool
	}{
		{
			name:       "Non-existent config file",
			configPath: "nonexistent.yaml",
			wantError:  true,
		},
		{
			name:       "Test config",
			configPath: "../../test/test_config.yaml",
		},
		{
			name:       "Example config",
			configPath: "../../config.yaml.example",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfiguration(tt.configPath)
			if tt.wantError {
				if err == nil {
					t.Errorf("LoadConfiguration() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("LoadConfiguration() error = %v", err)
				return
			}
			if config == nil {
				t.Errorf("LoadConfiguration() returned nil config")
			}
		})
	}
}

func TestLoadConfigurationStructure(t *testing.T) {
	config, err := LoadConfiguration("../../test/test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if config.Assumptions.RoommateCount != 2 {
		t.Errorf("Expected RoommateCount = 2, got %v", config.Assumptions.RoommateCount)
	}
	if config.Assumptions.LoanAPR != 0.055 {
		t.Errorf("Expected LoanAPR = 0.055, got %v", config.Assumptions.LoanAPR)
	}
	// Omitted keys keep their defaults.
	if config.Assumptions.LoanTermYears != constants.DefaultLoanTermYears || config.Assumptions.Years != constants.DefaultStudyYears {
		t.Errorf("Expected default term and years, got %d and %d", config.Assumptions.LoanTermYears, config.Assumptions.Years)
	}
	if config.Assumptions.BaselineEarnings != constants.DefaultBaselineEarnings {
		t.Errorf("Expected default baseline earnings, got %v", config.Assumptions.BaselineEarnings)
	}

	if len(config.Selections) != 2 {
		t.Fatalf("Expected 2 selections, got %d", len(config.Selections))
	}
	if config.Selections[0].InstitutionID != 204796 || config.Selections[0].CIPCode != "11.0701" {
		t.Errorf("Unexpected first selection %+v", config.Selections[0])
	}

	if len(config.Institutions) != 2 {
		t.Fatalf("Expected 2 institutions, got %d", len(config.Institutions))
	}
	if config.Institutions[0].Control != lookup.ControlPublic {
		t.Errorf("Expected public control, got %v", config.Institutions[0].Control)
	}
	if config.Institutions[1].Control != lookup.ControlPrivateNonprofit {
		t.Errorf("Expected private nonprofit control, got %v", config.Institutions[1].Control)
	}
	if config.Institutions[0].GraduationRate != nil {
		t.Errorf("Expected unreported graduation rate, got %v", *config.Institutions[0].GraduationRate)
	}
	if config.Institutions[1].GraduationRate == nil || *config.Institutions[1].GraduationRate != 0.97 {
		t.Errorf("Expected graduation rate 0.97")
	}

	if config.Programs[1].MedianEarnings1yr != nil {
		t.Errorf("Expected unreported earnings for second program")
	}
	if config.Regions[1].State != "MA" || config.Regions[1].Housing1BR != 24000 {
		t.Errorf("Unexpected region %+v", config.Regions[1])
	}

	if config.Cache.Backend != constants.CacheBackendMemory || config.Cache.TTLDuration() != 10*time.Minute {
		t.Errorf("Unexpected cache config %+v", config.Cache)
	}
	if config.Output.Format != constants.OutputFormatPretty {
		t.Errorf("Expected pretty output, got %s", config.Output.Format)
	}
}

func TestLoadConfigurationFromReader(t *testing.T) {
	yamlConfig := `
assumptions:
  housingType: at_home
  aid:
    grants: 5000
selections:
  - institutionId: 1
    cipCode: "11.0701"
institutions:
  - id: 1
    name: Test
    state: tx
    control: 2
`
	config, err := LoadConfigurationFromReader(strings.NewReader(yamlConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader() error = %v", err)
	}
	if config.Assumptions.HousingType != constants.HousingAtHome {
		t.Errorf("Expected at_home housing, got %s", config.Assumptions.HousingType)
	}
	if config.Assumptions.Aid.Grants != 5000 {
		t.Errorf("Expected grants 5000, got %v", config.Assumptions.Aid.Grants)
	}
	if config.Assumptions.FoodMonthly != constants.DefaultFoodMonthly {
		t.Errorf("Expected default food, got %v", config.Assumptions.FoodMonthly)
	}
	if config.Institutions[0].Control != lookup.ControlPrivateNonprofit {
		t.Errorf("Expected numeric control code to decode, got %v", config.Institutions[0].Control)
	}

	if _, err := LoadConfigurationFromReader(strings.NewReader("assumptions: [")); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestValidateConfiguration(t *testing.T) {
	config, err := LoadConfiguration("../../test/test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if warnings := config.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}

	tests := []struct {
		name     string
		mutate   func(c *Configuration)
		contains string
	}{
		{"no selections", func(c *Configuration) { c.Selections = nil }, "No selections"},
		{"too many selections", func(c *Configuration) {
			c.Selections = append(c.Selections, c.Selections[0])
		}, "only the first two"},
		{"unknown institution", func(c *Configuration) { c.Selections[0].InstitutionID = 1 }, "unknown institution 1"},
		{"graduation rate", func(c *Configuration) { c.Institutions[1].GraduationRate = lookup.Float(97) }, "outside 0-1"},
		{"negative tuition", func(c *Configuration) { c.Institutions[0].TuitionInState = lookup.Float(-1) }, "negative tuition"},
		{"high APR", func(c *Configuration) { c.Assumptions.LoanAPR = 0.15 }, "Loan APR"},
		{"unknown cache", func(c *Configuration) { c.Cache.Backend = "memcached" }, "Unknown cache backend"},
		{"redis without address", func(c *Configuration) { c.Cache.Backend = constants.CacheBackendRedis }, "without an address"},
		{"output format", func(c *Configuration) { c.Output.Format = "xml" }, "output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := LoadConfiguration("../../test/test_config.yaml")
			if err != nil {
				t.Fatalf("LoadConfiguration() error = %v", err)
			}
			tt.mutate(c)

			warnings := c.ValidateConfiguration()
			for _, w := range warnings {
				if strings.Contains(w, tt.contains) {
					return
				}
			}
			t.Errorf("Expected a warning containing %q, got %v", tt.contains, warnings)
		})
	}
}

func TestBuildDirectory(t *testing.T) {
	config, err := LoadConfiguration("../../test/test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	ctx := context.Background()

	tests := []struct {
		name    string
		backend string
		cached  bool
	}{
		{"memory", constants.CacheBackendMemory, true},
		{"none", "", false},
		{"redis without address", constants.CacheBackendRedis, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.Cache.Backend = tt.backend
			dir, closeFn := config.BuildDirectory(ctx, zap.NewNop())
			defer func() {
				if err := closeFn(); err != nil {
					t.Errorf("close error = %v", err)
				}
			}()

			_, isCached := dir.(*lookup.CachedDirectory)
			if isCached != tt.cached {
				t.Errorf("Expected cached=%v, got %T", tt.cached, dir)
			}

			inst, err := dir.Institution(ctx, 204796)
			if err != nil || inst.State != "OH" {
				t.Errorf("Unexpected institution %+v, err %v", inst, err)
			}
			if dir.HousingCost(ctx, "ma") != 24000 {
				t.Errorf("Expected MA housing 24000, got %v", dir.HousingCost(ctx, "ma"))
			}
		})
	}
}

func TestConfiguredAnalysis(t *testing.T) {
	config, err := LoadConfiguration("../../test/test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	dir, closeFn := config.BuildDirectory(context.Background(), nil)
	defer closeFn()

	analyzer := analysis.NewAnalyzer(zap.NewNop(), dir)
	m, err := analyzer.Analyze(context.Background(), config.Selections[0], config.Assumptions)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if m.TotalAnnualCost != 26400 || m.CumulativeDebt != 105600 {
		t.Errorf("Expected cost 26400 and debt 105600, got %.2f and %.2f", m.TotalAnnualCost, m.CumulativeDebt)
	}
}

func TestActiveSelections(t *testing.T) {
	c := Configuration{Selections: make([]analysis.Selection, 3)}
	if len(c.ActiveSelections()) != 2 {
		t.Errorf("Expected 2 active selections, got %d", len(c.ActiveSelections()))
	}
}
