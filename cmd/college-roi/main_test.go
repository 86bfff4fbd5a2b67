package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/college-roi/internal/analysis"
	"github.com/iwvelando/college-roi/internal/config"
	"github.com/iwvelando/college-roi/internal/lookup"
	"github.com/iwvelando/college-roi/pkg/constants"
	"go.uber.org/zap"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		logging   config.LoggingConfig
		override  string
		wantError bool
	}{
		{"defaults", config.LoggingConfig{}, "", false},
		{"console debug", config.LoggingConfig{Level: "debug", Format: "console"}, "", false},
		{"override wins", config.LoggingConfig{Level: "bogus"}, "warn", false},
		{"invalid level", config.LoggingConfig{Level: "verbose"}, "", true},
		{"invalid format", config.LoggingConfig{Format: "xml"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.logging, tt.override)
			if tt.wantError {
				if err == nil {
					t.Error("initializeLogger() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("initializeLogger() error = %v", err)
			}
			if logger == nil {
				t.Fatal("initializeLogger() returned nil logger")
			}
		})
	}
}

func TestInitializeLoggerOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "college-roi.log")

	logger, err := initializeLogger(config.LoggingConfig{OutputFile: path}, "")
	if err != nil {
		t.Fatalf("initializeLogger() error = %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	if err := loadDotEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("missing .env should be ignored, got %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("COLLEGE_ROI_TEST_VALUE=42\n"), 0600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	t.Setenv("COLLEGE_ROI_TEST_VALUE", "")
	os.Unsetenv("COLLEGE_ROI_TEST_VALUE")

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv() error = %v", err)
	}
	if os.Getenv("COLLEGE_ROI_TEST_VALUE") != "42" {
		t.Fatalf("expected value from .env, got %q", os.Getenv("COLLEGE_ROI_TEST_VALUE"))
	}
}

func TestWriteReport(t *testing.T) {
	records := `
cache:
  backend: memory
institutions:
  - id: 7
    name: Report University
    state: TX
    control: public
`
	conf, err := config.LoadConfigurationFromReader(strings.NewReader(records))
	if err != nil {
		t.Fatalf("failed to load configuration: %v", err)
	}

	tests := []struct {
		name       string
		selections []analysis.Selection
		wantErr    error
		wantOutput string
	}{
		{"single selection", []analysis.Selection{{Name: "texas", InstitutionID: 7, CIPCode: "11.0701"}}, nil, "texas"},
		{"unknown institution", []analysis.Selection{{Name: "missing", InstitutionID: 99}}, lookup.ErrNotFound, ""},
		{"no selections", nil, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := writeReport(context.Background(), zap.NewNop(), conf, tt.selections, constants.OutputFormatCSV, nil, &buf)

			if tt.wantOutput == "" {
				if err == nil {
					t.Fatal("writeReport() expected error but got none")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("writeReport() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("writeReport() unexpected error: %v", err)
			}
			if !strings.Contains(buf.String(), tt.wantOutput) {
				t.Errorf("output missing %q:\n%s", tt.wantOutput, buf.String())
			}
		})
	}
}
