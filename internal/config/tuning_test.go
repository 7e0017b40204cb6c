package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTuningConfig(t *testing.T) {
	cfg := DefaultTuningConfig()

	// Test that defaults are set via pointers
	if cfg.GridResolution == nil || *cfg.GridResolution != 0.01 {
		t.Errorf("Expected GridResolution 0.01, got %v", cfg.GridResolution)
	}
	if cfg.DesignFrequencyHz == nil || *cfg.DesignFrequencyHz != 77e9 {
		t.Errorf("Expected DesignFrequencyHz 77e9, got %v", cfg.DesignFrequencyHz)
	}
	if cfg.ReportTitle == nil || *cfg.ReportTitle != "2D polarimetric MIMO layout" {
		t.Errorf("Expected default report title, got %v", cfg.ReportTitle)
	}

	// Test getter methods
	if cfg.GetGridResolution() != 0.01 {
		t.Errorf("GetGridResolution() = %f, want 0.01", cfg.GetGridResolution())
	}
	if cfg.GetDesignFrequencyHz() != 77e9 {
		t.Errorf("GetDesignFrequencyHz() = %f, want 77e9", cfg.GetDesignFrequencyHz())
	}
}

func TestEmptyTuningConfigGetters(t *testing.T) {
	cfg := EmptyTuningConfig()

	if cfg.GetGridResolution() != 0.01 {
		t.Errorf("GetGridResolution() fallback = %f, want 0.01", cfg.GetGridResolution())
	}
	if cfg.GetReportTitle() != "2D polarimetric MIMO layout" {
		t.Errorf("GetReportTitle() fallback = %q", cfg.GetReportTitle())
	}
}

func TestLoadTuningConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.json")

	testJSON := `{
  "grid_resolution": 0.05,
  "report_title": "bench prototype"
}`
	if err := os.WriteFile(configPath, []byte(testJSON), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadTuningConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.GridResolution == nil || *cfg.GridResolution != 0.05 {
		t.Errorf("Expected GridResolution 0.05, got %v", cfg.GridResolution)
	}
	if cfg.GetReportTitle() != "bench prototype" {
		t.Errorf("GetReportTitle() = %q, want \"bench prototype\"", cfg.GetReportTitle())
	}
	// Omitted field falls back to default
	if cfg.GetDesignFrequencyHz() != 77e9 {
		t.Errorf("GetDesignFrequencyHz() = %f, want 77e9", cfg.GetDesignFrequencyHz())
	}
}

func TestLoadTuningConfigRejectsBadValues(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bad.json")

	if err := os.WriteFile(configPath, []byte(`{"grid_resolution": -1}`), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	if _, err := LoadTuningConfig(configPath); err == nil {
		t.Error("expected error for non-positive grid_resolution")
	}
}

func TestLoadTuningConfigRejectsNonJSON(t *testing.T) {
	if _, err := LoadTuningConfig("tuning.yaml"); err == nil {
		t.Error("expected error for non-.json extension")
	}
}

func TestValidate(t *testing.T) {
	cfg := &TuningConfig{GridResolution: ptrFloat64(0.02)}
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg = &TuningConfig{DesignFrequencyHz: ptrFloat64(0)}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero design frequency")
	}
}
