package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pomaar-data/aperture.report/internal/array"
)

// TuningConfig represents the analysis tuning parameters. Fields are
// pointers so a partial JSON file only overrides what it names; the
// Get* methods supply defaults for everything else.
type TuningConfig struct {
	// GridResolution is the overlap analysis quantization step in
	// half-wavelength units. Must be > 0.
	GridResolution *float64 `json:"grid_resolution,omitempty"`

	// DesignFrequencyHz sets the carrier frequency used when converting
	// element positions to physical distance. Must be > 0.
	DesignFrequencyHz *float64 `json:"design_frequency_hz,omitempty"`

	// ReportTitle is the heading used on generated plots and the HTML
	// aperture report.
	ReportTitle *string `json:"report_title,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }

// Default tuning values. 77 GHz matches the TI cascade automotive
// radars the reference layouts are modelled on.
const (
	DefaultDesignFrequencyHz = 77e9
	DefaultReportTitle       = "2D polarimetric MIMO layout"
)

// DefaultTuningConfig returns a TuningConfig populated with default values.
func DefaultTuningConfig() *TuningConfig {
	return &TuningConfig{
		GridResolution:    ptrFloat64(array.DefaultResolution),
		DesignFrequencyHz: ptrFloat64(DefaultDesignFrequencyHz),
		ReportTitle:       ptrString(DefaultReportTitle),
	}
}

// EmptyTuningConfig returns a TuningConfig with all fields set to nil.
// Use LoadTuningConfig to load actual values from a file.
func EmptyTuningConfig() *TuningConfig {
	return &TuningConfig{}
}

// LoadTuningConfig loads a TuningConfig from a JSON file. Fields omitted
// from the file retain their default values, so partial configs are safe.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyTuningConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all set fields hold usable values.
func (c *TuningConfig) Validate() error {
	if c.GridResolution != nil && *c.GridResolution <= 0 {
		return fmt.Errorf("grid_resolution must be > 0, got %v", *c.GridResolution)
	}
	if c.DesignFrequencyHz != nil && *c.DesignFrequencyHz <= 0 {
		return fmt.Errorf("design_frequency_hz must be > 0, got %v", *c.DesignFrequencyHz)
	}
	return nil
}

// GetGridResolution returns the grid resolution, falling back to the
// package default when unset.
func (c *TuningConfig) GetGridResolution() float64 {
	if c.GridResolution != nil {
		return *c.GridResolution
	}
	return array.DefaultResolution
}

// GetDesignFrequencyHz returns the design frequency, falling back to
// the package default when unset.
func (c *TuningConfig) GetDesignFrequencyHz() float64 {
	if c.DesignFrequencyHz != nil {
		return *c.DesignFrequencyHz
	}
	return DefaultDesignFrequencyHz
}

// GetReportTitle returns the report title, falling back to the package
// default when unset.
func (c *TuningConfig) GetReportTitle() string {
	if c.ReportTitle != nil {
		return *c.ReportTitle
	}
	return DefaultReportTitle
}
