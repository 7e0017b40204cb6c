package monitor

import (
	"time"

	"github.com/google/uuid"

	"github.com/pomaar-data/aperture.report/internal/array"
)

// OverlapEvent is the structured record emitted for each detected
// overlap set: one classification tag plus the quantized coordinates it
// covers. Consumers decide how to log or ship it.
type OverlapEvent struct {
	RunID       string
	Layout      string
	Class       array.OverlapClass
	Resolution  float64
	Coordinates []array.Position
	DetectedAt  time.Time
}

// NewRunID returns a fresh analysis run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// OverlapEvents converts an overlap report into logging events, one per
// overlap class that detected anything. An empty report yields no
// events.
func OverlapEvents(runID, layout string, report array.OverlapReport) []OverlapEvent {
	now := time.Now()
	var events []OverlapEvent
	if len(report.Calibration) > 0 {
		events = append(events, OverlapEvent{
			RunID:       runID,
			Layout:      layout,
			Class:       array.Calibration,
			Resolution:  report.Resolution,
			Coordinates: report.Calibration,
			DetectedAt:  now,
		})
	}
	if len(report.Redundant) > 0 {
		events = append(events, OverlapEvent{
			RunID:       runID,
			Layout:      layout,
			Class:       array.Redundant,
			Resolution:  report.Resolution,
			Coordinates: report.Redundant,
			DetectedAt:  now,
		})
	}
	return events
}
