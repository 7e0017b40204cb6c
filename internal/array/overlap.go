package array

import (
	"math"
	"math/bits"
	"sort"
)

// DefaultResolution is the grid quantization step, in half-wavelength
// units, used when no tuning value is supplied. Two positions closer
// than this along both axes land in the same cell and count as
// coincident.
const DefaultResolution = 0.01

// tagSet records channel presence per grid cell. Presence only: point
// multiplicity within a cell never affects classification.
type tagSet uint8

const (
	tagHH tagSet = 1 << iota
	tagVV
	tagHV
	tagVH
)

var channelTags = map[Channel]tagSet{HH: tagHH, VV: tagVV, HV: tagHV, VH: tagVH}

func (s tagSet) contains(sub tagSet) bool { return s&sub == sub }

func (s tagSet) channels() []Channel {
	out := make([]Channel, 0, bits.OnesCount8(uint8(s)))
	for _, c := range Channels {
		if s.contains(channelTags[c]) {
			out = append(out, c)
		}
	}
	return out
}

// cellKey is the integer grid coordinate of a quantized position.
type cellKey struct {
	X int
	Y int
}

// AnalyzeOverlaps detects grid cells where two or more virtual channels
// coincide and classifies each cell. Positions are binned by
// floor(p/resolution) per axis; floor-based binning (not rounding) is
// the fixed tie-break contract at cell boundaries.
//
// A cell containing both channels of a co-polar pair (HH+VV) or a
// cross-polar reciprocity pair (HV+VH) is a calibration overlap, even
// when further channels are present; any other >=2-channel cell is
// redundant. Each overlap is reported once, at the cell's quantized
// corner (cell key x resolution). Downstream consumers rely on the
// grid-aligned coordinate, so it is reported as-is rather than any
// exact coincident point.
//
// The input is never mutated. Empty channels yield empty outputs, not
// an error; resolution must be a finite value > 0.
func AnalyzeOverlaps(virt VirtualArray, resolution float64) (OverlapReport, error) {
	if !(resolution > 0) || math.IsInf(resolution, 0) {
		return OverlapReport{}, &ValidationError{
			Field:  "resolution",
			Reason: "must be a finite value > 0",
		}
	}

	occupied := make(map[cellKey]tagSet)
	for _, c := range Channels {
		tag := channelTags[c]
		for _, p := range virt.ByChannel(c) {
			key := cellKey{
				X: int(math.Floor(p.X / resolution)),
				Y: int(math.Floor(p.Y / resolution)),
			}
			occupied[key] |= tag
		}
	}

	report := OverlapReport{Resolution: resolution}
	for key, tags := range occupied {
		if bits.OnesCount8(uint8(tags)) < 2 {
			continue
		}
		rec := OverlapRecord{
			Coordinate: Position{
				X: float64(key.X) * resolution,
				Y: float64(key.Y) * resolution,
			},
			Channels: tags.channels(),
			Class:    Redundant,
		}
		if tags.contains(tagHH|tagVV) || tags.contains(tagHV|tagVH) {
			rec.Class = Calibration
		}
		report.Records = append(report.Records, rec)
	}

	// Sort overlaps by X then Y so repeated runs over the same layout
	// produce identical output (map iteration order is random).
	sort.Slice(report.Records, func(i, j int) bool {
		a, b := report.Records[i].Coordinate, report.Records[j].Coordinate
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})

	for _, rec := range report.Records {
		switch rec.Class {
		case Calibration:
			report.Calibration = append(report.Calibration, rec.Coordinate)
		case Redundant:
			report.Redundant = append(report.Redundant, rec.Coordinate)
		}
	}

	// Calibration cells first, then redundant, each X-then-Y sorted.
	sort.SliceStable(report.Records, func(i, j int) bool {
		return report.Records[i].Class == Calibration && report.Records[j].Class == Redundant
	})

	return report, nil
}
