package array

// Position is a point in the aperture plane. Coordinates are in
// half-wavelength units (one unit = lambda/2 at the design frequency).
// A Position locates an element's electromagnetic phase centre, not its
// geometric centre.
type Position struct {
	X float64
	Y float64
}

// Add returns the elementwise vector sum p + q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// PhysicalArray holds the physical element positions of a polarimetric
// MIMO layout, split by role (transmit/receive) and polarization (H/V).
// Any of the four sets may be empty. Element order is preserved through
// synthesis so callers can map virtual elements back to the physical
// pair that produced them.
type PhysicalArray struct {
	TxH []Position
	TxV []Position
	RxH []Position
	RxV []Position
}

// Channel identifies one of the four polarimetric virtual channels.
// The first letter is the transmit polarization, the second the receive
// polarization.
type Channel string

const (
	HH Channel = "hh"
	VV Channel = "vv"
	HV Channel = "hv"
	VH Channel = "vh"
)

// Channels lists the four virtual channels in canonical order.
var Channels = []Channel{HH, VV, HV, VH}

// VirtualArray holds the four synthesized virtual channel element sets.
// Duplicate positions within or across channels are expected and
// meaningful: distinct tx/rx pairs can coincide spatially, and overlap
// analysis depends on seeing every one of them.
type VirtualArray struct {
	HH []Position
	VV []Position
	HV []Position
	VH []Position
}

// ByChannel returns the element set for the given channel tag. Unknown
// tags return nil.
func (v VirtualArray) ByChannel(c Channel) []Position {
	switch c {
	case HH:
		return v.HH
	case VV:
		return v.VV
	case HV:
		return v.HV
	case VH:
		return v.VH
	}
	return nil
}

// OverlapClass labels a detected spatial coincidence between virtual
// channels.
type OverlapClass string

const (
	// Calibration marks an intended overlap: a co-polar pair (HH+VV) or
	// a cross-polar reciprocity pair (HV+VH) coincide, giving a shared
	// spatial sample usable for amplitude/phase calibration.
	Calibration OverlapClass = "calibration"

	// Redundant marks any other multi-channel coincidence. It wastes a
	// virtual element but contributes no new spatial sample.
	Redundant OverlapClass = "redundant"
)

// OverlapRecord describes one grid cell where at least two virtual
// channels coincide. Coordinate is the quantized cell corner
// (cell key x resolution), not the original point or a centroid.
type OverlapRecord struct {
	Coordinate Position
	Channels   []Channel
	Class      OverlapClass
}

// OverlapReport is the result of one overlap analysis run. Calibration
// and Redundant hold the quantized overlap coordinates sorted ascending
// by X then Y, with no duplicates; Records carries the full per-cell
// detail in the same order, calibration cells first.
type OverlapReport struct {
	Resolution  float64
	Calibration []Position
	Redundant   []Position
	Records     []OverlapRecord
}
