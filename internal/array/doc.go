// Package array owns the polarimetric MIMO virtual array model.
//
// Responsibilities: physical layout validation, virtual array synthesis
// (the tx/rx spatial convolution), and overlap detection between the
// four polarimetric virtual channels.
// Key types: Position, PhysicalArray, VirtualArray, OverlapReport.
//
// All operations are pure functions over value types; the package does
// no I/O and holds no state between calls.
package array
