package array

import (
	"fmt"
	"math"
)

// ValidationError reports a malformed input rejected before any
// processing. Field names the offending array or parameter.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks every element position for non-finite coordinates.
// Empty sets are valid. The Position type fixes dimensionality at two,
// so ragged or non-2D input can only arise at a decoding boundary (see
// package layouts) and is rejected there.
func (a PhysicalArray) Validate() error {
	sets := []struct {
		name      string
		positions []Position
	}{
		{"tx_h", a.TxH},
		{"tx_v", a.TxV},
		{"rx_h", a.RxH},
		{"rx_v", a.RxV},
	}
	for _, s := range sets {
		for i, p := range s.positions {
			if !isFinite(p.X) || !isFinite(p.Y) {
				return &ValidationError{
					Field:  s.name,
					Reason: fmt.Sprintf("element %d has non-finite coordinate (%v, %v)", i, p.X, p.Y),
				}
			}
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
