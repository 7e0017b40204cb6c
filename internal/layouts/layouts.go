// Package layouts provides reference physical layouts for the aperture
// analyzer, plus the JSON decoding boundary for user-supplied layouts.
package layouts

import (
	"fmt"
	"sort"

	"github.com/pomaar-data/aperture.report/internal/array"
)

// Linear lifts scalar x positions onto the aperture plane at y=0. Linear
// (1D) designs are the 2D case with a zero elevation axis, so they share
// the full synthesis and overlap path.
func Linear(xs ...float64) []array.Position {
	out := make([]array.Position, len(xs))
	for i, x := range xs {
		out[i] = array.Position{X: x}
	}
	return out
}

// TICascade builds a TI cascade-style 2D layout: a 16-element receiver
// ULA with interleaved H/V polarization, plus sparse transmitters with
// a wide azimuth baseline and an offset elevation row.
func TICascade() array.PhysicalArray {
	var rxH, rxV []array.Position
	// Interleaved pattern: H, V, H, V...
	const nRxChips, elementsPerChip = 4, 4
	for x := 0; x < nRxChips*elementsPerChip; x++ {
		pos := array.Position{X: float64(x)}
		if x%2 == 0 {
			rxH = append(rxH, pos)
		} else {
			rxV = append(rxV, pos)
		}
	}

	return array.PhysicalArray{
		// Azimuth pair at y=0, elevation element offset in y. The V
		// transmitters sit one unit inside the H ones to line the
		// virtual channels up with the interleaved receiver shift.
		TxH: []array.Position{{X: -4}, {X: 20}, {X: -4, Y: 5}},
		TxV: []array.Position{{X: -3}, {X: 19}, {X: 20, Y: 5}},
		RxH: rxH,
		RxV: rxV,
	}
}

// InterleavedPrototype builds the two-chip interleaved 1D design: each
// chip carries four receivers in an H V H V pattern, with transmitter
// pairs placed symmetrically around the receiver aperture.
func InterleavedPrototype() array.PhysicalArray {
	return array.PhysicalArray{
		TxH: Linear(-4, 12),
		TxV: Linear(-3, 11),
		RxH: Linear(0, 2, 4, 6),
		RxV: Linear(1, 3, 5, 7),
	}
}

// builtin maps layout names to their constructors.
var builtin = map[string]func() array.PhysicalArray{
	"ti-cascade":            TICascade,
	"interleaved-prototype": InterleavedPrototype,
}

// Names returns the available built-in layout names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the built-in layout with the given name.
func Get(name string) (array.PhysicalArray, error) {
	build, ok := builtin[name]
	if !ok {
		return array.PhysicalArray{}, fmt.Errorf("unknown layout %q (available: %v)", name, Names())
	}
	return build(), nil
}
