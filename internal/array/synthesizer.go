package array

// Synthesize computes the MIMO virtual array (the spatial convolution of
// transmit and receive apertures) for each polarimetric channel. Every
// (tx, rx) pair contributes one virtual element at tx+rx, iterated
// tx-major, rx-minor, so |channel| == |tx_pol| * |rx_pol| exactly and
// identical inputs always produce identically ordered outputs.
//
// An empty transmit or receive set yields an empty channel; that is a
// valid degenerate layout, not an error. Validation failure aborts the
// whole call with no partial result.
func Synthesize(phys PhysicalArray) (VirtualArray, error) {
	if err := phys.Validate(); err != nil {
		return VirtualArray{}, err
	}
	return VirtualArray{
		HH: convolve(phys.TxH, phys.RxH),
		VV: convolve(phys.TxV, phys.RxV),
		HV: convolve(phys.TxH, phys.RxV),
		VH: convolve(phys.TxV, phys.RxH),
	}, nil
}

// convolve emits tx+rx for every pair, tx-major. Coincident sums are
// kept as-is: deduplication here would break overlap analysis.
func convolve(tx, rx []Position) []Position {
	if len(tx) == 0 || len(rx) == 0 {
		return nil
	}
	out := make([]Position, 0, len(tx)*len(rx))
	for _, t := range tx {
		for _, r := range rx {
			out = append(out, t.Add(r))
		}
	}
	return out
}
