package layouts

import (
	"encoding/json"
	"fmt"

	"github.com/pomaar-data/aperture.report/internal/array"
)

// layoutJSON is the on-disk layout schema: four named position lists,
// each position a [x, y] pair in half-wavelength units.
type layoutJSON struct {
	TxH [][]float64 `json:"tx_h"`
	TxV [][]float64 `json:"tx_v"`
	RxH [][]float64 `json:"rx_h"`
	RxV [][]float64 `json:"rx_v"`
}

// FromJSON decodes a user-supplied layout. Ragged or non-2D rows are
// rejected here with a ValidationError naming the offending array; the
// core only ever sees well-formed Positions.
func FromJSON(data []byte) (array.PhysicalArray, error) {
	var raw layoutJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return array.PhysicalArray{}, fmt.Errorf("failed to parse layout JSON: %w", err)
	}

	var phys array.PhysicalArray
	var err error
	if phys.TxH, err = toPositions("tx_h", raw.TxH); err != nil {
		return array.PhysicalArray{}, err
	}
	if phys.TxV, err = toPositions("tx_v", raw.TxV); err != nil {
		return array.PhysicalArray{}, err
	}
	if phys.RxH, err = toPositions("rx_h", raw.RxH); err != nil {
		return array.PhysicalArray{}, err
	}
	if phys.RxV, err = toPositions("rx_v", raw.RxV); err != nil {
		return array.PhysicalArray{}, err
	}

	if err := phys.Validate(); err != nil {
		return array.PhysicalArray{}, err
	}
	return phys, nil
}

func toPositions(name string, rows [][]float64) ([]array.Position, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	out := make([]array.Position, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return nil, &array.ValidationError{
				Field:  name,
				Reason: fmt.Sprintf("element %d has %d coordinates, want 2", i, len(row)),
			}
		}
		out[i] = array.Position{X: row[0], Y: row[1]}
	}
	return out, nil
}
