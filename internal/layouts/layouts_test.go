package layouts

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pomaar-data/aperture.report/internal/array"
)

func TestLinear(t *testing.T) {
	got := Linear(-4, 12)
	want := []array.Position{{X: -4}, {X: 12}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Linear mismatch (-want +got):\n%s", diff)
	}
	if len(Linear()) != 0 {
		t.Error("Linear() with no args should be empty")
	}
}

func TestTICascade(t *testing.T) {
	phys := TICascade()

	// 16 interleaved receivers: 8 H, 8 V, alternating along x.
	if len(phys.RxH) != 8 || len(phys.RxV) != 8 {
		t.Fatalf("receiver counts = %d H, %d V, want 8/8", len(phys.RxH), len(phys.RxV))
	}
	for i, p := range phys.RxH {
		if p.X != float64(2*i) || p.Y != 0 {
			t.Errorf("RxH[%d] = %v, want (%d, 0)", i, p, 2*i)
		}
	}
	for i, p := range phys.RxV {
		if p.X != float64(2*i+1) || p.Y != 0 {
			t.Errorf("RxV[%d] = %v, want (%d, 0)", i, p, 2*i+1)
		}
	}

	if len(phys.TxH) != 3 || len(phys.TxV) != 3 {
		t.Fatalf("transmitter counts = %d H, %d V, want 3/3", len(phys.TxH), len(phys.TxV))
	}
	if err := phys.Validate(); err != nil {
		t.Errorf("TICascade layout should validate: %v", err)
	}
}

func TestInterleavedPrototypeOverlaps(t *testing.T) {
	// The symmetric tx placement is designed to make HV and VH land on
	// shared cells: tx_h+rx_v and tx_v+rx_h both cover odd positions.
	phys := InterleavedPrototype()
	virt, err := array.Synthesize(phys)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	report, err := array.AnalyzeOverlaps(virt, array.DefaultResolution)
	if err != nil {
		t.Fatalf("AnalyzeOverlaps failed: %v", err)
	}
	if len(report.Calibration) == 0 {
		t.Error("interleaved prototype should produce calibration overlaps")
	}
}

func TestGet(t *testing.T) {
	for _, name := range Names() {
		if _, err := Get(name); err != nil {
			t.Errorf("Get(%q) failed: %v", name, err)
		}
	}
	if _, err := Get("no-such-layout"); err == nil {
		t.Error("expected error for unknown layout name")
	}
}

func TestFromJSON(t *testing.T) {
	data := []byte(`{
  "tx_h": [[-4, 0], [20, 0]],
  "tx_v": [[-3, 0]],
  "rx_h": [[0, 0], [2, 0]],
  "rx_v": [[1, 0]]
}`)
	phys, err := FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	want := []array.Position{{X: -4}, {X: 20}}
	if diff := cmp.Diff(want, phys.TxH); diff != "" {
		t.Errorf("TxH mismatch (-want +got):\n%s", diff)
	}
	if len(phys.RxV) != 1 {
		t.Errorf("len(RxV) = %d, want 1", len(phys.RxV))
	}
}

func TestFromJSONRejectsRaggedRows(t *testing.T) {
	cases := []string{
		`{"rx_h": [[1, 2, 3]]}`, // 3D point
		`{"tx_v": [[1]]}`,       // 1D point
		`{"tx_h": [[]]}`,        // empty row
	}
	for _, data := range cases {
		_, err := FromJSON([]byte(data))
		var verr *array.ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("input %s: expected ValidationError, got %v", data, err)
		}
	}
}

func TestFromJSONEmptyLayout(t *testing.T) {
	phys, err := FromJSON([]byte(`{}`))
	if err != nil {
		t.Fatalf("empty layout should be valid: %v", err)
	}
	if len(phys.TxH)+len(phys.TxV)+len(phys.RxH)+len(phys.RxV) != 0 {
		t.Errorf("expected all sets empty, got %+v", phys)
	}
}
