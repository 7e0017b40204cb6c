package monitor

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomaar-data/aperture.report/internal/array"
)

func sampleReport() (array.VirtualArray, array.OverlapReport) {
	virt := array.VirtualArray{
		HH: []array.Position{{X: 0}, {X: 1}},
		VV: []array.Position{{X: 1}, {X: 2}},
		HV: []array.Position{{X: 3}},
		VH: []array.Position{{X: 4}},
	}
	report, err := array.AnalyzeOverlaps(virt, array.DefaultResolution)
	if err != nil {
		panic(err)
	}
	return virt, report
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestOverlapEvents(t *testing.T) {
	_, report := sampleReport()
	require.Len(t, report.Calibration, 1)
	require.Empty(t, report.Redundant)

	events := OverlapEvents("run-1", "test layout", report)
	require.Len(t, events, 1)
	ev := events[0]
	assert.Equal(t, "run-1", ev.RunID)
	assert.Equal(t, "test layout", ev.Layout)
	assert.Equal(t, array.Calibration, ev.Class)
	assert.Equal(t, report.Calibration, ev.Coordinates)
	assert.Equal(t, array.DefaultResolution, ev.Resolution)
	assert.False(t, ev.DetectedAt.IsZero())
}

func TestOverlapEventsEmptyReport(t *testing.T) {
	events := OverlapEvents("run-1", "empty", array.OverlapReport{Resolution: 0.01})
	assert.Empty(t, events)
}

func TestRenderApertureReport(t *testing.T) {
	virt, report := sampleReport()

	var buf bytes.Buffer
	err := RenderApertureReport(&buf, "test layout", virt, report)
	require.NoError(t, err)

	html := buf.String()
	assert.True(t, strings.Contains(html, "test layout"))
	for _, c := range array.Channels {
		assert.True(t, strings.Contains(html, string(c)), "missing series for channel %s", c)
	}
	assert.True(t, strings.Contains(html, "calibration overlap"))
}

func TestTopologyPlotterGenerate(t *testing.T) {
	virt, report := sampleReport()
	phys := array.PhysicalArray{
		TxH: []array.Position{{X: -4}},
		RxH: []array.Position{{X: 0}, {X: 2}},
	}

	tp := NewTopologyPlotter("test layout", t.TempDir())
	paths, err := tp.Generate(phys, virt, report)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	for _, p := range paths {
		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
		assert.Equal(t, ".png", filepath.Ext(p))
	}
}

func TestTopologyPlotterRequiresOutputDir(t *testing.T) {
	tp := &TopologyPlotter{Title: "x"}
	_, err := tp.Generate(array.PhysicalArray{}, array.VirtualArray{}, array.OverlapReport{})
	assert.Error(t, err)
}
