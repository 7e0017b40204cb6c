package monitor

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pomaar-data/aperture.report/internal/array"
)

// RenderApertureReport writes a standalone HTML scatter report of the
// virtual aperture using go-echarts: one series per channel plus the
// detected overlap cells. The caller owns the writer; nothing touches
// the filesystem here.
func RenderApertureReport(w io.Writer, title string, virt array.VirtualArray, report array.OverlapReport) error {
	var all []array.Position
	for _, c := range array.Channels {
		all = append(all, virt.ByChannel(c)...)
	}
	pad := axisPad(all)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
			Subtitle: fmt.Sprintf("resolution=%g calibration=%d redundant=%d",
				report.Resolution, len(report.Calibration), len(report.Redundant)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: -pad, Max: pad, Name: "Azimuth (lambda/2)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: -pad, Max: pad, Name: "Elevation (lambda/2)", NameLocation: "middle", NameGap: 30}),
	)

	channelColors := map[array.Channel]string{
		array.HH: "#0047AB",
		array.VV: "#DC143C",
		array.HV: "#2E8B57",
		array.VH: "#8A2BE2",
	}
	for _, c := range array.Channels {
		positions := virt.ByChannel(c)
		if len(positions) == 0 {
			continue
		}
		scatter.AddSeries(string(c), scatterData(positions),
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: channelColors[c]}),
		)
	}

	if len(report.Calibration) > 0 {
		scatter.AddSeries("calibration overlap", scatterData(report.Calibration),
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 18}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#FFD700", Opacity: opts.Float(0.5)}),
		)
	}
	if len(report.Redundant) > 0 {
		scatter.AddSeries("redundant overlap", scatterData(report.Redundant),
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 18}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "#FF0000", Opacity: opts.Float(0.5)}),
		)
	}

	return scatter.Render(w)
}

func scatterData(positions []array.Position) []opts.ScatterData {
	data := make([]opts.ScatterData, len(positions))
	for i, p := range positions {
		data[i] = opts.ScatterData{Value: []interface{}{p.X, p.Y}}
	}
	return data
}

// axisPad picks symmetric axis bounds with a small margin so edge
// points stay visible.
func axisPad(positions []array.Position) float64 {
	maxAbs := 0.0
	for _, p := range positions {
		if math.Abs(p.X) > maxAbs {
			maxAbs = math.Abs(p.X)
		}
		if math.Abs(p.Y) > maxAbs {
			maxAbs = math.Abs(p.Y)
		}
	}
	pad := maxAbs * 1.05
	if pad == 0 {
		pad = 1.0
	}
	return pad
}
