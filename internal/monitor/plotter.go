package monitor

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/pomaar-data/aperture.report/internal/array"
)

// Channel colours: H-polarized blue, V-polarized crimson, cross-polar
// channels sea green (HV) and blue violet (VH).
var (
	colorH    = color.RGBA{R: 0x00, G: 0x47, B: 0xAB, A: 255}
	colorV    = color.RGBA{R: 0xDC, G: 0x14, B: 0x3C, A: 255}
	colorHV   = color.RGBA{R: 0x2E, G: 0x8B, B: 0x57, A: 255}
	colorVH   = color.RGBA{R: 0x8A, G: 0x2B, B: 0xE2, A: 255}
	colorGold = color.RGBA{R: 0xFF, G: 0xD7, B: 0x00, A: 255}
	colorRed  = color.RGBA{R: 0xFF, G: 0x00, B: 0x00, A: 255}
)

// TopologyPlotter writes PNG plots of a layout's physical array and its
// virtual aperture, with detected overlaps ringed.
type TopologyPlotter struct {
	Title     string
	OutputDir string
}

// NewTopologyPlotter creates a plotter writing into outputDir.
func NewTopologyPlotter(title, outputDir string) *TopologyPlotter {
	return &TopologyPlotter{Title: title, OutputDir: outputDir}
}

// Generate writes physical.png and virtual.png and returns the written
// paths.
func (tp *TopologyPlotter) Generate(phys array.PhysicalArray, virt array.VirtualArray, report array.OverlapReport) ([]string, error) {
	if tp.OutputDir == "" {
		return nil, fmt.Errorf("no output directory configured")
	}
	if err := os.MkdirAll(tp.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	physPath := filepath.Join(tp.OutputDir, "physical.png")
	if err := tp.generatePhysicalPlot(phys, physPath); err != nil {
		return nil, fmt.Errorf("physical plot: %w", err)
	}

	virtPath := filepath.Join(tp.OutputDir, "virtual.png")
	if err := tp.generateVirtualPlot(virt, report, virtPath); err != nil {
		return []string{physPath}, fmt.Errorf("virtual plot: %w", err)
	}

	return []string{physPath, virtPath}, nil
}

// generatePhysicalPlot draws the physical layout: receivers as squares,
// transmitters as triangles, H blue and V crimson.
func (tp *TopologyPlotter) generatePhysicalPlot(phys array.PhysicalArray, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s - Physical array", tp.Title)
	p.X.Label.Text = "Azimuth (lambda/2)"
	p.Y.Label.Text = "Elevation (lambda/2)"
	p.Add(plotter.NewGrid())

	series := []struct {
		name      string
		positions []array.Position
		shape     draw.GlyphDrawer
		color     color.Color
	}{
		{"Rx H", phys.RxH, draw.BoxGlyph{}, colorH},
		{"Rx V", phys.RxV, draw.BoxGlyph{}, colorV},
		{"Tx H", phys.TxH, draw.PyramidGlyph{}, colorH},
		{"Tx V", phys.TxV, draw.PyramidGlyph{}, colorV},
	}
	for _, s := range series {
		if len(s.positions) == 0 {
			continue
		}
		if err := addScatter(p, s.name, s.positions, s.shape, s.color, vg.Points(4)); err != nil {
			return err
		}
	}

	p.Legend.Top = true
	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}

// generateVirtualPlot draws the virtual aperture with co-polar channels
// as pluses, cross-polar as crosses, and overlap cells ringed gold
// (calibration) or red (redundant).
func (tp *TopologyPlotter) generateVirtualPlot(virt array.VirtualArray, report array.OverlapReport, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s - Virtual array aperture", tp.Title)
	p.X.Label.Text = "Azimuth (lambda/2)"
	p.Y.Label.Text = "Elevation (lambda/2)"
	p.Add(plotter.NewGrid())

	series := []struct {
		name      string
		positions []array.Position
		shape     draw.GlyphDrawer
		color     color.Color
		radius    vg.Length
	}{
		{"HH", virt.HH, draw.PlusGlyph{}, colorH, vg.Points(4)},
		{"VV", virt.VV, draw.PlusGlyph{}, colorV, vg.Points(4)},
		{"HV", virt.HV, draw.CrossGlyph{}, colorHV, vg.Points(4)},
		{"VH", virt.VH, draw.CrossGlyph{}, colorVH, vg.Points(4)},
		{"Calibration overlap", report.Calibration, draw.RingGlyph{}, colorGold, vg.Points(8)},
		{"Redundant overlap", report.Redundant, draw.RingGlyph{}, colorRed, vg.Points(8)},
	}
	for _, s := range series {
		if len(s.positions) == 0 {
			continue
		}
		if err := addScatter(p, s.name, s.positions, s.shape, s.color, s.radius); err != nil {
			return err
		}
	}

	p.Legend.Top = true
	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}

func addScatter(p *plot.Plot, name string, positions []array.Position, shape draw.GlyphDrawer, c color.Color, radius vg.Length) error {
	xys := make(plotter.XYs, len(positions))
	for i, pos := range positions {
		xys[i] = plotter.XY{X: pos.X, Y: pos.Y}
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Shape = shape
	scatter.GlyphStyle.Color = c
	scatter.GlyphStyle.Radius = radius
	p.Add(scatter)
	p.Legend.Add(name, scatter)
	return nil
}
