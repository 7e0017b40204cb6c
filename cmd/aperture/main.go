// Command aperture evaluates a polarimetric MIMO array layout: it
// synthesizes the virtual array, classifies channel overlaps, and
// writes topology plots plus an HTML aperture report.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pomaar-data/aperture.report/internal/array"
	"github.com/pomaar-data/aperture.report/internal/config"
	"github.com/pomaar-data/aperture.report/internal/layouts"
	"github.com/pomaar-data/aperture.report/internal/monitor"
	"github.com/pomaar-data/aperture.report/internal/units"
)

var (
	layoutName  = flag.String("layout", "ti-cascade", "Built-in layout to evaluate")
	layoutFile  = flag.String("layout-file", "", "JSON file with physical element positions (overrides -layout)")
	resolution  = flag.Float64("resolution", 0, "Grid resolution in lambda/2 units (0 uses the config value)")
	configPath  = flag.String("config", "", "Optional tuning config JSON file")
	outputDir   = flag.String("output", "reports", "Directory for plots and the HTML report")
	noPlots     = flag.Bool("no-plots", false, "Skip plot and report generation")
	listLayouts = flag.Bool("list-layouts", false, "List built-in layouts and exit")
)

func main() {
	flag.Parse()

	if *listLayouts {
		fmt.Println(strings.Join(layouts.Names(), "\n"))
		return
	}

	cfg := config.DefaultTuningConfig()
	if *configPath != "" {
		loaded, err := config.LoadTuningConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	res := cfg.GetGridResolution()
	if *resolution != 0 {
		res = *resolution
	}

	name, phys, err := resolveLayout()
	if err != nil {
		log.Fatalf("Failed to resolve layout: %v", err)
	}

	virt, err := array.Synthesize(phys)
	if err != nil {
		log.Fatalf("Synthesis failed: %v", err)
	}
	for _, c := range array.Channels {
		log.Printf("Channel %s: %d virtual elements", c, len(virt.ByChannel(c)))
	}

	report, err := array.AnalyzeOverlaps(virt, res)
	if err != nil {
		log.Fatalf("Overlap analysis failed: %v", err)
	}

	runID := monitor.NewRunID()
	log.Printf("Analysis run %s: layout=%q resolution=%g (lambda/2 = %.3f mm at %.0f GHz)",
		runID, name, res,
		units.HalfWavelength(cfg.GetDesignFrequencyHz())*1000,
		cfg.GetDesignFrequencyHz()/1e9)

	events := monitor.OverlapEvents(runID, name, report)
	if len(events) == 0 {
		log.Print("No overlaps found.")
	}
	for _, ev := range events {
		log.Printf("%s overlaps found at virtual positions: %v", ev.Class, formatPositions(ev.Coordinates))
	}

	if *noPlots {
		return
	}

	plotter := monitor.NewTopologyPlotter(cfg.GetReportTitle(), *outputDir)
	paths, err := plotter.Generate(phys, virt, report)
	if err != nil {
		log.Fatalf("Plot generation failed: %v", err)
	}
	for _, p := range paths {
		log.Printf("Wrote %s", p)
	}

	reportPath := filepath.Join(*outputDir, "aperture.html")
	f, err := os.Create(reportPath)
	if err != nil {
		log.Fatalf("Failed to create report file: %v", err)
	}
	defer f.Close()
	if err := monitor.RenderApertureReport(f, cfg.GetReportTitle(), virt, report); err != nil {
		log.Fatalf("Failed to render aperture report: %v", err)
	}
	log.Printf("Wrote %s", reportPath)
}

// resolveLayout picks the layout under evaluation: an explicit JSON
// file wins over the built-in name.
func resolveLayout() (string, array.PhysicalArray, error) {
	if *layoutFile != "" {
		data, err := os.ReadFile(*layoutFile)
		if err != nil {
			return "", array.PhysicalArray{}, fmt.Errorf("failed to read layout file: %w", err)
		}
		phys, err := layouts.FromJSON(data)
		if err != nil {
			return "", array.PhysicalArray{}, err
		}
		return filepath.Base(*layoutFile), phys, nil
	}

	phys, err := layouts.Get(*layoutName)
	if err != nil {
		return "", array.PhysicalArray{}, err
	}
	return *layoutName, phys, nil
}

func formatPositions(positions []array.Position) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
