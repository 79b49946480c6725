// CabCut — Cabinet Cut List Calculator
//
// A command-line tool for computing parametric cabinet cut lists,
// material usage, edge banding, and cost estimates.
//
// Build:
//   go build -o cabcut ./cmd/cabcut
//
// Usage:
//   cabcut calc -type ground -width 80 -height 72 -depth 30 -shelves 2
//   cabcut batch -in kitchen.csv
//   cabcut list
//   cabcut show -id unit_1A2B3C4D
//   cabcut breakdown -id unit_1A2B3C4D -edge pvc
//   cabcut settings -set board_thickness_cm=1.8
//   cabcut backup -out backup.json

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/piwi3910/CabCut/internal/engine"
	"github.com/piwi3910/CabCut/internal/export"
	"github.com/piwi3910/CabCut/internal/importer"
	"github.com/piwi3910/CabCut/internal/model"
	"github.com/piwi3910/CabCut/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "calc":
		err = runCalc(os.Args[2:])
	case "batch":
		err = runBatch(os.Args[2:])
	case "list":
		err = runList(os.Args[2:])
	case "show":
		err = runShow(os.Args[2:])
	case "breakdown":
		err = runBreakdown(os.Args[2:])
	case "settings":
		err = runSettings(os.Args[2:])
	case "backup":
		err = runBackup(os.Args[2:])
	case "restore":
		err = runRestore(os.Args[2:])
	case "types":
		err = runTypes()
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: cabcut <command> [flags]

Commands:
  calc       Compute the cut list for one unit
  batch      Compute cut lists for all units in a CSV/XLSX file
  list       List stored units
  show       Show a stored unit
  breakdown  Edge-band breakdown for a stored unit
  settings   View or change manufacturing settings
  backup     Export config and stored units to a JSON file
  restore    Import a backup file
  types      List supported unit types

Run 'cabcut <command> -h' for command flags.`)
}

func loadConfig() (model.Config, error) {
	cfg, err := store.LoadConfig(store.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func runCalc(args []string) error {
	fs := flag.NewFlagSet("calc", flag.ExitOnError)
	unitType := fs.String("type", "", "unit type (see 'cabcut types')")
	width := fs.Float64("width", 0, "unit width in cm")
	height := fs.Float64("height", 0, "unit height in cm")
	depth := fs.Float64("depth", 0, "unit depth in cm (0 = default for type)")
	shelves := fs.Int("shelves", 0, "shelf count")
	doors := fs.Int("doors", 0, "door count")
	drawers := fs.Int("drawers", 0, "drawer count")
	doorType := fs.String("door-type", "hinged", "door type: hinged or flip")
	counterBase := fs.Bool("counter-base", false, "add an internal counter base")
	counterMirror := fs.Bool("counter-mirror", false, "add an internal counter mirror front")
	counterShelf := fs.Bool("counter-shelf", false, "add an internal counter shelf")
	counterDrawers := fs.Int("counter-drawers", 0, "internal counter drawer count")
	save := fs.Bool("save", false, "persist the computed unit")
	pdfOut := fs.String("pdf", "", "write a cut-list PDF to this path")
	labelsOut := fs.String("labels", "", "write QR part labels PDF to this path")
	dxfOut := fs.String("dxf", "", "write panel outlines DXF to this path")
	fs.Parse(args)

	spec := model.UnitSpec{
		Type:        model.UnitType(strings.ToLower(*unitType)),
		Width:       *width,
		Height:      *height,
		Depth:       *depth,
		ShelfCount:  *shelves,
		DoorCount:   *doors,
		DrawerCount: *drawers,
		DoorType:    model.DoorType(*doorType),
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	spec.ApplyDefaults(cfg)

	var counter *engine.CounterOptions
	if *counterBase || *counterMirror || *counterShelf || *counterDrawers > 0 {
		counter = &engine.CounterOptions{
			AddBase:          *counterBase,
			AddMirror:        *counterMirror,
			AddInternalShelf: *counterShelf,
			DrawerCount:      *counterDrawers,
		}
	}

	summary, err := engine.BuildSummary(spec, counter, cfg)
	if err != nil {
		return err
	}

	id := ""
	if *save {
		id = store.NewUnitID()
		unit := store.StoredUnit{ID: id, Spec: spec, Counter: counter, Parts: summary.Items, Summary: summary}
		if err := store.SaveUnit(store.UnitsDir(), unit); err != nil {
			return err
		}
		fmt.Println("Saved as", id)
	}

	printSummary(os.Stdout, spec, summary)

	if *pdfOut != "" {
		if err := export.ExportCutListPDF(*pdfOut, unitTitle(spec), summary); err != nil {
			return err
		}
		fmt.Println("Wrote", *pdfOut)
	}
	if *labelsOut != "" {
		if err := export.ExportLabels(*labelsOut, id, summary.Items); err != nil {
			return err
		}
		fmt.Println("Wrote", *labelsOut)
	}
	if *dxfOut != "" {
		if err := export.ExportDXF(*dxfOut, summary.Items); err != nil {
			return err
		}
		fmt.Println("Wrote", *dxfOut)
	}
	return nil
}

func runBatch(args []string) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	in := fs.String("in", "", "input CSV or XLSX file of units")
	save := fs.Bool("save", false, "persist each computed unit")
	fs.Parse(args)

	if *in == "" {
		return fmt.Errorf("batch requires -in <file>")
	}

	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(*in)) {
	case ".xlsx":
		result = importer.ImportExcel(*in)
	default:
		result = importer.ImportCSV(*in)
	}

	for _, w := range result.Warnings {
		fmt.Fprintln(os.Stderr, "Warning:", w)
	}
	for _, e := range result.Errors {
		fmt.Fprintln(os.Stderr, "Error:", e)
	}
	if len(result.Specs) == 0 {
		return fmt.Errorf("no importable units in %s", *in)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var totalArea, totalBand, totalCost float64
	for i, spec := range result.Specs {
		spec.ApplyDefaults(cfg)
		summary, err := engine.BuildSummary(spec, nil, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: unit %d (%s): %v\n", i+1, spec.Type, err)
			continue
		}
		totalArea += summary.Totals.TotalAreaM2
		totalBand += summary.Totals.TotalEdgeBandM
		totalCost += summary.Costs["total_cost"]

		fmt.Printf("%d. %s: %d parts, %.4f m², %.2f m edge band\n",
			i+1, unitTitle(spec), summary.Totals.TotalParts,
			summary.Totals.TotalAreaM2, summary.Totals.TotalEdgeBandM)

		if *save {
			id := store.NewUnitID()
			unit := store.StoredUnit{ID: id, Spec: spec, Parts: summary.Items, Summary: summary}
			if err := store.SaveUnit(store.UnitsDir(), unit); err != nil {
				return err
			}
			fmt.Println("   saved as", id)
		}
	}

	fmt.Printf("\nTotal: %.4f m², %.2f m edge band, cost %.2f\n", totalArea, totalBand, totalCost)
	return nil
}

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	fs.Parse(args)

	units, err := store.ListUnits(store.UnitsDir())
	if err != nil {
		return err
	}
	if len(units) == 0 {
		fmt.Println("No stored units.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tSIZE (cm)\tPARTS\tAREA m²\tCREATED")
	for _, u := range units {
		fmt.Fprintf(w, "%s\t%s\t%.0fx%.0fx%.0f\t%d\t%.4f\t%s\n",
			u.ID, u.Spec.Type, u.Spec.Width, u.Spec.Height, u.Spec.Depth,
			len(u.Parts), u.Summary.Totals.TotalAreaM2,
			u.CreatedAt.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func runShow(args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	id := fs.String("id", "", "stored unit id")
	pdfOut := fs.String("pdf", "", "write a cut-list PDF to this path")
	labelsOut := fs.String("labels", "", "write QR part labels PDF to this path")
	dxfOut := fs.String("dxf", "", "write panel outlines DXF to this path")
	fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("show requires -id <unit id>")
	}
	unit, err := store.LoadUnit(store.UnitsDir(), *id)
	if err != nil {
		return err
	}

	printSummary(os.Stdout, unit.Spec, unit.Summary)

	if *pdfOut != "" {
		if err := export.ExportCutListPDF(*pdfOut, unitTitle(unit.Spec), unit.Summary); err != nil {
			return err
		}
		fmt.Println("Wrote", *pdfOut)
	}
	if *labelsOut != "" {
		if err := export.ExportLabels(*labelsOut, unit.ID, unit.Parts); err != nil {
			return err
		}
		fmt.Println("Wrote", *labelsOut)
	}
	if *dxfOut != "" {
		if err := export.ExportDXF(*dxfOut, unit.Parts); err != nil {
			return err
		}
		fmt.Println("Wrote", *dxfOut)
	}
	return nil
}

func runBreakdown(args []string) error {
	fs := flag.NewFlagSet("breakdown", flag.ExitOnError)
	id := fs.String("id", "", "stored unit id")
	edge := fs.String("edge", string(model.EdgeTypePVC), "edge band material: pvc or wood")
	fs.Parse(args)

	if *id == "" {
		return fmt.Errorf("breakdown requires -id <unit id>")
	}
	unit, err := store.LoadUnit(store.UnitsDir(), *id)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	breakdown := model.EdgeBreakdown(unit.Parts, cfg, model.EdgeType(*edge))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PART\tQTY\tEDGE\tSTRIP mm\tBANDED")
	for _, bp := range breakdown {
		for _, e := range bp.Edges {
			banded := "-"
			if e.HasEdge {
				banded = "yes"
			}
			fmt.Fprintf(w, "%s\t%d\t%s\t%.0f\t%s\n", bp.PartName, bp.Qty, e.Edge, e.LengthMM, banded)
		}
		fmt.Fprintf(w, "%s total\t\t\t\t%.3f m\n", bp.PartName, bp.TotalEdgeM)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nTotal %s edge band: %.3f m\n", *edge, model.TotalEdgeMeters(breakdown))
	cost := model.EdgeCost(breakdown, cfg)
	for edgeType, line := range cost.Breakdown {
		fmt.Printf("Cost (%s): %.2f\n", edgeType, line)
	}
	if cost.Total > 0 {
		fmt.Printf("Edge band cost total: %.2f\n", cost.Total)
	}
	return nil
}

func runSettings(args []string) error {
	fs := flag.NewFlagSet("settings", flag.ExitOnError)
	set := fs.String("set", "", "comma-separated key=value pairs to change")
	reset := fs.Bool("reset", false, "reset all settings to defaults")
	fs.Parse(args)

	path := store.DefaultConfigPath()

	if *reset {
		if err := store.SaveConfig(path, model.DefaultConfig()); err != nil {
			return err
		}
		fmt.Println("Settings reset to defaults.")
		return nil
	}

	if *set != "" {
		cfg, err := store.UpdateConfig(path, func(c *model.Config) {
			for _, pair := range strings.Split(*set, ",") {
				key, value, found := strings.Cut(pair, "=")
				if !found {
					fmt.Fprintf(os.Stderr, "Warning: ignoring malformed pair %q\n", pair)
					continue
				}
				if err := applySetting(c, strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
					fmt.Fprintln(os.Stderr, "Warning:", err)
				}
			}
		})
		if err != nil {
			return err
		}
		printConfig(cfg)
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	printConfig(cfg)
	return nil
}

// applySetting changes one config field addressed by its JSON key.
func applySetting(cfg *model.Config, key, value string) error {
	floatFields := map[string]*float64{
		"board_thickness_cm":           &cfg.BoardThickness,
		"default_board_thickness_cm":   &cfg.DefaultBoardThickness,
		"back_panel_thickness_cm":      &cfg.BackPanelThickness,
		"edge_overlap_cm":              &cfg.EdgeOverlap,
		"back_deduction_cm":            &cfg.BackDeduction,
		"shelf_depth_deduction_cm":     &cfg.ShelfDepthDeduction,
		"door_width_deduction_cm":      &cfg.DoorWidthDeduction,
		"ground_door_height_deduction": &cfg.GroundDoorHeightDeduction,
		"handle_recess_height_cm":      &cfg.HandleRecessHeight,
		"handle_profile_height_cm":     &cfg.HandleProfileHeight,
		"mirror_width_cm":              &cfg.MirrorWidth,
		"router_thickness_cm":          &cfg.RouterThickness,
		"router_distance_cm":           &cfg.RouterDistance,
		"sheet_size_m2":                &cfg.SheetSizeM2,
	}

	if target, ok := floatFields[key]; ok {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q for %s", value, key)
		}
		*target = v
		return nil
	}

	switch key {
	case "assembly_method":
		cfg.AssemblyMethod = model.AssemblyMethod(value)
	case "edge_banding_type":
		cfg.BandingStyle = model.BandingStyle(value)
	case "plywood_price_per_sheet":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q for %s", value, key)
		}
		m := cfg.Materials[model.MaterialPlywoodSheet]
		m.PricePerSheet = v
		cfg.Materials[model.MaterialPlywoodSheet] = m
	case "edge_band_price_per_meter":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q for %s", value, key)
		}
		m := cfg.Materials[model.MaterialEdgeBandPerMeter]
		m.PricePerMeter = v
		cfg.Materials[model.MaterialEdgeBandPerMeter] = m
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

func printConfig(cfg model.Config) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "assembly_method\t%s\n", cfg.AssemblyMethod)
	fmt.Fprintf(w, "edge_banding_type\t%s\n", cfg.BandingStyle)
	fmt.Fprintf(w, "board_thickness_cm\t%.2f\n", cfg.BoardThickness)
	fmt.Fprintf(w, "back_panel_thickness_cm\t%.2f\n", cfg.BackPanelThickness)
	fmt.Fprintf(w, "edge_overlap_cm\t%.2f\n", cfg.EdgeOverlap)
	fmt.Fprintf(w, "back_deduction_cm\t%.2f\n", cfg.BackDeduction)
	fmt.Fprintf(w, "shelf_depth_deduction_cm\t%.2f\n", cfg.ShelfDepthDeduction)
	fmt.Fprintf(w, "door_width_deduction_cm\t%.2f\n", cfg.DoorWidthDeduction)
	fmt.Fprintf(w, "handle_recess_height_cm\t%.2f\n", cfg.HandleRecessHeight)
	fmt.Fprintf(w, "mirror_width_cm\t%.2f\n", cfg.MirrorWidth)
	fmt.Fprintf(w, "router_thickness_cm\t%.2f\n", cfg.RouterThickness)
	fmt.Fprintf(w, "router_distance_cm\t%.2f\n", cfg.RouterDistance)
	fmt.Fprintf(w, "sheet_size_m2\t%.2f\n", cfg.SheetSizeM2)
	for name, m := range cfg.Materials {
		if m.PricePerSheet > 0 {
			fmt.Fprintf(w, "%s price/sheet\t%.2f\n", name, m.PricePerSheet)
		}
		if m.PricePerMeter > 0 {
			fmt.Fprintf(w, "%s price/m\t%.2f\n", name, m.PricePerMeter)
		}
	}
	w.Flush()
}

func runBackup(args []string) error {
	fs := flag.NewFlagSet("backup", flag.ExitOnError)
	out := fs.String("out", "", "output backup file path")
	fs.Parse(args)

	if *out == "" {
		return fmt.Errorf("backup requires -out <file>")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	units, err := store.ListUnits(store.UnitsDir())
	if err != nil {
		return err
	}
	if err := store.ExportAllData(*out, cfg, units); err != nil {
		return err
	}
	fmt.Printf("Backed up config and %d units to %s\n", len(units), *out)
	return nil
}

func runRestore(args []string) error {
	fs := flag.NewFlagSet("restore", flag.ExitOnError)
	in := fs.String("in", "", "backup file path")
	fs.Parse(args)

	if *in == "" {
		return fmt.Errorf("restore requires -in <file>")
	}
	backup, err := store.ImportAllData(*in)
	if err != nil {
		return err
	}
	if err := store.SaveConfig(store.DefaultConfigPath(), backup.Config); err != nil {
		return err
	}
	for _, unit := range backup.Units {
		if err := store.SaveUnit(store.UnitsDir(), unit); err != nil {
			return err
		}
	}
	fmt.Printf("Restored config and %d units from %s\n", len(backup.Units), *in)
	return nil
}

func runTypes() error {
	for _, t := range model.AllUnitTypes {
		fmt.Println(t)
	}
	return nil
}

func unitTitle(spec model.UnitSpec) string {
	return fmt.Sprintf("%s %.0fx%.0fx%.0f cm", spec.Type, spec.Width, spec.Height, spec.Depth)
}

func printSummary(out *os.File, spec model.UnitSpec, summary engine.Summary) {
	fmt.Fprintln(out, unitTitle(spec))
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PART\tWIDTH\tHEIGHT\tQTY\tEDGES\tAREA m²\tBAND m")
	for _, p := range summary.Items {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%d\t%s\t%.4f\t%.2f\n",
			p.Name, p.Width, p.Height, p.Qty, p.Edges.String(), p.AreaM2, p.EdgeBandM)
	}
	w.Flush()

	fmt.Fprintf(out, "\nTotal area: %.4f m²  Edge band: %.2f m  Sheets: %.2f\n",
		summary.Totals.TotalAreaM2, summary.Totals.TotalEdgeBandM,
		summary.MaterialUsage.PlywoodSheets)
	if cost, ok := summary.Costs["total_cost"]; ok {
		fmt.Fprintf(out, "Estimated cost: %.2f\n", cost)
	}
}
