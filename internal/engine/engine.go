// Package engine decomposes cabinet units into cut lists. Each
// topology has its own calculator; Calculate dispatches on the unit
// type and applies the banding-style deduction shared by all of them.
package engine

import (
	"fmt"

	"github.com/piwi3910/CabCut/internal/model"
)

// defaultBoardThickness is the carcass stock the modern calculators
// assume when the configuration does not override it.
const defaultBoardThickness = 1.8

func boardThickness(cfg model.Config) float64 {
	if cfg.BoardThickness > 0 {
		return cfg.BoardThickness
	}
	return defaultBoardThickness
}

// baseFull reports whether the base spans the full unit width and the
// sides sit on top of it.
func baseFull(cfg model.Config) bool {
	return cfg.AssemblyMethod == model.AssemblyBaseFullTopSidesBackRouted
}

// Calculate produces the ordered part list for one unit. Unknown
// topologies and non-positive dimensions are rejected; degenerate but
// positive geometry flows through the formulas untouched.
func Calculate(spec model.UnitSpec, cfg model.Config) ([]model.Part, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	var parts []model.Part
	switch spec.Type {
	case model.UnitGround:
		parts = groundUnit(spec, cfg)
	case model.UnitSink:
		parts = sinkUnit(spec, cfg)
	case model.UnitSinkGround:
		parts = sinkGroundUnit(spec, cfg)
	case model.UnitWall:
		parts = wallUnit(spec, cfg)
	case model.UnitDrawers:
		// The plain drawers topology historically skips the banding
		// deduction pass; preserved to keep outputs stable.
		return drawersUnit(spec, cfg), nil
	case model.UnitDrawersBottom:
		parts = drawersBottomRailUnit(spec, cfg)
	case model.UnitGroundFixed:
		parts = groundFixedUnit(spec, cfg)
	case model.UnitSinkFixed:
		parts = sinkFixedUnit(spec, cfg)
	case model.UnitWallFixed:
		parts = wallFixedUnit(spec, cfg)
	case model.UnitWallFlipTop:
		parts = wallFlipTopDoorsBottomUnit(spec, cfg)
	case model.UnitWallMicrowave:
		parts = wallMicrowaveUnit(spec, cfg)
	case model.UnitTallDoors:
		parts = tallDoorsUnit(spec, cfg)
	case model.UnitTallDoorsAppl:
		parts = tallDoorsAppliancesUnit(spec, cfg)
	case model.UnitCornerLWall:
		parts = cornerLWallUnit(spec, cfg)
	case model.UnitTallDrwSideDoors:
		parts = tallDrawersSideDoorsTopUnit(spec, cfg)
	case model.UnitTallDrwBotDoors:
		parts = tallDrawersBottomRailTopDoorsUnit(spec, cfg)
	case model.UnitTallDrwSideAppl:
		parts = tallDrawersSideAppliancesDoorsUnit(spec, cfg)
	case model.UnitTallDrwBotAppl:
		parts = tallDrawersBottomAppliancesDoorsTopUnit(spec, cfg)
	case model.UnitTwoSmallLargeS:
		parts = twoSmallOneLargeUnit(spec, cfg, SlideSideRail)
	case model.UnitTwoSmallLargeB:
		parts = twoSmallOneLargeUnit(spec, cfg, SlideBottomRail)
	case model.UnitOneSmallLargeS:
		parts = oneSmallTwoLargeUnit(spec, cfg, SlideSideRail)
	case model.UnitOneSmallLargeB:
		parts = oneSmallTwoLargeUnit(spec, cfg, SlideBottomRail)
	case model.UnitTallWoodenBase:
		parts = tallWoodenBaseUnit(spec, cfg)
	case model.UnitThreeTurbo:
		parts = threeTurboUnit(spec, cfg)
	case model.UnitDrawerOven:
		parts = drawerBuiltInOvenUnit(spec, cfg, SlideSideRail)
	case model.UnitDrawerOvenBottom:
		parts = drawerBuiltInOvenUnit(spec, cfg, SlideBottomRail)
	default:
		return nil, fmt.Errorf("unit type %q not implemented", spec.Type)
	}

	applyBandingDeduction(parts, cfg)
	return parts, nil
}

// bandingDeductionTargets are the part names trimmed by the all-around
// banding machine passes.
var bandingDeductionTargets = map[string]bool{
	"base":           true,
	"shelf":          true,
	"internal_shelf": true,
	"top":            true,
	"unit_top":       true,
	"internal_base":  true,
}

// applyBandingDeduction removes the 0.2 cm the all-around banding
// styles take off carcass pieces, then refreshes the area. The
// recomputed area intentionally covers a single piece: that is the
// figure the banding machine operators work from. The edge-band length
// keeps the pre-trim value; the strip is cut before the trim.
func applyBandingDeduction(parts []model.Part, cfg model.Config) {
	if !cfg.BandingStyle.AppliesDeduction() {
		return
	}
	const deduction = 0.2
	for i := range parts {
		p := &parts[i]
		if !bandingDeductionTargets[p.Name] {
			continue
		}
		if p.Width > deduction {
			p.Width = model.Round2(p.Width - deduction)
		}
		if p.Height > deduction {
			p.Height = model.Round2(p.Height - deduction)
		}
		p.AreaM2 = model.Round4(p.Width * p.Height / 10000)
	}
}

// routedPanel builds an unbanded panel seated in the back groove.
func routedPanel(name string, w, h float64, cfg model.Config) model.Part {
	p := model.NewPartEdges(name, w, h, 1, model.BandNone())
	p.Depth = cfg.RouterThickness
	return p
}

// backPanel is the standard routed back: the back deduction comes off
// both dimensions so the panel slides into the groove.
func backPanel(spec model.UnitSpec, cfg model.Config) model.Part {
	return routedPanel("back_panel", spec.Width-cfg.BackDeduction, spec.Height-cfg.BackDeduction, cfg)
}

// shelfStack is the standard adjustable shelf group: depth reduced so
// the shelf clears the back groove, back edge left raw.
func shelfStack(spec model.UnitSpec, cfg model.Config, t float64, qty int) model.Part {
	return model.NewPartEdges("shelf",
		spec.Depth-cfg.ShelfDepthDeduction,
		spec.Width-t*2,
		qty,
		model.BandShelf())
}
