package engine

import (
	"fmt"

	"github.com/piwi3910/CabCut/internal/model"
)

// sinkGroundUnit is the legacy sink-base calculator. It predates the
// topology family above: it uses the configured legacy board
// thickness, emits one shelf part per shelf, keeps raw (unrounded)
// areas, and clamps the sink and plumbing cutout areas at zero.

func legacyBoardThickness(cfg model.Config) float64 {
	if cfg.DefaultBoardThickness > 0 {
		return cfg.DefaultBoardThickness
	}
	return 1.6
}

// rawPart builds a part without the rounded-area treatment the modern
// calculators apply.
func rawPart(name string, w, h float64, qty int, edges model.EdgeDistribution) model.Part {
	return model.Part{
		Name:      name,
		Width:     w,
		Height:    h,
		Qty:       qty,
		Edges:     edges,
		AreaM2:    w * h * float64(qty) / 10000,
		EdgeBandM: edges.LinearLength(w, h) / 100 * float64(qty),
	}
}

func sinkGroundUnit(spec model.UnitSpec, cfg model.Config) []model.Part {
	t := legacyBoardThickness(cfg)
	innerWidth := spec.Width - t*2

	parts := []model.Part{
		rawPart("side_panel", spec.Depth, spec.Height, 2, model.BandAll()),
		rawPart("bottom_panel", innerWidth, spec.Depth, 1, model.BandAll()),
	}

	// Counter-side panel with the sink cutout punched out. The cutout
	// is clamped to the panel so the area never goes negative.
	top := rawPart("top_panel_sink", innerWidth, spec.Depth, 1, model.BandAll())
	cutW := min(spec.SinkCutoutWidth, innerWidth)
	cutD := min(spec.SinkCutoutDepth, spec.Depth)
	top.AreaM2 = max(0, innerWidth*spec.Depth-cutW*cutD) * float64(top.Qty) / 10000
	parts = append(parts, top)

	// One part per shelf; the sink bowl displaces the top shelf.
	for i := 0; i < max(0, spec.ShelfCount-1); i++ {
		parts = append(parts, rawPart(
			fmt.Sprintf("shelf_%d", i+1),
			innerWidth,
			spec.Depth-cfg.BackClearance,
			1,
			model.BandShelf()))
	}

	back := rawPart("back_panel_sink",
		spec.Width-cfg.SideOverlap*2,
		spec.Height-cfg.TopClearance-cfg.BottomClearance,
		1,
		model.BandNone())
	back.Depth = cfg.BackPanelThickness
	plumbW := min(spec.PlumbingCutoutWidth, back.Width)
	plumbH := min(spec.PlumbingCutoutHeight, back.Height)
	back.AreaM2 = max(0, back.Width*back.Height-plumbW*plumbH) / 10000
	parts = append(parts, back)

	return parts
}
