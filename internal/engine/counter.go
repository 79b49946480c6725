package engine

import (
	"fmt"

	"github.com/piwi3910/CabCut/internal/model"
)

// defaultExpansionGap is the movement allowance left around every
// internal counter panel, in cm.
const defaultExpansionGap = 0.3

// CounterOptions selects which internal counter pieces to build inside
// a unit's clear opening.
type CounterOptions struct {
	AddBase          bool    `json:"add_base"`
	AddMirror        bool    `json:"add_mirror"`
	AddInternalShelf bool    `json:"add_internal_shelf"`
	DrawerCount      int     `json:"drawer_count"`
	BackClearance    float64 `json:"back_clearance_cm,omitempty"`
	ExpansionGap     float64 `json:"expansion_gap_cm,omitempty"`
}

// CounterParts builds the internal counter fitted inside the unit: a
// floor, a front mirror, a shelf and a stack of equal-height drawers,
// all sized from the clear internal opening minus the expansion gap.
func CounterParts(spec model.UnitSpec, opts CounterOptions, cfg model.Config) []model.Part {
	t := legacyBoardThickness(cfg)
	gap := opts.ExpansionGap
	if gap == 0 {
		gap = defaultExpansionGap
	}
	backClearance := opts.BackClearance
	if backClearance == 0 {
		backClearance = cfg.BackClearance
	}

	internalWidth := spec.Width - t*2 - gap*2
	internalDepth := spec.Depth - backClearance - gap
	internalHeight := spec.Height - t*2 - gap

	var parts []model.Part
	if opts.AddBase {
		parts = append(parts, rawPart("internal_base",
			internalWidth, internalDepth, 1, model.BandAll()))
	}
	if opts.AddMirror {
		parts = append(parts, rawPart("mirror_front",
			internalWidth, internalHeight, 1, model.BandNone()))
	}
	if opts.AddInternalShelf {
		parts = append(parts, rawPart("internal_shelf",
			internalWidth, internalDepth, 1, model.BandShelf()))
	}

	if n := opts.DrawerCount; n > 0 {
		drawerHeight := (internalHeight - float64(n-1)*gap) / float64(n)
		for i := 1; i <= n; i++ {
			parts = append(parts,
				rawPart(fmt.Sprintf("drawer_%d_bottom", i),
					internalWidth-gap*2, internalDepth-gap*2, 1, model.BandShelf()),
				rawPart(fmt.Sprintf("drawer_%d_side_left", i),
					internalDepth-gap, drawerHeight-gap*2, 1, model.BandAll()),
				rawPart(fmt.Sprintf("drawer_%d_side_right", i),
					internalDepth-gap, drawerHeight-gap*2, 1, model.BandAll()),
				rawPart(fmt.Sprintf("drawer_%d_back", i),
					internalWidth-gap*2, drawerHeight-gap*2, 1, model.BandNone()),
			)
		}
	}
	return parts
}
