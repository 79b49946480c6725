package engine

import "github.com/piwi3910/CabCut/internal/model"

// Wall units hang on the wall: full-height sides always, and the top
// panel usually sits back by the chassis handle drop so the door
// handle profile clears the carcass.

func wallBase(spec model.UnitSpec, t float64) model.Part {
	return model.NewPart("base", spec.Depth, spec.Width-t*2, 1)
}

func wallTop(spec model.UnitSpec, t, drop float64) model.Part {
	return model.NewPart("top_ceiling", spec.Depth-drop, spec.Width-t*2, 1)
}

func wallSides(spec model.UnitSpec) model.Part {
	return model.NewPart("side_panel", spec.Depth, spec.Height, 2)
}

func wallUnit(spec model.UnitSpec, cfg model.Config) []model.Part {
	t := boardThickness(cfg)
	parts := []model.Part{
		wallBase(spec, t),
		wallTop(spec, t, cfg.ChassisHandleDrop),
		wallSides(spec),
	}
	if spec.ShelfCount > 0 {
		parts = append(parts, shelfStack(spec, cfg, t, spec.ShelfCount))
	}
	parts = append(parts, backPanel(spec, cfg))
	if spec.DoorCount > 0 {
		if spec.DoorType == model.DoorHinged {
			w := spec.Width/float64(spec.DoorCount) - cfg.DoorWidthDeduction
			h := spec.Height - cfg.HandleProfileHeight
			parts = append(parts, model.NewPart("door_hinged", w, h, spec.DoorCount))
		} else {
			w := spec.Width - cfg.DoorWidthDeduction
			h := spec.Height/float64(spec.DoorCount) - cfg.HandleProfileHeight - 0.5
			parts = append(parts, model.NewPart("door_flip", w, h, spec.DoorCount))
		}
	}
	return parts
}

func wallFixedUnit(spec model.UnitSpec, cfg model.Config) []model.Part {
	t := boardThickness(cfg)
	parts := []model.Part{
		wallBase(spec, t),
		wallTop(spec, t, 0),
		wallSides(spec),
	}
	if spec.ShelfCount > 0 {
		parts = append(parts, shelfStack(spec, cfg, t, spec.ShelfCount))
	}
	parts = append(parts, fixedEndParts(spec, cfg, t)...)
	parts = append(parts, backPanel(spec, cfg))
	if spec.DoorCount > 0 {
		parts = append(parts, fixedEndDoors(spec, cfg))
	}
	parts = append(parts, fillers(spec, cfg))
	return parts
}

// wallFlipTopDoorsBottomUnit has a flip-up door across the top span
// and hinged doors below it, separated by an extra fixed shelf seated
// against the back groove.
func wallFlipTopDoorsBottomUnit(spec model.UnitSpec, cfg model.Config) []model.Part {
	t := boardThickness(cfg)
	parts := []model.Part{
		wallBase(spec, t),
		wallTop(spec, t, cfg.ChassisHandleDrop),
		wallSides(spec),
	}
	if spec.ShelfCount > 0 {
		parts = append(parts, shelfStack(spec, cfg, t, spec.ShelfCount))
	}
	parts = append(parts, model.NewPartEdges("extra_shelf",
		spec.Depth-cfg.RouterDistance-cfg.RouterThickness-0.2,
		spec.Width-t*2,
		1, model.BandShelf()))
	parts = append(parts, backPanel(spec, cfg))
	if spec.DoorCount > 0 {
		w := spec.Width/float64(spec.DoorCount) - cfg.DoorWidthDeduction
		h := spec.Height - cfg.HandleProfileHeight - spec.FlipDoorHeight - 0.5
		parts = append(parts, model.NewPart("bottom_door", w, h, spec.DoorCount))
	}
	parts = append(parts, model.NewPart("flip_door",
		spec.Width-cfg.DoorWidthDeduction,
		spec.FlipDoorHeight-cfg.HandleProfileHeight-2.0,
		1))
	return parts
}

// wallMicrowaveUnit leaves an open microwave bay above the doors. The
// bay shelf and the regular shelves are banded on all four edges, the
// front edge of the bay is visible from below.
func wallMicrowaveUnit(spec model.UnitSpec, cfg model.Config) []model.Part {
	t := boardThickness(cfg)
	parts := []model.Part{
		wallBase(spec, t),
		model.NewPart("top_panel", spec.Depth, spec.Width-t*2, 1),
		wallSides(spec),
	}
	if n := spec.ShelfCount - 1; n > 0 {
		parts = append(parts, model.NewPart("shelf",
			spec.Depth-cfg.ShelfDepthDeduction, spec.Width-t*2, n))
	}
	parts = append(parts, model.NewPart("microwave_shelf",
		spec.Depth-cfg.RouterDistance-cfg.RouterThickness-0.1,
		spec.Width-t*2,
		1))
	parts = append(parts, backPanel(spec, cfg))
	if spec.DoorType == model.DoorFlip {
		w := spec.Width - cfg.DoorWidthDeduction
		h := (spec.Height-spec.MicrowaveHeight)/float64(spec.DoorCount) - cfg.HandleProfileHeight - 0.5
		parts = append(parts, model.NewPart("flip_door", w, h, spec.DoorCount))
	} else {
		w := spec.Width/float64(spec.DoorCount) - cfg.DoorWidthDeduction
		h := spec.Height - cfg.HandleProfileHeight - spec.MicrowaveHeight - 0.5
		parts = append(parts, model.NewPart("door", w, h, spec.DoorCount))
	}
	return parts
}

// cornerLWallUnit is the L-shaped corner wall cabinet: two legs with
// their own side, back and door each; the base and top span both legs.
func cornerLWallUnit(spec model.UnitSpec, cfg model.Config) []model.Part {
	t := boardThickness(cfg)
	w1, d1 := spec.Width, spec.Depth
	w2, d2 := spec.Width2, spec.Depth2
	if w2 <= 0 {
		w2 = w1
	}
	if d2 <= 0 {
		d2 = d1
	}

	parts := []model.Part{
		model.NewPart("base", w1-t, w2-t, 1),
		model.NewPart("top_ceiling", w1-t, w2-t, 1),
		model.NewPart("side_1", d1, spec.Height, 1),
		model.NewPart("side_2", d2, spec.Height, 1),
	}
	if spec.ShelfCount > 0 {
		groove := cfg.RouterDistance + cfg.RouterThickness
		parts = append(parts, model.NewPartEdges("shelf",
			w1-t-groove, w2-t-groove, spec.ShelfCount, model.BandShelf()))
	}
	parts = append(parts,
		routedPanel("back_1", w1-cfg.BackDeduction, spec.Height-cfg.BackDeduction, cfg),
		routedPanel("back_2", w2-cfg.RouterDistance-cfg.RouterThickness-5, spec.Height-cfg.BackDeduction, cfg),
		model.NewPart("door_1", w1-d1-2.3, spec.Height-cfg.HandleProfileHeight, 1),
		model.NewPart("flip_door", w2-d2-1.2, spec.Height-cfg.HandleProfileHeight, 1),
	)
	return parts
}
