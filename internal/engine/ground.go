package engine

import "github.com/piwi3910/CabCut/internal/model"

// Ground-family carcass pieces. The assembly method decides whether
// the base runs the full width (sides standing on it) or fits between
// full-height sides.

func groundBase(spec model.UnitSpec, cfg model.Config, t float64) model.Part {
	length := spec.Width - t*2
	if baseFull(cfg) {
		length = spec.Width
	}
	return model.NewPart("base", spec.Depth, length, 1)
}

func groundSides(spec model.UnitSpec, cfg model.Config, t float64) model.Part {
	h := spec.Height
	if baseFull(cfg) {
		h = spec.Height - t
	}
	return model.NewPart("side_panel", spec.Depth, h, 2)
}

// mirrorRail is one of the horizontal stiffener rails under the
// counter, cut at the configured mirror width.
func mirrorRail(name string, spec model.UnitSpec, cfg model.Config, t float64, qty int) model.Part {
	return model.NewPart(name, cfg.MirrorWidth, spec.Width-t*2, qty)
}

func groundDoors(spec model.UnitSpec, cfg model.Config) model.Part {
	w := spec.Width/float64(spec.DoorCount) - cfg.DoorWidthDeduction
	h := spec.Height - cfg.HandleProfileHeight - cfg.GroundDoorHeightDeduction
	return model.NewPart("door", w, h, spec.DoorCount)
}

func groundUnit(spec model.UnitSpec, cfg model.Config) []model.Part {
	t := boardThickness(cfg)
	parts := []model.Part{
		groundBase(spec, cfg, t),
		mirrorRail("front_mirror", spec, cfg, t, 1),
		mirrorRail("back_mirror", spec, cfg, t, 1),
		groundSides(spec, cfg, t),
	}
	if spec.ShelfCount > 0 {
		parts = append(parts, shelfStack(spec, cfg, t, spec.ShelfCount))
	}
	parts = append(parts, backPanel(spec, cfg))
	if spec.DoorCount > 0 {
		parts = append(parts, groundDoors(spec, cfg))
	}
	return parts
}

// sinkUnit is the ground carcass around a sink: three front rails
// brace the open top and there is no back panel, the plumbing wall
// stays accessible.
func sinkUnit(spec model.UnitSpec, cfg model.Config) []model.Part {
	t := boardThickness(cfg)
	parts := []model.Part{
		groundBase(spec, cfg, t),
		mirrorRail("front_mirror", spec, cfg, t, 3),
		groundSides(spec, cfg, t),
	}
	if spec.ShelfCount > 0 {
		parts = append(parts, shelfStack(spec, cfg, t, spec.ShelfCount))
	}
	if spec.DoorCount > 0 {
		parts = append(parts, groundDoors(spec, cfg))
	}
	return parts
}

// Fixed-end variants add a dead panel at one end plus the trim around
// it: a full-height installation rail, two fillers and doors sized to
// the remaining opening.

func fixedEndParts(spec model.UnitSpec, cfg model.Config, t float64) []model.Part {
	return []model.Part{
		model.NewPart("detailed_installation_mirror", cfg.MirrorWidth, spec.Height-t*2, 1),
		model.NewPart("fixed_part", spec.FixedPartWidth-4.5, spec.Height, 1),
	}
}

func fixedEndDoors(spec model.UnitSpec, cfg model.Config) model.Part {
	w := (spec.Width-spec.FixedPartWidth-3)/float64(spec.DoorCount) - cfg.DoorWidthDeduction
	h := spec.Height - cfg.HandleProfileHeight
	return model.NewPart("door", w, h, spec.DoorCount)
}

func fillers(spec model.UnitSpec, cfg model.Config) model.Part {
	return model.NewPart("filler", cfg.MirrorWidth, spec.Height, 2)
}

func groundFixedUnit(spec model.UnitSpec, cfg model.Config) []model.Part {
	t := boardThickness(cfg)
	parts := []model.Part{
		groundBase(spec, cfg, t),
		mirrorRail("front_mirror", spec, cfg, t, 1),
		mirrorRail("back_mirror", spec, cfg, t, 1),
		groundSides(spec, cfg, t),
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

func sinkFixedUnit(spec model.UnitSpec, cfg model.Config) []model.Part {
	t := boardThickness(cfg)
	parts := []model.Part{
		groundBase(spec, cfg, t),
		mirrorRail("front_mirror", spec, cfg, t, 3),
		groundSides(spec, cfg, t),
	}
	if spec.ShelfCount > 0 {
		parts = append(parts, shelfStack(spec, cfg, t, spec.ShelfCount))
	}
	parts = append(parts, fixedEndParts(spec, cfg, t)...)
	if spec.DoorCount > 0 {
		parts = append(parts, fixedEndDoors(spec, cfg))
	}
	parts = append(parts, fillers(spec, cfg))
	return parts
}
