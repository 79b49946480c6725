package engine

import "github.com/piwi3910/CabCut/internal/model"

// Tall units run floor to ceiling, so both the base and the top panel
// follow the assembly method and the sides lose board thickness at
// both ends when the horizontals span full width.

func tallBase(spec model.UnitSpec, cfg model.Config, t float64) model.Part {
	length := spec.Width - t*2
	if baseFull(cfg) {
		length = spec.Width
	}
	return model.NewPart("base", spec.Depth, length, 1)
}

func tallTop(spec model.UnitSpec, cfg model.Config, t float64) model.Part {
	length := spec.Width - t*2
	if baseFull(cfg) {
		length = spec.Width
	}
	return model.NewPart("top_ceiling", spec.Depth, length, 1)
}

func tallSideHeight(spec model.UnitSpec, cfg model.Config, t float64) float64 {
	if baseFull(cfg) {
		return spec.Height - t*2
	}
	return spec.Height
}

func tallSides(spec model.UnitSpec, cfg model.Config, t float64) model.Part {
	return model.NewPart("side_panel", spec.Depth, tallSideHeight(spec, cfg, t), 2)
}

// grooveShelf is a fixed shelf seated against the back groove instead
// of using the adjustable-shelf depth deduction. extraInset covers the
// small per-topology fitting allowance.
func grooveShelf(name string, spec model.UnitSpec, cfg model.Config, t, extraInset float64, qty int) model.Part {
	return model.NewPartEdges(name,
		spec.Depth-cfg.RouterDistance-cfg.RouterThickness-extraInset,
		spec.Width-t*2,
		qty, model.BandShelf())
}

func tallDoorsUnit(spec model.UnitSpec, cfg model.Config) []model.Part {
	t := boardThickness(cfg)
	parts := []model.Part{
		tallBase(spec, cfg, t),
		tallTop(spec, cfg, t),
		tallSides(spec, cfg, t),
	}
	if spec.ShelfCount > 0 {
		parts = append(parts, shelfStack(spec, cfg, t, spec.ShelfCount))
	}
	parts = append(parts, grooveShelf("extra_shelf", spec, cfg, t, 0.2, 1))
	parts = append(parts, backPanel(spec, cfg))
	if spec.DoorCount > 0 {
		w := spec.Width/float64(spec.DoorCount) - cfg.DoorWidthDeduction
		parts = append(parts, model.NewPart("bottom_door", w,
			spec.BottomDoorHeight-cfg.GroundDoorHeightDeduction-cfg.HandleProfileHeight,
			spec.DoorCount))
		parts = append(parts, model.NewPart("top_door", w,
			spec.Height-spec.BottomDoorHeight-cfg.HandleProfileHeight,
			spec.DoorCount))
	}
	return parts
}

// tallDoorsAppliancesUnit stacks a built-in oven and microwave between
// the bottom and top doors. Three fixed appliance shelves carry the
// units and a vent panel covers the duct cavity.
func tallDoorsAppliancesUnit(spec model.UnitSpec, cfg model.Config) []model.Part {
	t := boardThickness(cfg)
	side := model.NewPart("side_1", spec.Depth, tallSideHeight(spec, cfg, t), 1)
	side2 := side
	side2.Name = "side_2"

	parts := []model.Part{
		tallBase(spec, cfg, t),
		tallTop(spec, cfg, t),
		side,
		side2,
	}
	if spec.ShelfCount > 0 {
		parts = append(parts, shelfStack(spec, cfg, t, spec.ShelfCount))
	}
	parts = append(parts, grooveShelf("appliance_shelf", spec, cfg, t, 0, 3))
	parts = append(parts, backPanel(spec, cfg))
	parts = append(parts, model.NewPart("vent",
		spec.Width-cfg.DoorWidthDeduction, spec.VentHeight-2.0, 1))

	if spec.DoorCount > 0 {
		doorW := spec.Width/float64(spec.DoorCount) - cfg.DoorWidthDeduction
		parts = append(parts, model.NewPart("bottom_door", doorW,
			spec.BottomDoorHeight-cfg.GroundDoorHeightDeduction-cfg.HandleProfileHeight,
			spec.DoorCount))

		appliances := spec.OvenHeight + spec.MicrowaveHeight + 2.0
		span := spec.Height - spec.BottomDoorHeight - appliances
		if spec.DoorType == model.DoorHinged {
			h := span - cfg.HandleProfileHeight - (spec.VentHeight + 2.0) - 0.2
			parts = append(parts, model.NewPart("top_door_hinged", doorW, h, spec.DoorCount))
		} else {
			h := span - cfg.HandleProfileHeight - (spec.VentHeight + 2.0) - 0.5
			if spec.DoorCount > 1 {
				h /= float64(spec.DoorCount)
			}
			parts = append(parts, model.NewPart("top_door_flip",
				spec.Width-cfg.DoorWidthDeduction, h, spec.DoorCount))
		}
	}
	return parts
}

// tallDrawerStack is the drawer block shared by the tall drawer
// topologies: box strips, bottoms and evenly divided fronts filling
// the bottom-door span.
func tallDrawerStack(spec model.UnitSpec, cfg model.Config, t float64, slide SlideType,
	widthName, depthName, frontName string, bottomLen float64) []model.Part {

	n := spec.DrawerCount
	parts := drawerStrips(widthName, depthName, n, spec.DrawerHeight,
		slide.widthStripLength(spec.Width, t), spec.Depth-depthStripInset)
	parts = append(parts, drawerBottom("drawer_bottom",
		slide.bottomWidth(spec.Width, t, cfg.BackDeduction), bottomLen, n))
	parts = append(parts, model.NewPart(frontName,
		spec.Width-cfg.DoorWidthDeduction,
		spec.BottomDoorHeight/float64(n)-cfg.HandleProfileHeight-0.5,
		n))
	return parts
}

func tallDrawersSideDoorsTopUnit(spec model.UnitSpec, cfg model.Config) []model.Part {
	t := boardThickness(cfg)
	parts := []model.Part{
		tallBase(spec, cfg, t),
		tallTop(spec, cfg, t),
		tallSides(spec, cfg, t),
	}
	if spec.ShelfCount > 0 {
		parts = append(parts, shelfStack(spec, cfg, t, spec.ShelfCount))
	}
	parts = append(parts, backPanel(spec, cfg))
	if spec.DrawerCount > 0 {
		parts = append(parts, tallDrawerStack(spec, cfg, t, SlideSideRail,
			"drawer_width_part", "drawer_depth_part", "drawer_face",
			spec.Depth-depthStripInset-cfg.BackDeduction)...)
	}
	if spec.DoorCount > 0 {
		if spec.DoorType == model.DoorHinged {
			w := spec.Width/float64(spec.DoorCount) - cfg.DoorWidthDeduction
			h := spec.Height - spec.BottomDoorHeight - cfg.HandleProfileHeight - 0.3
			parts = append(parts, model.NewPart("top_door_hinged", w, h, spec.DoorCount))
		} else {
			w := spec.Width - cfg.DoorWidthDeduction
			h := (spec.Height-spec.BottomDoorHeight)/float64(spec.DoorCount) - cfg.HandleProfileHeight - 0.4
			parts = append(parts, model.NewPart("top_door_flip", w, h, spec.DoorCount))
		}
	}
	return parts
}

func tallDrawersBottomRailTopDoorsUnit(spec model.UnitSpec, cfg model.Config) []model.Part {
	t := boardThickness(cfg)
	parts := []model.Part{
		tallBase(spec, cfg, t),
		tallTop(spec, cfg, t),
		tallSides(spec, cfg, t),
	}
	if spec.ShelfCount > 0 {
		parts = append(parts, shelfStack(spec, cfg, t, spec.ShelfCount))
	}
	parts = append(parts, grooveShelf("intermediate_shelf", spec, cfg, t, 0, 1))
	if spec.DrawerCount > 0 {
		parts = append(parts, tallDrawerStack(spec, cfg, t, SlideBottomRail,
			"drawer_width", "drawer_depth", "drawer_front",
			spec.Depth-10.0)...)
	}
	parts = append(parts, backPanel(spec, cfg))
	if spec.DoorCount > 0 {
		if spec.DoorType == model.DoorHinged {
			w := spec.Width/float64(spec.DoorCount) - cfg.DoorWidthDeduction
			h := spec.Height - spec.BottomDoorHeight - cfg.HandleProfileHeight
			parts = append(parts, model.NewPart("top_door_hinged", w, h, spec.DoorCount))
		} else {
			w := spec.Width - cfg.DoorWidthDeduction
			h := (spec.Height-spec.BottomDoorHeight)/float64(spec.DoorCount) - cfg.HandleProfileHeight - 0.4
			parts = append(parts, model.NewPart("top_door_flip", w, h, spec.DoorCount))
		}
	}
	return parts
}

// applianceDrawerDoors sizes the top doors of the appliance drawer
// towers from the span left above drawers, oven and microwave. The
// hinged door keeps the handle profile only in the bottom-rail
// variant; the side-rail variant fills the whole span.
func applianceDrawerDoors(spec model.UnitSpec, cfg model.Config, hingedHandleProfile bool) []model.Part {
	doorW := spec.Width/float64(spec.DoorCount) - cfg.DoorWidthDeduction
	available := spec.Height - spec.BottomDoorHeight - (spec.OvenHeight + 2.0) - spec.MicrowaveHeight
	if spec.DoorType == model.DoorHinged {
		h := available
		if hingedHandleProfile {
			h -= cfg.HandleProfileHeight
		}
		return []model.Part{model.NewPart("top_door_hinged", doorW, h, spec.DoorCount)}
	}
	w := spec.Width - cfg.DoorWidthDeduction
	h := available/float64(spec.DoorCount) - cfg.HandleProfileHeight - 0.4
	return []model.Part{model.NewPart("top_door_flip", w, h, spec.DoorCount)}
}

func tallDrawersAppliancesUnit(spec model.UnitSpec, cfg model.Config, slide SlideType, hingedHandleProfile bool) []model.Part {
	t := boardThickness(cfg)
	parts := []model.Part{
		tallBase(spec, cfg, t),
		tallTop(spec, cfg, t),
		tallSides(spec, cfg, t),
	}
	if n := spec.ShelfCount - 3; n > 0 {
		parts = append(parts, shelfStack(spec, cfg, t, n))
	}
	parts = append(parts, grooveShelf("appliance_shelf", spec, cfg, t, 0, 3))
	if spec.DrawerCount > 0 {
		parts = append(parts, tallDrawerStack(spec, cfg, t, slide,
			"drawer_width", "drawer_depth", "drawer_front",
			spec.Depth-10.0)...)
	}
	parts = append(parts, backPanel(spec, cfg))
	parts = append(parts, model.NewPart("vent_panel",
		spec.Width-cfg.DoorWidthDeduction, spec.VentHeight-0.2, 1))
	if spec.DoorCount > 0 {
		parts = append(parts, applianceDrawerDoors(spec, cfg, hingedHandleProfile)...)
	}
	return parts
}

func tallDrawersSideAppliancesDoorsUnit(spec model.UnitSpec, cfg model.Config) []model.Part {
	return tallDrawersAppliancesUnit(spec, cfg, SlideSideRail, false)
}

func tallDrawersBottomAppliancesDoorsTopUnit(spec model.UnitSpec, cfg model.Config) []model.Part {
	return tallDrawersAppliancesUnit(spec, cfg, SlideBottomRail, true)
}

// tallWoodenBaseUnit is the tall cabinet standing on a wooden plinth:
// one door span, sides losing thickness at the top only, and shelves
// banded on all four edges.
func tallWoodenBaseUnit(spec model.UnitSpec, cfg model.Config) []model.Part {
	t := boardThickness(cfg)
	baseLength := spec.Width - t*2
	if baseFull(cfg) {
		baseLength = spec.Width - 0.2
	}
	sideHeight := spec.Height
	if baseFull(cfg) {
		sideHeight = spec.Height - t
	}

	parts := []model.Part{
		model.NewPart("base", spec.Depth, baseLength, 1),
		model.NewPart("top_panel", spec.Depth, spec.Width-t*2, 1),
		model.NewPart("side_panel", spec.Depth, sideHeight, 2),
	}
	if spec.ShelfCount > 0 {
		parts = append(parts, model.NewPart("shelf",
			spec.Depth-cfg.ShelfDepthDeduction, spec.Width-t*2, spec.ShelfCount))
	}
	parts = append(parts, backPanel(spec, cfg))
	parts = append(parts, model.NewPart("door",
		spec.Width/float64(spec.DoorCount)-cfg.DoorWidthDeduction,
		spec.Height-cfg.HandleProfileHeight-0.5,
		spec.DoorCount))
	return parts
}
